package stego

import (
	"github.com/pixelcloak/pixelcloak/pixbuf"
)

// HeaderBits is the size of the embedded length header: a 32-bit unsigned
// payload length, embedded least-significant bit first.
const HeaderBits = 32

// CapacityBits returns the number of hidden bits a carrier of the given
// dimensions can hold: one per color channel, three channels per pixel.
//
// The math is 64-bit so large carriers (beyond ~26k×26k) don't overflow.
// Non-positive dimensions yield zero capacity.
func CapacityBits(width, height int) uint64 {
	if width <= 0 || height <= 0 {
		return 0
	}

	return uint64(width) * uint64(height) * pixbuf.ChannelsPerPixel
}

// RequiredBits returns the number of carrier bits needed to embed a payload
// of payloadLen bytes: the 32-bit length header plus 8 bits per byte.
func RequiredBits(payloadLen uint64) uint64 {
	return HeaderBits + payloadLen*8
}

// MaxPayloadBytes returns the largest payload, in bytes, that fits in a
// carrier of the given dimensions. Returns 0 when even the header does not
// fit.
func MaxPayloadBytes(width, height int) uint64 {
	capacity := CapacityBits(width, height)
	if capacity < HeaderBits {
		return 0
	}

	return (capacity - HeaderBits) / 8
}
