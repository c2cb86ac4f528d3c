// Package bitpack implements the bit-level primitives shared by the encoder
// and decoder: LSB embed/extract on a single channel byte, and the mapping
// from a linear slot index to a pixel coordinate and channel.
//
// The traversal defined by Slot is the single source of ordering truth. An
// encoder and decoder interoperate only if they visit slots in exactly this
// order, so any change here is a wire-format change.
package bitpack

import "github.com/pixelcloak/pixelcloak/pixbuf"

// EmbedBit returns channel with its least-significant bit set to the low bit
// of bit. The high 7 bits pass through unchanged.
func EmbedBit(channel, bit uint8) uint8 {
	return (channel & 0xFE) | (bit & 1)
}

// ExtractBit returns the least-significant bit of channel.
func ExtractBit(channel uint8) uint8 {
	return channel & 1
}

// Slot maps the linear slot index i to the pixel coordinate and channel that
// hold hidden bit i, for a carrier of the given width.
//
// Pixels are scanned row-major from the top-left, cycling red, green, blue
// within each pixel before advancing:
//
//	slot 0 → (0,0) red,  slot 1 → (0,0) green,  slot 2 → (0,0) blue,
//	slot 3 → (1,0) red,  ...
//
// The index is 64-bit so the mapping stays exact for carriers whose slot
// count exceeds 32 bits.
func Slot(i uint64, width int) (x, y int, ch pixbuf.Channel) {
	pixel := i / pixbuf.ChannelsPerPixel
	w := uint64(width)

	return int(pixel % w), int(pixel / w), pixbuf.Channel(i % pixbuf.ChannelsPerPixel)
}
