package stego

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pixelcloak/pixelcloak/errs"
	"github.com/pixelcloak/pixelcloak/internal/bitpack"
	"github.com/pixelcloak/pixelcloak/pixbuf"
)

// Embed hides payload in the least-significant bits of pix, in place.
//
// The carrier first receives a 32-bit length header, then the payload bytes,
// per the wire format described in the package documentation. Exactly
// 32 + 8*len(payload) channel bytes are mutated, each only in its lowest
// bit; every other bit of the buffer is left untouched. A zero-length
// payload is valid and embeds only the header.
//
// Validation happens before any mutation: on error the buffer is bit-for-bit
// unchanged.
//
// Parameters:
//   - pix: Carrier buffer, mutated in place on success
//   - payload: Bytes to hide (length must fit in 32 bits)
//
// Returns:
//   - error: nil on success; errs.ErrInvalidDimensions, errs.ErrPayloadTooLarge,
//     or errs.ErrInsufficientCapacity otherwise
func Embed(pix pixbuf.PixelBuffer, payload []byte) error {
	width, height := pix.Width(), pix.Height()
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, width, height)
	}

	if uint64(len(payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", errs.ErrPayloadTooLarge, len(payload))
	}

	capacity := CapacityBits(width, height)
	required := RequiredBits(uint64(len(payload)))
	if required > capacity {
		return fmt.Errorf("%w: need %d bits, carrier holds %d", errs.ErrInsufficientCapacity, required, capacity)
	}

	// LSB-first bit order makes the header identical to the little-endian
	// byte encoding of the length, so it embeds like four payload bytes.
	var header [HeaderBits / 8]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))

	var cursor uint64
	for _, b := range header {
		cursor = embedByte(pix, cursor, width, b)
	}
	for _, b := range payload {
		cursor = embedByte(pix, cursor, width, b)
	}

	return nil
}

// embedByte writes the 8 bits of b, least significant first, into the slots
// starting at cursor and returns the advanced cursor.
func embedByte(pix pixbuf.PixelBuffer, cursor uint64, width int, b byte) uint64 {
	for bit := 0; bit < 8; bit++ {
		x, y, ch := bitpack.Slot(cursor, width)
		pix.SetChannelAt(x, y, ch, bitpack.EmbedBit(pix.ChannelAt(x, y, ch), b>>bit))
		cursor++
	}

	return cursor
}
