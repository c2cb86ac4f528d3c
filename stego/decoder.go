package stego

import (
	"encoding/binary"
	"fmt"

	"github.com/pixelcloak/pixelcloak/errs"
	"github.com/pixelcloak/pixelcloak/internal/bitpack"
	"github.com/pixelcloak/pixelcloak/pixbuf"
)

// Extract recovers the payload hidden in the least-significant bits of pix.
//
// The 32-bit length header is read first and checked against the carrier's
// own capacity: a length that could not have been legitimately embedded in an
// image of this size means the image is corrupt or was never encoded, and the
// decode fails with errs.ErrInvalidLength, as does a carrier too small to
// hold the header at all. This bound is a plausibility check, not proof — any
// image passing it is treated as a carrier and its LSB plane decoded as-is.
//
// A decoded length of zero returns an empty, non-nil payload together with
// errs.ErrEmptyPayload so callers can distinguish "valid carrier, nothing
// embedded" from a hard failure via errors.Is.
//
// Extract never mutates the buffer.
//
// Parameters:
//   - pix: Carrier buffer to read
//
// Returns:
//   - []byte: Recovered payload (empty but non-nil for a zero length)
//   - error: nil on success; errs.ErrInvalidDimensions, errs.ErrInvalidLength,
//     or errs.ErrEmptyPayload otherwise
func Extract(pix pixbuf.PixelBuffer) ([]byte, error) {
	width, height := pix.Width(), pix.Height()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", errs.ErrInvalidDimensions, width, height)
	}

	capacity := CapacityBits(width, height)
	if capacity < HeaderBits {
		return nil, fmt.Errorf("%w: carrier holds %d bits, header needs %d", errs.ErrInvalidLength, capacity, HeaderBits)
	}

	var cursor uint64
	var header [HeaderBits / 8]byte
	for i := range header {
		header[i], cursor = extractByte(pix, cursor, width)
	}
	length := binary.LittleEndian.Uint32(header[:])
	if RequiredBits(uint64(length)) > capacity {
		return nil, fmt.Errorf("%w: header claims %d bytes, carrier holds at most %d",
			errs.ErrInvalidLength, length, MaxPayloadBytes(width, height))
	}

	payload := make([]byte, 0, length)
	if length == 0 {
		return payload, errs.ErrEmptyPayload
	}

	for i := uint32(0); i < length; i++ {
		var b byte
		b, cursor = extractByte(pix, cursor, width)
		payload = append(payload, b)
	}

	return payload, nil
}

// extractByte reads 8 bits, least significant first, from the slots starting
// at cursor and returns the assembled byte and the advanced cursor.
func extractByte(pix pixbuf.PixelBuffer, cursor uint64, width int) (byte, uint64) {
	var b byte
	for bit := 0; bit < 8; bit++ {
		x, y, ch := bitpack.Slot(cursor, width)
		b |= bitpack.ExtractBit(pix.ChannelAt(x, y, ch)) << bit
		cursor++
	}

	return b, cursor
}
