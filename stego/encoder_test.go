package stego

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelcloak/pixelcloak/errs"
	"github.com/pixelcloak/pixelcloak/internal/bitpack"
	"github.com/pixelcloak/pixelcloak/pixbuf"
)

func TestEmbed_CapacityBoundary(t *testing.T) {
	// 8x3 carrier: 72 bits. 5 bytes need exactly 72, 6 bytes need 80.
	pix := newCarrier(t, 8, 3)
	require.NoError(t, Embed(pix, testPayload(5)))

	pix = newCarrier(t, 8, 3)
	err := Embed(pix, testPayload(6))
	require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
}

func TestEmbed_FailureLeavesBufferUntouched(t *testing.T) {
	pix := newCarrier(t, 8, 3)
	original := pix.Clone()

	err := Embed(pix, testPayload(6))
	require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
	require.Equal(t, original.Image().Pix, pix.Image().Pix)
}

func TestEmbed_HeaderAloneExceedsTinyCarrier(t *testing.T) {
	// 1x1 carrier holds 3 bits; even an empty payload needs 32.
	pix := newCarrier(t, 1, 1)
	err := Embed(pix, nil)
	require.ErrorIs(t, err, errs.ErrInsufficientCapacity)
}

func TestEmbed_InvalidDimensions(t *testing.T) {
	pix := pixbuf.NewRGBA(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	err := Embed(pix, []byte{1})
	require.ErrorIs(t, err, errs.ErrInvalidDimensions)
}

func TestEmbed_EmptyPayloadWritesOnlyHeader(t *testing.T) {
	pix := newCarrier(t, 10, 10)
	original := pix.Clone()

	require.NoError(t, Embed(pix, []byte{}))

	// The first 32 slots carry the all-zero length header.
	for i := uint64(0); i < HeaderBits; i++ {
		x, y, ch := bitpack.Slot(i, 10)
		require.Equal(t, uint8(0), bitpack.ExtractBit(pix.ChannelAt(x, y, ch)), "slot %d", i)
	}

	// Every slot past the header is untouched.
	for i := uint64(HeaderBits); i < CapacityBits(10, 10); i++ {
		x, y, ch := bitpack.Slot(i, 10)
		require.Equal(t, original.ChannelAt(x, y, ch), pix.ChannelAt(x, y, ch), "slot %d", i)
	}
}

func TestEmbed_MutatesOnlyVisitedLSBs(t *testing.T) {
	const w, h = 10, 10
	pix := newCarrier(t, w, h)
	original := pix.Clone()
	payload := testPayload(7)

	require.NoError(t, Embed(pix, payload))

	required := RequiredBits(uint64(len(payload)))
	for i := uint64(0); i < CapacityBits(w, h); i++ {
		x, y, ch := bitpack.Slot(i, w)
		before := original.ChannelAt(x, y, ch)
		after := pix.ChannelAt(x, y, ch)

		// High 7 bits never move, visited or not.
		require.Equal(t, before>>1, after>>1, "slot %d high bits", i)

		if i >= required {
			require.Equal(t, before, after, "slot %d beyond payload", i)
		}
	}

	// Alpha bytes are not part of any slot and must be identical.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*original.Image().Stride + x*4 + 3
			require.Equal(t, original.Image().Pix[idx], pix.Image().Pix[idx])
		}
	}
}

func TestEmbed_HeaderIsLittleEndianBitOrder(t *testing.T) {
	// A 2-byte payload embeds length 2: slot 1 carries bit 1 of the length,
	// every other header slot carries 0.
	pix := newCarrier(t, 10, 10)
	require.NoError(t, Embed(pix, []byte{0xAA, 0x55}))

	for i := uint64(0); i < HeaderBits; i++ {
		x, y, ch := bitpack.Slot(i, 10)
		want := uint8(0)
		if i == 1 {
			want = 1
		}
		require.Equal(t, want, bitpack.ExtractBit(pix.ChannelAt(x, y, ch)), "header slot %d", i)
	}

	// Payload bytes follow LSB-first: 0xAA = 10101010 embeds as 0,1,0,1,...
	wantBits := []uint8{0, 1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0}
	for off, want := range wantBits {
		i := uint64(HeaderBits + off)
		x, y, ch := bitpack.Slot(i, 10)
		require.Equal(t, want, bitpack.ExtractBit(pix.ChannelAt(x, y, ch)), "payload slot %d", i)
	}
}

func TestEmbed_Deterministic(t *testing.T) {
	payload := testPayload(25)

	a := newCarrier(t, 10, 10)
	b := newCarrier(t, 10, 10)
	require.NoError(t, Embed(a, payload))
	require.NoError(t, Embed(b, payload))

	require.Equal(t, a.Image().Pix, b.Image().Pix)
}
