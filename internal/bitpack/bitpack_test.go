package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pixelcloak/pixelcloak/pixbuf"
)

func TestEmbedBit_SetsOnlyLSB(t *testing.T) {
	require.Equal(t, uint8(0b11111111), EmbedBit(0b11111110, 1))
	require.Equal(t, uint8(0b11111110), EmbedBit(0b11111111, 0))
	require.Equal(t, uint8(0b00000001), EmbedBit(0b00000000, 1))
	require.Equal(t, uint8(0b00000000), EmbedBit(0b00000001, 0))

	// The high 7 bits must survive every combination.
	for v := 0; v < 256; v++ {
		for bit := uint8(0); bit <= 1; bit++ {
			got := EmbedBit(uint8(v), bit)
			require.Equal(t, uint8(v)&0xFE, got&0xFE)
			require.Equal(t, bit, got&1)
		}
	}
}

func TestEmbedBit_UsesOnlyLowBitOfBitArg(t *testing.T) {
	require.Equal(t, uint8(0x01), EmbedBit(0x00, 0xFF))
	require.Equal(t, uint8(0x00), EmbedBit(0x01, 0xFE))
}

func TestExtractBit(t *testing.T) {
	for v := 0; v < 256; v++ {
		require.Equal(t, uint8(v)&1, ExtractBit(uint8(v)))
	}
}

func TestExtractBit_InvertsEmbedBit(t *testing.T) {
	for v := 0; v < 256; v++ {
		for bit := uint8(0); bit <= 1; bit++ {
			require.Equal(t, bit, ExtractBit(EmbedBit(uint8(v), bit)))
		}
	}
}

func TestSlot_RowMajorChannelCycle(t *testing.T) {
	type coord struct {
		x, y int
		ch   pixbuf.Channel
	}

	// 2x1 carrier: two pixels, six slots.
	want := []coord{
		{0, 0, pixbuf.Red},
		{0, 0, pixbuf.Green},
		{0, 0, pixbuf.Blue},
		{1, 0, pixbuf.Red},
		{1, 0, pixbuf.Green},
		{1, 0, pixbuf.Blue},
	}

	for i, w := range want {
		x, y, ch := Slot(uint64(i), 2)
		require.Equal(t, w.x, x, "slot %d x", i)
		require.Equal(t, w.y, y, "slot %d y", i)
		require.Equal(t, w.ch, ch, "slot %d channel", i)
	}
}

func TestSlot_MatchesLinearFormula(t *testing.T) {
	const width, height = 5, 4

	for i := uint64(0); i < width*height*pixbuf.ChannelsPerPixel; i++ {
		x, y, ch := Slot(i, width)

		pixel := i / 3
		require.Equal(t, int(pixel%width), x, "slot %d", i)
		require.Equal(t, int(pixel/width), y, "slot %d", i)
		require.Equal(t, pixbuf.Channel(i%3), ch, "slot %d", i)

		// Row-major bound: every slot stays inside the carrier.
		require.Less(t, x, width)
		require.Less(t, y, height)
	}
}

func TestSlot_LargeIndexNoOverflow(t *testing.T) {
	// A slot index beyond 32 bits must still map exactly.
	const width = 1 << 20
	i := uint64(3) * (1 << 38)

	x, y, ch := Slot(i, width)
	require.Equal(t, pixbuf.Red, ch)
	require.Equal(t, int((i/3)%width), x)
	require.Equal(t, int((i/3)/width), y)
}
