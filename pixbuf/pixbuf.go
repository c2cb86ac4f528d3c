// Package pixbuf provides the pixel-buffer abstraction the stego codec
// operates on.
//
// The codec only ever needs four capabilities from a carrier: its dimensions
// and per-channel byte access. PixelBuffer captures exactly that, keeping the
// codec independent of any concrete image representation. RGBA is the
// standard implementation, backed by *image.NRGBA so decoded carriers can be
// wrapped without copying and re-encoded losslessly.
package pixbuf

import (
	"image"
	"image/draw"
)

// Channel identifies one of the three color channels of a pixel, in the
// order the codec traverses them.
type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

// ChannelsPerPixel is the number of channels the codec uses per pixel. The
// alpha channel of the underlying image, when present, is never touched.
const ChannelsPerPixel = 3

// PixelBuffer is the narrow capability interface between the codec and a
// pixel representation.
//
// Implementations must provide O(1) channel access. Coordinates are 0-based
// with (0,0) at the top-left; behavior outside [0,Width)×[0,Height) is
// undefined, the codec never reads or writes out of bounds.
type PixelBuffer interface {
	// Width returns the buffer width in pixels.
	Width() int

	// Height returns the buffer height in pixels.
	Height() int

	// ChannelAt returns the 8-bit value of channel ch of the pixel at (x, y).
	ChannelAt(x, y int, ch Channel) uint8

	// SetChannelAt replaces the 8-bit value of channel ch of the pixel at (x, y).
	SetChannelAt(x, y int, ch Channel, v uint8)
}

// RGBA is a PixelBuffer backed by an *image.NRGBA.
//
// NRGBA stores non-premultiplied 8-bit samples, so a PNG or BMP round trip
// preserves every channel byte exactly — the property LSB embedding depends
// on. The alpha samples pass through untouched.
type RGBA struct {
	img *image.NRGBA
}

// NewRGBA wraps an existing NRGBA image. The buffer shares the image's
// pixel storage; mutations through the buffer are visible in the image.
func NewRGBA(img *image.NRGBA) *RGBA {
	return &RGBA{img: img}
}

// FromImage converts an arbitrary image into an RGBA buffer.
//
// When src is already an *image.NRGBA anchored at the origin it is wrapped
// directly without copying. Anything else is redrawn into a fresh NRGBA
// buffer; for opaque truecolor sources this conversion is lossless.
func FromImage(src image.Image) *RGBA {
	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return NewRGBA(nrgba)
	}

	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)

	return NewRGBA(dst)
}

// Width returns the buffer width in pixels.
func (b *RGBA) Width() int {
	return b.img.Rect.Dx()
}

// Height returns the buffer height in pixels.
func (b *RGBA) Height() int {
	return b.img.Rect.Dy()
}

// ChannelAt returns the value of channel ch of the pixel at (x, y).
func (b *RGBA) ChannelAt(x, y int, ch Channel) uint8 {
	return b.img.Pix[y*b.img.Stride+x*4+int(ch)]
}

// SetChannelAt replaces the value of channel ch of the pixel at (x, y).
func (b *RGBA) SetChannelAt(x, y int, ch Channel, v uint8) {
	b.img.Pix[y*b.img.Stride+x*4+int(ch)] = v
}

// Image returns the underlying NRGBA image for re-serialization. The image
// shares storage with the buffer.
func (b *RGBA) Image() *image.NRGBA {
	return b.img
}

// Clone returns a deep copy of the buffer. Useful when the caller needs to
// keep the original carrier pixels after an in-place encode.
func (b *RGBA) Clone() *RGBA {
	dup := image.NewNRGBA(b.img.Rect)
	copy(dup.Pix, b.img.Pix)

	return NewRGBA(dup)
}
