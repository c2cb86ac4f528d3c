// Package imaging is the carrier I/O collaborator: it decodes image files
// into pixel buffers the codec can work on, and re-serializes mutated buffers
// back to disk.
//
// Only lossless truecolor formats are supported — PNG and BMP. A lossy or
// palette-quantizing format would rewrite the LSB plane on save and silently
// destroy the hidden payload, so anything else is rejected up front with
// errs.ErrUnsupportedFormat rather than discovered as garbage at extraction
// time.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/pixelcloak/pixelcloak/errs"
	"github.com/pixelcloak/pixelcloak/internal/options"
	"github.com/pixelcloak/pixelcloak/pixbuf"
)

// Format identifies a supported carrier image format.
type Format int

const (
	// FormatPNG is the default output format.
	FormatPNG Format = iota
	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP
)

// String returns the canonical lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath infers the carrier format from a file extension.
//
// Returns errs.ErrUnsupportedFormat for anything other than .png or .bmp.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	default:
		return FormatPNG, fmt.Errorf("%w: %q", errs.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads an image from r and converts it into a pixel buffer.
//
// The stream is sniffed; only PNG and BMP are accepted. Unknown or disallowed
// formats fail with errs.ErrUnsupportedFormat, malformed streams with
// errs.ErrCarrierLoad.
func Decode(r io.Reader) (*pixbuf.RGBA, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, 0, fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, err)
		}

		return nil, 0, fmt.Errorf("%w: %v", errs.ErrCarrierLoad, err)
	}

	var format Format
	switch name {
	case "png":
		format = FormatPNG
	case "bmp":
		format = FormatBMP
	default:
		// Reachable only when the enclosing binary registers extra decoders.
		return nil, 0, fmt.Errorf("%w: %s is not a lossless carrier format", errs.ErrUnsupportedFormat, name)
	}

	return pixbuf.FromImage(img), format, nil
}

// encodeSettings holds resolved Encode configuration.
type encodeSettings struct {
	format   Format
	pngLevel png.CompressionLevel
}

// EncodeOption configures Encode and WriteFile.
type EncodeOption = options.Option[*encodeSettings]

// WithFormat selects the output format. The default is PNG, or the format
// implied by the file extension when writing through WriteFile.
func WithFormat(f Format) EncodeOption {
	return func(s *encodeSettings) error {
		if f != FormatPNG && f != FormatBMP {
			return fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, f)
		}
		s.format = f

		return nil
	}
}

// WithPNGCompression sets the zlib effort for PNG output. PNG compression is
// lossless at every level, so this trades file size against encode time
// without affecting the hidden payload.
func WithPNGCompression(level png.CompressionLevel) EncodeOption {
	return func(s *encodeSettings) error {
		switch level {
		case png.DefaultCompression, png.NoCompression, png.BestSpeed, png.BestCompression:
			s.pngLevel = level
			return nil
		default:
			return fmt.Errorf("invalid png compression level %d", level)
		}
	}
}

// Encode serializes a pixel buffer to w.
func Encode(w io.Writer, pix *pixbuf.RGBA, opts ...EncodeOption) error {
	settings := &encodeSettings{format: FormatPNG, pngLevel: png.DefaultCompression}
	if err := options.Apply(settings, opts...); err != nil {
		return err
	}

	var err error
	switch settings.format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: settings.pngLevel}
		err = enc.Encode(w, pix.Image())
	case FormatBMP:
		err = bmp.Encode(w, pix.Image())
	default:
		return fmt.Errorf("%w: %v", errs.ErrUnsupportedFormat, settings.format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	return nil
}

// LoadFile opens and decodes a carrier image file.
//
// File-open failures wrap errs.ErrCarrierLoad; decode failures are classified
// as in Decode.
func LoadFile(path string) (*pixbuf.RGBA, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errs.ErrCarrierLoad, err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile serializes a pixel buffer to path. Unless overridden with
// WithFormat, the format is inferred from the file extension.
func WriteFile(path string, pix *pixbuf.RGBA, opts ...EncodeOption) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	if err := Encode(f, pix, append([]EncodeOption{WithFormat(format)}, opts...)...); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	return nil
}
