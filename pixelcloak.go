// Package pixelcloak hides arbitrary files inside the least-significant bits
// of lossless raster images (PNG, BMP) and recovers them exactly.
//
// # Basic Usage
//
// Hiding a file:
//
//	report, err := pixelcloak.Conceal("beach.png", "notes.txt", "beach-out.png")
//
// Recovering it:
//
//	report, err := pixelcloak.Reveal("beach-out.png", "notes.txt")
//	if errors.Is(err, errs.ErrEmptyPayload) {
//	    // valid image, nothing hidden in it
//	}
//
// # Package Structure
//
// This package provides file-path level wrappers around the lower layers,
// covering the common tool use case. For in-memory work use the stego
// package (the codec itself), pixbuf (the pixel-buffer abstraction), and
// imaging (carrier decode/encode) directly.
package pixelcloak

import (
	"errors"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/pixelcloak/pixelcloak/errs"
	"github.com/pixelcloak/pixelcloak/imaging"
	"github.com/pixelcloak/pixelcloak/stego"
)

// ConcealReport summarizes a successful Conceal call.
//
// PayloadDigest is the xxHash64 of the payload bytes. It is informational —
// never embedded in the carrier — and lets a caller verify a later Reveal
// out-of-band.
type ConcealReport struct {
	Format        imaging.Format
	PayloadBytes  int
	CapacityBits  uint64
	RequiredBits  uint64
	PayloadDigest uint64
}

// RevealReport summarizes a Reveal call that found a payload.
type RevealReport struct {
	PayloadBytes  int
	PayloadDigest uint64
}

// Conceal embeds the file at secretPath into the carrier image at
// carrierPath and writes the result to outputPath. The output format follows
// the output file extension (.png or .bmp).
//
// Returns:
//   - ConcealReport: Sizes, capacity, and payload digest for logging/verification
//   - error: errs.ErrCarrierLoad / errs.ErrUnsupportedFormat on carrier problems,
//     errs.ErrSecretRead on payload problems, errs.ErrInsufficientCapacity when
//     the image is too small, errs.ErrOutputWrite on save failure
func Conceal(carrierPath, secretPath, outputPath string) (ConcealReport, error) {
	var report ConcealReport

	pix, _, err := imaging.LoadFile(carrierPath)
	if err != nil {
		return report, err
	}

	payload, err := os.ReadFile(secretPath)
	if err != nil {
		return report, fmt.Errorf("%w: %v", errs.ErrSecretRead, err)
	}

	if err := stego.Embed(pix, payload); err != nil {
		return report, err
	}

	if err := imaging.WriteFile(outputPath, pix); err != nil {
		return report, err
	}

	format, _ := imaging.FormatForPath(outputPath)

	return ConcealReport{
		Format:        format,
		PayloadBytes:  len(payload),
		CapacityBits:  stego.CapacityBits(pix.Width(), pix.Height()),
		RequiredBits:  stego.RequiredBits(uint64(len(payload))),
		PayloadDigest: xxhash.Sum64(payload),
	}, nil
}

// Reveal extracts the payload hidden in the image at stegoPath and writes it
// to outputPath.
//
// When the image carries a zero-length payload, nothing is written and the
// error wraps errs.ErrEmptyPayload; callers should treat that as "nothing
// hidden here" rather than a failure.
func Reveal(stegoPath, outputPath string) (RevealReport, error) {
	var report RevealReport

	pix, _, err := imaging.LoadFile(stegoPath)
	if err != nil {
		return report, err
	}

	payload, err := stego.Extract(pix)
	if err != nil {
		if errors.Is(err, errs.ErrEmptyPayload) {
			return report, fmt.Errorf("%w: nothing to write to %s", errs.ErrEmptyPayload, outputPath)
		}

		return report, err
	}

	if err := os.WriteFile(outputPath, payload, 0o644); err != nil {
		return report, fmt.Errorf("%w: %v", errs.ErrOutputWrite, err)
	}

	return RevealReport{
		PayloadBytes:  len(payload),
		PayloadDigest: xxhash.Sum64(payload),
	}, nil
}
