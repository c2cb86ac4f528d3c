// Package errs defines the sentinel errors returned by pixelcloak.
//
// All errors returned from the codec and its collaborators wrap one of these
// sentinels, so callers can classify failures with errors.Is regardless of the
// contextual detail added at the failure site:
//
//	payload, err := stego.Extract(pix)
//	if errors.Is(err, errs.ErrEmptyPayload) {
//	    // valid carrier, nothing embedded
//	}
package errs

import "errors"

// Codec errors. These are detected by the core before any buffer mutation
// (encode side) or without mutating anything (decode side); a failed call
// never leaves partial state behind.
var (
	// ErrInvalidDimensions indicates a pixel buffer with a non-positive width
	// or height.
	ErrInvalidDimensions = errors.New("pixel buffer dimensions must be positive")

	// ErrPayloadTooLarge indicates a payload whose length cannot be
	// represented in the 32-bit length header.
	ErrPayloadTooLarge = errors.New("payload length exceeds 32-bit header limit")

	// ErrInsufficientCapacity indicates the carrier cannot hold the length
	// header plus the payload bits. Reported before any pixel is touched.
	ErrInsufficientCapacity = errors.New("carrier image too small for payload")

	// ErrInvalidLength indicates a decoded length header implying a payload
	// larger than the carrier itself could hold. The image is corrupt or was
	// never encoded by this codec.
	ErrInvalidLength = errors.New("embedded length exceeds carrier capacity")

	// ErrEmptyPayload indicates a decoded length of zero: a valid carrier
	// with nothing embedded. Informational rather than fatal; Extract still
	// returns an empty (non-nil) payload alongside it.
	ErrEmptyPayload = errors.New("embedded payload is empty")
)

// Collaborator errors. I/O failures from the imaging and filesystem
// collaborators wrap these sentinels with the underlying cause preserved.
var (
	// ErrCarrierLoad indicates the carrier image could not be read or decoded.
	ErrCarrierLoad = errors.New("cannot load carrier image")

	// ErrUnsupportedFormat indicates an image format the tool refuses to use
	// as a carrier. Only lossless truecolor formats (PNG, BMP) preserve the
	// LSB plane; anything else would silently corrupt the hidden data.
	ErrUnsupportedFormat = errors.New("unsupported carrier image format")

	// ErrSecretRead indicates the secret payload source could not be read.
	ErrSecretRead = errors.New("cannot read secret payload")

	// ErrOutputWrite indicates the encoded image or recovered payload could
	// not be written.
	ErrOutputWrite = errors.New("cannot write output")
)
