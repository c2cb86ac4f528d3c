// Package stego implements the core LSB steganography codec: embedding an
// arbitrary byte payload into the least-significant bits of a carrier's
// color channels, and recovering it losslessly.
//
// # Wire Format
//
// The hidden bitstream occupies the LSB plane of the carrier in traversal
// order (row-major pixels, red→green→blue within each pixel):
//
//   - 32 bits: payload length as an unsigned integer, bit 0 (least
//     significant) first
//   - length × 8 bits: payload bytes in stream order, each byte LSB-first
//
// This layout is the interoperability contract between any conforming
// encoder and decoder; both the bit order and the traversal order must be
// preserved exactly.
//
// # Usage
//
//	pix := pixbuf.FromImage(img)
//	if err := stego.Embed(pix, payload); err != nil { ... }
//	// serialize pix.Image() with any lossless format
//
//	recovered, err := stego.Extract(pix)
//
// Both operations are pure functions of their inputs: Embed mutates exactly
// the visited channel LSBs of its buffer and nothing else, Extract never
// mutates at all. Neither holds state between calls, so they are safe to call
// concurrently on distinct buffers. Concurrent use of the same buffer is the
// caller's problem.
package stego
