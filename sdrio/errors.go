package sdrio

import "errors"

// Sentinel errors for stream encoding and decoding. Decoders wrap these
// with context via fmt.Errorf("...: %w", err); match with errors.Is.
var (
	// ErrUnknownFormat indicates a Format value outside the supported set.
	ErrUnknownFormat = errors.New("sdrio: unknown format")

	// ErrBadMagic indicates a stream that does not start with the expected
	// format magic (wrong format passed, or not an SDR stream at all).
	ErrBadMagic = errors.New("sdrio: bad stream magic")

	// ErrVersionMismatch indicates a stream written by an unsupported
	// format version.
	ErrVersionMismatch = errors.New("sdrio: stream version mismatch")

	// ErrTruncated indicates a stream that ended before its declared
	// payload was complete.
	ErrTruncated = errors.New("sdrio: truncated stream")

	// ErrCorrupt indicates a structurally invalid stream: unknown encoding
	// tag, impossible counts, or undecodable payload.
	ErrCorrupt = errors.New("sdrio: corrupt stream")
)
