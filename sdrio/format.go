package sdrio

import "fmt"

// Format selects the wire representation for Save and Load. Formats are
// never auto-detected; the loader must be told what the saver used.
type Format int

const (
	// Binary is the compact little-endian machine format.
	Binary Format = iota
	// Portable is the big-endian (network order) twin of Binary, for
	// exchange between hosts of unknown endianness.
	Portable
	// JSON is the human-readable text format.
	JSON
	// XML is the markup format.
	XML
)

// streamVersion is written into every stream and checked on load.
const streamVersion = 1

// Magic prefixes for the two binary framings. Distinct magics keep a
// Binary/Portable mix-up diagnosable as ErrBadMagic instead of garbage.
const (
	binaryMagic   = "SDR1"
	portableMagic = "SDRP"
)

// String implements fmt.Stringer for Format.
func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case Portable:
		return "portable"
	case JSON:
		return "json"
	case XML:
		return "xml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps a format name (as printed by String) back to a Format.
// Returns ErrUnknownFormat for anything else.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "binary":
		return Binary, nil
	case "portable":
		return Portable, nil
	case "json":
		return JSON, nil
	case "xml":
		return XML, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
	}
}
