package sdrio

import (
	"io"

	"github.com/katalvlaran/sdrkit/sdr"
)

// snapshot is the format-independent content of one saved node: dimensions,
// the stored encoding's tag, and exactly one payload.
type snapshot struct {
	dims     []int
	encoding sdr.Encoding
	dense    []byte
	sparse   []int
	coords   [][]int
}

// Save writes node to w in the given format. The stored encoding is the
// node's authoritative one; no conversion is forced. Fails with
// ErrUnknownFormat for an unsupported format and propagates node errors
// (e.g. sdr.ErrNodeDestroyed) unchanged.
func Save(w io.Writer, node sdr.SDR, format Format) error {
	snap, err := capture(node)
	if err != nil {
		return err
	}

	switch format {
	case Binary:
		return writeBinary(w, snap, binaryByteOrder, binaryMagic)
	case Portable:
		return writeBinary(w, snap, portableByteOrder, portableMagic)
	case JSON:
		return writeJSON(w, snap)
	case XML:
		return writeXML(w, snap)
	default:
		return ErrUnknownFormat
	}
}

// Load reads one node from r in the given format and returns a fresh,
// independent base Pattern. Validation of the payload is delegated to the
// Pattern setters, so a stream carrying out-of-range indices fails with the
// same sentinels a direct setter call would.
func Load(r io.Reader, format Format) (*sdr.Pattern, error) {
	var (
		snap snapshot
		err  error
	)
	switch format {
	case Binary:
		snap, err = readBinary(r, binaryByteOrder, binaryMagic)
	case Portable:
		snap, err = readBinary(r, portableByteOrder, portableMagic)
	case JSON:
		snap, err = readJSON(r)
	case XML:
		snap, err = readXML(r)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}

	return restore(snap)
}

// capture materializes the node's authoritative encoding into a snapshot.
func capture(node sdr.SDR) (snapshot, error) {
	if node == nil {
		return snapshot{}, sdr.ErrNilSDR
	}
	if node.Destroyed() {
		return snapshot{}, sdr.ErrNodeDestroyed
	}

	snap := snapshot{dims: node.Dimensions(), encoding: node.Authoritative()}
	var err error
	switch snap.encoding {
	case sdr.EncodingDense:
		snap.dense, err = node.GetDense()
	case sdr.EncodingSparse:
		snap.sparse, err = node.GetSparse()
	case sdr.EncodingCoordinate:
		snap.coords, err = node.GetCoordinates()
	default:
		return snapshot{}, sdr.ErrNodeDestroyed
	}
	if err != nil {
		return snapshot{}, err
	}

	return snap, nil
}

// restore rebuilds a base Pattern by replaying the stored encoding through
// its setter.
func restore(snap snapshot) (*sdr.Pattern, error) {
	p, err := sdr.NewPattern(snap.dims)
	if err != nil {
		return nil, err
	}

	switch snap.encoding {
	case sdr.EncodingDense:
		err = p.SetDense(snap.dense)
	case sdr.EncodingSparse:
		err = p.SetSparse(snap.sparse)
	case sdr.EncodingCoordinate:
		err = p.SetCoordinates(snap.coords)
	default:
		err = ErrCorrupt
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}
