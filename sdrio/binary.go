package sdrio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/sdrkit/sdr"
)

// Byte orders behind the two binary framings.
var (
	binaryByteOrder   binary.ByteOrder = binary.LittleEndian
	portableByteOrder binary.ByteOrder = binary.BigEndian
)

// Structural bounds enforced before any payload allocation, so a corrupt
// header cannot demand gigabytes.
const (
	maxAxis = 1 << 24 // per-dimension bound
	maxSize = 1 << 28 // total bit-count bound
)

// writeBinary stages the whole stream in memory and flushes it in one
// Write. Layout: magic(4) version(2) ndims(2) dims(4*ndims) tag(1) payload.
func writeBinary(w io.Writer, snap snapshot, order binary.ByteOrder, magic string) error {
	buf := &bytes.Buffer{}
	buf.WriteString(magic)

	// Writes into a bytes.Buffer cannot fail.
	_ = binary.Write(buf, order, uint16(streamVersion))
	_ = binary.Write(buf, order, uint16(len(snap.dims)))
	for _, d := range snap.dims {
		_ = binary.Write(buf, order, uint32(d))
	}
	buf.WriteByte(byte(snap.encoding))

	switch snap.encoding {
	case sdr.EncodingDense:
		buf.Write(snap.dense)
	case sdr.EncodingSparse:
		_ = binary.Write(buf, order, uint32(len(snap.sparse)))
		for _, idx := range snap.sparse {
			_ = binary.Write(buf, order, uint32(idx))
		}
	case sdr.EncodingCoordinate:
		n := 0
		if len(snap.coords) > 0 {
			n = len(snap.coords[0])
		}
		_ = binary.Write(buf, order, uint32(n))
		for _, axis := range snap.coords {
			for _, c := range axis {
				_ = binary.Write(buf, order, uint32(c))
			}
		}
	}

	_, err := w.Write(buf.Bytes())

	return err
}

// readBinary parses one stream. Header problems surface as ErrBadMagic /
// ErrVersionMismatch / ErrCorrupt; short reads as ErrTruncated. Payload
// index validation is left to the Pattern setters.
func readBinary(r io.Reader, order binary.ByteOrder, magic string) (snapshot, error) {
	var m [4]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return snapshot{}, fmt.Errorf("reading magic: %w", ErrTruncated)
	}
	if string(m[:]) != magic {
		return snapshot{}, ErrBadMagic
	}

	version, err := readU16(r, order)
	if err != nil {
		return snapshot{}, err
	}
	if version != streamVersion {
		return snapshot{}, fmt.Errorf("version %d: %w", version, ErrVersionMismatch)
	}

	ndims, err := readU16(r, order)
	if err != nil {
		return snapshot{}, err
	}
	if ndims == 0 {
		return snapshot{}, fmt.Errorf("zero dimensions: %w", ErrCorrupt)
	}

	dims := make([]int, ndims)
	size := 1
	for i := range dims {
		d, derr := readU32(r, order)
		if derr != nil {
			return snapshot{}, derr
		}
		if d == 0 || d > maxAxis {
			return snapshot{}, fmt.Errorf("dimension %d out of bounds: %w", d, ErrCorrupt)
		}
		dims[i] = int(d)
		size *= int(d)
		if size > maxSize {
			return snapshot{}, fmt.Errorf("pattern size exceeds %d: %w", maxSize, ErrCorrupt)
		}
	}

	var tag [1]byte
	if _, err = io.ReadFull(r, tag[:]); err != nil {
		return snapshot{}, fmt.Errorf("reading encoding tag: %w", ErrTruncated)
	}

	snap := snapshot{dims: dims, encoding: sdr.Encoding(tag[0])}
	switch snap.encoding {
	case sdr.EncodingDense:
		snap.dense = make([]byte, size)
		if _, err = io.ReadFull(r, snap.dense); err != nil {
			return snapshot{}, fmt.Errorf("reading dense payload: %w", ErrTruncated)
		}
	case sdr.EncodingSparse:
		count, cerr := readCount(r, order, size)
		if cerr != nil {
			return snapshot{}, cerr
		}
		snap.sparse = make([]int, count)
		for i := range snap.sparse {
			v, verr := readU32(r, order)
			if verr != nil {
				return snapshot{}, verr
			}
			snap.sparse[i] = int(v)
		}
	case sdr.EncodingCoordinate:
		count, cerr := readCount(r, order, size)
		if cerr != nil {
			return snapshot{}, cerr
		}
		snap.coords = make([][]int, ndims)
		for d := range snap.coords {
			axis := make([]int, count)
			for i := range axis {
				v, verr := readU32(r, order)
				if verr != nil {
					return snapshot{}, verr
				}
				axis[i] = int(v)
			}
			snap.coords[d] = axis
		}
	default:
		return snapshot{}, fmt.Errorf("encoding tag %d: %w", tag[0], ErrCorrupt)
	}

	return snap, nil
}

// readCount reads a payload length and bounds it by the pattern size
// (distinct flat indices can never outnumber the bits).
func readCount(r io.Reader, order binary.ByteOrder, size int) (int, error) {
	count, err := readU32(r, order)
	if err != nil {
		return 0, err
	}
	if int(count) > size {
		return 0, fmt.Errorf("payload count %d exceeds size %d: %w", count, size, ErrCorrupt)
	}

	return int(count), nil
}

func readU16(r io.Reader, order binary.ByteOrder) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("reading u16: %w", ErrTruncated)
	}

	return order.Uint16(b[:]), nil
}

func readU32(r io.Reader, order binary.ByteOrder) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("reading u32: %w", ErrTruncated)
	}

	return order.Uint32(b[:]), nil
}
