package sdrio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/sdrkit/sdr"
)

// jsonStream is the JSON document shape. Dense bits are written as 0/1
// integers rather than a base64 blob so the text format stays readable.
type jsonStream struct {
	Version     int     `json:"version"`
	Dimensions  []int   `json:"dimensions"`
	Encoding    string  `json:"encoding"`
	Dense       []int   `json:"dense,omitempty"`
	Sparse      []int   `json:"sparse,omitempty"`
	Coordinates [][]int `json:"coordinates,omitempty"`
}

// writeJSON encodes one indented JSON document.
func writeJSON(w io.Writer, snap snapshot) error {
	doc := jsonStream{
		Version:     streamVersion,
		Dimensions:  snap.dims,
		Encoding:    snap.encoding.String(),
		Dense:       bitsToInts(snap.dense),
		Sparse:      snap.sparse,
		Coordinates: snap.coords,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// readJSON decodes one document and normalizes it into a snapshot.
func readJSON(r io.Reader) (snapshot, error) {
	var doc jsonStream
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return snapshot{}, fmt.Errorf("decoding json: %v: %w", err, ErrCorrupt)
	}

	return normalizeTextDoc(doc.Version, doc.Dimensions, doc.Encoding,
		doc.Dense, doc.Sparse, doc.Coordinates)
}

// normalizeTextDoc is shared by the JSON and XML readers: version check,
// encoding-tag parse, and materialization of omitted empty payloads.
func normalizeTextDoc(version int, dims []int, encoding string,
	dense, sparse []int, coords [][]int) (snapshot, error) {
	if version != streamVersion {
		return snapshot{}, fmt.Errorf("version %d: %w", version, ErrVersionMismatch)
	}
	kind, err := parseEncodingName(encoding)
	if err != nil {
		return snapshot{}, err
	}

	snap := snapshot{dims: dims, encoding: kind}
	switch kind {
	case sdr.EncodingDense:
		snap.dense = intsToBits(dense)
	case sdr.EncodingSparse:
		if sparse == nil {
			sparse = []int{} // empty list elided by omitempty
		}
		snap.sparse = sparse
	case sdr.EncodingCoordinate:
		if coords == nil {
			coords = make([][]int, len(dims))
			for d := range coords {
				coords[d] = []int{}
			}
		}
		snap.coords = coords
	}

	return snap, nil
}

// parseEncodingName maps the textual tag back to an Encoding.
func parseEncodingName(name string) (sdr.Encoding, error) {
	switch name {
	case sdr.EncodingDense.String():
		return sdr.EncodingDense, nil
	case sdr.EncodingSparse.String():
		return sdr.EncodingSparse, nil
	case sdr.EncodingCoordinate.String():
		return sdr.EncodingCoordinate, nil
	default:
		return sdr.EncodingNone, fmt.Errorf("encoding %q: %w", name, ErrCorrupt)
	}
}

// bitsToInts widens a dense byte buffer for text output.
func bitsToInts(dense []byte) []int {
	if dense == nil {
		return nil
	}
	out := make([]int, len(dense))
	for i, v := range dense {
		if v != 0 {
			out[i] = 1
		}
	}

	return out
}

// intsToBits narrows a text payload back to bytes; any non-zero is set.
func intsToBits(values []int) []byte {
	out := make([]byte, len(values))
	for i, v := range values {
		if v != 0 {
			out[i] = 1
		}
	}

	return out
}
