package sdrio

import (
	"encoding/xml"
	"fmt"
	"io"
)

// xmlStream is the XML document shape, mirroring jsonStream.
type xmlStream struct {
	XMLName     xml.Name  `xml:"sdr"`
	Version     int       `xml:"version,attr"`
	Encoding    string    `xml:"encoding,attr"`
	Dimensions  []int     `xml:"dimensions>dim"`
	Dense       []int     `xml:"dense>bit"`
	Sparse      []int     `xml:"sparse>index"`
	Coordinates []xmlAxis `xml:"coordinates>axis"`
}

// xmlAxis holds the coordinate list along one dimension.
type xmlAxis struct {
	Values []int `xml:"c"`
}

// writeXML encodes one indented XML document, prefixed by the standard
// declaration header.
func writeXML(w io.Writer, snap snapshot) error {
	doc := xmlStream{
		Version:    streamVersion,
		Encoding:   snap.encoding.String(),
		Dimensions: snap.dims,
		Dense:      bitsToInts(snap.dense),
		Sparse:     snap.sparse,
	}
	for _, axis := range snap.coords {
		doc.Coordinates = append(doc.Coordinates, xmlAxis{Values: axis})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// readXML decodes one document and normalizes it into a snapshot.
func readXML(r io.Reader) (snapshot, error) {
	var doc xmlStream
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return snapshot{}, fmt.Errorf("decoding xml: %v: %w", err, ErrCorrupt)
	}

	var coords [][]int
	for _, axis := range doc.Coordinates {
		coords = append(coords, axis.Values)
	}

	return normalizeTextDoc(doc.Version, doc.Dimensions, doc.Encoding,
		doc.Dense, doc.Sparse, coords)
}
