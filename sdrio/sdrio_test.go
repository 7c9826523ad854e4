package sdrio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdrkit/sdr"
	"github.com/katalvlaran/sdrkit/sdrio"
)

var allFormats = []sdrio.Format{sdrio.Binary, sdrio.Portable, sdrio.JSON, sdrio.XML}

// buildPattern returns a {4,4} pattern with the given encoding authoritative
// and bits {4, 5, 10} set.
func buildPattern(t *testing.T, kind sdr.Encoding) *sdr.Pattern {
	t.Helper()

	p, err := sdr.NewPattern([]int{4, 4})
	require.NoError(t, err)

	switch kind {
	case sdr.EncodingDense:
		dense := make([]byte, 16)
		dense[4], dense[5], dense[10] = 1, 1, 1
		require.NoError(t, p.SetDense(dense))
	case sdr.EncodingSparse:
		require.NoError(t, p.SetSparse([]int{4, 5, 10}))
	case sdr.EncodingCoordinate:
		require.NoError(t, p.SetCoordinates([][]int{{1, 1, 2}, {0, 1, 2}}))
	}

	return p
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	encodings := []sdr.Encoding{
		sdr.EncodingDense, sdr.EncodingSparse, sdr.EncodingCoordinate,
	}

	for _, format := range allFormats {
		for _, kind := range encodings {
			t.Run(format.String()+"/"+kind.String(), func(t *testing.T) {
				src := buildPattern(t, kind)

				buf := &bytes.Buffer{}
				require.NoError(t, sdrio.Save(buf, src, format))

				got, err := sdrio.Load(buf, format)
				require.NoError(t, err)

				require.Equal(t, []int{4, 4}, got.Dimensions())
				require.Equal(t, kind, got.Authoritative())

				sparse, err := got.GetSparse()
				require.NoError(t, err)
				require.Equal(t, []int{4, 5, 10}, sparse)
			})
		}
	}
}

func TestSaveLoad_ZeroPattern(t *testing.T) {
	for _, format := range allFormats {
		t.Run(format.String(), func(t *testing.T) {
			src, err := sdr.NewPattern([]int{3, 7})
			require.NoError(t, err)

			buf := &bytes.Buffer{}
			require.NoError(t, sdrio.Save(buf, src, format))

			got, err := sdrio.Load(buf, format)
			require.NoError(t, err)

			require.Equal(t, []int{3, 7}, got.Dimensions())
			sum, err := got.Sum()
			require.NoError(t, err)
			require.Zero(t, sum)
		})
	}
}

func TestSave_ViewMaterializesSnapshot(t *testing.T) {
	src := buildPattern(t, sdr.EncodingSparse)
	view, err := sdr.NewReshape(src, []int{2, 8})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, sdrio.Save(buf, view, sdrio.Binary))

	got, err := sdrio.Load(buf, sdrio.Binary)
	require.NoError(t, err)
	require.Equal(t, []int{2, 8}, got.Dimensions())

	// The loaded pattern is a free-standing base node: mutating it must
	// not touch the original, and destroying the source must not kill it.
	require.NoError(t, got.Zero())
	sum, err := src.Sum()
	require.NoError(t, err)
	require.Equal(t, 3, sum)

	src.Destroy()
	require.False(t, got.Destroyed())
}

func TestSave_NodeErrors(t *testing.T) {
	buf := &bytes.Buffer{}

	err := sdrio.Save(buf, nil, sdrio.Binary)
	require.ErrorIs(t, err, sdr.ErrNilSDR)

	p := buildPattern(t, sdr.EncodingSparse)
	p.Destroy()
	err = sdrio.Save(buf, p, sdrio.Binary)
	require.ErrorIs(t, err, sdr.ErrNodeDestroyed)

	require.Zero(t, buf.Len(), "failed save must write nothing")
}

func TestSaveLoad_UnknownFormat(t *testing.T) {
	p := buildPattern(t, sdr.EncodingSparse)

	err := sdrio.Save(&bytes.Buffer{}, p, sdrio.Format(99))
	require.ErrorIs(t, err, sdrio.ErrUnknownFormat)

	_, err = sdrio.Load(&bytes.Buffer{}, sdrio.Format(99))
	require.ErrorIs(t, err, sdrio.ErrUnknownFormat)
}

func TestLoad_BadMagic(t *testing.T) {
	p := buildPattern(t, sdr.EncodingSparse)

	buf := &bytes.Buffer{}
	require.NoError(t, sdrio.Save(buf, p, sdrio.Portable))

	// A Portable stream fed to the Binary loader must be rejected at the
	// magic, not parsed into byte-swapped garbage.
	_, err := sdrio.Load(buf, sdrio.Binary)
	require.ErrorIs(t, err, sdrio.ErrBadMagic)
}

func TestLoad_VersionMismatch(t *testing.T) {
	p := buildPattern(t, sdr.EncodingSparse)

	buf := &bytes.Buffer{}
	require.NoError(t, sdrio.Save(buf, p, sdrio.Binary))

	// Patch the little-endian u16 version that follows the 4-byte magic.
	raw := buf.Bytes()
	raw[4], raw[5] = 2, 0

	_, err := sdrio.Load(bytes.NewReader(raw), sdrio.Binary)
	require.ErrorIs(t, err, sdrio.ErrVersionMismatch)
}

func TestLoad_Truncated(t *testing.T) {
	p := buildPattern(t, sdr.EncodingSparse)

	buf := &bytes.Buffer{}
	require.NoError(t, sdrio.Save(buf, p, sdrio.Binary))
	raw := buf.Bytes()

	// Every proper prefix of a valid stream must fail as truncated.
	for cut := 0; cut < len(raw); cut++ {
		_, err := sdrio.Load(bytes.NewReader(raw[:cut]), sdrio.Binary)
		require.ErrorIs(t, err, sdrio.ErrTruncated, "prefix length %d", cut)
	}
}

func TestLoad_CorruptStreams(t *testing.T) {
	valid := func() []byte {
		p := buildPattern(t, sdr.EncodingSparse)
		buf := &bytes.Buffer{}
		require.NoError(t, sdrio.Save(buf, p, sdrio.Binary))

		return buf.Bytes()
	}

	t.Run("unknown encoding tag", func(t *testing.T) {
		raw := valid()
		raw[16] = 7 // tag byte after magic(4) version(2) ndims(2) dims(8)
		_, err := sdrio.Load(bytes.NewReader(raw), sdrio.Binary)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})

	t.Run("zero dimension axis", func(t *testing.T) {
		raw := valid()
		copy(raw[8:12], []byte{0, 0, 0, 0}) // first dims entry
		_, err := sdrio.Load(bytes.NewReader(raw), sdrio.Binary)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})

	t.Run("count exceeds size", func(t *testing.T) {
		raw := valid()
		copy(raw[17:21], []byte{255, 255, 0, 0}) // sparse count field
		_, err := sdrio.Load(bytes.NewReader(raw), sdrio.Binary)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})

	t.Run("json garbage", func(t *testing.T) {
		_, err := sdrio.Load(strings.NewReader("{not json"), sdrio.JSON)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})

	t.Run("json unknown encoding name", func(t *testing.T) {
		doc := `{"version":1,"dimensions":[4,4],"encoding":"mystery"}`
		_, err := sdrio.Load(strings.NewReader(doc), sdrio.JSON)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})

	t.Run("json version mismatch", func(t *testing.T) {
		doc := `{"version":9,"dimensions":[4,4],"encoding":"sparse"}`
		_, err := sdrio.Load(strings.NewReader(doc), sdrio.JSON)
		require.ErrorIs(t, err, sdrio.ErrVersionMismatch)
	})

	t.Run("xml garbage", func(t *testing.T) {
		_, err := sdrio.Load(strings.NewReader("<sdr><broken"), sdrio.XML)
		require.ErrorIs(t, err, sdrio.ErrCorrupt)
	})
}

func TestLoad_PayloadValidatedBySetters(t *testing.T) {
	// Indices beyond the pattern size replay through SetSparse and fail
	// with the same sentinel a direct call would.
	doc := `{"version":1,"dimensions":[2,2],"encoding":"sparse","sparse":[0,99]}`
	_, err := sdrio.Load(strings.NewReader(doc), sdrio.JSON)
	require.ErrorIs(t, err, sdr.ErrIndexOutOfRange)
}

func TestParseFormat(t *testing.T) {
	for _, format := range allFormats {
		got, err := sdrio.ParseFormat(format.String())
		require.NoError(t, err)
		require.Equal(t, format, got)
	}

	_, err := sdrio.ParseFormat("yaml")
	require.ErrorIs(t, err, sdrio.ErrUnknownFormat)
}

func TestSaveFile_LoadFile(t *testing.T) {
	dir := t.TempDir()

	for _, format := range allFormats {
		t.Run(format.String(), func(t *testing.T) {
			path := filepath.Join(dir, "pattern."+format.String())
			src := buildPattern(t, sdr.EncodingSparse)

			require.NoError(t, sdrio.SaveFile(path, src, format))

			got, err := sdrio.LoadFile(path, format)
			require.NoError(t, err)

			equal, err := got.Equal(src)
			require.NoError(t, err)
			require.True(t, equal)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := sdrio.LoadFile(filepath.Join(t.TempDir(), "absent.bin"), sdrio.Binary)
	require.Error(t, err)
}
