package sdr_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sdrkit/sdr"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewPattern_Errors verifies that bad dimension lists are rejected.
func TestNewPattern_Errors(t *testing.T) {
	cases := []struct {
		name string
		dims []int
		err  error
	}{
		{"Empty", []int{}, sdr.ErrZeroDimension},
		{"ZeroAxis", []int{4, 0}, sdr.ErrZeroDimension},
		{"NegativeAxis", []int{-1}, sdr.ErrZeroDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sdr.NewPattern(tc.dims)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewPattern(%v) error = %v; want %v", tc.dims, err, tc.err)
			}
		})
	}
}

// TestNewPattern_Zeroed verifies that a fresh node holds the empty pattern
// in all three encodings with sparse authoritative.
func TestNewPattern_Zeroed(t *testing.T) {
	p, err := sdr.NewPattern([]int{3, 4})
	require.NoError(t, err)

	require.Equal(t, 12, p.Size())
	require.Equal(t, []int{3, 4}, p.Dimensions())
	require.Equal(t, sdr.EncodingSparse, p.Authoritative())

	sum, err := p.Sum()
	require.NoError(t, err)
	require.Zero(t, sum)

	dense, err := p.GetDense()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 12), dense)

	sparse, err := p.GetSparse()
	require.NoError(t, err)
	require.Empty(t, sparse)

	coords, err := p.GetCoordinates()
	require.NoError(t, err)
	require.Len(t, coords, 2)
	require.Empty(t, coords[0])
	require.Empty(t, coords[1])
}

//----------------------------------------------------------------------------//
// Setters: validation and authority
//----------------------------------------------------------------------------//

// TestSetDense_RoundTrip checks dense write/read plus derived encodings.
func TestSetDense_RoundTrip(t *testing.T) {
	p, err := sdr.NewPattern([]int{2, 3})
	require.NoError(t, err)

	in := []byte{0, 1, 0, 0, 1, 0}
	require.NoError(t, p.SetDense(in))
	require.Equal(t, sdr.EncodingDense, p.Authoritative())

	dense, err := p.GetDense()
	require.NoError(t, err)
	require.Equal(t, in, dense)

	// Derived sparse is an ascending scan of the dense buffer.
	sparse, err := p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, sparse)

	coords, err := p.GetCoordinates()
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {1, 1}}, coords)
}

// TestSetDense_LengthMismatch verifies eager rejection with state untouched.
func TestSetDense_LengthMismatch(t *testing.T) {
	p, err := sdr.NewPattern([]int{4})
	require.NoError(t, err)
	require.NoError(t, p.SetSparse([]int{2}))

	err = p.SetDense([]byte{1, 1})
	require.ErrorIs(t, err, sdr.ErrLengthMismatch)

	// Prior pattern survives the rejected call.
	sparse, err := p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{2}, sparse)
}

// TestSetSparse_Errors exercises range and duplicate validation.
func TestSetSparse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		indices []int
		err     error
	}{
		{"Negative", []int{-1}, sdr.ErrIndexOutOfRange},
		{"TooLarge", []int{6}, sdr.ErrIndexOutOfRange},
		{"Duplicate", []int{1, 3, 1}, sdr.ErrDuplicateIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := sdr.NewPattern([]int{2, 3})
			require.NoError(t, err)
			err = p.SetSparse(tc.indices)
			if !errors.Is(err, tc.err) {
				t.Errorf("SetSparse(%v) error = %v; want %v", tc.indices, err, tc.err)
			}
		})
	}
}

// TestSetSparse_OrderRule verifies the documented order contract: a direct
// SetSparse preserves caller order, while any derived list is ascending.
func TestSetSparse_OrderRule(t *testing.T) {
	p, err := sdr.NewPattern([]int{8})
	require.NoError(t, err)

	require.NoError(t, p.SetSparse([]int{5, 1, 3}))
	sparse, err := p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{5, 1, 3}, sparse, "caller order must be preserved")

	// Round-trip through dense: the derived list is ascending.
	dense, err := p.GetDense()
	require.NoError(t, err)
	require.NoError(t, p.SetDense(dense))
	sparse, err = p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 5}, sparse, "derived order must be ascending")
}

// TestSetCoordinates_RoundTrip uses the canonical {4,4} example: coordinates
// {{1,1,2},{0,1,2}} are flat indices 4, 5, 10.
func TestSetCoordinates_RoundTrip(t *testing.T) {
	p, err := sdr.NewPattern([]int{4, 4})
	require.NoError(t, err)

	in := [][]int{{1, 1, 2}, {0, 1, 2}}
	require.NoError(t, p.SetCoordinates(in))
	require.Equal(t, sdr.EncodingCoordinate, p.Authoritative())

	coords, err := p.GetCoordinates()
	require.NoError(t, err)
	if diff := cmp.Diff(in, coords); diff != "" {
		t.Errorf("GetCoordinates mismatch (-want +got):\n%s", diff)
	}

	sparse, err := p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 10}, sparse)
}

// TestSetCoordinates_Errors exercises shape and bound validation.
func TestSetCoordinates_Errors(t *testing.T) {
	cases := []struct {
		name   string
		coords [][]int
		err    error
	}{
		{"WrongAxisCount", [][]int{{0}}, sdr.ErrDimensionMismatch},
		{"RaggedLists", [][]int{{0, 1}, {0}}, sdr.ErrLengthMismatch},
		{"AxisOutOfRange", [][]int{{0}, {3}}, sdr.ErrIndexOutOfRange},
		{"NegativeAxis", [][]int{{-1}, {0}}, sdr.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := sdr.NewPattern([]int{2, 3})
			require.NoError(t, err)
			err = p.SetCoordinates(tc.coords)
			if !errors.Is(err, tc.err) {
				t.Errorf("SetCoordinates(%v) error = %v; want %v", tc.coords, err, tc.err)
			}
		})
	}
}

// TestSetSDR copies across nodes and rejects dimension mismatches.
func TestSetSDR(t *testing.T) {
	src, err := sdr.NewPattern([]int{3, 3})
	require.NoError(t, err)
	require.NoError(t, src.SetSparse([]int{1, 4, 8}))

	dst, err := sdr.NewPattern([]int{3, 3})
	require.NoError(t, err)
	require.NoError(t, dst.SetSDR(src))

	eq, err := dst.Equal(src)
	require.NoError(t, err)
	require.True(t, eq)

	other, err := sdr.NewPattern([]int{9})
	require.NoError(t, err)
	require.ErrorIs(t, other.SetSDR(src), sdr.ErrDimensionMismatch)
	require.ErrorIs(t, dst.SetSDR(nil), sdr.ErrNilSDR)
}

// TestZero clears every encoding and keeps working after mutations.
func TestZero(t *testing.T) {
	p, err := sdr.NewPattern([]int{4, 4})
	require.NoError(t, err)
	require.NoError(t, p.SetSparse([]int{3, 9}))
	require.NoError(t, p.Zero())

	sum, err := p.Sum()
	require.NoError(t, err)
	require.Zero(t, sum)

	dense, err := p.GetDense()
	require.NoError(t, err)
	require.Equal(t, make([]byte, 16), dense)
}

//----------------------------------------------------------------------------//
// Sum / Overlap / Equal
//----------------------------------------------------------------------------//

// TestSum counts set bits regardless of the authoritative encoding.
func TestSum(t *testing.T) {
	p, err := sdr.NewPattern([]int{2, 4})
	require.NoError(t, err)

	require.NoError(t, p.SetDense([]byte{1, 0, 0, 1, 0, 1, 0, 0}))
	sum, err := p.Sum()
	require.NoError(t, err)
	require.Equal(t, 3, sum)

	require.NoError(t, p.SetCoordinates([][]int{{0, 1}, {0, 3}}))
	sum, err = p.Sum()
	require.NoError(t, err)
	require.Equal(t, 2, sum)
}

// TestOverlap intersects flat-index sets and enforces equal dimensions.
func TestOverlap(t *testing.T) {
	a, err := sdr.NewPattern([]int{8})
	require.NoError(t, err)
	b, err := sdr.NewPattern([]int{8})
	require.NoError(t, err)

	require.NoError(t, a.SetSparse([]int{1, 2, 5}))
	require.NoError(t, b.SetSparse([]int{5, 2, 7}))

	n, err := a.Overlap(b)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	c, err := sdr.NewPattern([]int{2, 4})
	require.NoError(t, err)
	_, err = a.Overlap(c)
	require.ErrorIs(t, err, sdr.ErrDimensionMismatch)
}

// TestEqual_EncodingAgnostic builds the same bit set through different
// setters and expects equality; differing dimensions compare unequal.
func TestEqual_EncodingAgnostic(t *testing.T) {
	a, err := sdr.NewPattern([]int{2, 3})
	require.NoError(t, err)
	b, err := sdr.NewPattern([]int{2, 3})
	require.NoError(t, err)

	require.NoError(t, a.SetDense([]byte{0, 1, 0, 0, 0, 1}))
	require.NoError(t, b.SetSparse([]int{5, 1})) // same set, different order

	eq, err := a.Equal(b)
	require.NoError(t, err)
	require.True(t, eq)

	require.NoError(t, b.SetSparse([]int{5}))
	eq, err = a.Equal(b)
	require.NoError(t, err)
	require.False(t, eq)

	c, err := sdr.NewPattern([]int{6})
	require.NoError(t, err)
	require.NoError(t, c.SetSparse([]int{1, 5}))
	eq, err = a.Equal(c)
	require.NoError(t, err)
	require.False(t, eq, "dimension mismatch must compare unequal, not error")
}

//----------------------------------------------------------------------------//
// Lifetime
//----------------------------------------------------------------------------//

// TestDestroy_Terminal verifies the absorbing terminal state.
func TestDestroy_Terminal(t *testing.T) {
	p, err := sdr.NewPattern([]int{4})
	require.NoError(t, err)
	require.NoError(t, p.SetSparse([]int{1}))

	p.Destroy()
	p.Destroy() // idempotent

	require.True(t, p.Destroyed())
	require.Equal(t, sdr.EncodingNone, p.Authoritative())

	_, err = p.GetDense()
	require.ErrorIs(t, err, sdr.ErrNodeDestroyed)
	_, err = p.GetSparse()
	require.ErrorIs(t, err, sdr.ErrNodeDestroyed)
	_, err = p.Sum()
	require.ErrorIs(t, err, sdr.ErrNodeDestroyed)
	require.ErrorIs(t, p.SetSparse([]int{0}), sdr.ErrNodeDestroyed)
	require.ErrorIs(t, p.Zero(), sdr.ErrNodeDestroyed)

	_, err = sdr.NewReshape(p, nil)
	require.ErrorIs(t, err, sdr.ErrNodeDestroyed)
}

// TestString renders dimensions plus ascending indices.
func TestString(t *testing.T) {
	p, err := sdr.NewPattern([]int{4, 4})
	require.NoError(t, err)
	require.NoError(t, p.SetSparse([]int{10, 4, 5}))
	require.Equal(t, "SDR{4, 4}: 4, 5, 10", p.String())

	p.Destroy()
	require.Equal(t, "SDR(destroyed)", p.String())
}

// TestGetters_DefensiveCopies ensures returned slices do not alias caches.
func TestGetters_DefensiveCopies(t *testing.T) {
	p, err := sdr.NewPattern([]int{4})
	require.NoError(t, err)
	require.NoError(t, p.SetSparse([]int{1, 2}))

	sparse, err := p.GetSparse()
	require.NoError(t, err)
	sparse[0] = 3

	again, err := p.GetSparse()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, again)

	dense, err := p.GetDense()
	require.NoError(t, err)
	dense[0] = 1

	again2, err := p.GetDense()
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 1, 0}, again2)
}
