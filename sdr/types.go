// Package sdr: shared types for the representation core. Sentinel errors
// live in errors.go, conversions in convert.go, per the package conventions.
package sdr

import "math/rand"

// Encoding names one of the three interchangeable representations of a
// pattern. EncodingNone is only the zero value of the type; every live node
// has an authoritative encoding at all times.
type Encoding int

const (
	// EncodingNone marks the absence of an encoding tag.
	EncodingNone Encoding = iota
	// EncodingDense is the full-length, one-value-per-position form.
	EncodingDense
	// EncodingSparse is the list of set-bit flat indices.
	EncodingSparse
	// EncodingCoordinate is the per-dimension index-tuple form.
	EncodingCoordinate
)

// String implements fmt.Stringer for Encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingDense:
		return "dense"
	case EncodingSparse:
		return "sparse"
	case EncodingCoordinate:
		return "coordinate"
	default:
		return "none"
	}
}

// validity is a bitmask recording which encodings currently agree with the
// authoritative one. The invariant is "the authoritative encoding plus zero
// or more consistent caches"; a mutation collapses the mask to exactly the
// bit of the encoding just written.
type validity uint8

const (
	validDense validity = 1 << iota
	validSparse
	validCoordinate
)

// Subscriber receives notifications from the node it is attached to.
// Reshape views and statistics observers both register through this one
// interface; the node does not distinguish the two.
//
// OnChange fires after every mutation of the node. OnDestroy fires exactly
// once, when the node is torn down; after it returns, the registration is
// gone and the subscriber must not touch the node again.
type Subscriber interface {
	OnChange()
	OnDestroy()
}

// SDR is the surface shared by base Patterns and Reshape views. Consumers
// cannot tell the two apart through it: views answer every read the same
// way a base node would, and report ErrReadOnlyView from every mutator.
//
// All getters return defensive copies; mutating a returned slice never
// affects the node.
type SDR interface {
	// Dimensions returns a copy of the node's dimension list.
	Dimensions() []int
	// Size returns the product of the dimensions.
	Size() int
	// Authoritative reports which encoding was written last (for views:
	// which projected encoding is currently materialized, defaulting to
	// sparse). EncodingNone only on destroyed nodes.
	Authoritative() Encoding
	// Cached reports whether the given encoding is currently valid without
	// triggering a conversion.
	Cached(e Encoding) bool

	GetDense() ([]byte, error)
	GetSparse() ([]int, error)
	GetCoordinates() ([][]int, error)

	// Sum returns the number of set bits.
	Sum() (int, error)
	// Overlap returns the size of the set intersection of flat indices with
	// other, which must have equal dimensions.
	Overlap(other SDR) (int, error)
	// Equal reports whether both nodes have the same dimensions and decode
	// to the same set of flat indices, regardless of encoding or order.
	Equal(other SDR) (bool, error)

	SetDense(values []byte) error
	SetSparse(indices []int) error
	SetCoordinates(coords [][]int) error
	// SetSDR copies other's most compact currently valid encoding into this
	// node. Dimensions must match exactly.
	SetSDR(other SDR) error
	// Zero writes the empty pattern into all three encodings.
	Zero() error
	// Randomize replaces the pattern with round(sparsity*Size) bits chosen
	// without replacement from rng.
	Randomize(sparsity float64, rng *rand.Rand) error
	// AddNoise keeps a (1-fraction) share of the set bits and moves the rest
	// to positions that were previously clear, preserving the bit count.
	AddNoise(fraction float64, rng *rand.Rand) error

	// Attach registers a subscriber and returns a handle for Detach.
	Attach(s Subscriber) (int, error)
	// Detach removes a registration. Unknown handles are ignored.
	Detach(handle int)
	// Destroy tears the node down: children are destroyed first, then the
	// node's storage is released. Idempotent.
	Destroy()
	// Destroyed reports whether the node has reached its terminal state.
	Destroyed() bool
}
