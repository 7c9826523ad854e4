package sdr

import "math/rand"

// Reshape is a read-only view of a source node under new dimensions whose
// product equals the source's size. It stores no bits of its own: reads
// pull the source's flat indices (reshape-invariant) and re-derive the
// coordinate decomposition under the view's dimensions, caching the result
// until the source changes.
//
// A Reshape is simultaneously a child of its source (it receives change and
// destroy events) and a full SDR for consumers, who cannot tell it from a
// base Pattern through the read surface. Views can stack: a Reshape of a
// Reshape is valid, and teardown of any ancestor cascades down.
type Reshape struct {
	src    SDR
	handle int

	dims []int
	size int

	dense  []byte
	sparse []int
	coords [][]int
	valid  validity

	subs      subscriberList
	destroyed bool
}

// compile-time check: a view is also a subscriber of its source.
var _ Subscriber = (*Reshape)(nil)

// NewReshape constructs a view of src under dims. A nil dims inherits the
// source's dimensions unchanged. Fails with ErrNilSDR for a nil source,
// ErrNodeDestroyed for a destroyed one, ErrZeroDimension for a bad
// dimension list, and ErrDimensionMismatch when product(dims) != src.Size();
// no view is registered on failure.
// Complexity: O(len(dims)).
func NewReshape(src SDR, dims []int) (*Reshape, error) {
	if src == nil {
		return nil, ErrNilSDR
	}
	if src.Destroyed() {
		return nil, ErrNodeDestroyed
	}
	if dims == nil {
		dims = src.Dimensions()
	}
	if err := validateDimensions(dims); err != nil {
		return nil, err
	}
	if product(dims) != src.Size() {
		return nil, ErrDimensionMismatch
	}

	d := make([]int, len(dims))
	copy(d, dims)
	r := &Reshape{src: src, dims: d, size: src.Size()}

	handle, err := src.Attach(r)
	if err != nil {
		return nil, err
	}
	r.handle = handle

	return r, nil
}

// Dimensions returns a copy of the view's dimension list.
func (r *Reshape) Dimensions() []int {
	out := make([]int, len(r.dims))
	copy(out, r.dims)

	return out
}

// Size returns the product of the view's dimensions (== source size).
func (r *Reshape) Size() int { return r.size }

// Destroyed reports whether the view or any of its ancestors was destroyed.
func (r *Reshape) Destroyed() bool { return r.destroyed }

// Authoritative reports which projected encoding is currently materialized,
// preferring sparse. A view with no live cache reports sparse, since that is
// what the next read will materialize first.
func (r *Reshape) Authoritative() Encoding {
	switch {
	case r.destroyed:
		return EncodingNone
	case r.valid&validSparse != 0:
		return EncodingSparse
	case r.valid&validDense != 0:
		return EncodingDense
	case r.valid&validCoordinate != 0:
		return EncodingCoordinate
	default:
		return EncodingSparse
	}
}

// Cached reports whether e is materialized in the view right now.
func (r *Reshape) Cached(e Encoding) bool {
	if r.destroyed {
		return false
	}
	switch e {
	case EncodingDense:
		return r.valid&validDense != 0
	case EncodingSparse:
		return r.valid&validSparse != 0
	case EncodingCoordinate:
		return r.valid&validCoordinate != 0
	default:
		return false
	}
}

// sparseRef pulls and caches the source's flat indices. Flat indices are
// invariant under reshape, so the source's list is usable as-is.
func (r *Reshape) sparseRef() ([]int, error) {
	if r.valid&validSparse == 0 {
		sparse, err := r.src.GetSparse()
		if err != nil {
			return nil, err
		}
		r.sparse = sparse
		r.valid |= validSparse
	}

	return r.sparse, nil
}

// GetDense returns the dense encoding, identical byte-for-byte to the
// source's (reshape does not move bits).
func (r *Reshape) GetDense() ([]byte, error) {
	if r.destroyed {
		return nil, ErrNodeDestroyed
	}
	if r.valid&validDense == 0 {
		dense, err := r.src.GetDense()
		if err != nil {
			return nil, err
		}
		r.dense = dense
		r.valid |= validDense
	}
	out := make([]byte, len(r.dense))
	copy(out, r.dense)

	return out, nil
}

// GetSparse returns the flat indices, identical to the source's list.
func (r *Reshape) GetSparse() ([]int, error) {
	if r.destroyed {
		return nil, ErrNodeDestroyed
	}
	sparse, err := r.sparseRef()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(sparse))
	copy(out, sparse)

	return out, nil
}

// GetCoordinates returns the per-axis decomposition under the VIEW's
// dimensions. When the view's dimensions equal the source's and the source
// already holds coordinates, they are reused directly.
func (r *Reshape) GetCoordinates() ([][]int, error) {
	if r.destroyed {
		return nil, ErrNodeDestroyed
	}
	if r.valid&validCoordinate == 0 {
		if sameDimensions(r.dims, r.src.Dimensions()) && r.src.Cached(EncodingCoordinate) {
			coords, err := r.src.GetCoordinates()
			if err != nil {
				return nil, err
			}
			r.coords = coords
		} else {
			sparse, err := r.sparseRef()
			if err != nil {
				return nil, err
			}
			r.coords = sparseToCoordinates(r.dims, sparse)
		}
		r.valid |= validCoordinate
	}
	out := make([][]int, len(r.coords))
	for d, axis := range r.coords {
		out[d] = make([]int, len(axis))
		copy(out[d], axis)
	}

	return out, nil
}

// Sum returns the number of set bits.
func (r *Reshape) Sum() (int, error) {
	if r.destroyed {
		return 0, ErrNodeDestroyed
	}
	sparse, err := r.sparseRef()
	if err != nil {
		return 0, err
	}

	return len(sparse), nil
}

// Overlap returns the flat-index intersection size with other, which must
// have the view's dimensions.
func (r *Reshape) Overlap(other SDR) (int, error) {
	if r.destroyed {
		return 0, ErrNodeDestroyed
	}
	if other == nil {
		return 0, ErrNilSDR
	}
	if !sameDimensions(r.dims, other.Dimensions()) {
		return 0, ErrDimensionMismatch
	}
	mine, err := r.sparseRef()
	if err != nil {
		return 0, err
	}
	theirs, err := other.GetSparse()
	if err != nil {
		return 0, err
	}

	return overlapCount(mine, theirs), nil
}

// Equal reports dimension and bit-set equality with other, under the same
// rules as Pattern.Equal.
func (r *Reshape) Equal(other SDR) (bool, error) {
	if r.destroyed {
		return false, ErrNodeDestroyed
	}
	if other == nil {
		return false, ErrNilSDR
	}
	if other.Destroyed() {
		return false, ErrNodeDestroyed
	}
	if !sameDimensions(r.dims, other.Dimensions()) {
		return false, nil
	}
	mine, err := r.sparseRef()
	if err != nil {
		return false, err
	}
	theirs, err := other.GetSparse()
	if err != nil {
		return false, err
	}

	return sameBitSet(mine, theirs), nil
}

// Mutators: a view has no authoritative storage; callers mutate the source.

// SetDense always fails: ErrNodeDestroyed once torn down, else ErrReadOnlyView.
func (r *Reshape) SetDense([]byte) error { return r.rejectMutation() }

// SetSparse always fails; see SetDense.
func (r *Reshape) SetSparse([]int) error { return r.rejectMutation() }

// SetCoordinates always fails; see SetDense.
func (r *Reshape) SetCoordinates([][]int) error { return r.rejectMutation() }

// SetSDR always fails; see SetDense.
func (r *Reshape) SetSDR(SDR) error { return r.rejectMutation() }

// Zero always fails; see SetDense.
func (r *Reshape) Zero() error { return r.rejectMutation() }

// Randomize always fails; see SetDense.
func (r *Reshape) Randomize(float64, *rand.Rand) error { return r.rejectMutation() }

// AddNoise always fails; see SetDense.
func (r *Reshape) AddNoise(float64, *rand.Rand) error { return r.rejectMutation() }

func (r *Reshape) rejectMutation() error {
	if r.destroyed {
		return ErrNodeDestroyed
	}

	return ErrReadOnlyView
}

// Attach registers a subscriber on the view itself (stacked views, observers).
func (r *Reshape) Attach(s Subscriber) (int, error) {
	if r.destroyed {
		return 0, ErrNodeDestroyed
	}
	if s == nil {
		return 0, ErrNilSubscriber
	}

	return r.subs.attach(s), nil
}

// Detach removes a registration from the view.
func (r *Reshape) Detach(handle int) {
	if r.destroyed {
		return
	}
	r.subs.detach(handle)
}

// Destroy detaches the view from its source and cascades teardown to the
// view's own children. The source and its other children are unaffected.
// Idempotent.
func (r *Reshape) Destroy() {
	if r.destroyed {
		return
	}
	r.src.Detach(r.handle)
	r.teardown()
}

// OnChange implements Subscriber: the source mutated, so every cache is
// stale. Recomputation is deferred to the next read; only the event is
// forwarded now.
func (r *Reshape) OnChange() {
	r.valid = 0
	r.subs.broadcastChange()
}

// OnDestroy implements Subscriber: the source is gone, so the view and its
// whole subtree become permanently invalid. The source has already purged
// this registration.
func (r *Reshape) OnDestroy() {
	if r.destroyed {
		return
	}
	r.teardown()
}

func (r *Reshape) teardown() {
	r.destroyed = true
	r.subs.broadcastDestroy()
	r.dense = nil
	r.sparse = nil
	r.coords = nil
	r.valid = 0
	r.src = nil
}

// String implements fmt.Stringer; destroyed views print a terminal marker.
func (r *Reshape) String() string {
	if r.destroyed {
		return "SDR(destroyed)"
	}
	sparse, err := r.sparseRef()
	if err != nil {
		return "SDR(destroyed)"
	}

	return formatNode(r.dims, sparse)
}
