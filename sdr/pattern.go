package sdr

// Pattern is the base SDR node: fixed dimensions plus one bit set stored in
// up to three encodings. Exactly one encoding is authoritative at any time
// (the one written last); the others are derived on demand and cached until
// the next mutation. Dimensions are immutable after construction.
type Pattern struct {
	dims []int
	size int

	dense  []byte
	sparse []int
	coords [][]int

	valid validity
	auth  Encoding

	subs      subscriberList
	destroyed bool
}

// compile-time interface checks for both node kinds.
var (
	_ SDR = (*Pattern)(nil)
	_ SDR = (*Reshape)(nil)
)

// NewPattern constructs an empty Pattern with the given dimensions.
// Returns ErrZeroDimension for an empty list or any dimension below one.
// The fresh node holds the zero pattern in all three encodings.
// Complexity: O(Size).
func NewPattern(dims []int) (*Pattern, error) {
	if err := validateDimensions(dims); err != nil {
		return nil, err
	}
	d := make([]int, len(dims))
	copy(d, dims)

	p := &Pattern{dims: d, size: product(d)}
	p.storeZero()

	return p, nil
}

// Dimensions returns a copy of the dimension list.
func (p *Pattern) Dimensions() []int {
	out := make([]int, len(p.dims))
	copy(out, p.dims)

	return out
}

// Size returns the product of the dimensions.
func (p *Pattern) Size() int { return p.size }

// Destroyed reports whether the node has been torn down.
func (p *Pattern) Destroyed() bool { return p.destroyed }

// Authoritative reports the encoding written last, or EncodingNone once the
// node is destroyed.
func (p *Pattern) Authoritative() Encoding {
	if p.destroyed {
		return EncodingNone
	}

	return p.auth
}

// Cached reports whether e is currently valid without forcing a conversion.
func (p *Pattern) Cached(e Encoding) bool {
	if p.destroyed {
		return false
	}
	switch e {
	case EncodingDense:
		return p.valid&validDense != 0
	case EncodingSparse:
		return p.valid&validSparse != 0
	case EncodingCoordinate:
		return p.valid&validCoordinate != 0
	default:
		return false
	}
}

// storeZero writes the empty pattern into all three encodings without
// broadcasting. Used by the constructor and Zero.
func (p *Pattern) storeZero() {
	p.dense = make([]byte, p.size)
	p.sparse = make([]int, 0)
	p.coords = make([][]int, len(p.dims))
	for d := range p.coords {
		p.coords[d] = make([]int, 0)
	}
	p.valid = validDense | validSparse | validCoordinate
	p.auth = EncodingSparse
}

// commit marks e as the sole valid encoding and broadcasts the change to
// direct children. Every setter funnels through here after validation.
func (p *Pattern) commit(e Encoding, v validity) {
	p.auth = e
	p.valid = v
	p.subs.broadcastChange()
}

// SetDense copies values in as the authoritative encoding. The length must
// equal Size (ErrLengthMismatch); any non-zero byte counts as a set bit.
// Complexity: O(Size).
func (p *Pattern) SetDense(values []byte) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	if len(values) != p.size {
		return ErrLengthMismatch
	}
	p.dense = make([]byte, p.size)
	copy(p.dense, values)
	p.commit(EncodingDense, validDense)

	return nil
}

// SetSparse copies indices in as the authoritative encoding, preserving the
// caller's order. Each index must lie in [0, Size) (ErrIndexOutOfRange) and
// appear once (ErrDuplicateIndex).
// Complexity: O(len(indices)).
func (p *Pattern) SetSparse(indices []int) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= p.size {
			return ErrIndexOutOfRange
		}
		if _, dup := seen[idx]; dup {
			return ErrDuplicateIndex
		}
		seen[idx] = struct{}{}
	}
	p.sparse = make([]int, len(indices))
	copy(p.sparse, indices)
	p.commit(EncodingSparse, validSparse)

	return nil
}

// SetCoordinates copies per-axis index lists in as the authoritative
// encoding. There must be one list per dimension (ErrDimensionMismatch),
// all of equal length (ErrLengthMismatch), with every value inside its
// axis bound (ErrIndexOutOfRange).
// Complexity: O(tuples * len(dims)).
func (p *Pattern) SetCoordinates(coords [][]int) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	if len(coords) != len(p.dims) {
		return ErrDimensionMismatch
	}
	n := len(coords[0])
	for d, axis := range coords {
		if len(axis) != n {
			return ErrLengthMismatch
		}
		for _, c := range axis {
			if c < 0 || c >= p.dims[d] {
				return ErrIndexOutOfRange
			}
		}
	}
	p.coords = make([][]int, len(coords))
	for d, axis := range coords {
		p.coords[d] = make([]int, n)
		copy(p.coords[d], axis)
	}
	p.commit(EncodingCoordinate, validCoordinate)

	return nil
}

// SetSDR copies other's most compact currently valid encoding into this
// node. Dimensions must match exactly (ErrDimensionMismatch).
// Complexity: O(popcount) when other has a sparse form, else O(Size).
func (p *Pattern) SetSDR(other SDR) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	if other == nil {
		return ErrNilSDR
	}
	if other.Destroyed() {
		return ErrNodeDestroyed
	}
	if !sameDimensions(p.dims, other.Dimensions()) {
		return ErrDimensionMismatch
	}

	// Prefer the cheapest valid source: sparse, then coordinate, then dense.
	switch {
	case other.Cached(EncodingSparse):
		sparse, err := other.GetSparse()
		if err != nil {
			return err
		}

		return p.SetSparse(sparse)
	case other.Cached(EncodingCoordinate):
		coords, err := other.GetCoordinates()
		if err != nil {
			return err
		}

		return p.SetCoordinates(coords)
	default:
		dense, err := other.GetDense()
		if err != nil {
			return err
		}

		return p.SetDense(dense)
	}
}

// Zero writes the empty pattern into all three encodings. No error is
// possible on a live node.
// Complexity: O(Size).
func (p *Pattern) Zero() error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	p.storeZero()
	p.subs.broadcastChange()

	return nil
}

// sparseRef materializes the sparse cache and returns it without copying.
// Internal fast path for Sum, Overlap, Equal and the other getters.
// Dense is the canonical conversion source when more than one cache is live.
func (p *Pattern) sparseRef() []int {
	if p.valid&validSparse == 0 {
		if p.valid&validDense != 0 {
			p.sparse = denseToSparse(p.dense)
		} else {
			p.sparse = coordinatesToSparse(p.dims, p.coords)
		}
		p.valid |= validSparse
	}

	return p.sparse
}

// GetDense returns the dense encoding, deriving and caching it from the
// sparse form if needed.
// Complexity: O(1) copy-dominated when cached, else O(Size).
func (p *Pattern) GetDense() ([]byte, error) {
	if p.destroyed {
		return nil, ErrNodeDestroyed
	}
	if p.valid&validDense == 0 {
		p.dense = sparseToDense(p.size, p.sparseRef())
		p.valid |= validDense
	}
	out := make([]byte, p.size)
	copy(out, p.dense)

	return out, nil
}

// GetSparse returns the sparse encoding, deriving and caching it if needed.
// Lists derived from dense are ascending; a list written via SetSparse keeps
// its caller order.
// Complexity: O(popcount) when cached, else O(Size).
func (p *Pattern) GetSparse() ([]int, error) {
	if p.destroyed {
		return nil, ErrNodeDestroyed
	}
	sparse := p.sparseRef()
	out := make([]int, len(sparse))
	copy(out, sparse)

	return out, nil
}

// GetCoordinates returns the coordinate encoding, deriving and caching it
// from the sparse form if needed. Tuple order follows the sparse order.
// Complexity: O(popcount * len(dims)) on a miss.
func (p *Pattern) GetCoordinates() ([][]int, error) {
	if p.destroyed {
		return nil, ErrNodeDestroyed
	}
	if p.valid&validCoordinate == 0 {
		p.coords = sparseToCoordinates(p.dims, p.sparseRef())
		p.valid |= validCoordinate
	}
	out := make([][]int, len(p.coords))
	for d, axis := range p.coords {
		out[d] = make([]int, len(axis))
		copy(out[d], axis)
	}

	return out, nil
}

// Attach registers a subscriber (a view or an observer) and returns its
// handle. Attaching to a destroyed node fails with ErrNodeDestroyed.
func (p *Pattern) Attach(s Subscriber) (int, error) {
	if p.destroyed {
		return 0, ErrNodeDestroyed
	}
	if s == nil {
		return 0, ErrNilSubscriber
	}

	return p.subs.attach(s), nil
}

// Detach removes a registration. Safe on destroyed nodes and unknown
// handles.
func (p *Pattern) Detach(handle int) {
	if p.destroyed {
		return
	}
	p.subs.detach(handle)
}

// Destroy tears the node down: every direct child receives OnDestroy (and
// cascades to its own children) before the storage is released. Idempotent;
// all later operations fail with ErrNodeDestroyed.
func (p *Pattern) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.subs.broadcastDestroy()
	p.dense = nil
	p.sparse = nil
	p.coords = nil
	p.valid = 0
}
