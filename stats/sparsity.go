package stats

import "github.com/katalvlaran/sdrkit/sdr"

// Sparsity tracks the fraction of set bits after every mutation of the
// node it is attached to.
type Sparsity struct {
	node   sdr.SDR
	handle int
	closed bool
	dist   *Distribution
}

var _ sdr.Subscriber = (*Sparsity)(nil)

// TrackSparsity attaches a new tracker to node with the given window
// period. Fails with sdr.ErrNilSDR, sdr.ErrNodeDestroyed or ErrZeroPeriod.
func TrackSparsity(node sdr.SDR, period int) (*Sparsity, error) {
	dist, err := NewDistribution(period)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, sdr.ErrNilSDR
	}

	s := &Sparsity{node: node, dist: dist}
	if s.handle, err = node.Attach(s); err != nil {
		return nil, err
	}

	return s, nil
}

// OnChange samples the node's current sparsity.
func (s *Sparsity) OnChange() {
	if s.closed {
		return
	}
	sum, err := s.node.Sum()
	if err != nil {
		return
	}
	s.dist.Add(float64(sum) / float64(s.node.Size()))
}

// OnDestroy freezes the tracker; the node is tearing itself down and has
// already dropped the registration.
func (s *Sparsity) OnDestroy() {
	s.closed = true
	s.node = nil
}

// Close detaches the tracker from its node. Statistics stay readable.
// Idempotent.
func (s *Sparsity) Close() {
	if s.closed {
		return
	}
	s.node.Detach(s.handle)
	s.closed = true
	s.node = nil
}

// Samples returns the number of windowed sparsity samples.
func (s *Sparsity) Samples() int { return s.dist.Samples() }

// Min returns the smallest windowed sparsity.
func (s *Sparsity) Min() float64 { return s.dist.Min() }

// Mean returns the average windowed sparsity.
func (s *Sparsity) Mean() float64 { return s.dist.Mean() }

// Std returns the standard deviation of the windowed sparsity.
func (s *Sparsity) Std() float64 { return s.dist.Std() }

// Max returns the largest windowed sparsity.
func (s *Sparsity) Max() float64 { return s.dist.Max() }
