package stats

import (
	"sort"

	"github.com/katalvlaran/sdrkit/sdr"
)

// Overlap tracks pattern stability: for every mutation, the fraction of
// the previously set bits that are still set afterwards. 1 means the
// pattern did not move, 0 means it was replaced wholesale.
type Overlap struct {
	node   sdr.SDR
	handle int
	closed bool
	prev   []int // sorted flat indices of the previous state
	primed bool
	dist   *Distribution
}

var _ sdr.Subscriber = (*Overlap)(nil)

// TrackOverlap attaches a new tracker to node with the given window
// period. The first mutation only primes the tracker; samples start with
// the second.
func TrackOverlap(node sdr.SDR, period int) (*Overlap, error) {
	dist, err := NewDistribution(period)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, sdr.ErrNilSDR
	}

	o := &Overlap{node: node, dist: dist}
	if o.handle, err = node.Attach(o); err != nil {
		return nil, err
	}

	return o, nil
}

// OnChange compares the node's new pattern against the previous one.
func (o *Overlap) OnChange() {
	if o.closed {
		return
	}
	cur, err := o.node.GetSparse()
	if err != nil {
		return
	}
	sort.Ints(cur) // direct SetSparse may have left caller order

	if o.primed && len(o.prev) > 0 {
		o.dist.Add(float64(sortedOverlap(o.prev, cur)) / float64(len(o.prev)))
	}
	o.prev = cur
	o.primed = true
}

// OnDestroy freezes the tracker.
func (o *Overlap) OnDestroy() {
	o.closed = true
	o.node = nil
}

// Close detaches the tracker from its node. Idempotent.
func (o *Overlap) Close() {
	if o.closed {
		return
	}
	o.node.Detach(o.handle)
	o.closed = true
	o.node = nil
}

// Samples returns the number of windowed overlap samples.
func (o *Overlap) Samples() int { return o.dist.Samples() }

// Min returns the smallest windowed overlap fraction.
func (o *Overlap) Min() float64 { return o.dist.Min() }

// Mean returns the average windowed overlap fraction.
func (o *Overlap) Mean() float64 { return o.dist.Mean() }

// Std returns the standard deviation of the windowed overlap fractions.
func (o *Overlap) Std() float64 { return o.dist.Std() }

// Max returns the largest windowed overlap fraction.
func (o *Overlap) Max() float64 { return o.dist.Max() }

// sortedOverlap counts common elements of two ascending index lists.
//
// Complexity: O(len(a) + len(b)).
func sortedOverlap(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return count
}
