package stats

import (
	"math"

	"github.com/katalvlaran/sdrkit/sdr"
)

// ActivationFrequency tracks how often each individual bit participates
// in the pattern across the window. A healthy encoder uses all of its
// bits about equally often; Entropy condenses that into one number.
type ActivationFrequency struct {
	node   sdr.SDR
	handle int
	closed bool
	win    *Window[[]int]
	counts []int // per-bit activation counts over the window
}

var _ sdr.Subscriber = (*ActivationFrequency)(nil)

// TrackActivationFrequency attaches a new tracker to node with the given
// window period.
func TrackActivationFrequency(node sdr.SDR, period int) (*ActivationFrequency, error) {
	win, err := NewWindow[[]int](period)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, sdr.ErrNilSDR
	}

	a := &ActivationFrequency{node: node, win: win, counts: make([]int, node.Size())}
	if a.handle, err = node.Attach(a); err != nil {
		return nil, err
	}

	return a, nil
}

// OnChange records which bits are set in the node's current pattern.
func (a *ActivationFrequency) OnChange() {
	if a.closed {
		return
	}
	sparse, err := a.node.GetSparse()
	if err != nil {
		return
	}

	for _, idx := range sparse {
		a.counts[idx]++
	}
	if dropped, wasFull := a.win.Append(sparse); wasFull {
		for _, idx := range dropped {
			a.counts[idx]--
		}
	}
}

// OnDestroy freezes the tracker.
func (a *ActivationFrequency) OnDestroy() {
	a.closed = true
	a.node = nil
}

// Close detaches the tracker from its node. Idempotent.
func (a *ActivationFrequency) Close() {
	if a.closed {
		return
	}
	a.node.Detach(a.handle)
	a.closed = true
	a.node = nil
}

// Samples returns the number of windowed patterns.
func (a *ActivationFrequency) Samples() int { return a.win.Len() }

// Frequencies returns the per-bit activation frequency over the window,
// each value in [0, 1]. All zeros before the first sample.
//
// Complexity: O(size).
func (a *ActivationFrequency) Frequencies() []float64 {
	out := make([]float64, len(a.counts))
	n := a.win.Len()
	if n == 0 {
		return out
	}
	for i, c := range a.counts {
		out[i] = float64(c) / float64(n)
	}

	return out
}

// Min returns the smallest per-bit frequency.
func (a *ActivationFrequency) Min() float64 { return a.fold(math.Min, math.Inf(1)) }

// Max returns the largest per-bit frequency.
func (a *ActivationFrequency) Max() float64 { return a.fold(math.Max, math.Inf(-1)) }

// Mean returns the average per-bit frequency.
func (a *ActivationFrequency) Mean() float64 {
	total := 0.0
	for _, f := range a.Frequencies() {
		total += f
	}

	return total / float64(len(a.counts))
}

// Std returns the standard deviation of the per-bit frequencies.
func (a *ActivationFrequency) Std() float64 {
	mean := a.Mean()
	variance := 0.0
	for _, f := range a.Frequencies() {
		variance += (f - mean) * (f - mean)
	}
	variance /= float64(len(a.counts))

	return math.Sqrt(variance)
}

// Entropy returns the mean binary entropy of the per-bit frequencies,
// normalized by the entropy of the mean frequency. 1 means every bit is
// used equally often; values near 0 mean a few bits dominate.
func (a *ActivationFrequency) Entropy() float64 {
	norm := binaryEntropy(a.Mean())
	if norm == 0 {
		return 0
	}

	total := 0.0
	for _, f := range a.Frequencies() {
		total += binaryEntropy(f)
	}

	return total / float64(len(a.counts)) / norm
}

func (a *ActivationFrequency) fold(pick func(float64, float64) float64, seed float64) float64 {
	if a.win.Len() == 0 {
		return 0
	}
	out := seed
	for _, f := range a.Frequencies() {
		out = pick(out, f)
	}

	return out
}

func binaryEntropy(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}

	return -p*math.Log2(p) - (1-p)*math.Log2(1-p)
}
