package stats

import (
	"fmt"

	"github.com/katalvlaran/sdrkit/sdr"
)

// Metrics bundles the three trackers behind one constructor and one Close.
type Metrics struct {
	Sparsity   *Sparsity
	Activation *ActivationFrequency
	Overlap    *Overlap
}

// TrackMetrics attaches all three trackers to node with a shared window
// period.
func TrackMetrics(node sdr.SDR, period int) (*Metrics, error) {
	sp, err := TrackSparsity(node, period)
	if err != nil {
		return nil, err
	}
	af, err := TrackActivationFrequency(node, period)
	if err != nil {
		sp.Close()

		return nil, err
	}
	ov, err := TrackOverlap(node, period)
	if err != nil {
		sp.Close()
		af.Close()

		return nil, err
	}

	return &Metrics{Sparsity: sp, Activation: af, Overlap: ov}, nil
}

// Close detaches all three trackers. Idempotent.
func (m *Metrics) Close() {
	m.Sparsity.Close()
	m.Activation.Close()
	m.Overlap.Close()
}

// String renders a four-line summary of the accumulated statistics.
func (m *Metrics) String() string {
	return fmt.Sprintf(
		"Sparsity Min/Mean/Std/Max %g / %g / %g / %g\n"+
			"Activation Frequency Min/Mean/Std/Max %g / %g / %g / %g\n"+
			"Entropy %g\n"+
			"Overlap Min/Mean/Std/Max %g / %g / %g / %g\n",
		m.Sparsity.Min(), m.Sparsity.Mean(), m.Sparsity.Std(), m.Sparsity.Max(),
		m.Activation.Min(), m.Activation.Mean(), m.Activation.Std(), m.Activation.Max(),
		m.Activation.Entropy(),
		m.Overlap.Min(), m.Overlap.Mean(), m.Overlap.Std(), m.Overlap.Max())
}
