package stats

import "math"

// Distribution feeds scalar samples through a bounded window and answers
// Min, Mean, Std and Max over the samples still inside it. Mean and Std
// are maintained incrementally; Min and Max scan the window.
type Distribution struct {
	win   *Window[float64]
	sum   float64
	sumSq float64
}

// NewDistribution returns an empty distribution over the given period.
func NewDistribution(period int) (*Distribution, error) {
	win, err := NewWindow[float64](period)
	if err != nil {
		return nil, err
	}

	return &Distribution{win: win}, nil
}

// Add records one sample, evicting the oldest when the period is full.
//
// Complexity: O(1).
func (d *Distribution) Add(v float64) {
	d.sum += v
	d.sumSq += v * v
	if dropped, wasFull := d.win.Append(v); wasFull {
		d.sum -= dropped
		d.sumSq -= dropped * dropped
	}
}

// Samples returns how many samples the window currently holds.
func (d *Distribution) Samples() int { return d.win.Len() }

// Mean returns the average of the windowed samples, 0 when empty.
func (d *Distribution) Mean() float64 {
	n := d.win.Len()
	if n == 0 {
		return 0
	}

	return d.sum / float64(n)
}

// Std returns the population standard deviation of the windowed samples.
func (d *Distribution) Std() float64 {
	n := d.win.Len()
	if n == 0 {
		return 0
	}
	mean := d.sum / float64(n)
	variance := d.sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0 // float drift around a constant signal
	}

	return math.Sqrt(variance)
}

// Min returns the smallest windowed sample, 0 when empty.
func (d *Distribution) Min() float64 {
	low := 0.0
	for i, v := range d.win.Data() {
		if i == 0 || v < low {
			low = v
		}
	}

	return low
}

// Max returns the largest windowed sample, 0 when empty.
func (d *Distribution) Max() float64 {
	high := 0.0
	for i, v := range d.win.Data() {
		if i == 0 || v > high {
			high = v
		}
	}

	return high
}
