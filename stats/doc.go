// Package stats provides rolling metrics over live SDR nodes.
//
// Each tracker registers itself as a subscriber on a node and samples the
// node after every mutation, so the caller never has to feed data in by
// hand. Samples pass through a bounded window; statistics always describe
// the most recent period, not the whole history.
//
// Trackers:
//
//   - Sparsity            fraction of set bits per update
//   - ActivationFrequency how often each bit participates, plus Entropy
//   - Overlap             stability between consecutive patterns
//   - Metrics             the three above behind one constructor
//
// A tracker detaches cleanly via Close. If the node is destroyed first,
// the tracker freezes: its accumulated statistics stay readable, further
// sampling stops. All types follow the package-wide single-goroutine
// model of package sdr; none of them lock.
package stats
