// Package sdrkit is an in-memory toolkit for Sparse Distributed
// Representations (SDRs) — the fixed-size, low-density bit patterns passed
// between encoders, spatial poolers, temporal memories and classifiers.
//
// 🚀 What is sdrkit?
//
//	A small, focused library that keeps one bit pattern consistent across
//	three mutually derivable encodings:
//	  • dense      — one value per position, full length
//	  • sparse     — flat indices of set bits
//	  • coordinate — per-dimension index tuples (row-major, last axis fastest)
//
// ✨ Why choose sdrkit?
//
//   - Lazy conversion – the encoding you wrote is authoritative, the others
//     are computed on first read and cached until the next mutation
//   - Zero-copy views – Reshape projects one pattern under new dimensions
//     without duplicating the bits; invalidation propagates down the tree
//   - Explicit lifetimes – destroying a node detaches its whole subtree,
//     and every read after that fails loudly instead of returning stale data
//   - Four persistence formats – binary, portable, JSON and XML, all
//     versioned and round-trip safe
//
// Everything is organized under three subpackages plus one tool:
//
//	sdr/         — Pattern, Reshape views, subscriber tree, randomization
//	sdrio/       — versioned save/load across the four stream formats
//	stats/       — rolling sparsity / activation / overlap trackers
//	cmd/sdrtool/ — generate, convert and inspect saved patterns
//
// Quick ASCII example:
//
//	dimensions {4,4}, bits at flat indices 4, 5, 10:
//
//	    . . . .
//	    X X . .
//	    . . X .
//	    . . . .
//
// The library is single-threaded by design: callers that share a node across
// goroutines must serialize mutation externally.
package sdrkit
