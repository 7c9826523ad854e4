// Package sdr implements the Sparse Distributed Representation core:
// the Pattern type, Reshape views, and the subscriber tree that keeps
// derived nodes consistent with their source.
//
// A Pattern holds one bit set under fixed dimensions and exposes it in
// three encodings:
//
//   - dense:      []byte of length Size, one value per flat index
//   - sparse:     []int of distinct flat indices of set bits
//   - coordinate: one []int per dimension; the i-th entry of each list,
//     taken together, is one set bit's per-axis position
//
// The encoding written last is authoritative; the other two are derived
// lazily on first read and cached until the next mutation. Flat indices use
// row-major mixed-radix order: the last dimension varies fastest.
//
// A Reshape view reinterprets a source node under new dimensions of equal
// total size without copying the bits. Views are read-only; mutate the
// source instead. Change notifications flow from a node to its direct
// children only, and each child forwards them, so one mutation costs O(1)
// amortized per descendant. Destroying a node tears down its whole subtree:
// every descendant becomes permanently invalid and further reads return
// ErrNodeDestroyed.
//
// Sparse order rule: any sparse list the package derives (from dense,
// coordinates, Randomize or AddNoise) is ascending; a list passed to
// SetSparse keeps the caller's order until the next derivation.
//
// Nothing in this package locks. Concurrent mutation of a shared node, or
// mutation concurrent with reads on its descendants, must be serialized by
// the caller.
package sdr
