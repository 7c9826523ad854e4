package sdr

import "errors"

// Sentinel errors for SDR operations. All are returned eagerly at the point
// of misuse; a rejected call leaves the node's prior state untouched.
var (
	// ErrZeroDimension indicates a dimension list that is empty or contains
	// a value below one.
	ErrZeroDimension = errors.New("sdr: dimensions must be positive")

	// ErrDimensionMismatch indicates two nodes (or a node and a dimension
	// list) whose dimensions are incompatible for the requested operation.
	ErrDimensionMismatch = errors.New("sdr: dimension mismatch")

	// ErrLengthMismatch indicates an input whose length differs from the
	// expected one (dense buffer vs Size, coordinate lists of unequal length).
	ErrLengthMismatch = errors.New("sdr: input length mismatch")

	// ErrIndexOutOfRange indicates a flat or per-axis index outside its bound.
	ErrIndexOutOfRange = errors.New("sdr: index out of range")

	// ErrDuplicateIndex indicates a sparse list containing the same flat
	// index twice.
	ErrDuplicateIndex = errors.New("sdr: duplicate sparse index")

	// ErrBadSparsity indicates a sparsity fraction outside [0, 1].
	ErrBadSparsity = errors.New("sdr: sparsity must be within [0, 1]")

	// ErrNilRandom indicates a nil random source passed to Randomize or
	// AddNoise.
	ErrNilRandom = errors.New("sdr: nil random source")

	// ErrNilSDR indicates a nil node argument.
	ErrNilSDR = errors.New("sdr: nil SDR")

	// ErrNilSubscriber indicates a nil subscriber passed to Attach.
	ErrNilSubscriber = errors.New("sdr: nil subscriber")

	// ErrNodeDestroyed indicates any operation on a node whose source
	// subtree (or the node itself) has been destroyed. Terminal: the node
	// never becomes usable again.
	ErrNodeDestroyed = errors.New("sdr: node destroyed")

	// ErrReadOnlyView indicates a mutating call on a Reshape view. Views
	// have no storage of their own; mutate the source node instead.
	ErrReadOnlyView = errors.New("sdr: view is read-only")
)
