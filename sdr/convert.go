package sdr

import "sort"

// product multiplies a dimension list. Callers validate positivity first.
// Complexity: O(len(dims)).
func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}

// validateDimensions rejects empty lists and non-positive entries.
// Complexity: O(len(dims)).
func validateDimensions(dims []int) error {
	if len(dims) == 0 {
		return ErrZeroDimension
	}
	for _, d := range dims {
		if d < 1 {
			return ErrZeroDimension
		}
	}

	return nil
}

// flatIndex composes a per-axis coordinate into a row-major flat index.
// The last dimension varies fastest (mixed-radix encode).
// Complexity: O(len(dims)).
func flatIndex(dims []int, coord []int) int {
	flat := 0
	for d, c := range coord {
		flat = flat*dims[d] + c
	}

	return flat
}

// axisIndices decomposes a flat index into one position per axis
// (mixed-radix decode, inverse of flatIndex).
// Complexity: O(len(dims)).
func axisIndices(dims []int, flat int) []int {
	coord := make([]int, len(dims))
	for d := len(dims) - 1; d >= 0; d-- {
		coord[d] = flat % dims[d]
		flat /= dims[d]
	}

	return coord
}

// denseToSparse scans a dense buffer and collects the positions of set
// bits in ascending order. Any non-zero value counts as set.
// Complexity: O(len(values)).
func denseToSparse(values []byte) []int {
	sparse := make([]int, 0)
	for i, v := range values {
		if v != 0 {
			sparse = append(sparse, i)
		}
	}

	return sparse
}

// sparseToDense zero-fills a dense buffer of the given size and scatters
// the sparse indices into it. Indices are assumed validated.
// Complexity: O(size).
func sparseToDense(size int, sparse []int) []byte {
	dense := make([]byte, size)
	for _, idx := range sparse {
		dense[idx] = 1
	}

	return dense
}

// sparseToCoordinates decomposes each flat index under dims, preserving the
// sparse list's order across the per-axis lists.
// Complexity: O(len(sparse) * len(dims)).
func sparseToCoordinates(dims []int, sparse []int) [][]int {
	coords := make([][]int, len(dims))
	for d := range coords {
		coords[d] = make([]int, 0, len(sparse))
	}
	for _, flat := range sparse {
		axis := axisIndices(dims, flat)
		for d, c := range axis {
			coords[d] = append(coords[d], c)
		}
	}

	return coords
}

// coordinatesToSparse flattens per-axis lists tuple by tuple, preserving
// tuple order. Values are assumed validated against dims.
// Complexity: O(tuples * len(dims)).
func coordinatesToSparse(dims []int, coords [][]int) []int {
	n := 0
	if len(coords) > 0 {
		n = len(coords[0])
	}
	sparse := make([]int, 0, n)
	coord := make([]int, len(dims))
	for i := 0; i < n; i++ {
		for d := range dims {
			coord[d] = coords[d][i]
		}
		sparse = append(sparse, flatIndex(dims, coord))
	}

	return sparse
}

// sortedCopy returns an ascending copy of a sparse list, used where order
// independence is required (equality, overlap counting).
// Complexity: O(n log n).
func sortedCopy(sparse []int) []int {
	out := make([]int, len(sparse))
	copy(out, sparse)
	sort.Ints(out)

	return out
}
