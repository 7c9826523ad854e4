package sdr

import (
	"fmt"
	"strings"
)

// sameDimensions reports exact equality of two dimension lists.
// Complexity: O(len(a)).
func sameDimensions(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Sum returns the number of set bits.
// Complexity: O(1) when a sparse or coordinate cache is live, else O(Size).
func (p *Pattern) Sum() (int, error) {
	if p.destroyed {
		return 0, ErrNodeDestroyed
	}
	switch {
	case p.valid&validSparse != 0:
		return len(p.sparse), nil
	case p.valid&validCoordinate != 0:
		return len(p.coords[0]), nil
	default:
		n := 0
		for _, v := range p.dense {
			if v != 0 {
				n++
			}
		}

		return n, nil
	}
}

// Overlap returns the size of the flat-index intersection with other.
// Dimensions must match exactly (ErrDimensionMismatch).
// Complexity: O(n log n) over the two sparse lists.
func (p *Pattern) Overlap(other SDR) (int, error) {
	if p.destroyed {
		return 0, ErrNodeDestroyed
	}
	if other == nil {
		return 0, ErrNilSDR
	}
	if !sameDimensions(p.dims, other.Dimensions()) {
		return 0, ErrDimensionMismatch
	}
	theirs, err := other.GetSparse()
	if err != nil {
		return 0, err
	}

	return overlapCount(p.sparseRef(), theirs), nil
}

// Equal reports whether both nodes have the same dimensions and decode to
// the same set of flat indices. Encoding choice and list order are
// irrelevant; differing dimensions compare unequal, not as an error.
func (p *Pattern) Equal(other SDR) (bool, error) {
	if p.destroyed {
		return false, ErrNodeDestroyed
	}
	if other == nil {
		return false, ErrNilSDR
	}
	if other.Destroyed() {
		return false, ErrNodeDestroyed
	}
	if !sameDimensions(p.dims, other.Dimensions()) {
		return false, nil
	}
	theirs, err := other.GetSparse()
	if err != nil {
		return false, err
	}

	return sameBitSet(p.sparseRef(), theirs), nil
}

// overlapCount intersects two sparse lists after canonicalizing order.
func overlapCount(a, b []int) int {
	sa, sb := sortedCopy(a), sortedCopy(b)
	n, i, j := 0, 0, 0
	for i < len(sa) && j < len(sb) {
		switch {
		case sa[i] == sb[j]:
			n++
			i++
			j++
		case sa[i] < sb[j]:
			i++
		default:
			j++
		}
	}

	return n
}

// sameBitSet reports set equality of two sparse lists, order-independent.
func sameBitSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	sa, sb := sortedCopy(a), sortedCopy(b)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, e.g. "SDR{4, 4}: 4, 5, 10".
func (p *Pattern) String() string {
	if p.destroyed {
		return "SDR(destroyed)"
	}

	return formatNode(p.dims, p.sparseRef())
}

// formatNode renders a dimension list plus ascending sparse indices.
func formatNode(dims, sparse []int) string {
	var sb strings.Builder
	sb.WriteString("SDR{")
	for i, d := range dims {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", d)
	}
	sb.WriteString("}:")
	for i, idx := range sortedCopy(sparse) {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %d", idx)
	}

	return sb.String()
}
