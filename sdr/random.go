package sdr

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Randomize replaces the pattern with round(sparsity*Size) bits chosen
// uniformly without replacement from rng. The resulting sparse list is
// ascending. The random source is caller-supplied so runs are reproducible
// under a fixed seed.
// Complexity: O(Size).
func (p *Pattern) Randomize(sparsity float64, rng *rand.Rand) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	if err := validateSparsity(sparsity); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilRandom
	}

	n := int(math.Round(sparsity * float64(p.size)))
	chosen := rng.Perm(p.size)[:n]
	sort.Ints(chosen)

	return p.SetSparse(chosen)
}

// AddNoise keeps a (1-fraction) share of the currently set bits, chosen at
// random, and moves the remainder onto positions that were previously
// clear. The bit count is unchanged, so the output density equals the input
// density. The resulting sparse list is ascending.
// Complexity: O(Size).
func (p *Pattern) AddNoise(fraction float64, rng *rand.Rand) error {
	if p.destroyed {
		return ErrNodeDestroyed
	}
	if err := validateSparsity(fraction); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilRandom
	}

	current := p.sparseRef()
	total := len(current)
	move := int(math.Round(fraction * float64(total)))

	on := make(map[int]struct{}, total)
	for _, idx := range current {
		on[idx] = struct{}{}
	}
	off := make([]int, 0, p.size-total)
	for i := 0; i < p.size; i++ {
		if _, set := on[i]; !set {
			off = append(off, i)
		}
	}
	if move > len(off) {
		return fmt.Errorf("sdr: AddNoise needs %d clear positions, have %d: %w",
			move, len(off), ErrBadSparsity)
	}

	kept := make([]int, total)
	copy(kept, current)
	rng.Shuffle(len(kept), func(i, j int) { kept[i], kept[j] = kept[j], kept[i] })
	rng.Shuffle(len(off), func(i, j int) { off[i], off[j] = off[j], off[i] })

	out := append(kept[:total-move], off[:move]...)
	sort.Ints(out)

	return p.SetSparse(out)
}

// validateSparsity rejects fractions outside [0, 1] and NaN.
func validateSparsity(f float64) error {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return ErrBadSparsity
	}

	return nil
}
