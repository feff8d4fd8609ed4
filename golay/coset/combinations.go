package coset

import "github.com/nathanhack/leech/golay"

// combinations enumerates the k-element subsets of {0..n-1} in lexicographic
// order of the index tuples: (0,1,2), (0,1,3), ... for k==3. The order is the
// reproducibility contract for the table; regenerating with the same order
// yields byte-identical output.
type combinations struct {
	n, k    int
	indices []int
	started bool
}

func newCombinations(n, k int) *combinations {
	if k < 0 || k > n {
		panic("combinations requires 0 <= k <= n")
	}
	return &combinations{n: n, k: k}
}

// next advances to the following subset, returning false once exhausted.
func (c *combinations) next() bool {
	if !c.started {
		c.started = true
		c.indices = make([]int, c.k)
		for i := range c.indices {
			c.indices[i] = i
		}
		return true
	}

	// standard lexicographic stepping: bump the rightmost index that has
	// room, then pack the tail right after it
	for i := c.k - 1; i >= 0; i-- {
		if c.indices[i] < c.n-c.k+i {
			c.indices[i]++
			for j := i + 1; j < c.k; j++ {
				c.indices[j] = c.indices[j-1] + 1
			}
			return true
		}
	}
	return false
}

// pattern returns the current subset as a bit pattern with 1s exactly at the
// subset's positions.
func (c *combinations) pattern() golay.Pattern {
	var p golay.Pattern
	for _, i := range c.indices {
		p |= 1 << i
	}
	return p
}
