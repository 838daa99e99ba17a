package plan

import (
	"errors"
	"fmt"
	"slices"
)

// errCycle is returned by topoSort when the dependency graph loops.
var errCycle = errors.New("cycle detected")

// topoSort returns the indices 0..n-1 so that every node comes after the
// nodes it depends on. depsFn(i) yields the indices that must precede i.
//
// The result is deterministic: when several nodes are ready the smallest
// index goes first, so an acyclic input without dependencies keeps its order.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k, _ := slices.BinarySearch(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		var stuck []int

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, i)
			}
		}

		return nil, fmt.Errorf("%w among %v", errCycle, stuck)
	}

	return order, nil
}
