package gen

import (
	"errors"
	"fmt"
	"sort"

	"cursor-generator/internal/plan"
)

// topoSortOperations orders resolved operations so that every operation is
// emitted after the operations its strategy calls. Among available
// operations the earliest in the input wins, so a plan already in emission
// order is returned unchanged.
func topoSortOperations(ops []plan.ResolvedOperation) ([]plan.ResolvedOperation, error) {
	index := make(map[plan.Operation]int, len(ops))
	for i, op := range ops {
		index[op.Op] = i
	}

	order, err := topoSortIndices(len(ops), func(i int) []int {
		deps := make([]int, 0, len(ops[i].DependsOn))
		for _, dep := range ops[i].DependsOn {
			j, ok := index[dep]
			if !ok {
				j = -1
			}

			deps = append(deps, j)
		}

		return deps
	})
	if err != nil {
		return nil, fmt.Errorf("ordering operations: %w", err)
	}

	sorted := make([]plan.ResolvedOperation, len(order))
	for i, idx := range order {
		sorted[i] = ops[idx]
	}

	return sorted, nil
}

// topoSortIndices returns indices in dependency order.
//
// Nodes are by index in the input slice.
// depsFn(i) yields indices that must come before i.
//
// The result is deterministic: when multiple nodes are available, we pick the
// smallest index. If a cycle exists, an error is returned.
func topoSortIndices(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		deps := depsFn(i)
		for _, d := range deps {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
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
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errors.New("cycle detected")
	}

	return order, nil
}
