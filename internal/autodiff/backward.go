package autodiff

import "github.com/born-ml/mikro/internal/scalar"

// Backward computes gradients for every node reachable from v.
//
// Algorithm:
//  1. Build a post-order topological ordering of the graph, visiting each
//     distinct storage cell exactly once. Identity is cell pointer
//     identity, never value equality: two nodes with equal data are
//     distinct unless they share storage.
//  2. Seed the root: d(v)/d(v) = 1.
//  3. Walk the ordering in reverse, invoking each node's backward step.
//     Leaves have no step and are skipped; their gradients were already
//     accumulated by their parents.
//
// The topological guarantee is a correctness invariant: a node's gradient
// must be fully accumulated from all of its parents before its own step
// propagates it further. Gradients accumulate additively, so callers reset
// them (ZeroGrad) before running a fresh pass.
func (v *Value) Backward() {
	var topo []*Value
	visited := make(map[*scalar.Cell]bool)

	var build func(*Value)
	build = func(node *Value) {
		if visited[node.cell] {
			return
		}
		visited[node.cell] = true
		for _, child := range node.children {
			build(child)
		}
		topo = append(topo, node)
	}
	build(v)

	v.cell.SetGrad(1)
	for i := len(topo) - 1; i >= 0; i-- {
		if topo[i].step != nil {
			topo[i].step.Backward()
		}
	}
}
