// Package ops defines the backward rules for the engine's operation set.
//
// Each operation captures, at graph-construction time, the storage cells of
// its operands and its output. During the backward pass the graph walk
// invokes Backward exactly once per operation, which applies the local chain
// rule: read the output cell's current gradient and accumulate into the
// input cells.
//
// Supported operations:
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - PowOp: d(a^n)/da = n * a^(n-1) for constant n
//   - ReLUOp: d(relu(a))/da = 1 if relu(a) > 0, else 0
//
// Subtraction and division carry no rules of their own: the engine
// canonicalizes a-b to a + b*(-1) and a/b to a * b^(-1), so AddOp, MulOp,
// and PowOp cover the whole arithmetic surface.
package ops

import "github.com/born-ml/mikro/internal/scalar"

// Operation is one recorded step of the computation graph.
//
// Backward must read the data of the operands as captured at construction
// time and the gradient of the output as it stands when called. The graph's
// topological walk guarantees the output gradient is fully accumulated
// before Backward runs.
type Operation interface {
	// Backward accumulates the local chain-rule contribution into the
	// input cells' gradients.
	Backward()

	// Inputs returns the operand cells. Aliased binary operations (both
	// operands sharing one cell) report a single input.
	Inputs() []*scalar.Cell

	// Output returns the cell produced by this operation.
	Output() *scalar.Cell
}
