package ops

import "github.com/born-ml/mikro/internal/scalar"

// AddOp is scalar addition: output = lhs + rhs.
//
// When both operands share one cell (the caller wrote x + x), the gradient
// contribution is doubled and written once, so the single shared storage
// ends up with d(x+x)/dx = 2 without being visited twice.
type AddOp struct {
	lhs *scalar.Cell
	rhs *scalar.Cell
	out *scalar.Cell
}

// NewAddOp creates a new AddOp over the given cells.
func NewAddOp(lhs, rhs, out *scalar.Cell) *AddOp {
	return &AddOp{lhs: lhs, rhs: rhs, out: out}
}

// Backward propagates the output gradient unchanged to both operands.
func (op *AddOp) Backward() {
	outGrad := op.out.Grad()

	if op.lhs == op.rhs {
		op.lhs.AddGrad(2 * outGrad)
		return
	}
	op.lhs.AddGrad(outGrad)
	op.rhs.AddGrad(outGrad)
}

// Inputs returns the operand cells ([lhs] when aliased).
func (op *AddOp) Inputs() []*scalar.Cell {
	if op.lhs == op.rhs {
		return []*scalar.Cell{op.lhs}
	}
	return []*scalar.Cell{op.lhs, op.rhs}
}

// Output returns the sum cell.
func (op *AddOp) Output() *scalar.Cell {
	return op.out
}
