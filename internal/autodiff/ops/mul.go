package ops

import "github.com/born-ml/mikro/internal/scalar"

// MulOp is scalar multiplication: output = lhs * rhs.
//
// The aliased case (x * x) uses the shared cell's current data and doubles
// the contribution: d(x*x)/dx = 2x.
type MulOp struct {
	lhs *scalar.Cell
	rhs *scalar.Cell
	out *scalar.Cell
}

// NewMulOp creates a new MulOp over the given cells.
func NewMulOp(lhs, rhs, out *scalar.Cell) *MulOp {
	return &MulOp{lhs: lhs, rhs: rhs, out: out}
}

// Backward propagates other_operand * outGrad to each operand.
func (op *MulOp) Backward() {
	outGrad := op.out.Grad()

	if op.lhs == op.rhs {
		op.lhs.AddGrad(2 * op.lhs.Data() * outGrad)
		return
	}
	op.lhs.AddGrad(op.rhs.Data() * outGrad)
	op.rhs.AddGrad(op.lhs.Data() * outGrad)
}

// Inputs returns the operand cells ([lhs] when aliased).
func (op *MulOp) Inputs() []*scalar.Cell {
	if op.lhs == op.rhs {
		return []*scalar.Cell{op.lhs}
	}
	return []*scalar.Cell{op.lhs, op.rhs}
}

// Output returns the product cell.
func (op *MulOp) Output() *scalar.Cell {
	return op.out
}
