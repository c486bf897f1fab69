package ops

import "github.com/born-ml/mikro/internal/scalar"

// ReLUOp is the rectified linear unit: output = max(0, input).
//
// The backward rule gates on the output value: when the output is positive
// the full gradient flows through, otherwise nothing is added. The zero case
// contributes nothing rather than overwriting, so gradient already
// accumulated on the input from other paths is preserved.
type ReLUOp struct {
	in  *scalar.Cell
	out *scalar.Cell
}

// NewReLUOp creates a new ReLUOp over the given cells.
func NewReLUOp(in, out *scalar.Cell) *ReLUOp {
	return &ReLUOp{in: in, out: out}
}

// Backward accumulates the output gradient when the output is positive.
func (op *ReLUOp) Backward() {
	if op.out.Data() > 0 {
		op.in.AddGrad(op.out.Grad())
	}
}

// Inputs returns the input cell.
func (op *ReLUOp) Inputs() []*scalar.Cell {
	return []*scalar.Cell{op.in}
}

// Output returns the rectified cell.
func (op *ReLUOp) Output() *scalar.Cell {
	return op.out
}
