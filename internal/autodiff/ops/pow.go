package ops

import (
	"math"

	"github.com/born-ml/mikro/internal/scalar"
)

// PowOp raises a node to a constant float64 exponent: output = base^exponent.
//
// The exponent is a plain scalar, not a graph node, so no gradient flows to
// it. Negative bases with fractional exponents follow float64 semantics and
// produce NaN rather than an error.
type PowOp struct {
	base     *scalar.Cell
	exponent float64
	out      *scalar.Cell
}

// NewPowOp creates a new PowOp over the given cells.
func NewPowOp(base *scalar.Cell, exponent float64, out *scalar.Cell) *PowOp {
	return &PowOp{base: base, exponent: exponent, out: out}
}

// Backward accumulates exponent * base^(exponent-1) * outGrad into the base.
func (op *PowOp) Backward() {
	op.base.AddGrad(op.exponent * math.Pow(op.base.Data(), op.exponent-1) * op.out.Grad())
}

// Inputs returns the base cell.
func (op *PowOp) Inputs() []*scalar.Cell {
	return []*scalar.Cell{op.base}
}

// Output returns the power cell.
func (op *PowOp) Output() *scalar.Cell {
	return op.out
}
