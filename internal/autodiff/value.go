// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every Value is a node in a dynamically built computation graph: leaves are
// created explicitly, and each arithmetic operation allocates a fresh node
// whose children are its operands and whose backward step (an ops.Operation)
// remembers how to push gradient into them. A single Backward call on the
// graph's root walks the graph in reverse topological order and accumulates
// every node's gradient via the chain rule.
//
// Usage:
//
//	x := autodiff.NewValue(-4)
//	y := x.Mul(x).AddScalar(2) // y = x² + 2
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = -8
//
// Gradient and data storage is shared: reusing a Value twice in an
// expression accumulates both contributions into the same cell, so
// x.Add(x).Backward() leaves x.Grad() == 2.
package autodiff

import (
	"fmt"
	"math"

	"github.com/born-ml/mikro/internal/autodiff/ops"
	"github.com/born-ml/mikro/internal/scalar"
)

// Value is one scalar node of the computation graph.
//
// A Value owns strong references to its children, so every cell a backward
// step can touch stays reachable for as long as the graph root does. The
// zero Value is not usable; construct leaves with NewValue.
type Value struct {
	cell     *scalar.Cell
	children []*Value
	step     ops.Operation
	op       string
}

// NewValue creates a leaf node holding data, with fresh gradient storage, no
// children, and no backward step.
func NewValue(data float64) *Value {
	return &Value{cell: scalar.NewCell(data)}
}

// Data returns the node's value.
func (v *Value) Data() float64 {
	return v.cell.Data()
}

// SetData replaces the node's value. Training code uses this to apply
// parameter updates between iterations.
func (v *Value) SetData(data float64) {
	v.cell.SetData(data)
}

// Grad returns the gradient accumulated by the last backward pass.
func (v *Value) Grad() float64 {
	return v.cell.Grad()
}

// ZeroGrad resets the node's gradient to zero. Gradients accumulate across
// backward passes, so callers reset parameters before each new pass.
func (v *Value) ZeroGrad() {
	v.cell.ZeroGrad()
}

// Cell exposes the node's shared storage. Two Values denote the same
// logical node exactly when their cells are the same pointer.
func (v *Value) Cell() *scalar.Cell {
	return v.cell
}

// Children returns the operand nodes that produced this node. Aliased
// binary operations (x + x) record a single child.
func (v *Value) Children() []*Value {
	return v.children
}

// Op returns the debug label of the operation that produced this node, or
// "" for leaves.
func (v *Value) Op() string {
	return v.op
}

// Add returns a new node computing v + other.
func (v *Value) Add(other *Value) *Value {
	out := scalar.NewCell(v.cell.Data() + other.cell.Data())
	return &Value{
		cell:     out,
		children: binaryChildren(v, other),
		step:     ops.NewAddOp(v.cell, other.cell, out),
		op:       "add",
	}
}

// AddScalar returns a new node computing v + s, promoting s to a leaf.
func (v *Value) AddScalar(s float64) *Value {
	return v.Add(NewValue(s))
}

// Mul returns a new node computing v * other.
func (v *Value) Mul(other *Value) *Value {
	out := scalar.NewCell(v.cell.Data() * other.cell.Data())
	return &Value{
		cell:     out,
		children: binaryChildren(v, other),
		step:     ops.NewMulOp(v.cell, other.cell, out),
		op:       "mul",
	}
}

// MulScalar returns a new node computing v * s, promoting s to a leaf.
func (v *Value) MulScalar(s float64) *Value {
	return v.Mul(NewValue(s))
}

// Neg returns a new node computing -v.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns a new node computing v - other.
//
// Subtraction is canonicalized to v + other*(-1): correctness comes from
// the add and mul rules at the cost of one extra graph node.
func (v *Value) Sub(other *Value) *Value {
	out := v.Add(other.MulScalar(-1))
	out.op = "sub"
	return out
}

// SubScalar returns a new node computing v - s.
func (v *Value) SubScalar(s float64) *Value {
	return v.Sub(NewValue(s))
}

// ScalarSub returns a new node computing s - v, promoting s to a leaf.
func ScalarSub(s float64, v *Value) *Value {
	return NewValue(s).Sub(v)
}

// Div returns a new node computing v / other.
//
// Division is canonicalized to v * other^(-1). Division by a zero-valued
// node follows float64 semantics and yields Inf or NaN.
func (v *Value) Div(other *Value) *Value {
	out := v.Mul(other.Pow(-1))
	out.op = "div"
	return out
}

// DivScalar returns a new node computing v / s.
func (v *Value) DivScalar(s float64) *Value {
	return v.Div(NewValue(s))
}

// ScalarDiv returns a new node computing s / v, promoting s to a leaf.
func ScalarDiv(s float64, v *Value) *Value {
	return NewValue(s).Div(v)
}

// Pow returns a new node computing v raised to the constant exponent.
func (v *Value) Pow(exponent float64) *Value {
	out := scalar.NewCell(math.Pow(v.cell.Data(), exponent))
	return &Value{
		cell:     out,
		children: []*Value{v},
		step:     ops.NewPowOp(v.cell, exponent, out),
		op:       "pow",
	}
}

// ReLU returns a new node computing max(0, v).
func (v *Value) ReLU() *Value {
	out := scalar.NewCell(math.Max(0, v.cell.Data()))
	return &Value{
		cell:     out,
		children: []*Value{v},
		step:     ops.NewReLUOp(v.cell, out),
		op:       "relu",
	}
}

// Sum folds values with Add starting from a fresh zero leaf, so the running
// accumulator is itself part of the graph. Summing an empty slice returns
// the zero leaf.
func Sum(values []*Value) *Value {
	acc := NewValue(0)
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// String renders the node for debugging.
func (v *Value) String() string {
	return fmt.Sprintf("Value[data=%v, grad=%v]", v.cell.Data(), v.cell.Grad())
}

// binaryChildren collapses the operand list to a single child when both
// operands share storage, so the topological walk visits the cell once.
func binaryChildren(lhs, rhs *Value) []*Value {
	if lhs.cell == rhs.cell {
		return []*Value{lhs}
	}
	return []*Value{lhs, rhs}
}
