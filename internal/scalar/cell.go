// Package scalar provides the shared storage cell behind every graph node.
//
// A Cell holds one differentiable quantity: its value and its accumulated
// gradient. Many graph nodes may hold the same *Cell (reusing a variable in
// an expression, parameters referenced by backward steps), and all of them
// observe and mutate the same storage. Node identity throughout the engine
// is pointer identity of the Cell, never value equality.
package scalar

// Cell is the mutable data/gradient storage for one logical node.
type Cell struct {
	data float64
	grad float64
}

// NewCell creates fresh, independent storage holding data with a zero
// gradient.
func NewCell(data float64) *Cell {
	return &Cell{data: data}
}

// Data returns the stored value.
func (c *Cell) Data() float64 {
	return c.data
}

// SetData replaces the stored value. Training code uses this to apply
// parameter updates between iterations.
func (c *Cell) SetData(data float64) {
	c.data = data
}

// Grad returns the accumulated gradient.
func (c *Cell) Grad() float64 {
	return c.grad
}

// SetGrad overwrites the gradient. Used only for root initialization in the
// backward pass; everything else accumulates via AddGrad.
func (c *Cell) SetGrad(grad float64) {
	c.grad = grad
}

// AddGrad accumulates delta into the gradient. Accumulation is additive
// across every path from this cell to the backward root.
func (c *Cell) AddGrad(delta float64) {
	c.grad += delta
}

// ZeroGrad resets the gradient to zero.
func (c *Cell) ZeroGrad() {
	c.grad = 0
}
