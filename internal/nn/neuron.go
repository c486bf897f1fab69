package nn

import (
	"fmt"

	"github.com/born-ml/mikro/internal/autodiff"
)

// Neuron computes activation(sum(w_i * x_i) + b) over a fixed input arity.
//
// Weights initialize uniformly from [-1, 1); the bias initializes to zero.
type Neuron struct {
	w    []*autodiff.Value
	b    *autodiff.Value
	kind Activation
}

// NewNeuron creates a neuron with nin inputs and the given activation.
func NewNeuron(nin int, kind Activation) *Neuron {
	return &Neuron{
		w:    Uniform(nin),
		b:    autodiff.NewValue(0),
		kind: kind,
	}
}

// Call evaluates the neuron on x. Panics if len(x) does not match the
// neuron's input arity.
func (n *Neuron) Call(x []*autodiff.Value) *autodiff.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("nn: Neuron.Call: expected %d inputs, got %d", len(n.w), len(x)))
	}

	products := make([]*autodiff.Value, len(n.w))
	for i, wi := range n.w {
		products[i] = wi.Mul(x[i])
	}
	act := autodiff.Sum(products).Add(n.b)

	if n.kind == ReLU {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// ZeroGrad resets gradients of all parameters.
func (n *Neuron) ZeroGrad() {
	for _, p := range n.Parameters() {
		p.ZeroGrad()
	}
}

// String renders the neuron, e.g. "ReLUNeuron(2)".
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.kind, len(n.w))
}
