// Package nn implements neural network modules over the autodiff engine.
//
// This package provides the building blocks of a scalar multi-layer
// perceptron:
//   - Module interface: parameter access and gradient reset
//   - Neuron: weighted sum plus bias with optional ReLU
//   - Layer: neurons sharing one input arity
//   - MLP: stacked layers, hidden ReLU, linear output
//
// Modules compose purely over the engine's public operations; none of them
// reach into graph internals.
package nn

import "github.com/born-ml/mikro/internal/autodiff"

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable parameter nodes in deterministic
	// order: weights before bias within a neuron, neurons in layer order,
	// layers in network order.
	Parameters() []*autodiff.Value

	// ZeroGrad resets the gradient of every parameter. Gradients
	// accumulate across backward passes, so this must run before each
	// new pass.
	ZeroGrad()
}

// Activation selects a neuron's nonlinearity.
type Activation int

const (
	// Linear applies no nonlinearity (used for output layers).
	Linear Activation = iota
	// ReLU applies max(0, x) (used for hidden layers).
	ReLU
)

// String returns the activation name.
func (a Activation) String() string {
	if a == ReLU {
		return "ReLU"
	}
	return "Linear"
}
