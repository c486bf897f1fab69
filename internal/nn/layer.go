package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/mikro/internal/autodiff"
)

// Layer is an ordered sequence of neurons sharing one input arity.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each taking nin inputs with the
// given activation.
func NewLayer(nin, nout int, kind Activation) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, kind)
	}
	return &Layer{neurons: neurons}
}

// Call evaluates every neuron on the same inputs, one output per neuron.
func (l *Layer) Call(x []*autodiff.Value) []*autodiff.Value {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Call(x)
	}
	return outs
}

// Parameters returns the parameters of all neurons in order.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters.
func (l *Layer) ZeroGrad() {
	for _, p := range l.Parameters() {
		p.ZeroGrad()
	}
}

// String renders the layer, e.g. "Layer of [ReLUNeuron(2),ReLUNeuron(2)]".
func (l *Layer) String() string {
	names := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		names[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(names, ","))
}
