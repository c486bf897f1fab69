package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/mikro/internal/autodiff"
)

// MLP is a multi-layer perceptron: stacked layers with compatible arities.
// Every layer except the last uses ReLU; the last is linear so it can
// represent unbounded regression or logit outputs.
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts (hidden and output sizes). Panics if nouts is empty.
func NewMLP(nin int, nouts []int) *MLP {
	if len(nouts) == 0 {
		panic("nn: NewMLP: empty layer spec")
	}

	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range nouts {
		kind := ReLU
		if i == len(nouts)-1 {
			kind = Linear
		}
		layers[i] = NewLayer(sizes[i], sizes[i+1], kind)
	}
	return &MLP{layers: layers}
}

// Call feeds x through every layer in order.
func (m *MLP) Call(x []*autodiff.Value) []*autodiff.Value {
	for _, l := range m.layers {
		x = l.Call(x)
	}
	return x
}

// Parameters returns the parameters of all layers in order.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// ZeroGrad resets gradients of all parameters.
func (m *MLP) ZeroGrad() {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}

// String renders the network, e.g. "MLP of [Layer of [...],Layer of [...]]".
func (m *MLP) String() string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(names, ","))
}
