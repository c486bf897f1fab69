package optim

import (
	"testing"

	"github.com/born-ml/mikro/internal/autodiff"
	"github.com/stretchr/testify/assert"
)

// TestSGD_Step tests the basic update: param -= lr * grad.
func TestSGD_Step(t *testing.T) {
	p := autodiff.NewValue(2)
	loss := p.Mul(p) // dloss/dp = 4
	loss.Backward()

	sgd := NewSGD([]*autodiff.Value{p}, SGDConfig{LR: 0.1})
	sgd.Step()

	assert.InDelta(t, 1.6, p.Data(), 1e-12)
}

// TestSGD_DefaultLR tests that a zero LR config falls back to 0.01.
func TestSGD_DefaultLR(t *testing.T) {
	sgd := NewSGD(nil, SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())
}

// TestSGD_Decay tests the linear decay schedule lr_k = lr * (1 - decay*k).
func TestSGD_Decay(t *testing.T) {
	p := autodiff.NewValue(0)
	sgd := NewSGD([]*autodiff.Value{p}, SGDConfig{LR: 1, Decay: 0.5})

	// grad fixed at 1 for each step
	p.Cell().SetGrad(1)
	sgd.Step() // lr = 1
	assert.InDelta(t, -1.0, p.Data(), 1e-12)

	p.Cell().SetGrad(1)
	sgd.Step() // lr = 0.5
	assert.InDelta(t, -1.5, p.Data(), 1e-12)

	p.Cell().SetGrad(1)
	sgd.Step() // lr would be 0, floored at 1% of base
	assert.InDelta(t, -1.51, p.Data(), 1e-12)
}

// TestSGD_ZeroGrad tests clearing parameter gradients.
func TestSGD_ZeroGrad(t *testing.T) {
	p := autodiff.NewValue(3)
	loss := p.MulScalar(5)
	loss.Backward()
	assert.Equal(t, 5.0, p.Grad())

	sgd := NewSGD([]*autodiff.Value{p}, SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	assert.Equal(t, 0.0, p.Grad())
}

// TestSGD_SetLR tests manual learning rate scheduling.
func TestSGD_SetLR(t *testing.T) {
	sgd := NewSGD(nil, SGDConfig{LR: 0.1})
	sgd.SetLR(0.05)
	assert.Equal(t, 0.05, sgd.GetLR())
}

// TestSGD_ImplementsOptimizer pins the interface.
func TestSGD_ImplementsOptimizer(t *testing.T) {
	var _ Optimizer = NewSGD(nil, SGDConfig{})
}
