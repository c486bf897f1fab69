package optim

import "github.com/born-ml/mikro/internal/autodiff"

// SGD implements stochastic gradient descent with optional linear learning
// rate decay.
//
// Update rule per step k:
//
//	lr_k  = lr * (1 - decay*k)   (floored at 1% of lr)
//	param = param - lr_k * grad
//
// A decay of 0 keeps the learning rate constant.
type SGD struct {
	params []*autodiff.Value
	lr     float64
	decay  float64
	step   int
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR    float64 // Learning rate (default: 0.01)
	Decay float64 // Linear decay factor per step (default: 0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
		decay:  config.Decay,
	}
}

// Step applies one gradient descent update to all parameters.
func (s *SGD) Step() {
	lr := s.lr
	if s.decay > 0 {
		lr = s.lr * (1 - s.decay*float64(s.step))
		if floor := s.lr * 0.01; lr < floor {
			lr = floor
		}
	}

	for _, p := range s.params {
		p.SetData(p.Data() - lr*p.Grad())
	}
	s.step++
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the base learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the base learning rate. Useful for manual scheduling.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
