// Copyright 2025 Mikro Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers over the engine's parameter nodes.
package optim

import (
	"github.com/born-ml/mikro/internal/autodiff"
	"github.com/born-ml/mikro/internal/optim"
)

// Optimizer is the common interface of all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional linear LR decay.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:    1.0,
//	    Decay: 0.009,
//	})
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
