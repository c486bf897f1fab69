// Copyright 2025 Mikro Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network modules: Neuron, Layer, and
// MLP, composed purely over the autodiff engine's public operations.
package nn

import (
	"github.com/born-ml/mikro/internal/autodiff"
	"github.com/born-ml/mikro/internal/nn"
)

// Module is the common interface of all neural network components.
type Module = nn.Module

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

const (
	// Linear applies no nonlinearity.
	Linear = nn.Linear
	// ReLU applies max(0, x).
	ReLU = nn.ReLU
)

// Neuron computes activation(sum(w_i * x_i) + b).
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs and the given activation.
func NewNeuron(nin int, kind Activation) *Neuron {
	return nn.NewNeuron(nin, kind)
}

// Layer is an ordered sequence of neurons sharing one input arity.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons, each taking nin inputs.
func NewLayer(nin, nout int, kind Activation) *Layer {
	return nn.NewLayer(nin, nout, kind)
}

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewMLP creates an MLP taking nin inputs, with one layer per entry of
// nouts. Panics if nouts is empty.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// MaxMarginLoss computes the SVM max-margin loss with L2 regularization
// over a dataset with -1/+1 targets, returning the loss graph root and the
// classification accuracy.
func MaxMarginLoss(model *MLP, inputs [][]float64, targets []float64, alpha float64) (*autodiff.Value, float64) {
	return nn.MaxMarginLoss(model, inputs, targets, alpha)
}

// Uniform returns n independent leaf values drawn uniformly from [-1, 1).
func Uniform(n int) []*autodiff.Value {
	return nn.Uniform(n)
}
