// Copyright 2025 Mikro Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Each Value is a node in a dynamically built computation graph; arithmetic
// on Values records the graph, and a single Backward call on the root
// accumulates every node's gradient via the chain rule.
//
// Example:
//
//	import "github.com/born-ml/mikro/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(3)
//	    y := x.Mul(x).AddScalar(1) // y = x² + 1
//	    y.Backward()
//	    fmt.Println(x.Grad())      // dy/dx = 2x = 6
//	}
package autodiff

import "github.com/born-ml/mikro/internal/autodiff"

// Value is one scalar node of the computation graph.
type Value = autodiff.Value

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Sum folds values with Add starting from a fresh zero leaf. Summing an
// empty slice returns the zero leaf.
func Sum(values []*Value) *Value {
	return autodiff.Sum(values)
}

// ScalarSub returns a new node computing s - v.
func ScalarSub(s float64, v *Value) *Value {
	return autodiff.ScalarSub(s, v)
}

// ScalarDiv returns a new node computing s / v.
func ScalarDiv(s float64, v *Value) *Value {
	return autodiff.ScalarDiv(s, v)
}
