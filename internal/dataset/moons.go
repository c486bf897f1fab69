// Package dataset generates synthetic datasets for the example programs.
package dataset

import "math"

// MoonsData is the two-moons binary classification dataset: two interleaved
// half-circles with -1/+1 labels.
type MoonsData struct {
	X [][]float64 // sample features, two per sample
	Y []float64   // labels, -1 for the outer moon, +1 for the inner
}

// Moons generates n samples split between the two moons. The outer moon is
// the upper half-circle of radius 1; the inner moon mirrors it, shifted
// right by 1 and down by 0.5.
func Moons(n int) *MoonsData {
	nOuter := n / 2
	nInner := n - nOuter

	data := &MoonsData{
		X: make([][]float64, 0, n),
		Y: make([]float64, 0, n),
	}

	for _, t := range linspace(0, math.Pi, nOuter) {
		data.X = append(data.X, []float64{math.Cos(t), math.Sin(t)})
		data.Y = append(data.Y, -1)
	}
	for _, t := range linspace(0, math.Pi, nInner) {
		data.X = append(data.X, []float64{1 - math.Cos(t), 1 - math.Sin(t) - 0.5})
		data.Y = append(data.Y, 1)
	}
	return data
}

// NumSamples returns the number of samples.
func (d *MoonsData) NumSamples() int {
	return len(d.Y)
}

// linspace returns n evenly spaced points over [start, stop], inclusive.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	points := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range points {
		points[i] = start + float64(i)*step
	}
	return points
}
