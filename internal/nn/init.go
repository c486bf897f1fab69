package nn

import (
	"math/rand"

	"github.com/born-ml/mikro/internal/autodiff"
)

// Uniform returns n independent leaf values drawn uniformly from [-1, 1).
//
// Used for weight initialization.
func Uniform(n int) []*autodiff.Value {
	values := make([]*autodiff.Value, n)
	for i := range values {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		values[i] = autodiff.NewValue(rand.Float64()*2 - 1)
	}
	return values
}
