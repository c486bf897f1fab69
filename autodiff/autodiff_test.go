package autodiff_test

import (
	"testing"

	"github.com/born-ml/mikro/autodiff"
	"github.com/stretchr/testify/assert"
)

// TestPublicSurface exercises the exported API end to end.
func TestPublicSurface(t *testing.T) {
	x := autodiff.NewValue(-4)

	z := x.MulScalar(2).AddScalar(2).Add(x)
	q := z.ReLU().Add(z.Mul(x))
	h := z.Mul(z).ReLU()
	y := h.Add(q).Add(q.Mul(x))

	y.Backward()

	assert.Equal(t, -20.0, y.Data())
	assert.Equal(t, 46.0, x.Grad())
}

// TestHelpers tests the package-level helper functions.
func TestHelpers(t *testing.T) {
	total := autodiff.Sum([]*autodiff.Value{
		autodiff.NewValue(1),
		autodiff.NewValue(2),
	})
	assert.Equal(t, 3.0, total.Data())

	assert.Equal(t, 1.0, autodiff.ScalarSub(3, autodiff.NewValue(2)).Data())
	assert.Equal(t, 1.5, autodiff.ScalarDiv(3, autodiff.NewValue(2)).Data())
}
