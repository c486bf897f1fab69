package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCell tests storage accessors and additive accumulation.
func TestCell(t *testing.T) {
	c := NewCell(2.5)
	assert.Equal(t, 2.5, c.Data())
	assert.Equal(t, 0.0, c.Grad())

	c.SetData(-1)
	assert.Equal(t, -1.0, c.Data())

	c.AddGrad(3)
	c.AddGrad(0.5)
	assert.Equal(t, 3.5, c.Grad())

	c.ZeroGrad()
	assert.Equal(t, 0.0, c.Grad())

	c.SetGrad(1)
	assert.Equal(t, 1.0, c.Grad())
}

// TestCell_IdentityNotValue tests that two cells with equal contents are
// still distinct storage.
func TestCell_IdentityNotValue(t *testing.T) {
	a := NewCell(1)
	b := NewCell(1)

	assert.NotSame(t, a, b)

	a.AddGrad(1)
	assert.Equal(t, 0.0, b.Grad())
}
