package dlcost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/urec/dlcost"
)

func TestAdd(t *testing.T) {
	t.Run("componentwise sum", func(t *testing.T) {
		a := dlcost.DlCost{Dup: 2, Loss: 3}
		b := dlcost.DlCost{Dup: 1, Loss: 5}
		assert.Equal(t, dlcost.DlCost{Dup: 3, Loss: 8}, a.Add(b))
	})

	t.Run("zero value is identity", func(t *testing.T) {
		a := dlcost.DlCost{Dup: 4, Loss: 7}
		assert.Equal(t, a, dlcost.DlCost{}.Add(a))
		assert.Equal(t, a, a.Add(dlcost.DlCost{}))
	})
}

func TestMut(t *testing.T) {
	c := dlcost.DlCost{Dup: 1, Loss: 2}

	t.Run("default weights", func(t *testing.T) {
		assert.Equal(t, 3.0, c.Mut(dlcost.DefaultWeights()))
	})

	t.Run("custom weights, scenario 6 from the spec", func(t *testing.T) {
		c := dlcost.DlCost{Dup: 1, Loss: 2}
		assert.Equal(t, 12.0, c.Mut(dlcost.Weights{Dup: 10, Loss: 1}))
		assert.Equal(t, 21.0, c.Mut(dlcost.Weights{Dup: 1, Loss: 10}))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1,2)", dlcost.DlCost{Dup: 1, Loss: 2}.String())
}
