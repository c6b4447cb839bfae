package util_test

import (
	"testing"

	"lintang/labyrinthx/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestUtil(t *testing.T) {
	t.Run("round float", func(t *testing.T) {
		assert.Equal(t, 3.14, util.RoundFloat(3.14159, 2))
		assert.Equal(t, 2.0, util.RoundFloat(2.0004, 3))
	})

	t.Run("reverse", func(t *testing.T) {
		arr := []int{1, 2, 3, 4}
		util.ReverseG(arr)
		assert.Equal(t, []int{4, 3, 2, 1}, arr)
	})

	t.Run("abs min max", func(t *testing.T) {
		assert.Equal(t, 3, util.AbsG(-3))
		assert.Equal(t, 2.5, util.AbsG(2.5))
		assert.Equal(t, 7, util.MaxG(7, -1))
		assert.Equal(t, 1.0, util.MinG(4.0, 1.0, 9.0))
		assert.Equal(t, 5, util.MinG(5))
	})
}
