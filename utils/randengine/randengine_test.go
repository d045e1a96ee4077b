package randengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/randengine"
)

func TestRange(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 100; i++ {
		v := e.Range(2, 5)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
	assert.Equal(t, 3.0, e.Range(3, 3))
	assert.Equal(t, 3.0, e.Range(3, 1))
}

func TestIntRange(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 100; i++ {
		v := e.IntRange(3, 8)
		assert.GreaterOrEqual(t, v, int32(3))
		assert.Less(t, v, int32(8))
	}
	assert.Equal(t, int32(5), e.IntRange(5, 5))
}

func TestPTrue(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, e.PTrue(0))
		assert.True(t, e.PTrue(1))
	}
}

func TestDiscreteDistribution(t *testing.T) {
	e := randengine.New(1)
	for i := 0; i < 100; i++ {
		assert.Equal(t, int32(1), e.DiscreteDistribution([]float64{0, 1, 0}))
	}
	counts := make(map[int32]int)
	for i := 0; i < 1000; i++ {
		counts[e.DiscreteDistribution([]float64{1, 1})]++
	}
	assert.Greater(t, counts[0], 0)
	assert.Greater(t, counts[1], 0)
}
