package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/clock"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

func TestClockNew(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 1})
	assert.Equal(t, int32(0), c.START_STEP)
	assert.Equal(t, int32(100), c.END_STEP)
	assert.Equal(t, 1.0, c.DT)
	assert.Equal(t, int32(0), c.InternalStep)

	// a non-positive interval falls back to one day per step
	c = clock.New(config.ControlStep{Start: 10, Total: 20})
	assert.Equal(t, 1.0, c.DT)
	assert.Equal(t, int32(30), c.END_STEP)
	assert.Equal(t, int32(10), c.InternalStep)
}

func TestClockMonthEnd(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 1})
	assert.False(t, c.IsMonthEnd())
	c.InternalStep = 30
	assert.True(t, c.IsMonthEnd())
	c.InternalStep = 31
	assert.False(t, c.IsMonthEnd())
	c.InternalStep = 60
	assert.True(t, c.IsMonthEnd())
}

func TestClockString(t *testing.T) {
	c := clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 1})
	c.InternalStep = 30
	c.T = float64(c.InternalStep) * c.DT
	assert.Equal(t, int32(30), c.Day())
	assert.Equal(t, "Day 30 (month 2)", c.String())
}
