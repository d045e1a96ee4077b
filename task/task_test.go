package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/task"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

func newConfig() config.Config {
	return config.Config{
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 100, Interval: 1},
			Seed: 42,
		},
	}
}

func TestInitWorld(t *testing.T) {
	ctx := task.NewContext("test", "", newConfig())
	ctx.Init()

	bm := ctx.BusinessManager()
	// main venture plus three AI competitors
	assert.Len(t, bm.All(), 4)

	v := bm.Venture()
	assert.Equal(t, "My Company", v.Name())
	assert.Len(t, v.Employees(), 3)
	assert.Len(t, v.Products(), 1)
	// 100000 starting capital minus three first wages
	assert.InDelta(t, 94000.0, v.Capital(), 1e-9)

	assert.Equal(t, task.ResultRunning, ctx.Result())
	assert.True(t, ctx.IsRunning())
}

func TestRunTimeUp(t *testing.T) {
	c := newConfig()
	c.Control.Step.Total = 5
	ctx := task.NewContext("test", "", c)

	ctx.Run()
	assert.Equal(t, task.ResultTimeUp, ctx.Result())
	assert.False(t, ctx.IsRunning())
}

func TestRunVictory(t *testing.T) {
	c := newConfig()
	c.Control.Step.Total = 50
	c.Venture.Capital = 2000000
	ctx := task.NewContext("test", "", c)

	ctx.Run()
	assert.Equal(t, task.ResultVictory, ctx.Result())
	assert.Greater(t, ctx.BusinessManager().Venture().Capital(), 1000000.0)
}

func TestRunBankruptcy(t *testing.T) {
	c := newConfig()
	c.Control.Step.Total = 200
	// barely any runway: wages and crisis impacts drain it below the floor
	c.Venture.Capital = 1
	ctx := task.NewContext("test", "", c)

	ctx.Run()
	assert.Equal(t, task.ResultBankruptcy, ctx.Result())
	assert.Less(t, ctx.BusinessManager().Venture().Capital(), -50000.0)
}
