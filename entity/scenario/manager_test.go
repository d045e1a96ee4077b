package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/task"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

func newTestContext() *task.Context {
	ctx := task.NewContext("test", "", config.Config{
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 100, Interval: 1},
			Seed: 42,
		},
	})
	ctx.Init()
	return ctx
}

func TestAvailable(t *testing.T) {
	ctx := newTestContext()
	sm := ctx.ScenarioManager()

	available := sm.Available()
	assert.Len(t, available, 5)
	assert.Contains(t, available, "Startup Challenge")
	assert.Contains(t, available, "Crisis Management")
}

func TestStart(t *testing.T) {
	ctx := newTestContext()
	sm := ctx.ScenarioManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, sm.Start(v.ID(), "Impossible Quest"))
	assert.InDelta(t, 1.0, v.ProductionEfficiency(), 1e-9)

	assert.True(t, sm.Start(v.ID(), "Startup Challenge"))
	st := sm.Status(v.ID())
	assert.NotNil(t, st.Active)
	// 100000 * medium multiplier 1 * 200 / 100
	assert.InDelta(t, 200000.0, st.Active.Reward, 1e-9)
	assert.Equal(t, int32(200), st.Active.Remaining)
	// the scenario modifier is applied for its whole lifetime
	assert.InDelta(t, 0.9, v.ProductionEfficiency(), 1e-9)

	// only one scenario at a time
	assert.False(t, sm.Start(v.ID(), "Market Domination"))
}

func TestExpertReward(t *testing.T) {
	ctx := newTestContext()
	sm := ctx.ScenarioManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, sm.Start(v.ID(), "Global Expansion"))
	st := sm.Status(v.ID())
	// 100000 * expert multiplier 4 * 400 / 100
	assert.InDelta(t, 1600000.0, st.Active.Reward, 1e-9)
}

func TestUpdateCountdown(t *testing.T) {
	ctx := newTestContext()
	sm := ctx.ScenarioManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, sm.Start(v.ID(), "Startup Challenge"))
	sm.Update(1)
	st := sm.Status(v.ID())
	assert.NotNil(t, st.Active)
	assert.Equal(t, int32(199), st.Active.Remaining)
	assert.Empty(t, st.Completed)
}
