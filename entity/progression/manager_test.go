package progression_test

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

func TestInitialState(t *testing.T) {
	ctx := newTestContext()
	pm := ctx.ProgressionManager()
	v := ctx.BusinessManager().Venture()

	assert.Equal(t, int32(0), pm.Level(v.ID()))
	assert.Equal(t, 0.0, pm.Progress(v.ID()))

	st := pm.Status(v.ID())
	assert.Len(t, st.Achievements, 10)
	assert.Len(t, st.Tiers, 5)
	assert.Len(t, st.Unlockables, 9)
	assert.Len(t, st.Bonuses, 5)
	assert.True(t, st.Tiers[0].Unlocked)
	for _, bonus := range st.Bonuses {
		assert.False(t, bonus.Active)
	}
	assert.Equal(t, 1.0, v.BonusMultiplier("Operational"))
}

func TestUnlockFeature(t *testing.T) {
	ctx := newTestContext()
	pm := ctx.ProgressionManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, pm.UnlockFeature(v.ID(), "AI Integration"))
	assert.False(t, pm.UnlockFeature(v.ID(), "Time Machine"))

	v.AddCapital(500000)
	capBefore := v.Capital()
	assert.True(t, pm.UnlockFeature(v.ID(), "Training Center"))
	assert.InDelta(t, capBefore-200000, v.Capital(), 1e-9)
	// the retention bonus feeds the operational multiplier
	assert.InDelta(t, 1.1, v.BonusMultiplier("Operational"), 1e-9)

	// unlocking is one-shot and the multiplier never compounds
	assert.False(t, pm.UnlockFeature(v.ID(), "Training Center"))
	assert.InDelta(t, 1.1, v.BonusMultiplier("Operational"), 1e-9)
}

func TestTierUnlock(t *testing.T) {
	ctx := newTestContext()
	pm := ctx.ProgressionManager()
	v := ctx.BusinessManager().Venture()

	v.AddCapital(2000000)
	pm.Update(1)

	assert.Equal(t, int32(1), pm.Level(v.ID()))
	assert.InDelta(t, 1.1, v.BonusMultiplier("Operational"), 1e-9)
	assert.InDelta(t, 1.1, v.BonusMultiplier("Innovation"), 1e-9)
	assert.Equal(t, 1.0, v.BonusMultiplier("Market"))

	// a second refresh is idempotent
	pm.Update(1)
	assert.InDelta(t, 1.1, v.BonusMultiplier("Operational"), 1e-9)
}

func TestAchievementReward(t *testing.T) {
	ctx := newTestContext()
	pm := ctx.ProgressionManager()
	v := ctx.BusinessManager().Venture()

	v.AddCapital(2000000)
	capBefore := v.Capital()
	pm.Update(1)

	// First Million completes and pays its 50000 reward once
	assert.InDelta(t, capBefore+50000, v.Capital(), 1e-9)
	assert.InDelta(t, 0.1, pm.Progress(v.ID()), 1e-9)

	capBefore = v.Capital()
	pm.Update(1)
	assert.Equal(t, capBefore, v.Capital())
}
