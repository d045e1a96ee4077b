package crisis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
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

func TestDefaults(t *testing.T) {
	ctx := newTestContext()
	cm := ctx.CrisisManager()
	v := ctx.BusinessManager().Venture()

	assert.InDelta(t, 0.3, cm.Resistance(v.ID()), 1e-9)
	assert.Equal(t, int32(0), cm.ResolvedCount(v.ID()))
	assert.Equal(t, 1.0, cm.DemandMultiplier(v.ID()))
	assert.Empty(t, cm.Status(v.ID()).Crises)
}

func TestRespond(t *testing.T) {
	ctx := newTestContext()
	cm := ctx.CrisisManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	assert.False(t, cm.Respond(v.ID(), "Bribery", 1000))
	assert.False(t, cm.Respond(v.ID(), "Apology", capBefore*2))
	assert.False(t, cm.Respond(v.ID(), "Apology", 0))

	// action types are matched case-insensitively
	assert.True(t, cm.Respond(v.ID(), "apology", 5000))
	assert.InDelta(t, capBefore-5000, v.Capital(), 1e-9)

	st := cm.Status(v.ID())
	assert.Len(t, st.Responses, 1)
	r := st.Responses[0]
	assert.Equal(t, entity.ResponseApology, r.Action)
	assert.InDelta(t, 0.25, r.Effectiveness, 1e-9)
	assert.Equal(t, int32(3), r.Duration)
}

func TestImprovePrevention(t *testing.T) {
	ctx := newTestContext()
	cm := ctx.CrisisManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, cm.ImprovePrevention(v.ID(), 0))
	assert.True(t, cm.ImprovePrevention(v.ID(), 20000))
	assert.InDelta(t, 0.5, cm.Resistance(v.ID()), 1e-9)

	// prevention caps out at 0.9
	assert.True(t, cm.ImprovePrevention(v.ID(), 50000))
	assert.InDelta(t, 0.9, cm.Resistance(v.ID()), 1e-9)
}

func TestResponseCompletion(t *testing.T) {
	ctx := newTestContext()
	cm := ctx.CrisisManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, cm.Respond(v.ID(), "Apology", 5000))
	for i := 0; i < 3; i++ {
		cm.Update(1)
	}
	assert.Empty(t, cm.Status(v.ID()).Responses)
	// completion lifts resistance by effectiveness * 0.1
	assert.InDelta(t, 0.325, cm.Resistance(v.ID()), 1e-9)
}

func TestImpactAmortization(t *testing.T) {
	ctx := newTestContext()
	cm := ctx.CrisisManager()
	bm := ctx.BusinessManager()
	recalled := bm.Get(bm.Create("Recalled Corp", "Tech", "USA", 500000))
	sued := bm.Get(bm.Create("Sued Corp", "Tech", "USA", 500000))

	cm.Inflict(recalled.ID(), &entity.Crisis{
		Type:            entity.CrisisProductRecall,
		Duration:        20,
		FinancialImpact: 100000,
		Effects:         map[string]float64{"SalesReduction": 0.3},
	})
	cm.Inflict(sued.ID(), &entity.Crisis{
		Type:            entity.CrisisLegalIssue,
		Duration:        20,
		FinancialImpact: 100000,
		Effects:         map[string]float64{"LegalCosts": 0.5},
	})

	// sales reduction applies for the crisis lifetime
	assert.InDelta(t, 1-0.3/20, cm.DemandMultiplier(recalled.ID()), 1e-9)

	recalledBefore := recalled.Capital()
	suedBefore := sued.Capital()
	cm.Update(1)

	// 100000 over 20 steps amortizes to exactly 5000 per step
	assert.InDelta(t, recalledBefore-5000, recalled.Capital(), 1e-9)
	// legal costs add a flat 0.5 * 1000 on top of the amortized impact
	assert.InDelta(t, suedBefore-5000-500, sued.Capital(), 1e-9)

	for _, c := range cm.Status(recalled.ID()).Crises {
		if c.FinancialImpact == 100000 {
			assert.Equal(t, int32(19), c.Remaining)
		}
	}

	// after the full duration the crisis resolves with its impact fully paid
	for i := 0; i < 19; i++ {
		cm.Update(1)
	}
	assert.GreaterOrEqual(t, cm.ResolvedCount(recalled.ID()), int32(1))
	assert.LessOrEqual(t, recalled.Capital(), recalledBefore-100000)
}
