package marketing_test

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

func TestLaunchCampaign(t *testing.T) {
	ctx := newTestContext()
	mm := ctx.MarketingManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	assert.False(t, mm.LaunchCampaign(v.ID(), "X", "radio", 1000, 5, "General"))
	assert.False(t, mm.LaunchCampaign(v.ID(), "X", "tv", capBefore*2, 5, "General"))

	assert.True(t, mm.LaunchCampaign(v.ID(), "Launch", "tv", 50000, 10, "General"))
	assert.InDelta(t, capBefore-50000, v.Capital(), 1e-9)

	st := mm.Status(v.ID())
	assert.Len(t, st.Campaigns, 1)
	c := st.Campaigns[0]
	assert.InDelta(t, 0.25, c.Effectiveness, 1e-9)
	assert.InDelta(t, 1000.0, c.Reach, 1e-9)
	assert.Equal(t, int32(10), c.Remaining)
}

func TestReputationOperations(t *testing.T) {
	ctx := newTestContext()
	mm := ctx.MarketingManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, mm.ImproveCustomerService(v.ID(), 20000))
	st := mm.Status(v.ID())
	assert.InDelta(t, 52.0, st.Reputation.CustomerService, 1e-9)
	assert.InDelta(t, (52.0+50*5)/6, st.Reputation.Overall, 1e-9)

	mm.ApplySatisfactionDelta(v.ID(), -12)
	st = mm.Status(v.ID())
	assert.InDelta(t, 38.0, st.Reputation.CustomerSatisfaction, 1e-9)
	assert.InDelta(t, (38.0+52.0+50*4)/6, st.Reputation.Overall, 1e-9)

	// overall deltas apply directly without re-averaging
	overall := st.Reputation.Overall
	mm.ApplyOverallDelta(v.ID(), 5)
	st = mm.Status(v.ID())
	assert.InDelta(t, overall+5, st.Reputation.Overall, 1e-9)
	assert.InDelta(t, 0.5+(overall+5)/200, mm.BrandMultiplier(v.ID()), 1e-9)
}

func TestDecay(t *testing.T) {
	ctx := newTestContext()
	mm := ctx.MarketingManager()
	v := ctx.BusinessManager().Venture()

	mm.Update(1)
	st := mm.Status(v.ID())
	assert.InDelta(t, 49.95, st.Reputation.CustomerSatisfaction, 1e-9)
	assert.InDelta(t, (49.95+50*5)/6, st.Reputation.Overall, 1e-9)

	// campaign effects land on sub-scores and the overall stays their mean
	assert.True(t, mm.LaunchCampaign(v.ID(), "Prime Time", "tv", 50000, 10, "General"))
	mm.Update(1)
	st = mm.Status(v.ID())
	r := st.Reputation
	assert.InDelta(t, 49.925, r.CustomerSatisfaction, 1e-9)
	assert.InDelta(t, 50.0125, r.ProductQuality, 1e-9)
	mean := (r.CustomerSatisfaction + r.ProductQuality + r.CustomerService +
		r.Innovation + r.SocialResponsibility + r.EnvironmentalImpact) / 6
	assert.InDelta(t, mean, r.Overall, 1e-9)
}

func TestSegmentEffect(t *testing.T) {
	ctx := newTestContext()
	mm := ctx.MarketingManager()
	v := ctx.BusinessManager().Venture()

	// 20000 on social yields effectiveness 0.5
	assert.True(t, mm.LaunchCampaign(v.ID(), "Campus Push", "social", 20000, 2, "Students"))
	mm.Update(1)

	st := mm.Status(v.ID())
	for _, seg := range st.Segments {
		if seg.Name == "Students" {
			assert.InDelta(t, 50.05, seg.Satisfaction, 1e-9)
			assert.InDelta(t, 0.525, seg.Loyalty, 1e-9)
		} else {
			assert.InDelta(t, 50.0, seg.Satisfaction, 1e-9)
			assert.InDelta(t, 0.5, seg.Loyalty, 1e-9)
		}
	}
}

func TestStudyCompletion(t *testing.T) {
	ctx := newTestContext()
	mm := ctx.MarketingManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, mm.ConductResearch(v.ID(), "Astrology", 5000, 1))
	assert.True(t, mm.ConductResearch(v.ID(), "Customer Survey", 5000, 1))

	mm.Update(1)
	st := mm.Status(v.ID())
	assert.Len(t, st.Studies, 1)
	results := st.Studies[0].Results
	assert.Len(t, results, 3)
	assert.GreaterOrEqual(t, results["Satisfaction"], 40.0)
	assert.Less(t, results["Satisfaction"], 80.0)
}
