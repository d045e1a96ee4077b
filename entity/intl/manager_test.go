package intl_test

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

func TestCountriesAndRates(t *testing.T) {
	ctx := newTestContext()
	im := ctx.InternationalManager()

	countries := im.Countries()
	assert.Len(t, countries, 8)
	assert.Equal(t, "Germany", countries[0])

	assert.Equal(t, 0.85, im.ExchangeRate("Germany"))
	assert.Equal(t, 0.85, im.ExchangeRate("germany"))
	// unknown countries settle in USD
	assert.Equal(t, 1.0, im.ExchangeRate("Atlantis"))

	assert.Equal(t, 15000000.0, im.MarketPotential("China"))
	assert.Equal(t, 0.0, im.MarketPotential("Atlantis"))
}

func TestExpand(t *testing.T) {
	ctx := newTestContext()
	im := ctx.InternationalManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, im.Expand(v.ID(), "Atlantis"))
	// entry costs 500000
	assert.False(t, im.Expand(v.ID(), "Germany"))

	v.AddCapital(2000000)
	capBefore := v.Capital()
	assert.True(t, im.Expand(v.ID(), "Germany"))
	assert.InDelta(t, capBefore-500000, v.Capital(), 1e-9)
	assert.Equal(t, int32(1), im.MarketCount(v.ID()))
	assert.Equal(t, 1.0, v.InternationalPresence())

	// a market can only be entered once
	assert.False(t, im.Expand(v.ID(), "germany"))

	st := im.Status(v.ID())
	assert.Len(t, st.Markets, 1)
	market := st.Markets[0]
	assert.Equal(t, "EUR", market.Currency)
	assert.InDelta(t, 0.25, market.RegulatoryCost, 1e-9)
	assert.GreaterOrEqual(t, market.MarketSize, 1000000.0)
	assert.Less(t, market.MarketSize, 10000000.0)
	assert.GreaterOrEqual(t, market.CulturalBarrier, 0.2)
	assert.Less(t, market.CulturalBarrier, 0.6)
}

func TestCreateSubsidiary(t *testing.T) {
	ctx := newTestContext()
	im := ctx.InternationalManager()
	v := ctx.BusinessManager().Venture()

	// subsidiaries require market presence first
	assert.False(t, im.CreateSubsidiary(v.ID(), "France", "Filiale SARL", 0))

	v.AddCapital(5000000)
	assert.True(t, im.Expand(v.ID(), "France"))
	capBefore := v.Capital()
	assert.True(t, im.CreateSubsidiary(v.ID(), "France", "Filiale SARL", 200000))
	assert.InDelta(t, capBefore-1200000, v.Capital(), 1e-9)

	st := im.Status(v.ID())
	assert.Len(t, st.Subsidiaries, 1)
	sub := st.Subsidiaries[0]
	assert.Equal(t, "France", sub.Country)
	assert.Equal(t, 200000.0, sub.Capital)
	assert.GreaterOrEqual(t, sub.TaxRate, 0.15)
	assert.Less(t, sub.TaxRate, 0.35)
	assert.Len(t, sub.Products, len(v.Products()))
}

func TestNegotiateAgreement(t *testing.T) {
	ctx := newTestContext()
	im := ctx.InternationalManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, im.NegotiateAgreement(v.ID(), "Germany", "France", 0))
	assert.True(t, im.NegotiateAgreement(v.ID(), "Germany", "France", 10000))

	st := im.Status(v.ID())
	assert.Len(t, st.Agreements, 1)
	a := st.Agreements[0]
	assert.GreaterOrEqual(t, a.TariffReduction, 0.1)
	assert.Less(t, a.TariffReduction, 0.3)
	assert.GreaterOrEqual(t, a.Duration, int32(50))
	assert.LessOrEqual(t, a.Duration, int32(200))
	assert.Equal(t, a.Duration, a.Remaining)
}

func TestExchangeRateWalk(t *testing.T) {
	ctx := newTestContext()
	im := ctx.InternationalManager()

	before := im.ExchangeRate("Germany")
	im.Update(1)
	after := im.ExchangeRate("Germany")
	assert.GreaterOrEqual(t, after, before*0.95)
	assert.LessOrEqual(t, after, before*1.05)

	// the dollar anchor never moves
	assert.Equal(t, 1.0, im.ExchangeRate("Atlantis"))
}
