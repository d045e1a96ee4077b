package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/task"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

func newTestContext() *task.Context {
	return task.NewContext("test", "", config.Config{
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 100, Interval: 1},
			Seed: 42,
		},
	})
}

func TestMarketClearing(t *testing.T) {
	ctx := newTestContext()
	m := ctx.MarketManager()

	mkt := m.GetOrCreate("Widgets", 100)
	assert.Equal(t, "Widgets", mkt.Category())
	assert.Equal(t, 100.0, mkt.Elasticity())
	assert.Equal(t, 100.0, mkt.Price())

	// no supply: price falls back to the elasticity floor
	assert.Equal(t, 100.0, mkt.ClearPrice())

	mkt.AccumulateSupply(10)
	mkt.AccumulateDemand(20)
	assert.Equal(t, 10.0, mkt.Supply())
	assert.Equal(t, 20.0, mkt.Demand())
	assert.InDelta(t, 200.0, mkt.ClearPrice(), 1e-9)
	assert.InDelta(t, 200.0, mkt.Price(), 1e-9)

	mkt.Reset()
	assert.Equal(t, 0.0, mkt.Supply())
	assert.Equal(t, 0.0, mkt.Demand())
	// the last clearing price survives a reset
	assert.InDelta(t, 200.0, mkt.Price(), 1e-9)
	assert.Equal(t, 100.0, mkt.ClearPrice())
}

func TestMarketManagerGetOrCreate(t *testing.T) {
	ctx := newTestContext()
	m := ctx.MarketManager()

	a := m.GetOrCreate("Widgets", 100)
	a.AccumulateDemand(5)
	// an existing market keeps its elasticity
	b := m.GetOrCreate("Widgets", 50)
	assert.Equal(t, 100.0, b.Elasticity())
	assert.Equal(t, 5.0, b.Demand())

	m.GetOrCreate("Gadgets", 80)
	assert.Len(t, m.All(), 2)
}
