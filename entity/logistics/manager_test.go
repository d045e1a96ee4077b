package logistics_test

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

func TestBootstrap(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()

	st := lm.Status(v.ID())
	assert.Len(t, st.Suppliers, 4)
	assert.Len(t, st.Warehouses, 1)
	assert.Equal(t, "USA", st.Warehouses[0].Location)
	assert.Equal(t, int32(1000), st.Warehouses[0].Capacity)
	assert.Empty(t, st.Orders)
}

func TestPlaceOrderValidation(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	assert.False(t, lm.PlaceOrder(v.ID(), "Nonexistent Supplier", 100))
	// below the supplier minimum order quantity
	assert.False(t, lm.PlaceOrder(v.ID(), "Quality Materials Co.", 5))
	assert.Equal(t, capBefore, v.Capital())
	assert.Equal(t, 0.0, v.Liabilities())
}

func TestPlaceOrder(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	// 30 units reach the bulk threshold: 60 * 0.9 * 30
	assert.True(t, lm.PlaceOrder(v.ID(), "Budget Supplies Inc.", 30))
	assert.InDelta(t, capBefore-1620, v.Capital(), 1e-9)
	assert.InDelta(t, 1620.0, v.Liabilities(), 1e-9)

	st := lm.Status(v.ID())
	assert.Len(t, st.Orders, 1)
	order := st.Orders[0]
	assert.False(t, order.Delivered)
	assert.Equal(t, int32(30), order.Quantity)
	assert.GreaterOrEqual(t, order.Remaining, int32(3))
	assert.LessOrEqual(t, order.Remaining, int32(7))
}

func TestDelayAll(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, lm.PlaceOrder(v.ID(), "Quality Materials Co.", 10))
	before := lm.Status(v.ID()).Orders[0].Remaining
	lm.DelayAll(2)
	assert.Equal(t, before+2, lm.Status(v.ID()).Orders[0].Remaining)
}

func TestDelivery(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, lm.PlaceOrder(v.ID(), "Quality Materials Co.", 10))
	assert.InDelta(t, 1000.0, v.Liabilities(), 1e-9)

	ctx.Clock().InternalStep = 10
	lm.Update(1)

	// delivered or refunded, either way the liability is settled
	assert.InDelta(t, 0.0, v.Liabilities(), 1e-9)
	st := lm.Status(v.ID())
	for _, order := range st.Orders {
		assert.True(t, order.Delivered)
	}
	if len(st.Orders) == 1 {
		assert.Equal(t, int32(10), st.Warehouses[0].Stock["Raw Materials"])
	}
}

func TestStorageCost(t *testing.T) {
	ctx := newTestContext()
	lm := ctx.LogisticsManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	// one empty warehouse still charges its operating cost
	lm.Update(1)
	assert.InDelta(t, capBefore-1000, v.Capital(), 1e-9)
}
