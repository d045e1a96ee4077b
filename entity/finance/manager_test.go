package finance_test

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

func TestTakeLoan(t *testing.T) {
	ctx := newTestContext()
	fm := ctx.FinanceManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	assert.False(t, fm.TakeLoan(v.ID(), 0, 10))
	assert.False(t, fm.TakeLoan(v.ID(), 10000, 0))
	assert.True(t, fm.TakeLoan(v.ID(), 50000, 10))
	assert.InDelta(t, capBefore+50000, v.Capital(), 1e-9)
	assert.InDelta(t, 50000.0, v.Liabilities(), 1e-9)

	st := fm.Status(v.ID())
	assert.Len(t, st.Loans, 1)
	rate := 0.05 * (1 + 50000/capBefore)
	assert.InDelta(t, rate, st.Loans[0].Rate, 1e-9)
	assert.InDelta(t, 50000*(1+rate)/10, st.Loans[0].Installment, 1e-9)

	// outstanding principal may never exceed twice the cash on hand
	assert.False(t, fm.TakeLoan(v.ID(), v.Capital()*3, 10))
	assert.Len(t, fm.Status(v.ID()).Loans, 1)
}

func TestLoanRepayment(t *testing.T) {
	ctx := newTestContext()
	fm := ctx.FinanceManager()
	v := ctx.BusinessManager().Venture()

	assert.True(t, fm.TakeLoan(v.ID(), 30000, 10))
	installment := fm.Status(v.ID()).Loans[0].Installment
	capBefore := v.Capital()

	fm.Update(1)
	assert.InDelta(t, capBefore-installment, v.Capital(), 1e-9)
	assert.InDelta(t, 27000.0, v.Liabilities(), 1e-9)
	assert.Equal(t, int32(9), fm.Status(v.ID()).Loans[0].Remaining)

	for i := 0; i < 9; i++ {
		fm.Update(1)
	}
	assert.Empty(t, fm.Status(v.ID()).Loans)
	assert.InDelta(t, 0.0, v.Liabilities(), 1e-9)
}

func TestInvest(t *testing.T) {
	ctx := newTestContext()
	fm := ctx.FinanceManager()
	v := ctx.BusinessManager().Venture()
	capBefore := v.Capital()

	assert.False(t, fm.Invest(v.ID(), "stocks", capBefore*2, 5))
	assert.True(t, fm.Invest(v.ID(), "stocks", 20000, 5))
	assert.InDelta(t, capBefore-20000, v.Capital(), 1e-9)

	st := fm.Status(v.ID())
	assert.Len(t, st.Investments, 1)
	inv := st.Investments[0]
	assert.GreaterOrEqual(t, inv.ReturnRate, 0.10)
	assert.Less(t, inv.ReturnRate, 0.20)

	// maturity pays out principal plus return in one shot
	capBefore = v.Capital()
	for i := 0; i < 5; i++ {
		fm.Update(1)
	}
	assert.Empty(t, fm.Status(v.ID()).Investments)
	assert.InDelta(t, capBefore+20000*(1+inv.ReturnRate), v.Capital(), 1e-9)
}

func TestComputeTax(t *testing.T) {
	ctx := newTestContext()
	fm := ctx.FinanceManager()

	assert.InDelta(t, 10000.0, fm.ComputeTax(100000, 50000), 1e-9)
	assert.InDelta(t, 150000.0, fm.ComputeTax(700000, 100000), 1e-9)
	assert.InDelta(t, 450000.0, fm.ComputeTax(2000000, 500000), 1e-9)
	assert.Equal(t, 0.0, fm.ComputeTax(10000, 50000))
}

func TestGoPublic(t *testing.T) {
	ctx := newTestContext()
	fm := ctx.FinanceManager()
	v := ctx.BusinessManager().Venture()

	assert.False(t, fm.CanGoPublic(v.ID()))
	assert.False(t, fm.GoPublic(v.ID()))
	assert.False(t, v.IsPublic())
}
