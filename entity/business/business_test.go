package business_test

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

func TestCreateAndCreditScore(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()

	id := bm.Create("Acme", "Tech", "USA", 200000)
	b := bm.Get(id)
	assert.Equal(t, "Acme", b.Name())
	assert.Equal(t, 200000.0, b.Capital())
	assert.Equal(t, 0.0, b.Liabilities())
	assert.Equal(t, 50.0, b.Reputation())
	assert.Equal(t, 70.0, b.ComplianceScore())
	// 500 base + 100 initial bonus + 20 assets + 7 compliance
	assert.InDelta(t, 627.0, b.CreditScore(), 1e-9)
	assert.InDelta(t, 40.0, b.OverallPerformance(), 1e-9)
}

func TestProduceAndSell(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	b := bm.Get(bm.Create("Acme", "Tech", "USA", 10000))
	p := &entity.Product{Name: "Widget", Category: "Tech", Price: 100, Cost: 50, Quality: 1.0}
	b.AddProduct(p)

	b.Produce(p, 10)
	assert.Equal(t, int32(10), p.Inventory)
	assert.InDelta(t, 9500.0, b.Capital(), 1e-9)
	assert.InDelta(t, 1.0, p.Quality, 1e-9)

	b.Sell(p, 4)
	assert.Equal(t, int32(6), p.Inventory)
	assert.InDelta(t, 9900.0, b.Capital(), 1e-9)
	assert.InDelta(t, 400.0, b.Revenue(), 1e-9)

	// selling above inventory clears the remaining stock
	b.Sell(p, 100)
	assert.Equal(t, int32(0), p.Inventory)
	assert.InDelta(t, 1000.0, b.Revenue(), 1e-9)
}

func TestHireAndFire(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	b := bm.Get(bm.Create("Acme", "Tech", "USA", 10000))

	e := &entity.Employee{Name: "A", Role: "Worker", Wage: 1000, Morale: 0.8, Skill: 1.0}
	b.Hire(e)
	assert.Len(t, b.Employees(), 1)
	assert.InDelta(t, 9000.0, b.Capital(), 1e-9)

	assert.True(t, b.Fire(e))
	assert.Len(t, b.Employees(), 0)
	// severance costs one wage
	assert.InDelta(t, 8000.0, b.Capital(), 1e-9)
	assert.False(t, b.Fire(e))
	assert.Nil(t, b.FireFirst())
}

func TestCloseMonth(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	b := bm.Get(bm.Create("Acme", "Tech", "USA", 10000))

	b.AddRevenue(5000)
	b.AddExpense(2000)
	assert.InDelta(t, 3000.0, b.NetIncome(), 1e-9)
	b.CloseMonth()
	assert.Equal(t, 0.0, b.Revenue())
	assert.Equal(t, 0.0, b.Expenses())
	assert.Equal(t, int32(30), b.DaysInBusiness())
}

func TestTrainEmployees(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	ctx.Clock().InternalStep = 1

	v := bm.Venture()
	assert.True(t, bm.TrainEmployees(v.ID(), 0.2, 100, 10))
	assert.InDelta(t, 1.2, v.Employees()[0].Skill, 1e-9)
	assert.InDelta(t, 0.85, v.Employees()[0].Morale, 1e-9)

	// all employees are cooling down
	assert.False(t, bm.TrainEmployees(v.ID(), 0.2, 100, 10))
	ctx.Clock().InternalStep = 11
	assert.True(t, bm.TrainEmployees(v.ID(), 0.2, 100, 10))
}

func TestAcquire(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	v := bm.Venture()
	target := bm.All()[1]

	assert.False(t, bm.Acquire(v.ID(), v.ID()))
	// the venture itself can never be a target
	assert.False(t, bm.Acquire(target.ID(), v.ID()))

	v.AddCapital(1000000)
	targetID := target.ID()
	cost := target.NetWorth()
	capBefore := v.Capital()
	assert.True(t, bm.Acquire(v.ID(), targetID))

	assert.InDelta(t, capBefore-cost, v.Capital(), 1e-6)
	assert.Equal(t, 1.0, v.MergerExperience())
	assert.Len(t, bm.All(), 3)
	_, err := bm.GetOrError(targetID)
	assert.Error(t, err)
}

func TestUpdateMarketShare(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()

	bm.Update(1)
	total := 0.0
	for _, b := range bm.All() {
		assert.GreaterOrEqual(t, b.MarketShare(), 0.0)
		total += b.MarketShare()
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	// clearing prices were written back to the products
	for _, b := range bm.All() {
		for _, p := range b.Products() {
			assert.Greater(t, p.Price, 0.0)
		}
	}
}

func TestBonusMultiplier(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	b := bm.Get(bm.Create("Acme", "Tech", "USA", 10000))

	assert.Equal(t, 1.0, b.BonusMultiplier("Market"))
	b.SetBonusMultiplier("Operational", 1.2)
	assert.Equal(t, 1.2, b.BonusMultiplier("Operational"))
	assert.InDelta(t, 1.2, b.EffectiveProductionEfficiency(), 1e-9)
	// a repeated write overrides instead of compounding
	b.SetBonusMultiplier("Operational", 1.2)
	assert.Equal(t, 1.2, b.BonusMultiplier("Operational"))
}

func TestPeakTracking(t *testing.T) {
	ctx := newTestContext()
	bm := ctx.BusinessManager()
	b := bm.Get(bm.Create("Acme", "Tech", "USA", 100000))

	assert.Equal(t, 100000.0, b.PeakCapital())

	b.AddCapital(50000)
	assert.InDelta(t, 150000.0, b.PeakCapital(), 1e-9)

	// drawdowns never lower the peak
	b.AddCapital(-120000)
	assert.InDelta(t, 30000.0, b.Capital(), 1e-9)
	assert.InDelta(t, 150000.0, b.PeakCapital(), 1e-9)

	assert.Equal(t, 0.0, b.PeakMarketShare())
	b.SetMarketShare(0.3)
	b.SetMarketShare(0.1)
	assert.Equal(t, 0.1, b.MarketShare())
	assert.InDelta(t, 0.3, b.PeakMarketShare(), 1e-9)
}
