package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

func TestAverageSkill(t *testing.T) {
	assert.Equal(t, 1.0, entity.AverageSkill(nil))
	employees := []*entity.Employee{
		{Name: "A", Skill: 1.0},
		{Name: "B", Skill: 2.0},
	}
	assert.Equal(t, 1.5, entity.AverageSkill(employees))
}

func TestSupplierUnitPrice(t *testing.T) {
	s := entity.Supplier{BasePrice: 10, BulkThreshold: 100, BulkDiscount: 0.2}
	assert.Equal(t, 10.0, s.UnitPrice(50))
	assert.Equal(t, 8.0, s.UnitPrice(100))
	assert.Equal(t, 8.0, s.UnitPrice(200))
}

func TestWarehouseStorage(t *testing.T) {
	w := &entity.Warehouse{
		Capacity:           100,
		Stock:              map[string]int32{"Raw Materials": 60, "Components": 20},
		StorageCostPerUnit: 0.1,
		OperatingCost:      1000,
	}
	assert.True(t, w.CanStore(20))
	assert.False(t, w.CanStore(21))
	assert.InDelta(t, 1008.0, w.StorageCost(), 1e-9)
}

func TestBrandReputationOverall(t *testing.T) {
	r := entity.NewBrandReputation()
	assert.Equal(t, 50.0, r.Overall)
	r.CustomerSatisfaction = 80
	r.UpdateOverall()
	assert.InDelta(t, 55.0, r.Overall, 1e-9)
}

func TestResearcherBonus(t *testing.T) {
	r := entity.Researcher{Specialization: "Technology", Efficiency: 1.0}
	assert.Equal(t, 1.5, r.Bonus("Technology"))
	assert.Equal(t, 1.5, r.Bonus("technology"))
	assert.Equal(t, 1.0, r.Bonus("Product"))
}

func TestInvestmentMaturityValue(t *testing.T) {
	i := entity.Investment{Principal: 10000, ReturnRate: 0.15}
	assert.InDelta(t, 11500.0, i.MaturityValue(), 1e-9)
}
