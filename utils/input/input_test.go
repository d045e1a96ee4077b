package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/input"
)

func TestInitDefaults(t *testing.T) {
	// no configured sources: every catalog falls back to built-in data
	res := input.Init(config.Config{}, "")
	assert.Len(t, res.Research, 12)
	assert.Len(t, res.Countries, 8)
	assert.Len(t, res.Suppliers, 4)
	assert.Len(t, res.Achievements, 10)
}

func TestDefaultCatalogs(t *testing.T) {
	research := input.DefaultResearchCatalog()
	byName := make(map[string]bool, len(research))
	for _, p := range research {
		byName[p.Name] = true
		assert.Greater(t, p.Cost, 0.0)
		assert.Greater(t, p.Duration, int32(0))
		assert.Greater(t, p.SuccessChance, 0.0)
		for _, prereq := range p.Prerequisites {
			assert.NotEqual(t, p.Name, prereq)
		}
	}
	// prerequisites reference catalog entries only
	for _, p := range research {
		for _, prereq := range p.Prerequisites {
			assert.True(t, byName[prereq], "missing prerequisite %s", prereq)
		}
	}

	for _, c := range input.DefaultCountryCatalog() {
		assert.NotEmpty(t, c.Currency)
		assert.Greater(t, c.MarketPotential, 0.0)
	}
	for _, s := range input.DefaultSupplierCatalog() {
		assert.Greater(t, s.BasePrice, 0.0)
		assert.GreaterOrEqual(t, s.BulkThreshold, s.MinOrder)
	}
	for _, a := range input.DefaultAchievementCatalog() {
		assert.Greater(t, a.Target, 0.0)
		assert.Greater(t, a.Reward, 0.0)
		assert.False(t, a.Completed)
	}
}
