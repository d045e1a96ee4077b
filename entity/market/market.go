package market

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// Market 品类市场
// 功能：按品类汇总所有企业的供给与需求，推导清算价格
// 说明：供需计数遵循"累计→定价→清零"的约定，由调用方负责在读取价格后Reset
type Market struct {
	ctx entity.ITaskContext

	category   string  // 品类
	elasticity float64 // 弹性系数

	supply float64 // 本步累计供给
	demand float64 // 本步累计需求
	price  float64 // 最近一次清算价格
}

func newMarket(ctx entity.ITaskContext, category string, elasticity float64) *Market {
	return &Market{
		ctx:        ctx,
		category:   category,
		elasticity: elasticity,
		price:      elasticity,
	}
}

// Category 获取市场品类
func (m *Market) Category() string {
	return m.category
}

// Elasticity 获取弹性系数
func (m *Market) Elasticity() float64 {
	return m.elasticity
}

// AccumulateSupply 累计供给
func (m *Market) AccumulateSupply(amount float64) {
	m.supply += amount
}

// AccumulateDemand 累计需求
func (m *Market) AccumulateDemand(amount float64) {
	m.demand += amount
}

// ClearPrice 由当前累计供需推导清算价格
// 返回：清算价格
// 算法说明：
// 1. 供给大于0时：价格 = 需求/供给 × 弹性系数
// 2. 供给为0时：价格 = 弹性系数（显式下限，避免除零与退化定价）
func (m *Market) ClearPrice() float64 {
	if m.supply > 0 {
		m.price = m.demand / m.supply * m.elasticity
	} else {
		m.price = m.elasticity
	}
	return m.price
}

// Price 获取最近一次清算价格
func (m *Market) Price() float64 {
	return m.price
}

// Supply 获取本步累计供给
func (m *Market) Supply() float64 {
	return m.supply
}

// Demand 获取本步累计需求
func (m *Market) Demand() float64 {
	return m.demand
}

// Reset 清零供需计数
func (m *Market) Reset() {
	m.supply = 0
	m.demand = 0
}
