package market

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// Market管理器
type MarketManager struct {
	ctx entity.ITaskContext

	data    map[string]*Market
	markets []*Market
}

// NewManager 创建市场管理器实例
// 功能：初始化市场管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的市场管理器实例
func NewManager(ctx entity.ITaskContext) *MarketManager {
	m := &MarketManager{
		ctx:     ctx,
		data:    make(map[string]*Market),
		markets: make([]*Market, 0),
	}
	return m
}

// GetOrCreate 按品类获取市场
// 功能：查找指定品类的市场，不存在时以给定弹性系数惰性创建
// 参数：category-品类，elasticity-弹性系数（仅创建时生效）
// 返回：市场实例
func (m *MarketManager) GetOrCreate(category string, elasticity float64) entity.IMarket {
	if market, ok := m.data[category]; ok {
		return market
	}
	market := newMarket(m.ctx, category, elasticity)
	m.data[category] = market
	m.markets = append(m.markets, market)
	log.Debugf("create market for category %s with elasticity %f", category, elasticity)
	return market
}

// All 获取全部市场（按创建顺序）
func (m *MarketManager) All() []entity.IMarket {
	res := make([]entity.IMarket, 0, len(m.markets))
	for _, market := range m.markets {
		res = append(res, market)
	}
	return res
}
