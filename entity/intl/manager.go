package intl

import (
	"strings"

	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 进入海外市场的固定费用
	marketEntryCost = 500000
	// 设立子公司的固定费用（不含注入资本）
	subsidiarySetupCost = 1000000
)

// 币种基准汇率表
var baseExchangeRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"GBP": 0.73,
	"JPY": 110,
	"CNY": 6.45,
	"INR": 74.5,
	"BRL": 5.2,
	"RUB": 73.8,
}

// 单个企业的国际化记录
type intlState struct {
	markets      []*entity.ForeignMarket
	subsidiaries []*entity.Subsidiary
	agreements   []*entity.TradeAgreement
}

// 国际化管理器
// 说明：维护汇率、国家档案与每个企业的海外市场、子公司和贸易协定
type InternationalManager struct {
	ctx entity.ITaskContext

	countries map[string]entity.CountryProfile // 国家名（小写）->档案
	order     []string                         // 国家名原始顺序
	rates     map[string]float64               // 币种->汇率
	data      map[int32]*intlState
}

// NewManager 创建国际化管理器实例
// 功能：初始化国际化管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的国际化管理器实例
func NewManager(ctx entity.ITaskContext) *InternationalManager {
	m := &InternationalManager{
		ctx:       ctx,
		countries: make(map[string]entity.CountryProfile),
		rates:     make(map[string]float64),
		data:      make(map[int32]*intlState),
	}
	for currency, rate := range baseExchangeRates {
		m.rates[currency] = rate
	}
	return m
}

// Init 初始化国家档案目录
// 参数：catalog-国家档案目录
// 说明：目录中出现未知币种时以1.0汇率入表
func (m *InternationalManager) Init(catalog []entity.CountryProfile) {
	for _, c := range catalog {
		m.countries[strings.ToLower(c.Name)] = c
		m.order = append(m.order, c.Name)
		if _, ok := m.rates[c.Currency]; !ok {
			m.rates[c.Currency] = 1.0
		}
	}
}

// state 获取企业的国际化记录，不存在时惰性创建
func (m *InternationalManager) state(id int32) *intlState {
	s, ok := m.data[id]
	if !ok {
		s = &intlState{}
		m.data[id] = s
	}
	return s
}

func (m *InternationalManager) profile(country string) (entity.CountryProfile, bool) {
	c, ok := m.countries[strings.ToLower(country)]
	return c, ok
}

// Expand 进入海外市场
// 功能：企业进入指定国家的市场
// 参数：id-企业ID，country-国家名
// 返回：是否进入成功
// 算法说明：
// 1. 国家须在档案中，重复进入或资金不足500000时拒绝
// 2. 市场规模随机抽取100万-1000万
// 3. 监管成本优先取国家档案值，未配置时随机抽取0.1-0.3
// 4. 文化壁垒0.2-0.6，基础设施0.5-0.9
// 5. 记入一次国际扩张（品牌价值+50000）
func (m *InternationalManager) Expand(id int32, country string) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	profile, ok := m.profile(country)
	if !ok {
		log.Debugf("unknown country %s", country)
		return false
	}
	s := m.state(id)
	for _, market := range s.markets {
		if strings.EqualFold(market.Country, country) {
			return false
		}
	}
	if b.Capital() < marketEntryCost {
		return false
	}
	rng := m.ctx.Rand()
	regulatoryCost := profile.RegulatoryCost
	if regulatoryCost <= 0 {
		regulatoryCost = rng.Range(0.1, 0.3)
	}
	s.markets = append(s.markets, &entity.ForeignMarket{
		Country:         profile.Name,
		Currency:        profile.Currency,
		ExchangeRate:    m.rates[profile.Currency],
		MarketSize:      rng.Range(1000000, 10000000),
		RegulatoryCost:  regulatoryCost,
		CulturalBarrier: rng.Range(0.2, 0.6),
		Infrastructure:  rng.Range(0.5, 0.9),
		Regulations:     profile.Regulations,
		Preferences:     profile.Preferences,
	})
	b.AddCapital(-marketEntryCost)
	b.AddExpense(marketEntryCost)
	b.ExpandInternationally()
	log.Infof("business %d expanded into %s", id, profile.Name)
	return true
}

// CreateSubsidiary 设立海外子公司
// 功能：在已进入的国家设立子公司
// 参数：id-企业ID，country-国家名，name-子公司名，capital-注入资本
// 返回：是否设立成功
// 算法说明：
// 1. 须先进入该国市场，总费用 = 1000000 + 注入资本
// 2. 子公司税率随机抽取0.15-0.35
// 3. 复制母公司当前产品组合作为子公司的本地产品线
func (m *InternationalManager) CreateSubsidiary(id int32, country string, name string, capital float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if capital < 0 {
		return false
	}
	profile, ok := m.profile(country)
	if !ok {
		return false
	}
	s := m.state(id)
	entered := false
	for _, market := range s.markets {
		if strings.EqualFold(market.Country, country) {
			entered = true
			break
		}
	}
	if !entered {
		log.Debugf("business %d has no market presence in %s", id, country)
		return false
	}
	cost := subsidiarySetupCost + capital
	if b.Capital() < cost {
		return false
	}
	products := make([]*entity.Product, 0, len(b.Products()))
	for _, p := range b.Products() {
		local := *p
		local.Features = append([]string(nil), p.Features...)
		products = append(products, &local)
	}
	s.subsidiaries = append(s.subsidiaries, &entity.Subsidiary{
		Name:     name,
		Country:  profile.Name,
		Capital:  capital,
		Products: products,
		TaxRate:  m.ctx.Rand().Range(0.15, 0.35),
	})
	b.AddCapital(-cost)
	b.AddExpense(cost)
	log.Infof("business %d created subsidiary %s in %s", id, name, profile.Name)
	return true
}

// NegotiateAgreement 谈判贸易协定
// 功能：出资促成两国之间的贸易协定
// 参数：id-企业ID，countryA/countryB-缔约国，cost-谈判费用
// 返回：是否达成
// 算法说明：关税削减0.1-0.3，有效期50-200步，到期自动失效
func (m *InternationalManager) NegotiateAgreement(id int32, countryA string, countryB string, cost float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if cost <= 0 || b.Capital() < cost {
		return false
	}
	rng := m.ctx.Rand()
	duration := rng.IntRange(50, 201)
	s := m.state(id)
	s.agreements = append(s.agreements, &entity.TradeAgreement{
		CountryA:        countryA,
		CountryB:        countryB,
		TariffReduction: rng.Range(0.1, 0.3),
		Duration:        duration,
		Remaining:       duration,
	})
	b.AddCapital(-cost)
	b.AddExpense(cost)
	return true
}

// ExchangeRate 获取国家币种的当前汇率
// 说明：未知国家按USD处理
func (m *InternationalManager) ExchangeRate(country string) float64 {
	if profile, ok := m.profile(country); ok {
		return m.rates[profile.Currency]
	}
	return m.rates["USD"]
}

// Countries 获取全部国家名（目录顺序）
func (m *InternationalManager) Countries() []string {
	return append([]string(nil), m.order...)
}

// MarketPotential 获取国家的市场潜力，未知国家返回0
func (m *InternationalManager) MarketPotential(country string) float64 {
	if profile, ok := m.profile(country); ok {
		return profile.MarketPotential
	}
	return 0
}

// MarketCount 获取企业已进入的海外市场数
func (m *InternationalManager) MarketCount(id int32) int32 {
	return int32(len(m.state(id).markets))
}

// Status 获取国际化状态快照
func (m *InternationalManager) Status(id int32) entity.InternationalStatus {
	s := m.state(id)
	res := entity.InternationalStatus{
		Markets:      make([]entity.ForeignMarket, 0, len(s.markets)),
		Subsidiaries: make([]entity.Subsidiary, 0, len(s.subsidiaries)),
		Agreements:   make([]entity.TradeAgreement, 0, len(s.agreements)),
	}
	for _, market := range s.markets {
		res.Markets = append(res.Markets, *market)
	}
	for _, sub := range s.subsidiaries {
		res.Subsidiaries = append(res.Subsidiaries, *sub)
	}
	for _, a := range s.agreements {
		res.Agreements = append(res.Agreements, *a)
	}
	return res
}

// Drop 移除该企业的全部国际化记录（收购用）
func (m *InternationalManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进汇率波动、子公司结算与协定到期
// 参数：dt-时间步长
// 算法说明：
// 1. 汇率随机游走：每步±5%，USD锚定1.0不动
// 2. 子公司每步结算：
//   - 本地营收 = Σ(价格×库存)×0.1，本地支出 = Σ工资 + Σ(成本×库存)×0.05
//   - 税费 = max(0, 利润)×税率，净额滚入子公司资本
//   - 净利润为正时按当前汇率折算，汇回母公司并计入营收
//
// 3. 贸易协定剩余步数递减，到期移除
func (m *InternationalManager) Update(dt float64) {
	rng := m.ctx.Rand()
	for currency := range m.rates {
		if currency == "USD" {
			continue
		}
		m.rates[currency] *= 1 + rng.Range(-0.05, 0.05)
	}

	for _, b := range m.ctx.BusinessManager().All() {
		s := m.state(b.ID())

		// 子公司结算
		for _, sub := range s.subsidiaries {
			revenue := 0.0
			expenses := 0.0
			for _, e := range sub.Employees {
				expenses += e.Wage
			}
			for _, p := range sub.Products {
				revenue += p.Price * float64(p.Inventory) * 0.1
				expenses += p.Cost * float64(p.Inventory) * 0.05
			}
			profit := revenue - expenses
			taxes := 0.0
			if profit > 0 {
				taxes = profit * sub.TaxRate
			}
			net := profit - taxes
			sub.Capital += net
			sub.Revenue = revenue
			sub.Expenses = expenses + taxes
			sub.Profitable = net > 0
			if net > 0 {
				remitted := net * m.ExchangeRate(sub.Country)
				b.AddCapital(remitted)
				b.AddRevenue(remitted)
			}
		}

		// 协定到期
		active := s.agreements[:0]
		for _, a := range s.agreements {
			a.Remaining--
			if a.Remaining > 0 {
				active = append(active, a)
			} else {
				log.Debugf("trade agreement between %s and %s expired", a.CountryA, a.CountryB)
			}
		}
		s.agreements = active
	}
}
