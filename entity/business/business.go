package business

import (
	"fmt"

	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// Business 企业
// 功能：维护企业的资金、账目、员工、产品与各项经营指标
// 说明：标量字段被多个子系统按Task的固定顺序串行读写，不加锁
type Business struct {
	ctx entity.ITaskContext

	id       int32
	name     string
	industry string
	region   string

	// 资金与月度账目
	capital        float64
	revenue        float64 // 本月累计营收
	expenses       float64 // 本月累计支出
	liabilities    float64
	daysInBusiness int32
	totalProfit    float64 // 历史累计净利润
	creditScore    float64
	creditBonus    float64 // 创建时按初始资金确定的一次性信用加分

	// 员工与产品
	employees []*entity.Employee
	products  []*entity.Product

	// 市场与声誉
	marketShare float64
	reputation  float64

	// 历史峰值
	peakCapital     float64
	peakMarketShare float64

	// 效率
	productionEfficiency float64
	processEfficiency    float64
	logisticsEfficiency  float64
	researchEfficiency   float64

	// 研发
	completedResearch map[string]bool

	// 高阶指标
	isPublic         bool
	stockPrice       float64
	brandValue       float64
	innovationScore  float64
	complianceScore  float64
	intlPresence     float64
	mergerExperience float64

	// 声望派生乘数，类别->乘数，缺省1.0
	bonusMultipliers map[string]float64
}

// newBusiness 创建企业实例
// 功能：初始化企业的全部经营指标
// 参数：ctx-任务上下文，id-企业ID，name-名称，industry-行业，region-地区，capital-初始资金
// 返回：新创建的企业实例
// 算法说明：
// 1. 各项效率初始化为1.0，声誉初始化为50，合规分初始化为70
// 2. 初始资金达到200000时一次性信用加分100，达到100000时加分50
// 3. 创建后立即计算初始信用分
func newBusiness(ctx entity.ITaskContext, id int32, name, industry, region string, capital float64) *Business {
	b := &Business{
		ctx:                  ctx,
		id:                   id,
		name:                 name,
		industry:             industry,
		region:               region,
		capital:              capital,
		peakCapital:          capital,
		reputation:           50,
		productionEfficiency: 1.0,
		processEfficiency:    1.0,
		logisticsEfficiency:  1.0,
		researchEfficiency:   1.0,
		complianceScore:      70,
		completedResearch:    make(map[string]bool),
		bonusMultipliers:     make(map[string]float64),
	}
	if capital >= 200000 {
		b.creditBonus = 100
	} else if capital >= 100000 {
		b.creditBonus = 50
	}
	b.recomputeCreditScore()
	return b
}

func (b *Business) ID() int32 {
	return b.id
}

func (b *Business) Name() string {
	return b.name
}

func (b *Business) Industry() string {
	return b.industry
}

func (b *Business) Region() string {
	return b.region
}

// Capital 获取当前资金
func (b *Business) Capital() float64 {
	return b.capital
}

// AddCapital 资金变动
// 参数：delta-变动金额，正为流入、负为流出
// 说明：资金变动后刷新资金峰值与信用分
func (b *Business) AddCapital(delta float64) {
	b.capital += delta
	if b.capital > b.peakCapital {
		b.peakCapital = b.capital
	}
	b.recomputeCreditScore()
}

// PeakCapital 获取历史资金峰值
func (b *Business) PeakCapital() float64 {
	return b.peakCapital
}

// Revenue 获取本月累计营收
func (b *Business) Revenue() float64 {
	return b.revenue
}

// Expenses 获取本月累计支出
func (b *Business) Expenses() float64 {
	return b.expenses
}

func (b *Business) AddRevenue(amount float64) {
	b.revenue += amount
}

func (b *Business) AddExpense(amount float64) {
	b.expenses += amount
}

// NetIncome 获取本月净利润
func (b *Business) NetIncome() float64 {
	return b.revenue - b.expenses
}

// CloseMonth 月度结算
// 功能：归档本月账目并清零，经营天数+30
// 说明：历史累计净利润同步更新，供成就与情景判定使用
func (b *Business) CloseMonth() {
	b.totalProfit += b.NetIncome()
	b.revenue = 0
	b.expenses = 0
	b.daysInBusiness += 30
}

// DaysInBusiness 获取经营天数
func (b *Business) DaysInBusiness() int32 {
	return b.daysInBusiness
}

// TotalAssets 获取总资产
// 算法说明：总资产 = 资金 + Σ(产品库存×单位成本)
func (b *Business) TotalAssets() float64 {
	assets := b.capital
	for _, p := range b.products {
		assets += float64(p.Inventory) * p.Cost
	}
	return assets
}

// Liabilities 获取总负债
func (b *Business) Liabilities() float64 {
	return b.liabilities
}

// NetWorth 获取净值 = 总资产 - 总负债
func (b *Business) NetWorth() float64 {
	return b.TotalAssets() - b.liabilities
}

func (b *Business) AddLiability(amount float64) {
	b.liabilities += amount
	b.recomputeCreditScore()
}

// ReduceLiability 削减负债，下限0
func (b *Business) ReduceLiability(amount float64) {
	b.liabilities -= amount
	if b.liabilities < 0 {
		b.liabilities = 0
	}
	b.recomputeCreditScore()
}

// CreditScore 获取信用分
func (b *Business) CreditScore() float64 {
	return b.creditScore
}

// recomputeCreditScore 重新计算信用分
// 算法说明：
// 1. 基准分500加创建时的一次性信用加分
// 2. 资产加分：min(200, 总资产/10000)
// 3. 负债扣分：min(100, 负债率×100)
// 4. 盈利加分：min(100, 利润率×100)
// 5. 规模加分：min(100, 员工数×10)
// 6. 研发加分：min(100, 完成研究数×10)
// 7. 品牌、创新、合规加分：各上限50
// 8. 最终限定在[300, 850]
func (b *Business) recomputeCreditScore() {
	assets := b.TotalAssets()
	score := 500.0 + b.creditBonus
	score += min(200, assets/10000)
	if assets > 0 {
		score -= min(100, b.liabilities/assets*100)
	}
	if b.revenue > 0 {
		score += min(100, b.NetIncome()/b.revenue*100)
	}
	score += min(100, float64(len(b.employees))*10)
	score += min(100, float64(len(b.completedResearch))*10)
	score += min(50, b.brandValue/10000)
	score += min(50, b.innovationScore/10)
	score += min(50, b.complianceScore/10)
	if score < 300 {
		score = 300
	} else if score > 850 {
		score = 850
	}
	b.creditScore = score
}

// Employees 获取员工列表
func (b *Business) Employees() []*entity.Employee {
	return b.employees
}

// Hire 雇佣员工
// 说明：入职成本为一期工资，立即扣除
func (b *Business) Hire(e *entity.Employee) {
	b.employees = append(b.employees, e)
	b.capital -= e.Wage
	b.expenses += e.Wage
	b.recomputeCreditScore()
}

// Fire 解雇员工
// 返回：是否找到并解雇
// 说明：支付一期工资作为遣散费
func (b *Business) Fire(e *entity.Employee) bool {
	for i, emp := range b.employees {
		if emp == e {
			b.employees = append(b.employees[:i], b.employees[i+1:]...)
			b.capital -= e.Wage
			b.expenses += e.Wage
			b.recomputeCreditScore()
			return true
		}
	}
	return false
}

// FireFirst 解雇名单上第一名员工
// 返回：被解雇的员工，无人可解雇返回nil
// 说明：发不出工资时的兜底，不支付遣散费
func (b *Business) FireFirst() *entity.Employee {
	if len(b.employees) == 0 {
		return nil
	}
	e := b.employees[0]
	b.employees = b.employees[1:]
	return e
}

// Products 获取产品列表
func (b *Business) Products() []*entity.Product {
	return b.products
}

func (b *Business) AddProduct(p *entity.Product) {
	b.products = append(b.products, p)
}

// Produce 生产产品
// 参数：p-产品，quantity-计划产量
// 算法说明：
// 1. 有效产量 = round(计划产量 × 员工平均技能 × 有效生产效率)
// 2. 生产成本 = 有效产量 × 单位成本，资金不足时放弃本次生产
// 3. 品质随员工技能微调：每次生产品质 += 0.01×(平均技能-1)，限定在[0.5, 2.0]
func (b *Business) Produce(p *entity.Product, quantity int32) {
	avgSkill := entity.AverageSkill(b.employees)
	effective := int32(float64(quantity)*avgSkill*b.EffectiveProductionEfficiency() + 0.5)
	if effective <= 0 {
		return
	}
	cost := float64(effective) * p.Cost
	if b.capital < cost {
		log.Debugf("business %d cannot afford to produce %d units of %s", b.id, effective, p.Name)
		return
	}
	b.capital -= cost
	b.expenses += cost
	p.Inventory += effective
	p.Quality += 0.01 * (avgSkill - 1)
	if p.Quality < 0.5 {
		p.Quality = 0.5
	} else if p.Quality > 2.0 {
		p.Quality = 2.0
	}
	b.recomputeCreditScore()
}

// Sell 出售产品
// 参数：p-产品，quantity-需求量
// 说明：成交量 = min(库存, 需求量)，按当前价格计入资金与营收
func (b *Business) Sell(p *entity.Product, quantity int32) {
	sold := quantity
	if sold > p.Inventory {
		sold = p.Inventory
	}
	if sold <= 0 {
		return
	}
	amount := float64(sold) * p.Price
	p.Inventory -= sold
	b.AddCapital(amount)
	b.revenue += amount
}

func (b *Business) MarketShare() float64 {
	return b.marketShare
}

func (b *Business) SetMarketShare(v float64) {
	b.marketShare = v
	if v > b.peakMarketShare {
		b.peakMarketShare = v
	}
}

// PeakMarketShare 获取历史市场份额峰值
func (b *Business) PeakMarketShare() float64 {
	return b.peakMarketShare
}

func (b *Business) Reputation() float64 {
	return b.reputation
}

// AddReputation 声誉变动，限定在[0, 100]
func (b *Business) AddReputation(delta float64) {
	b.reputation += delta
	if b.reputation < 0 {
		b.reputation = 0
	} else if b.reputation > 100 {
		b.reputation = 100
	}
}

func (b *Business) ProductionEfficiency() float64 {
	return b.productionEfficiency
}

// EffectiveProductionEfficiency 获取有效生产效率
// 说明：基础生产效率 × 声望运营加成（派生乘数，不写回基础字段）
func (b *Business) EffectiveProductionEfficiency() float64 {
	return b.productionEfficiency * b.BonusMultiplier("Operational")
}

func (b *Business) AddProductionEfficiency(delta float64) {
	b.productionEfficiency += delta
}

func (b *Business) ScaleProductionEfficiency(factor float64) {
	b.productionEfficiency *= factor
}

func (b *Business) ProcessEfficiency() float64 {
	return b.processEfficiency
}

func (b *Business) AddProcessEfficiency(delta float64) {
	b.processEfficiency += delta
}

func (b *Business) LogisticsEfficiency() float64 {
	return b.logisticsEfficiency
}

func (b *Business) AddLogisticsEfficiency(delta float64) {
	b.logisticsEfficiency += delta
}

func (b *Business) ResearchEfficiency() float64 {
	return b.researchEfficiency
}

func (b *Business) ScaleResearchEfficiency(factor float64) {
	b.researchEfficiency *= factor
}

// CompleteResearch 记入已完成研究
// 说明：创新分+10
func (b *Business) CompleteResearch(name string) {
	b.completedResearch[name] = true
	b.innovationScore += 10
	b.recomputeCreditScore()
}

func (b *Business) HasResearch(name string) bool {
	return b.completedResearch[name]
}

func (b *Business) ResearchCount() int32 {
	return int32(len(b.completedResearch))
}

func (b *Business) IsPublic() bool {
	return b.isPublic
}

// GoPublic 上市
// 参数：sharePrice-发行价
// 说明：品牌价值+100000
func (b *Business) GoPublic(sharePrice float64) {
	b.isPublic = true
	b.stockPrice = sharePrice
	b.brandValue += 100000
	b.recomputeCreditScore()
}

func (b *Business) StockPrice() float64 {
	return b.stockPrice
}

func (b *Business) BrandValue() float64 {
	return b.brandValue
}

func (b *Business) AddBrandValue(amount float64) {
	b.brandValue += amount
	if b.brandValue < 0 {
		b.brandValue = 0
	}
	b.recomputeCreditScore()
}

func (b *Business) InnovationScore() float64 {
	return b.innovationScore
}

func (b *Business) ComplianceScore() float64 {
	return b.complianceScore
}

// AddCompliance 合规分变动，限定在[0, 100]
func (b *Business) AddCompliance(delta float64) {
	b.complianceScore += delta
	if b.complianceScore < 0 {
		b.complianceScore = 0
	} else if b.complianceScore > 100 {
		b.complianceScore = 100
	}
	b.recomputeCreditScore()
}

func (b *Business) InternationalPresence() float64 {
	return b.intlPresence
}

// ExpandInternationally 记入一次国际扩张
// 说明：品牌价值+50000
func (b *Business) ExpandInternationally() {
	b.intlPresence += 1
	b.brandValue += 50000
	b.recomputeCreditScore()
}

func (b *Business) MergerExperience() float64 {
	return b.mergerExperience
}

// CompleteMerger 记入一次并购
// 说明：品牌价值+75000
func (b *Business) CompleteMerger() {
	b.mergerExperience += 1
	b.brandValue += 75000
	b.recomputeCreditScore()
}

// BonusMultiplier 获取指定类别的声望派生乘数，缺省1.0
func (b *Business) BonusMultiplier(category string) float64 {
	if v, ok := b.bonusMultipliers[category]; ok {
		return v
	}
	return 1.0
}

// SetBonusMultiplier 设置指定类别的声望派生乘数
// 说明：按类别覆盖保存，重复解锁同类加成不会累乘
func (b *Business) SetBonusMultiplier(category string, value float64) {
	b.bonusMultipliers[category] = value
}

// OverallPerformance 获取综合表现分
// 算法说明：声誉、创新分（上限100）、合规分的均值
func (b *Business) OverallPerformance() float64 {
	innovation := b.innovationScore
	if innovation > 100 {
		innovation = 100
	}
	return (b.reputation + innovation + b.complianceScore) / 3
}

// prepare 准备阶段
// 说明：刷新信用分等派生指标
func (b *Business) prepare() {
	b.recomputeCreditScore()
}

// String 获取企业的字符串表示
func (b *Business) String() string {
	return fmt.Sprintf(
		"Business %d (%s): capital=%.2f, worth=%.2f, employees=%d, products=%d, share=%.3f",
		b.id, b.name, b.capital, b.NetWorth(), len(b.employees), len(b.products), b.marketShare,
	)
}
