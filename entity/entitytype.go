package entity

// 员工
// 说明：由Business持有，工资在每步的生产销售阶段扣除
type Employee struct {
	Name            string  // 姓名
	Role            string  // 岗位
	Wage            float64 // 每步工资
	Morale          float64 // 士气（0-1）
	Skill           float64 // 技能（0.5-2.0）
	LastTrainedStep int32   // 上次培训的步数
}

// AverageSkill 计算员工平均技能
// 说明：无员工时返回1.0（中性系数），用于生产数量折算
func AverageSkill(employees []*Employee) float64 {
	if len(employees) == 0 {
		return 1.0
	}
	total := 0.0
	for _, e := range employees {
		total += e.Skill
	}
	return total / float64(len(employees))
}

// 产品
// 说明：库存与品质被物流、研发、危机等多个子系统共同修改
type Product struct {
	Name      string  // 名称
	Category  string  // 品类，对应Market的键
	Price     float64 // 单价
	Cost      float64 // 单位成本
	Inventory int32   // 库存
	Demand    float64 // 当前需求
	Quality   float64 // 品质（0.5-2.0）
	Features  []string
}

// entity/business/business.go的依赖倒置
// 说明：Business的标量字段是唯一被多个子系统共同读写的状态，
// 子系统严格按Task的固定顺序串行访问（以顺序代替锁）
type IBusiness interface {
	ID() int32
	Name() string
	Industry() string
	Region() string

	// 资金与月度账目

	Capital() float64
	AddCapital(delta float64) // 资金变动（正为收入、负为支出），同时刷新峰值与信用分
	Revenue() float64         // 本月累计营收
	Expenses() float64        // 本月累计支出
	AddRevenue(amount float64)
	AddExpense(amount float64)
	NetIncome() float64             // 本月净利润
	CloseMonth()                    // 月度结算：归档本月账目并清零，经营天数+30
	DaysInBusiness() int32          // 经营天数
	TotalAssets() float64           // 总资产 = 资金 + 库存成本价值
	Liabilities() float64           // 总负债
	NetWorth() float64              // 净值 = 总资产 - 总负债
	AddLiability(amount float64)    // 记入负债
	ReduceLiability(amount float64) // 削减负债（下限0）
	CreditScore() float64           // 信用分（300-850）

	// 员工与产品

	Employees() []*Employee
	Hire(e *Employee)
	Fire(e *Employee) bool
	FireFirst() *Employee // 解雇名单上第一名员工（发不出工资时的兜底），无人可解雇返回nil
	Products() []*Product
	AddProduct(p *Product)
	Produce(p *Product, quantity int32) // 生产，按平均技能与有效生产效率折算产量
	Sell(p *Product, quantity int32)    // 按当前价格出售，计入营收

	// 市场与声誉

	MarketShare() float64
	SetMarketShare(v float64)         // 份额写入，同时刷新份额峰值
	PeakCapital() float64             // 历史资金峰值
	PeakMarketShare() float64         // 历史市场份额峰值
	Reputation() float64
	AddReputation(delta float64)

	// 效率与研发

	ProductionEfficiency() float64
	EffectiveProductionEfficiency() float64 // 生产效率 × 声望运营加成
	AddProductionEfficiency(delta float64)
	ScaleProductionEfficiency(factor float64)
	ProcessEfficiency() float64
	AddProcessEfficiency(delta float64)
	LogisticsEfficiency() float64
	AddLogisticsEfficiency(delta float64)
	ResearchEfficiency() float64
	ScaleResearchEfficiency(factor float64)
	CompleteResearch(name string) // 记入已完成研究并提升创新分
	HasResearch(name string) bool
	ResearchCount() int32

	// 高阶指标

	IsPublic() bool
	GoPublic(sharePrice float64)
	StockPrice() float64
	BrandValue() float64
	AddBrandValue(amount float64)
	InnovationScore() float64
	ComplianceScore() float64
	AddCompliance(delta float64)
	InternationalPresence() float64
	ExpandInternationally()
	MergerExperience() float64
	CompleteMerger()

	// 声望加成（派生乘数，按类别只保存最高档位的值，不在基础字段上累乘）

	BonusMultiplier(category string) float64
	SetBonusMultiplier(category string, value float64)

	OverallPerformance() float64
	String() string
}
