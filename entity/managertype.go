package entity

// Manager依赖倒置

// entity/business/manager.go的依赖倒置
// 实体注册表：持有主公司与竞争对手，ID在整个运行期间稳定
type IBusinessManager interface {
	// 创建企业并引导其初始供应商与仓库（对Logistics的显式跨子系统调用）
	Create(name string, industry string, region string, capital float64) int32
	// 创建count个AI竞争对手
	CreateCompetitors(count int32)

	// 输入企业ID，查找企业，如果不存在则panic
	Get(id int32) IBusiness
	// 输入企业ID，查找企业，如果不存在则返回error
	GetOrError(id int32) (IBusiness, error)
	All() []IBusiness  // 按创建顺序返回全部企业
	Venture() IBusiness // 主公司

	// 收购：要求收购方净值与资金均高于目标净值；支付目标净值、
	// 承接其负债，并在同一步内将目标从注册表及所有子系统登记中原子移除
	Acquire(acquirerID int32, targetID int32) bool
	// 员工培训（带冷却），返回是否实际培训
	TrainEmployees(id int32, amount float64, costPerEmployee float64, cooldownSteps int32) bool

	Prepare()          // 准备阶段
	Update(dt float64) // 更新阶段：工资、生产与销售（驱动Market）
}

// entity/market/manager.go的依赖倒置
type IMarketManager interface {
	// 按品类查找市场，不存在则以给定弹性惰性创建
	GetOrCreate(category string, elasticity float64) IMarket
	All() []IMarket
}

// entity/finance/manager.go的依赖倒置
type IFinanceManager interface {
	// 贷款，现有本金+新本金超过2倍现金时拒绝
	TakeLoan(id int32, amount float64, durationSteps int32) bool
	// 投资，现金不足时拒绝
	Invest(id int32, investType string, amount float64, maturitySteps int32) bool
	// 累进税额计算
	ComputeTax(revenue float64, expenses float64) float64
	CanGoPublic(id int32) bool
	GoPublic(id int32) bool

	Status(id int32) FinanceStatus // 状态快照
	Drop(id int32)                 // 移除该企业的全部记录（收购用）
	Update(dt float64)             // 更新阶段：还款、到期兑付、月度纳税
}

// entity/logistics/manager.go的依赖倒置
type ILogisticsManager interface {
	// 为新企业生成初始供应商与仓库
	Bootstrap(id int32, region string)
	RegisterSupplier(id int32, s Supplier)
	// 下单，低于最小订货量或现金不足时拒绝；成本立即扣除并记为负债
	PlaceOrder(id int32, supplierName string, quantity int32) bool
	AddWarehouse(id int32, location string, capacity int32)
	// 全部在途订单交付延后extra步（供应链中断事件）
	DelayAll(extra int32)

	Status(id int32) LogisticsStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：交付判定与仓储成本
}

// entity/crisis/manager.go的依赖倒置
type ICrisisManager interface {
	// 以 0.05×(1-抵抗力) 的概率为该企业生成一次新危机
	Spawn(id int32)
	// 跳过概率判定，直接施加给定危机（脚本化危机入口）
	Inflict(id int32, c *Crisis)
	// 危机响应，现金不足时拒绝
	Respond(id int32, actionType string, budget float64) bool
	// 预防性投入，抵抗力上限0.9
	ImprovePrevention(id int32, investment float64) bool
	Resistance(id int32) float64
	ResolvedCount(id int32) int32
	// 活跃危机的销售抑制乘数（SalesReduction效果的叠乘），无危机时为1.0
	DemandMultiplier(id int32) float64

	Status(id int32) CrisisStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：均摊冲击、响应结算
}

// entity/marketing/manager.go的依赖倒置
type IMarketingManager interface {
	LaunchCampaign(id int32, name string, campaignType string, budget float64, durationSteps int32, audience string) bool
	ConductResearch(id int32, studyType string, cost float64, durationSteps int32) bool
	ImproveCustomerService(id int32, investment float64) bool
	InvestSocialResponsibility(id int32, investment float64) bool
	// 客户满意度子分变化（危机均摊声誉冲击的入口），总分重算为均值
	ApplySatisfactionDelta(id int32, delta float64)
	// 品牌总分直接变化（危机响应完成效果的入口），下次总分重算前生效
	ApplyOverallDelta(id int32, delta float64)
	BrandMultiplier(id int32) float64

	Status(id int32) MarketingStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：活动效果、自然衰减、调研完成
}

// entity/intl/manager.go的依赖倒置
type IInternationalManager interface {
	// 进入海外市场，费用不足或已进入时拒绝
	Expand(id int32, country string) bool
	CreateSubsidiary(id int32, country string, name string, capital float64) bool
	NegotiateAgreement(id int32, countryA string, countryB string, cost float64) bool
	ExchangeRate(country string) float64
	Countries() []string
	MarketPotential(country string) float64
	MarketCount(id int32) int32

	Status(id int32) InternationalStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：汇率随机游走、子公司结算、协定到期
}

// entity/research/manager.go的依赖倒置
type IResearchManager interface {
	// 启动研究项目：前置项目全部完成且现金充足，不允许重复在研
	StartProject(id int32, projectName string) bool
	HireResearcher(id int32, name string, specialization string, wage float64, skill float64, efficiency float64) bool
	// 全部在研项目进度+delta（研究突破事件）
	Boost(id int32, delta float64)
	AvailableProjects(id int32) []ResearchProject
	PatentCount(id int32) int32

	Status(id int32) ResearchStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：进度推进、成败判定、专利许可收入
}

// entity/progression/manager.go的依赖倒置
type IProgressionManager interface {
	// 初始化该企业的成就、声望档位、可解锁项与加成
	InitFor(id int32)
	UnlockFeature(id int32, name string) bool
	Progress(id int32) float64 // 成就完成比例
	Level(id int32) int32      // 当前声望档位

	Status(id int32) ProgressionStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：成就刷新、声望解锁
}

// entity/scenario/manager.go的依赖倒置
type IScenarioManager interface {
	Start(id int32, scenarioName string) bool
	Available() []string

	Status(id int32) ScenarioStatus
	Drop(id int32)
	Update(dt float64) // 更新阶段：情景/挑战/特殊事件推进
}

// entity/event/manager.go的依赖倒置
type IEventManager interface {
	UpdateCompliance() // 合规检查阶段
	UpdateEvents()     // 随机事件阶段（生产销售之后）
}
