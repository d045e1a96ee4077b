package business

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 市场的默认弹性系数，同时是零供给时的保底价格
	defaultElasticity = 100
	// 每步每个产品的计划产量
	unitsPerStep = 10
)

// 企业管理器（实体注册表）
// 说明：持有主公司与AI竞争对手，ID在整个运行期间稳定；
// 第一个创建的企业视为主公司
type BusinessManager struct {
	ctx entity.ITaskContext

	data       map[int32]*Business
	businesses []*Business
	nextID     int32
	ventureID  int32
}

// NewManager 创建企业管理器实例
// 功能：初始化企业管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的企业管理器实例
func NewManager(ctx entity.ITaskContext) *BusinessManager {
	m := &BusinessManager{
		ctx:        ctx,
		data:       make(map[int32]*Business),
		businesses: make([]*Business, 0),
		ventureID:  -1,
	}
	return m
}

// Create 创建企业
// 功能：创建企业并完成跨子系统引导
// 参数：name-名称，industry-行业，region-地区，capital-初始资金
// 返回：新企业的ID
// 算法说明：
// 1. 分配自增ID并注册
// 2. 引导初始供应商与仓库（Logistics）
// 3. 初始化成就与声望档案（Progression）
// 4. 第一个创建的企业记为主公司
func (m *BusinessManager) Create(name string, industry string, region string, capital float64) int32 {
	id := m.nextID
	m.nextID++
	b := newBusiness(m.ctx, id, name, industry, region, capital)
	m.data[id] = b
	m.businesses = append(m.businesses, b)
	if m.ventureID < 0 {
		m.ventureID = id
	}
	m.ctx.LogisticsManager().Bootstrap(id, region)
	m.ctx.ProgressionManager().InitFor(id)
	log.Infof("create business %d (%s, %s, %s) with capital %.2f", id, name, industry, region, capital)
	return id
}

// CreateCompetitors 创建AI竞争对手
// 功能：批量创建竞争对手企业
// 参数：count-数量
// 算法说明：
// 1. 行业在General/Tech/Food中随机抽取，地区固定为Global
// 2. 初始资金150000±20000
// 3. 每家配置1个产品（价格100、成本50）和5名员工（工资2000、技能1.0）
func (m *BusinessManager) CreateCompetitors(count int32) {
	industries := []string{"General", "Tech", "Food"}
	rng := m.ctx.Rand()
	for i := int32(1); i <= count; i++ {
		industry := industries[rng.IntRange(0, int32(len(industries)))]
		capital := 150000 + rng.Range(-20000, 20000)
		id := m.Create(fmt.Sprintf("AI Corp %d", i), industry, "Global", capital)
		b := m.data[id]
		b.AddProduct(&entity.Product{
			Name:     fmt.Sprintf("AI Product %d", i),
			Category: industry,
			Price:    100,
			Cost:     50,
			Quality:  1.0,
		})
		for j := 1; j <= 5; j++ {
			b.Hire(&entity.Employee{
				Name:   fmt.Sprintf("AI Corp %d Employee %d", i, j),
				Role:   "Worker",
				Wage:   2000,
				Morale: 0.8,
				Skill:  1.0,
			})
		}
	}
}

// Get 根据ID获取企业实例
// 功能：通过企业ID查找对应的企业对象，如果不存在则panic
// 参数：id-企业的唯一标识符
// 返回：对应的企业实例，如果不存在则panic
func (m *BusinessManager) Get(id int32) entity.IBusiness {
	if b, ok := m.data[id]; !ok {
		log.Panicf("no id %d in business data", id)
		return nil
	} else {
		return b
	}
}

// GetOrError 根据ID获取企业实例（带错误处理）
// 功能：通过企业ID查找对应的企业对象，如果不存在则返回错误
// 参数：id-企业的唯一标识符
// 返回：企业实例和错误信息，如果不存在则返回nil和错误
func (m *BusinessManager) GetOrError(id int32) (entity.IBusiness, error) {
	if b, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in business data", id)
	} else {
		return b, nil
	}
}

// All 获取全部企业（按创建顺序）
func (m *BusinessManager) All() []entity.IBusiness {
	res := make([]entity.IBusiness, 0, len(m.businesses))
	for _, b := range m.businesses {
		res = append(res, b)
	}
	return res
}

// Venture 获取主公司
func (m *BusinessManager) Venture() entity.IBusiness {
	return m.Get(m.ventureID)
}

// Acquire 收购
// 功能：收购方吞并目标企业
// 参数：acquirerID-收购方ID，targetID-目标ID
// 返回：是否收购成功
// 算法说明：
// 1. 前置校验：收购方净值与资金均须高于目标净值，主公司不可被收购
// 2. 收购价为目标净值，立即支付并计入支出
// 3. 承接目标的全部负债，并记入一次并购经验
// 4. 同一步内将目标从注册表及全部子系统登记中移除
func (m *BusinessManager) Acquire(acquirerID int32, targetID int32) bool {
	if acquirerID == targetID {
		return false
	}
	acquirer, err := m.GetOrError(acquirerID)
	if err != nil {
		return false
	}
	target, err := m.GetOrError(targetID)
	if err != nil {
		return false
	}
	if targetID == m.ventureID {
		return false
	}
	cost := target.NetWorth()
	if acquirer.NetWorth() <= cost || acquirer.Capital() <= cost {
		log.Debugf("business %d cannot afford to acquire %d (cost %.2f)", acquirerID, targetID, cost)
		return false
	}
	acquirer.AddCapital(-cost)
	acquirer.AddExpense(cost)
	acquirer.AddLiability(target.Liabilities())
	acquirer.CompleteMerger()

	delete(m.data, targetID)
	for i, b := range m.businesses {
		if b.id == targetID {
			m.businesses = append(m.businesses[:i], m.businesses[i+1:]...)
			break
		}
	}
	m.ctx.FinanceManager().Drop(targetID)
	m.ctx.LogisticsManager().Drop(targetID)
	m.ctx.CrisisManager().Drop(targetID)
	m.ctx.MarketingManager().Drop(targetID)
	m.ctx.InternationalManager().Drop(targetID)
	m.ctx.ResearchManager().Drop(targetID)
	m.ctx.ProgressionManager().Drop(targetID)
	m.ctx.ScenarioManager().Drop(targetID)
	log.Infof("business %d acquired %d for %.2f", acquirerID, targetID, cost)
	return true
}

// TrainEmployees 员工培训
// 功能：为过了冷却期的员工提升技能与士气
// 参数：id-企业ID，amount-技能提升量，costPerEmployee-人均培训费，cooldownSteps-冷却步数
// 返回：是否实际培训
// 算法说明：
// 1. 筛选过了冷却期的员工，无人可训或资金不足时拒绝
// 2. 技能+amount限定在[0.5, 2.0]，士气+0.05限定在[0, 1]
// 3. 记录培训步数，费用计入支出
func (m *BusinessManager) TrainEmployees(id int32, amount float64, costPerEmployee float64, cooldownSteps int32) bool {
	b, ok := m.data[id]
	if !ok {
		return false
	}
	step := m.ctx.Clock().InternalStep
	eligible := make([]*entity.Employee, 0, len(b.employees))
	for _, e := range b.employees {
		if e.LastTrainedStep == 0 || step-e.LastTrainedStep >= cooldownSteps {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		return false
	}
	cost := costPerEmployee * float64(len(eligible))
	if b.capital < cost {
		return false
	}
	for _, e := range eligible {
		e.Skill += amount
		if e.Skill < 0.5 {
			e.Skill = 0.5
		} else if e.Skill > 2.0 {
			e.Skill = 2.0
		}
		e.Morale += 0.05
		if e.Morale > 1 {
			e.Morale = 1
		}
		e.LastTrainedStep = step
	}
	b.AddCapital(-cost)
	b.AddExpense(cost)
	return true
}

// Prepare 准备阶段
// 功能：对所有企业执行准备阶段，刷新派生指标
// 说明：使用并行处理提高性能
func (m *BusinessManager) Prepare() {
	parallel.GoFor(m.businesses, func(b *Business) { b.prepare() })
}

// Update 更新阶段：工资、生产与销售
// 功能：推进所有企业的日常经营，驱动市场定价
// 参数：dt-时间步长
// 算法说明：
// 1. 工资：扣除全员工资；资金为负时解雇名单上第一名员工兜底
// 2. 生产：每个产品按计划产量10生产（产量随技能与效率折算）
// 3. 需求：基础需求8±2，随品质线性放大，活跃危机抑制需求；供需计入对应品类市场
// 4. 定价：所有市场统一清算，产品价格更新为清算价格
// 5. 销售：按需求量出售，统计每家企业本步销售额并折算市场份额
// 6. 清零：市场供需计数复位，等待下一步累计
// 说明：生产与销售串行执行，市场定价依赖全体企业的累计供需
func (m *BusinessManager) Update(dt float64) {
	rng := m.ctx.Rand()
	marketManager := m.ctx.MarketManager()

	// 工资、生产与供需累计
	for _, b := range m.businesses {
		wages := 0.0
		for _, e := range b.employees {
			wages += e.Wage
		}
		if wages > 0 {
			b.AddCapital(-wages)
			b.AddExpense(wages)
		}
		if b.capital < 0 {
			if e := b.FireFirst(); e != nil {
				log.Infof("business %d fired %s due to negative capital", b.id, e.Name)
			}
		}
		for _, p := range b.products {
			b.Produce(p, unitsPerStep)
			quality := p.Quality
			if quality < 0 {
				quality = 0
			} else if quality > 2.0 {
				quality = 2.0
			}
			demand := float64(8+rng.IntRange(-2, 3)) * (1 + 0.5*(quality-1))
			demand *= m.ctx.CrisisManager().DemandMultiplier(b.id)
			if demand < 0 {
				demand = 0
			}
			p.Demand = float64(int32(demand + 0.5))
			market := marketManager.GetOrCreate(p.Category, defaultElasticity)
			market.AccumulateSupply(float64(p.Inventory))
			market.AccumulateDemand(p.Demand)
		}
	}

	// 市场清算定价
	for _, market := range marketManager.All() {
		market.ClearPrice()
	}

	// 按清算价格销售并折算市场份额
	stepSales := make(map[int32]float64, len(m.businesses))
	total := 0.0
	for _, b := range m.businesses {
		for _, p := range b.products {
			market := marketManager.GetOrCreate(p.Category, defaultElasticity)
			p.Price = market.Price()
			before := b.revenue
			b.Sell(p, int32(p.Demand))
			stepSales[b.id] += b.revenue - before
		}
		total += stepSales[b.id]
	}
	if total > 0 {
		for _, b := range m.businesses {
			b.SetMarketShare(stepSales[b.id] / total)
		}
	}

	// 供需计数复位
	for _, market := range marketManager.All() {
		market.Reset()
	}
}
