package progression

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// newPrestigeTiers 构建声望档位表
// 说明：按净值门槛升序排列，加成值为类别乘数
func newPrestigeTiers() []*entity.PrestigeTier {
	return []*entity.PrestigeTier{
		{Level: 0, Title: "Startup", Required: 0,
			Features: []string{"Basic operations"},
			Bonuses:  map[string]float64{"Efficiency": 1.0}},
		{Level: 1, Title: "Small Business", Required: 1000000,
			Features: []string{"Expanded hiring"},
			Bonuses:  map[string]float64{"Efficiency": 1.1, "ResearchSpeed": 1.1}},
		{Level: 2, Title: "Medium Enterprise", Required: 5000000,
			Features: []string{"Regional reach"},
			Bonuses:  map[string]float64{"Efficiency": 1.2, "MarketAccess": 1.2}},
		{Level: 3, Title: "Large Corporation", Required: 20000000,
			Features: []string{"Preferred lending"},
			Bonuses:  map[string]float64{"Efficiency": 1.3, "FinancialAccess": 1.3}},
		{Level: 4, Title: "Global Corporation", Required: 50000000,
			Features: []string{"Global influence"},
			Bonuses:  map[string]float64{"Efficiency": 1.5, "AllBonuses": 1.2}},
	}
}

// newUnlockables 构建可解锁项表
func newUnlockables() []*entity.Unlockable {
	return []*entity.Unlockable{
		{Name: "Research Lab", Description: "Dedicated research facility", Type: "Building", Cost: 500000},
		{Name: "Marketing HQ", Description: "Central marketing headquarters", Type: "Building", Cost: 300000},
		{Name: "Training Center", Description: "Employee training facility", Type: "Building", Cost: 200000},
		{Name: "AI Integration", Description: "AI-assisted decision making", Type: "Technology", Cost: 1000000},
		{Name: "Cloud Infrastructure", Description: "Scalable cloud platform", Type: "Technology", Cost: 750000},
		{Name: "Automation Systems", Description: "Automated production lines", Type: "Technology", Cost: 600000},
		{Name: "Advanced Analytics", Description: "Data-driven insight tooling", Type: "Feature", Cost: 400000},
		{Name: "Crisis Management", Description: "Dedicated crisis response team", Type: "Feature", Cost: 350000},
		{Name: "International Trade", Description: "Cross-border trade desk", Type: "Feature", Cost: 800000},
	}
}

// newBonuses 构建进度加成表
func newBonuses() []*entity.ProgressionBonus {
	return []*entity.ProgressionBonus{
		{Name: "Efficiency Boost", Description: "Production efficiency bonus", Value: 0.1, Category: "Operational"},
		{Name: "Research Speed", Description: "Research progress bonus", Value: 0.15, Category: "Innovation"},
		{Name: "Market Access", Description: "Market reach bonus", Value: 0.1, Category: "Market"},
		{Name: "Financial Access", Description: "Financing terms bonus", Value: 0.1, Category: "Financial"},
		{Name: "Employee Retention", Description: "Workforce stability bonus", Value: 0.1, Category: "Operational"},
	}
}

// 可解锁项与其激活的进度加成的对应关系
var unlockActivations = map[string]string{
	"Automation Systems": "Efficiency Boost",
	"Research Lab":       "Research Speed",
	"Marketing HQ":       "Market Access",
	"Advanced Analytics": "Financial Access",
	"Training Center":    "Employee Retention",
}

// 单个企业的进度记录
type progressionState struct {
	achievements []*entity.Achievement
	tiers        []*entity.PrestigeTier
	unlockables  []*entity.Unlockable
	bonuses      []*entity.ProgressionBonus
}

// 进度管理器
// 说明：维护每个企业的成就、声望档位、可解锁项与进度加成；
// 声望加成以派生乘数写入企业，按类别整体重算，绝不在基础字段上累乘
type ProgressionManager struct {
	ctx entity.ITaskContext

	catalog []entity.Achievement // 成就目录模板
	data    map[int32]*progressionState
}

// NewManager 创建进度管理器实例
// 功能：初始化进度管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的进度管理器实例
func NewManager(ctx entity.ITaskContext) *ProgressionManager {
	m := &ProgressionManager{
		ctx:  ctx,
		data: make(map[int32]*progressionState),
	}
	return m
}

// Init 初始化成就目录
func (m *ProgressionManager) Init(catalog []entity.Achievement) {
	m.catalog = catalog
}

// InitFor 初始化该企业的成就、声望档位、可解锁项与加成
// 说明：企业创建时调用，初始档位Startup立即解锁
func (m *ProgressionManager) InitFor(id int32) {
	s := &progressionState{
		tiers:       newPrestigeTiers(),
		unlockables: newUnlockables(),
		bonuses:     newBonuses(),
	}
	for _, a := range m.catalog {
		achievement := a
		s.achievements = append(s.achievements, &achievement)
	}
	s.tiers[0].Unlocked = true
	m.data[id] = s
	if b, err := m.ctx.BusinessManager().GetOrError(id); err == nil {
		m.recomputeBonuses(s, b)
	}
}

// state 获取企业的进度记录
func (m *ProgressionManager) state(id int32) *progressionState {
	s, ok := m.data[id]
	if !ok {
		m.InitFor(id)
		s = m.data[id]
	}
	return s
}

// UnlockFeature 购买可解锁项
// 功能：支付费用解锁指定的可解锁项
// 参数：id-企业ID，name-可解锁项名
// 返回：是否解锁成功
// 说明：部分可解锁项会激活对应的进度加成，加成通过派生乘数整体重算生效
func (m *ProgressionManager) UnlockFeature(id int32, name string) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	s := m.state(id)
	for _, u := range s.unlockables {
		if u.Name != name {
			continue
		}
		if u.Unlocked || b.Capital() < u.Cost {
			return false
		}
		u.Unlocked = true
		b.AddCapital(-u.Cost)
		b.AddExpense(u.Cost)
		if bonusName, ok := unlockActivations[name]; ok {
			for _, bonus := range s.bonuses {
				if bonus.Name == bonusName {
					bonus.Active = true
				}
			}
			m.recomputeBonuses(s, b)
		}
		log.Infof("business %d unlocked %s", id, name)
		return true
	}
	return false
}

// Progress 获取成就完成比例
func (m *ProgressionManager) Progress(id int32) float64 {
	s := m.state(id)
	if len(s.achievements) == 0 {
		return 0
	}
	completed := 0
	for _, a := range s.achievements {
		if a.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(s.achievements))
}

// Level 获取当前声望档位
func (m *ProgressionManager) Level(id int32) int32 {
	s := m.state(id)
	level := int32(0)
	for _, t := range s.tiers {
		if t.Unlocked && t.Level > level {
			level = t.Level
		}
	}
	return level
}

// Status 获取进度状态快照
func (m *ProgressionManager) Status(id int32) entity.ProgressionStatus {
	s := m.state(id)
	res := entity.ProgressionStatus{
		Achievements: make([]entity.Achievement, 0, len(s.achievements)),
		Tiers:        make([]entity.PrestigeTier, 0, len(s.tiers)),
		Unlockables:  make([]entity.Unlockable, 0, len(s.unlockables)),
		Bonuses:      make([]entity.ProgressionBonus, 0, len(s.bonuses)),
	}
	for _, a := range s.achievements {
		res.Achievements = append(res.Achievements, *a)
	}
	for _, t := range s.tiers {
		res.Tiers = append(res.Tiers, *t)
	}
	for _, u := range s.unlockables {
		res.Unlockables = append(res.Unlockables, *u)
	}
	for _, bonus := range s.bonuses {
		res.Bonuses = append(res.Bonuses, *bonus)
	}
	return res
}

// Drop 移除该企业的全部进度记录（收购用）
func (m *ProgressionManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的成就判定与声望解锁
// 参数：dt-时间步长
// 算法说明：
// 1. 成就：按指标刷新当前值，达标时一次性完成并发放奖励
// 2. 声望：资金+总资产达到门槛的档位解锁，解锁后整体重算派生乘数
func (m *ProgressionManager) Update(dt float64) {
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 成就判定
		for _, a := range s.achievements {
			if a.Completed {
				continue
			}
			a.Current = m.metric(b, a)
			if a.Current >= a.Target {
				a.Completed = true
				b.AddCapital(a.Reward)
				log.Infof("business %d completed achievement %s, reward %.2f", id, a.Name, a.Reward)
			}
		}

		// 声望解锁
		worth := b.Capital() + b.TotalAssets()
		unlocked := false
		for _, t := range s.tiers {
			if !t.Unlocked && worth >= t.Required {
				t.Unlocked = true
				unlocked = true
				log.Infof("business %d reached prestige tier %s", id, t.Title)
			}
		}
		if unlocked {
			m.recomputeBonuses(s, b)
		}
	}
}

// metric 获取成就对应的当前指标值
// 说明：按成就名精确匹配，未知成就按类别回退到默认指标
func (m *ProgressionManager) metric(b entity.IBusiness, a *entity.Achievement) float64 {
	switch a.Name {
	case "First Million":
		return b.Capital()
	case "Profit Master":
		return b.NetIncome()
	case "Market Leader":
		return b.MarketShare()
	case "Innovation Hub":
		return float64(b.ResearchCount())
	case "Team Builder":
		return float64(len(b.Employees()))
	case "Product Portfolio":
		return float64(len(b.Products()))
	case "Global Expansion":
		return float64(m.ctx.InternationalManager().MarketCount(b.ID()))
	case "Crisis Survivor":
		return float64(m.ctx.CrisisManager().ResolvedCount(b.ID()))
	case "IPO Success":
		if b.IsPublic() {
			return 1
		}
		return 0
	case "Merger Master":
		return b.MergerExperience()
	}
	switch a.Category {
	case "Financial":
		return b.Capital()
	case "Market":
		return b.MarketShare()
	case "Innovation":
		return float64(b.ResearchCount())
	case "Operational":
		return float64(len(b.Employees()))
	case "Social":
		return float64(m.ctx.CrisisManager().ResolvedCount(b.ID()))
	}
	return 0
}

// recomputeBonuses 整体重算派生乘数
// 功能：由已解锁档位与激活的进度加成重算四类乘数并写入企业
// 算法说明：
// 1. 档位分量：逐档取该类别最新的档位乘数（高档覆盖低档），
//    AllBonuses对四类乘数整体放大
// 2. 加成分量：每个激活的进度加成按(1+值)叠乘到所属类别
// 3. 重算是幂等的：重复解锁或刷新不会导致乘数累乘
func (m *ProgressionManager) recomputeBonuses(s *progressionState, b entity.IBusiness) {
	efficiency, researchSpeed, marketAccess, financialAccess := 1.0, 1.0, 1.0, 1.0
	allBonus := 1.0
	for _, t := range s.tiers {
		if !t.Unlocked {
			continue
		}
		if v, ok := t.Bonuses["Efficiency"]; ok {
			efficiency = v
		}
		if v, ok := t.Bonuses["ResearchSpeed"]; ok {
			researchSpeed = v
		}
		if v, ok := t.Bonuses["MarketAccess"]; ok {
			marketAccess = v
		}
		if v, ok := t.Bonuses["FinancialAccess"]; ok {
			financialAccess = v
		}
		if v, ok := t.Bonuses["AllBonuses"]; ok {
			allBonus = v
		}
	}
	multipliers := map[string]float64{
		"Operational": efficiency * allBonus,
		"Innovation":  researchSpeed * allBonus,
		"Market":      marketAccess * allBonus,
		"Financial":   financialAccess * allBonus,
	}
	for _, bonus := range s.bonuses {
		if bonus.Active {
			multipliers[bonus.Category] *= 1 + bonus.Value
		}
	}
	for category, value := range multipliers {
		b.SetBonusMultiplier(category, value)
	}
}
