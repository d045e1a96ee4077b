package scenario

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 情景基础奖励
	baseReward = 100000
	// 每步触发随机挑战的概率（仅情景进行中）
	challengeChance = 0.1
	// 每步触发特殊事件的概率（仅情景进行中）
	specialEventChance = 0.05
)

// 难度系数
var difficultyMultipliers = map[string]float64{
	"Easy":   0.5,
	"Medium": 1,
	"Hard":   2,
	"Expert": 4,
}

// newScenarioCatalog 构建情景目录
// 说明：修正系数在情景启动时施加到企业效率字段，结束时按倒数还原
func newScenarioCatalog() []entity.Scenario {
	return []entity.Scenario{
		{
			Name:        "Startup Challenge",
			Description: "Grow a young venture into a million business",
			Difficulty:  "Medium",
			Duration:    200,
			Objectives:  []string{"Reach 1,000,000 capital"},
			Restrictions: []string{
				"Reduced production efficiency",
			},
			Modifiers: map[string]float64{"ProductionEfficiency": 0.9},
		},
		{
			Name:        "Market Domination",
			Description: "Capture half of the market",
			Difficulty:  "Hard",
			Duration:    300,
			Objectives:  []string{"Reach 50% market share"},
			Restrictions: []string{
				"Aggressive competitors",
			},
			Modifiers: map[string]float64{"ProductionEfficiency": 0.95},
		},
		{
			Name:        "Innovation Race",
			Description: "Out-research every rival",
			Difficulty:  "Hard",
			Duration:    250,
			Objectives:  []string{"Complete 5 research projects"},
			Restrictions: []string{
				"Accelerated research expectations",
			},
			Modifiers: map[string]float64{"ResearchEfficiency": 1.2},
		},
		{
			Name:        "Global Expansion",
			Description: "Build a worldwide footprint",
			Difficulty:  "Expert",
			Duration:    400,
			Objectives:  []string{"Enter 3 international markets"},
			Restrictions: []string{
				"Higher operating overhead",
			},
			Modifiers: map[string]float64{"ProductionEfficiency": 0.9, "ResearchEfficiency": 1.1},
		},
		{
			Name:        "Crisis Management",
			Description: "Keep the company standing through turmoil",
			Difficulty:  "Expert",
			Duration:    350,
			Objectives:  []string{"Survive 3 crises"},
			Restrictions: []string{
				"Disrupted production",
			},
			Modifiers: map[string]float64{"ProductionEfficiency": 0.85},
		},
	}
}

// 单个企业的情景记录
type scenarioState struct {
	active     *entity.Scenario
	challenges []*entity.Challenge
	events     []*entity.SpecialEvent
	completed  []entity.Scenario
}

// 情景管理器
// 说明：维护每个企业的情景、随机挑战与特殊事件；
// 修正系数仅在情景/事件的生命周期内生效
type ScenarioManager struct {
	ctx entity.ITaskContext

	catalog []entity.Scenario
	data    map[int32]*scenarioState
}

// NewManager 创建情景管理器实例
// 功能：初始化情景管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的情景管理器实例
func NewManager(ctx entity.ITaskContext) *ScenarioManager {
	m := &ScenarioManager{
		ctx:     ctx,
		catalog: newScenarioCatalog(),
		data:    make(map[int32]*scenarioState),
	}
	return m
}

// state 获取企业的情景记录，不存在时惰性创建
func (m *ScenarioManager) state(id int32) *scenarioState {
	s, ok := m.data[id]
	if !ok {
		s = &scenarioState{}
		m.data[id] = s
	}
	return s
}

// Start 启动情景
// 功能：为企业启动指定情景
// 参数：id-企业ID，scenarioName-情景名
// 返回：是否启动成功
// 算法说明：
// 1. 同一时间只允许一个活跃情景
// 2. 奖励 = 100000×难度系数×时长/100，难度系数Easy 0.5/Medium 1/Hard 2/Expert 4
// 3. 修正系数立即施加到企业效率字段
func (m *ScenarioManager) Start(id int32, scenarioName string) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	s := m.state(id)
	if s.active != nil {
		return false
	}
	for _, template := range m.catalog {
		if template.Name != scenarioName {
			continue
		}
		scenario := template
		scenario.Remaining = scenario.Duration
		scenario.Reward = baseReward * difficultyMultipliers[scenario.Difficulty] * float64(scenario.Duration) / 100
		s.active = &scenario
		applyModifiers(b, scenario.Modifiers, false)
		log.Infof("business %d started scenario %s (reward %.2f)", id, scenarioName, scenario.Reward)
		return true
	}
	log.Debugf("unknown scenario %s", scenarioName)
	return false
}

// Available 获取全部情景名
func (m *ScenarioManager) Available() []string {
	res := make([]string, 0, len(m.catalog))
	for _, s := range m.catalog {
		res = append(res, s.Name)
	}
	return res
}

// Status 获取情景状态快照
func (m *ScenarioManager) Status(id int32) entity.ScenarioStatus {
	s := m.state(id)
	res := entity.ScenarioStatus{
		Challenges: make([]entity.Challenge, 0, len(s.challenges)),
		Events:     make([]entity.SpecialEvent, 0, len(s.events)),
		Completed:  append([]entity.Scenario(nil), s.completed...),
	}
	if s.active != nil {
		active := *s.active
		res.Active = &active
	}
	for _, c := range s.challenges {
		res.Challenges = append(res.Challenges, *c)
	}
	for _, e := range s.events {
		res.Events = append(res.Events, *e)
	}
	return res
}

// Drop 移除该企业的全部情景记录（收购用）
func (m *ScenarioManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的情景、挑战与特殊事件
// 参数：dt-时间步长
// 算法说明：
// 1. 活跃情景每步递减，到期时按目标达成与否结算：
//    达成发放奖励并标记完成，结束时还原修正系数
// 2. 情景进行中以0.1概率触发随机挑战（同类型不重复）：
//    Speed 资金100万/50步，Efficiency 生产效率2.0/100步，
//    Innovation 研究5项/75步，Survival 坚持100步/200步；奖励=目标×0.1
// 3. 情景进行中以0.05概率触发特殊事件，事件生效期间施加修正系数，
//    到期还原：Economic Boom 30步，Tech Revolution 25步，
//    Social Movement 20步，Environmental Crisis 35步
func (m *ScenarioManager) Update(dt float64) {
	rng := m.ctx.Rand()
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 情景推进
		if s.active != nil {
			s.active.Remaining--
			if s.active.Remaining <= 0 {
				if m.objectiveMet(b, s.active.Name) {
					s.active.Completed = true
					b.AddCapital(s.active.Reward)
					log.Infof("business %d completed scenario %s, reward %.2f", id, s.active.Name, s.active.Reward)
				} else {
					log.Infof("business %d failed scenario %s", id, s.active.Name)
				}
				applyModifiers(b, s.active.Modifiers, true)
				s.completed = append(s.completed, *s.active)
				s.active = nil
			}
		}

		// 挑战推进
		activeChallenges := s.challenges[:0]
		for _, c := range s.challenges {
			c.Remaining--
			switch c.Type {
			case "Speed":
				c.Current = b.Capital()
			case "Efficiency":
				c.Current = b.ProductionEfficiency()
			case "Innovation":
				c.Current = float64(b.ResearchCount())
			case "Survival":
				c.Current++
			}
			if c.Current >= c.Target {
				c.Completed = true
				b.AddCapital(c.Target * 0.1)
				log.Infof("business %d completed challenge %s", id, c.Name)
				continue
			}
			if c.Remaining > 0 {
				activeChallenges = append(activeChallenges, c)
			}
		}
		s.challenges = activeChallenges

		// 事件推进
		activeEvents := s.events[:0]
		for _, e := range s.events {
			e.Remaining--
			if e.Remaining <= 0 {
				e.Active = false
				applyModifiers(b, e.Effects, true)
				log.Debugf("special event %s ended for business %d", e.Name, id)
			} else {
				activeEvents = append(activeEvents, e)
			}
		}
		s.events = activeEvents

		// 新挑战与新事件仅在情景进行中触发
		if s.active == nil {
			continue
		}
		if rng.PTrue(challengeChance) {
			m.spawnChallenge(id, s)
		}
		if rng.PTrue(specialEventChance) {
			m.spawnSpecialEvent(id, b, s)
		}
	}
}

// objectiveMet 判定情景目标是否达成
func (m *ScenarioManager) objectiveMet(b entity.IBusiness, name string) bool {
	switch name {
	case "Startup Challenge":
		return b.Capital() >= 1000000
	case "Market Domination":
		return b.MarketShare() >= 0.5
	case "Innovation Race":
		return b.ResearchCount() >= 5
	case "Global Expansion":
		return m.ctx.InternationalManager().MarketCount(b.ID()) >= 3
	case "Crisis Management":
		return m.ctx.CrisisManager().ResolvedCount(b.ID()) >= 3
	}
	return false
}

// spawnChallenge 触发随机挑战
// 说明：同类型挑战同时只存在一个
func (m *ScenarioManager) spawnChallenge(id int32, s *scenarioState) {
	templates := []entity.Challenge{
		{Name: "Speed Run", Description: "Race to your first million", Type: "Speed", Target: 1000000, Duration: 50},
		{Name: "Efficiency Drive", Description: "Double production efficiency", Type: "Efficiency", Target: 2.0, Duration: 100},
		{Name: "Innovation Sprint", Description: "Complete five research projects", Type: "Innovation", Target: 5, Duration: 75},
		{Name: "Survival Test", Description: "Stay afloat for a hundred steps", Type: "Survival", Target: 100, Duration: 200},
	}
	template := templates[m.ctx.Rand().IntRange(0, int32(len(templates)))]
	for _, c := range s.challenges {
		if c.Type == template.Type {
			return
		}
	}
	template.Remaining = template.Duration
	s.challenges = append(s.challenges, &template)
	log.Infof("business %d received challenge %s", id, template.Name)
}

// spawnSpecialEvent 触发特殊事件
// 说明：同名事件同时只存在一个，效果在触发时施加
func (m *ScenarioManager) spawnSpecialEvent(id int32, b entity.IBusiness, s *scenarioState) {
	templates := []entity.SpecialEvent{
		{Name: "Economic Boom", Description: "Markets surge across the board", Type: "Economic",
			Duration: 30, Effects: map[string]float64{"ProductionEfficiency": 1.2}},
		{Name: "Tech Revolution", Description: "Breakthroughs accelerate research", Type: "Technological",
			Duration: 25, Effects: map[string]float64{"ResearchEfficiency": 1.5}},
		{Name: "Social Movement", Description: "Public scrutiny slows operations", Type: "Social",
			Duration: 20, Effects: map[string]float64{"ProductionEfficiency": 0.9}},
		{Name: "Environmental Crisis", Description: "Environmental fallout disrupts supply", Type: "Environmental",
			Duration: 35, Effects: map[string]float64{"ProductionEfficiency": 0.8}},
	}
	template := templates[m.ctx.Rand().IntRange(0, int32(len(templates)))]
	for _, e := range s.events {
		if e.Name == template.Name {
			return
		}
	}
	template.Remaining = template.Duration
	template.Active = true
	applyModifiers(b, template.Effects, false)
	s.events = append(s.events, &template)
	log.Infof("business %d affected by special event %s", id, template.Name)
}

// applyModifiers 施加或还原修正系数
// 参数：b-企业，modifiers-字段->乘数，invert-true时按倒数还原
// 说明：支持的字段为ProductionEfficiency与ResearchEfficiency
func applyModifiers(b entity.IBusiness, modifiers map[string]float64, invert bool) {
	for field, v := range modifiers {
		if v == 0 {
			continue
		}
		factor := v
		if invert {
			factor = 1 / v
		}
		switch field {
		case "ProductionEfficiency":
			b.ScaleProductionEfficiency(factor)
		case "ResearchEfficiency":
			b.ScaleResearchEfficiency(factor)
		default:
			log.Warnf("unknown scenario modifier %s", field)
		}
	}
}
