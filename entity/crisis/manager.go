package crisis

import (
	"strings"

	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 基础危机抵抗力
	baseResistance = 0.3
	// 每步生成危机的基础概率
	baseSpawnChance = 0.05
	// 响应提升的抵抗力上限
	responseResistanceCap = 0.8
	// 预防性投入提升的抵抗力上限
	preventionResistanceCap = 0.9
)

// 单个企业的危机记录
type crisisState struct {
	crises     []*entity.Crisis
	responses  []*entity.CrisisResponse
	resistance float64
	resolved   int32
}

// 危机管理器
// 说明：维护每个企业的活跃危机与响应行动，冲击按时长均摊到每一步
type CrisisManager struct {
	ctx entity.ITaskContext

	data map[int32]*crisisState
}

// NewManager 创建危机管理器实例
// 功能：初始化危机管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的危机管理器实例
func NewManager(ctx entity.ITaskContext) *CrisisManager {
	m := &CrisisManager{
		ctx:  ctx,
		data: make(map[int32]*crisisState),
	}
	return m
}

// state 获取企业的危机记录，不存在时惰性创建
func (m *CrisisManager) state(id int32) *crisisState {
	s, ok := m.data[id]
	if !ok {
		s = &crisisState{resistance: baseResistance}
		m.data[id] = s
	}
	return s
}

// Spawn 危机生成
// 功能：以 0.05×(1-抵抗力) 的概率为该企业生成一次新危机
// 参数：id-企业ID
// 算法说明：
// 1. 概率判定未命中时直接返回
// 2. 危机类型按均匀四分抽取：
//   - <0.25 产品召回：严重度0.3-0.9，时长10-30，财务冲击5万-20万，
//     声誉冲击0.2-0.6，销售抑制0.3
//   - <0.5 公关灾难：0.2-0.8，5-20，2万-10万，0.1-0.5，品牌损伤0.4
//   - <0.75 法律纠纷：0.4-1.0，15-40，10万-50万，0.1-0.3，法务费用0.5
//   - 其他 自然灾害：0.5-1.0，20-50，5万-30万，0.05-0.2，生产中断0.6
func (m *CrisisManager) Spawn(id int32) {
	s := m.state(id)
	rng := m.ctx.Rand()
	if !rng.PTrue(baseSpawnChance * (1 - s.resistance)) {
		return
	}
	var c *entity.Crisis
	roll := rng.Float64()
	switch {
	case roll < 0.25:
		c = &entity.Crisis{
			Type:             entity.CrisisProductRecall,
			Description:      "Defective batch forces a product recall",
			Severity:         rng.Range(0.3, 0.9),
			Duration:         rng.IntRange(10, 31),
			FinancialImpact:  rng.Range(50000, 200000),
			ReputationImpact: rng.Range(0.2, 0.6),
			Effects:          map[string]float64{"SalesReduction": 0.3},
		}
	case roll < 0.5:
		c = &entity.Crisis{
			Type:             entity.CrisisPRDisaster,
			Description:      "Public relations disaster spreads in the media",
			Severity:         rng.Range(0.2, 0.8),
			Duration:         rng.IntRange(5, 21),
			FinancialImpact:  rng.Range(20000, 100000),
			ReputationImpact: rng.Range(0.1, 0.5),
			Effects:          map[string]float64{"BrandDamage": 0.4},
		}
	case roll < 0.75:
		c = &entity.Crisis{
			Type:             entity.CrisisLegalIssue,
			Description:      "Lawsuit filed against the company",
			Severity:         rng.Range(0.4, 1.0),
			Duration:         rng.IntRange(15, 41),
			FinancialImpact:  rng.Range(100000, 500000),
			ReputationImpact: rng.Range(0.1, 0.3),
			Effects:          map[string]float64{"LegalCosts": 0.5},
		}
	default:
		c = &entity.Crisis{
			Type:             entity.CrisisNaturalDisaster,
			Description:      "Natural disaster disrupts operations",
			Severity:         rng.Range(0.5, 1.0),
			Duration:         rng.IntRange(20, 51),
			FinancialImpact:  rng.Range(50000, 300000),
			ReputationImpact: rng.Range(0.05, 0.2),
			Effects:          map[string]float64{"ProductionDisruption": 0.6},
		}
	}
	c.Remaining = c.Duration
	s.crises = append(s.crises, c)
	log.Infof("business %d hit by %s crisis for %d steps (financial impact %.2f)", id, c.Type, c.Duration, c.FinancialImpact)
}

// Inflict 直接施加一次危机
// 功能：跳过概率判定，将给定危机登记为该企业的活跃危机
// 参数：id-企业ID，c-危机（Remaining按Duration补齐）
// 说明：脚本化危机的注入入口，冲击结算与Spawn生成的危机完全一致
func (m *CrisisManager) Inflict(id int32, c *entity.Crisis) {
	c.Remaining = c.Duration
	s := m.state(id)
	s.crises = append(s.crises, c)
	log.Infof("business %d hit by scripted %s crisis for %d steps", id, c.Type, c.Duration)
}

// Respond 危机响应
// 功能：投入预算执行一项响应行动
// 参数：id-企业ID，actionType-行动类型，budget-预算
// 返回：是否启动响应
// 算法说明：
// 1. 效果 = 0.5×(预算/行动基准预算)，基准预算：道歉1万、赔偿5万、
//    调查3万、法务10万、品牌重塑20万
// 2. 行动时长：道歉3、赔偿10、调查15、法务20、品牌重塑30
// 3. 预算立即扣除，完成时兑现效果并提升抵抗力
func (m *CrisisManager) Respond(id int32, actionType string, budget float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if budget <= 0 || b.Capital() < budget {
		return false
	}
	var divisor float64
	var duration int32
	switch {
	case strings.EqualFold(actionType, entity.ResponseApology):
		actionType, divisor, duration = entity.ResponseApology, 10000, 3
	case strings.EqualFold(actionType, entity.ResponseCompensation):
		actionType, divisor, duration = entity.ResponseCompensation, 50000, 10
	case strings.EqualFold(actionType, entity.ResponseInvestigation):
		actionType, divisor, duration = entity.ResponseInvestigation, 30000, 15
	case strings.EqualFold(actionType, entity.ResponseLegalDefense):
		actionType, divisor, duration = entity.ResponseLegalDefense, 100000, 20
	case strings.EqualFold(actionType, entity.ResponseRebranding):
		actionType, divisor, duration = entity.ResponseRebranding, 200000, 30
	default:
		log.Debugf("unknown crisis response action %s", actionType)
		return false
	}
	s := m.state(id)
	s.responses = append(s.responses, &entity.CrisisResponse{
		Action:        actionType,
		Cost:          budget,
		Effectiveness: 0.5 * (budget / divisor),
		Duration:      duration,
		Remaining:     duration,
	})
	b.AddCapital(-budget)
	b.AddExpense(budget)
	return true
}

// ImprovePrevention 预防性投入
// 功能：投入资金提升危机抵抗力
// 参数：id-企业ID，investment-投入金额
// 返回：是否投入成功
// 算法说明：抵抗力 += 投入/100000，上限0.9
func (m *CrisisManager) ImprovePrevention(id int32, investment float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if investment <= 0 || b.Capital() < investment {
		return false
	}
	s := m.state(id)
	s.resistance += investment / 100000
	if s.resistance > preventionResistanceCap {
		s.resistance = preventionResistanceCap
	}
	b.AddCapital(-investment)
	b.AddExpense(investment)
	return true
}

// Resistance 获取危机抵抗力
func (m *CrisisManager) Resistance(id int32) float64 {
	return m.state(id).resistance
}

// ResolvedCount 获取已度过的危机数
func (m *CrisisManager) ResolvedCount(id int32) int32 {
	return m.state(id).resolved
}

// DemandMultiplier 获取活跃危机的销售抑制乘数
// 说明：全部活跃危机SalesReduction效果(1-v/时长)的叠乘，无危机时为1.0
func (m *CrisisManager) DemandMultiplier(id int32) float64 {
	s := m.state(id)
	multiplier := 1.0
	for _, c := range s.crises {
		if v, ok := c.Effects["SalesReduction"]; ok {
			multiplier *= 1 - v/float64(c.Duration)
		}
	}
	return multiplier
}

// Status 获取危机状态快照
func (m *CrisisManager) Status(id int32) entity.CrisisStatus {
	s := m.state(id)
	res := entity.CrisisStatus{
		Crises:     make([]entity.Crisis, 0, len(s.crises)),
		Responses:  make([]entity.CrisisResponse, 0, len(s.responses)),
		Resistance: s.resistance,
		Resolved:   s.resolved,
	}
	for _, c := range s.crises {
		res.Crises = append(res.Crises, *c)
	}
	for _, r := range s.responses {
		res.Responses = append(res.Responses, *r)
	}
	return res
}

// Drop 移除该企业的全部危机记录（收购用）
func (m *CrisisManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的危机冲击与响应结算
// 参数：dt-时间步长
// 算法说明：
// 1. 活跃危机每步：
//   - 资金扣除 财务冲击/时长，客户满意度扣除 声誉冲击/时长
//   - 品牌损伤：品牌价值扣除 v×1000
//   - 生产中断：生产效率 ×= (1-v/时长)
//   - 法务费用：资金扣除 v×1000
//   - 剩余步数归零后危机度过，计入已度过数
//
// 2. 响应行动每步推进，完成时按行动类型兑现效果：
//   - 道歉：满意度 += 效果×0.2
//   - 赔偿：满意度 += 效果×0.3
//   - 调查：品牌总分 += 效果×0.1
//   - 法务：品牌总分 += 效果×0.05
//   - 品牌重塑：品牌总分 += 效果×0.2，满意度 += 效果×0.1
//   - 完成后抵抗力 += 效果×0.1，上限0.8
func (m *CrisisManager) Update(dt float64) {
	marketing := m.ctx.MarketingManager()
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 危机冲击
		remaining := s.crises[:0]
		for _, c := range s.crises {
			c.Remaining--
			duration := float64(c.Duration)
			b.AddCapital(-c.FinancialImpact / duration)
			b.AddExpense(c.FinancialImpact / duration)
			marketing.ApplySatisfactionDelta(id, -c.ReputationImpact/duration)
			if v, ok := c.Effects["BrandDamage"]; ok {
				b.AddBrandValue(-v * 1000)
			}
			if v, ok := c.Effects["ProductionDisruption"]; ok {
				b.ScaleProductionEfficiency(1 - v/duration)
			}
			if v, ok := c.Effects["LegalCosts"]; ok {
				b.AddCapital(-v * 1000)
				b.AddExpense(v * 1000)
			}
			if c.Remaining <= 0 {
				s.resolved++
				log.Infof("business %d survived %s crisis", id, c.Type)
			} else {
				remaining = append(remaining, c)
			}
		}
		s.crises = remaining

		// 响应结算
		active := s.responses[:0]
		for _, r := range s.responses {
			r.Remaining--
			if r.Remaining > 0 {
				active = append(active, r)
				continue
			}
			eff := r.Effectiveness
			switch r.Action {
			case entity.ResponseApology:
				marketing.ApplySatisfactionDelta(id, eff*0.2)
			case entity.ResponseCompensation:
				marketing.ApplySatisfactionDelta(id, eff*0.3)
			case entity.ResponseInvestigation:
				marketing.ApplyOverallDelta(id, eff*0.1)
			case entity.ResponseLegalDefense:
				marketing.ApplyOverallDelta(id, eff*0.05)
			case entity.ResponseRebranding:
				marketing.ApplyOverallDelta(id, eff*0.2)
				marketing.ApplySatisfactionDelta(id, eff*0.1)
			}
			s.resistance += eff * 0.1
			if s.resistance > responseResistanceCap {
				s.resistance = responseResistanceCap
			}
		}
		s.responses = active

		// 新危机生成
		m.Spawn(id)
	}
}
