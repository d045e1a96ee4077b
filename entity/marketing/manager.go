package marketing

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// 营销渠道参数，基准预算决定效果与触达的折算
type channelParams struct {
	effectivenessDivisor float64
	reachDivisor         float64
}

var channels = map[string]channelParams{
	"tv":         {effectivenessDivisor: 100000, reachDivisor: 50000},
	"digital":    {effectivenessDivisor: 50000, reachDivisor: 10000},
	"print":      {effectivenessDivisor: 30000, reachDivisor: 15000},
	"social":     {effectivenessDivisor: 20000, reachDivisor: 5000},
	"influencer": {effectivenessDivisor: 40000, reachDivisor: 20000},
}

// 单个企业的营销记录
type marketingState struct {
	campaigns  []*entity.Campaign
	reputation *entity.BrandReputation
	segments   []*entity.CustomerSegment
	studies    []*entity.MarketStudy
}

// 营销管理器
// 说明：维护每个企业的营销活动、品牌声誉、客群与市场调研
type MarketingManager struct {
	ctx entity.ITaskContext

	data map[int32]*marketingState
}

// NewManager 创建营销管理器实例
// 功能：初始化营销管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的营销管理器实例
func NewManager(ctx entity.ITaskContext) *MarketingManager {
	m := &MarketingManager{
		ctx:  ctx,
		data: make(map[int32]*marketingState),
	}
	return m
}

// state 获取企业的营销记录，不存在时惰性创建
// 说明：首次访问时初始化品牌声誉（各项50分）与默认客群
func (m *MarketingManager) state(id int32) *marketingState {
	s, ok := m.data[id]
	if !ok {
		s = &marketingState{
			reputation: entity.NewBrandReputation(),
			segments: []*entity.CustomerSegment{
				{Name: "Young Professionals", Size: 1000000, Penetration: 0.1, Satisfaction: 50, Loyalty: 0.5, PriceSensitivity: 0.7},
				{Name: "Families", Size: 2000000, Penetration: 0.1, Satisfaction: 50, Loyalty: 0.5, PriceSensitivity: 0.5},
				{Name: "Seniors", Size: 800000, Penetration: 0.1, Satisfaction: 50, Loyalty: 0.5, PriceSensitivity: 0.3},
				{Name: "Students", Size: 500000, Penetration: 0.1, Satisfaction: 50, Loyalty: 0.5, PriceSensitivity: 0.9},
			},
		}
		m.data[id] = s
	}
	return s
}

// LaunchCampaign 发起营销活动
// 功能：在指定渠道投放营销活动
// 参数：id-企业ID，name-活动名，campaignType-渠道，budget-预算，
// durationSteps-时长，audience-目标客群
// 返回：是否投放成功
// 算法说明：
// 1. 效果 = 0.5×(预算/渠道基准预算)，基准预算：
//    tv 10万、digital 5万、print 3万、social 2万、influencer 4万
// 2. 触达 = 1000×(预算/渠道触达基准)，基准：
//    tv 5万、digital 1万、print 1.5万、social 5千、influencer 2万
// 3. 预算立即扣除，活动期间每步兑现效果
func (m *MarketingManager) LaunchCampaign(id int32, name string, campaignType string, budget float64, durationSteps int32, audience string) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	params, ok := channels[campaignType]
	if !ok {
		log.Debugf("unknown campaign type %s", campaignType)
		return false
	}
	if budget <= 0 || durationSteps <= 0 || b.Capital() < budget {
		return false
	}
	s := m.state(id)
	s.campaigns = append(s.campaigns, &entity.Campaign{
		Name:          name,
		Type:          campaignType,
		Budget:        budget,
		Duration:      durationSteps,
		Remaining:     durationSteps,
		Effectiveness: 0.5 * (budget / params.effectivenessDivisor),
		Reach:         1000 * (budget / params.reachDivisor),
		Audience:      audience,
	})
	b.AddCapital(-budget)
	b.AddExpense(budget)
	log.Infof("business %d launched %s campaign %s with budget %.2f", id, campaignType, name, budget)
	return true
}

// ConductResearch 发起市场调研
// 功能：启动一项市场调研，完成时填充调研结果
// 参数：id-企业ID，studyType-调研类型，cost-费用，durationSteps-时长
// 返回：是否启动成功
func (m *MarketingManager) ConductResearch(id int32, studyType string, cost float64, durationSteps int32) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	switch studyType {
	case "Customer Survey", "Competitor Analysis", "Market Trends":
	default:
		log.Debugf("unknown market study type %s", studyType)
		return false
	}
	if cost <= 0 || durationSteps <= 0 || b.Capital() < cost {
		return false
	}
	s := m.state(id)
	s.studies = append(s.studies, &entity.MarketStudy{
		Type:      studyType,
		Cost:      cost,
		Duration:  durationSteps,
		Remaining: durationSteps,
	})
	b.AddCapital(-cost)
	b.AddExpense(cost)
	return true
}

// ImproveCustomerService 客服投入
// 算法说明：客服子分 += 投入/10000，限定在[0, 100]
func (m *MarketingManager) ImproveCustomerService(id int32, investment float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if investment <= 0 || b.Capital() < investment {
		return false
	}
	s := m.state(id)
	s.reputation.CustomerService = clampScore(s.reputation.CustomerService + investment/10000)
	s.reputation.UpdateOverall()
	b.AddCapital(-investment)
	b.AddExpense(investment)
	return true
}

// InvestSocialResponsibility 社会责任投入
// 算法说明：社会责任子分 += 投入/50000，环境影响子分 += 投入/75000
func (m *MarketingManager) InvestSocialResponsibility(id int32, investment float64) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if investment <= 0 || b.Capital() < investment {
		return false
	}
	s := m.state(id)
	s.reputation.SocialResponsibility = clampScore(s.reputation.SocialResponsibility + investment/50000)
	s.reputation.EnvironmentalImpact = clampScore(s.reputation.EnvironmentalImpact + investment/75000)
	s.reputation.UpdateOverall()
	b.AddCapital(-investment)
	b.AddExpense(investment)
	return true
}

// ApplySatisfactionDelta 客户满意度子分变化
// 说明：危机均摊声誉冲击的入口，总分重算为六项均值
func (m *MarketingManager) ApplySatisfactionDelta(id int32, delta float64) {
	s := m.state(id)
	s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction + delta)
	s.reputation.UpdateOverall()
}

// ApplyOverallDelta 品牌总分直接变化
// 说明：危机响应完成效果的入口，下次总分重算前生效
func (m *MarketingManager) ApplyOverallDelta(id int32, delta float64) {
	s := m.state(id)
	s.reputation.Overall = clampScore(s.reputation.Overall + delta)
}

// BrandMultiplier 获取品牌乘数
// 算法说明：0.5 + 品牌总分/100×0.5，取值[0.5, 1.0]
func (m *MarketingManager) BrandMultiplier(id int32) float64 {
	s := m.state(id)
	return 0.5 + s.reputation.Overall/100*0.5
}

// Status 获取营销状态快照
func (m *MarketingManager) Status(id int32) entity.MarketingStatus {
	s := m.state(id)
	res := entity.MarketingStatus{
		Campaigns:  make([]entity.Campaign, 0, len(s.campaigns)),
		Reputation: *s.reputation,
		Segments:   make([]entity.CustomerSegment, 0, len(s.segments)),
		Studies:    make([]entity.MarketStudy, 0, len(s.studies)),
	}
	for _, c := range s.campaigns {
		res.Campaigns = append(res.Campaigns, *c)
	}
	for _, seg := range s.segments {
		res.Segments = append(res.Segments, *seg)
	}
	for _, study := range s.studies {
		snapshot := *study
		if study.Results != nil {
			snapshot.Results = make(map[string]float64, len(study.Results))
			for k, v := range study.Results {
				snapshot.Results[k] = v
			}
		}
		res.Studies = append(res.Studies, snapshot)
	}
	return res
}

// Drop 移除该企业的全部营销记录（收购用）
func (m *MarketingManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的营销活动效果、声誉衰减与调研完成
// 参数：dt-时间步长
// 算法说明：
// 1. 活跃活动每步按渠道兑现声誉效果：
//   - tv：满意度+效果×0.1，产品质量+效果×0.05
//   - digital：满意度+效果×0.15，创新+效果×0.1
//   - social：满意度+效果×0.2，社会责任+效果×0.1
//   - influencer：满意度+效果×0.25，产品质量+效果×0.1
//   - 目标客群（或General全覆盖）：满意度+效果×0.1，忠诚度+效果×0.05
//
// 2. 自然衰减：满意度-0.05
// 3. 总分重算为六项均值
// 4. 调研到期时按类型填充调研结果
func (m *MarketingManager) Update(dt float64) {
	rng := m.ctx.Rand()
	for _, b := range m.ctx.BusinessManager().All() {
		s := m.state(b.ID())

		// 活动效果
		active := s.campaigns[:0]
		for _, c := range s.campaigns {
			c.Remaining--
			eff := c.Effectiveness
			switch c.Type {
			case "tv":
				s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction + eff*0.1)
				s.reputation.ProductQuality = clampScore(s.reputation.ProductQuality + eff*0.05)
			case "digital":
				s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction + eff*0.15)
				s.reputation.Innovation = clampScore(s.reputation.Innovation + eff*0.1)
			case "social":
				s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction + eff*0.2)
				s.reputation.SocialResponsibility = clampScore(s.reputation.SocialResponsibility + eff*0.1)
			case "influencer":
				s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction + eff*0.25)
				s.reputation.ProductQuality = clampScore(s.reputation.ProductQuality + eff*0.1)
			}
			for _, seg := range s.segments {
				if c.Audience != "General" && c.Audience != seg.Name {
					continue
				}
				seg.Satisfaction = clampScore(seg.Satisfaction + eff*0.1)
				seg.Loyalty += eff * 0.05
				if seg.Loyalty > 1 {
					seg.Loyalty = 1
				}
			}
			if c.Remaining > 0 {
				active = append(active, c)
			}
		}
		s.campaigns = active

		// 自然衰减与总分重算，总分恒为六项子分的均值
		s.reputation.CustomerSatisfaction = clampScore(s.reputation.CustomerSatisfaction - 0.05)
		s.reputation.UpdateOverall()

		// 调研完成
		for _, study := range s.studies {
			if study.Remaining <= 0 {
				continue
			}
			study.Remaining--
			if study.Remaining > 0 {
				continue
			}
			switch study.Type {
			case "Customer Survey":
				study.Results = map[string]float64{
					"Satisfaction":      rng.Range(40, 80),
					"PriceSensitivity":  rng.Range(0.3, 0.8),
					"FeaturePreference": rng.Range(0.2, 0.9),
				}
			case "Competitor Analysis":
				study.Results = map[string]float64{
					"CompetitorStrength":   rng.Range(30, 90),
					"MarketShare":          rng.Range(0.1, 0.4),
					"PriceCompetitiveness": rng.Range(0.5, 1.2),
				}
			case "Market Trends":
				study.Results = map[string]float64{
					"GrowthRate":         rng.Range(-0.1, 0.3),
					"DemandTrend":        rng.Range(0.8, 1.5),
					"TechnologyAdoption": rng.Range(0.1, 0.8),
				}
			}
			log.Debugf("business %d completed %s study", b.ID(), study.Type)
		}
	}
}

// clampScore 将声誉分限定在[0, 100]
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
