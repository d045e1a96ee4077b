package research

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 专利有效期（步）
	patentDuration = 100
	// 每步专利许可收入占专利价值的比例
	licensingRate = 0.01
)

// 单个企业的研发记录
type researchState struct {
	projects    []*entity.ResearchProject // 在研项目（目录模板的私有副本）
	patents     []*entity.Patent
	researchers []*entity.Researcher
}

// 研发管理器
// 说明：维护每个企业的在研项目、专利与研究员，负责进度推进与成败判定
type ResearchManager struct {
	ctx entity.ITaskContext

	catalog []entity.ResearchProject // 研究项目目录模板
	data    map[int32]*researchState
}

// NewManager 创建研发管理器实例
// 功能：初始化研发管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的研发管理器实例
func NewManager(ctx entity.ITaskContext) *ResearchManager {
	m := &ResearchManager{
		ctx:  ctx,
		data: make(map[int32]*researchState),
	}
	return m
}

// Init 初始化研究项目目录
func (m *ResearchManager) Init(catalog []entity.ResearchProject) {
	m.catalog = catalog
}

// state 获取企业的研发记录，不存在时惰性创建
func (m *ResearchManager) state(id int32) *researchState {
	s, ok := m.data[id]
	if !ok {
		s = &researchState{}
		m.data[id] = s
	}
	return s
}

// StartProject 启动研究项目
// 功能：按目录模板为企业启动一个研究项目
// 参数：id-企业ID，projectName-项目名
// 返回：是否启动成功
// 算法说明：
// 1. 项目须在目录中，已完成或已在研时拒绝
// 2. 前置项目须全部完成，费用不足时拒绝
// 3. 费用立即扣除，进度从0开始跟踪
func (m *ResearchManager) StartProject(id int32, projectName string) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	var template *entity.ResearchProject
	for i := range m.catalog {
		if m.catalog[i].Name == projectName {
			template = &m.catalog[i]
			break
		}
	}
	if template == nil {
		log.Debugf("unknown research project %s", projectName)
		return false
	}
	if b.HasResearch(projectName) {
		return false
	}
	s := m.state(id)
	for _, p := range s.projects {
		if p.Name == projectName {
			return false
		}
	}
	for _, prereq := range template.Prerequisites {
		if !b.HasResearch(prereq) {
			log.Debugf("business %d missing prerequisite %s for %s", id, prereq, projectName)
			return false
		}
	}
	if b.Capital() < template.Cost {
		return false
	}
	project := *template
	project.Remaining = project.Duration
	project.Progress = 0
	s.projects = append(s.projects, &project)
	b.AddCapital(-template.Cost)
	b.AddExpense(template.Cost)
	log.Infof("business %d started research project %s", id, projectName)
	return true
}

// HireResearcher 聘用研究员
// 参数：id-企业ID，name-姓名，specialization-专业方向，wage-每步工资，
// skill-技能，efficiency-研究效率
// 返回：是否聘用成功
func (m *ResearchManager) HireResearcher(id int32, name string, specialization string, wage float64, skill float64, efficiency float64) bool {
	_, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	s := m.state(id)
	s.researchers = append(s.researchers, &entity.Researcher{
		Name:           name,
		Specialization: specialization,
		Wage:           wage,
		Skill:          skill,
		Efficiency:     efficiency,
	})
	return true
}

// Boost 全部在研项目进度提升
// 参数：id-企业ID，delta-进度增量
// 说明：研究突破事件的入口
func (m *ResearchManager) Boost(id int32, delta float64) {
	s := m.state(id)
	for _, p := range s.projects {
		p.Progress += delta
	}
}

// AvailableProjects 获取企业当前可启动的项目
// 说明：已完成、在研或前置未满足的项目不在列
func (m *ResearchManager) AvailableProjects(id int32) []entity.ResearchProject {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return nil
	}
	s := m.state(id)
	active := make(map[string]bool, len(s.projects))
	for _, p := range s.projects {
		active[p.Name] = true
	}
	res := make([]entity.ResearchProject, 0, len(m.catalog))
	for _, template := range m.catalog {
		if b.HasResearch(template.Name) || active[template.Name] {
			continue
		}
		ok := true
		for _, prereq := range template.Prerequisites {
			if !b.HasResearch(prereq) {
				ok = false
				break
			}
		}
		if ok {
			res = append(res, template)
		}
	}
	return res
}

// PatentCount 获取企业持有的专利数
func (m *ResearchManager) PatentCount(id int32) int32 {
	return int32(len(m.state(id).patents))
}

// Status 获取研发状态快照
func (m *ResearchManager) Status(id int32) entity.ResearchStatus {
	s := m.state(id)
	res := entity.ResearchStatus{
		Projects:    make([]entity.ResearchProject, 0, len(s.projects)),
		Patents:     make([]entity.Patent, 0, len(s.patents)),
		Researchers: make([]entity.Researcher, 0, len(s.researchers)),
	}
	for _, p := range s.projects {
		res.Projects = append(res.Projects, *p)
	}
	for _, p := range s.patents {
		res.Patents = append(res.Patents, *p)
	}
	for _, r := range s.researchers {
		res.Researchers = append(res.Researchers, *r)
	}
	return res
}

// Drop 移除该企业的全部研发记录（收购用）
func (m *ResearchManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的研究进度、成败判定与专利收入
// 参数：dt-时间步长
// 算法说明：
// 1. 研究员工资每步扣除
// 2. 在研项目每步进度 += (1.0+Σ研究员加成)/项目时长 × 研究效率 × 声望创新加成，
//    研究员专业方向与项目类别匹配时加成×1.5
// 3. 进度达到1或剩余步数耗尽时一次性判定：
//    按项目成功率掷签，成功时兑现项目效果并记入已完成研究，失败即废弃不退款
// 4. 专利每步产生 价值×1% 的许可收入，有效期耗尽后失效
func (m *ResearchManager) Update(dt float64) {
	rng := m.ctx.Rand()
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 研究员工资
		wages := 0.0
		for _, r := range s.researchers {
			wages += r.Wage
		}
		if wages > 0 {
			b.AddCapital(-wages)
			b.AddExpense(wages)
		}

		// 进度推进与成败判定
		active := s.projects[:0]
		for _, p := range s.projects {
			bonus := 0.0
			for _, r := range s.researchers {
				bonus += r.Bonus(p.Category)
			}
			p.Progress += (1.0 + bonus) / float64(p.Duration) *
				b.ResearchEfficiency() * b.BonusMultiplier("Innovation")
			p.Remaining--
			if p.Progress < 1 && p.Remaining > 0 {
				active = append(active, p)
				continue
			}
			if rng.PTrue(p.SuccessChance) {
				m.applyEffects(b, s, p)
				b.CompleteResearch(p.Name)
				log.Infof("business %d completed research project %s", id, p.Name)
			} else {
				log.Infof("business %d research project %s failed", id, p.Name)
			}
		}
		s.projects = active

		// 专利许可收入
		validPatents := s.patents[:0]
		for _, patent := range s.patents {
			b.AddCapital(patent.LicensingRevenue)
			b.AddRevenue(patent.LicensingRevenue)
			patent.Remaining--
			if patent.Remaining > 0 {
				validPatents = append(validPatents, patent)
			} else {
				log.Debugf("business %d patent %s expired", id, patent.Name)
			}
		}
		s.patents = validPatents
	}
}

// applyEffects 兑现研究项目效果
// 算法说明：
// 1. 生产类效果（ProductionEfficiency/AIEfficiency）累加到生产效率
// 2. 流程与物流效率分别累加到对应字段
// 3. 品质类效果（ProductQuality/MaterialQuality）提升全部产品品质，限定在[0.5, 2.0]
// 4. 特性类效果（ProductFeatures/DesignInnovation）在品质提升之外为产品登记新特性
// 5. Sustainability折算为合规分提升（×10）
// 6. PatentValue生成一项专利，有效期100步，每步产生价值1%的许可收入
func (m *ResearchManager) applyEffects(b entity.IBusiness, s *researchState, p *entity.ResearchProject) {
	for effect, v := range p.Effects {
		switch effect {
		case "ProductionEfficiency", "AIEfficiency":
			b.AddProductionEfficiency(v)
		case "ProcessEfficiency":
			b.AddProcessEfficiency(v)
		case "LogisticsEfficiency":
			b.AddLogisticsEfficiency(v)
		case "ProductQuality", "MaterialQuality", "ProductFeatures", "DesignInnovation":
			for _, product := range b.Products() {
				product.Quality += v
				if product.Quality > 2.0 {
					product.Quality = 2.0
				} else if product.Quality < 0.5 {
					product.Quality = 0.5
				}
				if effect == "ProductFeatures" || effect == "DesignInnovation" {
					product.Features = append(product.Features, p.Name)
				}
			}
		case "Sustainability":
			b.AddCompliance(v * 10)
		case "PatentValue":
			s.patents = append(s.patents, &entity.Patent{
				Name:             p.Name,
				Description:      p.Description,
				Value:            v,
				Duration:         patentDuration,
				Remaining:        patentDuration,
				LicensingRevenue: v * licensingRate,
			})
		default:
			log.Warnf("unknown research effect %s", effect)
		}
	}
}
