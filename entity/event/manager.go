package event

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	// 每步触发宏观随机事件的概率
	eventChance = 0.1
	// 合规不达标的罚款
	complianceFine = 10000
	// 合规不达标的声誉损失
	complianceReputationLoss = 5
	// 供应链中断时在途订单的额外延迟（步）
	supplyChainDelay = 2
)

// 事件管理器
// 说明：负责合规检查与宏观随机事件，两个阶段分别在生产销售前后执行
type EventManager struct {
	ctx entity.ITaskContext
}

// NewManager 创建事件管理器实例
// 功能：初始化事件管理器
// 参数：ctx-任务上下文
// 返回：新创建的事件管理器实例
func NewManager(ctx entity.ITaskContext) *EventManager {
	m := &EventManager{ctx: ctx}
	return m
}

// UpdateCompliance 合规检查阶段
// 功能：检查所有企业的合规分并处罚不达标者
// 算法说明：合规分不高于50时罚款10000并扣除5点声誉
func (m *EventManager) UpdateCompliance() {
	for _, b := range m.ctx.BusinessManager().All() {
		if b.ComplianceScore() <= 50 {
			b.AddCapital(-complianceFine)
			b.AddExpense(complianceFine)
			b.AddReputation(-complianceReputationLoss)
			log.Infof("business %d fined %.0f for compliance violation", b.ID(), float64(complianceFine))
		}
	}
}

// UpdateEvents 随机事件阶段
// 功能：以0.1的概率触发一次宏观随机事件，作用于全部企业
// 算法说明：事件类型按均匀掷签：
//   - <0.15 经济繁荣：资金+20000
//   - <0.3 经济危机：资金-15000
//   - <0.45 罢工：全员士气-0.3
//   - <0.6 技术突破：全部产品成本×0.8
//   - <0.75 政策利好：资金+10000
//   - <0.85 供应链中断：全部在途订单延后2步
//   - 其他 研究突破：全部在研项目进度+0.2
func (m *EventManager) UpdateEvents() {
	rng := m.ctx.Rand()
	if !rng.PTrue(eventChance) {
		return
	}
	roll := rng.Float64()
	businesses := m.ctx.BusinessManager().All()
	switch {
	case roll < 0.15:
		log.Info("economic boom lifts all businesses")
		for _, b := range businesses {
			b.AddCapital(20000)
			b.AddRevenue(20000)
		}
	case roll < 0.3:
		log.Info("economic crisis hits all businesses")
		for _, b := range businesses {
			b.AddCapital(-15000)
			b.AddExpense(15000)
		}
	case roll < 0.45:
		log.Info("industry-wide strike lowers morale")
		for _, b := range businesses {
			for _, e := range b.Employees() {
				e.Morale -= 0.3
				if e.Morale < 0 {
					e.Morale = 0
				}
			}
		}
	case roll < 0.6:
		log.Info("technology breakthrough cuts production costs")
		for _, b := range businesses {
			for _, p := range b.Products() {
				p.Cost *= 0.8
			}
		}
	case roll < 0.75:
		log.Info("favorable policy change benefits all businesses")
		for _, b := range businesses {
			b.AddCapital(10000)
			b.AddRevenue(10000)
		}
	case roll < 0.85:
		log.Info("supply chain disruption delays deliveries")
		m.ctx.LogisticsManager().DelayAll(supplyChainDelay)
	default:
		log.Info("research breakthrough accelerates all projects")
		for _, b := range businesses {
			m.ctx.ResearchManager().Boost(b.ID(), 0.2)
		}
	}
}
