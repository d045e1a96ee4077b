package task

import (
	"flag"
	"time"
)

const (
	SelfName = "venture" // 本程序在模拟任务集群中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段，每步执行一次
// 功能：在每个模拟步骤开始时进行准备工作
// 算法说明：
// 1. 更新时钟：增加内部步数并计算当前模拟天数
// 2. 心跳日志：定期输出系统状态信息
// 3. 企业准备：刷新各企业的派生指标
// 说明：确保所有系统组件在更新阶段前都处于正确状态
func (ctx *Context) prepare() {
	ctx.clock.InternalStep++
	ctx.clock.T = float64(ctx.clock.InternalStep) * ctx.clock.DT

	if ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		venture := ctx.businessManager.Venture()
		log.Infof(
			"STEP: %d(%s) venture capital: %.2f",
			ctx.clock.InternalStep,
			ctx.clock.String(),
			venture.Capital(),
		)
	}

	// Prepare
	ctx.businessManager.Prepare()
}

// update 更新阶段，每步执行一次
// 功能：在每个模拟步骤中执行主要的模拟逻辑
// 算法说明：子系统按固定顺序串行更新，顺序即跨子系统资金流的
// 结算顺序，以顺序代替锁：
// 1. 财务：还款、投资兑付、月度纳税
// 2. 物流：交付判定与仓储成本
// 3. 研发：进度推进、成败判定、专利收入
// 4. 营销：活动效果、声誉衰减、调研完成
// 5. 国际化：汇率波动、子公司结算、协定到期
// 6. 危机：冲击均摊、响应结算、新危机生成
// 7. 合规检查：处罚合规不达标的企业
// 8. 情景：情景、挑战与特殊事件推进
// 9. 进度：成就判定与声望解锁
// 10. 生产销售：工资、生产、市场定价与销售
// 11. 随机事件：宏观事件作用于全部企业
// 12. 终局判定：主公司的胜负检查
func (ctx *Context) update() {
	dt := ctx.clock.DT

	ctx.financeManager.Update(dt)
	ctx.logisticsManager.Update(dt)
	ctx.researchManager.Update(dt)
	ctx.marketingManager.Update(dt)
	ctx.intlManager.Update(dt)
	ctx.crisisManager.Update(dt)
	ctx.eventManager.UpdateCompliance()
	ctx.scenarioManager.Update(dt)
	ctx.progressionManager.Update(dt)
	ctx.businessManager.Update(dt)
	ctx.eventManager.UpdateEvents()

	ctx.checkEndConditions()
}

// checkEndConditions 终局判定
// 功能：检查主公司的胜负条件并在达成时结束模拟
// 算法说明：
// 1. 资金跌破-50000：破产
// 2. 资金超过1000000或市场份额超过0.5：胜利
// 3. 既无员工也无产品：崩溃
func (ctx *Context) checkEndConditions() {
	venture := ctx.businessManager.Venture()
	switch {
	case venture.Capital() < -50000:
		ctx.result = ResultBankruptcy
	case venture.Capital() > 1000000 || venture.MarketShare() > 0.5:
		ctx.result = ResultVictory
	case len(venture.Employees()) == 0 && len(venture.Products()) == 0:
		ctx.result = ResultCollapse
	default:
		return
	}
	log.Infof("simulation finished at step %d with result %s", ctx.clock.InternalStep, ctx.result)
	ctx.Close()
}

// Run 运行
func (ctx *Context) Run() {
	// 初始化
	ctx.Init()
	for {
		if ctx.closed.Load() {
			break
		}
		if ctx.paused.Load() {
			time.Sleep(10 * time.Millisecond)
			continue
		}
		ctx.prepare()
		ctx.update()
		log.Debugf("step %d: update complete", ctx.clock.InternalStep)
		if ctx.clock.InternalStep+1 >= ctx.clock.END_STEP {
			if ctx.result == ResultRunning {
				ctx.result = ResultTimeUp
			}
			break
		}
	}
	log.Infof("engine complete")
	ctx.Close()
}
