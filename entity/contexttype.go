package entity

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/clock"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/randengine"
)

// 仿真任务上下文接口，供各Manager访问时钟、随机数引擎与其他Manager
type ITaskContext interface {
	Clock() *clock.Clock
	Rand() *randengine.Engine
	BusinessManager() IBusinessManager
	MarketManager() IMarketManager
	FinanceManager() IFinanceManager
	LogisticsManager() ILogisticsManager
	CrisisManager() ICrisisManager
	MarketingManager() IMarketingManager
	InternationalManager() IInternationalManager
	ResearchManager() IResearchManager
	ProgressionManager() IProgressionManager
	ScenarioManager() IScenarioManager
	EventManager() IEventManager
	RuntimeConfig() *config.RuntimeConfig
}
