package task

import (
	"sync/atomic"

	"github.com/tsinghua-fib-lab/venturesim-oss/clock"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/business"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/crisis"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/event"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/finance"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/intl"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/logistics"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/market"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/marketing"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/progression"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/research"
	"github.com/tsinghua-fib-lab/venturesim-oss/entity/scenario"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/input"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/randengine"
)

// 模拟结果
const (
	ResultRunning    = ""           // 仍在进行
	ResultVictory    = "victory"    // 胜利：资金或市场份额达标
	ResultBankruptcy = "bankruptcy" // 破产：资金跌破下限
	ResultCollapse   = "collapse"   // 崩溃：既无员工也无产品
	ResultTimeUp     = "time_up"    // 模拟步数耗尽
)

// Context 模拟任务上下文
// 功能：包含一次模拟任务的所有变量和状态，替代原来的全局变量
// 说明：管理模拟系统的所有组件，包括时钟、管理器、配置等
type Context struct {

	// 任务名
	job string
	// 关闭指令
	closed atomic.Bool
	// 暂停指令
	paused atomic.Bool

	// 时钟
	clock *clock.Clock
	// 随机数引擎
	rand *randengine.Engine
	// 缓存文件夹
	cacheDir string

	// Business管理器
	businessManager *business.BusinessManager
	// Market管理器
	marketManager *market.MarketManager
	// Finance管理器
	financeManager *finance.FinanceManager
	// Logistics管理器
	logisticsManager *logistics.LogisticsManager
	// Crisis管理器
	crisisManager *crisis.CrisisManager
	// Marketing管理器
	marketingManager *marketing.MarketingManager
	// International管理器
	intlManager *intl.InternationalManager
	// Research管理器
	researchManager *research.ResearchManager
	// Progression管理器
	progressionManager *progression.ProgressionManager
	// Scenario管理器
	scenarioManager *scenario.ScenarioManager
	// Event管理器
	eventManager *event.EventManager

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// 用于初始化的输入
	initRes *input.Input

	// 模拟结果
	result string
}

// NewContext 创建新的模拟任务上下文
// 功能：初始化模拟系统的所有组件和配置
// 参数：
//   - job: 任务名称
//   - cacheDir: 缓存目录
//   - c: 配置对象
//
// 返回：初始化完成的Context实例
// 算法说明：
// 1. 创建Context实例并设置基本属性
// 2. 初始化时钟与随机数引擎
// 3. 下载并初始化目录数据
// 4. 创建各个子系统管理器
func NewContext(
	job string,
	cacheDir string,
	c config.Config,
) *Context {
	ctx := &Context{
		job:      job,
		cacheDir: cacheDir,
	}
	ctx.clock = clock.New(c.Control.Step)
	ctx.rand = randengine.New(c.Control.Seed)

	// 下载所有模拟器启动所需的数据
	ctx.initRes = input.Init(c, ctx.cacheDir)

	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	// 新建各类模拟对象
	ctx.businessManager = business.NewManager(ctx)
	ctx.marketManager = market.NewManager(ctx)
	ctx.financeManager = finance.NewManager(ctx)
	ctx.logisticsManager = logistics.NewManager(ctx)
	ctx.crisisManager = crisis.NewManager(ctx)
	ctx.marketingManager = marketing.NewManager(ctx)
	ctx.intlManager = intl.NewManager(ctx)
	ctx.researchManager = research.NewManager(ctx)
	ctx.progressionManager = progression.NewManager(ctx)
	ctx.scenarioManager = scenario.NewManager(ctx)
	ctx.eventManager = event.NewManager(ctx)

	return ctx
}

func (ctx *Context) GetInput() *input.Input {
	return ctx.initRes
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) Rand() *randengine.Engine {
	return ctx.rand
}

func (ctx *Context) BusinessManager() entity.IBusinessManager {
	return ctx.businessManager
}

func (ctx *Context) MarketManager() entity.IMarketManager {
	return ctx.marketManager
}

func (ctx *Context) FinanceManager() entity.IFinanceManager {
	return ctx.financeManager
}

func (ctx *Context) LogisticsManager() entity.ILogisticsManager {
	return ctx.logisticsManager
}

func (ctx *Context) CrisisManager() entity.ICrisisManager {
	return ctx.crisisManager
}

func (ctx *Context) MarketingManager() entity.IMarketingManager {
	return ctx.marketingManager
}

func (ctx *Context) InternationalManager() entity.IInternationalManager {
	return ctx.intlManager
}

func (ctx *Context) ResearchManager() entity.IResearchManager {
	return ctx.researchManager
}

func (ctx *Context) ProgressionManager() entity.IProgressionManager {
	return ctx.progressionManager
}

func (ctx *Context) ScenarioManager() entity.IScenarioManager {
	return ctx.scenarioManager
}

func (ctx *Context) EventManager() entity.IEventManager {
	return ctx.eventManager
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// Init 初始化模拟世界
// 功能：加载目录数据并创建主公司与AI竞争对手
// 算法说明：
// 1. 时钟复位，各管理器加载目录数据
// 2. 按配置创建主公司，配置初始产品与初始员工
// 3. 按配置创建AI竞争对手
func (ctx *Context) Init() {
	ctx.clock.Init()

	initRes := ctx.initRes
	log.Infof("Research catalog: %v", len(initRes.Research))
	log.Infof("Country catalog: %v", len(initRes.Countries))
	log.Infof("Supplier catalog: %v", len(initRes.Suppliers))
	log.Infof("Achievement catalog: %v", len(initRes.Achievements))

	// 先完成目录数据装载，再创建企业（企业引导依赖供应商与成就目录）
	ctx.logisticsManager.Init(initRes.Suppliers)
	ctx.researchManager.Init(initRes.Research)
	ctx.intlManager.Init(initRes.Countries)
	ctx.progressionManager.Init(initRes.Achievements)

	v := ctx.runtimeConfig.V
	ventureID := ctx.businessManager.Create(v.Name, v.Industry, v.Region, v.Capital)
	venture := ctx.businessManager.Get(ventureID)
	venture.AddProduct(&entity.Product{
		Name:     v.Name + " Product",
		Category: v.Industry,
		Price:    100,
		Cost:     50,
		Quality:  1.0,
	})
	for i := 1; i <= 3; i++ {
		venture.Hire(&entity.Employee{
			Name:   v.Name + " Employee",
			Role:   "Worker",
			Wage:   2000,
			Morale: 0.8,
			Skill:  1.0,
		})
	}

	ctx.businessManager.CreateCompetitors(ctx.runtimeConfig.C.Competitors)
}

// Pause 暂停模拟
func (ctx *Context) Pause() {
	ctx.paused.Store(true)
}

// Resume 恢复模拟
func (ctx *Context) Resume() {
	ctx.paused.Store(false)
}

// IsRunning 模拟是否在推进（未暂停且未结束）
func (ctx *Context) IsRunning() bool {
	return !ctx.paused.Load() && !ctx.closed.Load()
}

// Result 获取模拟结果，进行中返回空字符串
func (ctx *Context) Result() string {
	return ctx.result
}

// Close 结束模拟
func (ctx *Context) Close() {
	ctx.closed.Store(true)
}
