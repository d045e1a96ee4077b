package clock

import (
	"fmt"

	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

// 每月包含的模拟天数，月度结算（纳税、账目清零）以此为界
const DaysPerMonth = 30

// Clock 仿真时钟管理器
// 功能：管理模拟的时间推进，一步对应DT个模拟天
// 说明：维护当前模拟天数、步数等信息，模拟区间为[START_STEP, END_STEP)
type Clock struct {
	DT         float64 // 每步对应的模拟天数
	START_STEP int32   // 起始步
	END_STEP   int32   // 结束步，模拟区间[START, END)

	T            float64 // 当前模拟天数
	InternalStep int32   // 当前内部步数
}

// New 根据配置创建新的时钟实例
// 功能：根据全局配置初始化时钟信息
// 参数：stepConfig-控制步配置，包含起始步、总步数与每步天数
// 返回：初始化完成的时钟实例
func New(stepConfig config.ControlStep) *Clock {
	dt := stepConfig.Interval
	if dt <= 0 {
		dt = 1
	}
	c := &Clock{
		DT:         dt,
		START_STEP: stepConfig.Start,
		END_STEP:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 初始化时钟状态
// 说明：重置内部步数为起始步，重新计算当前模拟天数
func (c *Clock) Init() {
	c.InternalStep = c.START_STEP
	c.T = float64(c.InternalStep) * c.DT
}

// IsMonthEnd 判断当前步是否为月度结算步
// 说明：每DaysPerMonth天触发一次，起始步不触发
func (c *Clock) IsMonthEnd() bool {
	return c.InternalStep > 0 && c.InternalStep%DaysPerMonth == 0
}

// Day 获取当前模拟天数（整数）
func (c *Clock) Day() int32 {
	return int32(c.T)
}

// String 获取时钟的字符串表示（Day X (month M)）
func (c *Clock) String() string {
	day := c.Day()
	return fmt.Sprintf("Day %d (month %d)", day, day/DaysPerMonth+1)
}
