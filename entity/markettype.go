package entity

// entity/market/market.go的依赖倒置
// 说明：供需计数由调用方在每步"累计→定价→清零"的约定下使用，
// Market本身不负责清零
type IMarket interface {
	Category() string
	Elasticity() float64
	AccumulateSupply(amount float64)
	AccumulateDemand(amount float64)
	// 由当前累计供需推导出清算价格并返回
	// 供给为0时价格等于弹性系数（显式下限，避免除零与退化定价）
	ClearPrice() float64
	Price() float64 // 最近一次ClearPrice的结果
	Supply() float64
	Demand() float64
	Reset() // 清零供需计数
}
