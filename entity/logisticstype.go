package entity

import "github.com/samber/lo"

// 供应商
type Supplier struct {
	Name          string  `yaml:"name" bson:"name"`                     // 名称
	Material      string  `yaml:"material" bson:"material"`             // 供应物料类型
	BasePrice     float64 `yaml:"base_price" bson:"base_price"`         // 基础单价
	Reliability   float64 `yaml:"reliability" bson:"reliability"`       // 可靠性（0-1），影响交付成功率
	Quality       float64 `yaml:"quality" bson:"quality"`               // 质量（0-1），影响产品品质
	MinOrder      int32   `yaml:"min_order" bson:"min_order"`           // 最小订货量
	BulkThreshold int32   `yaml:"bulk_threshold" bson:"bulk_threshold"` // 批量折扣阈值
	BulkDiscount  float64 `yaml:"bulk_discount" bson:"bulk_discount"`   // 批量折扣比例
}

// UnitPrice 按订货量计算单价（达到阈值享受批量折扣）
func (s Supplier) UnitPrice(quantity int32) float64 {
	if quantity >= s.BulkThreshold {
		return s.BasePrice * (1 - s.BulkDiscount)
	}
	return s.BasePrice
}

// 采购订单
type SupplyOrder struct {
	Supplier  Supplier // 供应商（下单时的副本）
	Quantity  int32    // 订货量
	Cost      float64  // 总成本，交付前作为负债
	Remaining int32    // 距交付剩余步数
	Delivered bool
}

// 仓库
type Warehouse struct {
	Location           string           // 位置
	Capacity           int32            // 容量
	Stock              map[string]int32 // 物料->库存
	StorageCostPerUnit float64          // 每单位每步仓储成本
	OperatingCost      float64          // 每步固定运营成本
}

// CanStore 判断是否还能容纳amount单位物料
func (w *Warehouse) CanStore(amount int32) bool {
	return lo.Sum(lo.Values(w.Stock))+amount <= w.Capacity
}

// StorageCost 当前每步仓储成本 = 库存×单位成本 + 运营成本
func (w *Warehouse) StorageCost() float64 {
	return float64(lo.Sum(lo.Values(w.Stock)))*w.StorageCostPerUnit + w.OperatingCost
}

// 物流状态快照
type LogisticsStatus struct {
	Suppliers  []Supplier
	Orders     []SupplyOrder
	Warehouses []Warehouse // Stock为副本
}
