package logistics

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/container"
)

const (
	// 初始仓库容量
	defaultWarehouseCapacity = 1000
	// 每单位库存每步的仓储成本
	storageCostPerUnit = 0.1
	// 每个仓库每步的固定运营成本
	warehouseOperatingCost = 1000
)

// 单个企业的物流记录
// 说明：在途订单按到达步数组织在优先队列中，优先级即到达步
type logisticsState struct {
	suppliers  []entity.Supplier
	warehouses []*entity.Warehouse
	inTransit  *container.PriorityQueue[*entity.SupplyOrder]
	completed  []entity.SupplyOrder
}

// 物流管理器
// 说明：维护每个企业的供应商、采购订单与仓库，负责交付判定与仓储成本
type LogisticsManager struct {
	ctx entity.ITaskContext

	catalog []entity.Supplier // 初始供应商目录模板
	data    map[int32]*logisticsState
}

// NewManager 创建物流管理器实例
// 功能：初始化物流管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的物流管理器实例
func NewManager(ctx entity.ITaskContext) *LogisticsManager {
	m := &LogisticsManager{
		ctx:  ctx,
		data: make(map[int32]*logisticsState),
	}
	return m
}

// Init 初始化供应商目录
// 参数：catalog-初始供应商目录，新企业引导时逐一注册
func (m *LogisticsManager) Init(catalog []entity.Supplier) {
	m.catalog = catalog
}

// state 获取企业的物流记录，不存在时惰性创建
func (m *LogisticsManager) state(id int32) *logisticsState {
	s, ok := m.data[id]
	if !ok {
		s = &logisticsState{
			inTransit: container.NewPriorityQueue[*entity.SupplyOrder](),
		}
		m.data[id] = s
	}
	return s
}

// Bootstrap 为新企业生成初始供应商与仓库
// 参数：id-企业ID，region-企业所在地区（作为初始仓库位置）
func (m *LogisticsManager) Bootstrap(id int32, region string) {
	for _, s := range m.catalog {
		m.RegisterSupplier(id, s)
	}
	m.AddWarehouse(id, region, defaultWarehouseCapacity)
}

// RegisterSupplier 注册供应商
func (m *LogisticsManager) RegisterSupplier(id int32, s entity.Supplier) {
	state := m.state(id)
	state.suppliers = append(state.suppliers, s)
}

// PlaceOrder 下采购订单
// 功能：向指定供应商下单
// 参数：id-企业ID，supplierName-供应商名称，quantity-订货量
// 返回：是否下单成功
// 算法说明：
// 1. 低于供应商最小订货量时拒绝
// 2. 单价按订货量计算（达到阈值享受批量折扣），现金不足时拒绝
// 3. 成本立即扣除并记为负债，交付成功后负债削减
// 4. 交付期5±2步，订单进入在途队列等待交付判定
func (m *LogisticsManager) PlaceOrder(id int32, supplierName string, quantity int32) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	s := m.state(id)
	var supplier *entity.Supplier
	for i := range s.suppliers {
		if s.suppliers[i].Name == supplierName {
			supplier = &s.suppliers[i]
			break
		}
	}
	if supplier == nil {
		log.Debugf("business %d has no supplier named %s", id, supplierName)
		return false
	}
	if quantity < supplier.MinOrder {
		log.Debugf("business %d order of %d below supplier %s min order %d", id, quantity, supplierName, supplier.MinOrder)
		return false
	}
	cost := supplier.UnitPrice(quantity) * float64(quantity)
	if b.Capital() < cost {
		return false
	}
	b.AddCapital(-cost)
	b.AddExpense(cost)
	b.AddLiability(cost)
	delay := m.ctx.Rand().IntRange(3, 8)
	arrival := m.ctx.Clock().InternalStep + delay
	s.inTransit.HeapPush(&entity.SupplyOrder{
		Supplier: *supplier,
		Quantity: quantity,
		Cost:     cost,
	}, float64(arrival))
	log.Debugf("business %d ordered %d from %s for %.2f, arriving at step %d", id, quantity, supplierName, cost, arrival)
	return true
}

// AddWarehouse 新增仓库
// 参数：id-企业ID，location-位置，capacity-容量
func (m *LogisticsManager) AddWarehouse(id int32, location string, capacity int32) {
	s := m.state(id)
	s.warehouses = append(s.warehouses, &entity.Warehouse{
		Location:           location,
		Capacity:           capacity,
		Stock:              make(map[string]int32),
		StorageCostPerUnit: storageCostPerUnit,
		OperatingCost:      warehouseOperatingCost,
	})
}

// DelayAll 全部在途订单交付延后
// 参数：extra-额外延迟步数
// 说明：供应链中断事件的入口，重建在途队列
func (m *LogisticsManager) DelayAll(extra int32) {
	for _, s := range m.data {
		n := s.inTransit.Len()
		for i := 0; i < n; i++ {
			order, arrival := s.inTransit.HeapPop()
			s.inTransit.Push(order, arrival+float64(extra))
		}
		s.inTransit.Heapify()
	}
}

// Status 获取物流状态快照
// 说明：在途订单的Remaining由到达步与当前步推算
func (m *LogisticsManager) Status(id int32) entity.LogisticsStatus {
	s := m.state(id)
	step := m.ctx.Clock().InternalStep
	res := entity.LogisticsStatus{
		Suppliers:  append([]entity.Supplier(nil), s.suppliers...),
		Orders:     append([]entity.SupplyOrder(nil), s.completed...),
		Warehouses: make([]entity.Warehouse, 0, len(s.warehouses)),
	}
	s.inTransit.Each(func(order *entity.SupplyOrder, arrival float64) {
		snapshot := *order
		snapshot.Remaining = int32(arrival) - step
		if snapshot.Remaining < 0 {
			snapshot.Remaining = 0
		}
		res.Orders = append(res.Orders, snapshot)
	})
	for _, w := range s.warehouses {
		snapshot := *w
		snapshot.Stock = make(map[string]int32, len(w.Stock))
		for k, v := range w.Stock {
			snapshot.Stock[k] = v
		}
		res.Warehouses = append(res.Warehouses, snapshot)
	}
	return res
}

// Drop 移除该企业的全部物流记录（收购用）
func (m *LogisticsManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的交付判定与仓储成本结算
// 参数：dt-时间步长
// 算法说明：
// 1. 交付判定：到达步不晚于当前步的订单逐一出队
//   - 失败概率 = (1-可靠性)×0.1，失败时全额退款并核销负债
//   - 成功时存入首个容量足够的仓库，核销负债，
//     全部产品品质 ×= 1+(供应商质量-0.5)×0.1，限定在[0.5, 2.0]
//   - 仓库无空间时顺延一步重新入队
//
// 2. 仓储成本：每仓库每步收取 库存×单位成本+固定运营成本，无论是否有交付
func (m *LogisticsManager) Update(dt float64) {
	step := m.ctx.Clock().InternalStep
	rng := m.ctx.Rand()
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 交付判定
		var retries []*entity.SupplyOrder
		for s.inTransit.Len() > 0 {
			order, arrival := s.inTransit.HeapPop()
			if int32(arrival) > step {
				s.inTransit.HeapPush(order, arrival)
				break
			}
			if rng.PTrue((1 - order.Supplier.Reliability) * 0.1) {
				// 交付失败，退款
				b.AddCapital(order.Cost)
				b.ReduceLiability(order.Cost)
				log.Debugf("business %d delivery from %s failed, refunded %.2f", id, order.Supplier.Name, order.Cost)
				continue
			}
			var warehouse *entity.Warehouse
			for _, w := range s.warehouses {
				if w.CanStore(order.Quantity) {
					warehouse = w
					break
				}
			}
			if warehouse == nil {
				// 无仓可存，顺延一步
				retries = append(retries, order)
				continue
			}
			warehouse.Stock[order.Supplier.Material] += order.Quantity
			b.ReduceLiability(order.Cost)
			for _, p := range b.Products() {
				p.Quality *= 1 + (order.Supplier.Quality-0.5)*0.1
				if p.Quality < 0.5 {
					p.Quality = 0.5
				} else if p.Quality > 2.0 {
					p.Quality = 2.0
				}
			}
			order.Delivered = true
			s.completed = append(s.completed, *order)
		}
		for _, order := range retries {
			s.inTransit.HeapPush(order, float64(step+1))
		}

		// 仓储成本
		total := 0.0
		for _, w := range s.warehouses {
			total += w.StorageCost()
		}
		if total > 0 {
			b.AddCapital(-total)
			b.AddExpense(total)
		}
	}
}
