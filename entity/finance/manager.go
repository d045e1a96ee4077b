package finance

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

const (
	baseTaxRate      = 0.2  // 基础税率
	baseInterestRate = 0.05 // 基础利率
)

// 单个企业的财务记录
type financeState struct {
	loans       []*entity.Loan
	investments []*entity.Investment
}

// 财务管理器
// 说明：维护每个企业的贷款与投资记录，负责还款、到期兑付与月度纳税
type FinanceManager struct {
	ctx entity.ITaskContext

	data map[int32]*financeState
}

// NewManager 创建财务管理器实例
// 功能：初始化财务管理器，创建内部数据结构
// 参数：ctx-任务上下文
// 返回：新创建的财务管理器实例
func NewManager(ctx entity.ITaskContext) *FinanceManager {
	m := &FinanceManager{
		ctx:  ctx,
		data: make(map[int32]*financeState),
	}
	return m
}

// state 获取企业的财务记录，不存在时惰性创建
func (m *FinanceManager) state(id int32) *financeState {
	s, ok := m.data[id]
	if !ok {
		s = &financeState{}
		m.data[id] = s
	}
	return s
}

// TakeLoan 贷款
// 功能：为企业发放贷款
// 参数：id-企业ID，amount-本金，durationSteps-期限（步）
// 返回：是否放款
// 算法说明：
// 1. 风控：现有本金+新本金超过2倍现金时拒绝
// 2. 利率 = 基础利率×(1+放款后总本金/现金)，现金越紧利率越高
// 3. 每步还款额 = 本金×(1+利率)/期限
// 4. 本金立即入账并记为负债
func (m *FinanceManager) TakeLoan(id int32, amount float64, durationSteps int32) bool {
	if amount <= 0 || durationSteps <= 0 {
		return false
	}
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	s := m.state(id)
	existing := 0.0
	for _, l := range s.loans {
		existing += l.Principal
	}
	capital := b.Capital()
	if capital <= 0 || existing+amount > 2*capital {
		log.Debugf("business %d loan of %.2f rejected (existing %.2f, capital %.2f)", id, amount, existing, capital)
		return false
	}
	rate := baseInterestRate * (1 + (existing+amount)/capital)
	loan := &entity.Loan{
		Principal:   amount,
		Rate:        rate,
		Duration:    durationSteps,
		Remaining:   durationSteps,
		Installment: amount * (1 + rate) / float64(durationSteps),
	}
	s.loans = append(s.loans, loan)
	b.AddCapital(amount)
	b.AddLiability(amount)
	log.Infof("business %d took loan of %.2f at rate %.4f for %d steps", id, amount, rate, durationSteps)
	return true
}

// Invest 投资
// 功能：为企业建立投资头寸
// 参数：id-企业ID，investType-投资类型，amount-本金，maturitySteps-期限（步）
// 返回：是否成交
// 算法说明：
// 1. 现金不足时拒绝
// 2. 收益率按类型抽取：股票0.15±0.05，债券0.05±0.01，地产0.10±0.03，其他0.08±0.02
// 3. 本金立即扣除并计入支出，到期一次性兑付
func (m *FinanceManager) Invest(id int32, investType string, amount float64, maturitySteps int32) bool {
	if amount <= 0 || maturitySteps <= 0 {
		return false
	}
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	if b.Capital() < amount {
		return false
	}
	rng := m.ctx.Rand()
	var rate float64
	switch investType {
	case "stocks":
		rate = 0.15 + rng.Range(-0.05, 0.05)
	case "bonds":
		rate = 0.05 + rng.Range(-0.01, 0.01)
	case "realestate":
		rate = 0.10 + rng.Range(-0.03, 0.03)
	default:
		rate = 0.08 + rng.Range(-0.02, 0.02)
	}
	s := m.state(id)
	s.investments = append(s.investments, &entity.Investment{
		Type:       investType,
		Principal:  amount,
		ReturnRate: rate,
		Maturity:   maturitySteps,
		Remaining:  maturitySteps,
	})
	b.AddCapital(-amount)
	b.AddExpense(amount)
	return true
}

// ComputeTax 累进税额计算
// 参数：revenue-营收，expenses-支出
// 返回：应纳税额
// 算法说明：
// 1. 应税所得 = 营收 - 支出
// 2. 税率：基础0.2，所得超过1000000加征0.1，超过500000加征0.05
// 3. 税额下限0
func (m *FinanceManager) ComputeTax(revenue float64, expenses float64) float64 {
	income := revenue - expenses
	rate := baseTaxRate
	if income > 1000000 {
		rate += 0.1
	} else if income > 500000 {
		rate += 0.05
	}
	tax := income * rate
	if tax < 0 {
		tax = 0
	}
	return tax
}

// CanGoPublic 是否满足上市条件
// 说明：净值超过5000000且经营天数超过730天
func (m *FinanceManager) CanGoPublic(id int32) bool {
	b, err := m.ctx.BusinessManager().GetOrError(id)
	if err != nil {
		return false
	}
	return b.NetWorth() > 5000000 && b.DaysInBusiness() > 730
}

// GoPublic 上市
// 返回：是否上市成功
// 算法说明：发行价 = 净值/1000000×15
func (m *FinanceManager) GoPublic(id int32) bool {
	if !m.CanGoPublic(id) {
		return false
	}
	b := m.ctx.BusinessManager().Get(id)
	if b.IsPublic() {
		return false
	}
	sharePrice := b.NetWorth() / 1000000 * 15
	b.GoPublic(sharePrice)
	log.Infof("business %d went public at share price %.2f", id, sharePrice)
	return true
}

// Status 获取财务状态快照
func (m *FinanceManager) Status(id int32) entity.FinanceStatus {
	s := m.state(id)
	res := entity.FinanceStatus{
		Loans:       make([]entity.Loan, 0, len(s.loans)),
		Investments: make([]entity.Investment, 0, len(s.investments)),
	}
	for _, l := range s.loans {
		res.Loans = append(res.Loans, *l)
	}
	for _, i := range s.investments {
		res.Investments = append(res.Investments, *i)
	}
	return res
}

// Drop 移除该企业的全部财务记录（收购用）
func (m *FinanceManager) Drop(id int32) {
	delete(m.data, id)
}

// Update 更新阶段
// 功能：推进所有企业的财务结算
// 参数：dt-时间步长
// 算法说明：
// 1. 还款：每笔贷款每步扣除还款额，负债按本金均摊削减，到期移除
// 2. 兑付：投资到期一次性收回本金×(1+收益率)，计入营收
// 3. 纳税：月度结算步按本月营收与运营成本（工资+库存成本）计税，
//    缴税后归档月度账目
func (m *FinanceManager) Update(dt float64) {
	isMonthEnd := m.ctx.Clock().IsMonthEnd()
	for _, b := range m.ctx.BusinessManager().All() {
		id := b.ID()
		s := m.state(id)

		// 贷款还款
		remainingLoans := s.loans[:0]
		for _, l := range s.loans {
			b.AddCapital(-l.Installment)
			b.AddExpense(l.Installment)
			b.ReduceLiability(l.Principal / float64(l.Duration))
			l.Remaining--
			if l.Remaining > 0 {
				remainingLoans = append(remainingLoans, l)
			}
		}
		s.loans = remainingLoans

		// 投资到期兑付
		remainingInvestments := s.investments[:0]
		for _, inv := range s.investments {
			inv.Remaining--
			if inv.Remaining <= 0 {
				value := inv.MaturityValue()
				b.AddCapital(value)
				b.AddRevenue(value)
				log.Debugf("business %d investment in %s matured for %.2f", id, inv.Type, value)
			} else {
				remainingInvestments = append(remainingInvestments, inv)
			}
		}
		s.investments = remainingInvestments

		// 月度纳税与结算
		if isMonthEnd {
			operating := 0.0
			for _, e := range b.Employees() {
				operating += e.Wage
			}
			for _, p := range b.Products() {
				operating += p.Cost * float64(p.Inventory)
			}
			tax := m.ComputeTax(b.Revenue(), operating)
			if tax > 0 {
				b.AddCapital(-tax)
				b.AddExpense(tax)
				log.Debugf("business %d paid %.2f tax", id, tax)
			}
			b.CloseMonth()
		}
	}
}
