package entity

// 贷款记录
type Loan struct {
	Principal   float64 // 本金
	Rate        float64 // 利率
	Duration    int32   // 期限（步）
	Remaining   int32   // 剩余步数
	Installment float64 // 每步还款额 = 本金×(1+利率)/期限
}

// 投资记录
type Investment struct {
	Type       string  // stocks / bonds / realestate / 其他
	Principal  float64 // 投入本金
	ReturnRate float64 // 到期收益率
	Maturity   int32   // 期限（步）
	Remaining  int32   // 剩余步数
}

// MaturityValue 到期回收金额
func (i Investment) MaturityValue() float64 {
	return i.Principal * (1 + i.ReturnRate)
}

// 财务状态快照
type FinanceStatus struct {
	Loans       []Loan
	Investments []Investment
}
