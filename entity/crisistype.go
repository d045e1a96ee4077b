package entity

// 危机类型
const (
	CrisisProductRecall   = "ProductRecall"
	CrisisPRDisaster      = "PRDisaster"
	CrisisLegalIssue      = "LegalIssue"
	CrisisNaturalDisaster = "NaturalDisaster"
)

// 危机响应行动类型
const (
	ResponseApology       = "Apology"
	ResponseCompensation  = "Compensation"
	ResponseInvestigation = "Investigation"
	ResponseLegalDefense  = "LegalDefense"
	ResponseRebranding    = "Rebranding"
)

// 危机
// 说明：财务与声誉冲击按原始时长均摊到每一步
type Crisis struct {
	Type             string
	Description      string
	Severity         float64 // 0-1
	Duration         int32   // 原始时长（步）
	Remaining        int32   // 剩余步数
	FinancialImpact  float64 // 总财务冲击
	ReputationImpact float64 // 总声誉冲击
	Effects          map[string]float64
}

// 危机响应
type CrisisResponse struct {
	Action        string
	Cost          float64
	Effectiveness float64
	Duration      int32
	Remaining     int32
}

// 危机状态快照
type CrisisStatus struct {
	Crises     []Crisis
	Responses  []CrisisResponse
	Resistance float64
	Resolved   int32 // 已度过的危机数
}
