package entity

// 国家档案（目录数据）
type CountryProfile struct {
	Name            string             `yaml:"name" bson:"name"`
	Currency        string             `yaml:"currency" bson:"currency"`
	MarketPotential float64            `yaml:"market_potential" bson:"market_potential"`
	RegulatoryCost  float64            `yaml:"regulatory_cost,omitempty" bson:"regulatory_cost,omitempty"`
	Regulations     []string           `yaml:"regulations,omitempty" bson:"regulations,omitempty"`
	Preferences     map[string]float64 `yaml:"preferences,omitempty" bson:"preferences,omitempty"`
}

// 海外市场
type ForeignMarket struct {
	Country         string
	Currency        string
	ExchangeRate    float64 // 进入时的汇率快照
	MarketSize      float64
	MarketShare     float64
	RegulatoryCost  float64
	CulturalBarrier float64
	Infrastructure  float64
	Regulations     []string
	Preferences     map[string]float64
}

// 海外子公司
// 说明：创建时复制母公司产品组合，每步按库存价值的10%产生本地营收
type Subsidiary struct {
	Name       string
	Country    string
	Capital    float64
	Products   []*Product
	Employees  []*Employee
	Revenue    float64 // 最近一步本地营收
	Expenses   float64 // 最近一步本地支出
	TaxRate    float64 // 0.15-0.35，创建时抽取
	Profitable bool
}

// 贸易协定
type TradeAgreement struct {
	CountryA        string
	CountryB        string
	TariffReduction float64
	Duration        int32
	Remaining       int32
}

// 国际化状态快照
type InternationalStatus struct {
	Markets      []ForeignMarket
	Subsidiaries []Subsidiary
	Agreements   []TradeAgreement
}
