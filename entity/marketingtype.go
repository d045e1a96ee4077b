package entity

// 营销活动
type Campaign struct {
	Name          string
	Type          string // tv / digital / print / social / influencer
	Budget        float64
	Duration      int32
	Remaining     int32
	Effectiveness float64 // 由预算与渠道推导
	Reach         float64
	Audience      string // 目标客群，"General"表示全部
}

// 品牌声誉，六项子分（0-100），总分恒为六项均值
type BrandReputation struct {
	Overall              float64
	CustomerSatisfaction float64
	ProductQuality       float64
	CustomerService      float64
	Innovation           float64
	SocialResponsibility float64
	EnvironmentalImpact  float64
}

// NewBrandReputation 创建初始声誉（各项50分）
func NewBrandReputation() *BrandReputation {
	return &BrandReputation{
		Overall:              50,
		CustomerSatisfaction: 50,
		ProductQuality:       50,
		CustomerService:      50,
		Innovation:           50,
		SocialResponsibility: 50,
		EnvironmentalImpact:  50,
	}
}

// UpdateOverall 重算总分为六项子分的算术平均
func (r *BrandReputation) UpdateOverall() {
	r.Overall = (r.CustomerSatisfaction + r.ProductQuality + r.CustomerService +
		r.Innovation + r.SocialResponsibility + r.EnvironmentalImpact) / 6
}

// 客群
type CustomerSegment struct {
	Name             string
	Size             float64 // 市场规模
	Penetration      float64 // 渗透率
	Satisfaction     float64 // 0-100
	Loyalty          float64 // 0-1
	PriceSensitivity float64
}

// 市场调研
type MarketStudy struct {
	Type      string // Customer Survey / Competitor Analysis / Market Trends
	Cost      float64
	Duration  int32
	Remaining int32
	Results   map[string]float64 // 完成时填充
}

// 营销状态快照
type MarketingStatus struct {
	Campaigns  []Campaign
	Reputation BrandReputation
	Segments   []CustomerSegment
	Studies    []MarketStudy
}
