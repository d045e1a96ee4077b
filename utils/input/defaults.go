package input

import (
	"github.com/tsinghua-fib-lab/venturesim-oss/entity"
)

// DefaultResearchCatalog 内置研究项目目录
// 说明：覆盖技术、产品、流程、专利四个类别，未配置外部数据源时使用
func DefaultResearchCatalog() []entity.ResearchProject {
	return []entity.ResearchProject{
		{Name: "Basic Automation", Description: "Automate routine production tasks", Category: "Technology", Cost: 50000, Duration: 20, SuccessChance: 0.9, Effects: map[string]float64{"ProductionEfficiency": 0.2}},
		{Name: "Advanced Materials", Description: "Research stronger and cheaper materials", Category: "Technology", Cost: 100000, Duration: 30, SuccessChance: 0.8, Prerequisites: []string{"Basic Automation"}, Effects: map[string]float64{"MaterialQuality": 0.3}},
		{Name: "AI Integration", Description: "Integrate AI into business operations", Category: "Technology", Cost: 200000, Duration: 40, SuccessChance: 0.7, Prerequisites: []string{"Advanced Materials"}, Effects: map[string]float64{"AIEfficiency": 0.4}},
		{Name: "Quality Improvement", Description: "Improve product quality control", Category: "Product", Cost: 30000, Duration: 15, SuccessChance: 0.95, Effects: map[string]float64{"ProductQuality": 0.25}},
		{Name: "Feature Development", Description: "Develop new product features", Category: "Product", Cost: 75000, Duration: 25, SuccessChance: 0.85, Prerequisites: []string{"Quality Improvement"}, Effects: map[string]float64{"ProductFeatures": 0.3}},
		{Name: "Design Innovation", Description: "Revolutionary product design", Category: "Product", Cost: 150000, Duration: 35, SuccessChance: 0.75, Prerequisites: []string{"Feature Development"}, Effects: map[string]float64{"DesignInnovation": 0.5}},
		{Name: "Lean Manufacturing", Description: "Optimize manufacturing processes", Category: "Process", Cost: 40000, Duration: 18, SuccessChance: 0.9, Effects: map[string]float64{"ProcessEfficiency": 0.2}},
		{Name: "Supply Chain Optimization", Description: "Streamline the supply chain", Category: "Process", Cost: 80000, Duration: 28, SuccessChance: 0.8, Prerequisites: []string{"Lean Manufacturing"}, Effects: map[string]float64{"LogisticsEfficiency": 0.3}},
		{Name: "Green Technology", Description: "Environmentally friendly processes", Category: "Process", Cost: 120000, Duration: 32, SuccessChance: 0.85, Prerequisites: []string{"Supply Chain Optimization"}, Effects: map[string]float64{"Sustainability": 0.25}},
		{Name: "Patent Filing", Description: "File a basic patent", Category: "Patent", Cost: 25000, Duration: 10, SuccessChance: 0.95, Effects: map[string]float64{"PatentValue": 50000}},
		{Name: "Technology Patent", Description: "Patent a core technology", Category: "Patent", Cost: 100000, Duration: 25, SuccessChance: 0.8, Prerequisites: []string{"Patent Filing"}, Effects: map[string]float64{"PatentValue": 200000}},
		{Name: "Process Patent", Description: "Patent a production process", Category: "Patent", Cost: 75000, Duration: 20, SuccessChance: 0.85, Prerequisites: []string{"Patent Filing"}, Effects: map[string]float64{"PatentValue": 150000}},
	}
}

// DefaultCountryCatalog 内置国家档案目录
// 说明：市场潜力与监管成本为各国基准值，未列出的监管成本在进入时随机抽取
func DefaultCountryCatalog() []entity.CountryProfile {
	return []entity.CountryProfile{
		{Name: "Germany", Currency: "EUR", MarketPotential: 5000000, RegulatoryCost: 0.25,
			Regulations: []string{"GDPR compliance", "Environmental standards"},
			Preferences: map[string]float64{"Quality": 0.9, "Sustainability": 0.8}},
		{Name: "France", Currency: "EUR", MarketPotential: 4000000,
			Regulations: []string{"Labor regulations"},
			Preferences: map[string]float64{"Quality": 0.8, "Design": 0.9}},
		{Name: "United Kingdom", Currency: "GBP", MarketPotential: 4500000,
			Regulations: []string{"Post-Brexit trade rules"},
			Preferences: map[string]float64{"Service": 0.8, "Innovation": 0.7}},
		{Name: "Japan", Currency: "JPY", MarketPotential: 6000000, RegulatoryCost: 0.3,
			Regulations: []string{"Quality certifications", "Import inspections"},
			Preferences: map[string]float64{"Quality": 0.95, "Technology": 0.9}},
		{Name: "China", Currency: "CNY", MarketPotential: 15000000, RegulatoryCost: 0.4,
			Regulations: []string{"Joint venture requirements", "Data localization"},
			Preferences: map[string]float64{"Price": 0.8, "Technology": 0.85}},
		{Name: "India", Currency: "INR", MarketPotential: 8000000, RegulatoryCost: 0.35,
			Regulations: []string{"Local sourcing rules"},
			Preferences: map[string]float64{"Price": 0.9, "Durability": 0.7}},
		{Name: "Brazil", Currency: "BRL", MarketPotential: 3000000,
			Regulations: []string{"Import tariffs"},
			Preferences: map[string]float64{"Price": 0.8, "Brand": 0.6}},
		{Name: "Russia", Currency: "RUB", MarketPotential: 2500000,
			Regulations: []string{"Localization requirements"},
			Preferences: map[string]float64{"Durability": 0.8, "Price": 0.7}},
	}
}

// DefaultSupplierCatalog 内置初始供应商目录
func DefaultSupplierCatalog() []entity.Supplier {
	return []entity.Supplier{
		{Name: "Quality Materials Co.", Material: "Raw Materials", BasePrice: 100, Reliability: 0.9, Quality: 0.9, MinOrder: 10, BulkThreshold: 50, BulkDiscount: 0.15},
		{Name: "Budget Supplies Inc.", Material: "Raw Materials", BasePrice: 60, Reliability: 0.7, Quality: 0.6, MinOrder: 5, BulkThreshold: 30, BulkDiscount: 0.1},
		{Name: "Premium Components", Material: "Components", BasePrice: 200, Reliability: 0.95, Quality: 0.95, MinOrder: 5, BulkThreshold: 20, BulkDiscount: 0.2},
		{Name: "Global Trading LLC", Material: "Components", BasePrice: 150, Reliability: 0.8, Quality: 0.8, MinOrder: 8, BulkThreshold: 40, BulkDiscount: 0.12},
	}
}

// DefaultAchievementCatalog 内置成就目录
func DefaultAchievementCatalog() []entity.Achievement {
	return []entity.Achievement{
		{Name: "First Million", Description: "Accumulate 1,000,000 in capital", Category: "Financial", Target: 1000000, Reward: 50000},
		{Name: "Profit Master", Description: "Earn 100,000 net income in a month", Category: "Financial", Target: 100000, Reward: 25000},
		{Name: "Market Leader", Description: "Reach 20% market share", Category: "Market", Target: 0.2, Reward: 75000},
		{Name: "Innovation Hub", Description: "Complete 10 research projects", Category: "Innovation", Target: 10, Reward: 100000},
		{Name: "Team Builder", Description: "Employ 50 people", Category: "Operational", Target: 50, Reward: 30000},
		{Name: "Product Portfolio", Description: "Offer 5 products", Category: "Operational", Target: 5, Reward: 40000},
		{Name: "Global Expansion", Description: "Enter 3 international markets", Category: "Market", Target: 3, Reward: 150000},
		{Name: "Crisis Survivor", Description: "Resolve 5 crises", Category: "Social", Target: 5, Reward: 50000},
		{Name: "IPO Success", Description: "Take the company public", Category: "Financial", Target: 1, Reward: 200000},
		{Name: "Merger Master", Description: "Complete 3 acquisitions", Category: "Financial", Target: 3, Reward: 125000},
	}
}
