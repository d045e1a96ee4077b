package entity

import "strings"

// 研究项目
// 说明：目录中的项目是模板，StartProject时为企业创建私有副本跟踪进度
type ResearchProject struct {
	Name          string             `yaml:"name" bson:"name"`
	Description   string             `yaml:"description" bson:"description"`
	Category      string             `yaml:"category" bson:"category"` // Technology / Product / Process / Patent
	Cost          float64            `yaml:"cost" bson:"cost"`
	Duration      int32              `yaml:"duration" bson:"duration"`
	Remaining     int32              `yaml:"-" bson:"-"`
	Progress      float64            `yaml:"-" bson:"-"` // 0-1
	SuccessChance float64            `yaml:"success_chance" bson:"success_chance"`
	Prerequisites []string           `yaml:"prerequisites,omitempty" bson:"prerequisites,omitempty"`
	Effects       map[string]float64 `yaml:"effects,omitempty" bson:"effects,omitempty"`
}

// 专利，持有期间每步产生许可收入
type Patent struct {
	Name             string
	Description      string
	Value            float64
	Duration         int32
	Remaining        int32
	LicensingRevenue float64 // 每步 = 价值×1%
}

// 研究员
type Researcher struct {
	Name           string
	Specialization string
	Wage           float64
	Skill          float64
	Efficiency     float64
}

// Bonus 研究员对指定类别项目的进度加成
// 说明：专业方向匹配时加成×1.5
func (r Researcher) Bonus(category string) float64 {
	if strings.EqualFold(r.Specialization, category) {
		return r.Efficiency * 1.5
	}
	return r.Efficiency
}

// 研发状态快照
type ResearchStatus struct {
	Projects    []ResearchProject
	Patents     []Patent
	Researchers []Researcher
}
