package entity

// 成就
type Achievement struct {
	Name        string  `yaml:"name" bson:"name"`
	Description string  `yaml:"description" bson:"description"`
	Category    string  `yaml:"category" bson:"category"` // Financial / Operational / Market / Innovation / Social
	Target      float64 `yaml:"target" bson:"target"`
	Current     float64 `yaml:"-" bson:"-"`
	Reward      float64 `yaml:"reward" bson:"reward"`
	Completed   bool    `yaml:"-" bson:"-"`
}

// 声望档位
// 说明：按净值（资金+总资产）升序解锁，加成只在解锁那一步应用一次，
// 以派生乘数形式生效，不在基础字段上累乘
type PrestigeTier struct {
	Level    int32
	Title    string
	Required float64
	Features []string
	Bonuses  map[string]float64 // 类别->乘数
	Unlocked bool
}

// 可解锁项
type Unlockable struct {
	Name        string
	Description string
	Type        string // Feature / Building / Technology
	Cost        float64
	Unlocked    bool
}

// 进度加成
type ProgressionBonus struct {
	Name        string
	Description string
	Value       float64
	Category    string
	Active      bool
}

// 进度状态快照
type ProgressionStatus struct {
	Achievements []Achievement
	Tiers        []PrestigeTier
	Unlockables  []Unlockable
	Bonuses      []ProgressionBonus
}
