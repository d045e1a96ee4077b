package entity

// 情景
type Scenario struct {
	Name         string
	Description  string
	Difficulty   string // Easy / Medium / Hard / Expert
	Duration     int32
	Remaining    int32
	Objectives   []string
	Restrictions []string
	Modifiers    map[string]float64
	Completed    bool
	Reward       float64
}

// 挑战
type Challenge struct {
	Name        string
	Description string
	Type        string // Speed / Efficiency / Innovation / Survival
	Target      float64
	Current     float64
	Completed   bool
	Duration    int32
	Remaining   int32
}

// 特殊事件
type SpecialEvent struct {
	Name        string
	Description string
	Type        string // Economic / Technological / Social / Environmental
	Duration    int32
	Remaining   int32
	Effects     map[string]float64
	Active      bool
}

// 情景状态快照
type ScenarioStatus struct {
	Active     *Scenario
	Challenges []Challenge
	Events     []SpecialEvent
	Completed  []Scenario
}
