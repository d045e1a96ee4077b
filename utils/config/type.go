package config

// InputPath 指定输入数据来源的配置（MongoDB、文件系统）
// 功能：定义目录数据输入路径的配置结构，支持多种数据源
// 说明：支持MongoDB数据库和YAML文件两种数据源，支持缓存机制
type InputPath struct {
	DB        string `yaml:"db"`                   // 数据库名
	Col       string `yaml:"col"`                  // 集合名
	Cache     string `yaml:"cache,omitempty"`      // 缓存文件名，为空则采用默认路径{db}.{col}.yml
	OnlyCache bool   `yaml:"only_cache,omitempty"` // 只从缓存中获取
	File      string `yaml:"file,omitempty"`       // 文件路径（优先级高于MongoDB）
}

// GetDb 获取数据库名
func (p InputPath) GetDb() string {
	return p.DB
}

// GetColl 获取集合名
func (p InputPath) GetColl() string {
	return p.Col
}

// GetCachePath 获取缓存文件路径
// 算法说明：
// 1. 如果指定了缓存路径，直接返回
// 2. 否则使用默认命名规则：{数据库名}.{集合名}.yml
func (p InputPath) GetCachePath() string {
	if p.Cache != "" {
		return p.Cache
	}
	return p.DB + "." + p.Col + ".yml"
}

// Input 指定模拟器所有目录输入数据的配置项
// 说明：包含研究项目目录、国家档案、初始供应商、成就定义等目录数据的配置，
// 全部可选，未配置的部分使用内置默认目录
type Input struct {
	URI          string     `yaml:"uri,omitempty"`          // MongoDB连接字符串
	Research     *InputPath `yaml:"research,omitempty"`     // 研究项目目录
	Countries    *InputPath `yaml:"countries,omitempty"`    // 国家档案
	Suppliers    *InputPath `yaml:"suppliers,omitempty"`    // 初始供应商
	Achievements *InputPath `yaml:"achievements,omitempty"` // 成就定义
}

// ControlStep 指定模拟时间范围和间隔的配置项
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步对应的模拟天数
}

// Control 模拟器控制配置
type Control struct {
	Step        ControlStep `yaml:"step"`
	Seed        uint64      `yaml:"seed,omitempty"`        // 随机数种子
	Competitors int32       `yaml:"competitors,omitempty"` // AI竞争对手数量，默认3
}

// Venture 主公司初始配置
type Venture struct {
	Name     string  `yaml:"name,omitempty"`     // 公司名，默认My Company
	Industry string  `yaml:"industry,omitempty"` // 行业，默认Tech
	Region   string  `yaml:"region,omitempty"`   // 地区，默认USA
	Capital  float64 `yaml:"capital,omitempty"`  // 初始资金，默认100000
}

// Config YAML配置文件的根结构
type Config struct {
	Input   Input   `yaml:"input,omitempty"` // 目录输入
	Control Control `yaml:"control"`         // 模拟过程控制
	Venture Venture `yaml:"venture,omitempty"`
}
