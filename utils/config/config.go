package config

// RuntimeConfig 运行时配置
// 功能：存储模拟运行时的配置信息，包含补齐默认值后的控制与主公司配置
// 说明：将YAML配置转换为运行时可用的配置对象
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置
	V   Venture // 主公司配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：创建运行时配置对象，补齐缺省项
// 参数：config-原始配置对象
// 返回：初始化的运行时配置指针
// 算法说明：
// 1. 竞争对手数量默认为3
// 2. 主公司默认为 My Company / Tech / USA / 100000
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	if rc.C.Competitors <= 0 {
		rc.C.Competitors = 3
	}
	rc.V = config.Venture
	if rc.V.Name == "" {
		rc.V.Name = "My Company"
	}
	if rc.V.Industry == "" {
		rc.V.Industry = "Tech"
	}
	if rc.V.Region == "" {
		rc.V.Region = "USA"
	}
	if rc.V.Capital <= 0 {
		rc.V.Capital = 100000
	}

	return rc
}
