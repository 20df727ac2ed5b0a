package config

import _ "embed"

// 默认配置随二进制一起分发，可通过 Load* 函数用外部文件覆盖
var (
	//go:embed data/zombie_variants.yaml
	defaultZombieVariantsYAML []byte

	//go:embed data/combat.yaml
	defaultCombatYAML []byte
)

const (
	// DefaultZombieVariantsSource 内嵌僵尸变体表的来源名（用于错误信息）
	DefaultZombieVariantsSource = "embedded:data/zombie_variants.yaml"
	// DefaultCombatSource 内嵌战斗规则的来源名（用于错误信息）
	DefaultCombatSource = "embedded:data/combat.yaml"
)

// DefaultZombieVariants 解析内嵌的僵尸变体表
func DefaultZombieVariants() (*ZombieVariantConfig, error) {
	return ParseZombieVariants(defaultZombieVariantsYAML, DefaultZombieVariantsSource)
}

// DefaultCombatConfig 解析内嵌的战斗规则
func DefaultCombatConfig() (*CombatConfig, error) {
	return ParseCombatConfig(defaultCombatYAML, DefaultCombatSource)
}
