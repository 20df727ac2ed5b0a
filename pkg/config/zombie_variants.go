package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemPreset 饰品预设
type ItemPreset struct {
	Name            string `yaml:"name"`            // 饰品名称，如 "Bucket"
	AttackModifier  int    `yaml:"attackModifier"`  // 啃食伤害修正
	DefenseModifier int    `yaml:"defenseModifier"` // 受到伤害修正（负值减伤）
	Threshold       int    `yaml:"threshold"`       // 饰品耐久
}

// ZombieVariant 单个僵尸变体的预设
type ZombieVariant struct {
	BaseHealth int         `yaml:"baseHealth"` // 本体血量
	BaseAttack int         `yaml:"baseAttack"` // 基础啃食伤害
	Item       *ItemPreset `yaml:"item"`       // 携带的饰品，nil 表示无饰品
}

// ZombieVariantConfig 僵尸变体表配置文件结构
type ZombieVariantConfig struct {
	Zombies map[string]ZombieVariant `yaml:"zombies"` // 变体名到预设的映射
}

// LoadZombieVariants 从 YAML 文件加载僵尸变体表
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*ZombieVariantConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadZombieVariants(filepath string) (*ZombieVariantConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zombie variants file %s: %w", filepath, err)
	}
	return ParseZombieVariants(data, filepath)
}

// ParseZombieVariants 解析 YAML 格式的僵尸变体表
// source 仅用于错误信息
func ParseZombieVariants(data []byte, source string) (*ZombieVariantConfig, error) {
	var config ZombieVariantConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse zombie variants YAML from %s: %w", source, err)
	}

	if err := validateZombieVariants(&config); err != nil {
		return nil, fmt.Errorf("invalid zombie variants in %s: %w", source, err)
	}

	return &config, nil
}

// validateZombieVariants 验证僵尸变体表的完整性和合法性
func validateZombieVariants(config *ZombieVariantConfig) error {
	if len(config.Zombies) == 0 {
		return fmt.Errorf("at least one zombie variant is required")
	}

	for name, variant := range config.Zombies {
		if variant.BaseHealth <= 0 {
			return fmt.Errorf("zombie %s: baseHealth must be positive, got %d", name, variant.BaseHealth)
		}

		if variant.BaseAttack < 0 {
			return fmt.Errorf("zombie %s: baseAttack cannot be negative, got %d", name, variant.BaseAttack)
		}

		if variant.Item != nil {
			if variant.Item.Name == "" {
				return fmt.Errorf("zombie %s: item name is required", name)
			}
			if variant.Item.Threshold < 0 {
				return fmt.Errorf("zombie %s: item threshold cannot be negative, got %d", name, variant.Item.Threshold)
			}
		}
	}

	return nil
}

// GetVariant 获取指定变体的预设
// 如果变体不存在，返回 nil 和 false
func (c *ZombieVariantConfig) GetVariant(name string) (*ZombieVariant, bool) {
	variant, ok := c.Zombies[name]
	if !ok {
		return nil, false
	}
	return &variant, true
}
