package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 命中判定模式
const (
	// ProximityModeClamped 只命中前方阈值范围内的僵尸：0 <= diff < threshold
	ProximityModeClamped = "clamped"
	// ProximityModePermissive 只比较上界：diff < threshold，身后的僵尸也会被命中
	ProximityModePermissive = "permissive"
)

// ProjectileStats 子弹预设
type ProjectileStats struct {
	Damage int     `yaml:"damage"` // 单次命中伤害
	Speed  float64 `yaml:"speed"`  // 速度：每个时间单位前进 1/speed 列
}

// CombatConfig 战斗规则配置文件结构
type CombatConfig struct {
	ProximityThreshold float64                    `yaml:"proximityThreshold"` // 命中判定阈值（列）
	ProximityMode      string                     `yaml:"proximityMode"`      // clamped 或 permissive
	MaxColumn          float64                    `yaml:"maxColumn"`          // 子弹越过该列视为飞出草坪，0 表示不限制
	Projectiles        map[string]ProjectileStats `yaml:"projectiles"`        // 子弹名到预设的映射
}

// LoadCombatConfig 从 YAML 文件加载战斗规则
func LoadCombatConfig(filepath string) (*CombatConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read combat config file %s: %w", filepath, err)
	}
	return ParseCombatConfig(data, filepath)
}

// ParseCombatConfig 解析 YAML 格式的战斗规则
// 未填写的 proximityMode 视为 clamped
func ParseCombatConfig(data []byte, source string) (*CombatConfig, error) {
	var config CombatConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse combat config YAML from %s: %w", source, err)
	}

	if config.ProximityMode == "" {
		config.ProximityMode = ProximityModeClamped
	}

	if err := validateCombatConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid combat config in %s: %w", source, err)
	}

	return &config, nil
}

// validateCombatConfig 验证战斗规则的合法性
func validateCombatConfig(config *CombatConfig) error {
	if config.ProximityThreshold <= 0 {
		return fmt.Errorf("proximityThreshold must be positive, got %v", config.ProximityThreshold)
	}

	switch config.ProximityMode {
	case ProximityModeClamped, ProximityModePermissive:
	default:
		return fmt.Errorf("unknown proximityMode %q", config.ProximityMode)
	}

	if config.MaxColumn < 0 {
		return fmt.Errorf("maxColumn cannot be negative, got %v", config.MaxColumn)
	}

	if len(config.Projectiles) == 0 {
		return fmt.Errorf("at least one projectile type is required")
	}

	for name, stats := range config.Projectiles {
		if stats.Damage <= 0 {
			return fmt.Errorf("projectile %s: damage must be positive, got %d", name, stats.Damage)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("projectile %s: speed must be positive, got %v", name, stats.Speed)
		}
	}

	return nil
}

// GetProjectile 获取指定子弹的预设
// 如果子弹类型不存在，返回 nil 和 false
func (c *CombatConfig) GetProjectile(name string) (*ProjectileStats, bool) {
	stats, ok := c.Projectiles[name]
	if !ok {
		return nil, false
	}
	return &stats, true
}
