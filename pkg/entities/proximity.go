package entities

import "github.com/decker502/pvzcore/pkg/config"

// DefaultProximityThreshold 命中判定的默认阈值（列）
const DefaultProximityThreshold = 0.5

// ProximityRule 子弹命中判定规则
//
// 判定是有方向的：比较 僵尸列 - 子弹列 与阈值。
//   - Clamped 为 true 时要求 0 <= diff < Threshold，身后的僵尸不会被命中
//   - Clamped 为 false 时只要求 diff < Threshold，身后任意远的僵尸都会被命中
type ProximityRule struct {
	Threshold float64
	Clamped   bool
}

// DefaultProximityRule 返回默认规则：阈值 0.5，限制下界
func DefaultProximityRule() ProximityRule {
	return ProximityRule{Threshold: DefaultProximityThreshold, Clamped: true}
}

// ProximityRuleFromConfig 根据战斗规则配置构造命中判定规则
func ProximityRuleFromConfig(cfg *config.CombatConfig) ProximityRule {
	if cfg == nil {
		return DefaultProximityRule()
	}
	return ProximityRule{
		Threshold: cfg.ProximityThreshold,
		Clamped:   cfg.ProximityMode != config.ProximityModePermissive,
	}
}

// InRange 判断目标列是否落在子弹的命中范围内
func (r ProximityRule) InRange(projectileCol, targetCol float64) bool {
	diff := targetCol - projectileCol
	if r.Clamped && diff < 0 {
		return false
	}
	return diff < r.Threshold
}
