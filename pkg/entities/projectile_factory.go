package entities

import (
	"fmt"

	"github.com/decker502/pvzcore/pkg/config"
)

// NewProjectileFromPreset 根据战斗规则中的子弹预设创建子弹
// 子弹的命中判定规则同样取自配置
//
// 参数:
//   - cfg: 战斗规则配置
//   - name: 子弹类型名，如 "pea"
//   - row: 所在行
//   - col: 发射列
//   - creationTime: 发射时间
func NewProjectileFromPreset(cfg *config.CombatConfig, name string, row int, col, creationTime float64) (*Projectile, error) {
	if cfg == nil {
		return nil, fmt.Errorf("combat config cannot be nil")
	}

	stats, ok := cfg.GetProjectile(name)
	if !ok {
		return nil, fmt.Errorf("unknown projectile type %q", name)
	}

	projectile, err := NewProjectile(row, col, creationTime, stats.Damage, stats.Speed)
	if err != nil {
		return nil, fmt.Errorf("failed to create projectile %q: %w", name, err)
	}
	projectile.SetProximityRule(ProximityRuleFromConfig(cfg))

	return projectile, nil
}
