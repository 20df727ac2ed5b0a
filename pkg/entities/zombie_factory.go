package entities

import (
	"fmt"

	"github.com/decker502/pvzcore/pkg/components"
	"github.com/decker502/pvzcore/pkg/config"
	"github.com/decker502/pvzcore/pkg/types"
)

// PresetFromVariant 将配置中的变体预设转换为 ZombiePreset
func PresetFromVariant(zombieType types.ZombieType, variant config.ZombieVariant) ZombiePreset {
	preset := ZombiePreset{
		Type:   zombieType,
		Health: variant.BaseHealth,
		Attack: variant.BaseAttack,
	}
	if variant.Item != nil {
		preset.Item = components.NewItem(
			variant.Item.Name,
			variant.Item.AttackModifier,
			variant.Item.DefenseModifier,
			variant.Item.Threshold,
		)
	}
	return preset
}

// NewZombieOfType 根据变体表创建指定类型的僵尸
//
// 参数:
//   - table: 僵尸变体表
//   - zombieType: 僵尸类型
//   - row: 所在行
//   - col: 生成列
//   - creationTime: 创建时间
//
// 返回:
//   - *Zombie: 创建的僵尸
//   - error: 变体表为空或缺少该类型时返回错误
func NewZombieOfType(table *config.ZombieVariantConfig, zombieType types.ZombieType, row int, col, creationTime float64) (*Zombie, error) {
	if table == nil {
		return nil, fmt.Errorf("zombie variant table cannot be nil")
	}

	variant, ok := table.GetVariant(zombieType.String())
	if !ok {
		return nil, fmt.Errorf("unknown zombie variant %q", zombieType.String())
	}

	return NewZombie(PresetFromVariant(zombieType, *variant), row, col, creationTime), nil
}

// NewZombieByName 根据变体名（支持历史别名）创建僵尸
func NewZombieByName(table *config.ZombieVariantConfig, name string, row int, col, creationTime float64) (*Zombie, error) {
	zombieType := types.ZombieTypeFromString(name)
	if zombieType == types.ZombieUnknown {
		return nil, fmt.Errorf("unknown zombie variant %q", name)
	}
	return NewZombieOfType(table, zombieType, row, col, creationTime)
}
