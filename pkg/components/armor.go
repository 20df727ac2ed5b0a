package components

// ArmorComponent 存储实体的护甲信息
// 用于路障僵尸、铁桶僵尸等拥有额外防护层的单位
//
// 设计说明:
// - 当实体同时拥有 HealthComponent 和 ArmorComponent 时,伤害优先扣除护甲
// - 当 CurrentArmor <= 0 时,护甲层被破坏,开始扣除生命值
type ArmorComponent struct {
	CurrentArmor int // 当前护甲值
	MaxArmor     int // 最大护甲值
}

// Absorb 用护甲吸收伤害，返回护甲吸收量和剩余伤害
func (a *ArmorComponent) Absorb(damage int) (absorbed, remaining int) {
	if damage <= 0 {
		return 0, 0
	}
	if a.CurrentArmor <= 0 {
		return 0, damage
	}
	absorbed = damage
	if absorbed > a.CurrentArmor {
		absorbed = a.CurrentArmor
	}
	a.CurrentArmor -= absorbed
	return absorbed, damage - absorbed
}

// Broken 判断护甲是否已被打掉
func (a *ArmorComponent) Broken() bool {
	return a.MaxArmor > 0 && a.CurrentArmor <= 0
}
