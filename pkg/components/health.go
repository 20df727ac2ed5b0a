package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸等可被攻击的实体
type HealthComponent struct {
	CurrentHealth int // 当前生命值，始终 >= 0
	MaxHealth     int // 最大生命值
}

// Apply 扣除生命值并返回实际扣除量
// 生命值最低为 0；非正数伤害不做任何处理（不会回血）
func (h *HealthComponent) Apply(damage int) int {
	if damage <= 0 || h.CurrentHealth <= 0 {
		return 0
	}
	if damage > h.CurrentHealth {
		damage = h.CurrentHealth
	}
	h.CurrentHealth -= damage
	return damage
}
