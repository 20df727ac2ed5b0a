package entities

import (
	"github.com/decker502/pvzcore/pkg/components"
	"github.com/decker502/pvzcore/pkg/types"
)

// ZombiePreset 构造僵尸所需的变体数据
// 不同变体（普通、路障、铁桶）只在预设上不同，共用同一个 Zombie 实现
type ZombiePreset struct {
	Type   types.ZombieType
	Health int
	Attack int
	Item   components.Item
}

// Zombie 防守方单位
//
// 状态约束:
//   - 每次受到伤害后 alive == (health > 0)
//   - 生命值降到 0 后进入终态，不再受到任何伤害
//   - 饰品耐久（Item.Threshold）作为护甲先于生命值扣除
type Zombie struct {
	components.GameElement

	zombieType types.ZombieType
	health     components.HealthComponent
	armor      components.ArmorComponent
	item       components.Item
	baseAttack int
	alive      bool
}

// NewZombie 根据变体预设创建僵尸
func NewZombie(preset ZombiePreset, row int, col, creationTime float64) *Zombie {
	health := preset.Health
	if health < 0 {
		health = 0
	}
	threshold := preset.Item.Threshold()
	if threshold < 0 {
		threshold = 0
	}

	return &Zombie{
		GameElement: components.NewGameElement(row, col, creationTime),
		zombieType:  preset.Type,
		health:      components.HealthComponent{CurrentHealth: health, MaxHealth: health},
		armor:       components.ArmorComponent{CurrentArmor: threshold, MaxArmor: threshold},
		item:        preset.Item,
		baseAttack:  preset.Attack,
		alive:       health > 0,
	}
}

// TakeDamage 受到伤害，返回护甲与生命值实际扣除的总量
//
// 结算顺序:
//  1. 非正数伤害或已死亡：不做任何处理
//  2. 饰品完好时叠加防御修正，修正后伤害至少为 1
//  3. 先扣饰品耐久，剩余伤害扣生命值，生命值最低为 0
func (z *Zombie) TakeDamage(amount int) int {
	if amount <= 0 || !z.alive {
		return 0
	}

	effective := amount
	if z.itemIntact() {
		effective += z.item.DefenseModifier()
		if effective < 1 {
			effective = 1
		}
	}

	absorbed, remaining := z.armor.Absorb(effective)
	dealt := absorbed + z.health.Apply(remaining)
	z.alive = z.health.CurrentHealth > 0
	return dealt
}

// itemIntact 饰品仍然生效：存在且耐久未被打光
func (z *Zombie) itemIntact() bool {
	return !z.item.IsZero() && !z.armor.Broken()
}

// IsAlive 返回僵尸是否仍可被攻击
func (z *Zombie) IsAlive() bool { return z.alive }

// Health 返回当前生命值
func (z *Zombie) Health() int { return z.health.CurrentHealth }

// MaxHealth 返回最大生命值
func (z *Zombie) MaxHealth() int { return z.health.MaxHealth }

// Armor 返回饰品剩余耐久
func (z *Zombie) Armor() int { return z.armor.CurrentArmor }

// ArmorLost 饰品是否已被打掉
func (z *Zombie) ArmorLost() bool { return z.armor.Broken() }

// Item 返回携带的饰品
func (z *Zombie) Item() components.Item { return z.item }

// Type 返回僵尸变体类型
func (z *Zombie) Type() types.ZombieType { return z.zombieType }

// AttackDamage 返回啃食伤害，饰品完好时叠加攻击修正，最低为 0
func (z *Zombie) AttackDamage() int {
	attack := z.baseAttack
	if z.itemIntact() {
		attack += z.item.AttackModifier()
	}
	if attack < 0 {
		return 0
	}
	return attack
}
