package components

// Item 僵尸携带的饰品（路障、铁桶等）
// 构造后不可修改，只提供只读访问
//
// 字段含义:
//   - attackModifier: 叠加到僵尸啃食伤害上的修正值
//   - defenseModifier: 叠加到每次受到伤害上的修正值（负值表示减伤）
//   - threshold: 饰品自身的耐久，受伤时先扣除耐久再扣除生命值
//
// 零值表示"无饰品"
type Item struct {
	name            string
	attackModifier  int
	defenseModifier int
	threshold       int
}

// NewItem 创建饰品
func NewItem(name string, attackModifier, defenseModifier, threshold int) Item {
	return Item{
		name:            name,
		attackModifier:  attackModifier,
		defenseModifier: defenseModifier,
		threshold:       threshold,
	}
}

// Name 返回饰品名称
func (i Item) Name() string { return i.name }

// AttackModifier 返回攻击修正值
func (i Item) AttackModifier() int { return i.attackModifier }

// DefenseModifier 返回防御修正值
func (i Item) DefenseModifier() int { return i.defenseModifier }

// Threshold 返回饰品耐久
func (i Item) Threshold() int { return i.threshold }

// IsZero 判断是否为"无饰品"
func (i Item) IsZero() bool { return i == Item{} }
