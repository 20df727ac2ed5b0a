package entities

import (
	"fmt"

	"github.com/decker502/pvzcore/pkg/components"
)

// Target 子弹可以命中的目标
// Zombie 实现了该接口，其他防守单位也可以接入
type Target interface {
	IsAlive() bool
	Row() int
	Col() float64
	TakeDamage(amount int) int
}

// Projectile 植物发射的子弹
//
// 状态机: 飞行中 -> 命中（同一 tick 内）-> 失效（终态）
//
// 状态约束:
//   - 行在整个生命周期内不变
//   - hasHit 为 true 后位置和伤害冻结，不再移动也不再造成伤害
//   - 每经过至少一个完整时间单位才前进一次，前进距离固定为 1/speed 列
type Projectile struct {
	components.GameElement

	damage    int
	speed     float64
	hasHit    bool
	proximity ProximityRule
}

// NewProjectile 创建子弹
//
// 参数:
//   - row: 所在行
//   - col: 初始列
//   - creationTime: 创建时间，同时作为第一次移动的计时起点
//   - damage: 命中伤害，必须为正
//   - speed: 速度，必须为正
func NewProjectile(row int, col, creationTime float64, damage int, speed float64) (*Projectile, error) {
	if damage <= 0 {
		return nil, fmt.Errorf("projectile damage must be positive, got %d", damage)
	}
	if speed <= 0 {
		return nil, fmt.Errorf("projectile speed must be positive, got %v", speed)
	}

	return &Projectile{
		GameElement: components.NewGameElement(row, col, creationTime),
		damage:      damage,
		speed:       speed,
		proximity:   DefaultProximityRule(),
	}, nil
}

// Hit 对目标造成伤害并使子弹失效
// 已失效的子弹再次调用不产生任何效果
func (p *Projectile) Hit(target Target) {
	if p.hasHit || target == nil {
		return
	}
	target.TakeDamage(p.damage)
	p.hasHit = true
}

// Move 按时间门控前进
// 距上次更新至少经过一个完整时间单位时前进 1/speed 列并记录当前时间，否则不动。
// 命中后位置冻结。
func (p *Projectile) Move(currentTime float64) {
	if p.hasHit {
		return
	}
	if currentTime-p.InternalTime() >= 1 {
		p.SetCol(p.Col() + 1/p.speed)
		p.SetInternalTime(currentTime)
	}
}

// Update 每个 tick 的入口
//
// 按给定顺序扫描目标，跳过已死亡或不在同一行的目标；
// 第一个落在命中范围内的目标被命中，并停止扫描（每个 tick 最多命中一个目标）。
// 没有目标命中时前进。
//
// 返回被命中的目标，未命中返回 nil。
func (p *Projectile) Update(targets []Target, currentTime float64) Target {
	if p.hasHit {
		return nil
	}

	for _, target := range targets {
		if target == nil || !target.IsAlive() || target.Row() != p.Row() {
			continue
		}
		if p.proximity.InRange(p.Col(), target.Col()) {
			p.Hit(target)
			return target
		}
	}

	p.Move(currentTime)
	return nil
}

// Damage 返回命中伤害
func (p *Projectile) Damage() int { return p.damage }

// Speed 返回速度
func (p *Projectile) Speed() float64 { return p.speed }

// HitStatus 返回是否已命中
func (p *Projectile) HitStatus() bool { return p.hasHit }

// SetHitStatus 设置命中状态，仅用于外部修正和测试
func (p *Projectile) SetHitStatus(hit bool) { p.hasHit = hit }

// ProximityRule 返回命中判定规则
func (p *Projectile) ProximityRule() ProximityRule { return p.proximity }

// SetProximityRule 设置命中判定规则
func (p *Projectile) SetProximityRule(rule ProximityRule) { p.proximity = rule }

// Expired 仍在飞行的子弹是否已越过 maxCol（飞出草坪）
// maxCol <= 0 表示不限制
func (p *Projectile) Expired(maxCol float64) bool {
	return !p.hasHit && maxCol > 0 && p.Col() > maxCol
}
