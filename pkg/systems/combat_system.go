package systems

import (
	"log"

	"github.com/decker502/pvzcore/pkg/config"
	"github.com/decker502/pvzcore/pkg/ecs"
	"github.com/decker502/pvzcore/pkg/entities"
)

// CombatStats 战斗统计
type CombatStats struct {
	ProjectilesAdded int // 登记的子弹数
	ZombiesAdded     int // 登记的僵尸数
	Hits             int // 命中次数
	Kills            int // 击杀数
	DamageDealt      int // 命中子弹的伤害总和（修正前）
	Expired          int // 飞出草坪的子弹数
}

// CombatSystem 战斗结算系统
// 每个 tick 驱动所有子弹的 Update，然后清理已失效的子弹和已死亡的僵尸
//
// 设计说明:
// - 单线程同步执行，不需要加锁
// - 子弹按登记顺序更新，僵尸按登记顺序交给子弹扫描（先到先命中）
// - 只把同一行的存活僵尸交给子弹，结果与传入全部僵尸一致
type CombatSystem struct {
	zombies     *ecs.EntityManager[*entities.Zombie]
	projectiles *ecs.EntityManager[*entities.Projectile]
	maxColumn   float64 // 子弹越过该列视为飞出草坪，0 表示不限制

	stats        CombatStats
	lastTime     float64
	hasTicked    bool
	targetsByRow map[int][]entities.Target // 每个 tick 复用的分行目标列表

	// Verbose 为 true 时输出每次命中的日志
	Verbose bool
}

// NewCombatSystem 创建战斗结算系统
//
// 参数:
//   - maxColumn: 子弹越过该列后被移除，0 表示不限制
func NewCombatSystem(maxColumn float64) *CombatSystem {
	return &CombatSystem{
		zombies:      ecs.NewEntityManager[*entities.Zombie](),
		projectiles:  ecs.NewEntityManager[*entities.Projectile](),
		maxColumn:    maxColumn,
		targetsByRow: make(map[int][]entities.Target),
	}
}

// NewCombatSystemFromConfig 根据战斗规则配置创建战斗结算系统
func NewCombatSystemFromConfig(cfg *config.CombatConfig) *CombatSystem {
	if cfg == nil {
		return NewCombatSystem(0)
	}
	return NewCombatSystem(cfg.MaxColumn)
}

// AddZombie 登记僵尸
func (s *CombatSystem) AddZombie(z *entities.Zombie) ecs.EntityID {
	s.stats.ZombiesAdded++
	return s.zombies.CreateEntity(z)
}

// AddProjectile 登记子弹
func (s *CombatSystem) AddProjectile(p *entities.Projectile) ecs.EntityID {
	s.stats.ProjectilesAdded++
	return s.projectiles.CreateEntity(p)
}

// Zombies 按登记顺序返回场上的僵尸
func (s *CombatSystem) Zombies() []*entities.Zombie {
	return s.zombies.Entities()
}

// Projectiles 按登记顺序返回场上的子弹
func (s *CombatSystem) Projectiles() []*entities.Projectile {
	return s.projectiles.Entities()
}

// Stats 返回战斗统计
func (s *CombatSystem) Stats() CombatStats {
	return s.stats
}

// Idle 场上没有子弹时返回 true
func (s *CombatSystem) Idle() bool {
	return s.projectiles.Len() == 0
}

// Update 执行一个 tick
//
// 参数:
//   - currentTime: 当前时间，要求单调不减
func (s *CombatSystem) Update(currentTime float64) {
	if s.hasTicked && currentTime < s.lastTime {
		log.Printf("[CombatSystem] 警告：时间倒退 %.3f -> %.3f，子弹不会移动", s.lastTime, currentTime)
	}
	s.lastTime = currentTime
	s.hasTicked = true

	s.collectTargets()

	s.projectiles.Each(func(id ecs.EntityID, p *entities.Projectile) bool {
		// 外部已将命中状态置为 true 的子弹直接清理
		if p.HitStatus() {
			s.projectiles.DestroyEntity(id)
			return true
		}

		hit := p.Update(s.targetsByRow[p.Row()], currentTime)
		if hit != nil {
			s.recordHit(id, p, hit)
			s.projectiles.DestroyEntity(id)
			return true
		}

		if p.Expired(s.maxColumn) {
			s.stats.Expired++
			if s.Verbose {
				log.Printf("[CombatSystem] 子弹 %d 飞出草坪 (行 %d, 列 %.2f)，标记删除", id, p.Row(), p.Col())
			}
			s.projectiles.DestroyEntity(id)
		}
		return true
	})

	s.zombies.Each(func(id ecs.EntityID, z *entities.Zombie) bool {
		if !z.IsAlive() {
			s.zombies.DestroyEntity(id)
		}
		return true
	})

	s.projectiles.RemoveMarkedEntities()
	s.zombies.RemoveMarkedEntities()
}

// collectTargets 按行收集存活僵尸，保持登记顺序
func (s *CombatSystem) collectTargets() {
	for row := range s.targetsByRow {
		s.targetsByRow[row] = s.targetsByRow[row][:0]
	}
	s.zombies.Each(func(_ ecs.EntityID, z *entities.Zombie) bool {
		if z.IsAlive() {
			s.targetsByRow[z.Row()] = append(s.targetsByRow[z.Row()], z)
		}
		return true
	})
}

// recordHit 统计一次命中
func (s *CombatSystem) recordHit(id ecs.EntityID, p *entities.Projectile, hit entities.Target) {
	s.stats.Hits++
	s.stats.DamageDealt += p.Damage()

	if s.Verbose {
		log.Printf("[CombatSystem] 子弹 %d 命中目标 (行 %d, 列 %.2f)，伤害 %d",
			id, hit.Row(), hit.Col(), p.Damage())
	}

	if !hit.IsAlive() {
		s.stats.Kills++
		log.Printf("[CombatSystem] 僵尸被消灭 (行 %d, 列 %.2f)，累计击杀 %d", hit.Row(), hit.Col(), s.stats.Kills)
	}
}
