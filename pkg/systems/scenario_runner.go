package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/decker502/pvzcore/pkg/config"
	"github.com/decker502/pvzcore/pkg/entities"
)

// ScenarioRunner 按场景文件生成实体并驱动 CombatSystem
// 用于命令行工具和回归测试，扮演外部生成器和主循环的角色
type ScenarioRunner struct {
	combat    *CombatSystem
	variants  *config.ZombieVariantConfig
	combatCfg *config.CombatConfig
	scenario  *config.Scenario

	pendingZombies     []config.SpawnEntry // 按生成时间排序
	pendingProjectiles []config.SpawnEntry // 按生成时间排序
	ticksRun           int
}

// NewScenarioRunner 创建场景运行器
// 场景中出现的所有类型在创建时即校验，运行过程中不会因为未知类型中断
func NewScenarioRunner(scenario *config.Scenario, variants *config.ZombieVariantConfig, combatCfg *config.CombatConfig) (*ScenarioRunner, error) {
	if scenario == nil || variants == nil || combatCfg == nil {
		return nil, fmt.Errorf("scenario, zombie variants and combat config are required")
	}

	for i, z := range scenario.Zombies {
		if _, err := entities.NewZombieByName(variants, z.Type, z.Row, z.Col, z.Time); err != nil {
			return nil, fmt.Errorf("zombie #%d: %w", i, err)
		}
	}
	for i, p := range scenario.Projectiles {
		if _, ok := combatCfg.GetProjectile(p.Type); !ok {
			return nil, fmt.Errorf("projectile #%d: unknown projectile type %q", i, p.Type)
		}
	}

	r := &ScenarioRunner{
		combat:             NewCombatSystemFromConfig(combatCfg),
		variants:           variants,
		combatCfg:          combatCfg,
		scenario:           scenario,
		pendingZombies:     sortedByTime(scenario.Zombies),
		pendingProjectiles: sortedByTime(scenario.Projectiles),
	}
	return r, nil
}

// sortedByTime 复制并按生成时间排序，同一时间保持文件中的顺序
func sortedByTime(entries []config.SpawnEntry) []config.SpawnEntry {
	sorted := make([]config.SpawnEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// CombatSystem 返回内部的战斗结算系统
func (r *ScenarioRunner) CombatSystem() *CombatSystem {
	return r.combat
}

// TicksRun 返回已执行的 tick 数
func (r *ScenarioRunner) TicksRun() int {
	return r.ticksRun
}

// Run 运行场景直到达到 tick 上限，或者没有待生成实体且场上没有子弹
func (r *ScenarioRunner) Run() (CombatStats, error) {
	for tick := 0; tick < r.scenario.Ticks; tick++ {
		now := float64(tick) * r.scenario.Step

		if err := r.spawnDue(now); err != nil {
			return r.combat.Stats(), err
		}

		r.combat.Update(now)
		r.ticksRun++

		if len(r.pendingZombies) == 0 && len(r.pendingProjectiles) == 0 && r.combat.Idle() {
			break
		}
	}

	stats := r.combat.Stats()
	log.Printf("[ScenarioRunner] 运行 %d 个 tick：命中 %d，击杀 %d，飞出 %d，剩余僵尸 %d",
		r.ticksRun, stats.Hits, stats.Kills, stats.Expired, len(r.combat.Zombies()))
	return stats, nil
}

// spawnDue 生成所有到期的僵尸和子弹
func (r *ScenarioRunner) spawnDue(now float64) error {
	for len(r.pendingZombies) > 0 && r.pendingZombies[0].Time <= now {
		entry := r.pendingZombies[0]
		r.pendingZombies = r.pendingZombies[1:]

		z, err := entities.NewZombieByName(r.variants, entry.Type, entry.Row, entry.Col, entry.Time)
		if err != nil {
			return fmt.Errorf("failed to spawn zombie %q: %w", entry.Type, err)
		}
		r.combat.AddZombie(z)
	}

	for len(r.pendingProjectiles) > 0 && r.pendingProjectiles[0].Time <= now {
		entry := r.pendingProjectiles[0]
		r.pendingProjectiles = r.pendingProjectiles[1:]

		p, err := entities.NewProjectileFromPreset(r.combatCfg, entry.Type, entry.Row, entry.Col, entry.Time)
		if err != nil {
			return fmt.Errorf("failed to spawn projectile %q: %w", entry.Type, err)
		}
		r.combat.AddProjectile(p)
	}

	return nil
}
