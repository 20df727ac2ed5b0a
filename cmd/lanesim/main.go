package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/decker502/pvzcore/pkg/config"
	"github.com/decker502/pvzcore/pkg/systems"
)

var (
	// 命令行参数
	scenarioPath = flag.String("scenario", "cmd/lanesim/testdata/buckethead_lane.yaml", "战斗场景文件路径")
	variantsPath = flag.String("variants", "", "僵尸变体表文件路径（为空时使用内嵌配置）")
	combatPath   = flag.String("combat", "", "战斗规则文件路径（为空时使用内嵌配置）")
	verbose      = flag.Bool("verbose", false, "显示每次命中的详细日志")
)

func main() {
	flag.Parse()

	variants, err := loadVariants(*variantsPath)
	if err != nil {
		log.Fatalf("[lanesim] 加载僵尸变体表失败: %v", err)
	}

	combatCfg, err := loadCombatConfig(*combatPath)
	if err != nil {
		log.Fatalf("[lanesim] 加载战斗规则失败: %v", err)
	}

	scenario, err := config.LoadScenario(*scenarioPath)
	if err != nil {
		log.Fatalf("[lanesim] 加载场景失败: %v", err)
	}

	runner, err := systems.NewScenarioRunner(scenario, variants, combatCfg)
	if err != nil {
		log.Fatalf("[lanesim] 创建场景运行器失败: %v", err)
	}
	runner.CombatSystem().Verbose = *verbose

	stats, err := runner.Run()
	if err != nil {
		log.Fatalf("[lanesim] 场景运行失败: %v", err)
	}

	fmt.Printf("ticks=%d projectiles=%d zombies=%d hits=%d kills=%d damage=%d expired=%d\n",
		runner.TicksRun(), stats.ProjectilesAdded, stats.ZombiesAdded,
		stats.Hits, stats.Kills, stats.DamageDealt, stats.Expired)

	for _, z := range runner.CombatSystem().Zombies() {
		fmt.Printf("  %s row=%d col=%.2f health=%d armor=%d\n",
			z.Type(), z.Row(), z.Col(), z.Health(), z.Armor())
	}
}

// loadVariants 加载僵尸变体表，未指定路径时使用内嵌配置
func loadVariants(path string) (*config.ZombieVariantConfig, error) {
	if path == "" {
		return config.DefaultZombieVariants()
	}
	return config.LoadZombieVariants(path)
}

// loadCombatConfig 加载战斗规则，未指定路径时使用内嵌配置
func loadCombatConfig(path string) (*config.CombatConfig, error) {
	if path == "" {
		return config.DefaultCombatConfig()
	}
	return config.LoadCombatConfig(path)
}
