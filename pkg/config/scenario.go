package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnEntry 场景中的一次生成
type SpawnEntry struct {
	Type string  `yaml:"type"` // 僵尸变体名或子弹类型名
	Row  int     `yaml:"row"`  // 所在行
	Col  float64 `yaml:"col"`  // 生成列
	Time float64 `yaml:"time"` // 生成时间
}

// Scenario 战斗场景：按时间生成僵尸和子弹，固定步长推进
type Scenario struct {
	Ticks       int          `yaml:"ticks"`       // 最多推进的 tick 数
	Step        float64      `yaml:"step"`        // 每个 tick 推进的时间
	Zombies     []SpawnEntry `yaml:"zombies"`     // 僵尸生成列表
	Projectiles []SpawnEntry `yaml:"projectiles"` // 子弹生成列表
}

// LoadScenario 从 YAML 文件加载战斗场景
func LoadScenario(filepath string) (*Scenario, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", filepath, err)
	}
	return ParseScenario(data, filepath)
}

// ParseScenario 解析 YAML 格式的战斗场景
// step 未填写时默认为 1
func ParseScenario(data []byte, source string) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML from %s: %w", source, err)
	}

	if scenario.Step == 0 {
		scenario.Step = 1
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario in %s: %w", source, err)
	}

	return &scenario, nil
}

// validateScenario 验证战斗场景的合法性
func validateScenario(scenario *Scenario) error {
	if scenario.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", scenario.Ticks)
	}
	if scenario.Step < 0 {
		return fmt.Errorf("step cannot be negative, got %v", scenario.Step)
	}

	for i, z := range scenario.Zombies {
		if z.Type == "" {
			return fmt.Errorf("zombie #%d: type is required", i)
		}
		if z.Row < 0 {
			return fmt.Errorf("zombie #%d: row cannot be negative, got %d", i, z.Row)
		}
	}

	for i, p := range scenario.Projectiles {
		if p.Type == "" {
			return fmt.Errorf("projectile #%d: type is required", i)
		}
		if p.Row < 0 {
			return fmt.Errorf("projectile #%d: row cannot be negative, got %d", i, p.Row)
		}
	}

	return nil
}
