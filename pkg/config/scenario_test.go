package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScenario(t *testing.T) {
	content := `
ticks: 12
step: 0.5
zombies:
  - type: buckethead
    row: 1
    col: 8
projectiles:
  - type: pea
    row: 1
    col: 0
    time: 2
`
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test scenario: %v", err)
	}

	scenario, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	if scenario.Ticks != 12 || scenario.Step != 0.5 {
		t.Errorf("ticks=%d step=%v, want 12/0.5", scenario.Ticks, scenario.Step)
	}
	if len(scenario.Zombies) != 1 || scenario.Zombies[0] != (SpawnEntry{Type: "buckethead", Row: 1, Col: 8}) {
		t.Errorf("unexpected zombies: %+v", scenario.Zombies)
	}
	if len(scenario.Projectiles) != 1 || scenario.Projectiles[0].Time != 2 {
		t.Errorf("unexpected projectiles: %+v", scenario.Projectiles)
	}
}

func TestParseScenarioDefaultStep(t *testing.T) {
	scenario, err := ParseScenario([]byte("ticks: 3\n"), "test")
	if err != nil {
		t.Fatalf("ParseScenario failed: %v", err)
	}
	if scenario.Step != 1 {
		t.Errorf("Step = %v, want 1", scenario.Step)
	}
}

func TestValidateScenario(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"ticks 为 0", "ticks: 0\n"},
		{"step 为负", "ticks: 1\nstep: -1\n"},
		{"僵尸缺少类型", "ticks: 1\nzombies:\n  - row: 0\n"},
		{"僵尸行为负", "ticks: 1\nzombies:\n  - type: basic\n    row: -1\n"},
		{"子弹缺少类型", "ticks: 1\nprojectiles:\n  - row: 0\n"},
		{"子弹行为负", "ticks: 1\nprojectiles:\n  - type: pea\n    row: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScenario([]byte(tt.content), tt.name); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
