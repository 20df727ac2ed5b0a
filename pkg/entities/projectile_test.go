package entities

import "testing"

// newTestProjectile 创建测试用子弹，创建失败直接终止测试
func newTestProjectile(t *testing.T, row int, col, creationTime float64, damage int, speed float64) *Projectile {
	t.Helper()
	p, err := NewProjectile(row, col, creationTime, damage, speed)
	if err != nil {
		t.Fatalf("NewProjectile failed: %v", err)
	}
	return p
}

// countingTarget 记录受击次数的目标
type countingTarget struct {
	row    int
	col    float64
	alive  bool
	hits   int
	damage int
}

func (c *countingTarget) IsAlive() bool { return c.alive }
func (c *countingTarget) Row() int { return c.row }
func (c *countingTarget) Col() float64 { return c.col }
func (c *countingTarget) TakeDamage(amount int) int {
	c.hits++
	c.damage += amount
	return amount
}

func TestNewProjectile_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		damage int
		speed  float64
	}{
		{"伤害为 0", 0, 1},
		{"伤害为负", -1, 1},
		{"速度为 0", 10, 0},
		{"速度为负", 10, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewProjectile(0, 0, 0, tt.damage, tt.speed); err == nil {
				t.Errorf("NewProjectile(damage=%d, speed=%v) should fail", tt.damage, tt.speed)
			}
		})
	}
}

func TestNewProjectile(t *testing.T) {
	p := newTestProjectile(t, 2, 5.0, 0, 10, 1.0)

	if p.Row() != 2 || p.Col() != 5.0 {
		t.Errorf("position = (%d, %f), want (2, 5.0)", p.Row(), p.Col())
	}
	if p.Damage() != 10 || p.Speed() != 1.0 {
		t.Errorf("damage=%d speed=%v, want 10/1.0", p.Damage(), p.Speed())
	}
	if p.HitStatus() {
		t.Error("new projectile should not have hit")
	}
	if p.ProximityRule() != DefaultProximityRule() {
		t.Errorf("ProximityRule() = %+v, want default", p.ProximityRule())
	}
}

// TestProjectileUpdate_HitScenario 子弹 (2, 5.0) 与僵尸 (2, 5.3) 相距 0.3 < 0.5，命中
func TestProjectileUpdate_HitScenario(t *testing.T) {
	p := newTestProjectile(t, 2, 5.0, 0, 10, 1.0)
	z := NewZombie(basicPreset(10), 2, 5.3, 0)

	hit := p.Update([]Target{z}, 1)

	if hit != Target(z) {
		t.Errorf("Update() returned %v, want the zombie", hit)
	}
	if z.Health() != 0 || z.IsAlive() {
		t.Errorf("zombie health=%d alive=%v, want 0/false", z.Health(), z.IsAlive())
	}
	if !p.HitStatus() {
		t.Error("projectile should have hit")
	}
	if p.Col() != 5.0 {
		t.Errorf("Col() = %f, want 5.0 (no movement on hit)", p.Col())
	}
}

// TestProjectileUpdate_MoveScenario 僵尸在 (2, 6.0)，距离 1.0 >= 0.5，子弹前进到 6.0
func TestProjectileUpdate_MoveScenario(t *testing.T) {
	p := newTestProjectile(t, 2, 5.0, 0, 10, 1.0)
	z := NewZombie(basicPreset(10), 2, 6.0, 0)

	if hit := p.Update([]Target{z}, 1); hit != nil {
		t.Errorf("Update() returned %v, want nil", hit)
	}
	if p.Col() != 6.0 {
		t.Errorf("Col() = %f, want 6.0", p.Col())
	}
	if p.HitStatus() {
		t.Error("projectile should not have hit")
	}
	if z.Health() != 10 {
		t.Errorf("zombie health = %d, want 10", z.Health())
	}
}

// TestProjectileMove_RateLimited 不足一个时间单位不移动，满一个时间单位前进 1/speed
func TestProjectileMove_RateLimited(t *testing.T) {
	p := newTestProjectile(t, 0, 1.0, 0, 10, 2.0)

	for _, now := range []float64{0, 0.2, 0.5, 0.99} {
		p.Update(nil, now)
		if p.Col() != 1.0 {
			t.Fatalf("t=%v: Col() = %f, want 1.0", now, p.Col())
		}
	}

	p.Update(nil, 1.0)
	if p.Col() != 1.5 {
		t.Fatalf("t=1.0: Col() = %f, want 1.5", p.Col())
	}
	if p.InternalTime() != 1.0 {
		t.Errorf("InternalTime() = %v, want 1.0", p.InternalTime())
	}

	// 计时从上次移动时刻重新开始
	p.Update(nil, 1.9)
	if p.Col() != 1.5 {
		t.Fatalf("t=1.9: Col() = %f, want 1.5", p.Col())
	}

	// 一次调用最多前进一步，即使经过了多个时间单位
	p.Update(nil, 4.5)
	if p.Col() != 2.0 {
		t.Fatalf("t=4.5: Col() = %f, want 2.0", p.Col())
	}
	if p.InternalTime() != 4.5 {
		t.Errorf("InternalTime() = %v, want 4.5", p.InternalTime())
	}
}

func TestProjectileMove_StartsFromCreationTime(t *testing.T) {
	p := newTestProjectile(t, 0, 0, 10, 1, 1.0)

	p.Move(10.5)
	if p.Col() != 0 {
		t.Errorf("Col() = %f, want 0 before a full unit since creation", p.Col())
	}
	p.Move(11)
	if p.Col() != 1 {
		t.Errorf("Col() = %f, want 1", p.Col())
	}
}

// TestProjectile_SingleHit 命中后位置和伤害冻结，不再造成伤害
func TestProjectile_SingleHit(t *testing.T) {
	p := newTestProjectile(t, 1, 3.0, 0, 10, 1.0)
	first := &countingTarget{row: 1, col: 3.2, alive: true}
	second := &countingTarget{row: 1, col: 3.1, alive: true}

	p.Hit(first)
	if !p.HitStatus() {
		t.Fatal("HitStatus() should be true after Hit")
	}

	p.Move(100)
	p.Hit(second)
	if hit := p.Update([]Target{second}, 200); hit != nil {
		t.Errorf("Update() after hit returned %v, want nil", hit)
	}

	if p.Col() != 3.0 {
		t.Errorf("Col() = %f, want 3.0", p.Col())
	}
	if p.Damage() != 10 {
		t.Errorf("Damage() = %d, want 10", p.Damage())
	}
	if first.hits != 1 || first.damage != 10 {
		t.Errorf("first target hits=%d damage=%d, want 1/10", first.hits, first.damage)
	}
	if second.hits != 0 {
		t.Errorf("second target should not be hit, got %d hits", second.hits)
	}
	if !p.HitStatus() {
		t.Error("HitStatus() should stay true")
	}
}

func TestProjectileHit_NilTarget(t *testing.T) {
	p := newTestProjectile(t, 0, 0, 0, 10, 1.0)
	p.Hit(nil)
	if p.HitStatus() {
		t.Error("Hit(nil) should not deactivate the projectile")
	}
}

// TestProjectileUpdate_TieBreak 多个目标同时满足条件时命中输入顺序中的第一个
func TestProjectileUpdate_TieBreak(t *testing.T) {
	p := newTestProjectile(t, 2, 5.0, 0, 10, 1.0)
	nearer := NewZombie(basicPreset(50), 2, 5.1, 0)
	farther := NewZombie(basicPreset(50), 2, 5.4, 0)

	hit := p.Update([]Target{farther, nearer}, 1)

	if hit != Target(farther) {
		t.Errorf("Update() hit %v, want the first candidate in input order", hit)
	}
	if farther.Health() != 40 {
		t.Errorf("first candidate health = %d, want 40", farther.Health())
	}
	if nearer.Health() != 50 {
		t.Errorf("second candidate health = %d, want 50 (unaffected)", nearer.Health())
	}
}

// TestProjectileUpdate_RowIsolation 其他行的僵尸不会被命中，也不影响移动
func TestProjectileUpdate_RowIsolation(t *testing.T) {
	p := newTestProjectile(t, 2, 5.0, 0, 10, 1.0)
	other := NewZombie(basicPreset(10), 3, 5.1, 0)

	if hit := p.Update([]Target{other}, 1); hit != nil {
		t.Errorf("Update() hit %v in another row", hit)
	}
	if other.Health() != 10 {
		t.Errorf("zombie in row 3 health = %d, want 10", other.Health())
	}
	if p.Col() != 6.0 {
		t.Errorf("Col() = %f, want 6.0 (movement unaffected)", p.Col())
	}
}

func TestProjectileUpdate_SkipsDeadTargets(t *testing.T) {
	p := newTestProjectile(t, 0, 5.0, 0, 10, 1.0)
	dead := &countingTarget{row: 0, col: 5.1, alive: false}
	alive := &countingTarget{row: 0, col: 5.2, alive: true}

	hit := p.Update([]Target{dead, nil, alive}, 0)

	if hit != Target(alive) {
		t.Errorf("Update() hit %v, want the live target", hit)
	}
	if dead.hits != 0 {
		t.Error("dead target should be skipped")
	}
}

func TestProjectileUpdate_EmptyTargetsMoves(t *testing.T) {
	p := newTestProjectile(t, 0, 0, 0, 10, 4.0)
	p.Update([]Target{}, 1)
	if p.Col() != 0.25 {
		t.Errorf("Col() = %f, want 0.25", p.Col())
	}
}

func TestProjectileUpdate_ThresholdBoundary(t *testing.T) {
	p := newTestProjectile(t, 0, 5.0, 0, 10, 1.0)
	edge := &countingTarget{row: 0, col: 5.5, alive: true}

	// 距离恰好等于阈值不算命中
	if hit := p.Update([]Target{edge}, 0); hit != nil {
		t.Errorf("target at exactly the threshold should not be hit")
	}

	same := &countingTarget{row: 0, col: 5.0, alive: true}
	if hit := p.Update([]Target{same}, 0); hit != Target(same) {
		t.Errorf("target at the same column should be hit")
	}
}

// TestProjectileUpdate_TargetBehind 身后的僵尸：两种判定模式的差异
func TestProjectileUpdate_TargetBehind(t *testing.T) {
	t.Run("clamped 模式不命中身后的僵尸", func(t *testing.T) {
		p := newTestProjectile(t, 0, 5.0, 0, 10, 1.0)
		behind := NewZombie(basicPreset(10), 0, 2.0, 0)

		if hit := p.Update([]Target{behind}, 1); hit != nil {
			t.Errorf("clamped rule hit a target behind the projectile")
		}
		if p.Col() != 6.0 {
			t.Errorf("Col() = %f, want 6.0", p.Col())
		}
		if behind.Health() != 10 {
			t.Errorf("behind zombie health = %d, want 10", behind.Health())
		}
	})

	t.Run("permissive 模式命中身后的僵尸", func(t *testing.T) {
		p := newTestProjectile(t, 0, 5.0, 0, 10, 1.0)
		p.SetProximityRule(ProximityRule{Threshold: DefaultProximityThreshold, Clamped: false})
		behind := NewZombie(basicPreset(10), 0, 2.0, 0)

		if hit := p.Update([]Target{behind}, 1); hit != Target(behind) {
			t.Errorf("permissive rule should hit a target behind the projectile")
		}
		if behind.IsAlive() {
			t.Error("behind zombie should be dead")
		}
		if p.Col() != 5.0 {
			t.Errorf("Col() = %f, want 5.0", p.Col())
		}
	})
}

func TestProjectileSetHitStatus(t *testing.T) {
	p := newTestProjectile(t, 0, 0, 0, 10, 1.0)
	target := &countingTarget{row: 0, col: 0.1, alive: true}

	p.SetHitStatus(true)
	if hit := p.Update([]Target{target}, 1); hit != nil || target.hits != 0 {
		t.Error("deactivated projectile should neither hit nor move")
	}
	if p.Col() != 0 {
		t.Errorf("Col() = %f, want 0", p.Col())
	}

	p.SetHitStatus(false)
	if hit := p.Update([]Target{target}, 1); hit != Target(target) {
		t.Error("reactivated projectile should hit")
	}
}

func TestProjectileExpired(t *testing.T) {
	p := newTestProjectile(t, 0, 9.5, 0, 10, 1.0)

	if p.Expired(10) {
		t.Error("projectile inside the lawn should not expire")
	}
	p.Move(1)
	if !p.Expired(10) {
		t.Error("projectile past maxCol should expire")
	}
	if p.Expired(0) {
		t.Error("maxCol 0 disables expiry")
	}

	p.SetHitStatus(true)
	if p.Expired(10) {
		t.Error("deactivated projectile is removed by hit status, not expiry")
	}
}
