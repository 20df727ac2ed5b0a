package types

import "testing"

func TestZombieTypeRoundTrip(t *testing.T) {
	for _, zt := range []ZombieType{ZombieBasic, ZombieConehead, ZombieBuckethead, ZombieFlag} {
		if got := ZombieTypeFromString(zt.String()); got != zt {
			t.Errorf("ZombieTypeFromString(%q) = %v, want %v", zt.String(), got, zt)
		}
	}
}

func TestZombieTypeFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ZombieType
	}{
		{"标准名称", "buckethead", ZombieBuckethead},
		{"历史别名", "bucketheadzombie", ZombieBuckethead},
		{"未知名称", "gargantuar", ZombieUnknown},
		{"空字符串", "", ZombieUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ZombieTypeFromString(tt.input); got != tt.want {
				t.Errorf("ZombieTypeFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnknownZombieTypeString(t *testing.T) {
	if got := ZombieUnknown.String(); got != "unknown" {
		t.Errorf("ZombieUnknown.String() = %q, want %q", got, "unknown")
	}
}

func TestHasAccessory(t *testing.T) {
	if ZombieBasic.HasAccessory() {
		t.Error("basic zombie should not carry an accessory")
	}
	if !ZombieBuckethead.HasAccessory() {
		t.Error("buckethead zombie should carry an accessory")
	}
}
