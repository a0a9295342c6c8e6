package components

import (
	"math"
	"testing"

	"github.com/decker502/cryptowolf/pkg/config"
)

func TestNewFallingEntity_SpawnsAboveField(t *testing.T) {
	for _, kind := range AllKinds() {
		e := NewFallingEntity(kind, 100, 1.5)
		want := -2 * kind.Attributes().Radius
		if e.Y != want {
			t.Errorf("%s: spawn Y = %v, want %v", kind, e.Y, want)
		}
		if e.Radius != kind.Attributes().Radius {
			t.Errorf("%s: radius = %v, want %v", kind, e.Radius, kind.Attributes().Radius)
		}
	}
}

// TestAdvance_Kinematics y = -2r + N*speed（slowFactor=1）
func TestAdvance_Kinematics(t *testing.T) {
	e := NewFallingEntity(KindCoin, 100, 2.5)
	const n = 37
	for i := 0; i < n; i++ {
		e.Advance(1)
	}
	want := -2*e.Radius + n*2.5
	if math.Abs(e.Y-want) > 1e-9 {
		t.Errorf("Y after %d ticks = %v, want %v", n, e.Y, want)
	}

	slow := NewFallingEntity(KindCoin, 100, 2)
	slow.Advance(config.SlowTimeFactor)
	if slow.Y != -2*slow.Radius+1 {
		t.Errorf("slowed advance: Y = %v, want %v", slow.Y, -2*slow.Radius+1)
	}
}

// TestIsOffscreen_ExactTrigger 仅当 y - radius > H 时离开画布
func TestIsOffscreen_ExactTrigger(t *testing.T) {
	const h = config.GameWindowHeight
	e := NewFallingEntity(KindCoin, 100, 1)

	e.Y = h + e.Radius
	if e.IsOffscreen(h) {
		t.Error("y - radius == H should still be on screen")
	}

	e.Advance(1)
	if !e.IsOffscreen(h) {
		t.Error("y - radius > H should be offscreen")
	}

	// 逐 tick 下落，第一次触发的 tick 必须满足不等式
	f := NewFallingEntity(KindGoldenCoin, 100, 1.5)
	ticks := 0
	for !f.IsOffscreen(h) {
		f.Advance(1)
		ticks++
	}
	prevY := f.Y - 1.5
	if !(f.Y-f.Radius > h) || prevY-f.Radius > h {
		t.Errorf("offscreen triggered at wrong tick %d (y=%v)", ticks, f.Y)
	}
}

func TestCollidesWith_PointInBand(t *testing.T) {
	c := NewCatcher(config.DefaultLayout())
	c.X = 100 // 覆盖 [100, 148]

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"左边缘", 100, c.Y - 8, true},
		{"右边缘", 148, c.Y - 8, true},
		{"左侧外", 99.9, c.Y, false},
		{"右侧外", 148.1, c.Y, false},
		{"尚未到达", 120, c.Y - 8.1, false},
		{"已经穿过仍算接住", 120, c.Y + 40, true},
		// 圆与矩形几何相交但圆心不在带内：不算
		{"圆边重叠但圆心在外", 95, c.Y, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewFallingEntity(KindCoin, tt.x, 1)
			e.Y = tt.y
			if got := e.CollidesWith(c); got != tt.want {
				t.Errorf("CollidesWith at (%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestKindAttributes(t *testing.T) {
	if KindHazard.Attributes().SpeedFactor != 1.2 {
		t.Error("hazard should fall 1.2x faster")
	}
	if KindGoldenCoin.Attributes().SpeedFactor != 0.9 || KindGoldenCoin.Attributes().Radius != 10 {
		t.Error("golden coin attributes mismatch")
	}
	if KindSlowTimeBonus.Attributes().Shape != ShapeSquare || KindMagnetBonus.Attributes().Shape != ShapeSquare {
		t.Error("bonuses should be drawn as squares")
	}
	if !KindCoin.IsToken() || !KindGoldenCoin.IsToken() || KindHazard.IsToken() {
		t.Error("IsToken mismatch")
	}
	if !KindMagnetBonus.IsBonus() || KindCoin.IsBonus() {
		t.Error("IsBonus mismatch")
	}
	if EntityKind(99).String() != "unknown" {
		t.Error("unknown kind should stringify as unknown")
	}
}
