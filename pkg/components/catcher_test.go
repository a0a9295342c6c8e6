package components

import (
	"testing"

	"github.com/decker502/cryptowolf/pkg/config"
)

func TestNewCatcher_Centered(t *testing.T) {
	layout := config.DefaultLayout()
	c := NewCatcher(layout)

	if c.X != layout.Width/2-layout.CatcherBaseWidth/2 {
		t.Errorf("initial X = %v, want centered", c.X)
	}
	if c.Y != layout.Height-layout.CatcherBottomOffset {
		t.Errorf("Y = %v, want %v", c.Y, layout.Height-layout.CatcherBottomOffset)
	}
	if c.Width != 48 || c.Height != 48 {
		t.Errorf("size = %vx%v, want 48x48", c.Width, c.Height)
	}
}

// TestMove_Clamp 移动后始终位于 [0, W-width]
func TestMove_Clamp(t *testing.T) {
	c := NewCatcher(config.DefaultLayout())

	tests := []struct {
		pointer float64
		wantX   float64
	}{
		{200, 176},
		{0, 0},
		{-500, 0},
		{550, 502},
		{10000, 502},
	}

	for _, tt := range tests {
		c.Move(tt.pointer)
		if c.X != tt.wantX {
			t.Errorf("Move(%v): X = %v, want %v", tt.pointer, c.X, tt.wantX)
		}
	}
}

func TestSetMagnet(t *testing.T) {
	c := NewCatcher(config.DefaultLayout())

	c.SetMagnet(true)
	if c.Width != 96 || !c.MagnetActive() {
		t.Errorf("magnet width = %v, want 96", c.Width)
	}

	// 加宽状态下的限制使用新宽度
	c.Move(10000)
	if c.X != 550-96 {
		t.Errorf("clamped X with magnet = %v, want %v", c.X, 550-96)
	}

	c.SetMagnet(false)
	if c.Width != 48 || c.MagnetActive() {
		t.Errorf("width after magnet = %v, want 48", c.Width)
	}
}
