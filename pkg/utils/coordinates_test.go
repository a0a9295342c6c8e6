package utils

import (
	"math"
	"testing"
)

func TestScreenToGameX(t *testing.T) {
	tests := []struct {
		name        string
		screenX     float64
		originX     float64
		screenWidth float64
		want        float64
	}{
		{"same size", 100, 0, 550, 100},
		{"scaled down canvas", 55, 0, 275, 110},
		{"offset canvas", 110, 10, 275, 200},
		{"left of canvas", 0, 10, 275, -20},
		{"terminal columns", 40, 0, 80, 275},
		{"zero width", 99, 0, 0, 275},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScreenToGameX(tt.screenX, tt.originX, tt.screenWidth, 550)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ScreenToGameX() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGameToScreenRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 12.5, 275, 549} {
		screen := GameToScreenX(x, 3, 80, 550)
		back := ScreenToGameX(screen, 3, 80, 550)
		if math.Abs(back-x) > 1e-9 {
			t.Errorf("round trip %v -> %v -> %v", x, screen, back)
		}
	}
}

func TestGameToScreenY(t *testing.T) {
	if got := GameToScreenY(175, 1, 24, 350); math.Abs(got-13) > 1e-9 {
		t.Errorf("GameToScreenY() = %v, want 13", got)
	}
	if got := GameToScreenY(175, 1, 24, 0); got != 1 {
		t.Errorf("GameToScreenY() with zero height = %v, want 1", got)
	}
}
