package utils

import (
	"testing"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
)

func TestViewportWorldToScreen(t *testing.T) {
	v := NewViewport(config.DisplayConfig{Width: 800, Height: 450, PixelsPerUnit: 32})

	tests := []struct {
		name  string
		world geometry.Vec2
		wantX float64
		wantY float64
	}{
		{"原点在屏幕中心", geometry.NewVec2(0, 0), 400, 225},
		{"Y 轴向上", geometry.NewVec2(0, 1), 400, 193},
		{"右侧边界", geometry.NewVec2(12, 0), 784, 225},
		{"左下角", geometry.NewVec2(-12.5, -7.03125), 0, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.WorldToScreen(tt.world)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}

			back := v.ScreenToWorld(x, y)
			if !geometry.NearlyEqual(back.X, tt.world.X, 1e-9) || !geometry.NearlyEqual(back.Y, tt.world.Y, 1e-9) {
				t.Errorf("round trip mismatch: %v -> %v", tt.world, back)
			}
		})
	}
}

func TestViewportZeroScale(t *testing.T) {
	v := Viewport{Width: 800, Height: 450}
	if got := v.ScreenToWorld(100, 100); got != (geometry.Vec2{}) {
		t.Errorf("zero scale should map to origin, got %v", got)
	}
	if v.Scale(3) != 0 {
		t.Error("zero scale should give zero length")
	}
}
