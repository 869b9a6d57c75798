package physics

import (
	"math"
	"testing"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/types"
)

const speedTolerance = 1e-4

func mustLinear(t *testing.T, deg float64) *LinearPolicy {
	t.Helper()
	p, err := NewLinearPolicy(deg)
	if err != nil {
		t.Fatalf("NewLinearPolicy(%v): %v", deg, err)
	}
	return p
}

func mustDeadZone(t *testing.T, deg, dz float64) *DeadZonePolicy {
	t.Helper()
	p, err := NewDeadZonePolicy(deg, dz)
	if err != nil {
		t.Fatalf("NewDeadZonePolicy(%v, %v): %v", deg, dz, err)
	}
	return p
}

// bounceAngle 从新速度反推反弹角（相对水平方向）
func bounceAngle(v geometry.Vec2) float64 {
	return math.Atan2(v.Y, math.Abs(v.X))
}

func TestPaddleHitSpeedPreservation(t *testing.T) {
	policies := []BouncePolicy{mustLinear(t, 75), mustDeadZone(t, 60, 0.25)}
	paddleCenter := geometry.NewVec2(-10, 1)

	for _, policy := range policies {
		r := NewPaddleHitResolver(policy)
		for deg := 0.0; deg < 360; deg += 15 {
			for offset := -1.2; offset <= 1.2; offset += 0.1 {
				speed := 3 + deg/40
				v := geometry.NewVec2(math.Cos(geometry.DegToRad(deg))*speed, math.Sin(geometry.DegToRad(deg))*speed)
				contact := geometry.NewVec2(-9.75, paddleCenter.Y+offset)

				for _, side := range []types.Side{types.SideLeft, types.SideRight} {
					got := r.Resolve(v, contact, paddleCenter, 1, side)
					if math.Abs(got.Length()-v.Length()) > speedTolerance {
						t.Fatalf("%s: 速度不守恒 |%v|=%f -> |%v|=%f", policy.Name(), v, v.Length(), got, got.Length())
					}
				}
			}
		}
	}
}

func TestPaddleHitBounceBound(t *testing.T) {
	policies := []BouncePolicy{mustLinear(t, 75), mustLinear(t, 45), mustDeadZone(t, 75, 0.3)}
	for _, policy := range policies {
		r := NewPaddleHitResolver(policy)
		for i := -100; i <= 100; i++ {
			h := float64(i) / 100
			v := r.Resolve(geometry.NewVec2(-8, 0), geometry.NewVec2(-9.75, h), geometry.NewVec2(-10, 0), 1, types.SideLeft)
			if a := math.Abs(bounceAngle(v)); a > policy.MaxAngle()+1e-9 {
				t.Fatalf("%s: offset %v angle %v exceeds max %v", policy.Name(), h, a, policy.MaxAngle())
			}
		}
	}
}

func TestPaddleHitDeadZoneIsHorizontal(t *testing.T) {
	r := NewPaddleHitResolver(mustDeadZone(t, 75, 0.3))
	for _, h := range []float64{-0.29, -0.1, 0, 0.1, 0.29} {
		v := r.Resolve(geometry.NewVec2(8, 2), geometry.NewVec2(9.75, h), geometry.NewVec2(10, 0), 1, types.SideRight)
		if v.Y != 0 {
			t.Errorf("死区内击球应水平反弹: offset=%v velocity=%v", h, v)
		}
		if v.X >= 0 {
			t.Errorf("右拍击球后球应向左: %v", v)
		}
	}
}

func TestPaddleHitDirectionAndAngle(t *testing.T) {
	r := NewPaddleHitResolver(mustLinear(t, 60))
	speed := 10.0

	tests := []struct {
		name      string
		side      types.Side
		contactY  float64
		wantAngle float64
		wantSignX float64
	}{
		{"左拍中心", types.SideLeft, 0, 0, 1},
		{"左拍顶端", types.SideLeft, 1, geometry.DegToRad(60), 1},
		{"左拍底端", types.SideLeft, -1, -geometry.DegToRad(60), 1},
		{"右拍上半部", types.SideRight, 0.5, geometry.DegToRad(30), -1},
		{"右拍超出顶端被限制", types.SideRight, 3, geometry.DegToRad(60), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := geometry.NewVec2(-tt.side.Direction()*speed, 0)
			v := r.Resolve(before, geometry.NewVec2(0, tt.contactY), geometry.NewVec2(0, 0), 1, tt.side)
			if math.Copysign(1, v.X) != tt.wantSignX {
				t.Errorf("球应离开击球的球拍: side=%v v=%v", tt.side, v)
			}
			if got := bounceAngle(v); math.Abs(got-tt.wantAngle) > 1e-9 {
				t.Errorf("expected angle %v, got %v", tt.wantAngle, got)
			}
		})
	}
}

func TestPaddleHitZeroHalfHeight(t *testing.T) {
	r := NewPaddleHitResolver(mustLinear(t, 75))
	v := r.Resolve(geometry.NewVec2(-6, 2), geometry.NewVec2(-10, 3), geometry.NewVec2(-10, 0), 0, types.SideLeft)
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Fatalf("零半高不应产生 NaN: %v", v)
	}
	if v.Y != 0 || v.X <= 0 {
		t.Errorf("零半高应视为中心击球（水平向右），got %v", v)
	}
	if math.Abs(v.Length()-math.Hypot(6, 2)) > speedTolerance {
		t.Errorf("speed should be preserved, got %f", v.Length())
	}
}

func TestPaddleHitUsesCurrentSpeed(t *testing.T) {
	r := NewPaddleHitResolver(mustLinear(t, 75))
	for _, speed := range []float64{0, 1, 8, 23.5} {
		v := r.Resolve(geometry.NewVec2(speed, 0), geometry.NewVec2(10, 0.4), geometry.NewVec2(10, 0), 1, types.SideRight)
		if math.Abs(v.Length()-speed) > speedTolerance {
			t.Errorf("expected speed %v, got %v", speed, v.Length())
		}
	}
}

func TestNewBouncePolicy(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.BounceConfig
		wantErr  bool
		wantName string
	}{
		{"linear", config.BounceConfig{Policy: "linear", MaxBounceAngle: 75}, false, "linear"},
		{"deadZone", config.BounceConfig{Policy: "deadZone", MaxBounceAngle: 60, CenterDeadZone: 0.2}, false, "deadZone"},
		{"90 度被拒绝", config.BounceConfig{Policy: "linear", MaxBounceAngle: 90}, true, ""},
		{"0 度被拒绝", config.BounceConfig{Policy: "linear", MaxBounceAngle: 0}, true, ""},
		{"死区为 1 被拒绝", config.BounceConfig{Policy: "deadZone", MaxBounceAngle: 60, CenterDeadZone: 1}, true, ""},
		{"未知策略", config.BounceConfig{Policy: "spin", MaxBounceAngle: 60}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewBouncePolicy(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got policy %v", p)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("expected %s, got %s", tt.wantName, p.Name())
			}
			if p.MaxAngle() >= math.Pi/2 {
				t.Errorf("max angle must stay below 90 degrees")
			}
			if dz, ok := p.(*DeadZonePolicy); ok && dz.DeadZone() != tt.cfg.CenterDeadZone {
				t.Errorf("expected dead zone %v, got %v", tt.cfg.CenterDeadZone, dz.DeadZone())
			}
		})
	}
}
