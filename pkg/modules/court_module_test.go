package modules

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/types"
)

const tick = 1.0 / 60.0

// idleController 从不移动
type idleController struct{}

func (idleController) Intent(*entities.Paddle, *entities.Ball) float64 { return 0 }

func newAIConfig() *config.PongConfig {
	cfg := config.DefaultPongConfig()
	cfg.Players.Left = config.ControllerAI
	cfg.Players.Right = config.ControllerAI
	return cfg
}

func TestNewCourtModule(t *testing.T) {
	m, err := NewCourtModule(newAIConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewCourtModule: %v", err)
	}
	if m.Match.State() != match.StateMenu {
		t.Errorf("expected Menu, got %s", m.Match.State())
	}
	if len(m.Paddles) != 2 || len(m.Walls) != 2 {
		t.Errorf("expected 2 paddles and 2 walls, got %d/%d", len(m.Paddles), len(m.Walls))
	}
	if m.Ball.IsActive() {
		t.Error("ball should be inactive before the match starts")
	}
}

func TestNewCourtModuleInvalidPolicy(t *testing.T) {
	cfg := newAIConfig()
	cfg.Scoring.Policy = "sudden"
	if _, err := NewCourtModule(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for unknown scoring policy")
	}

	cfg = newAIConfig()
	cfg.Bounce.MaxBounceAngle = 95
	if _, err := NewCourtModule(cfg, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for max bounce angle above 90")
	}
}

// TestCourtModuleSpeedInvariant AI 对战若干分钟，球速始终等于发球速度
func TestCourtModuleSpeedInvariant(t *testing.T) {
	cfg := newAIConfig()
	m, err := NewCourtModule(cfg, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewCourtModule: %v", err)
	}
	m.Match.StartGame()

	for i := 0; i < 60*180; i++ {
		m.Update(tick)
		if !m.Ball.IsActive() {
			continue
		}
		if speed := m.Ball.Speed(); math.Abs(speed-cfg.Ball.StartingSpeed) > 1e-6 {
			t.Fatalf("tick %d: speed drifted to %v", i, speed)
		}
		// 得分后到重新发球之前球可能已经离开球场
		if m.Ball.PointAwarded() {
			continue
		}
		if y := m.Ball.Position.Y; math.Abs(y) > cfg.Court.WallY+cfg.Court.WallThickness {
			t.Fatalf("tick %d: ball escaped the court vertically, y=%v", i, y)
		}
	}
}

func TestCourtModuleScoresWhenPaddleMisses(t *testing.T) {
	cfg := newAIConfig()
	m, err := NewCourtModule(cfg, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewCourtModule: %v", err)
	}
	for _, p := range m.Paddles {
		m.InputSystem.Bind(p, idleController{})
	}
	m.Match.StartGame()

	// 右拍在最下方，球沿上半场水平飞向右侧
	m.Paddles[1].MoveTo(cfg.Paddle.MinY)
	m.Ball.Position = geometry.NewVec2(0, 3)
	m.Ball.Velocity = geometry.NewVec2(cfg.Ball.StartingSpeed, 0)

	for i := 0; i < 120; i++ {
		m.Update(tick)
	}
	s := m.Match.Scores()
	if s.Player2 != 1 || s.Player1 != 0 {
		t.Fatalf("右边界越界应由玩家2得分, got %+v", s)
	}

	for i := 0; i < 120; i++ {
		m.Update(tick)
	}
	if m.Ball.PointAwarded() {
		t.Error("ball should have been reset after the delay")
	}
}

func TestCourtModuleRecentersPaddlesOnStart(t *testing.T) {
	cfg := newAIConfig()
	m, err := NewCourtModule(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewCourtModule: %v", err)
	}

	var states []match.State
	m.SetOnStateChanged(func(_, to match.State) { states = append(states, to) })

	m.Paddles[0].MoveTo(cfg.Paddle.MaxY)
	m.Match.StartGame()
	if m.Paddles[0].Position.Y != 0 {
		t.Errorf("paddle should be recentered on start, got %v", m.Paddles[0].Position.Y)
	}
	if len(states) != 1 || states[0] != match.StatePlaying {
		t.Errorf("expected forwarded state change, got %v", states)
	}

	m.Match.AwardPoint(types.Player1)
	m.Match.GoToMenu()
	if states[len(states)-1] != match.StateMenu {
		t.Errorf("expected Menu, got %v", states)
	}
}

func TestInputSystemRebind(t *testing.T) {
	m, err := NewCourtModule(newAIConfig(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewCourtModule: %v", err)
	}
	m.InputSystem.Bind(m.Paddles[0], idleController{})
	m.Match.StartGame()

	m.Ball.Position = geometry.NewVec2(0, 3)
	m.Ball.Velocity = geometry.NewVec2(-1, 0)
	m.InputSystem.Update(0.1)
	if m.Paddles[0].Position.Y != 0 {
		t.Errorf("rebound paddle should use the idle controller, got y=%v", m.Paddles[0].Position.Y)
	}
}
