package modules

import (
	"fmt"
	"log"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/physics"
	"github.com/decker502/pong/pkg/systems"
	"github.com/decker502/pong/pkg/types"
)

// CourtModule 球场模块
//
// 职责：
//   - 根据配置创建球、球拍、墙和对局
//   - 把碰撞解算器、物理系统、输入系统和渲染系统连接起来
//   - 按固定顺序推进一个模拟步
//
// 桌面端、移动端和命令行验证工具共用同一个模块，
// 所有依赖在这里显式注入，运行时不做任何查找。
type CourtModule struct {
	Config *config.PongConfig

	Ball    *entities.Ball
	Paddles []*entities.Paddle
	Walls   []*entities.Wall

	Match    *match.Match
	Contacts *physics.ContactHandler

	PhysicsSystem *systems.PhysicsSystem
	InputSystem   *systems.InputSystem
	RenderSystem  *systems.RenderSystem

	onStateChanged func(from, to match.State)
}

// NewCourtModule 创建球场模块
//
// 参数:
//   - cfg: 已校验的配置
//   - rng: 发球随机数来源
//
// 返回:
//   - *CourtModule: 模块实例，对局处于 Menu 状态
//   - error: 策略配置无效时返回
func NewCourtModule(cfg *config.PongConfig, rng entities.RandomSource) (*CourtModule, error) {
	bounce, err := physics.NewBouncePolicy(cfg.Bounce)
	if err != nil {
		return nil, fmt.Errorf("failed to create bounce policy: %w", err)
	}
	scoring, err := match.NewScoringPolicy(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring policy: %w", err)
	}

	m := &CourtModule{
		Config: cfg,
		Ball:   entities.NewBall(cfg.Ball, rng),
		Paddles: []*entities.Paddle{
			entities.NewPaddle(types.SideLeft, cfg.Paddle),
			entities.NewPaddle(types.SideRight, cfg.Paddle),
		},
		Walls: entities.NewCourtWalls(cfg.Court),
	}

	paddles := make([]match.Activatable, 0, len(m.Paddles))
	for _, p := range m.Paddles {
		paddles = append(paddles, p)
	}
	walls := make([]match.Activatable, 0, len(m.Walls))
	for _, w := range m.Walls {
		walls = append(walls, w)
	}

	m.Match, err = match.New(m.Ball, paddles, walls, scoring, match.Options{ResetDelay: cfg.Match.ResetDelay})
	if err != nil {
		return nil, err
	}
	m.Match.SetOnStateChanged(m.handleStateChanged)

	m.Contacts = physics.NewContactHandler(physics.NewPaddleHitResolver(bounce), physics.NewWallBounceResolver(cfg.Wall))
	m.PhysicsSystem = systems.NewPhysicsSystem(m.Ball, m.Paddles, m.Walls, m.Contacts, m.Match, cfg.Court)
	m.InputSystem = systems.NewInputSystem(m.Ball, m.Match)
	m.RenderSystem = systems.NewRenderSystem(m.Ball, m.Paddles, m.Walls, cfg.Court, cfg.Display)

	m.InputSystem.Bind(m.Paddles[0], systems.NewPaddleController(cfg.Players.Left, types.SideLeft, cfg.Players, cfg.Display))
	m.InputSystem.Bind(m.Paddles[1], systems.NewPaddleController(cfg.Players.Right, types.SideRight, cfg.Players, cfg.Display))

	log.Printf("[CourtModule] Created: bounce=%s, scoring=%s, players=%s/%s",
		bounce.Name(), scoring.Name(), cfg.Players.Left, cfg.Players.Right)
	return m, nil
}

// SetOnStateChanged 设置对局状态切换回调（场景切换）
func (m *CourtModule) SetOnStateChanged(fn func(from, to match.State)) {
	m.onStateChanged = fn
}

// handleStateChanged 新比赛开始时球拍回中、墙反弹冷却复位
func (m *CourtModule) handleStateChanged(from, to match.State) {
	if to == match.StatePlaying && from != match.StatePlaying {
		for _, p := range m.Paddles {
			p.Recenter()
		}
		m.Contacts.Rearm()
	}
	if m.onStateChanged != nil {
		m.onStateChanged(from, to)
	}
}

// Update 推进一个模拟步：输入 → 物理 → 延迟任务
func (m *CourtModule) Update(deltaTime float64) {
	m.InputSystem.Update(deltaTime)
	m.PhysicsSystem.Update(deltaTime)
	m.Match.Update(deltaTime)
}
