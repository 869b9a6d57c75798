package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/types"
	"github.com/decker502/pong/pkg/utils"
)

// PaddleController 球拍控制器：给出球拍的移动意图
type PaddleController interface {
	// Intent 返回 [-1, 1] 的移动意图，正值向上
	Intent(paddle *entities.Paddle, ball *entities.Ball) float64
}

// KeyboardController 键盘控制
type KeyboardController struct {
	Up   ebiten.Key
	Down ebiten.Key
	// Pressed 查询按键状态，默认 ebiten.IsKeyPressed
	Pressed func(key ebiten.Key) bool
}

// NewKeyboardController 根据球拍所在侧创建默认按键绑定
// 左侧 W/S，右侧 ↑/↓
func NewKeyboardController(side types.Side) *KeyboardController {
	kc := &KeyboardController{
		Up:      ebiten.KeyW,
		Down:    ebiten.KeyS,
		Pressed: ebiten.IsKeyPressed,
	}
	if side == types.SideRight {
		kc.Up = ebiten.KeyArrowUp
		kc.Down = ebiten.KeyArrowDown
	}
	return kc
}

// Intent 实现 PaddleController
func (kc *KeyboardController) Intent(*entities.Paddle, *entities.Ball) float64 {
	pressed := kc.Pressed
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}

	intent := 0.0
	if pressed(kc.Up) {
		intent++
	}
	if pressed(kc.Down) {
		intent--
	}
	return intent
}

// TrackingController 简单 AI：球飞来时追踪球的高度，球远离时回到中线
type TrackingController struct {
	// DeadZone 目标与球拍中心的距离小于该值时不移动，避免抖动
	DeadZone float64
}

// Intent 实现 PaddleController
func (tc *TrackingController) Intent(paddle *entities.Paddle, ball *entities.Ball) float64 {
	target := (paddle.MinY + paddle.MaxY) / 2
	if ball != nil && ball.Velocity.X*paddle.Side.Direction() < 0 {
		target = ball.Position.Y
	}

	diff := target - paddle.Position.Y
	switch {
	case diff > tc.DeadZone:
		return 1
	case diff < -tc.DeadZone:
		return -1
	default:
		return 0
	}
}

// PointerController 球拍跟随同侧半屏上的鼠标或触摸点
type PointerController struct {
	DeadZone float64
	Viewport utils.Viewport
	// Pointers 查询当前指针，默认 utils.ActivePointers
	Pointers func() []utils.Pointer
}

// Intent 实现 PaddleController
func (pc *PointerController) Intent(paddle *entities.Paddle, _ *entities.Ball) float64 {
	pointers := pc.Pointers
	if pointers == nil {
		pointers = utils.ActivePointers
	}

	for _, p := range pointers() {
		leftHalf := p.X < pc.Viewport.Width/2
		if leftHalf != (paddle.Side == types.SideLeft) {
			continue
		}
		target := pc.Viewport.ScreenToWorld(float64(p.X), float64(p.Y))
		diff := target.Y - paddle.Position.Y
		switch {
		case diff > pc.DeadZone:
			return 1
		case diff < -pc.DeadZone:
			return -1
		default:
			return 0
		}
	}
	return 0
}

// NewPaddleController 根据配置创建控制器
func NewPaddleController(kind string, side types.Side, players config.PlayersConfig, display config.DisplayConfig) PaddleController {
	switch kind {
	case config.ControllerAI:
		return &TrackingController{DeadZone: players.AIDeadZone}
	case config.ControllerPointer:
		return &PointerController{DeadZone: players.PointerDeadZone, Viewport: utils.NewViewport(display)}
	default:
		return NewKeyboardController(side)
	}
}

type paddleBinding struct {
	paddle     *entities.Paddle
	controller PaddleController
}

// InputSystem 把控制器的移动意图应用到球拍上
type InputSystem struct {
	ball     *entities.Ball
	referee  Referee
	bindings []paddleBinding
}

// NewInputSystem 创建输入系统
func NewInputSystem(ball *entities.Ball, referee Referee) *InputSystem {
	return &InputSystem{
		ball:     ball,
		referee:  referee,
		bindings: make([]paddleBinding, 0, 2),
	}
}

// Bind 为球拍绑定控制器；已绑定的球拍会被替换为新控制器
func (s *InputSystem) Bind(paddle *entities.Paddle, controller PaddleController) {
	log.Printf("[InputSystem] %s paddle bound to %T", paddle.Side, controller)
	for i := range s.bindings {
		if s.bindings[i].paddle == paddle {
			s.bindings[i].controller = controller
			return
		}
	}
	s.bindings = append(s.bindings, paddleBinding{paddle: paddle, controller: controller})
}

// Update 比赛进行中移动球拍
//
// 参数:
//   - deltaTime: 时间增量（秒）
func (s *InputSystem) Update(deltaTime float64) {
	if !s.referee.IsPlaying() {
		return
	}
	for _, b := range s.bindings {
		if !b.paddle.IsActive() {
			continue
		}
		b.paddle.Move(b.controller.Intent(b.paddle, s.ball), deltaTime)
	}
}
