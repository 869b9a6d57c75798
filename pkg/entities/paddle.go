package entities

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/types"
)

// Paddle 球拍
// 核心只读取球拍的位置和碰撞尺寸；移动意图由外部控制器给出
type Paddle struct {
	Side       types.Side
	Position   geometry.Vec2
	HalfHeight float64
	HalfWidth  float64
	MinY       float64
	MaxY       float64
	MoveSpeed  float64

	active bool
}

// NewPaddle 创建指定侧的球拍，初始位于 Y 范围中点
func NewPaddle(side types.Side, cfg config.PaddleConfig) *Paddle {
	x := cfg.LeftX
	if side == types.SideRight {
		x = cfg.RightX
	}
	return &Paddle{
		Side:       side,
		Position:   geometry.NewVec2(x, (cfg.MinY+cfg.MaxY)/2),
		HalfHeight: cfg.HalfHeight,
		HalfWidth:  cfg.HalfWidth,
		MinY:       cfg.MinY,
		MaxY:       cfg.MaxY,
		MoveSpeed:  cfg.MoveSpeed,
	}
}

// MoveTo 把球拍移动到目标 Y（限制在 [MinY, MaxY]）
func (p *Paddle) MoveTo(y float64) {
	p.Position.Y = geometry.Clamp(y, p.MinY, p.MaxY)
}

// Move 根据移动意图移动球拍
//
// 参数:
//   - intent: 移动意图，[-1, 1]，正值向上
//   - dt: 时间增量（秒）
func (p *Paddle) Move(intent, dt float64) {
	intent = geometry.Clamp(intent, -1, 1)
	if intent == 0 {
		return
	}
	p.MoveTo(p.Position.Y + intent*p.MoveSpeed*dt)
}

// Center 返回球拍中心，用于击球几何计算
func (p *Paddle) Center() geometry.Vec2 {
	return p.Position
}

// Recenter 回到 Y 范围中点
func (p *Paddle) Recenter() {
	p.MoveTo((p.MinY + p.MaxY) / 2)
}

// SetActive 激活 / 停用球拍
func (p *Paddle) SetActive(active bool) {
	p.active = active
}

// IsActive 球拍是否处于激活状态
func (p *Paddle) IsActive() bool {
	return p.active
}
