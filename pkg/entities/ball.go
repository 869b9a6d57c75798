package entities

import (
	"log"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/types"
)

// RandomSource 随机数来源
// *rand.Rand 满足此接口；测试中传入固定序列以获得可复现的发球
type RandomSource interface {
	// Float64 返回 [0, 1) 内的随机数
	Float64() float64
}

// Ball 球
//
// 球只拥有自己的运动学状态（位置、速度）。
// 碰撞后的速度由 physics 包中的解算器计算后通过 SetVelocity 写回，
// 球本身不计算任何反弹。
type Ball struct {
	Position geometry.Vec2
	Velocity geometry.Vec2
	Radius   float64

	StartingPosition geometry.Vec2
	StartingSpeed    float64

	// pointAwarded 得分锁存：越界后只触发一次得分，直到下一次 ResetBall
	pointAwarded bool
	active       bool
	rng          RandomSource
}

// NewBall 根据配置创建球（未激活、静止在起始位置）
//
// 参数:
//   - cfg: 球配置
//   - rng: 随机数来源，用于发球方向，不能为 nil
func NewBall(cfg config.BallConfig, rng RandomSource) *Ball {
	return &Ball{
		Position:         cfg.StartingPosition,
		Radius:           cfg.Radius,
		StartingPosition: cfg.StartingPosition,
		StartingSpeed:    cfg.StartingSpeed,
		rng:              rng,
	}
}

// Launch 发球
//
// 水平方向等概率向左或向右，垂直分量取 [-1, 1] 均匀分布，
// 归一化后乘以 StartingSpeed，保证速度大小恰好等于 StartingSpeed。
func (b *Ball) Launch() {
	x := -1.0
	if b.rng.Float64() >= 0.5 {
		x = 1.0
	}
	y := b.rng.Float64()*2 - 1

	b.Velocity = geometry.NewVec2(x, y).WithLength(b.StartingSpeed)
	log.Printf("[Ball] Launch: velocity=(%.3f, %.3f)", b.Velocity.X, b.Velocity.Y)
}

// ResetBall 复位并重新发球
// 清除得分锁存 → 回到起始位置 → 速度清零 → Launch
func (b *Ball) ResetBall() {
	b.pointAwarded = false
	b.Position = b.StartingPosition
	b.Velocity = geometry.Vec2{}
	b.Launch()
}

// CheckBounds 越界检测（每个模拟步调用一次）
//
// 球心 X < leftBoundary 且尚未得分时返回玩家1得分；
// 球心 X > rightBoundary 且尚未得分时返回玩家2得分。
// 得分后锁存，直到下一次 ResetBall 之前不会再次返回得分。
//
// 返回:
//   - types.Player: 得分玩家
//   - bool: 本次是否产生得分事件
func (b *Ball) CheckBounds(leftBoundary, rightBoundary float64) (types.Player, bool) {
	if b.pointAwarded {
		return types.PlayerNone, false
	}

	if b.Position.X < leftBoundary {
		b.pointAwarded = true
		return types.Player1, true
	}
	if b.Position.X > rightBoundary {
		b.pointAwarded = true
		return types.Player2, true
	}
	return types.PlayerNone, false
}

// Step 按当前速度推进位置（无阻力、无重力）
func (b *Ball) Step(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}

// Speed 当前速度大小
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// SetVelocity 由碰撞解算器写入新的速度
func (b *Ball) SetVelocity(v geometry.Vec2) {
	b.Velocity = v
}

// Nudge 沿给定偏移移动球（用于脱离墙体）
func (b *Ball) Nudge(offset geometry.Vec2) {
	b.Position = b.Position.Add(offset)
}

// PointAwarded 本次越界是否已经得分
func (b *Ball) PointAwarded() bool {
	return b.pointAwarded
}

// SetActive 激活 / 停用球
func (b *Ball) SetActive(active bool) {
	b.active = active
}

// IsActive 球是否处于激活状态
func (b *Ball) IsActive() bool {
	return b.active
}
