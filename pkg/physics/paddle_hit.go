package physics

import (
	"fmt"
	"math"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/types"
)

// BouncePolicy 击球位置到反弹角度的映射策略
type BouncePolicy interface {
	// Angle 返回反弹角（弧度），hitOffset ∈ [-1, 1]
	Angle(hitOffset float64) float64
	// MaxAngle 返回最大反弹角（弧度）
	MaxAngle() float64
	// Name 策略名称
	Name() string
}

// LinearPolicy 线性策略：angle = hitOffset * maxBounceAngle
type LinearPolicy struct {
	maxAngle float64
}

// NewLinearPolicy 创建线性策略
// maxAngleDeg 必须在 (0, 90) 之间，否则球可能垂直运动、水平方向卡住
func NewLinearPolicy(maxAngleDeg float64) (*LinearPolicy, error) {
	if err := validateMaxAngle(maxAngleDeg); err != nil {
		return nil, err
	}
	return &LinearPolicy{maxAngle: geometry.DegToRad(maxAngleDeg)}, nil
}

// Angle 实现 BouncePolicy
func (p *LinearPolicy) Angle(hitOffset float64) float64 {
	return geometry.LinearAngle(hitOffset, p.maxAngle)
}

// MaxAngle 实现 BouncePolicy
func (p *LinearPolicy) MaxAngle() float64 { return p.maxAngle }

// Name 实现 BouncePolicy
func (p *LinearPolicy) Name() string { return config.BouncePolicyLinear }

// DeadZonePolicy 死区策略：中心区域击球保证水平反弹
type DeadZonePolicy struct {
	maxAngle float64
	deadZone float64
}

// NewDeadZonePolicy 创建死区策略
// deadZone 为归一化击球位置，必须在 [0, 1) 之间
func NewDeadZonePolicy(maxAngleDeg, deadZone float64) (*DeadZonePolicy, error) {
	if err := validateMaxAngle(maxAngleDeg); err != nil {
		return nil, err
	}
	if deadZone < 0 || deadZone >= 1 {
		return nil, fmt.Errorf("centerDeadZone must be in [0, 1), got %.3f", deadZone)
	}
	return &DeadZonePolicy{maxAngle: geometry.DegToRad(maxAngleDeg), deadZone: deadZone}, nil
}

// Angle 实现 BouncePolicy
func (p *DeadZonePolicy) Angle(hitOffset float64) float64 {
	return geometry.DeadZoneAngle(hitOffset, p.maxAngle, p.deadZone)
}

// MaxAngle 实现 BouncePolicy
func (p *DeadZonePolicy) MaxAngle() float64 { return p.maxAngle }

// DeadZone 返回中心死区
func (p *DeadZonePolicy) DeadZone() float64 { return p.deadZone }

// Name 实现 BouncePolicy
func (p *DeadZonePolicy) Name() string { return config.BouncePolicyDeadZone }

func validateMaxAngle(maxAngleDeg float64) error {
	if maxAngleDeg <= 0 || maxAngleDeg >= 90 || math.IsNaN(maxAngleDeg) {
		return fmt.Errorf("maxBounceAngle must be in (0, 90) degrees, got %.3f", maxAngleDeg)
	}
	return nil
}

// NewBouncePolicy 根据配置创建反弹策略
func NewBouncePolicy(cfg config.BounceConfig) (BouncePolicy, error) {
	switch cfg.Policy {
	case config.BouncePolicyLinear:
		return NewLinearPolicy(cfg.MaxBounceAngle)
	case config.BouncePolicyDeadZone:
		return NewDeadZonePolicy(cfg.MaxBounceAngle, cfg.CenterDeadZone)
	default:
		return nil, fmt.Errorf("unknown bounce policy '%s'", cfg.Policy)
	}
}

// PaddleHitResolver 球拍击球解算器
type PaddleHitResolver struct {
	policy BouncePolicy
}

// NewPaddleHitResolver 创建球拍击球解算器
func NewPaddleHitResolver(policy BouncePolicy) *PaddleHitResolver {
	return &PaddleHitResolver{policy: policy}
}

// Policy 返回当前反弹策略
func (r *PaddleHitResolver) Policy() BouncePolicy {
	return r.policy
}

// Resolve 计算击球后的速度
//
// 1. 归一化击球位置 hitOffset（半高为 0 时视为中心击球）
// 2. 按策略映射为反弹角
// 3. 左拍向右（+1），右拍向左（-1）
// 4. 速度大小取碰撞前的 |velocity|
//
// 参数:
//   - velocity: 碰撞前速度
//   - contact: 接触点
//   - paddleCenter: 球拍中心
//   - halfHeight: 球拍碰撞盒半高
//   - side: 球拍所在侧
//
// 返回:
//   - geometry.Vec2: 新速度，|v'| == |velocity|
func (r *PaddleHitResolver) Resolve(velocity, contact, paddleCenter geometry.Vec2, halfHeight float64, side types.Side) geometry.Vec2 {
	hitOffset := geometry.HitOffset(contact.Y, paddleCenter.Y, halfHeight)
	angle := r.policy.Angle(hitOffset)
	speed := velocity.Length()
	direction := side.Direction()

	return geometry.NewVec2(
		math.Cos(angle)*speed*direction,
		math.Sin(angle)*speed,
	)
}
