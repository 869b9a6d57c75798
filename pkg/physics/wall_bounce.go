package physics

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
)

// WallBounceResult 墙反弹结果
type WallBounceResult struct {
	Velocity geometry.Vec2
	// Nudge 反弹后球应移动的偏移（沿法线离开墙面）
	Nudge geometry.Vec2
	// Applied 是否真正发生了反弹（冷却中或背离墙面时为 false）
	Applied bool
}

// WallBounceResolver 墙反弹解算器
//
// 反弹后进入再武装冷却：同一接触跨越多个模拟步时只反弹一次，
// 避免来回反射造成抖动。冷却按模拟时间推进（Update）。
type WallBounceResolver struct {
	cooldown  float64
	nudge     float64
	remaining float64
}

// NewWallBounceResolver 创建墙反弹解算器
func NewWallBounceResolver(cfg config.WallConfig) *WallBounceResolver {
	return &WallBounceResolver{
		cooldown: cfg.RearmCooldown,
		nudge:    cfg.Nudge,
	}
}

// Update 推进冷却计时
func (r *WallBounceResolver) Update(dt float64) {
	if r.remaining > 0 {
		r.remaining -= dt
		if r.remaining < 0 {
			r.remaining = 0
		}
	}
}

// Armed 是否可以再次反弹
func (r *WallBounceResolver) Armed() bool {
	return r.remaining <= 0
}

// Rearm 立即结束冷却（发球复位时调用）
func (r *WallBounceResolver) Rearm() {
	r.remaining = 0
}

// Resolve 沿接触法线反射速度，并重新缩放到碰撞前的速度大小
//
// 以下情况不反弹（Applied = false，速度原样返回）：
//   - 冷却中
//   - 球已经在离开墙面（v·n >= 0）
//   - 法线为零向量
func (r *WallBounceResolver) Resolve(velocity, normal geometry.Vec2) WallBounceResult {
	result := WallBounceResult{Velocity: velocity}

	unit := normal.Normalize()
	if unit.IsZero() || !r.Armed() {
		return result
	}
	if velocity.Dot(unit) >= 0 {
		return result
	}

	speed := velocity.Length()
	result.Velocity = ReflectPreservingSpeed(velocity, unit, speed)
	result.Nudge = unit.Scale(r.nudge)
	result.Applied = true

	r.remaining = r.cooldown
	return result
}

// ReflectPreservingSpeed 反射后重新缩放到指定速度，消除反射公式的浮点漂移
func ReflectPreservingSpeed(velocity, normal geometry.Vec2, speed float64) geometry.Vec2 {
	return geometry.Reflect(velocity, normal).WithLength(speed)
}
