package physics

import (
	"log"

	"github.com/decker502/pong/pkg/entities"
)

// ContactHandler 碰撞事件入口
// 按接触类型把事件分发给球拍解算器或墙解算器，并把结果写回球
type ContactHandler struct {
	paddle *PaddleHitResolver
	wall   *WallBounceResolver
}

// NewContactHandler 创建碰撞事件入口
func NewContactHandler(paddle *PaddleHitResolver, wall *WallBounceResolver) *ContactHandler {
	return &ContactHandler{
		paddle: paddle,
		wall:   wall,
	}
}

// Update 推进墙反弹冷却
func (h *ContactHandler) Update(dt float64) {
	h.wall.Update(dt)
}

// Rearm 复位墙反弹冷却
func (h *ContactHandler) Rearm() {
	h.wall.Rearm()
}

// Handle 处理一次碰撞事件
//
// 返回:
//   - bool: 球速是否被改写
func (h *ContactHandler) Handle(ball *entities.Ball, ev CollisionEvent) bool {
	switch ev.Kind {
	case ContactPaddle:
		if ev.Paddle == nil {
			log.Printf("[ContactHandler] 警告: 球拍碰撞事件缺少球拍，忽略")
			return false
		}
		v := h.paddle.Resolve(ball.Velocity, ev.ContactPoint, ev.Paddle.Center(), ev.Paddle.HalfHeight, ev.Paddle.Side)
		ball.SetVelocity(v)
		log.Printf("[ContactHandler] %s paddle hit at y=%.3f, velocity=(%.3f, %.3f)",
			ev.Paddle.Side, ev.ContactPoint.Y, v.X, v.Y)
		return true

	default:
		result := h.wall.Resolve(ball.Velocity, ev.ContactNormal)
		if !result.Applied {
			return false
		}
		ball.SetVelocity(result.Velocity)
		ball.Nudge(result.Nudge)
		log.Printf("[ContactHandler] wall '%s' bounce, velocity=(%.3f, %.3f)",
			ev.Collider, result.Velocity.X, result.Velocity.Y)
		return true
	}
}
