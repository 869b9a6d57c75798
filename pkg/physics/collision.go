// Package physics 计算碰撞后的球速
//
// 解算器不拥有球：输入当前速度和接触几何，输出新的速度。
// 所有碰撞都保持速度大小不变，只改变方向。
package physics

import (
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/geometry"
)

// ContactKind 接触对象类型
type ContactKind int

const (
	// ContactWall 墙（任何不是球拍的碰撞体）
	ContactWall ContactKind = iota
	// ContactPaddle 球拍
	ContactPaddle
)

// String 返回接触类型的字符串表示
func (k ContactKind) String() string {
	if k == ContactPaddle {
		return "paddle"
	}
	return "wall"
}

// CollisionEvent 碰撞事件（瞬时数据，不存储）
type CollisionEvent struct {
	ContactPoint      geometry.Vec2
	ContactNormal     geometry.Vec2
	OtherBodyVelocity geometry.Vec2
	Kind              ContactKind

	// Paddle 接触的球拍，仅 Kind == ContactPaddle 时有效
	Paddle *entities.Paddle
	// Collider 碰撞体名称（日志用）
	Collider string
}
