package systems

import (
	"log"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/match"
	"github.com/decker502/pong/pkg/physics"
	"github.com/decker502/pong/pkg/types"
)

// Referee 物理系统需要的对局接口（由 *match.Match 实现）
type Referee interface {
	IsPlaying() bool
	AwardPoint(player types.Player) match.Verdict
}

// PhysicsSystem 处理球的运动、碰撞检测与越界得分
//
// 每个模拟步：推进墙反弹冷却 → 移动球 → 球拍碰撞 → 墙碰撞 → 越界检测。
// 碰撞后的速度由 physics.ContactHandler 计算，本系统只负责检测接触。
type PhysicsSystem struct {
	ball     *entities.Ball
	paddles  []*entities.Paddle
	walls    []*entities.Wall
	contacts *physics.ContactHandler
	referee  Referee
	court    config.CourtConfig
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - ball: 球
//   - paddles: 球拍
//   - walls: 墙
//   - contacts: 碰撞事件入口
//   - referee: 对局（决定球是否允许运动，并接收得分）
//   - court: 球场配置（得分边界）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(
	ball *entities.Ball,
	paddles []*entities.Paddle,
	walls []*entities.Wall,
	contacts *physics.ContactHandler,
	referee Referee,
	court config.CourtConfig,
) *PhysicsSystem {
	return &PhysicsSystem{
		ball:     ball,
		paddles:  paddles,
		walls:    walls,
		contacts: contacts,
		referee:  referee,
		court:    court,
	}
}

// checkAABBCollision 检查两个轴对齐边界框是否重叠（允许边界接触）
//
// 参数:
//   - c1, h1: 第一个碰撞盒的中心和半尺寸
//   - c2, h2: 第二个碰撞盒的中心和半尺寸
func (ps *PhysicsSystem) checkAABBCollision(c1, h1, c2, h2 geometry.Vec2) bool {
	return c1.X+h1.X >= c2.X-h2.X &&
		c1.X-h1.X <= c2.X+h2.X &&
		c1.Y+h1.Y >= c2.Y-h2.Y &&
		c1.Y-h1.Y <= c2.Y+h2.Y
}

// ballExtents 球的碰撞盒半尺寸
func (ps *PhysicsSystem) ballExtents() geometry.Vec2 {
	return geometry.NewVec2(ps.ball.Radius, ps.ball.Radius)
}

// Update 推进一个模拟步
//
// 参数:
//   - deltaTime: 时间增量（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if !ps.referee.IsPlaying() || !ps.ball.IsActive() {
		return
	}

	ps.contacts.Update(deltaTime)
	ps.ball.Step(deltaTime)

	for _, paddle := range ps.paddles {
		ps.checkPaddleContact(paddle)
	}
	for _, wall := range ps.walls {
		ps.checkWallContact(wall)
	}

	if player, scored := ps.ball.CheckBounds(ps.court.LeftBoundary, ps.court.RightBoundary); scored {
		verdict := ps.referee.AwardPoint(player)
		log.Printf("[PhysicsSystem] Ball left the court at x=%.3f, %s scores (%s)",
			ps.ball.Position.X, player, verdict.Outcome)
	}
}

// checkPaddleContact 球拍碰撞：只处理朝向球拍运动、且球心仍在球场一侧的球
func (ps *PhysicsSystem) checkPaddleContact(paddle *entities.Paddle) {
	if !paddle.IsActive() {
		return
	}
	halfExtents := geometry.NewVec2(paddle.HalfWidth, paddle.HalfHeight)
	if !ps.checkAABBCollision(ps.ball.Position, ps.ballExtents(), paddle.Position, halfExtents) {
		return
	}

	// Direction() 是球离开该球拍的方向，速度与之同向说明球已在离开
	dir := paddle.Side.Direction()
	if ps.ball.Velocity.X*dir >= 0 {
		return
	}
	// 球心已越过球拍中心，只是与背面重叠，这一分已经丢了
	if (ps.ball.Position.X-paddle.Position.X)*dir <= 0 {
		return
	}

	face := paddle.Position.X + dir*paddle.HalfWidth
	ev := physics.CollisionEvent{
		ContactPoint:      geometry.NewVec2(face, ps.ball.Position.Y),
		ContactNormal:     geometry.NewVec2(dir, 0),
		OtherBodyVelocity: geometry.Vec2{},
		Kind:              physics.ContactPaddle,
		Paddle:            paddle,
		Collider:          paddle.Side.String(),
	}
	if ps.contacts.Handle(ps.ball, ev) {
		// 把球放回球拍表面，避免下一步仍然重叠
		ps.ball.Position.X = face + dir*ps.ball.Radius
	}
}

// checkWallContact 墙碰撞
func (ps *PhysicsSystem) checkWallContact(wall *entities.Wall) {
	if !wall.IsActive() {
		return
	}
	if !ps.checkAABBCollision(ps.ball.Position, ps.ballExtents(), wall.Center, wall.HalfExtents) {
		return
	}

	ps.contacts.Handle(ps.ball, physics.CollisionEvent{
		ContactPoint:  wall.InnerSurface(ps.ball.Position),
		ContactNormal: wall.Normal,
		Kind:          physics.ContactWall,
		Collider:      wall.Name,
	})
}
