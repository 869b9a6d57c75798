package entities

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
)

// Wall 墙（球场中任何不是球拍的碰撞体）
type Wall struct {
	Name        string
	Center      geometry.Vec2
	HalfExtents geometry.Vec2
	// Normal 指向球场内部的单位法线
	Normal geometry.Vec2

	active bool
}

// NewCourtWalls 创建上下两面墙
// 墙的内表面位于 ±WallY，法线指向球场中线
func NewCourtWalls(court config.CourtConfig) []*Wall {
	halfThickness := court.WallThickness / 2
	halfLength := (court.RightBoundary - court.LeftBoundary) / 2
	midX := (court.RightBoundary + court.LeftBoundary) / 2

	return []*Wall{
		{
			Name:        "top",
			Center:      geometry.NewVec2(midX, court.WallY+halfThickness),
			HalfExtents: geometry.NewVec2(halfLength, halfThickness),
			Normal:      geometry.NewVec2(0, -1),
		},
		{
			Name:        "bottom",
			Center:      geometry.NewVec2(midX, -court.WallY-halfThickness),
			HalfExtents: geometry.NewVec2(halfLength, halfThickness),
			Normal:      geometry.NewVec2(0, 1),
		},
	}
}

// InnerSurface 返回墙内表面上距离 p 最近的点
func (w *Wall) InnerSurface(p geometry.Vec2) geometry.Vec2 {
	surface := p
	if w.Normal.Y != 0 {
		surface.Y = w.Center.Y + w.Normal.Y*w.HalfExtents.Y
	}
	if w.Normal.X != 0 {
		surface.X = w.Center.X + w.Normal.X*w.HalfExtents.X
	}
	return surface
}

// SetActive 激活 / 停用墙
func (w *Wall) SetActive(active bool) {
	w.active = active
}

// IsActive 墙是否处于激活状态
func (w *Wall) IsActive() bool {
	return w.active
}
