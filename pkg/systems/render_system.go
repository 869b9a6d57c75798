package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/decker502/pong/pkg/geometry"
	"github.com/decker502/pong/pkg/utils"
)

var (
	courtColor  = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}
	lineColor   = color.RGBA{R: 0x50, G: 0x58, B: 0x68, A: 0xff}
	objectColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

// RenderSystem 绘制球场、球拍和球
// 世界坐标原点在屏幕中心，Y 轴向上
type RenderSystem struct {
	ball     *entities.Ball
	paddles  []*entities.Paddle
	walls    []*entities.Wall
	court    config.CourtConfig
	viewport utils.Viewport
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(ball *entities.Ball, paddles []*entities.Paddle, walls []*entities.Wall,
	court config.CourtConfig, display config.DisplayConfig) *RenderSystem {
	return &RenderSystem{
		ball:     ball,
		paddles:  paddles,
		walls:    walls,
		court:    court,
		viewport: utils.NewViewport(display),
	}
}

// WorldToScreen 世界坐标转屏幕像素坐标
func (rs *RenderSystem) WorldToScreen(p geometry.Vec2) (float32, float32) {
	x, y := rs.viewport.WorldToScreen(p)
	return float32(x), float32(y)
}

// Draw 绘制当前帧
func (rs *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(courtColor)
	rs.drawCenterLine(screen)

	for _, w := range rs.walls {
		rs.drawBox(screen, w.Center, w.HalfExtents, lineColor)
	}
	for _, p := range rs.paddles {
		rs.drawBox(screen, p.Position, geometry.NewVec2(p.HalfWidth, p.HalfHeight), objectColor)
	}

	// 球只在激活（比赛进行中）时显示
	if rs.ball.IsActive() {
		x, y := rs.WorldToScreen(rs.ball.Position)
		r := float32(rs.viewport.Scale(rs.ball.Radius))
		vector.DrawFilledCircle(screen, x, y, r, objectColor, true)
	}
}

func (rs *RenderSystem) drawBox(screen *ebiten.Image, center, half geometry.Vec2, clr color.Color) {
	x, y := rs.WorldToScreen(geometry.NewVec2(center.X-half.X, center.Y+half.Y))
	w := float32(rs.viewport.Scale(half.X * 2))
	h := float32(rs.viewport.Scale(half.Y * 2))
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

// drawCenterLine 中线虚线
func (rs *RenderSystem) drawCenterLine(screen *ebiten.Image) {
	const dash = 0.4
	midX := (rs.court.LeftBoundary + rs.court.RightBoundary) / 2
	for y := -rs.court.WallY; y < rs.court.WallY; y += dash * 2 {
		x0, y0 := rs.WorldToScreen(geometry.NewVec2(midX, y))
		x1, y1 := rs.WorldToScreen(geometry.NewVec2(midX, y+dash))
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, lineColor, false)
	}
}
