package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/pong/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// KeyJustPressedFunc 按键边沿检测，默认 inpututil.IsKeyJustPressed
type KeyJustPressedFunc func(key ebiten.Key) bool

// Input 场景使用的输入源
type Input struct {
	KeyJustPressed KeyJustPressedFunc
	// Tapped 是否刚刚点击或触摸，为 nil 时视为没有点击
	Tapped func() bool
}

// hudFace 比分与提示文字使用的位图字体
var hudFace = text.NewGoXFace(basicfont.Face7x13)

var hudColor = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}

func (in Input) anyJustPressed(keys ...ebiten.Key) bool {
	pressed := in.KeyJustPressed
	if pressed == nil {
		pressed = inpututil.IsKeyJustPressed
	}
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

func (in Input) tapped() bool {
	return in.Tapped != nil && in.Tapped()
}

// drawCentered 在水平居中位置绘制一行文字
func drawCentered(screen *ebiten.Image, msg string, screenWidth, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screenWidth)/2, float64(y))
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, msg, hudFace, op)
}

// drawText 从 (x, y) 左对齐绘制一行文字
func drawText(screen *ebiten.Image, msg string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(hudColor)
	text.Draw(screen, msg, hudFace, op)
}
