package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer 一个指针位置（触摸点或鼠标，屏幕坐标）
type Pointer struct {
	X, Y int
}

// ActivePointers 返回当前所有指针
// 有触摸时返回全部触摸点（支持双人同屏），否则返回鼠标位置
func ActivePointers() []Pointer {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		pointers := make([]Pointer, 0, len(touchIDs))
		for _, id := range touchIDs {
			x, y := ebiten.TouchPosition(id)
			pointers = append(pointers, Pointer{X: x, Y: y})
		}
		return pointers
	}

	x, y := ebiten.CursorPosition()
	return []Pointer{{X: x, Y: y}}
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsJustTapped 只关心是否点击，不关心位置
func IsJustTapped() bool {
	tapped, _, _ := IsJustTouchedOrClicked()
	return tapped
}
