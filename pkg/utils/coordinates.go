// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在球场中心，X 向右，Y 向上，单位为世界单位
//   - **屏幕坐标**：原点在窗口左上角，X 向右，Y 向下，单位为像素
//
// 转换公式：
//
//	screenX = Width/2  + world.X * PixelsPerUnit
//	screenY = Height/2 - world.Y * PixelsPerUnit
package utils

import (
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/geometry"
)

// Viewport 逻辑屏幕
type Viewport struct {
	Width         int
	Height        int
	PixelsPerUnit float64
}

// NewViewport 根据显示配置创建视口
func NewViewport(display config.DisplayConfig) Viewport {
	return Viewport{
		Width:         display.Width,
		Height:        display.Height,
		PixelsPerUnit: display.PixelsPerUnit,
	}
}

// WorldToScreen 世界坐标 → 屏幕坐标
func (v Viewport) WorldToScreen(p geometry.Vec2) (float64, float64) {
	return float64(v.Width)/2 + p.X*v.PixelsPerUnit,
		float64(v.Height)/2 - p.Y*v.PixelsPerUnit
}

// ScreenToWorld 屏幕坐标 → 世界坐标
func (v Viewport) ScreenToWorld(x, y float64) geometry.Vec2 {
	if v.PixelsPerUnit == 0 {
		return geometry.Vec2{}
	}
	return geometry.NewVec2(
		(x-float64(v.Width)/2)/v.PixelsPerUnit,
		(float64(v.Height)/2-y)/v.PixelsPerUnit,
	)
}

// Scale 世界长度 → 像素长度
func (v Viewport) Scale(length float64) float64 {
	return length * v.PixelsPerUnit
}
