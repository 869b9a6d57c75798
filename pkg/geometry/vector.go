// Package geometry 提供无状态的二维数学工具
//
// 包含向量运算、沿法线反射以及击球位置到反弹角度的映射。
// 本包不持有任何状态，所有函数都是纯函数。
package geometry

import "math"

// Vec2 二维向量（世界坐标，单位：米）
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewVec2 创建向量
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot 点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length 向量长度
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量；零向量返回零向量
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// WithLength 返回方向不变、长度为 length 的向量
// 零向量无方向，保持为零向量
func (v Vec2) WithLength(length float64) Vec2 {
	return v.Normalize().Scale(length)
}

// Reflect 将 v 沿法线 n 反射：v - 2(v·n)n
// n 不要求是单位向量，内部会先归一化；n 为零向量时原样返回 v
func Reflect(v, n Vec2) Vec2 {
	unit := n.Normalize()
	if unit.IsZero() {
		return v
	}
	d := v.Dot(unit)
	return v.Sub(unit.Scale(2 * d))
}

// Clamp 将 value 限制在 [lo, hi] 内
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// NearlyEqual 浮点近似比较
func NearlyEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg 弧度转角度
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
