package geometry

import "math"

// HitOffset 计算归一化击球位置
//
// 返回值范围 [-1, 1]：-1 为球拍底端，0 为中心，+1 为顶端。
// halfHeight <= 0（球拍没有高度）时视为中心击球，返回 0，避免除零产生 NaN。
//
// 参数:
//   - contactY: 接触点的 Y 坐标
//   - centerY: 球拍中心的 Y 坐标
//   - halfHeight: 球拍碰撞盒半高
func HitOffset(contactY, centerY, halfHeight float64) float64 {
	if halfHeight <= 0 || math.IsNaN(halfHeight) {
		return 0
	}
	offset := (contactY - centerY) / halfHeight
	if math.IsNaN(offset) {
		return 0
	}
	return Clamp(offset, -1, 1)
}

// LinearAngle 线性映射：angle = hitOffset * maxAngle
func LinearAngle(hitOffset, maxAngle float64) float64 {
	return Clamp(hitOffset, -1, 1) * maxAngle
}

// DeadZoneAngle 带中心死区的映射
//
// |hitOffset| < deadZone 时返回 0（完全水平）；
// 否则把 |hitOffset| 从 [deadZone, 1] 线性缩放到 [0, 1]，保留符号后乘以 maxAngle。
func DeadZoneAngle(hitOffset, maxAngle, deadZone float64) float64 {
	h := Clamp(hitOffset, -1, 1)
	mag := math.Abs(h)
	if mag < deadZone {
		return 0
	}
	if deadZone >= 1 {
		return 0
	}
	scaled := (mag - deadZone) / (1 - deadZone)
	return math.Copysign(scaled*maxAngle, h)
}
