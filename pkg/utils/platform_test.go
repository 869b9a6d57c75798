//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("PONG_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 测试通过环境变量模拟移动端
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("PONG_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when PONG_MOBILE_EMULATE=1")
	}
}
