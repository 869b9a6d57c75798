//go:build !mobile

// Package mobile 是 ebitenmobile 的绑定入口
//
// 普通构建只包含这个占位文件，真正的绑定代码在 mobile.go 和 embed.go，
// 需要 -tags mobile 才会编译。
package mobile

// Dummy 让包在桌面端构建时仍有导出符号
func Dummy() {}
