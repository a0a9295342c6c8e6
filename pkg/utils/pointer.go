// Package utils 提供输入、坐标和平台相关的工具函数
package utils

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入，坐标为前端的逻辑坐标
type PointerState struct {
	// X, Y 指针位置
	X, Y int
	// JustPressed 本帧是否刚发生点击/触摸
	JustPressed bool
	// IsTouching 是否有活动的触摸
	IsTouching bool
	// Present 指针位置是否有效（触摸设备上没有触摸时为 false）
	Present bool
}

// InField 检查指针是否位于画布范围内
func (p PointerState) InField(width, height int) bool {
	return p.Present && p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}
