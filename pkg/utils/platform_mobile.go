//go:build mobile

package utils

// IsMobile ebitenmobile 构建（-tags mobile）始终为触摸设备
// 指针只来自触摸，光标位置被忽略
func IsMobile() bool {
	return true
}
