package components

import "github.com/decker502/cryptowolf/pkg/config"

// Catcher 狼（玩家控制的接物者）
// X 为左边缘；Y、Height 固定；Width 在磁铁激活时翻倍
type Catcher struct {
	X         float64
	Y         float64
	Width     float64
	Height    float64
	BaseWidth float64

	fieldWidth float64 // 画布宽度，用于限制移动范围
}

// NewCatcher 根据布局创建狼，初始位于画布水平中央
func NewCatcher(layout config.Layout) *Catcher {
	c := &Catcher{
		Y:          layout.CatcherY(),
		Width:      layout.CatcherBaseWidth,
		Height:     layout.CatcherHeight,
		BaseWidth:  layout.CatcherBaseWidth,
		fieldWidth: layout.Width,
	}
	c.Center()
	return c
}

// Move 将狼的中心移动到 pointerX（游戏坐标），并限制在 [0, W-width]
// 限制范围是狼自身的职责，输入层只负责坐标归一化
func (c *Catcher) Move(pointerX float64) {
	c.X = pointerX - c.Width/2
	c.clamp()
}

// Center 将狼放回画布中央
func (c *Catcher) Center() {
	c.X = c.fieldWidth/2 - c.Width/2
}

// SetMagnet 激活/取消磁铁（捕获宽度翻倍/恢复）
// 左边缘保持不动，直到下一次 Move 才重新限制范围
func (c *Catcher) SetMagnet(active bool) {
	if active {
		c.Width = c.BaseWidth * config.MagnetWidthFactor
	} else {
		c.Width = c.BaseWidth
	}
}

// MagnetActive 当前是否处于加宽状态
func (c *Catcher) MagnetActive() bool {
	return c.Width > c.BaseWidth
}

// CenterX 返回狼的水平中心
func (c *Catcher) CenterX() float64 {
	return c.X + c.Width/2
}

func (c *Catcher) clamp() {
	if c.X < 0 {
		c.X = 0
	}
	if c.X+c.Width > c.fieldWidth {
		c.X = c.fieldWidth - c.Width
	}
}
