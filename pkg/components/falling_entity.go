package components

// FallingEntity 下落物组件
// 所有类型共用同一套运动与碰撞逻辑，类型差异只体现在 kindTable 的常量属性中
type FallingEntity struct {
	Kind   EntityKind
	X      float64 // 圆心X坐标
	Y      float64 // 圆心Y坐标
	Radius float64 // 半径
	Speed  float64 // 每 tick 下落的像素数（未乘减速系数）
}

// NewFallingEntity 创建下落物，初始位置在画布上方 y = -2*radius
//
// 参数：
//   - kind: 下落物类型
//   - x: 圆心X坐标（由 Spawner 随机生成）
//   - speed: 已乘类型系数的下落速度
func NewFallingEntity(kind EntityKind, x, speed float64) FallingEntity {
	radius := kind.Attributes().Radius
	return FallingEntity{
		Kind:   kind,
		X:      x,
		Y:      -radius * 2,
		Radius: radius,
		Speed:  speed,
	}
}

// Advance 下落一个 tick
// slowFactor: 减速激活时为 0.5，否则为 1.0
func (e *FallingEntity) Advance(slowFactor float64) {
	e.Y += e.Speed * slowFactor
}

// CollidesWith 检查是否被狼接住
//
// 这是"水平带 + 垂直阈值"判定，不是圆与矩形的几何相交：
// 圆心X落在狼的水平范围内，且圆的底部到达狼的顶边即算接住。
func (e *FallingEntity) CollidesWith(c *Catcher) bool {
	return e.Y+e.Radius >= c.Y &&
		e.X >= c.X &&
		e.X <= c.X+c.Width
}

// IsOffscreen 检查是否已完全离开画布底部
func (e *FallingEntity) IsOffscreen(height float64) bool {
	return e.Y-e.Radius > height
}
