package config

// 布局与规则常量
// 本文件定义了游戏画面尺寸、狼（Catcher）的几何参数以及核心数值规则。
// 所有坐标使用"游戏坐标系"（相对于画布左上角，单位为像素），与实际窗口尺寸无关。

// Play Field (画布尺寸)
const (
	// GameWindowWidth 是逻辑画布宽度（W）
	GameWindowWidth = 550

	// GameWindowHeight 是逻辑画布高度（H）
	GameWindowHeight = 350
)

// Catcher Geometry (狼的几何参数)
const (
	// CatcherBaseWidth 是狼的基础宽度（像素），磁铁激活时翻倍
	CatcherBaseWidth = 48.0

	// CatcherHeight 是狼的高度（像素），固定不变
	CatcherHeight = 48.0

	// CatcherBottomOffset 是狼的顶边距离画布底边的距离
	// 狼的 Y = H - CatcherBottomOffset
	CatcherBottomOffset = 55.0

	// MagnetWidthFactor 磁铁激活时捕获宽度的倍数
	MagnetWidthFactor = 2.0
)

// Session Rules (会话数值规则)
const (
	// MaxLives 生命上限（购买和任何结算后都不会超过）
	MaxLives = 5

	// StartingLives 每局开始时的生命数
	StartingLives = 3

	// TicksPerSecond 名义帧率，所有计时均以 tick 为单位
	// 注意：引擎不测量真实时间，实际速度取决于宿主的帧率
	TicksPerSecond = 60

	// BonusDurationTicks 减速/磁铁奖励持续的 tick 数（10 秒 @ 60 TPS）
	BonusDurationTicks = TicksPerSecond * 10

	// SlowTimeFactor 减速激活时下落速度的系数
	SlowTimeFactor = 0.5

	// ComboCap 参与倍率计算的最大连击数
	ComboCap = 20

	// ComboStep 每次连击增加的倍率
	ComboStep = 0.05

	// HazardPenalty 接住危险币扣除的代币数量（余额最低为 0）
	HazardPenalty = 20
)

// Spawn Curve (生成曲线)
const (
	// InitialFallSpeed 初始下落速度（像素/tick）
	InitialFallSpeed = 1.5

	// BaseSpawnInterval 生成间隔的起始值（tick）
	BaseSpawnInterval = 90.0

	// MinSpawnInterval 生成间隔下限（tick）
	MinSpawnInterval = 30.0

	// SpawnIntervalScoreDivisor 分数每增加该值，间隔减少 1 tick
	SpawnIntervalScoreDivisor = 3.0
)

// Layout 描述一局游戏使用的画布和狼的几何参数
// 显式传入 Spawner / Catcher / 碰撞检测，而不是依赖全局常量
type Layout struct {
	Width               float64 // 画布宽度 W
	Height              float64 // 画布高度 H
	CatcherBaseWidth    float64 // 狼的基础宽度
	CatcherHeight       float64 // 狼的高度
	CatcherBottomOffset float64 // 狼顶边到底边的距离
}

// DefaultLayout 返回默认画布布局（550x350）
func DefaultLayout() Layout {
	return Layout{
		Width:               GameWindowWidth,
		Height:              GameWindowHeight,
		CatcherBaseWidth:    CatcherBaseWidth,
		CatcherHeight:       CatcherHeight,
		CatcherBottomOffset: CatcherBottomOffset,
	}
}

// CatcherY 返回狼顶边的 Y 坐标
func (l Layout) CatcherY() float64 {
	return l.Height - l.CatcherBottomOffset
}
