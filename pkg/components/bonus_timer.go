package components

// BonusTimerComponent 限时奖励计时器
// 以 tick 为单位倒计时；暂停时不调用 Tick，因此计时被冻结而不是衰减
type BonusTimerComponent struct {
	Name           string // 计时器名称，如 "slowtime"
	TicksRemaining int    // 剩余 tick 数，0 表示未激活
}

// Activate 激活（或刷新）奖励，剩余时间重置为 duration
func (t *BonusTimerComponent) Activate(duration int) {
	t.TicksRemaining = duration
}

// Active 奖励是否激活
func (t *BonusTimerComponent) Active() bool {
	return t.TicksRemaining > 0
}

// Tick 倒计时一个 tick
//
// 返回：
//   - wasActive: 本 tick 开始时奖励是否激活（决定本 tick 是否生效）
//   - expired: 本 tick 恰好倒数到 0
func (t *BonusTimerComponent) Tick() (wasActive, expired bool) {
	if t.TicksRemaining <= 0 {
		return false, false
	}
	t.TicksRemaining--
	return true, t.TicksRemaining == 0
}

// Reset 取消奖励
func (t *BonusTimerComponent) Reset() {
	t.TicksRemaining = 0
}

// SecondsRemaining 剩余秒数（向上取整），用于 HUD 显示
func (t *BonusTimerComponent) SecondsRemaining(ticksPerSecond int) int {
	if t.TicksRemaining <= 0 || ticksPerSecond <= 0 {
		return 0
	}
	return (t.TicksRemaining + ticksPerSecond - 1) / ticksPerSecond
}
