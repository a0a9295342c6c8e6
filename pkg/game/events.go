package game

import "github.com/decker502/cryptowolf/pkg/components"

// EventType 会话事件类型
type EventType int

const (
	EventGameStarted EventType = iota
	EventPaused
	EventResumed
	EventCaught
	EventMissed
	EventBonusExpired
	EventPurchased
	EventPurchaseFailed
	EventGameOver
)

var eventNames = map[EventType]string{
	EventGameStarted:    "game_started",
	EventPaused:         "paused",
	EventResumed:        "resumed",
	EventCaught:         "caught",
	EventMissed:         "missed",
	EventBonusExpired:   "bonus_expired",
	EventPurchased:      "purchased",
	EventPurchaseFailed: "purchase_failed",
	EventGameOver:       "game_over",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event 会话事件
// 音频、指标等协作者通过 Listener 订阅事件，会话本身不持有任何表现层句柄
type Event struct {
	Type    EventType
	Kind    components.EntityKind // Caught / Missed / BonusExpired 时有效
	Item    Item                  // Purchased / PurchaseFailed 时有效
	RunID   string                // 当前局的ID
	Message string                // 状态文本
	State   State                 // 事件发生后的会话状态
	Score   float64
	Lives   int
	Balance int
	Combo   int
}

// Listener 会话事件订阅者
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 允许普通函数作为 Listener
type ListenerFunc func(e Event)

// OnEvent 实现 Listener 接口
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
