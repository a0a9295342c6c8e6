package game

import "errors"

// 会话操作的领域错误
// 所有错误都会同时写入状态文本；返回值只供需要分支处理的调用方使用
var (
	// ErrInsufficientFunds 余额不足以支付购买
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidStateTransition 当前状态不允许该操作（如非游戏中暂停）
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrItemUnavailable 当前规则不出售该商品
	ErrItemUnavailable = errors.New("item unavailable")
	// ErrUnknownItem 未知商品
	ErrUnknownItem = errors.New("unknown item")
)
