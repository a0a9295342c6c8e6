package game

import (
	"fmt"
	"math"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
)

// Snapshot 会话的只读快照，供表现层每帧轮询
type Snapshot struct {
	State      State
	Score      float64
	ScoreText  string // floor(score)
	Lives      int
	Balance    int
	BestScore  int
	Combo      int
	Multiplier float64
	// MultiplierText 倍率显示文本（保留一位小数，如 "x1.2"）
	MultiplierText string

	SlowTimeSeconds int // 减速剩余秒数，0 表示未激活
	MagnetSeconds   int // 磁铁剩余秒数，0 表示未激活

	Catcher      components.Catcher
	MagnetActive bool
	Entities     []components.FallingEntity

	Status string

	// 非游戏状态下的遮罩文本
	OverlayTitle string
	OverlayLines []string

	// 商店按钮可用性
	CanBuyLife     bool
	CanBuySlowTime bool
	CanBuyMagnet   bool
}

// Snapshot 返回当前会话状态的副本
func (s *Session) Snapshot() Snapshot {
	finalScore := int(math.Floor(s.score))
	snap := Snapshot{
		State:           s.state,
		Score:           s.score,
		ScoreText:       fmt.Sprintf("%d", finalScore),
		Lives:           s.lives,
		Balance:         s.balance,
		BestScore:       s.bestScore,
		Combo:           s.combo,
		Multiplier:      s.Multiplier(),
		MultiplierText:  fmt.Sprintf("x%.1f", s.Multiplier()),
		SlowTimeSeconds: s.slowTime.SecondsRemaining(config.TicksPerSecond),
		MagnetSeconds:   s.magnet.SecondsRemaining(config.TicksPerSecond),
		Catcher:         *s.catcher,
		MagnetActive:    s.magnet.Active(),
		Entities:        s.entities.Values(),
		Status:          s.status,
		CanBuyLife:      s.CanPurchase(ItemLife),
		CanBuySlowTime:  s.CanPurchase(ItemSlowTime),
		CanBuyMagnet:    s.CanPurchase(ItemMagnet),
	}

	switch s.state {
	case StateMenu:
		snap.OverlayTitle = "CRYPTO WOLF"
		snap.OverlayLines = []string{"Press Start or click the screen"}
	case StatePaused:
		snap.OverlayTitle = "PAUSED"
		snap.OverlayLines = []string{"Press P or click to resume"}
	case StateGameOver:
		snap.OverlayTitle = "GAME OVER"
		snap.OverlayLines = []string{
			fmt.Sprintf("Tokens caught: %d", finalScore),
			"Press Start to play again",
		}
	}
	return snap
}
