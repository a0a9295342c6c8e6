package game

import (
	"fmt"

	"github.com/decker502/cryptowolf/pkg/config"
)

// HUDLines 返回 HUD 文本行（ebiten 和终端前端共用）
//
// 参数：
//   - snap: 会话快照
//   - rules: 规则配置（决定商店显示哪些商品）
//   - soundOn: 声音开关状态
//
// 返回：
//   - []string: 分数行、计时器+商店行，以及非空时的状态行
func HUDLines(snap Snapshot, rules config.RulesConfig, soundOn bool) []string {
	lines := []string{
		fmt.Sprintf("Score %s  Best %d  Lives %d/%d  %d TOK  %s",
			snap.ScoreText, snap.BestScore, snap.Lives, config.MaxLives, snap.Balance, snap.MultiplierText),
	}

	var timers string
	if snap.SlowTimeSeconds > 0 {
		timers += fmt.Sprintf("Slow %ds  ", snap.SlowTimeSeconds)
	}
	if snap.MagnetSeconds > 0 {
		timers += fmt.Sprintf("Magnet %ds  ", snap.MagnetSeconds)
	}
	lines = append(lines, timers+ShopLine(snap, rules, soundOn))

	if snap.Status != "" {
		lines = append(lines, snap.Status)
	}
	return lines
}

// ShopLine 商店和声音按键提示，不可用的商品用 "-" 标记
func ShopLine(snap Snapshot, rules config.RulesConfig, soundOn bool) string {
	line := fmt.Sprintf("[L]ife %d%s", rules.LifeCost, availability(snap.CanBuyLife))
	if rules.BonusesPurchasable {
		line += fmt.Sprintf(" [S]low %d%s [M]agnet %d%s",
			rules.SlowTimeCost, availability(snap.CanBuySlowTime),
			rules.MagnetCost, availability(snap.CanBuyMagnet))
	}
	sound := "off"
	if soundOn {
		sound = "on"
	}
	return line + " [N] sound " + sound
}

func availability(ok bool) string {
	if ok {
		return ""
	}
	return "-"
}
