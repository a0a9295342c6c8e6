package game

import (
	"fmt"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
)

// resolveCatch 接住结算
// 先增加连击数，再用新的连击数计算倍率
func (s *Session) resolveCatch(e components.FallingEntity) {
	s.combo++
	multiplier := multiplierFor(s.combo)

	var message string
	switch e.Kind {
	case components.KindCoin:
		s.score += 1 * multiplier
		s.balance += 1
		message = fmt.Sprintf("Token caught! Combo x%.1f", multiplier)

	case components.KindGoldenCoin:
		s.score += 10 * multiplier
		s.balance += 10
		message = fmt.Sprintf("GOLD! +10 TOK, +10 points! Combo x%.1f", multiplier)

	case components.KindHazard:
		s.balance = max(0, s.balance-config.HazardPenalty)
		s.combo = 0
		if s.rules.HazardCostsLife {
			s.loseLife()
			message = fmt.Sprintf("Danger! Lost %d TOK and 1 life!", config.HazardPenalty)
		} else {
			message = fmt.Sprintf("Danger! Lost %d TOK!", config.HazardPenalty)
		}

	case components.KindSlowTimeBonus, components.KindMagnetBonus:
		message = s.activateBonus(e.Kind) + "!"
	}

	s.notify(Event{Type: EventCaught, Kind: e.Kind}, message)
}

// resolveMiss 漏接结算
// 危险币漏掉对玩家有利，不做任何惩罚（有意的不对称）
func (s *Session) resolveMiss(e components.FallingEntity) {
	s.combo = 0

	var message string
	switch {
	case e.Kind.IsToken():
		s.loseLife()
		message = fmt.Sprintf("Token missed! Lives left: %d", s.lives)
	case e.Kind == components.KindHazard:
		message = "The dangerous token passed by. Lucky."
	case e.Kind.IsBonus():
		message = "Bonus missed."
	}

	s.notify(Event{Type: EventMissed, Kind: e.Kind}, message)
}

// activateBonus 激活奖励（接住或购买），连击清零
func (s *Session) activateBonus(kind components.EntityKind) string {
	s.combo = 0
	seconds := config.BonusDurationTicks / config.TicksPerSecond

	switch kind {
	case components.KindSlowTimeBonus:
		s.slowTime.Activate(config.BonusDurationTicks)
		return fmt.Sprintf("Slow-time activated (%ds)", seconds)
	case components.KindMagnetBonus:
		s.magnet.Activate(config.BonusDurationTicks)
		s.catcher.SetMagnet(true)
		return fmt.Sprintf("Magnet activated (%ds)", seconds)
	}
	return ""
}

// loseLife 扣除一条生命，最低为 0
func (s *Session) loseLife() {
	s.lives = max(0, s.lives-1)
}

// Purchase 以规则中的价格购买商品
func (s *Session) Purchase(item Item) error {
	return s.PurchaseItem(item, item.Price(s.rules))
}

// PurchaseItem 购买商品
//
// 规则：
//   - 奖励类商品（slowtime/magnet）仅在规则允许且游戏进行中时可购买，先于余额检查
//   - 余额不足返回 ErrInsufficientFunds，状态不变
//   - 成功后扣款、立即保存，再应用效果
//   - life：生命 +1（上限 MaxLives，已满时拒绝且不扣款）；在 Menu/GameOver 状态下购买会直接开始新局
//
// 返回：
//   - error: 失败原因（同时写入状态文本）
func (s *Session) PurchaseItem(item Item, cost int) error {
	if _, err := ParseItem(string(item)); err != nil {
		s.notify(Event{Type: EventPurchaseFailed, Item: item}, fmt.Sprintf("Unknown item %q", item))
		return err
	}

	if kind, isBonus := item.bonusKind(); isBonus {
		if !s.rules.BonusesPurchasable {
			s.notify(Event{Type: EventPurchaseFailed, Item: item}, fmt.Sprintf("%s is not sold here", kind))
			return ErrItemUnavailable
		}
		if s.state != StatePlaying {
			s.notify(Event{Type: EventPurchaseFailed, Item: item}, "Bonuses can only be bought during a game")
			return ErrInvalidStateTransition
		}
	}

	if item == ItemLife && s.lives >= config.MaxLives {
		s.notify(Event{Type: EventPurchaseFailed, Item: item}, "Lives are already full")
		return ErrItemUnavailable
	}

	if s.balance < cost {
		s.notify(Event{Type: EventPurchaseFailed, Item: item}, fmt.Sprintf("Not enough tokens (need %d TOK)", cost))
		return ErrInsufficientFunds
	}

	s.balance -= cost
	s.store.Save(s.bestScore, s.balance)

	var message string
	switch item {
	case ItemLife:
		s.lives = min(s.lives+1, config.MaxLives)
		message = "+1 life purchased!"
	case ItemSlowTime:
		message = s.activateBonus(components.KindSlowTimeBonus) + " (purchased)"
	case ItemMagnet:
		message = s.activateBonus(components.KindMagnetBonus) + " (purchased)"
	}
	s.notify(Event{Type: EventPurchased, Item: item}, message)

	if item == ItemLife && (s.state == StateMenu || s.state == StateGameOver) {
		_ = s.StartGame()
	}
	return nil
}

// CanPurchase 商品按钮是否可用（余额足够且效果有意义）
func (s *Session) CanPurchase(item Item) bool {
	if s.balance < item.Price(s.rules) {
		return false
	}
	switch item {
	case ItemLife:
		return s.lives < config.MaxLives
	case ItemSlowTime, ItemMagnet:
		return s.rules.BonusesPurchasable && s.state == StatePlaying
	default:
		return false
	}
}
