package game

import (
	"fmt"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
)

// Item 商店商品
type Item string

const (
	ItemLife     Item = "life"
	ItemSlowTime Item = "slowtime"
	ItemMagnet   Item = "magnet"
)

// ParseItem 解析商品名称
func ParseItem(name string) (Item, error) {
	switch Item(name) {
	case ItemLife, ItemSlowTime, ItemMagnet:
		return Item(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownItem, name)
	}
}

// Price 返回商品在给定规则下的价格
func (i Item) Price(rules config.RulesConfig) int {
	switch i {
	case ItemLife:
		return rules.LifeCost
	case ItemSlowTime:
		return rules.SlowTimeCost
	case ItemMagnet:
		return rules.MagnetCost
	default:
		return 0
	}
}

// bonusKind 返回奖励类商品对应的下落物类型
func (i Item) bonusKind() (components.EntityKind, bool) {
	switch i {
	case ItemSlowTime:
		return components.KindSlowTimeBonus, true
	case ItemMagnet:
		return components.KindMagnetBonus, true
	default:
		return 0, false
	}
}
