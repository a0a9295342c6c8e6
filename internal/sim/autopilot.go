// Package sim drives a game session without a human player.
package sim

import (
	"math"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/game"
)

// Options tunes the autopilot.
type Options struct {
	// MaxStep is the furthest the pointer moves per tick, in pixels.
	MaxStep float64
	// BuyLifeAt buys a life when lives drop to this value and the balance allows it. 0 disables.
	BuyLifeAt int
	// BuyBonuses buys slow-time and magnet when the rules sell them and they are affordable.
	BuyBonuses bool
}

// DefaultOptions returns a reasonably competent bot.
func DefaultOptions() Options {
	return Options{
		MaxStep:    6,
		BuyLifeAt:  1,
		BuyBonuses: true,
	}
}

// Autopilot moves the catcher toward the next catchable entity and away from hazards.
type Autopilot struct {
	opts    Options
	pointer float64
}

// NewAutopilot creates an autopilot with the pointer at the catcher's start position.
func NewAutopilot(opts Options, startX float64) *Autopilot {
	if opts.MaxStep <= 0 {
		opts.MaxStep = DefaultOptions().MaxStep
	}
	return &Autopilot{opts: opts, pointer: startX}
}

// Step issues the commands for one tick: purchases, then a pointer move.
func (a *Autopilot) Step(s *game.Session) {
	if s.State() != game.StatePlaying {
		return
	}

	a.shop(s)

	snap := s.Snapshot()
	target := Target(snap)
	a.pointer += clamp(target-a.pointer, -a.opts.MaxStep, a.opts.MaxStep)
	s.MovePointer(a.pointer)
}

func (a *Autopilot) shop(s *game.Session) {
	if a.opts.BuyLifeAt > 0 && s.Lives() <= a.opts.BuyLifeAt && s.CanPurchase(game.ItemLife) {
		_ = s.Purchase(game.ItemLife)
	}
	if !a.opts.BuyBonuses {
		return
	}
	if s.SlowTimeTicksRemaining() == 0 && s.CanPurchase(game.ItemSlowTime) {
		_ = s.Purchase(game.ItemSlowTime)
	}
	if s.MagnetTicksRemaining() == 0 && s.CanPurchase(game.ItemMagnet) {
		_ = s.Purchase(game.ItemMagnet)
	}
}

// Target returns the pointer X the catcher should head for.
//
// The goal is the lowest entity worth catching that has not yet passed the catcher.
// When a hazard arrives first within the catcher's reach of that goal, the goal moves
// sideways by one catcher width, toward the centre of the field.
func Target(snap game.Snapshot) float64 {
	c := snap.Catcher
	goal, ok := lowest(snap.Entities, c, func(k components.EntityKind) bool { return k != components.KindHazard })
	if !ok {
		return c.CenterX()
	}

	for _, e := range snap.Entities {
		if e.Kind != components.KindHazard || e.Y < goal.Y || passed(e, c) {
			continue
		}
		if math.Abs(e.X-goal.X) <= c.Width/2 {
			if e.X >= goal.X {
				return goal.X - c.Width/2
			}
			return goal.X + c.Width/2
		}
	}
	return goal.X
}

// lowest returns the entity closest to the catcher's top edge among those accepted by keep.
func lowest(entities []components.FallingEntity, c components.Catcher, keep func(components.EntityKind) bool) (components.FallingEntity, bool) {
	var best components.FallingEntity
	found := false
	for _, e := range entities {
		if !keep(e.Kind) || passed(e, c) {
			continue
		}
		if !found || e.Y > best.Y {
			best = e
			found = true
		}
	}
	return best, found
}

// passed reports whether e is already below the catcher's top edge and can no longer be caught.
func passed(e components.FallingEntity, c components.Catcher) bool {
	return e.Y-e.Radius > c.Y
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
