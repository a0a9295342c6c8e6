package tones

import (
	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/game"
)

// ForEvent returns the cue played for a session event, or "" when the event is silent.
// Catching a hazard sounds like a miss.
func ForEvent(e game.Event) string {
	switch e.Type {
	case game.EventCaught:
		if e.Kind == components.KindHazard {
			return CueMiss
		}
		return CueCatch
	case game.EventMissed:
		if e.Kind.IsToken() {
			return CueMiss
		}
	case game.EventGameOver:
		return CueGameOver
	}
	return ""
}
