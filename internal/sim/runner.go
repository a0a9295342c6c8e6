package sim

import (
	"context"
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/decker502/cryptowolf/pkg/game"
)

// Report summarizes an autopilot run.
type Report struct {
	Ticks     int            `json:"ticks"`
	Games     int            `json:"games"`
	Finished  int            `json:"finished"`
	BestScore int            `json:"best_score"`
	Balance   int            `json:"balance"`
	Caught    map[string]int `json:"caught"`
	Missed    map[string]int `json:"missed"`
	Purchases map[string]int `json:"purchases"`
	Scores    []int          `json:"scores"`
}

// OnEvent implements game.Listener.
func (r *Report) OnEvent(e game.Event) {
	switch e.Type {
	case game.EventGameStarted:
		r.Games++
	case game.EventCaught:
		r.Caught[e.Kind.String()]++
	case game.EventMissed:
		r.Missed[e.Kind.String()]++
	case game.EventPurchased:
		r.Purchases[string(e.Item)]++
	case game.EventGameOver:
		r.Finished++
		r.Scores = append(r.Scores, int(e.Score))
	}
}

// Run plays ticks frames with the autopilot, restarting after each game over.
// It stops early when ctx is cancelled and still returns the partial report.
func Run(ctx context.Context, s *game.Session, pilot *Autopilot, ticks int) (*Report, error) {
	report := &Report{
		Caught:    make(map[string]int),
		Missed:    make(map[string]int),
		Purchases: make(map[string]int),
	}
	s.AddListener(report)

	var err error
	for report.Ticks < ticks {
		if report.Ticks%1000 == 0 {
			if err = ctx.Err(); err != nil {
				log.Printf("[Sim] Stopped after %d ticks: %v", report.Ticks, err)
				break
			}
		}

		switch s.State() {
		case game.StatePaused:
			_ = s.TogglePause()
		case game.StateMenu, game.StateGameOver:
			_ = s.StartGame()
		}
		pilot.Step(s)
		s.Update()
		report.Ticks++
	}

	report.BestScore = s.BestScore()
	report.Balance = s.Balance()
	return report, err
}

// MeanScore returns the average final score of finished games, 0 when none finished.
func (r *Report) MeanScore() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	total := 0
	for _, s := range r.Scores {
		total += s
	}
	return float64(total) / float64(len(r.Scores))
}

// Summary renders the report as plain text.
func (r *Report) Summary(preset string, seed int64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "preset: %s  seed: %d\n", preset, seed)
	fmt.Fprintf(&sb, "ticks: %d  games: %d (%d finished)\n", r.Ticks, r.Games, r.Finished)
	fmt.Fprintf(&sb, "best score: %d  balance: %d TOK  mean score: %.1f\n", r.BestScore, r.Balance, r.MeanScore())
	fmt.Fprintf(&sb, "caught: %s\n", counts(r.Caught))
	fmt.Fprintf(&sb, "missed: %s\n", counts(r.Missed))
	fmt.Fprintf(&sb, "purchases: %s\n", counts(r.Purchases))
	return sb.String()
}

func counts(m map[string]int) string {
	if len(m) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}
