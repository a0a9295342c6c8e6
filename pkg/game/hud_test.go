package game

import (
	"strings"
	"testing"

	"github.com/decker502/cryptowolf/pkg/config"
)

func TestHUDLines(t *testing.T) {
	snap := Snapshot{
		ScoreText:       "12",
		BestScore:       40,
		Lives:           2,
		Balance:         7,
		MultiplierText:  "x1.2",
		SlowTimeSeconds: 4,
		Status:          "Token caught! Combo x1.2",
	}

	lines := HUDLines(snap, config.ClassicRules(), true)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), lines)
	}
	if want := "Score 12  Best 40  Lives 2/5  7 TOK  x1.2"; lines[0] != want {
		t.Errorf("line 0 = %q, want %q", lines[0], want)
	}
	if !strings.HasPrefix(lines[1], "Slow 4s  ") {
		t.Errorf("line 1 should start with the slow-time timer: %q", lines[1])
	}
	if strings.Contains(lines[1], "Magnet") {
		t.Errorf("inactive magnet should not be shown: %q", lines[1])
	}
	if lines[2] != snap.Status {
		t.Errorf("line 2 = %q, want status", lines[2])
	}
}

func TestHUDLinesWithoutStatus(t *testing.T) {
	lines := HUDLines(Snapshot{ScoreText: "0", MultiplierText: "x1.0"}, config.ClassicRules(), false)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), lines)
	}
}

func TestShopLine(t *testing.T) {
	classic := ShopLine(Snapshot{CanBuyLife: true}, config.ClassicRules(), false)
	if want := "[L]ife 15 [N] sound off"; classic != want {
		t.Errorf("classic shop line = %q, want %q", classic, want)
	}

	shop := ShopLine(Snapshot{CanBuyMagnet: true}, config.ShopRules(), true)
	if want := "[L]ife 15- [S]low 25- [M]agnet 30 [N] sound on"; shop != want {
		t.Errorf("shop line = %q, want %q", shop, want)
	}
}
