package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cryptowolf/pkg/game"
)

func newTestTerminal(t *testing.T) *Terminal {
	t.Helper()
	s := game.NewSession(game.SessionOptions{})
	sound := NewSound(game.NewSettingsManager(nil), false)
	return newTerminal(newFakeScreen(80, 24), s, sound)
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want command
	}{
		{"ctrl-c quits", tcell.KeyCtrlC, 0, cmdQuit},
		{"q quits", tcell.KeyRune, 'q', cmdQuit},
		{"Q quits", tcell.KeyRune, 'Q', cmdQuit},
		{"enter starts", tcell.KeyEnter, 0, cmdStart},
		{"space starts", tcell.KeyRune, ' ', cmdStart},
		{"escape pauses", tcell.KeyEscape, 0, cmdPause},
		{"p pauses", tcell.KeyRune, 'p', cmdPause},
		{"left arrow", tcell.KeyLeft, 0, cmdLeft},
		{"right arrow", tcell.KeyRight, 0, cmdRight},
		{"l buys a life", tcell.KeyRune, 'l', cmdBuyLife},
		{"S buys slow-time", tcell.KeyRune, 'S', cmdBuySlowTime},
		{"m buys magnet", tcell.KeyRune, 'm', cmdBuyMagnet},
		{"n toggles sound", tcell.KeyRune, 'n', cmdToggleSound},
		{"unbound rune", tcell.KeyRune, 'z', cmdNone},
		{"unbound key", tcell.KeyTab, 0, cmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyCommand(tt.key, tt.r); got != tt.want {
				t.Errorf("keyCommand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyLifecycle(t *testing.T) {
	term := newTestTerminal(t)
	s := term.Session()

	if !term.apply(cmdStart) || s.State() != game.StatePlaying {
		t.Fatalf("start: state = %v", s.State())
	}
	term.apply(cmdPause)
	if s.State() != game.StatePaused {
		t.Fatalf("pause: state = %v", s.State())
	}
	term.apply(cmdPause)
	if s.State() != game.StatePlaying {
		t.Fatalf("resume: state = %v", s.State())
	}
	if term.apply(cmdQuit) {
		t.Error("quit should stop the loop")
	}
}

func TestApplyArrowKeys(t *testing.T) {
	term := newTestTerminal(t)
	s := term.Session()

	term.apply(cmdLeft)
	if got := s.Catcher().CenterX(); got != 275 {
		t.Errorf("catcher should not move outside Playing, centre = %v", got)
	}

	term.apply(cmdStart)
	term.apply(cmdLeft)
	if got := s.Catcher().CenterX(); got != 275-keyboardStep {
		t.Errorf("after left centre = %v, want %v", got, 275-keyboardStep)
	}
	term.apply(cmdRight)
	term.apply(cmdRight)
	if got := s.Catcher().CenterX(); got != 275+keyboardStep {
		t.Errorf("after right centre = %v, want %v", got, 275+keyboardStep)
	}
}

func TestApplyToggleSound(t *testing.T) {
	term := newTestTerminal(t)
	if !term.sound.SoundEnabled() {
		t.Fatal("sound should default to on")
	}
	term.apply(cmdToggleSound)
	if term.sound.SoundEnabled() {
		t.Error("sound should be off after toggling")
	}
}

func TestApplyPurchaseWithoutFunds(t *testing.T) {
	term := newTestTerminal(t)
	s := term.Session()
	term.apply(cmdStart)

	term.apply(cmdBuyLife)
	if s.Lives() != 3 || s.Balance() != 0 {
		t.Errorf("lives=%d balance=%d, want 3 and 0", s.Lives(), s.Balance())
	}
}

func TestHandlePointer(t *testing.T) {
	term := newTestTerminal(t)
	s := term.Session()

	// 菜单中点击画布开始游戏
	term.handlePointer(40, 10, true)
	if s.State() != game.StatePlaying {
		t.Fatalf("click in menu: state = %v", s.State())
	}
	term.handlePointer(40, 10, false)

	// 第 57 列的中心 -> 游戏X 395.3125
	term.handlePointer(57, 10, false)
	if got := s.Catcher().CenterX(); got != 395.3125 {
		t.Errorf("centre = %v, want 395.3125", got)
	}

	// HUD 行不属于画布
	term.handlePointer(10, 0, false)
	if got := s.Catcher().CenterX(); got != 395.3125 {
		t.Errorf("pointer over the HUD moved the catcher to %v", got)
	}

	term.apply(cmdPause)
	term.handlePointer(57, 10, true)
	if s.State() != game.StatePlaying {
		t.Fatalf("click while paused should resume, state = %v", s.State())
	}

	// 按住不放不会再次触发点击
	term.apply(cmdPause)
	term.handlePointer(57, 10, true)
	if s.State() != game.StatePaused {
		t.Errorf("held button should not click again, state = %v", s.State())
	}
}
