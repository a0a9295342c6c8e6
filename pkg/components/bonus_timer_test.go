package components

import "testing"

func TestBonusTimer_ExpiresExactlyOnce(t *testing.T) {
	timer := BonusTimerComponent{Name: "magnet"}
	timer.Activate(3)

	var expiredAt []int
	for i := 1; i <= 5; i++ {
		wasActive, expired := timer.Tick()
		if i <= 3 && !wasActive {
			t.Errorf("tick %d: should be active", i)
		}
		if i > 3 && wasActive {
			t.Errorf("tick %d: should be inactive", i)
		}
		if expired {
			expiredAt = append(expiredAt, i)
		}
	}

	if len(expiredAt) != 1 || expiredAt[0] != 3 {
		t.Errorf("expired at %v, want [3]", expiredAt)
	}
	if timer.Active() {
		t.Error("timer should be inactive after expiry")
	}
}

func TestBonusTimer_SecondsRemaining(t *testing.T) {
	timer := BonusTimerComponent{}
	tests := []struct {
		ticks int
		want  int
	}{
		{0, 0}, {1, 1}, {60, 1}, {61, 2}, {600, 10}, {599, 10},
	}
	for _, tt := range tests {
		timer.TicksRemaining = tt.ticks
		if got := timer.SecondsRemaining(60); got != tt.want {
			t.Errorf("SecondsRemaining(%d ticks) = %d, want %d", tt.ticks, got, tt.want)
		}
	}
}
