package tui

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/cryptowolf/internal/tones"
	"github.com/decker502/cryptowolf/pkg/game"
)

func TestCueStreamer(t *testing.T) {
	for id, notes := range tones.Cues {
		t.Run(id, func(t *testing.T) {
			streamer, err := cueStreamer(notes, sampleRate, 1)
			if err != nil {
				t.Fatalf("cueStreamer() error: %v", err)
			}

			want := 0
			for _, n := range notes {
				want += sampleRate.N(time.Duration(n.Duration * float64(time.Second)))
			}

			buf := make([][2]float64, 512)
			total := 0
			peak := 0.0
			for {
				n, ok := streamer.Stream(buf)
				for i := 0; i < n; i++ {
					peak = math.Max(peak, math.Abs(buf[i][0]))
					if buf[i][0] != buf[i][1] {
						t.Fatalf("channels differ at frame %d", total+i)
					}
				}
				total += n
				if !ok || n == 0 {
					break
				}
			}

			if total != want {
				t.Errorf("streamed %d frames, want %d", total, want)
			}
			if peak > tones.Amplitude+1e-9 {
				t.Errorf("peak %v exceeds amplitude %v", peak, tones.Amplitude)
			}
		})
	}
}

func TestSoundWithoutSpeaker(t *testing.T) {
	s := NewSound(nil, false)
	if s.Play(tones.CueCatch) {
		t.Error("Play should fail without an initialized speaker")
	}
	if !s.SoundEnabled() {
		t.Error("nil settings means sound on")
	}
	if !s.ToggleSound() {
		t.Error("ToggleSound without settings keeps sound on")
	}
	// 未初始化时 OnEvent 和 Close 都是空操作
	s.OnEvent(game.Event{Type: game.EventCaught})
	s.Close()
}
