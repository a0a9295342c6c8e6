package tui

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/cryptowolf/internal/tones"
	"github.com/decker502/cryptowolf/pkg/game"
)

// sampleRate 终端前端的采样率
const sampleRate = beep.SampleRate(44100)

// Sound 终端前端的音效播放器（beep + speaker）
// 只播放事件音效，没有背景音乐
type Sound struct {
	settings *game.SettingsManager
	ready    bool
}

// NewSound 初始化扬声器
// 初始化失败时静默运行，不返回错误
//
// 参数：
//   - settings: 声音开关和音量来源，可为 nil（声音开启，默认音量）
//   - enabled: 为 false 时不初始化扬声器（-mute）
func NewSound(settings *game.SettingsManager, enabled bool) *Sound {
	s := &Sound{settings: settings}
	if !enabled {
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[Sound] Audio initialization failed: %v", err)
		return s
	}
	s.ready = true
	return s
}

// OnEvent 实现 game.Listener
func (s *Sound) OnEvent(e game.Event) {
	if id := tones.ForEvent(e); id != "" {
		s.Play(id)
	}
}

// Play 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (s *Sound) Play(id string) bool {
	if !s.ready || !s.SoundEnabled() {
		return false
	}
	notes, ok := tones.Cues[id]
	if !ok {
		log.Printf("[Sound] Warning: Sound not found: %s", id)
		return false
	}
	streamer, err := cueStreamer(notes, sampleRate, s.volume())
	if err != nil {
		log.Printf("[Sound] Warning: Failed to synthesize %s: %v", id, err)
		return false
	}
	speaker.Play(streamer)
	return true
}

// ToggleSound 切换声音开关（持久化到设置）
func (s *Sound) ToggleSound() bool {
	if s.settings == nil {
		return true
	}
	enabled := s.settings.ToggleSound()
	log.Printf("[Sound] Sound enabled: %v", enabled)
	return enabled
}

// SoundEnabled 声音是否开启
func (s *Sound) SoundEnabled() bool {
	if s.settings == nil {
		return true
	}
	return s.settings.SoundEnabled()
}

// Close 释放扬声器
func (s *Sound) Close() {
	if s.ready {
		speaker.Clear()
		speaker.Close()
		s.ready = false
	}
}

func (s *Sound) volume() float64 {
	if s.settings == nil {
		return game.DefaultSettings().SoundVolume
	}
	return s.settings.GetSettings().SoundVolume
}

// cueStreamer 把音符序列转换为 beep 流，每个音符线性淡出
func cueStreamer(notes []tones.Note, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		frames := sr.N(time.Duration(n.Duration * float64(time.Second)))
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(frames))
			continue
		}
		sine, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("note %.0fHz: %w", n.Freq, err)
		}
		parts = append(parts, &fade{
			streamer: beep.Take(frames, sine),
			total:    frames,
			gain:     tones.Amplitude * volume,
		})
	}
	return beep.Seq(parts...), nil
}

// fade 线性淡出包装
type fade struct {
	streamer beep.Streamer
	total    int
	pos      int
	gain     float64
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		envelope := f.gain * (1 - float64(f.pos)/float64(f.total))
		samples[i][0] *= envelope
		samples[i][1] *= envelope
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.streamer.Err()
}
