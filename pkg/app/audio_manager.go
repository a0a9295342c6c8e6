package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/cryptowolf/internal/tones"
	"github.com/decker502/cryptowolf/pkg/game"
)

// AudioSampleRate 音频采样率
const AudioSampleRate = 44100

// AudioManager 音频管理器
// 职责：
//   - 订阅会话事件，播放接住/漏接/结束音效
//   - 背景音乐只在 Playing 且声音开启时播放
//   - 声音开关通过 SettingsManager 持久化
type AudioManager struct {
	settingsManager *game.SettingsManager
	soundPlayers    map[string]*audio.Player
	music           *audio.Player
	state           game.State
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（可为 nil，此时声音始终开启）
func NewAudioManager(sm *game.SettingsManager) *AudioManager {
	am := &AudioManager{
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		state:           game.StateMenu,
	}

	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(AudioSampleRate)
	}

	for _, id := range []string{tones.CueCatch, tones.CueMiss, tones.CueGameOver} {
		pcm := tones.Synthesize(tones.Cues[id], ctx.SampleRate())
		am.soundPlayers[id] = ctx.NewPlayerFromBytes(pcm.Bytes())
	}

	music := tones.Synthesize(tones.Cues[tones.CueMusic], ctx.SampleRate())
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(music, music.Length()))
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player: %v", err)
	} else {
		am.music = player
	}

	log.Printf("[AudioManager] Initialized %d sounds (sample rate %d)", len(am.soundPlayers), ctx.SampleRate())
	return am
}

// OnEvent 实现 game.Listener
func (am *AudioManager) OnEvent(e game.Event) {
	am.state = e.State
	if id := tones.ForEvent(e); id != "" {
		am.PlaySound(id)
	}
	am.syncMusic()
}

// PlaySound 播放音效
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEnabled() {
		return false
	}

	player, ok := am.soundPlayers[soundID]
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// ToggleSound 切换声音开关并同步背景音乐
//
// 返回：
//   - bool: 切换后的开关状态
func (am *AudioManager) ToggleSound() bool {
	enabled := true
	if am.settingsManager != nil {
		enabled = am.settingsManager.ToggleSound()
	}
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	am.syncMusic()
	return enabled
}

// SoundEnabled 声音是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.SoundEnabled()
}

// syncMusic 背景音乐只在 Playing 且声音开启时播放
func (am *AudioManager) syncMusic() {
	if am.music == nil {
		return
	}
	if am.state == game.StatePlaying && am.SoundEnabled() {
		am.music.SetVolume(am.musicVolume())
		if !am.music.IsPlaying() {
			am.music.Play()
		}
		return
	}
	if am.music.IsPlaying() {
		am.music.Pause()
	}
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return game.DefaultSettings().SoundVolume
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return game.DefaultSettings().MusicVolume
}
