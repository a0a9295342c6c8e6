package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cryptowolf/pkg/game"
)

// SoundToggler 声音开关（由音频管理器实现）
type SoundToggler interface {
	ToggleSound() bool
	SoundEnabled() bool
}

// 按键绑定
var (
	keysStart  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
	keysPause  = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	keysLife   = []ebiten.Key{ebiten.KeyL}
	keysSlow   = []ebiten.Key{ebiten.KeyS}
	keysMagnet = []ebiten.Key{ebiten.KeyM}
	keysSound  = []ebiten.Key{ebiten.KeyN}
)

// PlayScene 游戏场景：把输入转换为会话命令，并绘制会话快照
// 整个游戏只有这一个场景，菜单/暂停/结束都以遮罩形式绘制
type PlayScene struct {
	session *game.Session
	sound   SoundToggler
}

// NewPlayScene 创建游戏场景
//
// 参数：
//   - session: 游戏会话
//   - sound: 声音开关，可为 nil（无声音）
func NewPlayScene(session *game.Session, sound SoundToggler) *PlayScene {
	return &PlayScene{session: session, sound: sound}
}

// Update 处理输入并推进一个 tick
// 会话以 tick 计时，deltaTime 不参与计算
func (ps *PlayScene) Update(deltaTime float64) {
	ps.handleKeys()
	ps.handlePointer()
	ps.session.Update()
}

func (ps *PlayScene) handleKeys() {
	switch {
	case anyJustPressed(keysStart):
		if err := ps.session.StartGame(); err != nil {
			log.Printf("[PlayScene] Start ignored: %v", err)
		}
	case anyJustPressed(keysPause):
		_ = ps.session.TogglePause()
	case anyJustPressed(keysLife):
		_ = ps.session.Purchase(game.ItemLife)
	case anyJustPressed(keysSlow):
		_ = ps.session.Purchase(game.ItemSlowTime)
	case anyJustPressed(keysMagnet):
		_ = ps.session.Purchase(game.ItemMagnet)
	case anyJustPressed(keysSound):
		if ps.sound != nil {
			ps.sound.ToggleSound()
		}
	}
}

func (ps *PlayScene) handlePointer() {
	layout := ps.session.Layout()
	pointer := ReadPointer()
	if !pointer.InField(int(layout.Width), int(layout.Height)) {
		return
	}

	// 游戏坐标 = ebiten 逻辑坐标（Layout 返回画布尺寸）
	ps.session.MovePointer(float64(pointer.X))
	if pointer.JustPressed {
		ps.session.HandleFieldClick()
	}
}

// SaveOnExit 实现 Saveable
func (ps *PlayScene) SaveOnExit() bool {
	return ps.session.SaveOnExit()
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
