// Package tui 终端前端（tcell 渲染 + beep 音效）
// 与 ebiten 前端共用同一个 game.Session，只负责输入转换和绘制
package tui

import (
	"context"
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/game"
)

// keyboardStep 方向键每次移动的距离（游戏坐标）
const keyboardStep = 14.0

// Config 终端前端配置
type Config struct {
	// Rules 游戏规则，零值时使用经典规则
	Rules config.RulesConfig
	// AppName gdata 存储使用的应用名，为空时使用默认值
	AppName string
	// Mute 不初始化扬声器
	Mute bool
	// Listeners 额外的会话事件订阅者
	Listeners []game.Listener
}

// Terminal 终端前端
type Terminal struct {
	screen  tcell.Screen
	session *game.Session
	sound   *Sound

	pointer float64
	pressed bool
}

// New 创建终端前端，screen 在 Run 中初始化
func New(screen tcell.Screen, cfg Config) *Terminal {
	gdataManager := game.OpenGdata(cfg.AppName)
	settings := game.NewSettingsManager(gdataManager)
	sound := NewSound(settings, !cfg.Mute)

	session := game.NewSession(game.SessionOptions{
		Rules: cfg.Rules,
		Store: game.NewGdataProgressStore(gdataManager),
	})
	for _, l := range cfg.Listeners {
		session.AddListener(l)
	}
	return newTerminal(screen, session, sound)
}

func newTerminal(screen tcell.Screen, session *game.Session, sound *Sound) *Terminal {
	session.AddListener(sound)
	return &Terminal{
		screen:  screen,
		session: session,
		sound:   sound,
		pointer: session.Catcher().CenterX(),
	}
}

// Session 返回游戏会话
func (t *Terminal) Session() *game.Session {
	return t.session
}

// Run 运行终端主循环，直到按下 q / Ctrl-C 或 ctx 取消
// 退出前保存进度并恢复终端
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	defer func() {
		t.session.SaveOnExit()
		t.sound.Close()
		t.screen.Fini()
	}()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()

	log.Printf("[Terminal] Running (preset=%s)", t.session.Rules().Preset)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.session.Update()
			t.draw()
		}
	}
}

// HandleEvent 把终端事件转换为会话命令
//
// 返回：
//   - bool: false 表示退出
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	}
	return true
}

// command 按键对应的会话命令
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdStart
	cmdPause
	cmdLeft
	cmdRight
	cmdBuyLife
	cmdBuySlowTime
	cmdBuyMagnet
	cmdToggleSound
)

// keyCommand 按键绑定：Enter/空格 开始，P/Esc 暂停，L/S/M 购买，N 声音，Q/Ctrl-C 退出
func keyCommand(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyEnter:
		return cmdStart
	case tcell.KeyEscape:
		return cmdPause
	case tcell.KeyLeft:
		return cmdLeft
	case tcell.KeyRight:
		return cmdRight
	case tcell.KeyRune:
		switch unicode.ToLower(r) {
		case 'q':
			return cmdQuit
		case ' ':
			return cmdStart
		case 'p':
			return cmdPause
		case 'l':
			return cmdBuyLife
		case 's':
			return cmdBuySlowTime
		case 'm':
			return cmdBuyMagnet
		case 'n':
			return cmdToggleSound
		}
	}
	return cmdNone
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	return t.apply(keyCommand(ev.Key(), ev.Rune()))
}

// apply 执行命令，返回 false 表示退出
func (t *Terminal) apply(cmd command) bool {
	switch cmd {
	case cmdQuit:
		return false
	case cmdStart:
		t.start()
	case cmdPause:
		_ = t.session.TogglePause()
	case cmdLeft:
		t.movePointer(t.pointer - keyboardStep)
	case cmdRight:
		t.movePointer(t.pointer + keyboardStep)
	case cmdBuyLife:
		_ = t.session.Purchase(game.ItemLife)
	case cmdBuySlowTime:
		_ = t.session.Purchase(game.ItemSlowTime)
	case cmdBuyMagnet:
		_ = t.session.Purchase(game.ItemMagnet)
	case cmdToggleSound:
		t.sound.ToggleSound()
	}
	return true
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	t.handlePointer(col, row, ev.Buttons()&tcell.Button1 != 0)
}

// handlePointer 指针在画布内时移动狼，按下的瞬间视为点击画布
func (t *Terminal) handlePointer(col, row int, down bool) {
	cols, rows := t.screen.Size()
	field := FieldFor(cols, rows)

	justPressed := down && !t.pressed
	t.pressed = down

	if !field.Contains(col, row) {
		return
	}
	t.movePointer(field.GameX(col, t.session.Layout()))
	if justPressed {
		t.session.HandleFieldClick()
	}
}

func (t *Terminal) start() {
	if err := t.session.StartGame(); err != nil {
		log.Printf("[Terminal] Start ignored: %v", err)
	}
}

// movePointer 指针限制在画布内，与狼的实际位置无关
func (t *Terminal) movePointer(x float64) {
	layout := t.session.Layout()
	t.pointer = max(0, min(x, layout.Width))
	t.session.MovePointer(t.pointer)
}

func (t *Terminal) draw() {
	Draw(t.screen, t.session.Snapshot(), t.session.Rules(), t.session.Layout(), t.sound.SoundEnabled())
	t.screen.Show()
}
