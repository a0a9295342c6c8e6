// Package app 提供 Ebitengine 前端的应用包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端/wasm 和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/game"
	"github.com/decker502/cryptowolf/pkg/scenes"
	"github.com/decker502/cryptowolf/pkg/utils"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Rules 游戏规则，零值时使用经典规则
	Rules config.RulesConfig
	// AppName gdata 存储使用的应用名，为空时使用默认值
	AppName string
	// Listeners 额外的会话事件订阅者（如指标）
	Listeners []game.Listener
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	session                  *game.Session
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 存储或音频不可用时进入降级模式（进度不持久化/静音），不会返回错误
func NewApp(cfg Config) *App {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	gdataManager := game.OpenGdata(cfg.AppName)

	settingsManager := game.NewSettingsManager(gdataManager)
	audioManager := NewAudioManager(settingsManager)
	log.Printf("[App] AudioManager initialized")

	session := game.NewSession(game.SessionOptions{
		Rules: cfg.Rules,
		Store: game.NewGdataProgressStore(gdataManager),
	})
	session.AddListener(audioManager)
	for _, l := range cfg.Listeners {
		session.AddListener(l)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewPlayScene(session, audioManager))

	log.Printf("[App] Ready (preset=%s)", session.Rules().Preset)
	return &App{
		sceneManager: sceneManager,
		session:      session,
		verbose:      cfg.Verbose,
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（ebiten 默认每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	// 窗口关闭：先保存进度再退出
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即画布尺寸），Ebitengine 会自动处理缩放
// 因此光标/触摸坐标就是游戏坐标
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// SaveOnExit 保存当前场景的状态
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// Session 返回游戏会话
func (a *App) Session() *game.Session {
	return a.session
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// 窗口尺寸（画布的 2 倍）
const (
	WindowWidth  = config.GameWindowWidth * 2
	WindowHeight = config.GameWindowHeight * 2
)
