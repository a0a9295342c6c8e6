package game

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
	"github.com/decker502/cryptowolf/pkg/ecs"
	"github.com/decker502/cryptowolf/pkg/systems"
)

// State 会话状态
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// SessionOptions 会话创建参数
type SessionOptions struct {
	Layout config.Layout
	// Rules 规则配置，零值时使用经典规则
	Rules config.RulesConfig
	// Store 持久化网关，为 nil 时使用内存存储
	Store ProgressStore
	// Rand 随机数来源，为 nil 时使用以当前时间为种子的 math/rand
	Rand systems.RandSource
}

// Session 游戏会话（模拟核心）
//
// 职责：
//   - 状态机：Menu -> Playing <-> Paused -> GameOver -> Playing
//   - 每 tick 编排：奖励计时、生成、下落、碰撞/漏接结算、生命检查
//   - 计分、经济与连击倍率
//   - 在结束游戏和购买时保存最高分/余额
//
// 架构说明：
//   - 不持有任何渲染/DOM/音频句柄，表现层通过 Snapshot() 轮询
//   - 协作者（音频、指标）通过 AddListener 订阅事件
//   - 非并发安全：所有调用必须来自同一个 goroutine（宿主的帧循环）
type Session struct {
	layout  config.Layout
	rules   config.RulesConfig
	store   ProgressStore
	spawner *systems.SpawnSystem

	state     State
	score     float64
	lives     int
	balance   int
	bestScore int
	combo     int

	slowTime components.BonusTimerComponent
	magnet   components.BonusTimerComponent

	catcher  *components.Catcher
	entities *ecs.EntityManager[components.FallingEntity]

	runID     string
	status    string
	listeners []Listener
}

// NewSession 创建会话，初始状态为 Menu（生命为 0），并从存储加载最高分和余额
func NewSession(opts SessionOptions) *Session {
	if opts.Layout == (config.Layout{}) {
		opts.Layout = config.DefaultLayout()
	}
	if opts.Rules == (config.RulesConfig{}) {
		opts.Rules = config.ClassicRules()
	}
	if opts.Store == nil {
		opts.Store = NewMemoryProgressStore(0, 0)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		layout:   opts.Layout,
		rules:    opts.Rules,
		store:    opts.Store,
		spawner:  systems.NewSpawnSystem(opts.Layout, opts.Rules, opts.Rand),
		state:    StateMenu,
		slowTime: components.BonusTimerComponent{Name: components.KindSlowTimeBonus.String()},
		magnet:   components.BonusTimerComponent{Name: components.KindMagnetBonus.String()},
		catcher:  components.NewCatcher(opts.Layout),
		entities: ecs.NewEntityManager[components.FallingEntity](),
	}

	best, balance := s.store.Load()
	s.bestScore = max(best, 0)
	s.balance = max(balance, 0)
	log.Printf("[Session] Loaded progress: bestScore=%d, balance=%d", s.bestScore, s.balance)
	return s
}

// AddListener 订阅会话事件
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// StartGame 开始新的一局
// 游戏进行中调用无效（与开始按钮的行为一致）
func (s *Session) StartGame() error {
	if s.state == StatePlaying {
		return ErrInvalidStateTransition
	}

	s.score = 0
	s.lives = config.StartingLives
	s.combo = 0
	s.entities.Clear()
	s.spawner.Reset()
	s.slowTime.Reset()
	s.magnet.Reset()
	s.catcher.SetMagnet(false)
	s.catcher.Center()

	s.state = StatePlaying
	s.runID = uuid.NewString()
	log.Printf("[Session] Run %s started (lives=%d, balance=%d)", s.runID, s.lives, s.balance)
	s.notify(Event{Type: EventGameStarted}, "Catch the tokens, don't let them fall")
	return nil
}

// TogglePause 在 Playing 与 Paused 之间切换，其它状态下无效
// 暂停时所有状态（计时器、实体位置）被冻结
func (s *Session) TogglePause() error {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
		s.notify(Event{Type: EventPaused}, "Game paused. Press to continue.")
	case StatePaused:
		s.state = StatePlaying
		s.notify(Event{Type: EventResumed}, "Game resumed.")
	default:
		return ErrInvalidStateTransition
	}
	return nil
}

// EndGame 结束本局：生命清零，更新最高分并保存进度
func (s *Session) EndGame() {
	s.state = StateGameOver
	s.lives = 0

	finalScore := int(math.Floor(s.score))
	if finalScore > s.bestScore {
		s.bestScore = finalScore
	}
	s.store.Save(s.bestScore, s.balance)

	log.Printf("[Session] Run %s over: score=%d, best=%d, balance=%d", s.runID, finalScore, s.bestScore, s.balance)
	s.notify(Event{Type: EventGameOver}, fmt.Sprintf("Game over. Tokens caught: %d", finalScore))
}

// HandleFieldClick 点击游戏区域：暂停时继续，非游戏状态时开始新局
func (s *Session) HandleFieldClick() {
	switch s.state {
	case StatePaused:
		_ = s.TogglePause()
	case StateMenu, StateGameOver:
		_ = s.StartGame()
	}
}

// MovePointer 将狼移动到指针位置（游戏坐标），仅在游戏进行中生效
func (s *Session) MovePointer(x float64) {
	if s.state != StatePlaying {
		return
	}
	s.catcher.Move(x)
}

// Update 推进一个 tick
//
// 顺序：奖励计时 -> 生成 -> 按生成顺序推进并结算每个实体 -> 生命检查
func (s *Session) Update() {
	if s.state != StatePlaying {
		return
	}

	slowFactor := 1.0
	if wasActive, expired := s.slowTime.Tick(); wasActive {
		slowFactor = config.SlowTimeFactor
		if expired {
			s.notify(Event{Type: EventBonusExpired, Kind: components.KindSlowTimeBonus},
				"Slow-time is over. Speed restored.")
		}
	}
	if _, expired := s.magnet.Tick(); expired {
		s.catcher.SetMagnet(false)
		s.notify(Event{Type: EventBonusExpired, Kind: components.KindMagnetBonus},
			"Magnet is over. Capture area reduced.")
	}

	if e, ok := s.spawner.Update(systems.SpawnContext{
		Score:          s.score,
		SlowTimeActive: s.slowTime.Active(),
		MagnetActive:   s.magnet.Active(),
	}); ok {
		s.entities.CreateEntity(e)
	}

	s.entities.Each(func(id ecs.EntityID, e *components.FallingEntity) {
		e.Advance(slowFactor)

		if e.IsOffscreen(s.layout.Height) {
			s.resolveMiss(*e)
			s.entities.DestroyEntity(id)
			return
		}
		if e.CollidesWith(s.catcher) {
			s.resolveCatch(*e)
			s.entities.DestroyEntity(id)
		}
	})
	s.entities.RemoveMarkedEntities()

	if s.lives <= 0 {
		s.EndGame()
	}
}

// SaveOnExit 宿主退出时保存进度（局中获得的代币不会丢失）
// 实现 Saveable 接口
func (s *Session) SaveOnExit() bool {
	s.store.Save(s.bestScore, s.balance)
	log.Printf("[Session] Progress saved on exit: bestScore=%d, balance=%d", s.bestScore, s.balance)
	return true
}

// State 返回当前状态
func (s *Session) State() State { return s.state }

// Score 返回当前分数
func (s *Session) Score() float64 { return s.score }

// Lives 返回剩余生命
func (s *Session) Lives() int { return s.lives }

// Balance 返回代币余额
func (s *Session) Balance() int { return s.balance }

// BestScore 返回最高分
func (s *Session) BestScore() int { return s.bestScore }

// Combo 返回当前连击数
func (s *Session) Combo() int { return s.combo }

// Multiplier 返回当前得分倍率 1 + min(combo, 20) * 0.05
func (s *Session) Multiplier() float64 {
	return multiplierFor(s.combo)
}

// Status 返回最近一条状态文本
func (s *Session) Status() string { return s.status }

// RunID 返回当前局的ID（Menu 状态下为空）
func (s *Session) RunID() string { return s.runID }

// Rules 返回规则配置
func (s *Session) Rules() config.RulesConfig { return s.rules }

// Layout 返回画布布局
func (s *Session) Layout() config.Layout { return s.layout }

// Catcher 返回狼（只读副本）
func (s *Session) Catcher() components.Catcher { return *s.catcher }

// Entities 按生成顺序返回所有下落物的副本
func (s *Session) Entities() []components.FallingEntity { return s.entities.Values() }

// SlowTimeTicksRemaining 返回减速剩余 tick
func (s *Session) SlowTimeTicksRemaining() int { return s.slowTime.TicksRemaining }

// MagnetTicksRemaining 返回磁铁剩余 tick
func (s *Session) MagnetTicksRemaining() int { return s.magnet.TicksRemaining }

// SpawnCounter 返回生成计数器
func (s *Session) SpawnCounter() int { return s.spawner.Counter() }

func multiplierFor(combo int) float64 {
	return 1 + float64(min(combo, config.ComboCap))*config.ComboStep
}

// notify 设置状态文本并通知所有订阅者
func (s *Session) notify(e Event, message string) {
	s.status = message

	e.Message = message
	e.RunID = s.runID
	e.State = s.state
	e.Score = s.score
	e.Lives = s.lives
	e.Balance = s.balance
	e.Combo = s.combo
	for _, l := range s.listeners {
		l.OnEvent(e)
	}
}
