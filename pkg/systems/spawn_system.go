package systems

import (
	"log"
	"math"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
)

// 生成概率
const (
	// bonusChance 每种奖励在一次生成中的概率（1.5%）
	bonusChance = 0.015
	// goldenChance 金币概率（10%，score >= 10）
	goldenChance = 0.10
	// hazardChance 危险币概率（紧接金币之后的 10%，score >= 5）
	hazardChance = 0.20

	slowTimeMinScore = 20.0
	magnetMinScore   = 30.0
	goldenMinScore   = 10.0
	hazardMinScore   = 5.0
)

// RandSource 随机数来源，返回 [0, 1) 的均匀分布
// *rand.Rand 满足该接口；测试中可注入固定序列
type RandSource interface {
	Float64() float64
}

// SpawnContext 一次生成决策所需的会话状态
type SpawnContext struct {
	Score          float64
	SlowTimeActive bool
	MagnetActive   bool
}

// SpawnSystem 管理下落物的定时生成
//
// 每个 tick 调用一次 Update：计数器达到生成间隔时归零并生成一个实体，否则计数器加一。
// 生成间隔和下落速度都随分数变化；奖励是否被动掉落由规则开关决定，而不是两套代码。
type SpawnSystem struct {
	layout         config.Layout
	rng            RandSource
	speedGrowth    config.SpeedGrowth
	passiveBonuses bool
	counter        int // 距上次生成经过的 tick 数
}

// NewSpawnSystem 创建一个新的生成系统
// 参数:
//   - layout: 画布布局（决定X随机范围）
//   - rules: 规则配置（速度曲线、奖励是否被动掉落）
//   - rng: 随机数来源
func NewSpawnSystem(layout config.Layout, rules config.RulesConfig, rng RandSource) *SpawnSystem {
	log.Printf("[SpawnSystem] Initialized with speedGrowth=%s, passiveBonuses=%v", rules.SpeedGrowth, rules.BonusesSpawnPassively)
	return &SpawnSystem{
		layout:         layout,
		rng:            rng,
		speedGrowth:    rules.SpeedGrowth,
		passiveBonuses: rules.BonusesSpawnPassively,
	}
}

// SpawnInterval 返回当前分数下的生成间隔（tick），下限 30
func SpawnInterval(score float64) float64 {
	return math.Max(config.MinSpawnInterval,
		config.BaseSpawnInterval-math.Min(score/config.SpawnIntervalScoreDivisor, 60))
}

// CurrentSpeed 返回当前分数下的基础下落速度
func (s *SpawnSystem) CurrentSpeed(score float64) float64 {
	return config.InitialFallSpeed + s.speedGrowth.Bonus(score)
}

// Update 推进一个 tick
//
// 返回：
//   - components.FallingEntity: 新生成的实体（ok 为 false 时无意义）
//   - bool: 本 tick 是否生成了实体
func (s *SpawnSystem) Update(ctx SpawnContext) (components.FallingEntity, bool) {
	if float64(s.counter) < SpawnInterval(ctx.Score) {
		s.counter++
		return components.FallingEntity{}, false
	}
	s.counter = 0
	return s.spawn(ctx), true
}

// Counter 返回当前计数器值
func (s *SpawnSystem) Counter() int {
	return s.counter
}

// Reset 计数器归零（新游戏开始时调用）
func (s *SpawnSystem) Reset() {
	s.counter = 0
}

// spawn 选择类型并创建实体
func (s *SpawnSystem) spawn(ctx SpawnContext) components.FallingEntity {
	kind := s.chooseKind(ctx)
	speed := s.CurrentSpeed(ctx.Score) * kind.Attributes().SpeedFactor

	radius := kind.Attributes().Radius
	x := s.rng.Float64()*(s.layout.Width-radius*2) + radius

	if kind.IsBonus() {
		log.Printf("[SpawnSystem] Spawning bonus %s at X=%.1f (speed %.2f)", kind, x, speed)
	}
	return components.NewFallingEntity(kind, x, speed)
}

// chooseKind 按分数门槛和概率表选择类型
// 第一阶段（仅被动奖励规则）：奖励；第二阶段：重新掷骰选择金币/危险币/普通代币
func (s *SpawnSystem) chooseKind(ctx SpawnContext) components.EntityKind {
	if s.passiveBonuses {
		r := s.rng.Float64()
		if ctx.Score >= slowTimeMinScore && !ctx.SlowTimeActive && r < bonusChance {
			return components.KindSlowTimeBonus
		}
		if ctx.Score >= magnetMinScore && !ctx.MagnetActive && r >= bonusChance && r < 2*bonusChance {
			return components.KindMagnetBonus
		}
	}

	r := s.rng.Float64()
	switch {
	case ctx.Score >= goldenMinScore && r < goldenChance:
		return components.KindGoldenCoin
	case ctx.Score >= hazardMinScore && r < hazardChance:
		return components.KindHazard
	default:
		return components.KindCoin
	}
}
