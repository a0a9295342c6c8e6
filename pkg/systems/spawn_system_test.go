package systems

import (
	"math"
	"testing"

	"github.com/decker502/cryptowolf/pkg/components"
	"github.com/decker502/cryptowolf/pkg/config"
)

// scriptedRand 按顺序返回预设的随机数，用完后一直返回最后一个值
type scriptedRand struct {
	values []float64
	pos    int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0.5
	}
	v := r.values[min(r.pos, len(r.values)-1)]
	r.pos++
	return v
}

func newTestSpawner(rules config.RulesConfig, values ...float64) *SpawnSystem {
	return NewSpawnSystem(config.DefaultLayout(), rules, &scriptedRand{values: values})
}

// TestSpawnInterval 间隔随分数单调递减，下限 30
func TestSpawnInterval(t *testing.T) {
	tests := []struct {
		score float64
		want  float64
	}{
		{0, 90}, {3, 89}, {30, 80}, {150, 40}, {180, 30}, {1000, 30},
	}
	for _, tt := range tests {
		if got := SpawnInterval(tt.score); got != tt.want {
			t.Errorf("SpawnInterval(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}

	prev := SpawnInterval(0)
	for score := 1.0; score < 300; score += 1.7 {
		cur := SpawnInterval(score)
		if cur > prev {
			t.Fatalf("interval increased at score %v: %v > %v", score, cur, prev)
		}
		prev = cur
	}
}

// TestUpdate_Cadence 计数器未达到间隔时递增，达到后归零并生成
func TestUpdate_Cadence(t *testing.T) {
	s := newTestSpawner(config.ClassicRules())
	ctx := SpawnContext{Score: 0}

	spawnedAt := []int{}
	for tick := 1; tick <= 200; tick++ {
		if _, ok := s.Update(ctx); ok {
			spawnedAt = append(spawnedAt, tick)
		}
	}

	// 计数 0..89 递增 90 次，第 91 个 tick 生成；之后每 91 tick 一次
	want := []int{91, 182}
	if len(spawnedAt) != len(want) || spawnedAt[0] != want[0] || spawnedAt[1] != want[1] {
		t.Errorf("spawned at %v, want %v", spawnedAt, want)
	}
	if s.Counter() != 200-182 {
		t.Errorf("counter = %d, want %d", s.Counter(), 200-182)
	}

	s.Reset()
	if s.Counter() != 0 {
		t.Error("Reset should zero the counter")
	}
}

func TestCurrentSpeed(t *testing.T) {
	classic := newTestSpawner(config.ClassicRules())
	if got := classic.CurrentSpeed(0); got != 1.5 {
		t.Errorf("classic speed at 0 = %v, want 1.5", got)
	}
	if got := classic.CurrentSpeed(100); got != 4.0 {
		t.Errorf("classic speed at 100 = %v, want 4.0", got)
	}

	shop := newTestSpawner(config.ShopRules())
	if got := shop.CurrentSpeed(31); math.Abs(got-1.7) > 1e-9 {
		t.Errorf("stepped speed at 31 = %v, want 1.7", got)
	}
}

func TestChooseKind_Classic(t *testing.T) {
	tests := []struct {
		name  string
		ctx   SpawnContext
		rolls []float64
		want  components.EntityKind
	}{
		{"低分只出普通代币", SpawnContext{Score: 4}, []float64{0.0, 0.0}, components.KindCoin},
		{"5分起出危险币", SpawnContext{Score: 5}, []float64{0.5, 0.15}, components.KindHazard},
		{"5分时金币区间落到危险币", SpawnContext{Score: 5}, []float64{0.5, 0.05}, components.KindHazard},
		{"10分起出金币", SpawnContext{Score: 10}, []float64{0.5, 0.05}, components.KindGoldenCoin},
		{"普通代币", SpawnContext{Score: 50}, []float64{0.5, 0.2}, components.KindCoin},
		{"20分起出减速", SpawnContext{Score: 20}, []float64{0.01}, components.KindSlowTimeBonus},
		{"减速已激活时不出减速", SpawnContext{Score: 20, SlowTimeActive: true}, []float64{0.01, 0.9}, components.KindCoin},
		{"磁铁需要30分", SpawnContext{Score: 29}, []float64{0.02, 0.9}, components.KindCoin},
		{"30分起出磁铁", SpawnContext{Score: 30}, []float64{0.02}, components.KindMagnetBonus},
		{"磁铁已激活时不出磁铁", SpawnContext{Score: 30, MagnetActive: true}, []float64{0.02, 0.05}, components.KindGoldenCoin},
		{"磁铁区间不与减速重叠", SpawnContext{Score: 30, SlowTimeActive: true}, []float64{0.01, 0.9}, components.KindCoin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSpawner(config.ClassicRules(), tt.rolls...)
			if got := s.chooseKind(tt.ctx); got != tt.want {
				t.Errorf("chooseKind = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestChooseKind_NoPassiveBonuses 商店规则下只有一次掷骰，永远不会掉落奖励
func TestChooseKind_NoPassiveBonuses(t *testing.T) {
	s := newTestSpawner(config.ShopRules(), 0.01)
	if got := s.chooseKind(SpawnContext{Score: 100}); got != components.KindGoldenCoin {
		t.Errorf("chooseKind = %s, want golden (single roll 0.01)", got)
	}

	for i := 0; i < 50; i++ {
		s := newTestSpawner(config.ShopRules(), float64(i)/50)
		if kind := s.chooseKind(SpawnContext{Score: 100}); kind.IsBonus() {
			t.Fatalf("bonus %s spawned with passive bonuses disabled", kind)
		}
	}
}

// TestSpawn_EntityShape 生成的实体速度乘类型系数，X 在 [r, W-r) 内，Y = -2r
func TestSpawn_EntityShape(t *testing.T) {
	// 掷骰顺序：奖励阶段、代币阶段、X 坐标
	s := newTestSpawner(config.ClassicRules(), 0.5, 0.15, 0.0)
	e := s.spawn(SpawnContext{Score: 6})

	if e.Kind != components.KindHazard {
		t.Fatalf("kind = %s, want hazard", e.Kind)
	}
	wantSpeed := (1.5 + 2.5) * 1.2 // min(6/2, 2.5) = 2.5
	if math.Abs(e.Speed-wantSpeed) > 1e-9 {
		t.Errorf("speed = %v, want %v", e.Speed, wantSpeed)
	}
	if e.X != e.Radius {
		t.Errorf("X with roll 0 = %v, want %v", e.X, e.Radius)
	}
	if e.Y != -2*e.Radius {
		t.Errorf("Y = %v, want %v", e.Y, -2*e.Radius)
	}

	hi := newTestSpawner(config.ClassicRules(), 0.5, 0.9, 0.999999)
	c := hi.spawn(SpawnContext{Score: 0})
	if c.X >= config.GameWindowWidth-c.Radius {
		t.Errorf("X = %v should be < W - r", c.X)
	}
}
