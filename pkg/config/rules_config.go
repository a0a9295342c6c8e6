package config

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// SpeedGrowth 下落速度随分数增长的曲线类型
type SpeedGrowth string

const (
	// SpeedGrowthContinuous 连续增长：min(score/2, 2.5)
	SpeedGrowthContinuous SpeedGrowth = "continuous"
	// SpeedGrowthStepped 阶梯增长：floor(score/15) * 0.1
	SpeedGrowthStepped SpeedGrowth = "stepped"
)

// Bonus returns the speed added on top of InitialFallSpeed for the given score.
func (g SpeedGrowth) Bonus(score float64) float64 {
	switch g {
	case SpeedGrowthStepped:
		return math.Floor(score/15) * 0.1
	default:
		return math.Min(score/2, 2.5)
	}
}

// 规则预设名称
const (
	// PresetClassic 被动掉落奖励，接住危险币扣生命（默认）
	PresetClassic = "classic"
	// PresetShop 奖励只能在商店购买，危险币只扣代币
	PresetShop = "shop"
)

// RulesConfig 游戏规则配置
//
// 两种规则变体由同一个引擎实现，通过以下开关区分：
//   - HazardCostsLife: 接住危险币是否额外扣除 1 条生命
//   - BonusesSpawnPassively: 减速/磁铁奖励是否会随机掉落
//   - BonusesPurchasable: 减速/磁铁是否可以在游戏中购买
//   - SpeedGrowth: 下落速度增长曲线
type RulesConfig struct {
	Preset                string      `koanf:"preset" yaml:"preset"`
	HazardCostsLife       bool        `koanf:"hazard_costs_life" yaml:"hazard_costs_life"`
	BonusesSpawnPassively bool        `koanf:"bonuses_spawn_passively" yaml:"bonuses_spawn_passively"`
	BonusesPurchasable    bool        `koanf:"bonuses_purchasable" yaml:"bonuses_purchasable"`
	SpeedGrowth           SpeedGrowth `koanf:"speed_growth" yaml:"speed_growth"`

	// 商店价格（代币）
	LifeCost     int `koanf:"life_cost" yaml:"life_cost"`
	SlowTimeCost int `koanf:"slowtime_cost" yaml:"slowtime_cost"`
	MagnetCost   int `koanf:"magnet_cost" yaml:"magnet_cost"`
}

// ClassicRules 返回经典规则：奖励被动掉落，危险币扣生命，速度连续增长
func ClassicRules() RulesConfig {
	return RulesConfig{
		Preset:                PresetClassic,
		HazardCostsLife:       true,
		BonusesSpawnPassively: true,
		BonusesPurchasable:    false,
		SpeedGrowth:           SpeedGrowthContinuous,
		LifeCost:              15,
		SlowTimeCost:          25,
		MagnetCost:            30,
	}
}

// ShopRules 返回商店规则：奖励只能购买，危险币只扣代币，速度阶梯增长
func ShopRules() RulesConfig {
	return RulesConfig{
		Preset:                PresetShop,
		HazardCostsLife:       false,
		BonusesSpawnPassively: false,
		BonusesPurchasable:    true,
		SpeedGrowth:           SpeedGrowthStepped,
		LifeCost:              15,
		SlowTimeCost:          25,
		MagnetCost:            30,
	}
}

// PresetRules 根据预设名称返回规则
//
// 参数：
//   - name: 预设名称（"classic" / "shop"），空字符串视为 "classic"
//
// 返回：
//   - RulesConfig: 预设规则
//   - error: 未知预设名称时返回错误
func PresetRules(name string) (RulesConfig, error) {
	switch name {
	case "", PresetClassic:
		return ClassicRules(), nil
	case PresetShop:
		return ShopRules(), nil
	default:
		return RulesConfig{}, fmt.Errorf("unknown rules preset %q", name)
	}
}

// Validate 验证配置的有效性
func (c *RulesConfig) Validate() error {
	switch c.SpeedGrowth {
	case SpeedGrowthContinuous, SpeedGrowthStepped:
	default:
		return fmt.Errorf("speed_growth must be %q or %q, got %q",
			SpeedGrowthContinuous, SpeedGrowthStepped, c.SpeedGrowth)
	}

	if c.LifeCost <= 0 {
		return fmt.Errorf("life_cost must be > 0, got %d", c.LifeCost)
	}
	if c.BonusesPurchasable {
		if c.SlowTimeCost <= 0 {
			return fmt.Errorf("slowtime_cost must be > 0, got %d", c.SlowTimeCost)
		}
		if c.MagnetCost <= 0 {
			return fmt.Errorf("magnet_cost must be > 0, got %d", c.MagnetCost)
		}
	}

	return nil
}

// WriteRules 将规则以 YAML 格式写出（用于 -dump-config 和生成示例配置文件）
func WriteRules(w io.Writer, cfg RulesConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}
	return enc.Close()
}
