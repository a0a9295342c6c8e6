package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// 环境变量
const (
	// EnvPrefix 规则覆盖环境变量前缀，如 WOLF_HAZARD_COSTS_LIFE=false
	EnvPrefix = "WOLF_"

	// EnvConfigPath 规则文件路径环境变量
	EnvConfigPath = "WOLF_CONFIG"
)

// LoadOptions 规则加载选项
type LoadOptions struct {
	// Path YAML 规则文件路径，为空时读取 WOLF_CONFIG，仍为空则不加载文件
	Path string
	// Preset 预设名称，为空时使用文件/环境变量中的 preset，仍为空则为 classic
	Preset string
}

// LoadRules 按层级加载规则配置
//
// 优先级（低 -> 高）：
//  1. 预设默认值（classic / shop）
//  2. YAML 文件（opts.Path 或 WOLF_CONFIG）
//  3. 环境变量（前缀 WOLF_）
//
// 返回：
//   - *RulesConfig: 验证通过的规则
//   - error: 文件解析失败、预设未知或验证失败时返回错误
func LoadRules(opts LoadOptions) (*RulesConfig, error) {
	k := koanf.New(".")

	path := opts.Path
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load rules file %s: %w", path, err)
		}
		log.Printf("[Config] Loaded rules file: %s", path)
	}

	// WOLF_HAZARD_COSTS_LIFE -> hazard_costs_life
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load rules from environment: %w", err)
	}
	// WOLF_CONFIG 是文件路径，不是规则字段
	k.Delete("config")

	preset := opts.Preset
	if preset == "" {
		preset = k.String("preset")
	}
	base, err := PresetRules(preset)
	if err != nil {
		return nil, err
	}

	cfg := base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	cfg.Preset = base.Preset

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules config: %w", err)
	}

	log.Printf("[Config] Rules: preset=%s hazardCostsLife=%v passiveBonuses=%v purchasableBonuses=%v speedGrowth=%s",
		cfg.Preset, cfg.HazardCostsLife, cfg.BonusesSpawnPassively, cfg.BonusesPurchasable, cfg.SpeedGrowth)
	return &cfg, nil
}
