package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write rules file: %v", err)
	}
	return path
}

// TestLoadRules_Defaults 无文件无环境变量时使用 classic 预设
func TestLoadRules_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := LoadRules(LoadOptions{})
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if *cfg != ClassicRules() {
		t.Errorf("expected classic rules, got %+v", *cfg)
	}
}

// TestLoadRules_FileOverridesPreset 文件中的字段覆盖预设默认值
func TestLoadRules_FileOverridesPreset(t *testing.T) {
	path := writeRulesFile(t, `
preset: shop
hazard_costs_life: true
life_cost: 40
`)

	cfg, err := LoadRules(LoadOptions{Path: path})
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Preset != PresetShop {
		t.Errorf("preset = %s, want shop", cfg.Preset)
	}
	if !cfg.HazardCostsLife {
		t.Error("hazard_costs_life should be overridden to true")
	}
	if cfg.BonusesSpawnPassively {
		t.Error("bonuses_spawn_passively should keep the shop default (false)")
	}
	if cfg.LifeCost != 40 {
		t.Errorf("life_cost = %d, want 40", cfg.LifeCost)
	}
}

// TestLoadRules_EnvOverridesFile 环境变量优先级最高
func TestLoadRules_EnvOverridesFile(t *testing.T) {
	path := writeRulesFile(t, "speed_growth: continuous\n")
	t.Setenv(EnvConfigPath, path)
	t.Setenv("WOLF_SPEED_GROWTH", "stepped")
	t.Setenv("WOLF_HAZARD_COSTS_LIFE", "false")

	cfg, err := LoadRules(LoadOptions{})
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.SpeedGrowth != SpeedGrowthStepped {
		t.Errorf("speed_growth = %s, want stepped", cfg.SpeedGrowth)
	}
	if cfg.HazardCostsLife {
		t.Error("hazard_costs_life should be false from env")
	}
}

func TestLoadRules_ExplicitPresetWins(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("WOLF_PRESET", "classic")

	cfg, err := LoadRules(LoadOptions{Preset: PresetShop})
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if cfg.Preset != PresetShop || !cfg.BonusesPurchasable {
		t.Errorf("expected shop preset, got %+v", *cfg)
	}
}

func TestLoadRules_Errors(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	if _, err := LoadRules(LoadOptions{Path: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeRulesFile(t, "speed_growth: exponential\n")
	if _, err := LoadRules(LoadOptions{Path: bad}); err == nil {
		t.Error("expected validation error")
	}

	if _, err := LoadRules(LoadOptions{Preset: "arcade"}); err == nil {
		t.Error("expected error for unknown preset")
	}
}
