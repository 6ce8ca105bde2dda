package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

func TestEmbeddedDefaultsMatchBuiltIn(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultWaterSortConfig() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultWaterSortConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestDefaultToCore(t *testing.T) {
	got := DefaultWaterSortConfig().ToCore()
	want := core.DefaultConfig()
	if got != want {
		t.Errorf("ToCore() = %+v, want %+v", got, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "levels:\n  total: 12\npalette:\n  size: 8\ndisplay:\n  letters: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Levels.Total != 12 || cfg.Palette.Size != 8 || !cfg.Display.Letters {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Scaling.Tubes.Base != 4 {
		t.Errorf("unset keys should keep defaults, tubes.base = %d", cfg.Scaling.Tubes.Base)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap ErrNotExist: %v", err)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("levels: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	work := t.TempDir()
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Levels.Total != 30 {
		t.Errorf("expected embedded defaults, total = %d", cfg.Levels.Total)
	}

	// Local ./configs file.
	writeConfig(t, filepath.Join(work, "configs", configFile), "levels:\n  total: 10\n")
	cfg, _ = Load("")
	if cfg.Levels.Total != 10 {
		t.Errorf("expected local config, total = %d", cfg.Levels.Total)
	}

	// User config wins over local.
	writeConfig(t, filepath.Join(home, ".watersort", "configs", configFile), "levels:\n  total: 20\n")
	cfg, _ = Load("")
	if cfg.Levels.Total != 20 {
		t.Errorf("expected user config, total = %d", cfg.Levels.Total)
	}
}

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*WaterSortConfig)
		errSub string
	}{
		{"zero levels", func(c *WaterSortConfig) { c.Levels.Total = 0 }, "levels.total"},
		{"start past end", func(c *WaterSortConfig) { c.Levels.Start = 31 }, "levels.start"},
		{"palette too big", func(c *WaterSortConfig) { c.Palette.Size = 9 }, "palette.size"},
		{"negative step", func(c *WaterSortConfig) { c.Scaling.Colors.Step = -1 }, "scaling.colors.step"},
		{"max below base", func(c *WaterSortConfig) { c.Scaling.Tubes.Max = 2 }, "scaling.tubes.max"},
		{"unknown fit", func(c *WaterSortConfig) { c.Scaling.Fit = "squeeze" }, "scaling.fit"},
		{"unknown preset", func(c *WaterSortConfig) { c.Difficulty.Preset = "brutal" }, "preset"},
		{"palette smaller than colors", func(c *WaterSortConfig) { c.Palette.Size = 4 }, "cannot build level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultWaterSortConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("error %q should mention %q", err, tc.errSub)
			}
		})
	}
}

func TestValidateStrictFitReportsLevel(t *testing.T) {
	cfg := DefaultWaterSortConfig()
	cfg.Scaling.Fit = string(core.FitStrict)

	err := cfg.Validate()
	var cfgErr *core.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a ConfigurationError, got %v", err)
	}
	if cfgErr.Level != 3 {
		t.Errorf("first bad level = %d, want 3", cfgErr.Level)
	}
}

func TestStartLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		total  int
		want   int
	}{
		{DifficultyEasy, 30, 1},
		{DifficultyNormal, 30, 9},
		{DifficultyHard, 30, 21},
		{DifficultyHard, 1, 1},
		{DifficultyNormal, 0, 1},
	}

	for _, tc := range tests {
		if got := StartLevelForPreset(tc.preset, tc.total); got != tc.want {
			t.Errorf("StartLevelForPreset(%s, %d) = %d, want %d", tc.preset, tc.total, got, tc.want)
		}
	}
}

func TestPresetOverridesStart(t *testing.T) {
	cfg := DefaultWaterSortConfig()
	cfg.Levels.Start = 5

	if got := cfg.ToCore().StartLevel; got != 5 {
		t.Errorf("fixed preset should keep start 5, got %d", got)
	}

	if err := ApplyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatal(err)
	}
	if got := cfg.ToCore().StartLevel; got != 21 {
		t.Errorf("hard preset start = %d, want 21", got)
	}

	var presetErr *PresetError
	if err := ApplyPreset(&cfg, "nightmare"); !errors.As(err, &presetErr) {
		t.Errorf("expected a PresetError, got %v", err)
	}
	if cfg.Difficulty.Preset != DifficultyHard {
		t.Error("a rejected preset should not change the config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultWaterSortConfig()
	cfg.Levels.Total = 15

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	back, err := parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestLoadServerEnv(t *testing.T) {
	t.Setenv("WATERSORT_SSH_ADDR", ":2222")
	t.Setenv("WATERSORT_IDLE_TIMEOUT", "5m")

	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv failed: %v", err)
	}
	if cfg.Addr != ":2222" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v", cfg.IdleTimeout)
	}

	t.Setenv("WATERSORT_IDLE_TIMEOUT", "soon")
	if _, err := LoadServerEnv(); err == nil {
		t.Error("expected an error for a bad duration")
	}
}
