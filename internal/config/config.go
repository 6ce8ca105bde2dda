// Package config provides YAML-based configuration loading, difficulty
// presets and server environment settings for water sort.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

// WaterSortConfig contains all configuration for the game.
type WaterSortConfig struct {
	Levels     LevelsConfig     `yaml:"levels"`
	Palette    PaletteConfig    `yaml:"palette"`
	Scaling    ScalingConfig    `yaml:"scaling"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LevelsConfig defines the length of a run.
type LevelsConfig struct {
	Total int `yaml:"total"`
	Start int `yaml:"start"`
}

// PaletteConfig defines how many colors the generator may use.
type PaletteConfig struct {
	Size int `yaml:"size"`
}

// ScalingConfig maps levels to tube and color counts.
type ScalingConfig struct {
	Tubes  StepConfig `yaml:"tubes"`
	Colors StepConfig `yaml:"colors"`
	Fit    string     `yaml:"fit"` // "grow" or "strict"
}

// StepConfig is a count that starts at Base, grows by one every Step
// levels, and stops at Max.
type StepConfig struct {
	Base int `yaml:"base"`
	Step int `yaml:"step"`
	Max  int `yaml:"max"`
}

// DisplayConfig holds rendering options.
type DisplayConfig struct {
	Letters bool `yaml:"letters"` // Draw color letters instead of blocks
}

// DifficultyConfig selects the starting point of a run.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports the first impossible setting, including scaling setups
// that cannot generate every level of the run.
func (c WaterSortConfig) Validate() error {
	if c.Levels.Total < 1 {
		return fmt.Errorf("config: levels.total must be at least 1, got %d", c.Levels.Total)
	}
	if c.Levels.Start < 1 || c.Levels.Start > c.Levels.Total {
		return fmt.Errorf("config: levels.start %d outside [1, %d]", c.Levels.Start, c.Levels.Total)
	}
	if c.Palette.Size < 1 || c.Palette.Size > int(core.ColorCount) {
		return fmt.Errorf("config: palette.size must be in [1, %d], got %d", core.ColorCount, c.Palette.Size)
	}
	if err := c.Scaling.Tubes.validate("scaling.tubes"); err != nil {
		return err
	}
	if err := c.Scaling.Colors.validate("scaling.colors"); err != nil {
		return err
	}
	switch core.FitMode(c.Scaling.Fit) {
	case core.FitGrow, core.FitStrict:
	default:
		return fmt.Errorf("config: scaling.fit must be %q or %q, got %q", core.FitGrow, core.FitStrict, c.Scaling.Fit)
	}
	if !c.Difficulty.Preset.Valid() {
		return fmt.Errorf("config: unknown difficulty preset %q", c.Difficulty.Preset)
	}

	gen := core.NewGenerator(c.coreScaling(), c.Palette.Size, nil)
	if err := gen.CheckLevels(c.Levels.Total); err != nil {
		var cfgErr *core.ConfigurationError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("config: scaling cannot build level %d: %w", cfgErr.Level, err)
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (s StepConfig) validate(name string) error {
	if s.Base < 1 {
		return fmt.Errorf("config: %s.base must be at least 1, got %d", name, s.Base)
	}
	if s.Step < 0 {
		return fmt.Errorf("config: %s.step must not be negative, got %d", name, s.Step)
	}
	if s.Max < s.Base {
		return fmt.Errorf("config: %s.max %d is below base %d", name, s.Max, s.Base)
	}
	return nil
}

func (c WaterSortConfig) coreScaling() core.Scaling {
	return core.Scaling{
		BaseTubes:  c.Scaling.Tubes.Base,
		TubeStep:   c.Scaling.Tubes.Step,
		MaxTubes:   c.Scaling.Tubes.Max,
		BaseColors: c.Scaling.Colors.Base,
		ColorStep:  c.Scaling.Colors.Step,
		MaxColors:  c.Scaling.Colors.Max,
		Fit:        core.FitMode(c.Scaling.Fit),
	}
}

// ToCore converts the config into session settings. The difficulty preset
// decides the start level unless it is fixed.
func (c WaterSortConfig) ToCore() core.Config {
	start := c.Levels.Start
	if !IsFixedPreset(c.Difficulty.Preset) {
		start = StartLevelForPreset(c.Difficulty.Preset, c.Levels.Total)
	}
	return core.Config{
		TotalLevels: c.Levels.Total,
		StartLevel:  start,
		PaletteSize: c.Palette.Size,
		Scaling:     c.coreScaling(),
	}
}
