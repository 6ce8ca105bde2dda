package config

import (
	_ "embed"

	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

//go:embed defaults/watersort.yaml
var defaultWaterSortYAML []byte

// DefaultWaterSortConfig returns the built-in configuration: a 30-level run
// over six colors starting at level 1.
func DefaultWaterSortConfig() WaterSortConfig {
	s := core.DefaultScaling()
	return WaterSortConfig{
		Levels: LevelsConfig{
			Total: core.DefaultTotalLevels,
			Start: 1,
		},
		Palette: PaletteConfig{
			Size: core.DefaultPaletteSize,
		},
		Scaling: ScalingConfig{
			Tubes:  StepConfig{Base: s.BaseTubes, Step: s.TubeStep, Max: s.MaxTubes},
			Colors: StepConfig{Base: s.BaseColors, Step: s.ColorStep, Max: s.MaxColors},
			Fit:    string(s.Fit),
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyFixed,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWaterSortYAML
}
