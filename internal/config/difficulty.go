package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// Valid reports whether p is a known preset. Empty means fixed.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	default:
		return false
	}
}

// InitialLevelForPreset returns how far into the run (0.0 to 1.0) a preset
// starts.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset keeps the configured start level.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed || preset == ""
}

// StartLevelForPreset maps a preset onto a level in [1, total].
func StartLevelForPreset(preset DifficultyPreset, total int) int {
	if total < 1 {
		return 1
	}
	offset := int(math.Floor(InitialLevelForPreset(preset) * float64(total-1)))
	return min(max(1+offset, 1), total)
}

// ApplyPreset sets the difficulty preset, validating the name.
func ApplyPreset(cfg *WaterSortConfig, preset DifficultyPreset) error {
	if !preset.Valid() {
		return &PresetError{Preset: preset}
	}
	cfg.Difficulty.Preset = preset
	return nil
}

// PresetError reports an unknown difficulty name.
type PresetError struct {
	Preset DifficultyPreset
}

func (e *PresetError) Error() string {
	return "config: unknown difficulty preset \"" + string(e.Preset) + "\" (want easy, normal, hard or fixed)"
}
