package core

// RuntimeConfig carries the screen size and RNG seed into a game.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible boards
}

// DefaultConfig returns an 80x24 screen with a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is the status the platform needs after each input.
type GameState struct {
	Level     int
	Pours     int
	Paused    bool
	Completed bool
}

// Cue is a fire-and-forget presentation effect, such as a sound.
type Cue int

const (
	CueNone Cue = iota
	CueClick
	CuePour
	CueLevelComplete
	CueGameComplete
)

// String returns a short name for the cue.
func (c Cue) String() string {
	switch c {
	case CueClick:
		return "click"
	case CuePour:
		return "pour"
	case CueLevelComplete:
		return "level_complete"
	case CueGameComplete:
		return "game_complete"
	default:
		return "none"
	}
}

// StepResult is returned after a game handles one input.
type StepResult struct {
	State GameState
	Cues  []Cue
}
