package core

import (
	"fmt"
	"math/rand"
)

// DefaultTotalLevels is the number of levels in a run unless configured.
const DefaultTotalLevels = 30

// Config holds the tunables of a session.
type Config struct {
	TotalLevels int     // Last level of the run
	StartLevel  int     // First level played; 0 means 1
	PaletteSize int     // Colors available to the generator
	Scaling     Scaling // Level -> tubes/colors mapping
}

// DefaultConfig returns a 30-level run over the 6-color palette.
func DefaultConfig() Config {
	return Config{
		TotalLevels: DefaultTotalLevels,
		StartLevel:  1,
		PaletteSize: DefaultPaletteSize,
		Scaling:     DefaultScaling(),
	}
}

// SignalKind tells the caller what Advance did.
type SignalKind int

const (
	SignalNone SignalKind = iota
	SignalNextLevel
	SignalCompleted
)

// String returns a short name for the signal kind.
func (k SignalKind) String() string {
	switch k {
	case SignalNextLevel:
		return "next_level"
	case SignalCompleted:
		return "completed"
	default:
		return "none"
	}
}

// Signal is the result of an Advance.
type Signal struct {
	Kind  SignalKind
	Level int // New level for SignalNextLevel
}

// Session is one play-through: the current level, its board, and the pause
// and completion flags. It is not safe for concurrent use.
type Session struct {
	cfg   Config
	gen   *Generator
	level int
	board Board

	paused    bool
	completed bool

	pours         int
	levelsCleared int
}

// Validate checks that a session can be built from c. StartLevel 0 is
// accepted and means 1. Every level of the run is checked, so a bad scaling
// setup fails here rather than mid-run.
func (c Config) Validate() error {
	if c.TotalLevels < 1 {
		return fmt.Errorf("watersort: total levels must be at least 1, got %d", c.TotalLevels)
	}
	start := c.StartLevel
	if start == 0 {
		start = 1
	}
	if start < 1 || start > c.TotalLevels {
		return fmt.Errorf("watersort: start level %d outside [1, %d]", c.StartLevel, c.TotalLevels)
	}
	return NewGenerator(c.Scaling, c.PaletteSize, nil).CheckLevels(c.TotalLevels)
}

// NewSession validates cfg and generates the starting level.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.StartLevel == 0 {
		cfg.StartLevel = 1
	}

	s := &Session{cfg: cfg, gen: NewGenerator(cfg.Scaling, cfg.PaletteSize, rng)}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart begins a fresh run from the configured start level.
func (s *Session) Restart() error {
	board, err := s.gen.Generate(s.cfg.StartLevel)
	if err != nil {
		return err
	}
	s.level = s.cfg.StartLevel
	s.board = board
	s.paused = false
	s.completed = false
	s.pours = 0
	s.levelsCleared = 0
	return nil
}

// Board returns a copy of the current board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Level returns the current level number.
func (s *Session) Level() int {
	return s.level
}

// TotalLevels returns the last level of the run.
func (s *Session) TotalLevels() int {
	return s.cfg.TotalLevels
}

// Config returns the session configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// IsPaused reports whether pours are currently ignored.
func (s *Session) IsPaused() bool {
	return s.paused
}

// IsCompleted reports whether the run has finished its last level.
func (s *Session) IsCompleted() bool {
	return s.completed
}

// IsWin reports whether the current board is sorted.
func (s *Session) IsWin() bool {
	return IsWin(s.board)
}

// Pours returns the number of successful pours in this run.
func (s *Session) Pours() int {
	return s.pours
}

// LevelsCleared returns how many levels were won by sorting in this run.
func (s *Session) LevelsCleared() int {
	return s.levelsCleared
}

// Target previews where a pour from src would go, or -1.
func (s *Session) Target(src int) int {
	if s.paused || s.completed {
		return -1
	}
	return Target(s.board, src)
}

// Pour moves one unit from tube src. It is a no-op returning false while
// paused, after completion, for an out-of-range index, for an empty tube, or
// when no tube accepts the unit.
func (s *Session) Pour(src int) bool {
	if s.paused || s.completed {
		return false
	}
	next, poured := Pour(s.board, src)
	if !poured {
		return false
	}
	s.board = next
	s.pours++
	return true
}

// Pause stops pours from being accepted.
func (s *Session) Pause() {
	s.paused = true
}

// Resume accepts pours again.
func (s *Session) Resume() {
	s.paused = false
}

// Advance moves to the next level, or finishes the run on the last one.
// Once completed, the board is left as is and further calls keep returning
// SignalCompleted.
func (s *Session) Advance() (Signal, error) {
	if s.completed || s.level >= s.cfg.TotalLevels {
		s.completed = true
		return Signal{Kind: SignalCompleted}, nil
	}

	board, err := s.gen.Generate(s.level + 1)
	if err != nil {
		return Signal{}, err
	}
	s.level++
	s.board = board
	return Signal{Kind: SignalNextLevel, Level: s.level}, nil
}
