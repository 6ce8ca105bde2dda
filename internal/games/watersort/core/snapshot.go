package core

// StateName labels the session for display and tests.
type StateName string

const (
	StatePlaying   StateName = "playing"
	StatePaused    StateName = "paused"
	StateCompleted StateName = "completed"
)

// Snapshot is a read-only copy of a session for renderers.
type Snapshot struct {
	Level       int
	TotalLevels int
	Tubes       int
	Colors      int
	Empty       int // Tubes holding no liquid
	Board       Board
	Pours       int
	Cleared     int
	Won         bool
	State       StateName
}

// Snapshot returns the current session state. The board is a deep copy.
func (s *Session) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case s.completed:
		state = StateCompleted
	case s.paused:
		state = StatePaused
	}

	return Snapshot{
		Level:       s.level,
		TotalLevels: s.cfg.TotalLevels,
		Tubes:       len(s.board),
		Colors:      len(CountByColor(s.board)),
		Empty:       EmptyTubes(s.board),
		Board:       s.board.Clone(),
		Pours:       s.pours,
		Cleared:     s.levelsCleared,
		Won:         IsWin(s.board),
		State:       state,
	}
}
