package core

// CommandKind enumerates the inputs a session reacts to.
type CommandKind int

const (
	CommandPour CommandKind = iota
	CommandPause
	CommandResume
	CommandAdvance
	CommandRestart
)

// String returns a short name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandPour:
		return "pour"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandAdvance:
		return "advance"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Command is a single user intent. Tube is only used by CommandPour.
type Command struct {
	Kind CommandKind
	Tube int
}

// PourCmd returns a command pouring from tube i.
func PourCmd(i int) Command { return Command{Kind: CommandPour, Tube: i} }

// PauseCmd returns a pause command.
func PauseCmd() Command { return Command{Kind: CommandPause} }

// ResumeCmd returns a resume command.
func ResumeCmd() Command { return Command{Kind: CommandResume} }

// AdvanceCmd returns a next-level command.
func AdvanceCmd() Command { return Command{Kind: CommandAdvance} }

// RestartCmd returns a restart command.
func RestartCmd() Command { return Command{Kind: CommandRestart} }

// Outcome describes what a dispatched command changed.
type Outcome struct {
	Poured bool   // A unit moved
	Won    bool   // The pour sorted the board
	Signal Signal // Set when the level changed or the run completed
}

// Dispatch applies one command. A pour that sorts the board advances the
// level in the same call; nothing cascades further.
func (s *Session) Dispatch(cmd Command) (Outcome, error) {
	var out Outcome

	switch cmd.Kind {
	case CommandPour:
		out.Poured = s.Pour(cmd.Tube)
		if !out.Poured || !s.IsWin() {
			return out, nil
		}
		out.Won = true
		s.levelsCleared++
		sig, err := s.Advance()
		if err != nil {
			return out, err
		}
		out.Signal = sig

	case CommandPause:
		s.Pause()

	case CommandResume:
		s.Resume()

	case CommandAdvance:
		sig, err := s.Advance()
		if err != nil {
			return out, err
		}
		out.Signal = sig

	case CommandRestart:
		if err := s.Restart(); err != nil {
			return out, err
		}
	}

	return out, nil
}
