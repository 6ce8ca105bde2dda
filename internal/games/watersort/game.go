// Package watersort adapts the water sort session to the terminal front end:
// it owns the tube cursor, maps platform inputs onto session commands, and
// draws the board onto a core.Screen.
package watersort

import (
	"fmt"
	"math/rand"
	"time"

	platformcore "github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

// Game is the water sort game as seen by the terminal front end.
type Game struct {
	cfg     core.Config
	session *core.Session
	err     error

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool

	cursor  int
	letters bool   // Draw color letters instead of blocks
	message string // One-line status shown under the board
}

// New creates a game for the given session config. Call Reset before use.
func New(cfg core.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "watersort"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Water Sort"
}

// SetLetters switches between colored blocks and color letters.
func (g *Game) SetLetters(on bool) {
	g.letters = on
}

// Letters reports whether letter mode is on.
func (g *Game) Letters() bool {
	return g.letters
}

// Reset starts a fresh session seeded from cfg.Seed (0 means time-based).
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := core.NewSession(g.cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		g.err = err
		return fmt.Errorf("watersort: reset: %w", err)
	}

	g.session = session
	g.err = nil
	g.cursor = 0
	g.message = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return nil
}

// Resize updates the screen size used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

// Session exposes the underlying session, or nil before Reset.
func (g *Game) Session() *core.Session {
	return g.session
}

// Err returns the last session error, if any.
func (g *Game) Err() error {
	return g.err
}

// Cursor returns the tube index under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Message returns the current status line text.
func (g *Game) Message() string {
	return g.message
}

// Apply handles one input and reports the resulting state and cues.
func (g *Game) Apply(in platformcore.Input) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{}
	}

	var cues []platformcore.Cue

	switch in.Action {
	case platformcore.ActionLeft:
		g.moveCursor(-1)

	case platformcore.ActionRight:
		g.moveCursor(1)

	case platformcore.ActionPour:
		cues = g.pour(g.cursor)

	case platformcore.ActionSelect:
		if g.inBoard(in.Index) {
			g.cursor = in.Index
		}
		cues = g.pour(in.Index)

	case platformcore.ActionPause:
		cmd := core.PauseCmd()
		if g.session.IsPaused() {
			cmd = core.ResumeCmd()
		}
		g.dispatch(cmd)
		cues = append(cues, platformcore.CueClick)

	case platformcore.ActionNext:
		cues = append(cues, platformcore.CueClick)
		if g.session.IsCompleted() {
			break
		}
		out, err := g.dispatch(core.AdvanceCmd())
		if err == nil {
			cues = append(cues, g.signalCues(out.Signal, "Skipped")...)
		}

	case platformcore.ActionRestart:
		if _, err := g.dispatch(core.RestartCmd()); err == nil {
			g.cursor = 0
			g.message = "New run"
		}
		cues = append(cues, platformcore.CueClick)
	}

	return platformcore.StepResult{State: g.State(), Cues: cues}
}

// PourAt pours from the tube under screen cell (x, y). It reports whether a
// tube was hit at all.
func (g *Game) PourAt(x, y int) (platformcore.StepResult, bool) {
	i := g.TubeAt(x, y)
	if i < 0 {
		return platformcore.StepResult{State: g.State()}, false
	}
	return g.Apply(platformcore.SelectTube(i)), true
}

func (g *Game) pour(src int) []platformcore.Cue {
	out, err := g.dispatch(core.PourCmd(src))
	if err != nil || !out.Poured {
		return nil
	}

	cues := []platformcore.Cue{platformcore.CuePour}
	if out.Won {
		cues = append(cues, platformcore.CueLevelComplete)
		cues = append(cues, g.signalCues(out.Signal, "Sorted")...)
	} else {
		g.message = ""
	}
	return cues
}

// signalCues turns a level change into a status message and cues.
func (g *Game) signalCues(sig core.Signal, verb string) []platformcore.Cue {
	switch sig.Kind {
	case core.SignalNextLevel:
		g.cursor = 0
		g.checkSize()
		g.message = fmt.Sprintf("%s! On to level %d", verb, sig.Level)
	case core.SignalCompleted:
		g.message = "All levels done"
		return []platformcore.Cue{platformcore.CueGameComplete}
	}
	return nil
}

func (g *Game) dispatch(cmd core.Command) (core.Outcome, error) {
	out, err := g.session.Dispatch(cmd)
	if err != nil {
		g.err = err
		g.message = err.Error()
	}
	return out, err
}

func (g *Game) moveCursor(delta int) {
	n := len(g.session.Board())
	if n == 0 {
		return
	}
	g.cursor = (g.cursor + delta + n) % n
}

func (g *Game) inBoard(i int) bool {
	return i >= 0 && i < len(g.session.Board())
}

// State returns the platform view of the session.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Level:     g.session.Level(),
		Pours:     g.session.Pours(),
		Paused:    g.session.IsPaused(),
		Completed: g.session.IsCompleted(),
	}
}

// Snapshot returns a read-only view of the session.
func (g *Game) Snapshot() core.Snapshot {
	if g.session == nil {
		return core.Snapshot{}
	}
	return g.session.Snapshot()
}
