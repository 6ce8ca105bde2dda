package watersort

import (
	"slices"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

func newGame(t *testing.T, cfg core.Config) *Game {
	t.Helper()
	g := New(cfg)
	err := g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	return g
}

// monoConfig is a two-level run with one color, so any pour wins.
func monoConfig() core.Config {
	return core.Config{
		TotalLevels: 2,
		StartLevel:  1,
		PaletteSize: 1,
		Scaling: core.Scaling{
			BaseTubes: 2, TubeStep: 0, MaxTubes: 2,
			BaseColors: 1, ColorStep: 0, MaxColors: 1,
			Fit: core.FitStrict,
		},
	}
}

func pourable(g *Game) int {
	for i := range g.Session().Board() {
		if g.Session().Target(i) >= 0 {
			return i
		}
	}
	return -1
}

func TestResetStartsFresh(t *testing.T) {
	g := newGame(t, core.DefaultConfig())

	state := g.State()
	if state.Level != 1 || state.Pours != 0 || state.Paused || state.Completed {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if g.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", g.Cursor())
	}
	if g.ID() != "watersort" {
		t.Errorf("ID() = %q", g.ID())
	}
}

func TestResetRejectsBadConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.TotalLevels = 0

	g := New(cfg)
	if err := g.Reset(platformcore.DefaultConfig()); err == nil {
		t.Fatal("expected an error for zero levels")
	}
	if g.Err() == nil {
		t.Error("Err() should keep the reset error")
	}
	if res := g.Apply(platformcore.Press(platformcore.ActionPour)); len(res.Cues) != 0 {
		t.Error("input without a session should be ignored")
	}
}

func TestCursorWraps(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	n := len(g.Session().Board())

	g.Apply(platformcore.Press(platformcore.ActionLeft))
	if g.Cursor() != n-1 {
		t.Errorf("left from 0 should wrap to %d, got %d", n-1, g.Cursor())
	}
	g.Apply(platformcore.Press(platformcore.ActionRight))
	if g.Cursor() != 0 {
		t.Errorf("right from last should wrap to 0, got %d", g.Cursor())
	}
}

func TestSelectPoursAndEmitsCue(t *testing.T) {
	g := newGame(t, core.DefaultConfig())

	src := pourable(g)
	if src < 0 {
		t.Fatal("expected a pourable tube")
	}
	res := g.Apply(platformcore.SelectTube(src))

	if !slices.Contains(res.Cues, platformcore.CuePour) {
		t.Errorf("expected a pour cue, got %v", res.Cues)
	}
	if res.State.Pours != 1 {
		t.Errorf("Pours = %d, want 1", res.State.Pours)
	}
	if g.Cursor() != src {
		t.Errorf("select should move the cursor to %d, got %d", src, g.Cursor())
	}
}

func TestSelectOutOfRangeIsNoop(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	before := g.Session().Board()

	res := g.Apply(platformcore.SelectTube(42))

	if len(res.Cues) != 0 || res.State.Pours != 0 {
		t.Errorf("out-of-range select should do nothing, got %+v", res)
	}
	if g.Cursor() != 0 {
		t.Errorf("cursor should stay put, got %d", g.Cursor())
	}
	if !boardsEqual(before, g.Session().Board()) {
		t.Error("board changed")
	}
}

func TestPauseBlocksPour(t *testing.T) {
	g := newGame(t, core.DefaultConfig())

	res := g.Apply(platformcore.Press(platformcore.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	if !slices.Contains(res.Cues, platformcore.CueClick) {
		t.Errorf("pause should click, got %v", res.Cues)
	}

	res = g.Apply(platformcore.SelectTube(pourable(g)))
	if slices.Contains(res.Cues, platformcore.CuePour) || res.State.Pours != 0 {
		t.Error("pour while paused should be ignored")
	}

	res = g.Apply(platformcore.Press(platformcore.ActionPause))
	if res.State.Paused {
		t.Error("second pause press should resume")
	}
}

func TestWinningPourCues(t *testing.T) {
	g := newGame(t, monoConfig())

	res := g.Apply(platformcore.SelectTube(0))
	want := []platformcore.Cue{platformcore.CuePour, platformcore.CueLevelComplete}
	if !slices.Equal(res.Cues, want) {
		t.Fatalf("cues = %v, want %v", res.Cues, want)
	}
	if res.State.Level != 2 {
		t.Errorf("expected level 2 after a win, got %d", res.State.Level)
	}
	if !strings.Contains(g.Message(), "level 2") {
		t.Errorf("Message() = %q", g.Message())
	}

	res = g.Apply(platformcore.SelectTube(0))
	want = append(want, platformcore.CueGameComplete)
	if !slices.Equal(res.Cues, want) {
		t.Fatalf("cues = %v, want %v", res.Cues, want)
	}
	if !res.State.Completed {
		t.Error("winning the last level should complete the run")
	}
}

func TestNextAfterCompletionOnlyClicks(t *testing.T) {
	g := newGame(t, monoConfig())
	g.Apply(platformcore.SelectTube(0))
	g.Apply(platformcore.SelectTube(0))
	if !g.State().Completed {
		t.Fatal("run should be complete after winning both levels")
	}

	for range 3 {
		res := g.Apply(platformcore.Press(platformcore.ActionNext))
		want := []platformcore.Cue{platformcore.CueClick}
		if !slices.Equal(res.Cues, want) {
			t.Fatalf("cues = %v, want %v", res.Cues, want)
		}
		if !res.State.Completed || res.State.Level != 2 {
			t.Errorf("completed run changed: %+v", res.State)
		}
	}
}

func TestNextSkipsLevel(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	g.Apply(platformcore.Press(platformcore.ActionRight))

	res := g.Apply(platformcore.Press(platformcore.ActionNext))
	if res.State.Level != 2 {
		t.Errorf("Level = %d, want 2", res.State.Level)
	}
	if g.Cursor() != 0 {
		t.Error("cursor should reset on a new level")
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	g.Apply(platformcore.Press(platformcore.ActionNext))
	g.Apply(platformcore.Press(platformcore.ActionNext))

	res := g.Apply(platformcore.Press(platformcore.ActionRestart))
	if res.State.Level != 1 || res.State.Pours != 0 {
		t.Errorf("restart should return to level 1, got %+v", res.State)
	}
}

func TestTubeAtMatchesLayout(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	l := g.layout()

	for i := range l.tubes {
		r := l.tubeRect(i)
		if got := g.TubeAt(r.X+1, r.Y+1); got != i {
			t.Errorf("TubeAt inside tube %d = %d", i, got)
		}
		if got := g.TubeAt(r.Right(), r.Y); i < l.tubes-1 && got != -1 {
			t.Errorf("gap after tube %d should miss, got %d", i, got)
		}
	}
	if g.TubeAt(0, 0) != -1 {
		t.Error("HUD should not hit a tube")
	}
}

func TestPourAt(t *testing.T) {
	g := newGame(t, monoConfig())
	r := g.layout().tubeRect(0)

	res, hit := g.PourAt(r.X+1, r.Y)
	if !hit {
		t.Fatal("expected to hit tube 0")
	}
	if !slices.Contains(res.Cues, platformcore.CuePour) {
		t.Errorf("expected a pour, got %v", res.Cues)
	}

	if _, hit := g.PourAt(0, 0); hit {
		t.Error("click outside tubes should miss")
	}
}

func TestRenderDrawsTubes(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	l := g.layout()
	for i := range l.tubes {
		r := l.tubeRect(i)
		bottom := r.Y + core.TubeCapacity
		if got := screen.Get(r.X, bottom); got != '╰' {
			t.Errorf("tube %d bottom-left = %q", i, got)
		}
	}
	for _, want := range []string{"Level 1/30", "Free 1"} {
		if !strings.Contains(screen.Row(0), want) {
			t.Errorf("HUD row = %q, missing %q", screen.Row(0), want)
		}
	}
}

func TestRenderLetterMode(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	g.SetLetters(true)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	board := g.Session().Board()
	r := g.layout().tubeRect(0)
	bottomSlot := r.Y + core.TubeCapacity - 1

	cell := screen.GetCell(r.X+1, bottomSlot)
	if cell.Rune != board[0][0].Char() {
		t.Errorf("letter cell = %q, want %q", cell.Rune, board[0][0].Char())
	}
	if cell.Color != ScreenColor(board[0][0]) {
		t.Errorf("letter color = %v, want %v", cell.Color, ScreenColor(board[0][0]))
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, core.DefaultConfig())
	g.Resize(20, 8)

	screen := platformcore.NewScreen(20, 8)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}
	if g.TubeAt(1, 5) != -1 {
		t.Error("hit-testing should be off while too small")
	}
}

func TestScreenColorCoversPalette(t *testing.T) {
	seen := map[platformcore.Color]bool{}
	for _, c := range core.AllColors() {
		sc := ScreenColor(c)
		if seen[sc] {
			t.Errorf("%s shares a screen color", c)
		}
		seen[sc] = true
	}
}

func boardsEqual(a, b core.Board) bool {
	return slices.EqualFunc(a, b, func(x, y core.Tube) bool {
		return slices.Equal(x, y)
	})
}
