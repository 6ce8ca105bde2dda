package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort"
	"github.com/vovakirdan/watersort/internal/storage"
)

// Options carries the collaborators of a Model. Zero values are valid.
type Options struct {
	Store  *storage.Store
	Logger *log.Logger
	Cuer   Cuer
	Player string
}

// Model is the Bubble Tea model for playing water sort.
// The game is event driven: every key or click is applied immediately and
// there is no tick loop.
type Model struct {
	game      *watersort.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger
	cuer      Cuer
	recorder  *RunRecorder
	width     int
	height    int
	quitting  bool
}

// NewModel creates a model and starts a fresh run of game.
func NewModel(game *watersort.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Cuer == nil {
		opts.Cuer = NopCuer{}
	}

	keys := DefaultKeyMap()
	m := Model{
		game:      game,
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		logger:    opts.Logger,
		cuer:      opts.Cuer,
		recorder:  NewRunRecorder(opts.Store, opts.Logger, game, opts.Player, cfg.Seed),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	m.help.Width = cfg.ScreenW

	if err := game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: m.boardHeight(), Seed: cfg.Seed}); err != nil {
		m.logger.Error("could not start game", "error", err)
	} else {
		m.logger.Debug("run started", "seed", cfg.Seed, "level", game.State().Level)
	}
	return m
}

// Recorder returns the run recorder shared with the program owner.
func (m Model) Recorder() *RunRecorder {
	return m.recorder
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case key.Matches(msg, m.keys.Letters):
		m.game.SetLetters(!m.game.Letters())
		return m, nil
	}

	in, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.recorder.Finish()
		m.quitting = true
		return m, tea.Quit
	}
	if in.Action == core.ActionNone {
		return m, nil
	}

	m.apply(in)
	return m, nil
}

// handleMouse pours from the tube under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if i := m.game.TubeAt(msg.X, msg.Y); i >= 0 {
		m.apply(core.SelectTube(i))
	}
	return m, nil
}

// apply runs one input through the game, then plays cues and keeps the
// journal in step with the run.
func (m *Model) apply(in core.Input) {
	restart := in.Action == core.ActionRestart
	if restart {
		m.recorder.Finish()
	}

	before := m.game.State()
	result := m.game.Apply(in)
	after := result.State

	if restart {
		m.recorder.Begin()
	}

	for _, cue := range result.Cues {
		m.cuer.Play(cue)
	}

	if after.Pours != before.Pours {
		m.logger.Debug("pour", "tube", m.game.Cursor()+1, "pours", after.Pours)
	}
	if after.Level != before.Level {
		m.logger.Debug("level changed", "from", before.Level, "to", after.Level)
	}
	if after.Completed && !before.Completed {
		m.logger.Info("run completed", "pours", after.Pours)
		m.recorder.Finish()
	}
	if err := m.game.Err(); err != nil {
		m.logger.Error("game error", "error", err)
	}
}

// handleResize processes window resize events. The run is kept.
func (m Model) handleResize(w, h int) (tea.Model, tea.Cmd) {
	m.width = w
	m.height = h
	m.help.Width = w
	m.screen.Resize(w, m.boardHeight())
	m.game.Resize(w, m.boardHeight())
	return m, nil
}

// boardHeight is the window height minus the help footer.
func (m Model) boardHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	return max(m.height-rows, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and records the run when it exits.
func Run(game *watersort.Game, cfg core.RuntimeConfig, opts Options) error {
	if opts.Player == "" {
		opts.Player = localPlayer()
	}
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	model.Recorder().Finish()
	return err
}

// localPlayer names the local player after the OS user.
func localPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
