package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/watersort/internal/games/watersort"
	"github.com/vovakirdan/watersort/internal/storage"
)

// RunRecorder writes the current run to the journal exactly once.
// It is shared by pointer between the model and whoever owns the program,
// so a run is recorded even when the program ends without a quit key.
type RunRecorder struct {
	mu        sync.Mutex
	store     *storage.Store
	logger    *log.Logger
	game      *watersort.Game
	player    string
	seed      int64
	startedAt time.Time
	saved     bool
	now       func() time.Time
}

// NewRunRecorder starts recording a run of game. store may be nil.
func NewRunRecorder(store *storage.Store, logger *log.Logger, game *watersort.Game, player string, seed int64) *RunRecorder {
	r := &RunRecorder{
		store:  store,
		logger: logger,
		game:   game,
		player: player,
		seed:   seed,
		now:    time.Now,
	}
	r.startedAt = r.now()
	return r
}

// Finish records the run if it made any progress. Later calls do nothing
// until Begin starts the next run.
func (r *RunRecorder) Finish() (id string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saved || r.store == nil {
		return "", false
	}
	session := r.game.Session()
	if session == nil {
		return "", false
	}
	r.saved = true

	start := session.Config().StartLevel
	if session.Pours() == 0 && session.Level() == start {
		return "", false
	}

	run := storage.Run{
		Player:        r.player,
		Seed:          r.seed,
		StartLevel:    start,
		LevelReached:  session.Level(),
		TotalLevels:   session.TotalLevels(),
		LevelsCleared: session.LevelsCleared(),
		Pours:         session.Pours(),
		Completed:     session.IsCompleted(),
		StartedAt:     r.startedAt,
		EndedAt:       r.now(),
	}
	id, err := r.store.SaveRun(run)
	if err != nil {
		r.logger.Warn("could not record run", "error", err)
		return "", false
	}
	r.logger.Debug("run recorded", "id", id, "level", run.LevelReached, "pours", run.Pours)
	return id, true
}

// Begin marks the start of a new run on the same game.
func (r *RunRecorder) Begin() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = false
	r.startedAt = r.now()
}
