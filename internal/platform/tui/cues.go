package tui

import (
	"io"
	"sync"

	"github.com/vovakirdan/watersort/internal/core"
)

// Cuer plays presentation cues. Implementations must not block.
type Cuer interface {
	Play(cue core.Cue)
}

// NopCuer ignores every cue.
type NopCuer struct{}

// Play does nothing.
func (NopCuer) Play(core.Cue) {}

// BellCuer rings the terminal bell for level and game completion.
// Pours and clicks are silent.
type BellCuer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBellCuer creates a cuer writing BEL to w.
func NewBellCuer(w io.Writer) *BellCuer {
	return &BellCuer{w: w}
}

// Play rings the bell for completion cues.
func (b *BellCuer) Play(cue core.Cue) {
	switch cue {
	case core.CueLevelComplete, core.CueGameComplete:
	default:
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // Best-effort
	b.w.Write([]byte{'\a'})
}
