package core

import (
	"fmt"
	"math/rand"
)

// FitMode decides what happens when a level's color count does not fit in
// its tubes next to the free tube.
type FitMode string

const (
	// FitStrict rejects such levels with a ConfigurationError.
	FitStrict FitMode = "strict"
	// FitGrow adds tubes until every color has one, plus the free tube.
	FitGrow FitMode = "grow"
)

// Scaling maps a level number to tube and color counts:
//
//	tubes  = min(BaseTubes + level/TubeStep, MaxTubes)
//	colors = min(BaseColors + level/ColorStep, MaxColors)
type Scaling struct {
	BaseTubes  int
	TubeStep   int
	MaxTubes   int
	BaseColors int
	ColorStep  int
	MaxColors  int
	Fit        FitMode
}

// DefaultScaling returns the standard progression: 4 tubes and 3 colors at
// the start, one more tube every 5 levels up to 8, one more color every 3
// levels up to 6.
func DefaultScaling() Scaling {
	return Scaling{
		BaseTubes:  4,
		TubeStep:   5,
		MaxTubes:   8,
		BaseColors: 3,
		ColorStep:  3,
		MaxColors:  6,
		Fit:        FitGrow,
	}
}

// TubeCount returns the number of tubes for a level.
func (s Scaling) TubeCount(level int) int {
	return min(s.BaseTubes+stepsAt(level, s.TubeStep), s.MaxTubes)
}

// ColorCount returns the number of colors for a level.
func (s Scaling) ColorCount(level int) int {
	return min(s.BaseColors+stepsAt(level, s.ColorStep), s.MaxColors)
}

// BoardTubes returns the number of tubes a generated board has for a level.
// It differs from TubeCount only under FitGrow, when the colors need more room.
func (s Scaling) BoardTubes(level int) int {
	tubes := s.TubeCount(level)
	if s.Fit == FitGrow {
		tubes = max(tubes, s.ColorCount(level)+1)
	}
	return tubes
}

func stepsAt(level, step int) int {
	if step <= 0 {
		return 0
	}
	return level / step
}

// ConfigurationError reports level-scaling parameters that cannot produce a
// board. It is not recoverable at runtime.
type ConfigurationError struct {
	Level   int
	Tubes   int
	Colors  int
	Palette int
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("watersort: level %d (tubes=%d colors=%d palette=%d): %s",
		e.Level, e.Tubes, e.Colors, e.Palette, e.Reason)
}

// Generator builds shuffled starting boards.
type Generator struct {
	scaling Scaling
	palette []Color
	rng     *rand.Rand
}

// NewGenerator creates a generator drawing from the first paletteSize colors.
func NewGenerator(scaling Scaling, paletteSize int, rng *rand.Rand) *Generator {
	return &Generator{
		scaling: scaling,
		palette: Palette(paletteSize),
		rng:     rng,
	}
}

// Scaling returns the generator's level scaling.
func (g *Generator) Scaling() Scaling {
	return g.scaling
}

// Check validates that a level can be generated without building it.
func (g *Generator) Check(level int) error {
	tubes := g.scaling.BoardTubes(level)
	colors := g.scaling.ColorCount(level)

	fail := func(reason string) error {
		return &ConfigurationError{
			Level:   level,
			Tubes:   tubes,
			Colors:  colors,
			Palette: len(g.palette),
			Reason:  reason,
		}
	}

	switch {
	case level < 1:
		return fail("level must be at least 1")
	case colors < 1:
		return fail("level needs at least one color")
	case colors > tubes-1:
		return fail("color count exceeds tube count minus the free tube")
	case colors > len(g.palette):
		return fail("color count exceeds palette size")
	}
	return nil
}

// CheckLevels validates every level in [1, last].
func (g *Generator) CheckLevels(last int) error {
	for level := 1; level <= last; level++ {
		if err := g.Check(level); err != nil {
			return err
		}
	}
	return nil
}

// Generate builds the starting board for a level: TubeCapacity units of each
// of the first ColorCount(level) palette colors, shuffled, dealt in order into
// BoardTubes(level)-1 tubes of up to TubeCapacity units, followed by one empty
// tube. Solvability is not checked.
func (g *Generator) Generate(level int) (Board, error) {
	if err := g.Check(level); err != nil {
		return nil, err
	}

	tubes := g.scaling.BoardTubes(level)
	colors := g.scaling.ColorCount(level)

	tokens := fillTokens(g.palette[:colors])
	Shuffle(tokens, g.rng)

	board := make(Board, 0, tubes)
	for i := 0; i < tubes-1; i++ {
		tube := make(Tube, 0, TubeCapacity)
		if len(tokens) > 0 {
			n := min(TubeCapacity, len(tokens))
			tube = append(tube, tokens[:n]...)
			tokens = tokens[n:]
		}
		board = append(board, tube)
	}
	board = append(board, make(Tube, 0, TubeCapacity))

	return board, nil
}
