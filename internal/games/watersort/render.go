package watersort

import (
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/watersort/internal/core"
	"github.com/vovakirdan/watersort/internal/games/watersort/core"
)

const (
	tubeWidth = 4 // Border, two liquid cells, border
	tubeGap   = 3
	tubePitch = tubeWidth + tubeGap
	hudHeight = 3
	boardTop  = hudHeight + 1

	// Rows below the liquid: bottom border, number label, cursor marker.
	tubeFooter = 3
)

// liquidColors maps puzzle colors onto screen colors.
var liquidColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorYellow: platformcore.ColorYellow,
	core.ColorPurple: platformcore.ColorMagenta,
	core.ColorOrange: platformcore.ColorOrange,
	core.ColorCyan:   platformcore.ColorCyan,
	core.ColorPink:   platformcore.ColorPink,
}

// ScreenColor returns the screen color used to draw c.
func ScreenColor(c core.Color) platformcore.Color {
	if sc, ok := liquidColors[c]; ok {
		return sc
	}
	return platformcore.ColorWhite
}

// layout places tubes on screen. It is derived from the tube count and
// screen width so drawing and hit-testing always agree.
type layout struct {
	tubes   int
	originX int
}

func (g *Game) layout() layout {
	n := 0
	if g.session != nil {
		n = len(g.session.Board())
	}
	return layout{tubes: n, originX: (g.screenW - boardWidth(n)) / 2}
}

func boardWidth(tubes int) int {
	if tubes == 0 {
		return 0
	}
	return tubes*tubePitch - tubeGap
}

// tubeRect covers a tube's body and the rows under it.
func (l layout) tubeRect(i int) platformcore.Rect {
	return platformcore.NewRect(l.originX+i*tubePitch, boardTop, tubeWidth, core.TubeCapacity+tubeFooter)
}

// TubeAt returns the tube index drawn at screen cell (x, y), or -1.
func (g *Game) TubeAt(x, y int) int {
	if g.tooSmall {
		return -1
	}
	l := g.layout()
	for i := range l.tubes {
		if l.tubeRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// MinSize returns the smallest screen that fits the current board.
func (g *Game) MinSize() (w, h int) {
	w = max(boardWidth(g.layout().tubes)+2, 30)
	h = boardTop + core.TubeCapacity + tubeFooter + 2
	return w, h
}

func (g *Game) checkSize() {
	w, h := g.MinSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		if g.err != nil {
			dst.DrawTextCentered(g.screenH/2, g.err.Error())
		}
		return
	}

	snap := g.session.Snapshot()
	l := g.layout()

	g.renderHUD(dst, snap)

	target := g.session.Target(g.cursor)
	for i, tube := range snap.Board {
		g.renderTube(dst, l.tubeRect(i), i, tube, target)
	}

	g.renderStatus(dst, snap)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := g.MinSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", w, h))
}

// renderHUD draws the title, level and counters.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	dst.DrawTextColored(1, 0, g.Title(), platformcore.ColorCyan)

	info := fmt.Sprintf("Level %d/%d  Tubes %d  Colors %d  Free %d  Pours %d",
		snap.Level, snap.TotalLevels, snap.Tubes, snap.Colors, snap.Empty, snap.Pours)
	dst.DrawText(platformcore.Clamp(dst.Width()-len(info)-1, 0, dst.Width()), 0, info)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
}

// renderTube draws one tube, its liquid, its number and the cursor.
func (g *Game) renderTube(dst *platformcore.Screen, r platformcore.Rect, i int, tube core.Tube, target int) {
	border := platformcore.ColorGray
	if i == g.cursor {
		border = platformcore.ColorHighlight
	}

	bottom := r.Y + core.TubeCapacity
	for row := range core.TubeCapacity {
		y := r.Y + row
		dst.SetColored(r.X, y, '│', border)
		dst.SetColored(r.X+tubeWidth-1, y, '│', border)

		slot := core.TubeCapacity - 1 - row
		if slot >= tube.Len() {
			continue
		}
		c := tube[slot]
		fill := '█'
		if g.letters {
			fill = c.Char()
		}
		dst.SetColored(r.X+1, y, fill, ScreenColor(c))
		dst.SetColored(r.X+2, y, fill, ScreenColor(c))
	}
	dst.SetColored(r.X, bottom, '╰', border)
	dst.SetColored(r.X+1, bottom, '─', border)
	dst.SetColored(r.X+2, bottom, '─', border)
	dst.SetColored(r.X+3, bottom, '╯', border)

	label := strconv.Itoa(i + 1)
	labelColor := platformcore.ColorDefault
	if i == target {
		labelColor = platformcore.ColorHighlight
	}
	dst.DrawTextColored(r.X+(tubeWidth-len(label))/2, bottom+1, label, labelColor)

	if i == g.cursor {
		dst.DrawTextColored(r.X+1, bottom+2, "▲▲", platformcore.ColorHighlight)
	}
}

// renderStatus draws the line under the board.
func (g *Game) renderStatus(dst *platformcore.Screen, snap core.Snapshot) {
	y := boardTop + core.TubeCapacity + tubeFooter + 1

	var status string
	color := platformcore.ColorDefault
	switch {
	case snap.State == core.StateCompleted:
		status = fmt.Sprintf("All %d levels done! Press R to play again", snap.TotalLevels)
		color = platformcore.ColorGreen
	case snap.State == core.StatePaused:
		status = "Paused - press P to continue"
		color = platformcore.ColorYellow
	case g.message != "":
		status = g.message
	case snap.Won:
		status = "Sorted! Press N for the next level"
		color = platformcore.ColorGreen
	default:
		if t := g.session.Target(g.cursor); t >= 0 {
			status = fmt.Sprintf("Tube %d pours into tube %d", g.cursor+1, t+1)
		} else {
			status = fmt.Sprintf("Tube %d cannot pour", g.cursor+1)
		}
		color = platformcore.ColorGray
	}
	dst.DrawTextColored(platformcore.Clamp((dst.Width()-len([]rune(status)))/2, 0, dst.Width()), y, status, color)
}
