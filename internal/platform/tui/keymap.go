package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/watersort/internal/core"
)

// maxTubeKeys is how many tubes can be picked with number keys.
const maxTubeKeys = 9

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Pour    key.Binding
	Tube    key.Binding
	Pause   key.Binding
	Next    key.Binding
	Restart key.Binding
	Letters key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Pour, k.Tube, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Pour, k.Tube},
		{k.Pause, k.Next, k.Restart},
		{k.Letters, k.Help, k.Quit},
	}
}

// fullHelpRows is the height of the tallest FullHelp column.
const fullHelpRows = 4

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tube"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tube"),
		),
		Pour: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pour"),
		),
		Tube: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pour from tube"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Letters: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "letters"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game inputs.
// UI-only keys (help, letters) are left to the model.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a game input.
// Returns the input (Action may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Input, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.Press(core.ActionQuit), true
	case key.Matches(msg, km.keys.Left):
		return core.Press(core.ActionLeft), false
	case key.Matches(msg, km.keys.Right):
		return core.Press(core.ActionRight), false
	case key.Matches(msg, km.keys.Pour):
		return core.Press(core.ActionPour), false
	case key.Matches(msg, km.keys.Tube):
		return core.SelectTube(tubeIndex(msg)), false
	case key.Matches(msg, km.keys.Pause):
		return core.Press(core.ActionPause), false
	case key.Matches(msg, km.keys.Next):
		return core.Press(core.ActionNext), false
	case key.Matches(msg, km.keys.Restart):
		return core.Press(core.ActionRestart), false
	}
	return core.Press(core.ActionNone), false
}

// tubeIndex converts a "1".."9" key to a zero-based tube index.
func tubeIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '0'+maxTubeKeys {
		return -1
	}
	return int(s[0] - '1')
}
