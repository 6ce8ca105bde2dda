package core

// Color identifies one kind of liquid.
type Color uint8

const (
	ColorRed Color = iota
	ColorBlue
	ColorGreen
	ColorYellow
	ColorPurple
	ColorOrange
	ColorCyan
	ColorPink
	ColorCount // Sentinel value for iteration
)

// DefaultPaletteSize is the number of colors used unless configured otherwise.
const DefaultPaletteSize = 6

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorPink:
		return "pink"
	default:
		return "unknown"
	}
}

// Char returns a single letter for letter-mode rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorBlue:
		return 'B'
	case ColorGreen:
		return 'G'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorCyan:
		return 'C'
	case ColorPink:
		return 'K'
	default:
		return '?'
	}
}

// AllColors returns every supported color in palette order.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Palette returns the first n colors of AllColors.
// n is clamped to [0, ColorCount].
func Palette(n int) []Color {
	n = min(max(n, 0), int(ColorCount))
	return AllColors()[:n]
}
