package core

// Board is the ordered set of tubes for a level.
// Order only matters for addressing tubes by index.
type Board []Tube

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for i, t := range b {
		clone[i] = t.Clone()
	}
	return clone
}

// InRange reports whether i addresses a tube on the board.
func (b Board) InRange(i int) bool {
	return i >= 0 && i < len(b)
}

// Target returns the tube that a pour from src would fill, or -1.
// Destinations are scanned in ascending order, skipping src; the first
// tube that is not full and is either empty or topped with the source
// color wins.
func Target(b Board, src int) int {
	if !b.InRange(src) {
		return -1
	}
	top, ok := b[src].Top()
	if !ok {
		return -1
	}
	for i, t := range b {
		if i == src {
			continue
		}
		if t.Accepts(top) {
			return i
		}
	}
	return -1
}

// Pour moves the top unit of tube src onto the first accepting tube.
// On success it returns a new board and true. Otherwise the input board is
// returned unchanged with false. Exactly one unit moves per call.
func Pour(b Board, src int) (Board, bool) {
	dst := Target(b, src)
	if dst < 0 {
		return b, false
	}

	next := b.Clone()
	source := next[src]
	unit := source[len(source)-1]
	next[src] = source[:len(source)-1]
	next[dst] = append(next[dst], unit)
	return next, true
}

// IsWin reports whether every tube is empty or holds a single color.
// A uniform tube counts as sorted even when it is not full.
func IsWin(b Board) bool {
	for _, t := range b {
		if !t.IsEmpty() && !t.IsUniform() {
			return false
		}
	}
	return true
}

// CountByColor returns how many units of each color are on the board.
func CountByColor(b Board) map[Color]int {
	counts := make(map[Color]int)
	for _, t := range b {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

// EmptyTubes returns the number of empty tubes.
func EmptyTubes(b Board) int {
	n := 0
	for _, t := range b {
		if t.IsEmpty() {
			n++
		}
	}
	return n
}
