// Package core holds the pure water sort rules: tubes, pours, level
// generation and the game session. It has no UI or I/O dependencies.
package core

// TubeCapacity is the number of liquid units every tube holds.
const TubeCapacity = 4

// Tube is a stack of liquid units. The last element is the top.
type Tube []Color

// Len returns the number of units in the tube.
func (t Tube) Len() int {
	return len(t)
}

// IsEmpty reports whether the tube holds nothing.
func (t Tube) IsEmpty() bool {
	return len(t) == 0
}

// IsFull reports whether the tube is at capacity.
func (t Tube) IsFull() bool {
	return len(t) >= TubeCapacity
}

// Top returns the topmost color. ok is false for an empty tube.
func (t Tube) Top() (c Color, ok bool) {
	if len(t) == 0 {
		return 0, false
	}
	return t[len(t)-1], true
}

// IsUniform reports whether every unit in a non-empty tube has the same color.
func (t Tube) IsUniform() bool {
	if len(t) == 0 {
		return false
	}
	for _, c := range t[1:] {
		if c != t[0] {
			return false
		}
	}
	return true
}

// Accepts reports whether c may be poured onto this tube.
func (t Tube) Accepts(c Color) bool {
	if t.IsFull() {
		return false
	}
	top, ok := t.Top()
	return !ok || top == c
}

// Clone returns an independent copy of the tube.
func (t Tube) Clone() Tube {
	if t == nil {
		return Tube{}
	}
	clone := make(Tube, len(t), TubeCapacity)
	copy(clone, t)
	return clone
}
