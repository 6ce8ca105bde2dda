package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"bottom-right inside", 5, 7, true},
		{"right edge excluded", 6, 3, false},
		{"bottom edge excluded", 2, 8, false},
		{"left of rect", 1, 4, false},
		{"above rect", 3, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 5, 3)
	if r.Right() != 15 {
		t.Errorf("Right() = %d, expected 15", r.Right())
	}
	if r.Bottom() != 23 {
		t.Errorf("Bottom() = %d, expected 23", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestCueString(t *testing.T) {
	if CuePour.String() != "pour" {
		t.Errorf("CuePour.String() = %q", CuePour.String())
	}
	if CueLevelComplete.String() != "level_complete" {
		t.Errorf("CueLevelComplete.String() = %q", CueLevelComplete.String())
	}
	if Cue(99).String() != "none" {
		t.Errorf("unknown cue should stringify as none, got %q", Cue(99).String())
	}
}

func TestInputHelpers(t *testing.T) {
	in := SelectTube(3)
	if in.Action != ActionSelect || in.Index != 3 {
		t.Errorf("SelectTube(3) = %+v", in)
	}
	if Press(ActionPause).Action != ActionPause {
		t.Error("Press should carry the action")
	}
	if ActionNext.String() != "Next" {
		t.Errorf("ActionNext.String() = %q", ActionNext.String())
	}
}
