package game

import "testing"

func TestCoordNotation(t *testing.T) {
	cases := []struct {
		in   string
		want Coord
	}{
		{"A0", Coord{Row: 0, Col: 0}},
		{"C2", Coord{Row: 2, Col: 2}},
		{"b3", Coord{Row: 1, Col: 3}},
		{" D 4 ", Coord{Row: 3, Col: 4}},
	}
	for _, c := range cases {
		got, err := ParseCoord(c.in)
		if err != nil {
			t.Errorf("ParseCoord(%q): unexpected error %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "A", "99", "AA", "A33", "!3"} {
		if _, err := ParseCoord(bad); err == nil {
			t.Errorf("ParseCoord(%q): expected an error", bad)
		}
	}

	if got := (Coord{Row: 2, Col: 2}).String(); got != "C2" {
		t.Errorf("expected C2, got %q", got)
	}
	if got := (Coord{Row: -1, Col: 30}).String(); got != "??" {
		t.Errorf("expected ?? for an unrepresentable coord, got %q", got)
	}
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("C2 B2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.From != (Coord{Row: 2, Col: 2}) || m.To != (Coord{Row: 1, Col: 2}) {
		t.Errorf("unexpected move %v", m)
	}

	// Separators are forgiven, as players type them.
	if _, err := ParseMove("c2,b2"); err != nil {
		t.Errorf("expected separator-tolerant parse, got %v", err)
	}

	for _, bad := range []string{"", "C2", "C2 B2 A1", "Z9 !!"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q): expected an error", bad)
		}
	}
}

func TestDirectionBetween(t *testing.T) {
	from := Coord{Row: 2, Col: 2}
	cases := []struct {
		to   Coord
		want Direction
		ok   bool
	}{
		{Coord{Row: 1, Col: 2}, Up, true},
		{Coord{Row: 3, Col: 2}, Down, true},
		{Coord{Row: 2, Col: 1}, Left, true},
		{Coord{Row: 2, Col: 3}, Right, true},
		{Coord{Row: 1, Col: 1}, 0, false}, // diagonal
		{Coord{Row: 0, Col: 2}, 0, false}, // two steps
		{from, 0, false},                  // same cell
	}
	for _, c := range cases {
		got, ok := DirectionBetween(from, c.to)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("DirectionBetween(%v, %v) = %v,%v want %v,%v", from, c.to, got, ok, c.want, c.ok)
		}
	}
}

func TestDirectionSet(t *testing.T) {
	s := NewDirectionSet(Up, Left)
	if !s.Contains(Up) || !s.Contains(Left) {
		t.Error("expected the set to contain up and left")
	}
	if s.Contains(Down) || s.Contains(Right) {
		t.Error("expected the set not to contain down or right")
	}
	if s.Contains(Direction(9)) {
		t.Error("expected an invalid direction to never be contained")
	}
	if got := s.String(); got != "{up,left}" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestParseDirection(t *testing.T) {
	for want, name := range map[Direction]string{Up: "up", Down: " Down ", Left: "LEFT", Right: "right"} {
		got, err := ParseDirection(name)
		if err != nil || got != want {
			t.Errorf("ParseDirection(%q) = %v,%v want %v", name, got, err, want)
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}
