package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four orthogonal steps on the board. Diagonals
// do not exist anywhere in the rules.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directionNames = []string{"up", "down", "left", "right"}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Delta returns the row and column offset of one step in this direction.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		return 0, 0
	}
}

// AllDirections lists the four directions in a stable order.
func AllDirections() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// ParseDirection parses a direction name like "up" or "Left".
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// DirectionSet is a fixed set of directions stored as a bitmask.
type DirectionSet uint8

func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s |= 1 << uint(d)
	}
	return s
}

func (s DirectionSet) Contains(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Directions expands the set back into a slice, in Up/Down/Left/Right order.
func (s DirectionSet) Directions() []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if s.Contains(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

func (s DirectionSet) String() string {
	names := []string{}
	for _, d := range s.Directions() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

const (
	rowLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	colDigits  = "0123456789abcdef"
)

// Coord identifies a board cell by row and column. It is a plain value;
// two coords compare equal iff they name the same cell.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Neighbor returns the cell one step away in the given direction. The
// result may be off the board; callers check bounds against a Board.
func (c Coord) Neighbor(d Direction) Coord {
	dr, dc := d.Delta()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders the coord in board notation, e.g. "A3". Coords outside
// the representable range render with '?' rather than panicking.
func (c Coord) String() string {
	row, col := "?", "?"
	if c.Row >= 0 && c.Row < len(rowLetters) {
		row = string(rowLetters[c.Row])
	}
	if c.Col >= 0 && c.Col < len(colDigits) {
		col = string(colDigits[c.Col])
	}
	return row + col
}

// ParseCoord parses board notation like "A3" or "b2".
func ParseCoord(s string) (Coord, error) {
	t := stripSeparators(s)
	if len(t) != 2 {
		return Coord{}, fmt.Errorf("invalid coordinate %q", s)
	}
	row := strings.IndexByte(rowLetters, upper(t[0]))
	col := strings.IndexByte(colDigits, lower(t[1]))
	if row < 0 || col < 0 {
		return Coord{}, fmt.Errorf("invalid coordinate %q", s)
	}
	return Coord{Row: row, Col: col}, nil
}

// DirectionBetween returns the direction of a single orthogonal step from
// one cell to an adjacent one. It reports false for diagonal, distant or
// identical cells.
func DirectionBetween(from, to Coord) (Direction, bool) {
	dr := to.Row - from.Row
	dc := to.Col - from.Col
	switch {
	case dr == -1 && dc == 0:
		return Up, true
	case dr == 1 && dc == 0:
		return Down, true
	case dr == 0 && dc == -1:
		return Left, true
	case dr == 0 && dc == 1:
		return Right, true
	default:
		return 0, false
	}
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(" ,.:;-_\t", r) {
			return -1
		}
		return r
	}, s)
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
