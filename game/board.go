package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIllegalMoveTarget = errors.New("illegal move target")
	ErrIllegalPlacement  = errors.New("illegal placement")
	ErrUnitNotOnBoard    = errors.New("unit not on board")
)

// Board tracks unit placement on a square grid. Every cell holds zero or
// one unit. The board owns the occupancy mapping; units are referenced by
// it, never copied, so a unit's Pos and its cell always agree.
type Board struct {
	dim    int
	cells  [][]*Unit
	nextID int
}

// NewBoard creates an empty dim x dim board. Dimensions below 1 fall back
// to 1 so the board stays queryable even under bad input.
func NewBoard(dim int) *Board {
	if dim < 1 {
		dim = 1
	}
	cells := make([][]*Unit, dim)
	for r := range cells {
		cells[r] = make([]*Unit, dim)
	}
	return &Board{dim: dim, cells: cells, nextID: 1}
}

func (b *Board) Dim() int {
	return b.dim
}

// InBounds reports whether the coord names a cell on this board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.dim && c.Col >= 0 && c.Col < b.dim
}

// UnitAt returns the occupant of a cell, or nil if the cell is empty or
// off the board.
func (b *Board) UnitAt(c Coord) *Unit {
	if !b.InBounds(c) {
		return nil
	}
	return b.cells[c.Row][c.Col]
}

// Neighbors returns the occupant of each of the four orthogonally
// adjacent cells. Off-board and empty neighbors map to nil. Diagonal
// cells are never part of the result; diagonal adjacency counts for
// nothing in the rules.
func (b *Board) Neighbors(c Coord) map[Direction]*Unit {
	out := make(map[Direction]*Unit, 4)
	for _, d := range AllDirections() {
		out[d] = b.UnitAt(c.Neighbor(d))
	}
	return out
}

// Place puts a new unit on an empty in-bounds cell and returns it.
func (b *Board) Place(side Side, t UnitType, c Coord) (*Unit, error) {
	if !side.Valid() || !t.Valid() {
		return nil, fmt.Errorf("%w: invalid side or unit type", ErrIllegalPlacement)
	}
	if !b.InBounds(c) {
		return nil, fmt.Errorf("%w: %s is off the board", ErrIllegalPlacement, c)
	}
	if b.cells[c.Row][c.Col] != nil {
		return nil, fmt.Errorf("%w: %s is occupied", ErrIllegalPlacement, c)
	}
	u := &Unit{ID: b.nextID, Side: side, Type: t, Pos: c}
	b.nextID++
	b.cells[c.Row][c.Col] = u
	return u, nil
}

// Remove takes the occupant off a cell and returns it, or nil if the
// cell was empty. Removal itself is driven by the game loop (captures
// are outside the legality core).
func (b *Board) Remove(c Coord) *Unit {
	u := b.UnitAt(c)
	if u != nil {
		b.cells[c.Row][c.Col] = nil
	}
	return u
}

// Move relocates a unit to an empty in-bounds cell.
// Whether the step is legal under the movement rules is the legality
// engine's call; Move only guards the occupancy invariant. Callers are
// expected to Move only after a Legal verdict.
func (b *Board) Move(u *Unit, to Coord) error {
	if u == nil || b.UnitAt(u.Pos) != u {
		return ErrUnitNotOnBoard
	}
	if !b.InBounds(to) {
		return fmt.Errorf("%w: %s is off the board", ErrIllegalMoveTarget, to)
	}
	if b.cells[to.Row][to.Col] != nil {
		return fmt.Errorf("%w: %s is occupied", ErrIllegalMoveTarget, to)
	}
	b.cells[u.Pos.Row][u.Pos.Col] = nil
	b.cells[to.Row][to.Col] = u
	u.Pos = to
	return nil
}

// Units returns all units of a side in row-major order.
func (b *Board) Units(side Side) []*Unit {
	var units []*Unit
	for r := 0; r < b.dim; r++ {
		for c := 0; c < b.dim; c++ {
			if u := b.cells[r][c]; u != nil && u.Side == side {
				units = append(units, u)
			}
		}
	}
	return units
}

// String renders the board as text, column digits across the top and row
// letters down the side, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.dim; c++ {
		fmt.Fprintf(&sb, "%-3s", Coord{Row: 0, Col: c}.String()[1:])
	}
	sb.WriteString("\n")
	for r := 0; r < b.dim; r++ {
		fmt.Fprintf(&sb, "%s: ", Coord{Row: r, Col: 0}.String()[:1])
		for c := 0; c < b.dim; c++ {
			u := b.cells[r][c]
			if u == nil {
				sb.WriteString(".  ")
			} else {
				fmt.Fprintf(&sb, "%-3s", u.Glyph())
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
