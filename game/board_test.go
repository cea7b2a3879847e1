package game

import (
	"errors"
	"strings"
	"testing"
)

func TestBoardPlaceAndLookup(t *testing.T) {
	b := NewBoard(5)

	u, err := b.Place(Attacker, Virus, Coord{Row: 2, Col: 3})
	if err != nil {
		t.Fatalf("expected placement to succeed, got %v", err)
	}
	if got := b.UnitAt(Coord{Row: 2, Col: 3}); got != u {
		t.Errorf("expected UnitAt to return the placed unit, got %v", got)
	}
	if u.Pos != (Coord{Row: 2, Col: 3}) {
		t.Errorf("expected unit Pos to match its cell, got %v", u.Pos)
	}

	// One unit per cell.
	if _, err := b.Place(Defender, Tech, Coord{Row: 2, Col: 3}); !errors.Is(err, ErrIllegalPlacement) {
		t.Errorf("expected ErrIllegalPlacement for an occupied cell, got %v", err)
	}
	if _, err := b.Place(Defender, Tech, Coord{Row: 9, Col: 0}); !errors.Is(err, ErrIllegalPlacement) {
		t.Errorf("expected ErrIllegalPlacement off the board, got %v", err)
	}
}

func TestBoardMove(t *testing.T) {
	b := NewBoard(5)
	u, _ := b.Place(Attacker, Virus, Coord{Row: 2, Col: 2})
	b.Place(Defender, Program, Coord{Row: 2, Col: 3})

	if err := b.Move(u, Coord{Row: 3, Col: 2}); err != nil {
		t.Fatalf("expected move to empty cell to succeed, got %v", err)
	}
	if b.UnitAt(Coord{Row: 2, Col: 2}) != nil {
		t.Error("expected the source cell to be empty after the move")
	}
	if got := b.UnitAt(Coord{Row: 3, Col: 2}); got != u {
		t.Error("expected the unit in the destination cell")
	}
	if u.Pos != (Coord{Row: 3, Col: 2}) {
		t.Errorf("expected unit Pos to follow the move, got %v", u.Pos)
	}

	if err := b.Move(u, Coord{Row: 2, Col: 3}); !errors.Is(err, ErrIllegalMoveTarget) {
		t.Errorf("expected ErrIllegalMoveTarget for an occupied target, got %v", err)
	}
	if err := b.Move(u, Coord{Row: 5, Col: 2}); !errors.Is(err, ErrIllegalMoveTarget) {
		t.Errorf("expected ErrIllegalMoveTarget off the board, got %v", err)
	}

	ghost := &Unit{Side: Attacker, Type: Tech, Pos: Coord{Row: 0, Col: 0}}
	if err := b.Move(ghost, Coord{Row: 1, Col: 0}); !errors.Is(err, ErrUnitNotOnBoard) {
		t.Errorf("expected ErrUnitNotOnBoard, got %v", err)
	}
}

func TestBoardNeighbors(t *testing.T) {
	b := NewBoard(5)
	up, _ := b.Place(Defender, Firewall, Coord{Row: 1, Col: 2})
	right, _ := b.Place(Attacker, Virus, Coord{Row: 2, Col: 3})
	b.Place(Defender, Tech, Coord{Row: 1, Col: 1}) // diagonal, must not appear

	got := b.Neighbors(Coord{Row: 2, Col: 2})
	if len(got) != 4 {
		t.Fatalf("expected exactly four directions, got %d", len(got))
	}
	if got[Up] != up {
		t.Errorf("expected the Firewall up-adjacent, got %v", got[Up])
	}
	if got[Right] != right {
		t.Errorf("expected the Virus right-adjacent, got %v", got[Right])
	}
	if got[Down] != nil || got[Left] != nil {
		t.Error("expected empty neighbors to be nil")
	}

	// Edge cell: off-board neighbors are nil, still four entries.
	corner := b.Neighbors(Coord{Row: 0, Col: 0})
	if len(corner) != 4 {
		t.Fatalf("expected four entries at the corner, got %d", len(corner))
	}
	if corner[Up] != nil || corner[Left] != nil {
		t.Error("expected off-board neighbors to be nil")
	}
}

func TestBoardRemove(t *testing.T) {
	b := NewBoard(5)
	u, _ := b.Place(Attacker, Program, Coord{Row: 4, Col: 4})

	if got := b.Remove(Coord{Row: 4, Col: 4}); got != u {
		t.Errorf("expected Remove to return the occupant, got %v", got)
	}
	if b.UnitAt(Coord{Row: 4, Col: 4}) != nil {
		t.Error("expected the cell to be empty after Remove")
	}
	if got := b.Remove(Coord{Row: 4, Col: 4}); got != nil {
		t.Errorf("expected Remove on an empty cell to return nil, got %v", got)
	}
}

func TestStandardDeployment(t *testing.T) {
	b := NewStandardBoard(5)

	if got := len(b.Units(Attacker)); got != 6 {
		t.Errorf("expected 6 attacker units, got %d", got)
	}
	if got := len(b.Units(Defender)); got != 6 {
		t.Errorf("expected 6 defender units, got %d", got)
	}

	checks := []struct {
		pos  Coord
		side Side
		ut   UnitType
	}{
		{Coord{Row: 0, Col: 0}, Defender, AI},
		{Coord{Row: 1, Col: 1}, Defender, Program},
		{Coord{Row: 4, Col: 4}, Attacker, AI},
		{Coord{Row: 3, Col: 4}, Attacker, Virus},
		{Coord{Row: 3, Col: 3}, Attacker, Firewall},
	}
	for _, c := range checks {
		u := b.UnitAt(c.pos)
		if u == nil || u.Side != c.side || u.Type != c.ut {
			t.Errorf("expected %s %s at %s, got %v", c.side, c.ut, c.pos, u)
		}
	}

	// Tiny dims fall back to the standard 5.
	if got := NewStandardBoard(2).Dim(); got != 5 {
		t.Errorf("expected fallback dim 5, got %d", got)
	}
}

func TestBoardString(t *testing.T) {
	b := NewStandardBoard(5)
	out := b.String()

	if !strings.Contains(out, "dA") {
		t.Error("expected the defender AI glyph in the rendering")
	}
	if !strings.Contains(out, "aV") {
		t.Error("expected an attacker Virus glyph in the rendering")
	}
	if !strings.Contains(out, "A: ") || !strings.Contains(out, "E: ") {
		t.Error("expected row labels A through E")
	}
}
