package game

import "fmt"

// Move is a proposed move in board notation: from a source cell one step
// to an adjacent cell. It says nothing about legality; the receiving
// loop judges it with Evaluate.
type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// ParseMove parses text like "A3 B3" into a Move.
func ParseMove(s string) (Move, error) {
	t := stripSeparators(s)
	if len(t) != 4 {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	from, err := ParseCoord(t[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	to, err := ParseCoord(t[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return Move{From: from, To: to}, nil
}

// Proposal is one fully specified action request: a unit, what it wants
// to do, and toward where.
type Proposal struct {
	Unit      *Unit
	Action    Action
	Direction Direction
}

func (p Proposal) String() string {
	return fmt.Sprintf("%s %s %s %s", p.Unit.Glyph(), p.Unit.Pos, p.Action, p.Direction)
}

// Target is the cell the proposal acts on.
func (p Proposal) Target() Coord {
	return p.Unit.Pos.Neighbor(p.Direction)
}

// LegalActions enumerates every proposal that Evaluate would rule Legal
// for a single unit. Used for UI highlighting and by the random source.
func LegalActions(b *Board, u *Unit) []Proposal {
	var out []Proposal
	for _, action := range []Action{MoveAction, AttackAction} {
		for _, dir := range AllDirections() {
			if Evaluate(b, u, action, dir) == Legal {
				out = append(out, Proposal{Unit: u, Action: action, Direction: dir})
			}
		}
	}
	return out
}

// SideActions enumerates every legal proposal for all units of a side.
func SideActions(b *Board, side Side) []Proposal {
	var out []Proposal
	for _, u := range b.Units(side) {
		out = append(out, LegalActions(b, u)...)
	}
	return out
}
