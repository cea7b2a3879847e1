package game

import "fmt"

// Side is one of the two opposing ownership groups.
type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) Valid() bool {
	return s == Attacker || s == Defender
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == Attacker {
		return Defender
	}
	return Attacker
}

func (s Side) String() string {
	switch s {
	case Attacker:
		return "Attacker"
	case Defender:
		return "Defender"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// UnitType enumerates the five unit types. It is only a key into the
// capability table; capabilities never vary per instance.
type UnitType int

const (
	AI UnitType = iota
	Tech
	Virus
	Program
	Firewall
)

var unitTypeNames = []string{"AI", "Tech", "Virus", "Program", "Firewall"}

func (t UnitType) Valid() bool {
	return t >= AI && t <= Firewall
}

func (t UnitType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
	return unitTypeNames[t]
}

// Capabilities are the fixed per-type facts the legality rules consult:
// whether the type can move at all, the directions it may attack toward,
// and the directions it may move toward (the "defending" table of the
// rulebook governs movement).
type Capabilities struct {
	Movable           bool
	AttackDirections  DirectionSet
	DefenseDirections DirectionSet
}

// capabilityTable has exactly one entry per unit type and is never
// modified at runtime.
var capabilityTable = [...]Capabilities{
	AI:       {Movable: false, AttackDirections: NewDirectionSet(Up, Left), DefenseDirections: NewDirectionSet(Down, Right)},
	Firewall: {Movable: false, AttackDirections: NewDirectionSet(Up, Left), DefenseDirections: NewDirectionSet(Down, Right)},
	Program:  {Movable: false, AttackDirections: NewDirectionSet(Up, Left), DefenseDirections: NewDirectionSet(Down, Right)},
	Virus:    {Movable: true, AttackDirections: NewDirectionSet(Up, Down, Left, Right), DefenseDirections: NewDirectionSet(Up, Down, Left, Right)},
	Tech:     {Movable: true, AttackDirections: NewDirectionSet(Up, Down, Left, Right), DefenseDirections: NewDirectionSet(Up, Down, Left, Right)},
}

// CapabilitiesOf looks up the capability record for a unit type. It is
// total over the five types; an invalid type yields the zero record
// (immovable, no directions) so callers stay queryable under bad input.
func CapabilitiesOf(t UnitType) Capabilities {
	if !t.Valid() {
		return Capabilities{}
	}
	return capabilityTable[t]
}

// Unit is a piece on the board. Its Pos is kept in sync by the Board on
// every legal move; everything else is fixed at placement time.
type Unit struct {
	ID   int
	Side Side
	Type UnitType
	Pos  Coord
}

// Glyph is the two character board representation of the unit, e.g. "aV"
// for an attacker Virus.
func (u *Unit) Glyph() string {
	side := "a"
	if u.Side == Defender {
		side = "d"
	}
	return side + u.Type.String()[:1]
}
