package game

import "fmt"

// Action is the kind of act a unit can attempt toward a direction.
type Action int

const (
	MoveAction Action = iota
	AttackAction
)

func (a Action) Valid() bool {
	return a == MoveAction || a == AttackAction
}

func (a Action) String() string {
	switch a {
	case MoveAction:
		return "move"
	case AttackAction:
		return "attack"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Reason is the verdict of a legality check: Legal, or one specific
// explanation of why the action is not permitted. Callers get a reason
// code rather than a bare boolean so the turn loop can tell the player
// what was wrong.
type Reason int

const (
	Legal Reason = iota
	CannotMoveWhileEngaged
	DirectionNotAllowedForMove
	DirectionNotAllowedForAttack
	OutOfBounds
	TargetOccupied
	NoTargetToAttack
	InvalidInput
)

var reasonNames = []string{
	"legal",
	"cannot move while engaged",
	"direction not allowed for move",
	"direction not allowed for attack",
	"out of bounds",
	"target occupied",
	"no target to attack",
	"invalid input",
}

func (r Reason) IsLegal() bool {
	return r == Legal
}

func (r Reason) String() string {
	if r < Legal || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// Evaluate is the single decision point for whether a unit may perform
// an action toward a direction from its current cell. It is a pure
// function of the board state at call time and never mutates anything;
// the game loop applies the move itself only after a Legal verdict.
//
// Gates run in a fixed order and the first failing one names the reason:
//
//  1. input: the unit must be a known type and actually sit on the board,
//     and the action and direction must be valid variants;
//  2. capability: AI, Firewall and Program can never move. The rulebook
//     phrases this as "cannot move while engaged in combat", but
//     movability is a static trait of the type, so the gate holds whether
//     or not the unit is currently engaged (see DESIGN.md). The verdict
//     keeps the rulebook's name.
//  3. direction: attacks must go toward an attack direction of the type,
//     moves toward a defense direction (the defending table is the
//     movement table);
//  4. target: the destination cell must be on the board, and empty for a
//     move, or held by an enemy for an attack.
func Evaluate(b *Board, u *Unit, action Action, dir Direction) Reason {
	if b == nil || u == nil || !u.Type.Valid() || !action.Valid() || !dir.Valid() {
		return InvalidInput
	}
	if b.UnitAt(u.Pos) != u {
		return InvalidInput
	}

	caps := CapabilitiesOf(u.Type)
	if action == MoveAction && !caps.Movable {
		return CannotMoveWhileEngaged
	}

	switch action {
	case AttackAction:
		if !caps.AttackDirections.Contains(dir) {
			return DirectionNotAllowedForAttack
		}
	case MoveAction:
		if !caps.DefenseDirections.Contains(dir) {
			return DirectionNotAllowedForMove
		}
	}

	target := u.Pos.Neighbor(dir)
	if !b.InBounds(target) {
		return OutOfBounds
	}
	occupant := b.UnitAt(target)
	switch action {
	case MoveAction:
		if occupant != nil {
			return TargetOccupied
		}
	case AttackAction:
		if occupant == nil || occupant.Side == u.Side {
			return NoTargetToAttack
		}
	}
	return Legal
}
