package game

// IsEngaged reports whether a unit is engaged in combat: at least one of
// the four orthogonally adjacent cells holds a unit of the opposing side.
// Diagonal neighbors never count.
//
// Engagement is derived from the board on every call rather than cached
// on the unit; any board mutation would make a cached flag stale. A unit
// that is not on the board cannot be engaged.
func IsEngaged(b *Board, u *Unit) bool {
	if b == nil || u == nil || b.UnitAt(u.Pos) != u {
		return false
	}
	for _, nb := range b.Neighbors(u.Pos) {
		if nb != nil && nb.Side != u.Side {
			return true
		}
	}
	return false
}
