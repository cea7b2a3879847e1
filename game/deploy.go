package game

// deployment lists the standard opening placement of one side, as
// offsets from its corner.
type deployment struct {
	t        UnitType
	row, col int
}

// The defender holds the top-left corner, the attacker the bottom-right.
var (
	defenderDeployment = []deployment{
		{AI, 0, 0},
		{Tech, 1, 0},
		{Tech, 0, 1},
		{Firewall, 2, 0},
		{Firewall, 0, 2},
		{Program, 1, 1},
	}
	attackerDeployment = []deployment{
		{AI, 0, 0},
		{Virus, 1, 0},
		{Virus, 0, 1},
		{Program, 2, 0},
		{Program, 0, 2},
		{Firewall, 1, 1},
	}
)

var (
	defenderSkirmish = []deployment{
		{Tech, 0, 2},
		{Program, 1, 1},
		{Firewall, 1, 3},
	}
	attackerSkirmish = []deployment{
		{Virus, 0, 2},
		{Program, 1, 1},
		{Firewall, 1, 3},
	}
)

// NewStandardBoard builds a board with the standard deployment: six
// defender units in the top-left corner and six attacker units in the
// bottom-right. Below dim 4 the two corner blocks overlap, so the
// standard dimension of 5 is used instead.
func NewStandardBoard(dim int) *Board {
	if dim < 4 {
		dim = 5
	}
	b := NewBoard(dim)
	md := dim - 1
	for _, d := range defenderDeployment {
		b.Place(Defender, d.t, Coord{Row: d.row, Col: d.col})
	}
	for _, d := range attackerDeployment {
		b.Place(Attacker, d.t, Coord{Row: md - d.row, Col: md - d.col})
	}
	return b
}

// NewSkirmishBoard builds a board with three units per side facing each
// other across open ground. The standard opening boxes every movable
// unit behind its own immovable block, which leaves neither side a legal
// action; this layout is the one the interactive and soak modes play on.
func NewSkirmishBoard(dim int) *Board {
	if dim < 4 {
		dim = 5
	}
	b := NewBoard(dim)
	md := dim - 1
	for _, d := range defenderSkirmish {
		b.Place(Defender, d.t, Coord{Row: d.row, Col: d.col})
	}
	for _, d := range attackerSkirmish {
		b.Place(Attacker, d.t, Coord{Row: md - d.row, Col: md - d.col})
	}
	return b
}
