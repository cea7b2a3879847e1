package engine

import (
	"errors"

	"wargame/game"
)

// ErrNoMoves is returned by a Source when its side has no legal action
// left. The controller treats it as the end of the game.
var ErrNoMoves = errors.New("no legal moves")

// Source supplies proposed moves for one side. turn is the 1-based
// number of the turn being played, so remote sources can match relayed
// moves to the turn they belong to.
type Source interface {
	NextMove(b *game.Board, side game.Side, turn int) (game.Move, error)
}

// Publisher receives every move the controller applies for a side,
// typically to relay it to a remote opponent.
type Publisher interface {
	PostMove(m game.Move, turn int) error
}
