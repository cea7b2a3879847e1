package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"wargame/game"
	"wargame/meta"
)

// A source gets this many tries per turn before the controller gives up.
// Interactive sources re-prompt internally, so hitting the cap means a
// programmatic source keeps proposing illegal moves.
const maxProposalRetries = 25

// LocalEngine is the turn controller: it alternates sides, pulls
// proposed moves from each side's Source, judges them with the legality
// engine, and applies the legal ones. It owns the only mutation path of
// the board; the legality core itself never mutates anything.
type LocalEngine struct {
	Board      *game.Board
	Sources    map[game.Side]Source
	Publishers map[game.Side]Publisher
	MaxTurns   int
	Trace      *Trace

	TurnsPlayed int
	CurrentSide game.Side
}

func NewLocalEngine(b *game.Board, attacker, defender Source) *LocalEngine {
	return &LocalEngine{
		Board: b,
		Sources: map[game.Side]Source{
			game.Attacker: attacker,
			game.Defender: defender,
		},
		Publishers:  map[game.Side]Publisher{},
		MaxTurns:    meta.MAX_TURNS,
		CurrentSide: game.Attacker,
	}
}

// Outcome is what a legal proposal did to the board.
type Outcome struct {
	Proposal game.Proposal
	Moved    bool // board mutated (Move); false for a recorded Attack
}

// resolve turns a proposed move into a concrete proposal for the side and
// judges it. The action kind is derived the way players state it on the
// board: stepping onto an empty or friendly cell proposes a move,
// stepping onto an enemy proposes an attack.
func (e *LocalEngine) resolve(side game.Side, m game.Move) (game.Proposal, game.Reason) {
	unit := e.Board.UnitAt(m.From)
	if unit == nil || unit.Side != side {
		return game.Proposal{}, game.InvalidInput
	}
	dir, ok := game.DirectionBetween(m.From, m.To)
	if !ok {
		return game.Proposal{}, game.InvalidInput
	}
	action := game.MoveAction
	if target := e.Board.UnitAt(m.To); target != nil && target.Side != side {
		action = game.AttackAction
	}
	p := game.Proposal{Unit: unit, Action: action, Direction: dir}
	return p, game.Evaluate(e.Board, unit, action, dir)
}

// Play judges one proposed move for a side and applies it if legal. A
// non-Legal reason is not an error; the caller decides whether to retry.
func (e *LocalEngine) Play(side game.Side, m game.Move) (Outcome, game.Reason, error) {
	p, reason := e.resolve(side, m)
	if !reason.IsLegal() {
		return Outcome{}, reason, nil
	}
	switch p.Action {
	case game.MoveAction:
		if err := e.Board.Move(p.Unit, p.Target()); err != nil {
			return Outcome{}, reason, fmt.Errorf("applying legal move: %w", err)
		}
		return Outcome{Proposal: p, Moved: true}, reason, nil
	default:
		// A legal attack is recorded, not resolved; damage is outside
		// this module.
		return Outcome{Proposal: p}, reason, nil
	}
}

// Run drives the game loop until the turn limit is reached or a side has
// no legal action left.
func (e *LocalEngine) Run() error {
	e.Trace.Printf("GAME START\n%s", e.Board)

	for e.TurnsPlayed < e.MaxTurns {
		if err := e.playTurn(); err != nil {
			if errors.Is(err, ErrNoMoves) {
				log.Info().Msgf("%s has no legal moves, stopping after %d turns", e.CurrentSide, e.TurnsPlayed)
				e.Trace.Printf("%s has no legal moves\nGAME OVER", e.CurrentSide)
				return nil
			}
			return err
		}
	}
	log.Info().Msgf("turn limit of %d reached", e.MaxTurns)
	e.Trace.Printf("turn limit of %d reached\nGAME OVER", e.MaxTurns)
	return nil
}

func (e *LocalEngine) playTurn() error {
	side := e.CurrentSide
	turn := e.TurnsPlayed + 1
	src := e.Sources[side]

	for attempt := 0; attempt < maxProposalRetries; attempt++ {
		m, err := src.NextMove(e.Board, side, turn)
		if err != nil {
			return err
		}

		outcome, reason, err := e.Play(side, m)
		if err != nil {
			return err
		}
		if !reason.IsLegal() {
			log.Info().Msgf("%s: %s rejected: %s", side, m, reason)
			e.Trace.Printf("%s: %s rejected: %s", side, m, reason)
			continue
		}

		e.recordOutcome(side, turn, m, outcome)
		if pub := e.Publishers[side]; pub != nil {
			if err := pub.PostMove(m, turn); err != nil {
				log.Warn().Msgf("publishing move for turn %d: %v", turn, err)
			}
		}

		e.TurnsPlayed++
		e.CurrentSide = side.Other()
		return nil
	}
	return fmt.Errorf("side %s exceeded %d illegal proposals", side, maxProposalRetries)
}

func (e *LocalEngine) recordOutcome(side game.Side, turn int, m game.Move, o Outcome) {
	verb := "attacks toward"
	if o.Moved {
		verb = "moved to"
	}
	log.Info().Msgf("turn %d %s: %s %s %s %s", turn, side, o.Proposal.Unit.Glyph(), m.From, verb, m.To)
	e.Trace.Printf("turn %d %s: %s %s %s %s\n%s", turn, side, o.Proposal.Unit.Glyph(), m.From, verb, m.To, e.Board)

	// Surface engagement for the next side, the way a UI would highlight
	// its threatened units.
	for _, u := range e.Board.Units(side.Other()) {
		if game.IsEngaged(e.Board, u) {
			log.Debug().Msgf("%s %s is engaged", u.Glyph(), u.Pos)
		}
	}
}
