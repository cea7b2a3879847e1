package engine

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"wargame/game"
)

// StdinSource reads moves like "A3 B3" from an input stream, re-prompting
// on text that does not parse. Legality rejections come back through the
// controller, which asks again.
type StdinSource struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

func NewStdinSource(r io.Reader, prompt io.Writer) *StdinSource {
	return &StdinSource{scanner: bufio.NewScanner(r), prompt: prompt}
}

func (s *StdinSource) NextMove(_ *game.Board, side game.Side, _ int) (game.Move, error) {
	for {
		fmt.Fprintf(s.prompt, "%s, enter your move: ", side)
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return game.Move{}, err
			}
			return game.Move{}, io.EOF
		}
		m, err := game.ParseMove(s.scanner.Text())
		if err != nil {
			fmt.Fprintln(s.prompt, "Invalid coordinates! Try again.")
			continue
		}
		return m, nil
	}
}

// RandomSource proposes a uniformly random legal action for its side. It
// is a soak harness for the legality engine, not an opponent: it never
// looks past the current board.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource seeds the source; seed 0 means seed from the clock.
func NewRandomSource(seed uint64) *RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSource) NextMove(b *game.Board, side game.Side, _ int) (game.Move, error) {
	actions := game.SideActions(b, side)
	if len(actions) == 0 {
		return game.Move{}, ErrNoMoves
	}
	p := actions[s.rng.Intn(len(actions))]
	return game.Move{From: p.Unit.Pos, To: p.Target()}, nil
}

// MoveGetter is the polling half of a broker client.
type MoveGetter interface {
	GetMove(turn int) (game.Move, bool, error)
}

// BrokerSource supplies the remote opponent's moves by polling a move
// relay until the move for the wanted turn shows up.
type BrokerSource struct {
	Client MoveGetter
	Poll   time.Duration
}

func NewBrokerSource(client MoveGetter, poll time.Duration) *BrokerSource {
	return &BrokerSource{Client: client, Poll: poll}
}

func (s *BrokerSource) NextMove(_ *game.Board, side game.Side, turn int) (game.Move, error) {
	log.Info().Msgf("waiting on broker for %s's move (turn %d)", side, turn)
	for {
		m, ok, err := s.Client.GetMove(turn)
		if err != nil {
			log.Warn().Msgf("broker poll: %v", err)
		} else if ok {
			return m, nil
		}
		time.Sleep(s.Poll)
	}
}
