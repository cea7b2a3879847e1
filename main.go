package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"wargame/broker"
	"wargame/config"
	"wargame/engine"
	"wargame/game"
)

func main() {
	mode := flag.String("mode", "manual", "play mode: manual|auto|attacker|defender|serve")
	configDir := flag.String("config", ".", "directory holding wargame.cfg.json")
	dim := flag.Int("dim", 0, "board dimension (overrides config)")
	maxTurns := flag.Int("max_turns", 0, "maximum number of turns (overrides config)")
	brokerURL := flag.String("broker", "", "play via a game broker at this URL (overrides config)")
	seed := flag.Uint64("seed", 0, "random source seed, 0 seeds from the clock")
	deploy := flag.String("deploy", "skirmish", "deployment: skirmish|standard")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		log.Fatal().Msgf("config: %v", err)
	}
	if *dim > 0 {
		config.Set("game.dim", *dim)
	}
	if *maxTurns > 0 {
		config.Set("game.maxTurns", *maxTurns)
	}
	if *brokerURL != "" {
		config.Set("broker.url", *brokerURL)
	}

	setupLogging(config.GetString("logLevel"))

	if *mode == "serve" {
		if err := broker.NewServer().Start(config.GetString("broker.listen")); err != nil {
			log.Fatal().Msgf("broker: %v", err)
		}
		return
	}

	board := buildBoard(*deploy, config.GetInt("game.dim"))
	attackerSrc, defenderSrc, publishers := buildSources(*mode, *seed)

	eng := engine.NewLocalEngine(board, attackerSrc, defenderSrc)
	eng.MaxTurns = config.GetInt("game.maxTurns")
	eng.Publishers = publishers

	if config.GetBool("trace.enabled") {
		trace, err := engine.NewTrace(config.GetString("trace.dir"), eng.MaxTurns)
		if err != nil {
			log.Fatal().Msgf("trace: %v", err)
		}
		defer trace.Close()
		trace.Header(board.Dim(), eng.MaxTurns, *mode)
		eng.Trace = trace
		log.Info().Msgf("writing game trace to %s", trace.Path())
	}

	if err := eng.Run(); err != nil {
		log.Fatal().Msgf("engine: %v", err)
	}
}

// buildSources wires one Source per side for the chosen mode. In the
// broker modes the local side also publishes its moves to the relay.
func buildSources(mode string, seed uint64) (attacker, defender engine.Source, publishers map[game.Side]engine.Publisher) {
	publishers = map[game.Side]engine.Publisher{}
	stdin := func() engine.Source { return engine.NewStdinSource(os.Stdin, os.Stdout) }
	remote := func() (*broker.Client, *engine.BrokerSource) {
		client := broker.NewClient(config.GetString("broker.url"))
		poll := time.Duration(config.GetInt("broker.pollMs")) * time.Millisecond
		return client, engine.NewBrokerSource(client, poll)
	}

	switch mode {
	case "auto":
		var second uint64
		if seed != 0 {
			second = seed + 1
		}
		return engine.NewRandomSource(seed), engine.NewRandomSource(second), publishers
	case "attacker":
		// Local player is the attacker, the defender plays remotely.
		client, src := remote()
		publishers[game.Attacker] = client
		return stdin(), src, publishers
	case "defender":
		client, src := remote()
		publishers[game.Defender] = client
		return src, stdin(), publishers
	default:
		return stdin(), stdin(), publishers
	}
}

// buildBoard picks the deployment. The standard corner opening is kept
// for fidelity but has no legal first action (see game.NewSkirmishBoard),
// so skirmish is the default.
func buildBoard(deploy string, dim int) *game.Board {
	if deploy == "standard" {
		return game.NewStandardBoard(dim)
	}
	return game.NewSkirmishBoard(dim)
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl)
}
