package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/teeko/internal/agent"
	"github.com/mitchelldurbincs/teeko/internal/config"
	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/game/events"
	"github.com/mitchelldurbincs/teeko/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/teeko/internal/search"
)

type settings struct {
	games      int
	blackDepth int
	redDepth   int
	openings   int
	maxTurns   int
	pruning    bool
	seed       uint64
	parallel   int
	showBoard  bool
}

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	games := flag.Int("games", -1, "Number of games to play (-1 to use config default)")
	blackDepth := flag.Int("black-depth", -1, "Search depth for Black (-1 to use config default)")
	redDepth := flag.Int("red-depth", -1, "Search depth for Red (-1 to use config default)")
	openings := flag.Int("openings", -1, "Random drops at the start of each game (-1 to use config default)")
	seed := flag.Uint64("seed", 0, "Seed for random openings (0 to use config or time)")
	parallel := flag.Int("parallel", 1, "Games to run at once")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	s := settings{
		games:      pick(*games, cfg.SelfPlay.Games),
		blackDepth: pick(*blackDepth, cfg.Search.Depth),
		redDepth:   pick(*redDepth, cfg.Search.Depth),
		openings:   pick(*openings, cfg.Match.RandomOpenings),
		maxTurns:   cfg.Match.MaxTurns,
		pruning:    cfg.Search.Pruning,
		seed:       *seed,
		parallel:   max(1, *parallel),
		showBoard:  cfg.SelfPlay.ShowBoard,
	}
	if s.seed == 0 {
		s.seed = cfg.SelfPlay.Seed
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	setupLogging(*logLevel, cfg.Logging.Format)

	log.Info().
		Int("games", s.games).
		Int("black_depth", s.blackDepth).
		Int("red_depth", s.redDepth).
		Int("random_openings", s.openings).
		Uint64("seed", s.seed).
		Int("parallel", s.parallel).
		Msg("Starting self-play")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tally, err := run(ctx, s)
	if err != nil {
		log.Fatal().Err(err).Msg("Self-play failed")
	}

	fmt.Printf("\nResults after %d games: black %d, red %d, draws %d\n",
		tally.total(), tally.wins[core.Black], tally.wins[core.Red], tally.draws)
	for _, shape := range tally.shapeOrder() {
		fmt.Printf("  %-8s %d\n", shape, tally.shapes[shape])
	}
}

func pick(flagValue, configValue int) int {
	if flagValue == -1 {
		return configValue
	}
	return flagValue
}

// tally aggregates outcomes across games.
type tally struct {
	mu     sync.Mutex
	wins   map[core.Player]int
	shapes map[string]int
	draws  int
}

func newTally() *tally {
	return &tally{wins: map[core.Player]int{}, shapes: map[string]int{}}
}

func (t *tally) add(out game.Outcome) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if out.Reason != game.ReasonWin {
		t.draws++
		return
	}
	t.wins[out.Winner]++
	t.shapes[out.Shape.String()]++
}

func (t *tally) total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wins[core.Black] + t.wins[core.Red] + t.draws
}

func (t *tally) shapeOrder() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []string
	for _, name := range []string{"row", "column", "diagonal", "square"} {
		if t.shapes[name] > 0 {
			out = append(out, name)
		}
	}
	return out
}

func run(ctx context.Context, s settings) (*tally, error) {
	t := newTally()

	bus := events.NewEventBus()
	logSub := subscribers.NewLoggerSubscriber("selfplay_logger", log.Logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameEnded})
	bus.Subscribe(logSub)
	log.Debug().Int("subscribers", bus.SubscriberCount()).Msg("Event bus ready")

	var printMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallel)
	for i := 0; i < s.games; i++ {
		i := i
		g.Go(func() error {
			out, err := playOne(ctx, s, i, bus)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			t.add(out)

			printMu.Lock()
			defer printMu.Unlock()
			fmt.Printf("Game %d: %s", i+1, describe(out))
			if s.showBoard {
				fmt.Print(game.Render(out.Final.Board))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return t, err
	}
	return t, nil
}

func playOne(ctx context.Context, s settings, i int, bus events.Publisher) (game.Outcome, error) {
	logger := log.Logger.With().Int("game", i+1).Logger()

	black, err := agent.NewAI(s.blackDepth, logger, search.WithPruning(s.pruning))
	if err != nil {
		return game.Outcome{}, err
	}
	red, err := agent.NewAI(s.redDepth, logger, search.WithPruning(s.pruning))
	if err != nil {
		return game.Outcome{}, err
	}

	var blackSeat, redSeat game.Agent = black, red
	if s.openings > 0 {
		rnd := agent.NewRandom(s.seed + uint64(i))
		blackSeat = &agent.Opening{Random: rnd, Plies: s.openings, Next: black}
		redSeat = &agent.Opening{Random: rnd, Plies: s.openings, Next: red}
	}

	m, err := game.NewMatch(blackSeat, redSeat,
		game.WithEventBus(bus),
		game.WithLogger(logger),
		game.WithMaxTurns(s.maxTurns),
	)
	if err != nil {
		return game.Outcome{}, err
	}
	return m.Run(ctx)
}

func describe(out game.Outcome) string {
	if out.Reason == game.ReasonWin {
		return fmt.Sprintf("%s wins with a %s after %d plies\n", out.Winner, out.Shape, out.Turns)
	}
	return fmt.Sprintf("draw (%s) after %d plies\n", out.Reason, out.Turns)
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
