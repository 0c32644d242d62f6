package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/teeko/internal/agent"
	"github.com/mitchelldurbincs/teeko/internal/config"
	"github.com/mitchelldurbincs/teeko/internal/game"
	"github.com/mitchelldurbincs/teeko/internal/game/core"
	"github.com/mitchelldurbincs/teeko/internal/game/events"
	"github.com/mitchelldurbincs/teeko/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/teeko/internal/game/rules"
	"github.com/mitchelldurbincs/teeko/internal/search"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	depth := flag.Int("depth", -1, "AI search depth in plies (-1 to use config default)")
	seat := flag.String("ai-seat", "", "Seat for the AI: black, red or random (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	noPrune := flag.Bool("no-prune", false, "Disable alpha-beta pruning")
	color := flag.Bool("color", false, "Render the board with ANSI colors")
	showRules := flag.Bool("rules", false, "Print the rules before playing")
	watch := flag.Bool("watch", false, "Reload search depth when the config file changes")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *depth == -1 {
		*depth = cfg.Search.Depth
	}
	if *seat == "" {
		*seat = cfg.Match.AISeat
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}
	pruning := cfg.Search.Pruning && !*noPrune

	setupLogging(*logLevel, cfg.Logging.Format)

	aiSeat, err := pickSeat(*seat, rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid AI seat")
	}

	ai, err := agent.NewAI(*depth, log.Logger, search.WithPruning(pruning))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AI")
	}
	human := agent.NewHuman("human", os.Stdin, os.Stdout)

	if *watch {
		config.WatchConfig(func(c *config.Config, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid config change")
				return
			}
			if err := ai.SetDepth(c.Search.Depth); err != nil {
				log.Warn().Err(err).Msg("Ignoring invalid search depth")
			}
		})
		log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config for changes")
	}

	black, red := game.Agent(human), game.Agent(ai)
	if aiSeat == core.Black {
		black, red = ai, human
	}

	con := &console{out: os.Stdout, aiSeat: aiSeat, ai: ai, color: *color || cfg.Display.Color}

	bus := events.NewEventBus()
	logSub := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	bus.Subscribe(logSub)
	bus.SubscribeFunc(events.TypeGameStarted, con.onStarted)
	bus.SubscribeFunc(events.TypeMovePlayed, con.onMove)
	log.Debug().
		Int("subscribers", bus.SubscriberCount()).
		Int("move_handlers", bus.HandlerCount(events.TypeMovePlayed)).
		Msg("Event bus ready")

	match, err := game.NewMatch(black, red,
		game.WithEventBus(bus),
		game.WithLogger(log.Logger),
		game.WithMaxTurns(cfg.Match.MaxTurns),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create match")
	}

	con.welcome(*showRules || cfg.Display.ShowRules)

	// Stop on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := match.Run(ctx)
	if err != nil {
		switch {
		case errors.Is(err, agent.ErrQuit), errors.Is(err, agent.ErrInputClosed):
			fmt.Fprintln(con.out, "\nYou resigned. Game over.")
			return
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(con.out, "\nInterrupted.")
			return
		}
		log.Fatal().Err(err).Msg("Match failed")
	}

	con.printBoard(out.Final.Board)
	switch {
	case out.Reason == game.ReasonWin && out.Winner == aiSeat:
		fmt.Fprintf(con.out, "\nAI wins with a %s! Game over.\n", out.Shape)
	case out.Reason == game.ReasonWin:
		fmt.Fprintf(con.out, "\nCongratulations, you win with a %s! Game over.\n", out.Shape)
	default:
		fmt.Fprintf(con.out, "\nIt's a draw (%s)! Game over.\n", out.Reason)
	}
}

// pickSeat resolves the configured seat; "random" flips a coin.
func pickSeat(seat string, rng *rand.Rand) (core.Player, error) {
	seat = strings.ToLower(seat)
	if seat == config.SeatRandom {
		return core.Players[rng.Intn(len(core.Players))], nil
	}
	return core.ParsePlayer(seat)
}

// console prints the game for the human player.
type console struct {
	out    io.Writer
	aiSeat core.Player
	ai     *agent.AI
	color  bool
}

func (c *console) printBoard(b core.Board) {
	if c.color {
		fmt.Fprint(c.out, game.RenderColored(b))
		return
	}
	fmt.Fprint(c.out, game.Render(b))
}

func (c *console) welcome(showRules bool) {
	if showRules {
		// RulesText opens with its own greeting
		fmt.Fprint(c.out, game.RulesText)
	} else {
		fmt.Fprintln(c.out, "Welcome to Teeko!")
		fmt.Fprintln(c.out, "Type 'help' at any prompt for the rules, 'quit' to resign.")
	}
	fmt.Fprintf(c.out, "\nYou are playing as '%s'. The AI is '%s'.\n", c.aiSeat.Opponent().Symbol(), c.aiSeat.Symbol())
}

func (c *console) announceTurn(next core.Player) {
	if next == c.aiSeat {
		fmt.Fprintf(c.out, "\nAI's turn (%s)...\n", next.Symbol())
		return
	}
	fmt.Fprintf(c.out, "\nYour turn (%s).\n", next.Symbol())
}

func (c *console) onStarted(e events.Event) {
	started, ok := e.(*events.GameStartedEvent)
	if !ok {
		return
	}
	c.printBoard(started.Board)
	c.announceTurn(started.Turn)
}

func (c *console) onMove(e events.Event) {
	played, ok := e.(*events.MovePlayedEvent)
	if !ok {
		return
	}
	if played.Player == c.aiSeat {
		if played.Move.Kind == core.MoveDrop {
			fmt.Fprintf(c.out, "AI placed a marker at %s\n", played.Move.To)
		} else {
			fmt.Fprintf(c.out, "AI moved from %s to %s\n", played.Move.From, played.Move.To)
		}
		if res, ok := c.ai.LastResult(); ok {
			fmt.Fprintf(c.out, "(Thinking time: %.2fs, %d positions)\n", played.Elapsed.Seconds(), res.Nodes)
		}
	}
	if _, over := rules.Winner(played.Board); over {
		return
	}
	c.printBoard(played.Board)
	c.announceTurn(played.Player.Opponent())
}

func setupLogging(level, format string) {
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	// Logs go to stderr so they do not interleave with the board on stdout
	if strings.EqualFold(format, "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}
}
