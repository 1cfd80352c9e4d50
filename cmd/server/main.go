package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/scoredash/internal/api"
	"github.com/kiliankoe/scoredash/internal/config"
	"github.com/kiliankoe/scoredash/internal/display"
	"github.com/kiliankoe/scoredash/internal/game"
	"github.com/kiliankoe/scoredash/internal/ws"
	staticserver "github.com/kiliankoe/scoredash/static"
	"github.com/rs/zerolog"
	zerologlog "github.com/rs/zerolog/log"
)

const version = "v1.0.0-dev"

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		portFlag    = flag.String("port", "", "Port to listen on (overrides PORT env var)")
		seedFlag    = flag.Int64("seed", 0, "Random seed (overrides SIM_SEED env var)")
		headless    = flag.Bool("headless", false, "Run one game in the terminal and exit")
	)
	flag.BoolVar(showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showHelp {
		fmt.Printf(`scoredash - live score simulation

Usage: %s [options]

Options:
  -h, --help      Show this help message
  -v, --version   Show version information
  --port PORT     Port to listen on (default: 8080 or PORT env var)
  --seed N        Random seed for reproducible games (default: SIM_SEED or random)
  --headless      Run a single game in the terminal, print the results and exit

Environment Variables (also read from ./.env):
  PORT             Port to listen on (default: 8080)
  LOG_LEVEL        zerolog level: debug, info, warn, error (default: info)
  SIM_SEED         Random seed; 0 picks a fresh seed per session (default: 0)
  GM_USER          GM username for basic auth on control routes
  GM_PASS          GM password for basic auth on control routes
  SINGLE_SESSION   Keep only the newest session (default: true)

Examples:
  %s                  Start server with default settings
  %s --headless       Watch one game in the terminal
`, os.Args[0], os.Args[0], os.Args[0])
		return
	}

	if *showVersion {
		fmt.Printf("scoredash %s\n", version)
		return
	}

	// zerolog setup (human-friendly console)
	zerolog.TimeFieldFormat = time.RFC3339
	cw := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	zerologlog.Logger = zerologlog.Output(cw)

	cfg, err := config.FromEnv()
	if err != nil {
		zerologlog.Fatal().Err(err).Msg("config")
	}
	if *portFlag != "" {
		cfg.Port = *portFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		zerologlog.Fatal().Err(err).Str("level", cfg.LogLevel).Msg("invalid LOG_LEVEL")
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		if err := runHeadless(ctx, cfg); err != nil {
			zerologlog.Fatal().Err(err).Msg("headless run")
		}
		return
	}

	if err := serve(ctx, cfg); err != nil {
		zerologlog.Fatal().Err(err).Msg("server")
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(api.RequestLogger())

	rm := game.NewRoomManager()
	rm.SetSeed(cfg.Seed)
	rm.SetSingleSession(cfg.SingleSession)

	sock := ws.New(rm)
	hub := ws.NewHub()
	rm.SetDisplayFactory(func(code string) game.Display {
		return display.Multi{sock.Display(code), hub.Display(code)}
	})
	io := sock.Mount(r)
	defer io.Close()
	go hub.Run(ctx)
	r.GET("/ws", hub.Handle)

	api.Register(r, rm, cfg)

	// The page loads the active session; start with one ready to go.
	code, hostToken, err := rm.CreateSession()
	if err != nil {
		return err
	}
	ev := zerologlog.Info().Str("code", code)
	if !cfg.GMEnabled() {
		// Without GM routes the host token is the only way to control it.
		ev = ev.Str("hostToken", hostToken)
	}
	ev.Msg("session ready")

	r.NoRoute(func(c *gin.Context) {
		staticserver.Handler().ServeHTTP(c.Writer, c.Request)
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errc := make(chan error, 1)
	go func() {
		zerologlog.Info().Str("port", cfg.Port).Msg("listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// runHeadless plays one game against a console display and prints the report.
func runHeadless(ctx context.Context, cfg config.Config) error {
	done := make(chan game.Summary, 1)
	console := display.NewConsole(zerologlog.Logger)
	eng := game.NewEngine(game.DefaultPlayers(), game.Deps{
		Random:  game.NewRand(cfg.Seed),
		Display: display.Multi{console, finishNotifier{done: done}},
	})
	eng.Start()

	select {
	case s := <-done:
		return display.WriteReport(os.Stdout, s)
	case <-ctx.Done():
		eng.Reset()
		return ctx.Err()
	}
}

// finishNotifier hands the summary to a channel once the game ends.
type finishNotifier struct {
	game.NopDisplay
	done chan<- game.Summary
}

func (f finishNotifier) OnGameFinished(s game.Summary) {
	select {
	case f.done <- s:
	default:
	}
}
