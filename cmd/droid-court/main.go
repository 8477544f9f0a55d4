package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/droid-court/audio"
	"github.com/lixenwraith/droid-court/config"
	"github.com/lixenwraith/droid-court/engine"
	"github.com/lixenwraith/droid-court/input"
	"github.com/lixenwraith/droid-court/logging"
	"github.com/lixenwraith/droid-court/render"
	"github.com/lixenwraith/droid-court/scoreboard"
	"github.com/lixenwraith/droid-court/telemetry"
)

const appName = "droid-court"

var (
	configDir  = flag.String("config", "", "directory containing droid-court.toml (default: current directory)")
	showScores = flag.Bool("scores", false, "print the top scores and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	start := time.Now()

	cfg, err := config.Load(*configDir)
	if err != nil {
		return err
	}

	log, logCloser, err := logging.Open(logging.Config{
		Level:  cfg.Log.Level,
		Dir:    cfg.Log.Dir,
		Pretty: cfg.Log.Pretty,
	}, appName, start)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	log.Info().Str("config", cfg.File).Msg("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store *scoreboard.Store
	if cfg.Scoreboard.Enabled {
		if store, err = scoreboard.Open(cfg.Scoreboard.Path, logging.Component(log, "scoreboard")); err != nil {
			return err
		}
		defer store.Close()
	}

	if *showScores {
		return printScores(ctx, os.Stdout, store, cfg.Scoreboard.Top)
	}

	metrics, shutdownTelemetry, err := setupTelemetry(cfg.Telemetry, log)
	if err != nil {
		return err
	}
	defer shutdownTelemetry()

	keys, err := input.LoadKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(audioConfig(cfg), logging.Component(log, "audio"))
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	engine.RegisterCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			engine.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	opts := engine.Options{
		Logger:  log,
		Cues:    sound,
		Metrics: metrics,
	}
	if store != nil {
		opts.Recorder = store
	}
	session := engine.NewSession(sessionSettings(cfg), opts)
	defer session.Close()

	scheduler := engine.NewScheduler(session, cfg.Engine.FrameInterval, cfg.Spawn.Interval, log)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	orchestrator := render.NewOrchestrator(screen)
	orchestrator.Register(render.NewCourtRenderer(), render.PriorityCourt)
	orchestrator.Register(render.NewHUDRenderer(), render.PriorityUI)

	events := make(chan tcell.Event, 64)
	engine.Go(func() { pollEvents(screen, events) })

	help := helpLine(keys)
	best := bestScore(ctx, store, log)
	log.Info().Int("best", best).Msg("Game started")

	// Runs are recorded before the ended snapshot is published, so the best score is refreshed on that edge
	ended := false
	draw := func() {
		snap := session.Snapshot()
		if e := snap.State.Ended(); e != ended {
			ended = e
			if e {
				best = bestScore(ctx, store, log)
			}
		}
		w, h := orchestrator.Bounds()
		orchestrator.RenderFrame(render.NewRenderContext(snap, best, help, w, h))
	}
	draw()

	for {
		select {
		case <-session.Done():
			log.Info().Dur("uptime", time.Since(start)).Msg("Quit")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := keys.Lookup(ev); ok {
					session.Push(a)
				}
			case *tcell.EventResize:
				orchestrator.Resize()
				draw()
			}

		case <-scheduler.Updates():
			draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		out <- ev
	}
}

// setupTelemetry opens the metrics file and provider; the returned func flushes and closes both
func setupTelemetry(cfg config.TelemetryConfig, log zerolog.Logger) (*telemetry.Metrics, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create metrics directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open metrics file: %w", err)
	}

	provider, err := telemetry.New(telemetry.Config{
		Enabled:     true,
		ServiceName: appName,
		Interval:    cfg.Interval,
		Writer:      f,
	})
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	metrics, err := telemetry.NewMetrics(provider.Meter(telemetry.InstrumentationName))
	if err != nil {
		provider.Shutdown(context.Background())
		f.Close()
		return nil, nil, err
	}
	log.Info().Str("path", cfg.Path).Dur("interval", cfg.Interval).Msg("Telemetry enabled")

	return metrics, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
		f.Close()
	}, nil
}

func bestScore(ctx context.Context, store *scoreboard.Store, log zerolog.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.Best(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to read best score")
	}
	return best
}

// printScores writes the top n runs as a table
func printScores(ctx context.Context, w io.Writer, store *scoreboard.Store, n int) error {
	if store == nil {
		return fmt.Errorf("scoreboard is disabled")
	}
	runs, err := store.Top(ctx, n)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return nil
	}
	fmt.Fprintf(w, "%-4s %6s %7s %-18s %9s  %s\n", "#", "SCORE", "ENERGY", "REASON", "DURATION", "ENDED")
	for i, r := range runs {
		fmt.Fprintf(w, "%-4d %6d %7d %-18s %9s  %s\n",
			i+1, r.Score, r.Energy, r.Reason, r.Duration().Round(time.Second), r.EndedAt.Format(time.DateTime))
	}
	return nil
}
