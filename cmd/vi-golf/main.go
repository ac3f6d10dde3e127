package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-golf/audio"
	"github.com/lixenwraith/vi-golf/config"
	"github.com/lixenwraith/vi-golf/core"
	"github.com/lixenwraith/vi-golf/engine"
	"github.com/lixenwraith/vi-golf/logging"
	"github.com/lixenwraith/vi-golf/stats"
	"github.com/lixenwraith/vi-golf/terminal"
	"github.com/lixenwraith/vi-golf/vmath"
	"github.com/lixenwraith/vi-golf/window"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	fs := config.Flags("vi-golf")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	logger, logFile, err := logging.Setup(cfg.Log.Enabled, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	course, err := cfg.BuildCourse()
	if err != nil {
		logger.Error().Err(err).Msg("Invalid course")
		fmt.Fprintf(os.Stderr, "Invalid course: %v\n", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := engine.NewSession(course, vmath.NewFastRand(seed), logger)

	logger.Info().
		Str("backend", cfg.Backend).
		Uint64("seed", seed).
		Int("width", course.Width).
		Int("height", course.Height).
		Int("obstacles", len(course.Obstacles)).
		Int("trees", len(course.Trees)).
		Msg("Starting vi-golf")

	recorder, err := stats.New()
	if err != nil {
		logger.Error().Err(err).Msg("Metrics setup failed")
		fmt.Fprintf(os.Stderr, "Failed to set up metrics: %v\n", err)
		return 1
	}
	session.RegisterEventHandler(recorder)
	defer func() {
		logger.Info().Stringer("tally", recorder.Snapshot()).Msg("Session ended")
	}()

	player := audio.NewPlayer(audioConfig(cfg, course), logger)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn().Err(err).Msg("Audio initialization failed, continuing without sound")
	}
	defer player.Close()
	session.RegisterEventHandler(player)

	switch cfg.Backend {
	case config.BackendTerminal:
		err = runTerminal(cfg, session, recorder, logger)
	default:
		err = runWindow(cfg, session, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg("Frontend failed")
		fmt.Fprintf(os.Stderr, "vi-golf: %v\n", err)
		return 1
	}
	return 0
}

// audioConfig derives mixer settings from the loaded config and course rules
func audioConfig(cfg *config.Config, course *engine.Course) audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	ac.MaxPower = course.Rules.MaxPower
	return ac
}

func runTerminal(cfg *config.Config, session *engine.Session, recorder *stats.Recorder, logger zerolog.Logger) error {
	screen, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	core.RegisterCrashTarget(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.RegisterCrashTarget(nil)
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend := terminal.New(screen, session, terminal.Options{
		Width:         cfg.Screen.Width,
		Height:        cfg.Screen.Height,
		FrameInterval: time.Second / time.Duration(cfg.Screen.FPS),
		Status: func() string {
			st := session.State()
			return fmt.Sprintf(" Score: %d  Hole: %d  |  %s  |  q: quit", st.Score, st.HoleCount, recorder.Snapshot())
		},
	}, logger)

	return backend.Run(ctx)
}

func runWindow(cfg *config.Config, session *engine.Session, logger zerolog.Logger) error {
	game := window.New(session, window.Options{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		FPS:    cfg.Screen.FPS,
	}, logger)
	return game.Run()
}
