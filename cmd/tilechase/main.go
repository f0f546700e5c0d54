package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilechase/audio"
	"github.com/lixenwraith/tilechase/config"
	"github.com/lixenwraith/tilechase/engine"
	"github.com/lixenwraith/tilechase/logger"
	"github.com/lixenwraith/tilechase/records"
	"github.com/lixenwraith/tilechase/status"
	"github.com/lixenwraith/tilechase/vmath"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tilechase: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tilechase", flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(flags.Path)
	if err != nil {
		return err
	}
	flags.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := logger.Init(cfg.LoggerOptions())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Log.WithField("config", fmt.Sprintf("%+v", cfg)).Info("starting")

	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}
	stats := status.NewRegistry()
	clock := engine.NewMonotonicTimeProvider()
	opts.Rand = vmath.NewSource(cfg.Seed)
	opts.Clock = clock
	opts.Stats = stats
	game, err := engine.New(opts)
	if err != nil {
		return err
	}
	game.AddListener(logger.NewEventLogger(nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *records.Store
	if cfg.Records.Enabled {
		store, err = records.Open(ctx, cfg.Records.Path)
		if err != nil {
			logger.Log.WithError(err).Warn("records disabled")
			store = nil
		} else {
			defer store.Close()
		}
	}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.AudioConfig(), vmath.NewFastRand(cfg.Seed+1))
		if err := sound.Init(); err != nil {
			logger.Log.WithError(err).Warn("audio disabled")
			sound = nil
		} else {
			defer sound.Close()
			sound.SetFullBand(opts.Profile.FullBand)
			sound.SetMuted(cfg.Audio.Muted)
			game.AddListener(sound)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	setCrashScreen(screen)
	defer func() {
		setCrashScreen(nil)
		screen.Fini()
	}()

	err = newApp(cfg, game, clock, screen, sound, store, stats).run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
