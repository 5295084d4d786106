package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/limbo/audio"
	"github.com/lixenwraith/limbo/config"
	"github.com/lixenwraith/limbo/constants"
	"github.com/lixenwraith/limbo/engine"
	"github.com/lixenwraith/limbo/game"
	"github.com/lixenwraith/limbo/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "limbo: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(".env", args)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()

	logger, logFile, err := setupLogging(cfg.LogDir, cfg.Debug, level)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing, otherwise the trace is lost in raw mode
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			logger.Error().Interface("panic", r).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\nLIMBO CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.SetTitle("Limbo!")
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio(), logger)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Warn().Err(err).Msg("audio unavailable, continuing muted")
	}
	defer sound.Close()

	renderer := render.NewTerminalRenderer(screen)

	seed := cfg.ResolveSeed(time.Now())
	session := engine.NewSession(engine.SessionOptions{
		Random: game.NewRandom(seed),
		Layout: renderer.Layout(),
		Jitter: constants.ShakeJitterCells,
		Cues:   sound,
		Logger: logger,
	})
	logger.Info().Uint64("seed", seed).Msg("starting")

	ticker := time.NewTicker(constants.FrameUpdateInterval) // ~60 FPS
	defer ticker.Stop()

	clock := engine.NewFrameClock(engine.NewMonotonicTimeProvider(), constants.MaxFrameDelta)
	runLoop(screen, renderer, session, clock, ticker.C)

	logger.Info().Int("score", session.State().Score).Msg("exit")
	return nil
}
