package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/nodebreak/breakout"
	"github.com/milk9111/nodebreak/ecs"
	"github.com/milk9111/nodebreak/levels"
	"github.com/milk9111/nodebreak/logging"
	"github.com/milk9111/nodebreak/prefabs"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .yaml optional)")
	maxTicks := flag.Int("ticks", 100000, "give up after this many ticks (0 = no limit)")
	interval := flag.Duration("interval", 0, "delay between ticks (0 = as fast as possible)")
	policy := flag.String("policy", "", "override the collision policy (minimum-overlap or axis-aligned)")
	offset := flag.Float64("offset", 0, "autopilot aim offset from the paddle centre")
	verbose := flag.Bool("v", false, "log every destroyed brick")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *policy != "" {
		spec.Collision.Policy = *policy
	}
	if *verbose {
		spec.Log.Level = "debug"
	}
	logger, err := logging.New(spec.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := levels.Load(*levelName)
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game, err := breakout.NewFromLevel(ctx, spec, lvl, logger)
	if err != nil {
		logger.Fatal("build game", zap.Error(err))
	}
	if err := game.Initialize(); err != nil {
		logger.Fatal("initialize", zap.Error(err))
	}
	if err := game.Start(); err != nil {
		logger.Fatal("start", zap.Error(err))
	}

	total := game.LiveBricks()
	bounces := 0
	runner := &breakout.Runner{
		Game:     game,
		Input:    &breakout.Autopilot{Offset: *offset},
		Interval: *interval,
		MaxTicks: *maxTicks,
		OnStep: func(_ int, _ breakout.Outcome, events []ecs.Event) {
			for _, evt := range events {
				if evt.Type == ecs.EventPaddleHit || evt.Type == ecs.EventWallBounce {
					bounces++
				}
			}
		},
	}

	started := time.Now()
	outcome, err := runner.Run(ctx)
	switch {
	case errors.Is(err, breakout.ErrTickLimit), errors.Is(err, context.Canceled):
		logger.Warn("simulation stopped early", zap.Error(err))
	case err != nil:
		logger.Fatal("simulation failed", zap.Error(err))
	}

	fmt.Printf("level:     %s\n", lvl.Name)
	fmt.Printf("policy:    %s\n", game.Config().Resolver.Policy)
	fmt.Printf("outcome:   %s\n", outcome)
	fmt.Printf("ticks:     %d\n", game.Tick())
	fmt.Printf("destroyed: %d/%d\n", total-game.LiveBricks(), total)
	fmt.Printf("bounces:   %d\n", bounces)
	fmt.Printf("elapsed:   %s\n", time.Since(started).Round(time.Millisecond))
}
