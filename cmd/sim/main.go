package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/voxscript/voxscript/internal/config"
	"github.com/voxscript/voxscript/internal/core/clock"
	"github.com/voxscript/voxscript/internal/core/engine"
	"github.com/voxscript/voxscript/internal/core/observability/log"
	"github.com/voxscript/voxscript/internal/core/script"
	"github.com/voxscript/voxscript/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger := injector.ProvideLogger()
	logger.SetLevel(log.ParseLevel(cfg.Log.Level))
	world := engine.NewWorld(cfg.Engine, logger)
	world.SetClock(clock.NewWall(cfg.Engine.MaxStep))

	host := world.Roster().Join("host")
	world.Roster().Join("guest")
	world.Roster().SetLocal(host.ID)

	// A beacon spinning in place, and a seeker that turns toward it while
	// creeping forward.
	beacon := world.Spawn("beacon", mgl64.Vec3{0, 0, 0}, func(c *script.Context) error {
		return c.Spin(math.Pi / 2)
	})
	world.Spawn("seeker", mgl64.Vec3{10, 0, 10}, func(c *script.Context) error {
		if err := c.LookToward(script.ActorTarget(beacon.ID()), math.Pi, true); err != nil {
			return err
		}
		return c.MoveForward(0.5)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		<-stopCh
		cancel()
	}()

	if err := world.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("world exited", zap.Error(err))
		os.Exit(1)
	}
}
