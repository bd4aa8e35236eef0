package engine

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/voxscript/voxscript/internal/config"
	"github.com/voxscript/voxscript/internal/core/actors"
	"github.com/voxscript/voxscript/internal/core/clock"
	"github.com/voxscript/voxscript/internal/core/observability/log"
	"github.com/voxscript/voxscript/internal/core/players"
	"github.com/voxscript/voxscript/internal/core/script"
	"github.com/voxscript/voxscript/pkg/concurrent"
)

// Script is a per-actor behavior invoked once per tick with a fresh context.
// Gradual effects (spin, lookToward, move rates) are per-tick nudges, so a
// script sustains them simply by calling them every tick.
type Script func(*script.Context) error

// World is the host harness: it owns the actor registry, the player roster
// and the clock, and drives the tick loop. Motion integration runs
// worker-parallel; scripts then run serially in spawn order, so within one
// tick every script observes the effects of the scripts before it.
type World struct {
	registry *actors.Registry
	roster   *players.Roster
	clk      clock.Clock
	cfg      config.EngineConfig
	logger   log.Log

	scripts map[actors.ID]Script
}

// NewWorld builds a world with a fixed-step clock derived from the tick
// rate.
func NewWorld(cfg config.EngineConfig, logger log.Log) *World {
	if logger == nil {
		logger = log.Provide()
	}
	return &World{
		registry: actors.NewRegistry(),
		roster:   players.NewRoster(),
		clk:      clock.NewFixed(1 / cfg.TickRate),
		cfg:      cfg,
		logger:   logger,
		scripts:  make(map[actors.ID]Script),
	}
}

// SetClock swaps the clock, e.g. for a wall clock in interactive runs.
func (w *World) SetClock(c clock.Clock) { w.clk = c }

// Registry exposes the actor registry.
func (w *World) Registry() *actors.Registry { return w.registry }

// Roster exposes the player roster.
func (w *World) Roster() *players.Roster { return w.roster }

// Clock exposes the tick clock.
func (w *World) Clock() clock.Clock { return w.clk }

// Spawn creates an actor, registers it and optionally attaches a script.
func (w *World) Spawn(name string, pos mgl64.Vec3, s Script) *actors.Actor {
	a := actors.NewActor(name, pos)
	w.registry.Add(a)
	if s != nil {
		w.scripts[a.ID()] = s
	}
	w.logger.Debug("actor spawned", zap.String("actor", name), zap.String("id", string(a.ID())))
	return a
}

// Despawn removes an actor and its script.
func (w *World) Despawn(id actors.ID) {
	w.registry.Remove(id)
	delete(w.scripts, id)
}

// Attach binds a script to an existing actor, replacing any previous one.
func (w *World) Attach(id actors.ID, s Script) {
	w.scripts[id] = s
}

// Step runs one tick: advance the clock, integrate motion, run scripts.
// A failing script is logged with its actor identity and does not abort the
// tick or the other scripts.
func (w *World) Step() {
	w.clk.Advance()
	dt := w.clk.Delta()

	all := w.registry.All()
	concurrent.ForEachMute(w.cfg.Workers, all, func(a *actors.Actor) {
		a.Integrate(dt)
	})

	for _, a := range all {
		s, ok := w.scripts[a.ID()]
		if !ok {
			continue
		}
		ctx := script.NewContext(script.Params{
			Actor:       a,
			Registry:    w.registry,
			Roster:      w.roster,
			Clock:       w.clk,
			Logger:      w.logger.With(zap.String("actor", a.Name())),
			LookPadding: w.cfg.LookPadding,
		})
		if err := s(ctx); err != nil {
			w.logger.Warn("script error",
				zap.String("actor", a.Name()),
				zap.Uint64("tick", w.clk.Tick()),
				zap.Error(err),
			)
		}
	}
}

// Run steps the world at the configured tick rate until ctx is canceled.
func (w *World) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / w.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("world running",
		zap.Float64("tick_rate", w.cfg.TickRate),
		zap.Int("workers", w.cfg.Workers),
	)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("world stopped", zap.Uint64("ticks", w.clk.Tick()))
			return ctx.Err()
		case <-ticker.C:
			w.Step()
		}
	}
}
