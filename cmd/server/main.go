package main

import (
	"context"
	"ethereplodor-server/internal/agent"
	"ethereplodor-server/internal/engine"
	"ethereplodor-server/internal/server"
	"ethereplodor-server/internal/version"
	"ethereplodor-server/pkg/catalog"
	"ethereplodor-server/pkg/logger"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Flags, layered over env config
	var seed int64
	var tick time.Duration
	var autopilot bool
	flag.Int64Var(&seed, "seed", 0, "World seed (0 keeps SIM_SEED or picks one)")
	flag.DurationVar(&tick, "tick", 0, "Tick period, e.g. 50ms (0 keeps SIM_TICK)")
	flag.BoolVar(&autopilot, "autopilot", false, "Let the in-process agent play")
	flag.Parse()

	cfg, err := engine.LoadConfig()
	if err != nil {
		logger.Log.Fatal("Config error: ", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if tick > 0 {
		cfg.Tick = tick
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Log.Info("Starting Ethereplodor simulation...")
	logger.Log.Info(version.String())
	logger.Log.Infof("🎲 Master Seed: %d", cfg.Seed)

	// 2. Core
	cat, err := catalog.Load()
	if err != nil {
		logger.Log.Fatal("Catalog error: ", err)
	}
	sim := engine.NewSimulation(cfg, cat, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sim.Run(ctx)
	}()

	if autopilot {
		bot := agent.NewAutopilot(sim, sim.Hub.Register(agent.SubscriberID))
		go bot.Run()
	}

	// 3. Transport, blocks until shutdown
	srv := server.New(sim, cfg.Port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.Error("Server error: ", err)
		stop()
	}

	wg.Wait()
	sim.Hub.Unregister(agent.SubscriberID)
	logger.Log.Info("Done.")
}
