package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/treemind/treemind/internal/core/agent"
	"github.com/treemind/treemind/internal/core/bt"
	"github.com/treemind/treemind/internal/core/observability/log"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "path to a scenario YAML file (optional)")
		interval     = flag.Duration("interval", 200*time.Millisecond, "real-time pacing between ticks")
		verbose      = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	logger := log.NewDevelopment(level)
	defer func() { _ = logger.Sync() }()

	scenario := agent.DefaultScenario()
	if *scenarioPath != "" {
		var err error
		scenario, err = agent.LoadScenarioFile(*scenarioPath)
		if err != nil {
			logger.Error("load scenario", zap.Error(err))
			os.Exit(1)
		}
	}

	a, err := agent.New("seeker", scenario)
	if err != nil {
		logger.Error("build agent", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("agent ready",
		zap.String("id", a.ID().String()),
		zap.Float64("x", a.Position().X),
		zap.Float64("y", a.Position().Y),
		zap.Float64("distance", a.DistanceToTarget()),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopCh
		cancel()
	}()

	runner := bt.NewRunner(a.SeekTree(), bt.RunnerConfig{
		Delta:    scenario.TickDuration(),
		Interval: *interval,
		MaxTicks: scenario.MaxTicks,
		Log:      logger,
		OnTick: func(tick int, st bt.Status) {
			logger.Info("position",
				zap.Int("tick", tick),
				zap.Stringer("status", st),
				zap.Float64("x", a.Position().X),
				zap.Float64("y", a.Position().Y),
				zap.Float64("distance", a.DistanceToTarget()),
			)
		},
	})

	st, ticks, err := runner.Run(ctx)
	if err != nil {
		logger.Error("run ended early",
			zap.Stringer("status", st),
			zap.Int("ticks", ticks),
			zap.Error(err),
		)
		os.Exit(1)
	}
	logger.Info("goal reached",
		zap.Int("ticks", ticks),
		zap.Float64("x", a.Position().X),
		zap.Float64("y", a.Position().Y),
		zap.Float64("distance", a.DistanceToTarget()),
	)
}
