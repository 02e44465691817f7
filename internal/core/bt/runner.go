package bt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/treemind/treemind/internal/core/observability/log"
)

// FailurePolicy decides what the driver loop does when the root reports
// Failure. RetryOnFailure keeps ticking, treating a failed tick like a
// Running one; StopOnFailure terminates the run with ErrRootFailure.
type FailurePolicy int

const (
	RetryOnFailure FailurePolicy = iota
	StopOnFailure
)

var (
	// ErrTickBudget reports that MaxTicks elapsed before the root succeeded.
	ErrTickBudget = errors.New("bt: tick budget exhausted")
	// ErrRootFailure reports a root Failure under StopOnFailure.
	ErrRootFailure = errors.New("bt: root reported failure")
)

// RunnerConfig tunes the driver loop. Zero values mean: wall clock,
// 100ms delta, no pacing, no tick budget, RetryOnFailure, no-op logger.
type RunnerConfig struct {
	// Clock supplies the tick time; tests inject a virtual clock here.
	Clock func() time.Time
	// Delta is the simulated duration covered by each tick.
	Delta time.Duration
	// Interval paces ticks in real time; 0 runs the loop flat out.
	Interval time.Duration
	// MaxTicks bounds the run; 0 means unbounded.
	MaxTicks int
	Policy   FailurePolicy
	Log      log.Log
	// OnTick, when set, observes every tick after it completes.
	OnTick func(tick int, st Status)
}

// Runner is the driver loop: it repeatedly ticks a tree's root until it
// reports Success. The runner is the only caller of the tree and ticks
// are strictly sequential; there is no way to abandon a tick in
// progress, cancellation is observed between ticks.
type Runner struct {
	tree DecisionTree
	cfg  RunnerConfig
}

func NewRunner(tree DecisionTree, cfg RunnerConfig) *Runner {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Delta <= 0 {
		cfg.Delta = 100 * time.Millisecond
	}
	if cfg.Log == nil {
		cfg.Log = log.Nop()
	}
	return &Runner{tree: tree, cfg: cfg}
}

// Run drives the tree until Success, a root Failure under StopOnFailure,
// context cancellation, or an exhausted tick budget. It returns the last
// root status and the number of ticks performed.
func (r *Runner) Run(ctx context.Context) (Status, int, error) {
	if v, ok := r.tree.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return StatusFailure, 0, err
		}
	}

	ticks := 0
	for {
		if err := ctx.Err(); err != nil {
			return StatusFailure, ticks, err
		}

		tc := TickContext{Ctx: ctx, Clock: r.cfg.Clock, Delta: r.cfg.Delta}
		st, err := r.tree.Tick(tc)
		ticks++
		if err != nil {
			r.cfg.Log.Warn("tick error", zap.Int("tick", ticks), zap.Error(err))
		}
		r.cfg.Log.Debug("tick", zap.Int("tick", ticks), zap.Stringer("status", st))
		if r.cfg.OnTick != nil {
			r.cfg.OnTick(ticks, st)
		}

		switch st {
		case StatusSuccess:
			return StatusSuccess, ticks, nil
		case StatusFailure:
			if r.cfg.Policy == StopOnFailure {
				return StatusFailure, ticks, ErrRootFailure
			}
		}

		if r.cfg.MaxTicks > 0 && ticks >= r.cfg.MaxTicks {
			return st, ticks, fmt.Errorf("%w after %d ticks", ErrTickBudget, ticks)
		}

		if r.cfg.Interval > 0 {
			select {
			case <-ctx.Done():
				return st, ticks, ctx.Err()
			case <-time.After(r.cfg.Interval):
			}
		}
	}
}
