package bt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerTicksUntilSuccess(t *testing.T) {
	remaining := 3
	action := NewAction("countdown", func(TickContext) (Status, error) {
		if remaining == 0 {
			return StatusSuccess, nil
		}
		remaining--
		return StatusRunning, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{})

	st, ticks, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, 4, ticks)
}

func TestRunnerRetriesFailureByDefault(t *testing.T) {
	failures := 5
	action := NewAction("flaky", func(TickContext) (Status, error) {
		if failures == 0 {
			return StatusSuccess, nil
		}
		failures--
		return StatusFailure, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{})

	st, ticks, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, 6, ticks)
}

func TestRunnerStopOnFailure(t *testing.T) {
	action := NewAction("doomed", func(TickContext) (Status, error) {
		return StatusFailure, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{Policy: StopOnFailure})

	st, ticks, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrRootFailure)
	require.Equal(t, StatusFailure, st)
	require.Equal(t, 1, ticks)
}

func TestRunnerTickBudget(t *testing.T) {
	action := NewAction("stuck", func(TickContext) (Status, error) {
		return StatusRunning, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{MaxTicks: 25})

	st, ticks, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrTickBudget)
	require.Equal(t, StatusRunning, st)
	require.Equal(t, 25, ticks)
}

func TestRunnerObservesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	action := NewAction("never", func(TickContext) (Status, error) {
		return StatusRunning, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{})

	_, ticks, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, ticks)
}

func TestRunnerRejectsInvalidTree(t *testing.T) {
	r := NewRunner(NewTree(NewSequence("seq", nil)), RunnerConfig{})
	_, ticks, err := r.Run(context.Background())
	require.ErrorIs(t, err, ErrNilChild)
	require.Zero(t, ticks)
}

func TestRunnerPassesClockAndDelta(t *testing.T) {
	now := time.Unix(100, 0)
	var gotDelta time.Duration
	var gotNow time.Time
	action := NewAction("probe", func(tc TickContext) (Status, error) {
		gotDelta = tc.Delta
		gotNow = tc.Now()
		return StatusSuccess, nil
	})
	r := NewRunner(NewTree(action), RunnerConfig{
		Clock: func() time.Time { return now },
		Delta: 250 * time.Millisecond,
	})

	_, _, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, gotDelta)
	require.Equal(t, now, gotNow)
}
