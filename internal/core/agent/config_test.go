package agent

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	in := `
start: {x: 1, y: 2}
target: {x: 10, y: 10}
speed: 0.5
tolerance: 1.0
wait_ms: 500
tick_ms: 100
max_ticks: 200
`
	s, err := LoadScenario(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Start.X)
	require.Equal(t, 2.0, s.Start.Y)
	require.Equal(t, 0.5, s.Speed)
	require.Equal(t, 500*time.Millisecond, s.WaitDuration())
	require.Equal(t, 100*time.Millisecond, s.TickDuration())
	require.Equal(t, 200, s.MaxTicks)
}

func TestLoadScenarioDefaults(t *testing.T) {
	// partial documents overlay the defaults
	s, err := LoadScenario(strings.NewReader("speed: 2.0\n"))
	require.NoError(t, err)
	require.Equal(t, 2.0, s.Speed)
	require.Equal(t, 1.0, s.Tolerance)
	require.Equal(t, time.Second, s.TickDuration())
}

func TestScenarioValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero speed", func(s *Scenario) { s.Speed = 0 }},
		{"negative speed", func(s *Scenario) { s.Speed = -1 }},
		{"negative tolerance", func(s *Scenario) { s.Tolerance = -0.5 }},
		{"negative wait", func(s *Scenario) { s.WaitMS = -1 }},
		{"zero tick", func(s *Scenario) { s.TickMS = 0 }},
		{"negative budget", func(s *Scenario) { s.MaxTicks = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultScenario()
			tc.mutate(&s)
			require.Error(t, s.Validate())
		})
	}
	require.NoError(t, DefaultScenario().Validate())
}

func TestLoadScenarioRejectsInvalid(t *testing.T) {
	_, err := LoadScenario(strings.NewReader("speed: -3\n"))
	require.ErrorContains(t, err, "speed")
}
