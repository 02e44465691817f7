package agent

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/treemind/treemind/internal/core/geo"
)

// Scenario configures one seek run: where the agent starts, where it is
// headed, and how it moves. It deliberately describes only run
// parameters; the tree shape itself is fixed in code.
type Scenario struct {
	Start     geo.Vec2 `yaml:"start"`
	Target    geo.Vec2 `yaml:"target"`
	Speed     float64  `yaml:"speed"`     // units per second
	Tolerance float64  `yaml:"tolerance"` // "close enough" radius for the goal condition
	WaitMS    int      `yaml:"wait_ms"`   // settle pause after arrival
	TickMS    int      `yaml:"tick_ms"`   // simulated delta per tick
	MaxTicks  int      `yaml:"max_ticks"` // 0 = unbounded
}

// DefaultScenario matches the reference run: (0,0) to (10,10) at 0.5
// units/s with tolerance 1.0 and a 2s settle.
func DefaultScenario() Scenario {
	return Scenario{
		Target:    geo.Vec2{X: 10, Y: 10},
		Speed:     0.5,
		Tolerance: 1.0,
		WaitMS:    2000,
		TickMS:    1000,
	}
}

func (s Scenario) WaitDuration() time.Duration { return time.Duration(s.WaitMS) * time.Millisecond }

func (s Scenario) TickDuration() time.Duration { return time.Duration(s.TickMS) * time.Millisecond }

var errInvalidScenario = errors.New("invalid scenario")

// Validate guards misconfiguration at construction time instead of
// deferring it to tick-time behavior.
func (s Scenario) Validate() error {
	switch {
	case s.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive, got %v", errInvalidScenario, s.Speed)
	case s.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must be non-negative, got %v", errInvalidScenario, s.Tolerance)
	case s.WaitMS < 0:
		return fmt.Errorf("%w: wait_ms must be non-negative, got %d", errInvalidScenario, s.WaitMS)
	case s.TickMS <= 0:
		return fmt.Errorf("%w: tick_ms must be positive, got %d", errInvalidScenario, s.TickMS)
	case s.MaxTicks < 0:
		return fmt.Errorf("%w: max_ticks must be non-negative, got %d", errInvalidScenario, s.MaxTicks)
	}
	return nil
}

// LoadScenario decodes a YAML scenario over the defaults and validates
// it.
func LoadScenario(r io.Reader) (Scenario, error) {
	s := DefaultScenario()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// LoadScenarioFile reads a scenario from a YAML file.
func LoadScenarioFile(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("open scenario: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadScenario(f)
}
