// Package config loads simulation settings and scripted scenarios from
// YAML files.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/cardash/internal/hw"
	"github.com/san-kum/cardash/internal/tasks"
)

// DefaultDuration is the headless run length in seconds.
const DefaultDuration = 10.0

type Config struct {
	Duration float64     `yaml:"duration"`
	Rates    RatesConfig `yaml:"rates"`
	Scenario []Event     `yaml:"scenario"`
}

// RatesConfig sets each task's cycle frequency in Hz.
type RatesConfig struct {
	Input   float64 `yaml:"input"`
	Cruise  float64 `yaml:"cruise"`
	Physics float64 `yaml:"physics"`
	Monitor float64 `yaml:"monitor"`
	Display float64 `yaml:"display"`
}

// Event flips a named switch at a point in the run.
type Event struct {
	At     float64 `yaml:"at"` // seconds from start
	Switch string  `yaml:"switch"`
	On     bool    `yaml:"on"`
}

func DefaultConfig() *Config {
	r := tasks.DefaultRates()
	return &Config{
		Duration: DefaultDuration,
		Rates: RatesConfig{
			Input:   r.Input,
			Cruise:  r.Cruise,
			Physics: r.Physics,
			Monitor: r.Monitor,
			Display: r.Display,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Duration <= 0 {
		return errors.Errorf("duration must be positive, got %f", c.Duration)
	}
	if err := c.TaskRates().Validate(); err != nil {
		return err
	}
	for _, ev := range c.Scenario {
		if ev.At < 0 {
			return errors.Errorf("scenario event time must be non-negative, got %f", ev.At)
		}
		if _, err := ParseSwitch(ev.Switch); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) TaskRates() tasks.Rates {
	return tasks.Rates{
		Input:   c.Rates.Input,
		Cruise:  c.Rates.Cruise,
		Physics: c.Rates.Physics,
		Monitor: c.Rates.Monitor,
		Display: c.Rates.Display,
	}
}

// SwitchEvents converts the scenario into port events.
func (c *Config) SwitchEvents() ([]hw.SwitchEvent, error) {
	events := make([]hw.SwitchEvent, 0, len(c.Scenario))
	for _, ev := range c.Scenario {
		sw, err := ParseSwitch(ev.Switch)
		if err != nil {
			return nil, err
		}
		events = append(events, hw.SwitchEvent{
			At:     time.Duration(ev.At * float64(time.Second)),
			Switch: sw,
			On:     ev.On,
		})
	}
	return events, nil
}

// ParseSwitch maps a scenario switch name onto its port channel.
func ParseSwitch(name string) (hw.Switch, error) {
	switch name {
	case "ignition":
		return hw.IgnitionSwitch, nil
	case "accelerator", "accel":
		return hw.AcceleratorSwitch, nil
	case "brake":
		return hw.BrakeSwitch, nil
	case "cruise":
		return hw.CruiseSwitch, nil
	}
	return 0, errors.Errorf("unknown switch: %q", name)
}
