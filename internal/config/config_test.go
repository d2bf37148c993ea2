package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cardash/internal/hw"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Rates.Input != 25 || cfg.Rates.Cruise != 20 || cfg.Rates.Display != 2 {
		t.Errorf("unexpected default rates: %+v", cfg.Rates)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	doc := `duration: 5
rates:
  display: 4
scenario:
  - at: 0
    switch: ignition
    on: true
  - at: 1.5
    switch: accel
    on: true
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Duration != 5 {
		t.Errorf("expected duration 5, got %f", cfg.Duration)
	}
	if cfg.Rates.Display != 4 {
		t.Errorf("expected display rate 4, got %f", cfg.Rates.Display)
	}
	if cfg.Rates.Input != 25 {
		t.Errorf("unset rates should keep defaults, got %f", cfg.Rates.Input)
	}
	if len(cfg.Scenario) != 2 {
		t.Fatalf("expected 2 scenario events, got %d", len(cfg.Scenario))
	}

	events, err := cfg.SwitchEvents()
	if err != nil {
		t.Fatalf("switch events failed: %v", err)
	}
	if events[1].Switch != hw.AcceleratorSwitch {
		t.Errorf("expected accelerator switch, got %v", events[1].Switch)
	}
}

func TestLoad_UnknownSwitch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	doc := `scenario:
  - at: 0
    switch: handbrake
    on: true
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown switch name")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"negative rate", func(c *Config) { c.Rates.Physics = -1 }},
		{"negative event time", func(c *Config) {
			c.Scenario = []Event{{At: -1, Switch: "ignition", On: true}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseSwitch(t *testing.T) {
	tests := []struct {
		name     string
		expected hw.Switch
	}{
		{"ignition", hw.IgnitionSwitch},
		{"accelerator", hw.AcceleratorSwitch},
		{"accel", hw.AcceleratorSwitch},
		{"brake", hw.BrakeSwitch},
		{"cruise", hw.CruiseSwitch},
	}

	for _, tt := range tests {
		sw, err := ParseSwitch(tt.name)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if sw != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, sw)
		}
	}

	if _, err := ParseSwitch("handbrake"); err == nil {
		t.Error("expected error for unknown switch")
	}
}
