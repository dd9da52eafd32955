package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/san-kum/twucrit/internal/solver"
	"github.com/san-kum/twucrit/internal/twu"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Solver.Method != "newton" {
		t.Errorf("expected method newton, got %s", cfg.Solver.Method)
	}
	if cfg.Solver.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
	if cfg.Workers <= 0 {
		t.Error("workers should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDefaultConfig_MatchesSolverDefaults(t *testing.T) {
	got := DefaultConfig().SolverOptions()
	if diff := cmp.Diff(solver.DefaultOptions(), got); diff != "" {
		t.Errorf("solver options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twucrit.yaml")
	data := []byte("solver:\n  method: secant\n  max_iterations: 20\nworkers: 8\nunits:\n  temperature: K\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Solver.Method = "secant"
	want.Solver.MaxIterations = 20
	want.Workers = 8
	want.Units.Temperature = "K"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twucrit.yaml")
	cfg := DefaultConfig()
	cfg.Solver.Step = 1e-6
	cfg.DataDir = "/tmp/runs"

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"unknown unit", func(c *Config) { c.Units.Temperature = "X" }},
		{"unknown solver", func(c *Config) { c.Solver.Method = "bisection" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
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

func TestNewSolver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.Method = "newton-forward"

	s, err := cfg.NewSolver(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "newton-forward" {
		t.Errorf("expected newton-forward, got %s", s.Name())
	}
}

func TestGetPreset(t *testing.T) {
	f := GetPreset("aromatic", "reformate")
	if f == nil {
		t.Fatal("expected preset, got nil")
	}
	if diff := cmp.Diff(twu.Component{BoilingTemperature: 919.34, SpecificGravity: 1.097}, f.Component()); diff != "" {
		t.Errorf("component mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("aromatic", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "light") != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestLookupPreset(t *testing.T) {
	if f := LookupPreset("paraffinic/naphtha"); f == nil || f.Tb != 600 {
		t.Errorf("unexpected preset %+v", f)
	}
	if LookupPreset("naphtha") != nil {
		t.Error("expected nil without a family")
	}
}

func TestListPresets(t *testing.T) {
	if diff := cmp.Diff([]string{"light", "reformate"}, ListPresets("aromatic")); diff != "" {
		t.Errorf("presets mismatch (-want +got):\n%s", diff)
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestPresetsEstimate(t *testing.T) {
	est := twu.NewEstimator()
	for _, family := range ListFamilies() {
		for _, name := range ListPresets(family) {
			if _, err := est.Estimate(GetPreset(family, name).Component()); err != nil {
				t.Errorf("%s/%s: %v", family, name, err)
			}
		}
	}
}
