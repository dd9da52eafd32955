package config

import (
	"fmt"
	"os"

	"github.com/san-kum/twucrit/internal/solver"
	"github.com/san-kum/twucrit/internal/units"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod            = "newton"
	DefaultTolerance         = 1e-12
	DefaultResidualTolerance = 1e-9
	DefaultMaxIterations     = 50
	DefaultWorkers           = 4
	DefaultLogLevel          = "info"
	DefaultDataDir           = "data"
)

type Config struct {
	Solver   SolverConfig `yaml:"solver"`
	Workers  int          `yaml:"workers"`
	Units    UnitsConfig  `yaml:"units"`
	LogLevel string       `yaml:"log_level"`
	DataDir  string       `yaml:"data_dir"`
}

type SolverConfig struct {
	Method            string  `yaml:"method"`
	Tolerance         float64 `yaml:"tolerance"`
	ResidualTolerance float64 `yaml:"residual_tolerance"`
	MaxIterations     int     `yaml:"max_iterations"`
	// Step is the finite-difference step; zero lets gonum pick one.
	Step float64 `yaml:"step"`
}

// UnitsConfig sets the temperature unit for input and display. Volume and
// pressure are always reported in both field and SI units.
type UnitsConfig struct {
	Temperature string `yaml:"temperature"`
}

func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Method:            DefaultMethod,
			Tolerance:         DefaultTolerance,
			ResidualTolerance: DefaultResidualTolerance,
			MaxIterations:     DefaultMaxIterations,
		},
		Workers:  DefaultWorkers,
		Units:    UnitsConfig{Temperature: string(units.Rankine)},
		LogLevel: DefaultLogLevel,
		DataDir:  DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

func (c *Config) SolverOptions() solver.Options {
	return solver.Options{
		Tolerance:         c.Solver.Tolerance,
		ResidualTolerance: c.Solver.ResidualTolerance,
		MaxIterations:     c.Solver.MaxIterations,
		Step:              c.Solver.Step,
	}
}

// NewSolver builds the configured root finder from the solver registry. A
// nil log disables iteration tracing.
func (c *Config) NewSolver(log logrus.FieldLogger) (solver.Solver, error) {
	opts := c.SolverOptions()
	opts.Log = log
	return solver.NewRegistry().Get(c.Solver.Method, opts)
}

func (c *Config) TemperatureUnit() (units.Temperature, error) {
	return units.ParseTemperature(c.Units.Temperature)
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := c.TemperatureUnit(); err != nil {
		return err
	}
	if _, err := c.NewSolver(nil); err != nil {
		return err
	}
	return nil
}
