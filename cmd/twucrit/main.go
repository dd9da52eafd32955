package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/san-kum/twucrit/internal/config"
	"github.com/san-kum/twucrit/internal/twu"
	"github.com/san-kum/twucrit/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	envConfig   = "TWUCRIT_CONFIG"
	envLogLevel = "TWUCRIT_LOG_LEVEL"
)

var (
	// Global
	configFile    string
	dataDir       string
	solverName    string
	tolerance     float64
	maxIterations int
	workers       int
	unitName      string
	logLevel      string
	// Fraction
	tb     float64
	sg     float64
	preset string
	name   string
	// Output
	jsonOut bool
	outFile string
	save    bool
	label   string
	// Sweep
	sweepBy  string
	from     float64
	to       float64
	points   int
	property string
	// Match
	matchProperty string
	target        float64
)

// Resolved in PersistentPreRunE.
var (
	cfg  *config.Config
	log  *logrus.Logger
	est  *twu.Estimator
	unit units.Temperature
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "twucrit",
		Short:             "critical properties of petroleum fractions by the Twu (1984) correlation",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml), defaults to $"+envConfig)
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "data directory for saved runs")
	pf.StringVar(&solverName, "solver", config.DefaultMethod, "molecular weight solver")
	pf.Float64Var(&tolerance, "tol", config.DefaultTolerance, "solver step tolerance")
	pf.IntVar(&maxIterations, "max-iter", config.DefaultMaxIterations, "solver iteration limit")
	pf.IntVar(&workers, "workers", config.DefaultWorkers, "batch workers")
	pf.StringVar(&unitName, "unit", "R", "temperature unit for input and output (R, K, C, F)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level, defaults to $"+envLogLevel)

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "estimate critical properties of one fraction",
		RunE:  runEstimate,
	}
	fractionFlags(estimateCmd)
	estimateCmd.Flags().StringVar(&name, "name", "", "fraction name")
	estimateCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "estimate every fraction in a yaml, csv or xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outFile, "out", "", "write results to a .xlsx, .csv or .json file")
	batchCmd.Flags().BoolVar(&save, "save", false, "save the run to the data directory")
	batchCmd.Flags().StringVar(&label, "label", "batch", "label for a saved run")
	batchCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot a property over a range of boiling points or gravities",
		RunE:  runSweep,
	}
	fractionFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepBy, "by", "tb", "swept input (tb or sg)")
	sweepCmd.Flags().Float64Var(&from, "from", 600, "start of the range")
	sweepCmd.Flags().Float64Var(&to, "to", 1400, "end of the range")
	sweepCmd.Flags().IntVar(&points, "points", 60, "number of points")
	sweepCmd.Flags().StringVar(&property, "property", "tc", "plotted property")

	sensitivityCmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "partial derivatives of each property with respect to Tb and SG",
		RunE:  runSensitivity,
	}
	fractionFlags(sensitivityCmd)
	sensitivityCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "find the specific gravity that reproduces a measured property at --tb",
		RunE:  runMatch,
	}
	fractionFlags(matchCmd)
	matchCmd.Flags().StringVar(&matchProperty, "property", "mw", "matched property")
	matchCmd.Flags().Float64Var(&target, "target", 0, "measured value in the property's field unit")
	matchCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")
	_ = matchCmd.MarkFlagRequired("target")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	showCmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list sample fractions",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	solversCmd := &cobra.Command{
		Use:   "solvers",
		Short: "list molecular weight solvers",
		RunE:  listSolvers,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "adjust Tb and SG interactively",
		RunE:  runTUI,
	}
	fractionFlags(tuiCmd)

	rootCmd.AddCommand(estimateCmd, batchCmd, sweepCmd, sensitivityCmd, matchCmd, runsCmd, showCmd, presetsCmd, solversCmd, initCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fractionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tb, "tb", 919.34, "normal boiling point in --unit (the default is in °R)")
	cmd.Flags().Float64Var(&sg, "sg", 1.097, "specific gravity 60/60°F")
	cmd.Flags().StringVar(&preset, "preset", "", "sample fraction as family/name (see presets)")
}

// setup loads .env and the config file, applies changed flags on top and
// builds the logger and estimator.
func setup(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	if configFile == "" {
		configFile = os.Getenv(envConfig)
	}

	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("solver") {
		cfg.Solver.Method = solverName
	}
	if flags.Changed("tol") {
		cfg.Solver.Tolerance = tolerance
	}
	if flags.Changed("max-iter") {
		cfg.Solver.MaxIterations = maxIterations
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("unit") {
		cfg.Units.Temperature = unitName
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	} else if env := os.Getenv(envLogLevel); env != "" {
		cfg.LogLevel = env
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := logrus.ParseLevel(cfg.LogLevel)
	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	s, err := cfg.NewSolver(log)
	if err != nil {
		return err
	}
	est = twu.NewEstimator(twu.WithSolver(s))
	unit, _ = cfg.TemperatureUnit()

	log.WithFields(logrus.Fields{
		"config": configFile,
		"solver": cfg.Solver.Method,
		"unit":   unit,
	}).Debug("configured")
	return nil
}
