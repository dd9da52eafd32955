package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/twucrit/internal/analysis"
	"github.com/san-kum/twucrit/internal/batch"
	"github.com/san-kum/twucrit/internal/config"
	"github.com/san-kum/twucrit/internal/metrics"
	"github.com/san-kum/twucrit/internal/report"
	"github.com/san-kum/twucrit/internal/solver"
	"github.com/san-kum/twucrit/internal/storage"
	"github.com/san-kum/twucrit/internal/tui"
	"github.com/san-kum/twucrit/internal/twu"
	"github.com/san-kum/twucrit/internal/units"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rankine converts a temperature flag given in --unit. Defaults are °R.
func rankine(cmd *cobra.Command, flag string, v float64) float64 {
	if !cmd.Flags().Changed(flag) {
		return v
	}
	return units.ToRankine(v, unit)
}

// component resolves --preset, --tb and --sg into a component in °R. An
// explicit --tb or --sg wins over the preset.
func component(cmd *cobra.Command) (twu.Component, string, error) {
	c := twu.Component{BoilingTemperature: rankine(cmd, "tb", tb), SpecificGravity: sg}
	label := name

	if preset != "" {
		f := config.LookupPreset(preset)
		if f == nil {
			return c, "", fmt.Errorf("unknown preset: %s (see 'twucrit presets')", preset)
		}
		if !cmd.Flags().Changed("tb") {
			c.BoilingTemperature = f.Tb
		}
		if !cmd.Flags().Changed("sg") {
			c.SpecificGravity = f.SG
		}
		if label == "" {
			label = preset
		}
	}
	return c, label, nil
}

func runEstimate(cmd *cobra.Command, args []string) error {
	c, label, err := component(cmd)
	if err != nil {
		return err
	}

	res, err := est.Estimate(c)
	if jsonOut {
		out := []batch.Outcome{{Item: batch.Item{Name: label, Tb: c.BoilingTemperature, SG: c.SpecificGravity}, Result: res, Err: err}}
		if werr := storage.ExportJSONStdout(storage.ExportOutcomes(out)[0]); werr != nil {
			return werr
		}
		return err
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, report.Error(err))
		return err
	}

	fmt.Println(report.Estimate(label, res, unit))
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	items, err := batch.ReadFile(args[0])
	if err != nil {
		return err
	}
	for i := range items {
		items[i].Tb = units.ToRankine(items[i].Tb, unit)
	}

	log.WithFields(logrus.Fields{
		"file":    args[0],
		"items":   len(items),
		"workers": cfg.Workers,
	}).Info("starting batch")

	runner := batch.NewRunner(est, cfg.Workers)
	runner.Log = log
	outcomes := runner.Run(context.Background(), items)

	if jsonOut {
		if err := storage.ExportJSONStdout(storage.ExportOutcomes(outcomes)); err != nil {
			return err
		}
	} else {
		fmt.Println(report.Outcomes(outcomes, unit))
		fmt.Print(report.Metrics(metrics.Summarize(outcomes, metrics.Default()...)))
	}

	if outFile != "" {
		if err := writeResults(outFile, outcomes); err != nil {
			return err
		}
		log.WithField("file", outFile).Info("results written")
	}

	if save {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(label, cfg, outcomes)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved run %s\n", runID)
	}
	return nil
}

func writeResults(path string, outcomes []batch.Outcome) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return storage.ExportJSON(path, storage.ExportOutcomes(outcomes))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".xlsx":
		return batch.WriteXLSX(f, outcomes)
	case ".csv":
		return batch.WriteCSV(f, outcomes)
	default:
		return fmt.Errorf("%w: %q", batch.ErrUnsupportedFormat, ext)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {
	p, err := analysis.LookupProperty(property)
	if err != nil {
		return err
	}
	c, _, err := component(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var pts []analysis.SweepPoint
	switch sweepBy {
	case "tb":
		pts, err = analysis.Sweep(ctx, est, c.SpecificGravity, rankine(cmd, "from", from), rankine(cmd, "to", to), points)
	case "sg":
		if !cmd.Flags().Changed("from") {
			from = 0.65
		}
		if !cmd.Flags().Changed("to") {
			to = 1.1
		}
		pts, err = analysis.SweepGravity(ctx, est, c.BoilingTemperature, from, to, points)
	default:
		return fmt.Errorf("unknown sweep axis: %s (use tb or sg)", sweepBy)
	}
	if err != nil {
		return err
	}

	if n := analysis.Failures(pts); n > 0 {
		log.WithField("failed", n).Warn("some sweep points did not estimate")
	}

	xs, ys := analysis.Series(pts, p)
	if sweepBy == "tb" {
		for i := range xs {
			xs[i] = units.FromRankine(xs[i], unit)
		}
	}
	fmt.Println(report.Plot(xs, ys, p, 70, 15))
	return nil
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	c, _, err := component(cmd)
	if err != nil {
		return err
	}

	sens, err := analysis.Sensitivity(est, c)
	if err != nil {
		fmt.Fprintln(os.Stderr, report.Error(err))
		return err
	}

	if jsonOut {
		return storage.ExportJSONStdout(sens)
	}
	fmt.Println(report.Sensitivity(sens))
	fmt.Println(report.Subtle.Render("derivatives per °R and per unit SG; elasticities are d ln P / d ln x"))
	return nil
}

func runMatch(cmd *cobra.Command, args []string) error {
	p, err := analysis.LookupProperty(matchProperty)
	if err != nil {
		return err
	}
	c, label, err := component(cmd)
	if err != nil {
		return err
	}

	m, err := analysis.MatchGravity(context.Background(), est, c.BoilingTemperature, p, target)
	if err != nil {
		fmt.Fprintln(os.Stderr, report.Error(err))
		return err
	}

	log.WithFields(logrus.Fields{
		"property":   p.Name,
		"target":     target,
		"sg":         m.Component.SpecificGravity,
		"iterations": m.Iterations,
	}).Debug("matched")

	if jsonOut {
		return storage.ExportJSONStdout(m)
	}
	fmt.Println(report.Estimate(label, m.Result, unit))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}
	fmt.Println(report.Runs(runs))
	return nil
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(cfg.DataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	outcomes, err := st.LoadResults(args[0])
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	if jsonOut {
		return storage.ExportJSONStdout(struct {
			Metadata *storage.RunMetadata   `json:"metadata"`
			Results  []storage.ExportRecord `json:"results"`
		}{meta, storage.ExportOutcomes(outcomes)})
	}

	fmt.Println(report.Runs([]storage.RunMetadata{*meta}))
	fmt.Print(report.Metrics(meta.Metrics))
	fmt.Println(report.Outcomes(outcomes, unit))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	families := config.ListFamilies()
	if len(args) == 1 {
		if config.ListPresets(args[0]) == nil {
			fmt.Printf("no presets for family: %s\n", args[0])
			return nil
		}
		families = args
	}

	for _, family := range families {
		fmt.Println(report.Title.Render(family))
		for _, p := range config.ListPresets(family) {
			f := config.GetPreset(family, p)
			fmt.Printf("  %-12s Tb=%-10s SG=%-6.4f %s\n", p,
				report.Temperature(f.Tb, unit), f.SG, report.Subtle.Render(f.Description))
		}
	}
	return nil
}

func listSolvers(cmd *cobra.Command, args []string) error {
	for _, s := range solver.NewRegistry().List() {
		marker := "  "
		if s == cfg.Solver.Method {
			marker = "* "
		}
		fmt.Println(marker + s)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, _, err := component(cmd)
	if err != nil {
		return err
	}
	// the alt screen owns the terminal
	log.SetLevel(logrus.ErrorLevel)

	_, err = tui.Run(est, c, unit)
	return err
}
