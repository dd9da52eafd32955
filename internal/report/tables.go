package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/twucrit/internal/analysis"
	"github.com/san-kum/twucrit/internal/batch"
	"github.com/san-kum/twucrit/internal/storage"
	"github.com/san-kum/twucrit/internal/units"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Subtle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// Outcomes renders one row per batch outcome.
func Outcomes(outcomes []batch.Outcome, u units.Temperature) string {
	t := newTable("name", "Tb "+u.Symbol(), "SG", "Tc "+u.Symbol(), "Vc ft³/lbmol", "Pc psia", "MW", "ω", "status")
	for _, o := range outcomes {
		row := []string{
			o.Item.Name,
			fmt.Sprintf("%.2f", units.FromRankine(o.Item.Tb, u)),
			fmt.Sprintf("%.4f", o.Item.SG),
		}
		if o.Failed() {
			row = append(row, "", "", "", "", "", ErrorText.Render(o.Err.Error()))
		} else {
			c := o.Result.Corrected
			row = append(row,
				fmt.Sprintf("%.2f", units.FromRankine(c.CriticalTemperature, u)),
				fmt.Sprintf("%.4f", c.CriticalVolume),
				fmt.Sprintf("%.2f", c.CriticalPressure),
				fmt.Sprintf("%.2f", c.MolecularWeight),
				fmt.Sprintf("%.4f", o.Result.Characterization.AcentricFactor),
				"ok",
			)
		}
		t.Row(row...)
	}
	return t.String()
}

func Sensitivity(sens []analysis.PropertySensitivity) string {
	t := newTable("property", "value", "∂/∂Tb", "∂/∂SG", "elasticity Tb", "elasticity SG")
	for _, s := range sens {
		t.Row(
			s.Property,
			fmt.Sprintf("%.4f", s.Value),
			fmt.Sprintf("%.5g", s.DTb),
			fmt.Sprintf("%.5g", s.DSG),
			fmt.Sprintf("%.3f", s.ElasticityTb),
			fmt.Sprintf("%.3f", s.ElasticitySG),
		)
	}
	return t.String()
}

func Runs(runs []storage.RunMetadata) string {
	t := newTable("id", "label", "time", "solver", "items", "failed", "mean Tc °R")
	for _, r := range runs {
		meanTc := "-"
		if v, ok := r.Metrics["mean_tc"]; ok && !math.IsNaN(v) {
			meanTc = fmt.Sprintf("%.2f", v)
		}
		t.Row(
			r.ID,
			r.Label,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Solver,
			fmt.Sprint(r.Items),
			fmt.Sprint(r.Failed),
			meanTc,
		)
	}
	return t.String()
}

// Metrics renders a run's summary metrics in name order.
func Metrics(metrics map[string]float64) string {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var out string
	for _, name := range names {
		out += line(name, fmt.Sprintf("%.4f", metrics[name]))
	}
	return out
}
