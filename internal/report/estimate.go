package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/twucrit/internal/twu"
	"github.com/san-kum/twucrit/internal/units"
)

func Temperature(rankine float64, u units.Temperature) string {
	return fmt.Sprintf("%.2f %s", units.FromRankine(rankine, u), u.Symbol())
}

func Volume(v float64) string {
	return fmt.Sprintf("%.4f ft³/lbmol (%.1f cm³/mol)", v, units.CubicFtPerLbmolToCm3PerMol(v))
}

func Pressure(p float64) string {
	return fmt.Sprintf("%.2f psia (%.2f bar)", p, units.PsiaToBar(p))
}

func line(label, value string) string {
	return MetricLabel.Render(label) + MetricValue.Render(value) + "\n"
}

// Estimate renders the alkane reference, the corrected properties and the
// characterization of one result.
func Estimate(name string, res twu.Result, u units.Temperature) string {
	var s strings.Builder

	title := "Twu critical properties"
	if name != "" {
		title += " · " + name
	}
	s.WriteString(Title.Render(title) + "\n")
	s.WriteString(line("Boiling point", Temperature(res.Component.BoilingTemperature, u)))
	s.WriteString(line("Specific gravity", fmt.Sprintf("%.4f", res.Component.SpecificGravity)))

	a := res.Alkane
	s.WriteString("\n" + HeaderStyle.Render("n-alkane reference") + "\n")
	s.WriteString(line("Tc°", Temperature(a.CriticalTemperature, u)))
	s.WriteString(line("α", fmt.Sprintf("%.6f", a.Alpha)))
	s.WriteString(line("Vc°", Volume(a.CriticalVolume)))
	s.WriteString(line("SG°", fmt.Sprintf("%.6f", a.SpecificGravity)))
	s.WriteString(line("Pc°", Pressure(a.CriticalPressure)))
	s.WriteString(line("MW°", fmt.Sprintf("%.3f g/mol", a.MolecularWeight)))

	c := res.Corrected
	s.WriteString("\n" + HeaderStyle.Render("Corrected") + "\n")
	s.WriteString(line("Tc", Temperature(c.CriticalTemperature, u)))
	s.WriteString(line("Vc", Volume(c.CriticalVolume)))
	s.WriteString(line("Pc", Pressure(c.CriticalPressure)))
	s.WriteString(line("MW", fmt.Sprintf("%.3f g/mol", c.MolecularWeight)))
	s.WriteString(Subtle.Render(fmt.Sprintf("fT=%+.6f  fV=%+.6f  fP=%+.6f  fM=%+.6f",
		c.Factors.Temperature, c.Factors.Volume, c.Factors.Pressure, c.Factors.MolecularWeight)) + "\n")

	ch := res.Characterization
	s.WriteString("\n" + HeaderStyle.Render("Characterization") + "\n")
	s.WriteString(line("Watson K", fmt.Sprintf("%.3f", ch.WatsonK)))
	s.WriteString(line("Acentric factor ω", fmt.Sprintf("%.4f", ch.AcentricFactor)))

	return Panel.Render(strings.TrimRight(s.String(), "\n"))
}

// Error renders err, naming the failed stage when there is one.
func Error(err error) string {
	var se *twu.StageError
	if errors.As(err, &se) {
		return ErrorText.Render("✗ "+se.Stage) + "\n" + Subtle.Render(err.Error())
	}
	return ErrorText.Render("✗ " + err.Error())
}
