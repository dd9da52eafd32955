package units

import (
	"math"
	"testing"
)

func TestTemperatureRoundTrip(t *testing.T) {
	tests := []struct {
		unit    Temperature
		v       float64
		rankine float64
	}{
		{Rankine, 919.34, 919.34},
		{Kelvin, 273.15, 491.67},
		{Celsius, 0, 491.67},
		{Celsius, 100, 671.67},
		{Fahrenheit, 32, 491.67},
		{Fahrenheit, 459.67, 919.34},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			got := ToRankine(tt.v, tt.unit)
			if math.Abs(got-tt.rankine) > 1e-9 {
				t.Errorf("ToRankine(%g, %s) = %g, want %g", tt.v, tt.unit, got, tt.rankine)
			}
			back := FromRankine(got, tt.unit)
			if math.Abs(back-tt.v) > 1e-9 {
				t.Errorf("FromRankine round trip = %g, want %g", back, tt.v)
			}
		})
	}
}

func TestParseTemperature(t *testing.T) {
	tests := []struct {
		in      string
		want    Temperature
		wantErr bool
	}{
		{"R", Rankine, false},
		{"k", Kelvin, false},
		{"°C", Celsius, false},
		{" f ", Fahrenheit, false},
		{"", Rankine, false},
		{"X", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTemperature(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTemperature(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTemperature(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSymbol(t *testing.T) {
	if Kelvin.Symbol() != "K" || Rankine.Symbol() != "°R" {
		t.Errorf("unexpected symbols %q %q", Kelvin.Symbol(), Rankine.Symbol())
	}
}

func TestVolumeAndPressure(t *testing.T) {
	if got := CubicFtPerLbmolToCm3PerMol(1); math.Abs(got-62.42796) > 1e-4 {
		t.Errorf("1 ft³/lbmol = %g cm³/mol", got)
	}
	if got := PsiaToBar(14.695949); math.Abs(got-1.01325) > 1e-5 {
		t.Errorf("1 atm = %g bar", got)
	}
	if got := PsiaToKPa(1); math.Abs(got-6.894757) > 1e-6 {
		t.Errorf("1 psi = %g kPa", got)
	}
}
