package twu

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestCharacterize(t *testing.T) {
	if k := WatsonK(919.34, 1.097); !scalar.EqualWithinAbs(k, 8.8638, 1e-4) {
		t.Errorf("WatsonK = %f", k)
	}

	w, err := AcentricFactor(919.34, 1381.7322, 555.6093)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(w, 0.3346, 1e-3) {
		t.Errorf("acentric factor = %f, want ~0.3346", w)
	}

	if _, err := AcentricFactor(919.34, 0, 555.6093); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestWatsonK_Ordering(t *testing.T) {
	// Lighter fractions at the same boiling point are more paraffinic.
	if WatsonK(919.34, 0.7) <= WatsonK(919.34, 1.097) {
		t.Error("expected a higher Watson K for the lighter fraction")
	}
}

func TestCharacterize_StageError(t *testing.T) {
	c := Component{BoilingTemperature: 919.34, SpecificGravity: 1.097}
	_, err := Characterize(c, CorrectedProperties{CriticalTemperature: 1381.7322, CriticalPressure: math.NaN()})

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StageError, got %v", err)
	}
	if se.Stage != StageCharacterization {
		t.Errorf("stage = %q", se.Stage)
	}
	if se.Component != c {
		t.Errorf("component = %+v", se.Component)
	}
}
