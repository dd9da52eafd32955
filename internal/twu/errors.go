package twu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a non-positive or non-finite input, or an
	// intermediate value that left the finite range before the solver ran.
	ErrInvalidInput = errors.New("twu: invalid input")

	// ErrConvergence indicates the molecular weight solver failed.
	ErrConvergence = errors.New("twu: molecular weight did not converge")

	// ErrSingularCorrection indicates a (1-2f) or (1-x) denominator of zero.
	ErrSingularCorrection = errors.New("twu: singular correction")
)

const (
	StageInput                    = "input"
	StageAlkaneTemperature        = "alkane critical temperature"
	StageAlkaneVolume             = "alkane critical volume"
	StageAlkanePressure           = "alkane critical pressure"
	StageAlkaneMolecularWeight    = "alkane molecular weight"
	StageCorrectedTemperature     = "corrected critical temperature"
	StageCorrectedVolume          = "corrected critical volume"
	StageCorrectedPressure        = "corrected critical pressure"
	StageCorrectedMolecularWeight = "corrected molecular weight"
	StageCharacterization         = "characterization"
)

// StageError records which pipeline stage failed for which component.
type StageError struct {
	Stage     string
	Component Component
	Wrapped   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s (tb=%g, sg=%g): %v",
		e.Stage, e.Component.BoilingTemperature, e.Component.SpecificGravity, e.Wrapped)
}

func (e *StageError) Unwrap() error {
	return e.Wrapped
}

func stageErr(stage string, c Component, err error) error {
	return &StageError{Stage: stage, Component: c, Wrapped: err}
}
