package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/twucrit/internal/twu"
	"github.com/xuri/excelize/v2"
)

// ResultHeader is the column layout of CSV and XLSX results. Temperatures
// are °R, volumes ft³/lbmol, pressures psia.
var ResultHeader = []string{
	"name", "tb", "sg",
	"tc_alkane", "alpha", "vc_alkane", "sg_alkane", "pc_alkane", "mw_alkane",
	"ft", "fv", "fp", "fm",
	"tc", "vc", "pc", "mw",
	"watson_k", "omega",
	"error",
}

const resultSheet = "Results"

func resultValues(o Outcome) []float64 {
	a, c, ch := o.Result.Alkane, o.Result.Corrected, o.Result.Characterization
	return []float64{
		a.CriticalTemperature, a.Alpha, a.CriticalVolume, a.SpecificGravity, a.CriticalPressure, a.MolecularWeight,
		c.Factors.Temperature, c.Factors.Volume, c.Factors.Pressure, c.Factors.MolecularWeight,
		c.CriticalTemperature, c.CriticalVolume, c.CriticalPressure, c.MolecularWeight,
		ch.WatsonK, ch.AcentricFactor,
	}
}

func setResultValues(o *Outcome, v []float64) {
	a, c, ch := &o.Result.Alkane, &o.Result.Corrected, &o.Result.Characterization
	a.BoilingTemperature = o.Item.Tb
	a.CriticalTemperature, a.Alpha, a.CriticalVolume, a.SpecificGravity, a.CriticalPressure, a.MolecularWeight =
		v[0], v[1], v[2], v[3], v[4], v[5]
	c.Factors.Temperature, c.Factors.Volume, c.Factors.Pressure, c.Factors.MolecularWeight = v[6], v[7], v[8], v[9]
	c.CriticalTemperature, c.CriticalVolume, c.CriticalPressure, c.MolecularWeight = v[10], v[11], v[12], v[13]
	ch.WatsonK, ch.AcentricFactor = v[14], v[15]
	o.Result.Component = o.Item.Component()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Record flattens o into a ResultHeader row. Failed items leave the
// property columns empty.
func Record(o Outcome) []string {
	rec := []string{o.Item.Name, formatFloat(o.Item.Tb), formatFloat(o.Item.SG)}
	for _, v := range resultValues(o) {
		if o.Failed() {
			rec = append(rec, "")
			continue
		}
		rec = append(rec, formatFloat(v))
	}
	msg := ""
	if o.Failed() {
		msg = o.Err.Error()
	}
	return append(rec, msg)
}

func WriteCSV(w io.Writer, outcomes []Outcome) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ResultHeader); err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := cw.Write(Record(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadResultsCSV parses what WriteCSV wrote. Errors come back as plain
// messages; their sentinel identity is lost.
func ReadResultsCSV(r io.Reader) ([]Outcome, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if len(rows[0]) != len(ResultHeader) {
		return nil, fmt.Errorf("%w: expected %d result columns, got %d", ErrMissingColumn, len(ResultHeader), len(rows[0]))
	}

	outcomes := make([]Outcome, 0, len(rows)-1)
	for i, rec := range rows[1:] {
		o, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func parseRecord(rec []string) (Outcome, error) {
	var o Outcome
	o.Item.Name = rec[0]

	var err error
	if o.Item.Tb, err = strconv.ParseFloat(rec[1], 64); err != nil {
		return o, err
	}
	if o.Item.SG, err = strconv.ParseFloat(rec[2], 64); err != nil {
		return o, err
	}

	if msg := rec[len(rec)-1]; msg != "" {
		o.Err = errors.New(msg)
		return o, nil
	}

	vals := make([]float64, 0, len(rec)-4)
	for _, s := range rec[3 : len(rec)-1] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return o, err
		}
		vals = append(vals, v)
	}
	setResultValues(&o, vals)
	return o, nil
}

// WriteXLSX writes outcomes to a single-sheet workbook.
func WriteXLSX(w io.Writer, outcomes []Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultSheet); err != nil {
		return err
	}

	header := make([]any, len(ResultHeader))
	for i, h := range ResultHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(resultSheet, "A1", &header); err != nil {
		return err
	}

	for i, o := range outcomes {
		row := []any{o.Item.Name, o.Item.Tb, o.Item.SG}
		for _, v := range resultValues(o) {
			if o.Failed() {
				row = append(row, nil)
				continue
			}
			row = append(row, v)
		}
		if o.Failed() {
			row = append(row, o.Err.Error())
		} else {
			row = append(row, nil)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// Results returns the successful results of outcomes, in order.
func Results(outcomes []Outcome) []twu.Result {
	out := make([]twu.Result, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.Failed() {
			out = append(out, o.Result)
		}
	}
	return out
}
