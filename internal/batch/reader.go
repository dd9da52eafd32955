package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("batch: unsupported input format")
	ErrMissingColumn     = errors.New("batch: missing column")
	ErrEmptyInput        = errors.New("batch: no fractions in input")
)

// File is the YAML input layout.
type File struct {
	Fractions []Item `yaml:"fractions"`
}

// ReadFile reads items from a .yaml, .yml, .csv or .xlsx file.
func ReadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ReadYAML(f)
	case ".csv":
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func ReadYAML(r io.Reader) ([]Item, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, err
	}
	if len(file.Fractions) == 0 {
		return nil, ErrEmptyInput
	}
	return nameItems(file.Fractions), nil
}

// ReadCSV expects a header row naming tb and sg columns; name is optional.
func ReadCSV(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

// ReadXLSX reads the first sheet with the same layout as ReadCSV.
func ReadXLSX(r io.Reader) ([]Item, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]Item, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyInput
	}

	cols := columnIndex(rows[0])
	tbCol, ok := cols["tb"]
	if !ok {
		return nil, fmt.Errorf("%w: tb", ErrMissingColumn)
	}
	sgCol, ok := cols["sg"]
	if !ok {
		return nil, fmt.Errorf("%w: sg", ErrMissingColumn)
	}
	nameCol, hasName := cols["name"]

	items := make([]Item, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2

		tb, err := cellFloat(row, tbCol)
		if err != nil {
			return nil, fmt.Errorf("row %d: tb: %w", line, err)
		}
		sg, err := cellFloat(row, sgCol)
		if err != nil {
			return nil, fmt.Errorf("row %d: sg: %w", line, err)
		}

		it := Item{Tb: tb, SG: sg}
		if hasName && nameCol < len(row) {
			it.Name = strings.TrimSpace(row[nameCol])
		}
		items = append(items, it)
	}

	if len(items) == 0 {
		return nil, ErrEmptyInput
	}
	return nameItems(items), nil
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func cellFloat(row []string, col int) (float64, error) {
	if col >= len(row) {
		return 0, errors.New("missing value")
	}
	return strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func nameItems(items []Item) []Item {
	for i := range items {
		if items[i].Name == "" {
			items[i].Name = fmt.Sprintf("fraction-%d", i+1)
		}
	}
	return items
}
