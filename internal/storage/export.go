package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/twucrit/internal/batch"
	"github.com/san-kum/twucrit/internal/twu"
)

// ExportRecord is the JSON form of one estimate.
type ExportRecord struct {
	Name   string      `json:"name,omitempty"`
	Result *twu.Result `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

func ExportOutcomes(outcomes []batch.Outcome) []ExportRecord {
	records := make([]ExportRecord, len(outcomes))
	for i, o := range outcomes {
		records[i].Name = o.Item.Name
		if o.Failed() {
			records[i].Error = o.Err.Error()
			continue
		}
		res := o.Result
		records[i].Result = &res
	}
	return records
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func ExportJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, v)
}

func ExportJSONStdout(v any) error {
	return WriteJSON(os.Stdout, v)
}
