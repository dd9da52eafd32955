package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/twucrit/internal/batch"
	"github.com/san-kum/twucrit/internal/config"
	"github.com/san-kum/twucrit/internal/twu"
)

func sampleOutcomes(t *testing.T) []batch.Outcome {
	t.Helper()
	est := twu.NewEstimator()
	items := []batch.Item{
		{Name: "naphtha", Tb: 600, SG: 0.7},
		{Name: "bad", Tb: 0, SG: 0.7},
		{Name: "reformate", Tb: 919.34, SG: 1.097},
	}

	out := make([]batch.Outcome, len(items))
	for i, it := range items {
		out[i].Item = it
		out[i].Result, out[i].Err = est.Estimate(it.Component())
	}
	return out
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Solver.Method = "secant"
	outcomes := sampleOutcomes(t)

	runID, err := st.Save("test", cfg, outcomes)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Label != "test" {
		t.Errorf("expected label 'test', got '%s'", meta.Label)
	}
	if meta.Solver != "secant" {
		t.Errorf("expected solver secant, got %s", meta.Solver)
	}
	if meta.Items != 3 || meta.Failed != 1 {
		t.Errorf("expected 3 items with 1 failure, got %d/%d", meta.Items, meta.Failed)
	}

	wantMean := (outcomes[0].Result.Corrected.CriticalTemperature + outcomes[2].Result.Corrected.CriticalTemperature) / 2
	if got := meta.Metrics["mean_tc"]; math.Abs(got-wantMean) > 1e-9 {
		t.Errorf("expected mean_tc %f, got %f", wantMean, got)
	}

	results, err := st.LoadResults(runID)
	if err != nil {
		t.Fatalf("load results failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[2].Result != outcomes[2].Result {
		t.Errorf("reformate result changed on reload:\n%+v\n%+v", results[2].Result, outcomes[2].Result)
	}
	if !results[1].Failed() {
		t.Error("expected the bad item to stay failed")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	cfg := config.DefaultConfig()
	first, err := st.Save("a", cfg, sampleOutcomes(t))
	if err != nil {
		t.Fatal(err)
	}
	second, err := st.Save("b", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	// stray files and broken runs are skipped
	if err := os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "broken"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("expected oldest first, got %s, %s", runs[0].ID, runs[1].ID)
	}
	if len(runs[1].Metrics) != 0 {
		t.Errorf("empty run should have no metrics, got %v", runs[1].Metrics)
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreLoad_Unknown(t *testing.T) {
	if _, err := New(t.TempDir()).Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportOutcomes(t *testing.T) {
	records := ExportOutcomes(sampleOutcomes(t))

	var buf bytes.Buffer
	if err := WriteJSON(&buf, records); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 3 {
		t.Fatalf("expected 3 records, got %d", len(decoded))
	}
	if _, ok := decoded[1]["error"]; !ok {
		t.Error("failed record should carry an error")
	}
	if _, ok := decoded[1]["result"]; ok {
		t.Error("failed record should omit the result")
	}
	if decoded[2]["name"] != "reformate" {
		t.Errorf("unexpected name %v", decoded[2]["name"])
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := ExportJSON(path, ExportOutcomes(sampleOutcomes(t))); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("expected a non-empty file, err=%v", err)
	}
}
