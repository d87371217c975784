package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

func testMeta() RunMetadata {
	return RunMetadata{
		Model:     "kalinikos-slavin",
		Ms:        1.4e5,
		Thickness: 2e-8,
		Aex:       3.5e-12,
		Heff:      8e4,
		Config:    "MSSW",
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	ksw := magnon.Grid{1e6, 1e7, 1e8}
	freqs := magnon.Grid{4.7e9, 5.0e9, 1.9e10}

	runID, err := st.Save(testMeta(), ksw, freqs)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(runID, "kalinikos-slavin_") {
		t.Errorf("run id %q should start with model name", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Model != "kalinikos-slavin" || meta.Points != 3 || meta.Heff != 8e4 {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	gotK, gotF, err := st.LoadCurve(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(gotK) != 3 || len(gotF) != 3 {
		t.Fatalf("expected 3 points, got %d/%d", len(gotK), len(gotF))
	}
	for i := range ksw {
		if gotK[i] != ksw[i] || gotF[i] != freqs[i] {
			t.Errorf("point %d: (%v, %v) != (%v, %v)", i, gotK[i], gotF[i], ksw[i], freqs[i])
		}
	}
}

func TestStore_SaveLengthMismatch(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Save(testMeta(), magnon.Grid{1, 2}, magnon.Grid{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestStore_List(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), magnon.Grid{1e7}, magnon.Grid{5e9}); err != nil {
		t.Fatal(err)
	}
	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
}

func TestStore_ListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty list, got %d", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.json")
	if err := ExportJSON(path, testMeta(), magnon.Grid{1e7}, magnon.Grid{5e9}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out ExportData
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if len(out.Freqs) != 1 || out.Freqs[0] != 5e9 {
		t.Errorf("exported frequencies wrong: %v", out.Freqs)
	}
	if out.Config != "MSSW" {
		t.Errorf("exported config = %q, want MSSW", out.Config)
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, magnon.Grid{1e7}, magnon.Grid{5e9}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "ksw_rad_per_m,freq_hz\n") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "1e+07") || !strings.Contains(out, "5e+09") {
		t.Errorf("missing data row: %q", out)
	}
}
