// Package store persists computed dispersion curves under a data
// directory, one subdirectory per run with metadata.json and curve.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Timestamp time.Time `json:"timestamp"`
	Ms        float64   `json:"ms"`
	Thickness float64   `json:"thickness"`
	Aex       float64   `json:"aex"`
	ModeNo    int       `json:"mode_no"`
	Heff      float64   `json:"heff"`
	Config    string    `json:"config"`
	Pinned    bool      `json:"pinned"`
	Points    int       `json:"points"`
}

func (s *Store) Save(meta RunMetadata, ksw, freqs magnon.Grid) (string, error) {
	if len(ksw) != len(freqs) {
		return "", fmt.Errorf("store: grid/frequency length mismatch: %d vs %d", len(ksw), len(freqs))
	}

	runID := fmt.Sprintf("%s_%d", meta.Model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Points = len(ksw)

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "curve.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"ksw_rad_per_m", "freq_hz"}); err != nil {
		return "", err
	}
	for i := range ksw {
		row := []string{
			strconv.FormatFloat(ksw[i], 'g', -1, 64),
			strconv.FormatFloat(freqs[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadCurve(runID string) (ksw, freqs magnon.Grid, err error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "curve.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return magnon.Grid{}, magnon.Grid{}, nil
	}

	ksw = make(magnon.Grid, 0, len(records)-1)
	freqs = make(magnon.Grid, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		k, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		f, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		ksw = append(ksw, k)
		freqs = append(freqs, f)
	}

	return ksw, freqs, nil
}
