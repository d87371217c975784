package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/magnon-tools/spinwave/internal/magnon"
)

type ExportData struct {
	RunMetadata
	Ksw   []float64 `json:"ksw_rad_per_m"`
	Freqs []float64 `json:"freq_hz"`
}

func ExportJSON(path string, meta RunMetadata, ksw, freqs magnon.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, meta, ksw, freqs)
}

func ExportJSONStdout(meta RunMetadata, ksw, freqs magnon.Grid) error {
	return writeJSON(os.Stdout, meta, ksw, freqs)
}

func writeJSON(w io.Writer, meta RunMetadata, ksw, freqs magnon.Grid) error {
	data := ExportData{
		RunMetadata: meta,
		Ksw:         ksw,
		Freqs:       freqs,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportCSV(path string, ksw, freqs magnon.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, ksw, freqs)
}

func WriteCSV(w io.Writer, ksw, freqs magnon.Grid) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"ksw_rad_per_m", "freq_hz"}); err != nil {
		return err
	}
	for i := range ksw {
		row := []string{
			strconv.FormatFloat(ksw[i], 'g', -1, 64),
			strconv.FormatFloat(freqs[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return nil
}
