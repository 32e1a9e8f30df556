// Package storage persists solver runs and comparison sweeps under a data
// directory, one subdirectory per run with JSON metadata and CSV series.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/experiment"
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
	ID         string             `json:"id"`
	Kind       string             `json:"kind"` // "solve" or "compare"
	Scheme     string             `json:"scheme,omitempty"`
	Theta      float64            `json:"theta"`
	Thetas     []float64          `json:"thetas,omitempty"`
	Initial    float64            `json:"initial"`
	Decay      float64            `json:"decay"`
	Dt         float64            `json:"dt"`
	TRequested float64            `json:"t_requested"`
	TActual    float64            `json:"t_actual"`
	Nt         int                `json:"nt"`
	ErrorL2    float64            `json:"error_l2,omitempty"`
	Errors     map[string]float64 `json:"errors,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Save persists a single solve as metadata.json plus a series.csv with
// time, numerical and exact columns.
func (s *Store) Save(p decay.Params, res *decay.Result, errL2 float64) (string, error) {
	runID := fmt.Sprintf("decay_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Kind:       "solve",
		Scheme:     decay.SchemeName(res.Theta),
		Theta:      res.Theta,
		Initial:    p.I,
		Decay:      p.A,
		Dt:         res.Dt,
		TRequested: res.TRequested,
		TActual:    res.TActual,
		Nt:         res.Nt,
		ErrorL2:    errL2,
		Timestamp:  time.Now(),
	}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	exact := decay.Sample(res.T, p.I, p.A)
	header := []string{"time", "u", "exact"}
	rows := make([][]string, len(res.T))
	for n := range res.T {
		rows[n] = []string{
			formatFloat(res.T[n]),
			formatFloat(res.U[n]),
			formatFloat(exact[n]),
		}
	}
	if err := writeCSV(filepath.Join(runDir, "series.csv"), header, rows); err != nil {
		return "", err
	}

	return runID, nil
}

// SaveDataset persists a comparison sweep: shared-mesh numerical columns in
// series.csv, the fine exact overlay in exact.csv.
func (s *Store) SaveDataset(ds *experiment.Dataset) (string, error) {
	runID := fmt.Sprintf("compare_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	first := ds.Runs[ds.Thetas[0]].Result
	meta := RunMetadata{
		ID:         runID,
		Kind:       "compare",
		Thetas:     ds.Thetas,
		Initial:    ds.Params.I,
		Decay:      ds.Params.A,
		Dt:         first.Dt,
		TRequested: first.TRequested,
		TActual:    first.TActual,
		Nt:         first.Nt,
		Errors:     make(map[string]float64, len(ds.Thetas)),
		Timestamp:  time.Now(),
	}
	for _, theta := range ds.Thetas {
		meta.Errors[formatFloat(theta)] = ds.Runs[theta].L2
	}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	// All runs share the same mesh; one time column serves every theta.
	header := []string{"time"}
	for _, theta := range ds.Thetas {
		header = append(header, "theta_"+formatFloat(theta))
	}
	rows := make([][]string, len(first.T))
	for n := range first.T {
		row := []string{formatFloat(first.T[n])}
		for _, theta := range ds.Thetas {
			row = append(row, formatFloat(ds.Runs[theta].Result.U[n]))
		}
		rows[n] = row
	}
	if err := writeCSV(filepath.Join(runDir, "series.csv"), header, rows); err != nil {
		return "", err
	}

	exactRows := make([][]string, len(ds.ExactT))
	for n := range ds.ExactT {
		exactRows[n] = []string{formatFloat(ds.ExactT[n]), formatFloat(ds.ExactU[n])}
	}
	if err := writeCSV(filepath.Join(runDir, "exact.csv"), []string{"time", "exact"}, exactRows); err != nil {
		return "", err
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads series.csv back as a time column plus one value column
// per remaining header field.
func (s *Store) LoadSeries(runID string) ([]string, []float64, [][]float64, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("storage: run %s has no series data", runID)
	}

	header := records[0]
	cols := len(header) - 1
	times := make([]float64, 0, len(records)-1)
	values := make([][]float64, cols)
	for i := range values {
		values[i] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != len(header) {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for i := 0; i < cols; i++ {
			v, err := strconv.ParseFloat(record[i+1], 64)
			if err != nil {
				v = 0
			}
			values[i] = append(values[i], v)
		}
	}

	return header[1:], times, values, nil
}

func writeMetadata(runDir string, meta RunMetadata) error {
	file, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
