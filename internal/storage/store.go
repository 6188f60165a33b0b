package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/mathkit/internal/numeric"
	"github.com/san-kum/mathkit/internal/solver"
)

// Store persists evaluation and solve runs under a base directory, one
// subdirectory per run holding metadata.json plus a CSV data file.
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
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Name      string             `json:"name"`
	Timestamp time.Time          `json:"timestamp"`
	From      float64            `json:"from,omitempty"`
	To        float64            `json:"to,omitempty"`
	Samples   int                `json:"samples,omitempty"`
	Tol       float64            `json:"tol,omitempty"`
	MaxIter   int                `json:"max_iter,omitempty"`
	Summary   map[string]float64 `json:"summary"`
}

// SaveEval stores a function sweep as metadata.json + samples.csv.
func (s *Store) SaveEval(name string, from, to float64, series numeric.Series, summary map[string]float64) (string, error) {
	runID := fmt.Sprintf("eval_%s_%d", name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "eval",
		Name:      name,
		Timestamp: time.Now(),
		From:      from,
		To:        to,
		Samples:   series.Len(),
		Summary:   summary,
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"x", "y"}); err != nil {
		return "", err
	}
	for i := range series.Xs {
		row := []string{
			strconv.FormatFloat(series.Xs[i], 'g', -1, 64),
			strconv.FormatFloat(series.Ys[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// SaveSolve stores a root-finding run as metadata.json + trace.csv.
func (s *Store) SaveSolve(name string, tol float64, maxIter int, root float64, trace []solver.Step) (string, error) {
	runID := fmt.Sprintf("solve_%s_%d", name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "solve",
		Name:      name,
		Timestamp: time.Now(),
		Tol:       tol,
		MaxIter:   maxIter,
		Summary: map[string]float64{
			"root":       root,
			"iterations": float64(len(trace)),
		},
	}
	if err := s.writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"iter", "x", "fx", "dfx", "delta"}); err != nil {
		return "", err
	}
	for _, step := range trace {
		row := []string{
			strconv.Itoa(step.Iter),
			strconv.FormatFloat(step.X, 'g', -1, 64),
			strconv.FormatFloat(step.Y, 'g', -1, 64),
			strconv.FormatFloat(step.Deriv, 'g', -1, 64),
			strconv.FormatFloat(step.Delta, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
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

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}

// LoadSamples reads back the (x, y) pairs of an eval run.
func (s *Store) LoadSamples(runID string) (numeric.Series, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return numeric.Series{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return numeric.Series{}, err
	}

	var series numeric.Series
	for i, rec := range records {
		if i == 0 || len(rec) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return numeric.Series{}, fmt.Errorf("bad sample row %d: %w", i, err)
		}
		y, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return numeric.Series{}, fmt.Errorf("bad sample row %d: %w", i, err)
		}
		series.Append(x, y)
	}

	return series, nil
}

// LoadTrace reads back the iteration record of a solve run.
func (s *Store) LoadTrace(runID string) ([]solver.Step, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	trace := make([]solver.Step, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < 5 {
			continue
		}
		iter, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("bad trace row %d: %w", i, err)
		}
		vals := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("bad trace row %d: %w", i, err)
			}
			vals[j] = v
		}
		trace = append(trace, solver.Step{Iter: iter, X: vals[0], Y: vals[1], Deriv: vals[2], Delta: vals[3]})
	}

	return trace, nil
}
