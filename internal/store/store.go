package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/springlab/internal/chain"
	"github.com/san-kum/springlab/internal/solve"
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
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	NumSprings int       `json:"num_springs"`
	NumMasses  int       `json:"num_masses"`
	FixTop     bool      `json:"fix_top"`
	FixBottom  bool      `json:"fix_bottom"`
	Gravity    float64   `json:"gravity"`
	CondA      float64   `json:"cond_a"`
	CondC      float64   `json:"cond_c"`
	CondAT     float64   `json:"cond_a_transpose"`
}

// Results are the solved per-element quantities of a run.
type Results struct {
	Displacements []float64 `json:"displacements"`
	Tensions      []float64 `json:"tensions"`
	Elongations   []float64 `json:"elongations"`
}

func (s *Store) Save(ch chain.Chain, gravity float64, sol *solve.Solution) (string, error) {
	// Nanosecond resolution keeps IDs unique across back-to-back
	// saves.
	runID := fmt.Sprintf("chain_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		NumSprings: ch.NumSprings(),
		NumMasses:  ch.NumMasses(),
		FixTop:     ch.FixTop,
		FixBottom:  ch.FixBottom,
		Gravity:    gravity,
		CondA:      sol.CondA,
		CondC:      sol.CondC,
		CondAT:     sol.CondAT,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "results.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"kind", "index", "value"}); err != nil {
		return "", err
	}
	for i := 0; i < sol.Displacements.Len(); i++ {
		if err := writeRow(w, "displacement", i, sol.Displacements.AtVec(i)); err != nil {
			return "", err
		}
	}
	for i := 0; i < sol.Tensions.Len(); i++ {
		if err := writeRow(w, "tension", i, sol.Tensions.AtVec(i)); err != nil {
			return "", err
		}
	}
	for i := 0; i < sol.Elongations.Len(); i++ {
		if err := writeRow(w, "elongation", i, sol.Elongations.AtVec(i)); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeRow(w *csv.Writer, kind string, idx int, val float64) error {
	return w.Write([]string{
		kind,
		strconv.Itoa(idx),
		strconv.FormatFloat(val, 'f', 6, 64),
	})
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

func (s *Store) LoadResults(runID string) (*Results, error) {
	csvPath := filepath.Join(s.baseDir, runID, "results.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &Results{}
	for i, rec := range records {
		if i == 0 || len(rec) < 3 {
			continue
		}
		val, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		switch rec[0] {
		case "displacement":
			res.Displacements = append(res.Displacements, val)
		case "tension":
			res.Tensions = append(res.Tensions, val)
		case "elongation":
			res.Elongations = append(res.Elongations, val)
		}
	}

	return res, nil
}
