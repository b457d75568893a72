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

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	gridFile       = "final.cells"
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
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Rows        int                `json:"rows"`
	Cols        int                `json:"cols"`
	Generations int                `json:"generations"`
	Stable      bool               `json:"stable"`
	Kernel      string             `json:"kernel"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Sample is one row of the population history.
type Sample struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

// Save writes a run directory and returns its id.
func (s *Store) Save(preset string, seed int64, kernel string, result *sim.Result) (runID string, err error) {
	if preset == "" {
		preset = "custom"
	}
	now := time.Now()
	runID = fmt.Sprintf("%s_%d", preset, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(runDir)
		}
	}()

	meta := RunMetadata{
		ID:          runID,
		Preset:      preset,
		Timestamp:   now,
		Seed:        seed,
		Generations: result.Generations,
		Stable:      result.Stable,
		Kernel:      kernel,
		Metrics:     result.Metrics,
	}
	if result.Final != nil {
		meta.Rows = result.Final.Rows()
		meta.Cols = result.Final.Cols()
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeHistory(filepath.Join(runDir, populationFile), result); err != nil {
		return "", err
	}
	if result.Final != nil {
		if err := writeGrid(filepath.Join(runDir, gridFile), runID, result.Final); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeHistory(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"generation", "population", "births", "deaths"}); err != nil {
		return err
	}

	for i := range result.Population {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(result.Population[i]),
			strconv.Itoa(at(result.Births, i)),
			strconv.Itoa(at(result.Deaths, i)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func at(xs []int, i int) int {
	if i < len(xs) {
		return xs[i]
	}
	return 0
}

func writeGrid(path, name string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return patterns.FormatPlaintext(f, name, g)
}

// List returns every readable run, oldest first.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadHistory(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		var vals [4]int
		ok := true
		for j := range vals {
			v, err := strconv.Atoi(record[j])
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		samples = append(samples, Sample{Generation: vals[0], Population: vals[1], Births: vals[2], Deaths: vals[3]})
	}

	return samples, nil
}

// LoadGrid reads the final grid of a run.
func (s *Store) LoadGrid(runID string) (*life.Grid, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, gridFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return patterns.GridFromPlaintext(f, meta.Rows, meta.Cols)
}

// Populations extracts the population column.
func Populations(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Population)
	}
	return out
}
