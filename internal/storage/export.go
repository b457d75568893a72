package storage

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

type ExportData struct {
	ID          string             `json:"id"`
	Preset      string             `json:"preset"`
	Kernel      string             `json:"kernel"`
	Rows        int                `json:"rows"`
	Cols        int                `json:"cols"`
	Generations int                `json:"generations"`
	Population  []int              `json:"population"`
	Births      []int              `json:"births"`
	Deaths      []int              `json:"deaths"`
	Final       []string           `json:"final"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Export gathers everything stored for a run.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	samples, err := s.LoadHistory(runID)
	if err != nil {
		return nil, err
	}
	g, err := s.LoadGrid(runID)
	if err != nil {
		return nil, err
	}

	data := &ExportData{
		ID:          meta.ID,
		Preset:      meta.Preset,
		Kernel:      meta.Kernel,
		Rows:        meta.Rows,
		Cols:        meta.Cols,
		Generations: meta.Generations,
		Population:  make([]int, len(samples)),
		Births:      make([]int, len(samples)),
		Deaths:      make([]int, len(samples)),
		Final:       finalRows(g),
		Metrics:     meta.Metrics,
	}
	for i, smp := range samples {
		data.Population[i] = smp.Population
		data.Births[i] = smp.Births
		data.Deaths[i] = smp.Deaths
	}
	return data, nil
}

func (s *Store) ExportJSON(path, runID string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.exportTo(file, runID)
}

func (s *Store) ExportJSONStdout(runID string) error {
	return s.exportTo(os.Stdout, runID)
}

func (s *Store) exportTo(w io.Writer, runID string) error {
	data, err := s.Export(runID)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// finalRows renders the grid as one plaintext string per row.
func finalRows(g *life.Grid) []string {
	if g.Rows() == 0 {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
}
