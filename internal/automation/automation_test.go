package automation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/experiment"
	"github.com/san-kum/lifesim/internal/storage"
)

const scenarioYAML = `name: oscillators
description: blinker then an inline toad
runs:
  - preset: blinker
    generations: 4
    save_as: blink
  - config:
      name: inline-toad
      rows: 6
      cols: 6
      generations: 2
      placements:
        - pattern: toad
          row: 2
          col: 1
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if scenario.Name != "oscillators" {
		t.Errorf("expected name oscillators, got %s", scenario.Name)
	}
	if len(scenario.Runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(scenario.Runs))
	}
	if scenario.Runs[1].Config == nil || scenario.Runs[1].Config.Rows != 6 {
		t.Error("inline config not decoded")
	}
}

func TestLoadScenario_InlineDefaults(t *testing.T) {
	body := `name: sparse
runs:
  - config:
      rows: 8
      cols: 9
`
	scenario, err := LoadScenario(writeScenario(t, body))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	cfg := scenario.Runs[0].Config
	if cfg == nil {
		t.Fatal("inline config not decoded")
	}
	if cfg.Rows != 8 || cfg.Cols != 9 {
		t.Errorf("expected 8x9, got %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Generations != config.DefaultGenerations {
		t.Errorf("expected default generations %d, got %d", config.DefaultGenerations, cfg.Generations)
	}
	if cfg.Kernel != config.DefaultKernel || cfg.DelayMs != config.DefaultDelayMs {
		t.Errorf("expected default kernel and delay, got %s/%d", cfg.Kernel, cfg.DelayMs)
	}
}

func TestLoadScenario_Empty(t *testing.T) {
	if _, err := LoadScenario(writeScenario(t, "name: nothing\n")); err == nil {
		t.Error("expected error for scenario without runs")
	}
}

func TestRunScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}

	store := storage.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	outcomes, err := RunScenario(context.Background(), scenario, experiment.NewRegistry(), store)
	if err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	if outcomes[0].Label != "blink" || outcomes[0].Result.Generations != 4 {
		t.Errorf("unexpected first outcome: %s, %d generations", outcomes[0].Label, outcomes[0].Result.Generations)
	}
	if outcomes[0].Result.Final.Population() != 3 {
		t.Errorf("blinker should keep 3 cells, got %d", outcomes[0].Result.Final.Population())
	}
	if outcomes[1].Label != "inline-toad" || outcomes[1].Result.Final.Population() != 6 {
		t.Errorf("unexpected second outcome: %s with %d cells", outcomes[1].Label, outcomes[1].Result.Final.Population())
	}

	runs, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 stored runs, got %d", len(runs))
	}
}

func TestRunScenario_UnknownPreset(t *testing.T) {
	scenario := &Scenario{Name: "bad", Runs: []Run{{Preset: "nope"}}}
	if _, err := RunScenario(context.Background(), scenario, experiment.NewRegistry(), nil); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &DensitySweep{
		Rows: 16, Cols: 16,
		MinDensity: 0, MaxDensity: 0.5,
		NumSteps:    3,
		Generations: 20,
		Seed:        7,
	}

	results, err := RunSweep(context.Background(), sweep, experiment.NewRegistry())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Density != 0 || results[0].FinalPopulation != 0 || !results[0].Stable {
		t.Errorf("empty soup should be stable and empty: %+v", results[0])
	}
	if results[2].Density != 0.5 || results[2].PeakPopulation == 0 {
		t.Errorf("dense soup should start populated: %+v", results[2])
	}
}

func TestRunTrials(t *testing.T) {
	trials := &SoupTrials{
		Rows: 12, Cols: 12,
		Density:     0.3,
		NumTrials:   4,
		Generations: 30,
		Seed:        100,
		Kernel:      "shift",
	}

	results, err := RunTrials(context.Background(), trials, experiment.NewRegistry())
	if err != nil {
		t.Fatalf("trials failed: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Seed != 100+int64(i) {
			t.Errorf("trial %d: expected seed %d, got %d", i, 100+i, r.Seed)
		}
	}

	stable, active := TrialStats(results)
	if stable+active != 4 {
		t.Errorf("stats should cover all trials, got %d+%d", stable, active)
	}
}

func TestRunTrials_NegativeCount(t *testing.T) {
	trials := &SoupTrials{Rows: 8, Cols: 8, Density: 0.3, NumTrials: -1, Generations: 5}

	results, err := RunTrials(context.Background(), trials, experiment.NewRegistry())
	if err == nil {
		t.Fatal("expected error for negative trial count")
	}
	if results != nil {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestRunTrials_Zero(t *testing.T) {
	trials := &SoupTrials{Rows: 8, Cols: 8, Density: 0.3, Generations: 5}

	results, err := RunTrials(context.Background(), trials, experiment.NewRegistry())
	if err != nil {
		t.Fatalf("zero trials should succeed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
