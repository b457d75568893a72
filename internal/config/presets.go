package config

import "sort"

var Presets = map[string]*Config{
	"gosper": {
		Name: "gosper", Rows: 50, Cols: 75, Generations: 600, DelayMs: 75, Kernel: "loop",
		Placements: []Placement{{Pattern: "gosper-gun", Row: 15, Col: 5}},
	},
	"twin-gosper": {
		Name: "twin-gosper", Rows: 80, Cols: 120, Generations: 1000, DelayMs: 30, Kernel: "shift",
		Placements: []Placement{
			{Pattern: "gosper-gun", Row: 10, Col: 5},
			{Pattern: "gosper-gun", Row: 10, Col: 82, FlipH: true},
		},
	},
	"glider": {
		Name: "glider", Rows: 20, Cols: 20, Generations: 80, DelayMs: 100, Kernel: "loop",
		Placements: []Placement{{Pattern: "glider", Row: 1, Col: 1}},
	},
	"blinker": {
		Name: "blinker", Rows: 5, Cols: 5, Generations: 10, DelayMs: 250, Kernel: "loop",
		Placements: []Placement{{Pattern: "blinker", Row: 1, Col: 2}},
	},
	"toad": {
		Name: "toad", Rows: 6, Cols: 6, Generations: 10, DelayMs: 250, Kernel: "loop",
		Placements: []Placement{{Pattern: "toad", Row: 2, Col: 1}},
	},
	"block-layer": {
		Name: "block-layer", Rows: 120, Cols: 160, Generations: 1000, DelayMs: 30, Kernel: "parallel",
		Placements: []Placement{{Pattern: "block-layer", Row: 60, Col: 80}},
	},
	"single-line": {
		Name: "single-line", Rows: 80, Cols: 120, Generations: 1000, DelayMs: 30, Kernel: "parallel",
		Placements: []Placement{{Pattern: "single-line", Row: 40, Col: 40}},
	},
	"random": {
		Name: "random", Rows: 60, Cols: 100, Generations: 1000, DelayMs: 50, Kernel: "shift",
		Seed: 42, Density: 0.3, StopWhenStable: true,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Placements = append([]Placement(nil), cfg.Placements...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
