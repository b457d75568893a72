package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lifesim/internal/analysis"
	"github.com/san-kum/lifesim/internal/automation"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/experiment"
	"github.com/san-kum/lifesim/internal/export"
	"github.com/san-kum/lifesim/internal/gui"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/patterns"
	"github.com/san-kum/lifesim/internal/storage"
	"github.com/san-kum/lifesim/internal/tui"
	"github.com/san-kum/lifesim/internal/viz"
	"github.com/spf13/cobra"
)

func setup(cfg *config.Config, withMetrics bool) (*experiment.Experiment, error) {
	registry := experiment.NewRegistry()
	exp := experiment.New(cfg)
	metrics := registry.DefaultMetrics()
	if !withMetrics {
		metrics = nil
	}
	if err := exp.Setup(registry, metrics); err != nil {
		return nil, err
	}
	return exp, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := setup(cfg, true)
	if err != nil {
		return err
	}
	s := exp.GetSimulator()

	var tracker *analysis.CycleTracker
	if detectCycle {
		tracker = analysis.NewCycleTracker()
		tracker.Observe(s.Grid())
		s.AddObserver(tracker)
	}

	if watch {
		renderer := tui.NewLiveRenderer(presetName(cfg, args), frameRate, time.Duration(cfg.DelayMs)*time.Millisecond)
		s.AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %s (%dx%d, %s kernel)...\n", presetName(cfg, args), cfg.Rows, cfg.Cols, cfg.Kernel)
	start := time.Now()
	result, err := exp.Run(ctx)
	if err != nil && result == nil {
		return err
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Printf("stopped early: %v\n", err)
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("generations: %d\n", result.Generations)
	fmt.Printf("population: %d\n", result.Final.Population())
	if result.Stable {
		fmt.Println("reached a still state")
	}

	if tracker != nil {
		if start, period, ok := tracker.Cycle(); ok {
			fmt.Printf("cycle: generation %d repeats every %d\n", start, period)
		} else {
			fmt.Println("cycle: none detected")
		}
	}

	fmt.Println("\nmetrics:")
	for _, name := range sortedKeys(result.Metrics) {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	if noSave {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, saveErr := st.Save(presetName(cfg, args), cfg.Seed, cfg.Kernel, result)
	if saveErr != nil {
		return saveErr
	}
	fmt.Printf("\nrun id: %s\n", runID)
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := setup(cfg, false)
	if err != nil {
		return err
	}

	return viz.Run(exp.GetSimulator(), viz.Options{
		Name:        presetName(cfg, args),
		Delay:       time.Duration(cfg.DelayMs) * time.Millisecond,
		Generations: cfg.Generations,
		Running:     !livePaused,
		GIFPath:     gifPath,
	})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := setup(cfg, false)
	if err != nil {
		return err
	}

	return gui.Run(exp.GetSimulator(), gui.Options{
		Title:       "lifesim - " + presetName(cfg, args),
		Scale:       guiScale,
		Delay:       time.Duration(cfg.DelayMs) * time.Millisecond,
		Generations: cfg.Generations,
		Running:     !guiPaused,
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tGRID\tGENS\tKERNEL\tSTABLE")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%d\t%s\t%v\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rows, run.Cols,
			run.Generations,
			run.Kernel,
			run.Stable,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	g, err := st.LoadGrid(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id:\t%s\n", meta.ID)
	fmt.Fprintf(w, "preset:\t%s\n", meta.Preset)
	fmt.Fprintf(w, "grid:\t%dx%d\n", meta.Rows, meta.Cols)
	fmt.Fprintf(w, "generations:\t%d\n", meta.Generations)
	fmt.Fprintf(w, "kernel:\t%s\n", meta.Kernel)
	fmt.Fprintf(w, "seed:\t%d\n", meta.Seed)
	fmt.Fprintf(w, "population:\t%d\n", g.Population())
	for _, name := range sortedKeys(meta.Metrics) {
		fmt.Fprintf(w, "%s:\t%.4f\n", name, meta.Metrics[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(g.String())
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 2 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(samples))

	births := make([]float64, len(samples))
	deaths := make([]float64, len(samples))
	for i, smp := range samples {
		births[i] = float64(smp.Births)
		deaths[i] = float64(smp.Deaths)
	}

	fmt.Println(asciigraph.Plot(storage.Populations(samples),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("population"),
	))
	fmt.Println()
	fmt.Println(asciigraph.PlotMany([][]float64{births, deaths},
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("births (green) / deaths (red)"),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(samples) < 4 {
		return fmt.Errorf("need at least 4 generations, have %d", len(samples))
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("preset: %s\n\n", meta.Preset)

	pop := storage.Populations(samples)
	mean := 0.0
	for _, v := range pop {
		mean += v
	}
	mean /= float64(len(pop))
	centered := make([]float64, len(pop))
	for i, v := range pop {
		centered[i] = v - mean
	}

	ps := analysis.PowerSpectrum(centered)
	plotData := ps
	if len(ps) >= 8 {
		plotData = ps[:len(ps)/2]
	}
	fmt.Println(asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (population)"),
	))
	fmt.Println()

	if period, ok := analysis.DominantPeriod(pop); ok {
		fmt.Printf("dominant period: %.2f generations\n", period)
	} else {
		fmt.Println("dominant period: none (flat population)")
	}
	fmt.Printf("mean population: %.2f\n", mean)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population", "births", "deaths"}); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.Itoa(smp.Generation),
			strconv.Itoa(smp.Population),
			strconv.Itoa(smp.Births),
			strconv.Itoa(smp.Deaths),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath != "" {
		if err := st.ExportJSON(outPath, args[0]); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
		return nil
	}
	return st.ExportJSONStdout(args[0])
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	var svg string
	if svgChart {
		samples, err := st.LoadHistory(args[0])
		if err != nil {
			return err
		}
		svg = export.SeriesToSVG(storage.Populations(samples), 800, 300, "#00ff88")
		if svg == "" {
			return fmt.Errorf("not enough samples to plot")
		}
	} else {
		g, err := st.LoadGrid(args[0])
		if err != nil {
			return err
		}
		svg = export.GridToSVG(g, life.Neighbors(g), svgScale)
	}

	if outPath == "" {
		fmt.Println(svg)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func benchKernels(cmd *cobra.Command, args []string) error {
	name := defaultPreset
	if len(args) > 0 {
		name = args[0]
	}
	base := config.GetPreset(name)
	if base == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
	}

	registry := experiment.NewRegistry()
	seedGrid, err := experiment.Seed(base)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s (%dx%d, %d generations)\n\n", name, base.Rows, base.Cols, benchGens)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL\tGENS\tTIME\tGENS/SEC\tCELLS/SEC\tFINAL POP")
	var reference *life.Grid
	for _, kname := range registry.ListKernels() {
		step, err := registry.GetKernel(kname, workers)
		if err != nil {
			return err
		}

		g := seedGrid
		start := time.Now()
		for i := 0; i < benchGens; i++ {
			g = step(g)
		}
		elapsed := time.Since(start)

		if reference == nil {
			reference = g
		} else if !reference.Equal(g) {
			return fmt.Errorf("kernel %s disagrees with %s", kname, registry.ListKernels()[0])
		}

		secs := max(elapsed.Seconds(), 1e-9)
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%.3g\t%d\n",
			kname, benchGens, elapsed, float64(benchGens)/secs, float64(benchGens*g.Len())/secs, g.Population())
	}
	return w.Flush()
}

func showPatterns(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		p, err := patterns.Get(args[0])
		if err != nil {
			return fmt.Errorf("%w (available: %v)", err, patterns.Names())
		}
		h, w := p.Bounds()
		g, err := life.FromAlive(h, w, p.Cells)
		if err != nil {
			return err
		}
		return patterns.FormatPlaintext(os.Stdout, p.Name, g)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tCELLS\tDESCRIPTION")
	for _, name := range patterns.Names() {
		p, _ := patterns.Get(name)
		h, wd := p.Bounds()
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%s\n", p.Name, h, wd, len(p.Cells), p.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tGRID\tGENS\tDELAY\tKERNEL\tSEED")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		seeding := "random"
		if p.Density == 0 {
			seeding = "-"
			if len(p.Placements) > 0 {
				seeding = p.Placements[0].Pattern
			}
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%dms\t%s\t%s\n", name, p.Rows, p.Cols, p.Generations, p.DelayMs, p.Kernel, seeding)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	var st *storage.Store
	if !noSave {
		st = storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}
	fmt.Println()

	outcomes, err := automation.RunScenario(context.Background(), scenario, experiment.NewRegistry(), st)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\nRUN\tGENS\tPOP\tSTABLE\tID")
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s\t%d\t%d\t%v\t%s\n", o.Label, o.Result.Generations, o.Result.Final.Population(), o.Result.Stable, o.RunID)
	}
	if ferr := w.Flush(); ferr != nil {
		return ferr
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	sweep := &automation.DensitySweep{
		Rows:        rows,
		Cols:        cols,
		MinDensity:  minDens,
		MaxDensity:  maxDens,
		NumSteps:    numSteps,
		Generations: generations,
		Seed:        seed,
		Kernel:      kernel,
	}

	results, err := automation.RunSweep(context.Background(), sweep, experiment.NewRegistry())
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DENSITY\tPEAK\tFINAL\tGENS\tSTABLE")
	finals := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%.3f\t%d\t%d\t%d\t%v\n", r.Density, r.PeakPopulation, r.FinalPopulation, r.Generations, r.Stable)
		finals[i] = float64(r.FinalPopulation)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(finals) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(finals, asciigraph.Height(8), asciigraph.Caption("final population by density")))
	}
	return nil
}

func runTrials(cmd *cobra.Command, args []string) error {
	trials := &automation.SoupTrials{
		Rows:        rows,
		Cols:        cols,
		Density:     density,
		NumTrials:   numTrials,
		Generations: generations,
		Seed:        seed,
		Kernel:      kernel,
	}

	fmt.Printf("running %d soups (%dx%d, density %.2f)...\n\n", numTrials, rows, cols, density)
	results, err := automation.RunTrials(context.Background(), trials, experiment.NewRegistry())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRIAL\tSEED\tGENS\tFINAL\tSTABLE")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%v\n", r.TrialID, r.Seed, r.Generations, r.FinalPopulation, r.Stable)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	stableCount, activeCount := automation.TrialStats(results)
	fmt.Printf("\nsettled: %d  still active: %d\n", stableCount, activeCount)
	return nil
}
