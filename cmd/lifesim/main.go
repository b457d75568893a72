package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/lifesim/internal/config"
)

const defaultPreset = "gosper"

var (
	dataDir string
	// Config file and grid overrides
	configFile  string
	rows        int
	cols        int
	generations int
	kernel      string
	workers     int
	seed        int64
	density     float64
	stable      bool
	delayMs     int
	// Run options
	watch       bool
	frameRate   int
	detectCycle bool
	noSave      bool
	// Viewer options
	livePaused bool
	guiPaused  bool
	guiScale   int
	gifPath    string
	// Export options
	outPath  string
	svgScale int
	svgChart bool
	// Bench and batch options
	benchGens int
	numSteps  int
	numTrials int
	minDens   float64
	maxDens   float64
)

// main registers the lifesim commands and starts the live view when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "lifesim",
		Short: "toroidal game of life lab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, []string{defaultPreset})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".lifesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run simulation and store the result",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addGridFlags(runCmd)
	runCmd.Flags().BoolVar(&watch, "watch", false, "print generations to the terminal while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 0, "max frames per second with --watch (0 = every generation)")
	runCmd.Flags().BoolVar(&detectCycle, "detect-cycle", false, "report the first repeated generation")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run simulation in the terminal UI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().BoolVar(&livePaused, "paused", false, "start stopped (space to start)")
	liveCmd.Flags().StringVar(&gifPath, "gif", "life.gif", "output path for GIF recording")

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "run simulation in a window (requires -tags ebiten)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addGridFlags(guiCmd)
	guiCmd.Flags().BoolVar(&guiPaused, "paused", true, "start stopped (click or space to start)")
	guiCmd.Flags().IntVar(&guiScale, "scale", 10, "pixels per cell")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata and final grid",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot population, births and deaths",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "population frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export population history to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export full run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export final grid or population chart to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgScale, "scale", 8, "pixels per cell")
	exportSVGCmd.Flags().BoolVar(&svgChart, "chart", false, "plot population instead of the final grid")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "benchmark kernels",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchKernels,
	}
	benchCmd.Flags().IntVar(&benchGens, "generations", 200, "generations per kernel")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "parallel kernel workers (0 = GOMAXPROCS)")

	patternsCmd := &cobra.Command{
		Use:   "patterns [name]",
		Short: "list built-in patterns or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPatterns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a batch of simulations from YAML",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep random soup density",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addSoupFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&numSteps, "steps", 10, "number of densities")
	sweepCmd.Flags().Float64Var(&minDens, "min", 0.05, "minimum density")
	sweepCmd.Flags().Float64Var(&maxDens, "max", 0.6, "maximum density")

	trialsCmd := &cobra.Command{
		Use:   "trials",
		Short: "run independently seeded soups concurrently",
		Args:  cobra.NoArgs,
		RunE:  runTrials,
	}
	addSoupFlags(trialsCmd)
	trialsCmd.Flags().IntVar(&numTrials, "trials", 8, "number of trials")
	trialsCmd.Flags().Float64Var(&density, "density", 0.3, "initial density")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, listCmd, showCmd, plotCmd, analyzeCmd,
		exportCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, benchCmd, patternsCmd,
		presetsCmd, scenarioCmd, sweepCmd, trialsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&rows, "rows", 0, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 0, "grid columns")
	cmd.Flags().IntVar(&generations, "generations", 0, "generations to run")
	cmd.Flags().StringVar(&kernel, "kernel", "", "step kernel ("+strings.Join(config.Kernels, ", ")+")")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel kernel workers (0 = GOMAXPROCS)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random fill seed")
	cmd.Flags().Float64Var(&density, "density", 0, "random fill density")
	cmd.Flags().BoolVar(&stable, "stable", false, "stop when a generation has no births or deaths")
	cmd.Flags().IntVar(&delayMs, "delay", 0, "milliseconds between generations")
}

func addSoupFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rows, "rows", 64, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 64, "grid columns")
	cmd.Flags().IntVar(&generations, "generations", 500, "max generations per soup")
	cmd.Flags().Int64Var(&seed, "seed", 1, "first seed")
	cmd.Flags().StringVar(&kernel, "kernel", "shift", "step kernel ("+strings.Join(config.Kernels, ", ")+")")
}
