package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/ishacse88/Advance-disk-scheduling/sim"
)

var (
	// CLI flags shared by the run and compare commands
	requestTracks    []int   // Track requests in submission order
	initialHead      int     // Initial head position
	maxTrack         int     // Highest valid track number
	direction        string  // Initial sweep direction for SCAN/C-SCAN
	seekTimePerTrack float64 // Time units per track of head travel
	scenarioPath     string  // Optional YAML scenario file overriding the flags above
	logLevel         string  // Log verbosity level
	showPlot         bool    // Render the head path as a text chart

	// run-only flag
	algorithm string // Scheduling algorithm to simulate
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "disksched",
	Short: "Simulator for classical disk-scheduling algorithms",
	Long:  "Simulates FCFS, SSTF, SCAN, and C-SCAN disk-arm scheduling over a list of track requests and reports seek cost and throughput.",
}

// runCmd simulates a single algorithm using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling algorithm and print its schedule and metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setUpLogging()

		geom, rs, runner := buildInput()
		kind, err := sim.ParseStrategyKind(algorithm)
		if err != nil {
			logrus.Fatalf("Invalid algorithm: %v", err)
		}

		res, err := runner.Run(geom, rs, kind)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printSchedule(res)
		res.Metrics.Print()
		if showPlot {
			printHeadPathChart(os.Stdout, res.Schedule, geom)
		}
	},
}

// setUpLogging configures logrus from the --log flag.
func setUpLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildInput assembles the simulation input from either a scenario file or
// the shared CLI flags. Invalid input is fatal; validation errors from the
// engine are reported verbatim.
func buildInput() (sim.DiskGeometry, sim.RequestSet, sim.Runner) {
	if scenarioPath != "" {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Failed to load scenario: %v", err)
		}
		geom, rs, err := sc.Build()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		return geom, rs, sim.Runner{SeekTimePerTrack: sc.SeekTimePerTrack}
	}

	geom, err := sim.NewDiskGeometry(maxTrack)
	if err != nil {
		logrus.Fatalf("Invalid geometry: %v", err)
	}
	dir, err := sim.ParseDirection(direction)
	if err != nil {
		logrus.Fatalf("Invalid direction: %v", err)
	}
	tracks := make([]sim.Track, len(requestTracks))
	for i, t := range requestTracks {
		tracks[i] = sim.Track(t)
	}
	rs, err := sim.NewRequestSet(geom, sim.Track(initialHead), dir, tracks)
	if err != nil {
		logrus.Fatalf("Invalid request set: %v", err)
	}
	return geom, rs, sim.Runner{SeekTimePerTrack: seekTimePerTrack}
}

// addInputFlags registers the simulation input flags on a command. The run
// and compare commands take identical input; only one command executes per
// invocation, so they can share the backing variables.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&requestTracks, "requests", []int{82, 170, 43, 140, 24, 16, 190}, "Comma-separated track requests in submission order")
	cmd.Flags().IntVar(&initialHead, "head", 50, "Initial head position")
	cmd.Flags().IntVar(&maxTrack, "max-track", 199, "Highest valid track number")
	cmd.Flags().StringVar(&direction, "direction", "up", "Initial sweep direction for SCAN/C-SCAN (up, down)")
	cmd.Flags().Float64Var(&seekTimePerTrack, "seek-time-per-track", 1.0, "Time units per track of head travel")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides the input flags)")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().BoolVar(&showPlot, "plot", false, "Render the head path as a text chart")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	addInputFlags(runCmd)
	runCmd.Flags().StringVar(&algorithm, "algorithm", "sstf", "Scheduling algorithm (fcfs, sstf, scan, cscan)")

	rootCmd.AddCommand(runCmd)
}
