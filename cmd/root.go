package cmd

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/schedsim/schedsim/sim"
)

var (
	// CLI flags
	configPath   string // Path to the simulator configuration file (.cnf or .yaml)
	logLevel     string // Log verbosity level for diagnostics
	printMetrics bool   // Print the aggregate run report after the simulation
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for OS process scheduling",
}

// runCmd executes the simulation described by the configuration file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := sim.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("Unable to load configuration: %v", err)
		}
		programs, err := sim.LoadMetaData(cfg)
		if err != nil {
			logrus.Fatalf("Unable to load meta-data: %v", err)
		}
		logrus.Infof("Starting simulation of %d programs under %s scheduling",
			len(programs), cfg.SchedulingCode)

		dests, cleanup, err := logDestinations(cfg)
		if err != nil {
			logrus.Fatalf("Unable to open log destination: %v", err)
		}
		defer cleanup()

		s := sim.NewSimulator(cfg, programs, dests...)
		if err := s.Run(); err != nil {
			logrus.Fatalf("Simulation aborted: %v", err)
		}
		if printMetrics {
			s.Metrics.Print()
		}
		logrus.Info("Simulation complete.")
	},
}

// logDestinations opens the event log writers the configuration asks for.
// The returned cleanup closes the log file, if one was opened.
func logDestinations(cfg *sim.Config) ([]io.Writer, func(), error) {
	var dests []io.Writer
	cleanup := func() {}

	if cfg.LogLocation == sim.LogToScreen || cfg.LogLocation == sim.LogToBoth {
		dests = append(dests, os.Stdout)
	}
	if cfg.LogLocation == sim.LogToFile || cfg.LogLocation == sim.LogToBoth {
		f, err := os.Create(cfg.LogFilePath)
		if err != nil {
			return nil, cleanup, err
		}
		dests = append(dests, f)
		cleanup = func() { f.Close() }
	}
	return dests, cleanup, nil
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to the simulator configuration file (.cnf or .yaml)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().BoolVar(&printMetrics, "metrics", true, "Print the aggregate run report after the simulation")
	runCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(runCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
