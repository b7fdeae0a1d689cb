package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cnlfmt",
	Short: "cnlfmt - Cadence Allegro netlist formatter",
	Long: `cnlfmt converts Cadence Allegro expanded netlists (pstxnet.dat) into a
human-readable report and answers connectivity queries against them.

Examples:
  cnlfmt format pstxnet.dat            # Write NetList.rpt
  cnlfmt format -o board.rpt           # Reuse the last netlist path
  cnlfmt info pstxnet.dat              # Show netlist summary
  cnlfmt info pstxnet.dat --refdes R1  # Trace every pin of R1`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("%v", err)
	}
	return err
}

// newLogger builds the logger handed to the parser and report writer. Debug
// level requires --verbose.
func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
