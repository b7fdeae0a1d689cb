package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/edakit/cnlfmt/pkg/pipeline"
	"github.com/edakit/cnlfmt/pkg/settings"
)

const settingsFile = ".cnlfmt.toml"

// settingsDefaults seeds a fresh settings file.
func settingsDefaults() map[string]map[string]string {
	return map[string]map[string]string{
		"configuration": {"netlist_file": ""},
		"info":          {"description": "Configuration file for the Cadence Allegro netlist formatter"},
	}
}

// settingsPath places the settings file in the user's home directory,
// falling back to the working directory.
func settingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return settingsFile
	}
	return filepath.Join(home, settingsFile)
}

var formatOutput string

var formatCmd = &cobra.Command{
	Use:   "format [netlist]",
	Short: "Format a netlist into a human-readable report",
	Long: `Format parses a Cadence Allegro expanded netlist and writes the report to
the output path. When the netlist argument is omitted, the path remembered
from the previous run is used. An existing report at the output path is
renamed to the first free ",NN" sibling before the new one is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := settings.Load(settingsPath(), settingsDefaults())
		if err != nil {
			return err
		}

		input := store.Get("configuration", "netlist_file")
		if len(args) > 0 {
			input = args[0]
		}
		if input == "" {
			return fmt.Errorf("no netlist file given and none remembered from a previous run")
		}

		if err := pipeline.Run(input, formatOutput, newLogger()); err != nil {
			return err
		}

		store.Set("configuration", "netlist_file", input)
		if err := store.Persist(); err != nil {
			return err
		}

		workDir, _ := os.Getwd()
		printSuccess("Done: %s", time.Now().Format("15:04:05"))
		printDetail("wrote file: %s (output directory: %s)", formatOutput, workDir)
		return nil
	},
}

func init() {
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "NetList.rpt", "output report path")
	rootCmd.AddCommand(formatCmd)
}
