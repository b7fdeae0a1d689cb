// Package pipeline wires the netlist parser, formatter and report writer
// into a single non-interactive entry point.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/edakit/cnlfmt/pkg/allegro"
	"github.com/edakit/cnlfmt/pkg/report"
)

// Run parses the netlist at inputPath and writes the formatted report to
// outputPath, backing up any previous report there. logger may be nil.
func Run(inputPath, outputPath string, logger *log.Logger) error {
	doc, err := allegro.ParseFile(inputPath, allegro.Options{Logger: logger})
	if err != nil {
		return err
	}

	w := &report.Writer{Logger: logger}
	return w.Write(outputPath, []byte(doc.Report(time.Now())))
}
