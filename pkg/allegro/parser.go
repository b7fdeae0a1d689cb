// Package allegro parses the Cadence Allegro expanded netlist text format
// (pstxnet.dat) into a normalized net table and answers connectivity queries
// over it.
package allegro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Default resource limits for a parse.
const (
	// DefaultMaxFileSize bounds memory use against malformed or malicious
	// inputs: larger files are rejected before any line is read.
	DefaultMaxFileSize = 100 * 1024 * 1024

	// DefaultMaxParseErrors is the recoverable-error ceiling; reaching it
	// aborts the parse.
	DefaultMaxParseErrors = 50
)

// Options configure a parse. The zero value selects the defaults above and a
// discarding logger.
type Options struct {
	MaxFileSize    int64
	MaxParseErrors int
	Logger         *log.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxFileSize <= 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
	if o.MaxParseErrors <= 0 {
		o.MaxParseErrors = DefaultMaxParseErrors
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// ParseFile reads and parses the netlist at filename. The file size is
// checked against Options.MaxFileSize before the file is opened.
func ParseFile(filename string, opts Options) (*Document, error) {
	opts = opts.withDefaults()

	fi, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if fi.Size() > opts.MaxFileSize {
		sizeErr := &SizeExceededError{Size: fi.Size(), Max: opts.MaxFileSize}
		opts.Logger.Error(sizeErr.Error())
		return nil, sizeErr
	}
	opts.Logger.Infof("file size: %.2f MB", float64(fi.Size())/(1024*1024))

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file, filename, opts)
}

// Parse reads a netlist from r. source labels the input in reports and
// diagnostics. Recoverable per-line errors are logged and counted; the parse
// only fails once Options.MaxParseErrors is reached or on a read error.
// Empty input yields an empty net table, not an error.
func Parse(r io.Reader, source string, opts Options) (*Document, error) {
	opts = opts.withDefaults()

	doc := &Document{Source: source, logger: opts.Logger}
	st := newParseState()
	errCount := 0

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r\n")
		if err := st.step(doc, line); err != nil {
			errCount++
			opts.Logger.Warnf("error parsing netlist data (error #%d): %v", errCount, err)
			if errCount >= opts.MaxParseErrors {
				opts.Logger.Errorf("%v (%d errors)", ErrTooManyErrors, errCount)
				return nil, fmt.Errorf("%w (%d errors)", ErrTooManyErrors, errCount)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read netlist: %w", err)
	}

	if errCount > 0 {
		opts.Logger.Warnf("parsing completed with %d errors, results may be incomplete", errCount)
	}

	// A net still open here was never terminated by END. and is dropped.

	sort.SliceStable(doc.Nets, func(i, j int) bool {
		return doc.Nets[i].Name < doc.Nets[j].Name
	})

	if st.headerLines < headerLineCount {
		opts.Logger.Warn("file appears to be incomplete or not a valid Cadence netlist (header incomplete)")
	}
	if doc.Version == "" || doc.Date == "" || doc.Time == "" {
		opts.Logger.Warn("could not parse version/date/time from header, file may not be a valid Cadence netlist")
	}

	doc.buildIndexes()
	return doc, nil
}
