// Package report writes formatted netlist reports to disk without destroying
// a previous report at the same path.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// backupSlots is the number of ",NN" sibling names tried before giving up.
const backupSlots = 99

// ErrBackupLimit means every ",01" through ",99" sibling of the target already
// exists. The write is aborted and the existing report left untouched.
var ErrBackupLimit = errors.New("all backup slots are occupied")

// Writer serializes report data to a target path. An existing target is
// first renamed to the first unused "<name>,NN" sibling, and data goes
// through a temporary file in the same directory, so a crash mid-write never
// corrupts or removes the previous report. The design assumes a single
// writer per target path; no locking is provided.
type Writer struct {
	Logger *log.Logger
}

func (w *Writer) logger() *log.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return log.New(io.Discard)
}

// Write stores data at path, backing up any existing file there.
func (w *Writer) Write(path string, data []byte) error {
	backup, err := w.backupExisting(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		if backup != "" {
			if rerr := os.Rename(backup, path); rerr != nil {
				w.logger().Errorf("failed to restore backup %s: %v", backup, rerr)
			}
		}
		return fmt.Errorf("failed to promote report: %w", err)
	}

	w.logger().Infof("wrote netlist report file: %s", path)
	return nil
}

// backupExisting renames path to its first unused ",NN" sibling and returns
// the backup name, or "" when path did not exist.
func (w *Writer) backupExisting(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	for i := 1; i <= backupSlots; i++ {
		candidate := fmt.Sprintf("%s,%02d", path, i)
		if _, err := os.Stat(candidate); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat %s: %w", candidate, err)
		}
		if err := os.Rename(path, candidate); err != nil {
			return "", fmt.Errorf("failed to back up existing report: %w", err)
		}
		w.logger().Infof("renamed old report to %s", candidate)
		return candidate, nil
	}

	return "", fmt.Errorf("%w for %s", ErrBackupLimit, path)
}
