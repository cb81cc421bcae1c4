// Package output renders miner rows as delimiter-separated text.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Writer writes rows separated by a single-rune delimiter. Fields holding
// the delimiter, quotes or line breaks are quoted.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
}

// NewWriter wraps w.
func NewWriter(w io.Writer, delim rune) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = delim

	return &Writer{csv: cw}
}

// Create opens path for writing, creating parent directories. An empty path
// or Stdout writes to standard output.
func Create(path string, delim rune) (*Writer, error) {
	if path == "" || path == Stdout {
		return NewWriter(os.Stdout, delim), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePerm)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}

	w := NewWriter(f, delim)
	w.closer = f

	return w, nil
}

// Write writes one row.
func (w *Writer) Write(row []string) error {
	return w.csv.Write(row)
}

// Flush writes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

// Close flushes and closes the underlying file, if any.
func (w *Writer) Close() error {
	err := w.Flush()

	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
