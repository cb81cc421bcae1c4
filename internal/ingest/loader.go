package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/ebkarlson404/StarFieldMiner/internal/decode"
	"github.com/ebkarlson404/StarFieldMiner/internal/diagnostic"
	"github.com/ebkarlson404/StarFieldMiner/internal/esm"
	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
	"github.com/ebkarlson404/StarFieldMiner/internal/record"
	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// Options configures a Loader.
type Options struct {
	// Encoding of the input files; decode.DefaultEncoding when empty.
	Encoding string
	// KeepGoing records unreadable files as error diagnostics and moves on
	// to the next file instead of stopping.
	KeepGoing bool
	Logger    *zap.Logger
}

// FileStats describes one loaded file.
type FileStats struct {
	Source   string
	Records  int
	Rejected int
	// Untyped counts registered records whose tag has no typed view.
	Untyped int
}

// Loader feeds export files into a registry.
type Loader struct {
	factory   *esm.Factory
	encoding  string
	keepGoing bool
	log       *zap.Logger
	diags     diagnostic.Diagnostics
}

// NewLoader creates a loader that registers into reg.
func NewLoader(reg *record.Registry, opts Options) *Loader {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Loader{
		factory:   esm.NewFactory(reg),
		encoding:  opts.Encoding,
		keepGoing: opts.KeepGoing,
		log:       log.With(zap.String("component", "ingest")),
	}
}

// Diagnostics returns the findings collected so far.
func (l *Loader) Diagnostics() diagnostic.Diagnostics {
	return l.diags
}

// LoadFiles loads every path in order. A file that cannot be read or decoded
// is recorded as an error diagnostic; loading stops there unless the loader
// keeps going, in which case the combined error is returned at the end.
func (l *Loader) LoadFiles(paths []string) ([]FileStats, error) {
	stats := make([]FileStats, 0, len(paths))

	for _, path := range paths {
		st, err := l.LoadFile(path)
		if err != nil {
			l.fail(path, err)

			if !l.keepGoing {
				return stats, err
			}

			continue
		}

		stats = append(stats, st)
	}

	return stats, l.diags.Error()
}

func (l *Loader) fail(path string, err error) {
	l.log.Error("cannot load input", zap.String("source", path), zap.Error(err))

	var diags diagnostic.Diagnostics
	diags.AddError(diagnostic.CodeUnreadableFile, err.Error(), "", "")
	diags.WithSource(path)
	l.diags.Merge(diags)
}

// LoadFile opens and loads one file.
func (l *Loader) LoadFile(path string) (FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileStats{Source: path}, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load decodes r and registers every record it contains. source names the
// input in logs and diagnostics.
func (l *Loader) Load(r io.Reader, source string) (FileStats, error) {
	st := FileStats{Source: source}
	log := l.log.With(zap.String("source", source))

	log.Info("loading records", zap.String("encoding", l.encodingName()))

	root, err := decode.DecodeReader(r, l.encoding)
	if err != nil {
		return st, fmt.Errorf("failed to decode %s: %w", source, err)
	}

	if !root.IsObject() {
		return st, fmt.Errorf("%s: %w", source,
			esmerr.Malformed(esmerr.CategoryMalformedFile, "", "an object of record objects, got "+root.Kind().String()))
	}

	var diags diagnostic.Diagnostics

	for _, key := range root.Keys() {
		node := root.Field(key)

		rec, err := l.factory.Create(node)
		if err != nil {
			st.Rejected++
			l.reject(log, &diags, recordLabel(key, node), err)

			continue
		}

		st.Records++

		if !esm.Known(rec.Tag()) {
			st.Untyped++
		}

		log.Debug("registered record", zap.Stringer("record", rec))
	}

	diags.WithSource(source)
	l.diags.Merge(diags)

	log.Info("records loaded",
		zap.Int("records", st.Records),
		zap.Int("rejected", st.Rejected),
		zap.Int("untyped", st.Untyped),
	)

	return st, nil
}

// recordLabel names a record that may not have a usable header: its key in
// the export, with the editor id when that differs.
func recordLabel(key string, node *value.Node) string {
	edid := node.Field(esm.FieldEditorID).TextOr("")
	if edid == "" || edid == key {
		return key
	}

	return key + " (" + edid + ")"
}

func (l *Loader) reject(log *zap.Logger, diags *diagnostic.Diagnostics, label string, err error) {
	err = esmerr.InRecord(err, label)
	log.Warn("skipping record", zap.String("record", label), zap.Error(err))

	if errors.Is(err, record.ErrDuplicateFormID) {
		diags.AddWarning(diagnostic.CodeDuplicateFormID, err.Error(), label, "")
		return
	}

	field := ""

	var mde *esmerr.MalformedDataError
	if errors.As(err, &mde) {
		field = mde.Field
	}

	diags.AddWarning(diagnostic.CodeMalformedRecord, err.Error(), label, field)
}

func (l *Loader) encodingName() string {
	if l.encoding == "" {
		return decode.DefaultEncoding
	}

	return l.encoding
}
