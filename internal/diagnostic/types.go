package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ebkarlson404/StarFieldMiner/internal/common"
)

// Diagnostic codes.
const (
	CodeMalformedRecord       = "malformed_record"
	CodeDuplicateFormID       = "duplicate_form_id"
	CodeSeedSkipped           = "seed_skipped"
	CodeUnrecognizedCondition = "unrecognized_condition"
	CodeDefaultApplied        = "default_applied"
	CodeUnreadableFile        = "unreadable_file"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code    string
	Message string
	// Record identifies the record this relates to (if any), e.g. "Laser [WEAP:0001ABCD]".
	Record string
	// Field identifies the field this relates to (if any).
	Field string
	// Source is the input file the record came from (if known).
	Source string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, record, field string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, record, field))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record, field string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, record, field))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, record, field string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, record, field))
}

func newDiagnostic(sev Severity, code, message, record, field string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	}
}

// WithSource stamps every diagnostic that has no source yet.
func (d *Diagnostics) WithSource(source string) {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for i := range list {
			if list[i].Source == "" {
				list[i].Source = source
			}
		}
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return !common.IsEmpty(d.Errors)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Count returns how many diagnostics of any severity carry code.
func (d *Diagnostics) Count(code string) int {
	n := 0

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// Len returns the total number of diagnostics.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Error returns a combined error from all error diagnostics, or nil if there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, d.Source+":")
	}

	if d.Record != "" {
		prefix = append(prefix, d.Record)
	}

	if d.Field != "" {
		prefix = append(prefix, "("+d.Field+")")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
