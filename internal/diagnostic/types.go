package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostics holds all diagnostic information from validation and resolution.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	Severity Severity
	// Code is a stable identifier for this kind of diagnostic, e.g. "unknown_field".
	Code    string
	Message string
	// Entity names the layout entity this relates to (if any).
	Entity string
	// Column names the column this relates to (if any).
	Column string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func (d *Diagnostics) AddError(code, message, entity, column string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Column:   column,
	})
}

func (d *Diagnostics) AddWarning(code, message, entity, column string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Column:   column,
	})
}

// Merge appends the diagnostics of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Err returns the error diagnostics joined into one error, or nil.
func (d *Diagnostics) Err() error {
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
	if d.Entity != "" {
		prefix = append(prefix, "["+d.Entity+"]")
	}

	if d.Column != "" {
		prefix = append(prefix, d.Column)
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
