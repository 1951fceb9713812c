// Package history records SDK operations in a BoltDB file.
package history

import (
	"strings"
	"time"
)

// Operation represents the type of SDK operation.
type Operation string

const (
	OpInstall   Operation = "install"
	OpUninstall Operation = "uninstall"
	OpLicenses  Operation = "licenses"
)

// Entry represents a single operation in the history.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation Operation `json:"operation"`
	Family    string    `json:"family,omitempty"`  // Command the package was listed under
	Package   string    `json:"package,omitempty"` // Package identifier, empty for licenses
	Outcome   string    `json:"outcome"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewEntry creates a new history entry.
func NewEntry(op Operation, family, pkg string) *Entry {
	now := time.Now()
	return &Entry{
		ID:        now.Format("20060102150405.000000"),
		Timestamp: now,
		Operation: op,
		Family:    family,
		Package:   pkg,
	}
}

// MarkOutcome records the classified outcome of the operation.
func (e *Entry) MarkOutcome(outcome string, success bool) {
	e.Outcome = outcome
	e.Success = success
}

// MarkFailed marks the entry as failed with an error message.
func (e *Entry) MarkFailed(err error) {
	e.Success = false
	e.Outcome = "error"
	if err != nil {
		e.Error = err.Error()
	}
}

// ReverseOp returns the operation that would undo this one, or "".
func (e *Entry) ReverseOp() Operation {
	switch e.Operation {
	case OpInstall:
		return OpUninstall
	case OpUninstall:
		return OpInstall
	}
	return ""
}

// FormatTime returns a human-readable timestamp.
func (e *Entry) FormatTime() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}

// Summary returns a one-line description of the operation.
func (e *Entry) Summary() string {
	parts := []string{e.FormatTime(), string(e.Operation)}
	if e.Package != "" {
		parts = append(parts, e.Package)
	}
	if e.Family != "" {
		parts = append(parts, "["+e.Family+"]")
	}

	outcome := e.Outcome
	if outcome == "" {
		outcome = "pending"
	}
	parts = append(parts, "("+outcome+")")

	return strings.Join(parts, " ")
}
