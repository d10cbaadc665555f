package loxerrors

import (
	"fmt"
	"io"
)

// ErrReporter receives diagnostics as they are detected.
type ErrReporter interface {
	// ReportError reports a syntax error (scanner or parser).
	ReportError(err error)
	// ReportRuntimeError reports an error raised while interpreting.
	ReportRuntimeError(err error)
}

// Diagnostics is the diagnostics context shared by the scanner, parser and
// interpreter of one run. It writes every report to w and keeps two
// independent sticky flags which only Reset clears.
//
// Not thread safe.
type Diagnostics struct {
	w               io.Writer
	hadError        bool
	hadRuntimeError bool
}

func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{w: w}
}

// ReportError implements ErrReporter.
func (d *Diagnostics) ReportError(err error) {
	d.hadError = true
	DefaultReportError(d.w, err)
}

// ReportRuntimeError implements ErrReporter.
func (d *Diagnostics) ReportRuntimeError(err error) {
	d.hadRuntimeError = true
	DefaultReportError(d.w, err)
}

// HadError reports whether a syntax error was reported since the last Reset.
func (d *Diagnostics) HadError() bool {
	return d.hadError
}

// HadRuntimeError reports whether a runtime error was reported since the last Reset.
func (d *Diagnostics) HadRuntimeError() bool {
	return d.hadRuntimeError
}

// Reset clears both flags. The REPL calls it once per input line.
func (d *Diagnostics) Reset() {
	d.hadError = false
	d.hadRuntimeError = false
}

// DefaultReportError writes a single diagnostic line.
func DefaultReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR %v\n", err)
}

var _ ErrReporter = (*Diagnostics)(nil)
