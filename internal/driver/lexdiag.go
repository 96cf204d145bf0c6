package driver

import (
	"tsig/internal/diag"
	"tsig/internal/lexer"
	"tsig/internal/source"
)

// ReporterAdapter связывает строковые kind'ы лексера с diag-кодами.
// Лексер не зависит от diag, поэтому склейка живёт в драйвере.
type ReporterAdapter struct {
	Bag *diag.Bag
}

type lexReporter struct {
	bag *diag.Bag
}

func (r *lexReporter) Report(kind string, span source.Span, msg string) {
	if r.bag == nil {
		return
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LookupLexCode(kind),
		Message:  msg,
		Primary:  span,
	})
}

func (a *ReporterAdapter) Reporter() lexer.Reporter {
	return &lexReporter{bag: a.Bag}
}
