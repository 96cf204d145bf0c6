package docfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tsig/internal/diag"
	"tsig/internal/source"
)

// Pretty форматирует диагностики. Ожидается bag.Sort() заранее.
// Формат каждой записи:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <строка исходника>
//	    ^~~~ подчёркивание по span
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}

	if fs == nil || d.Primary.Empty() && d.Primary.File == 0 && d.Primary.Start == 0 {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	// подчёркивание: ширина считается по дисплейной ширине префикса
	prefix := line
	if int(start.Col)-1 <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if opts.Color {
		marker = severityColor(d.Severity).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", pad, marker)

	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "    note: %s:%d:%d: %s\n", fs.Get(note.Span.File).Path, noteStart.Line, noteStart.Col, note.Msg)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
