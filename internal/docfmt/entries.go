package docfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tsig/internal/driver"
)

// EntriesPretty prints extracted declarations, one signature per line.
func EntriesPretty(w io.Writer, path string, entries []driver.DocEntry, opts PrettyOpts) error {
	header := path
	if opts.Color {
		header = color.New(color.Bold, color.Underline).Sprint(path)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, e := range entries {
		sig := e.Signature
		kind := e.Kind
		if opts.Color {
			sig = color.New(color.FgGreen).Sprint(sig)
			kind = color.New(color.FgCyan).Sprint(kind)
		}
		if _, err := fmt.Fprintf(w, "  %4d:%-3d %-10s %s\n", e.Line, e.Col, kind, sig); err != nil {
			return err
		}
	}
	return nil
}

// Document — сериализуемый результат экстракции одного файла.
type Document struct {
	Path        string            `json:"path"`
	Entries     []driver.DocEntry `json:"entries"`
	Diagnostics []DiagnosticJSON  `json:"diagnostics,omitempty"`
	Cached      bool              `json:"cached,omitempty"`
}

type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Line     uint32 `json:"line,omitempty"`
	Col      uint32 `json:"col,omitempty"`
}

// BuildDocument собирает Document из результата экстракции.
func BuildDocument(res *driver.ExtractResult) Document {
	doc := Document{Path: res.Path, Entries: res.Entries}
	if res.Entries == nil {
		doc.Entries = []driver.DocEntry{}
	}
	if res.Bag != nil {
		for _, d := range res.Bag.Items() {
			dj := DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Message:  d.Message,
			}
			if res.FileSet != nil {
				start, _ := res.FileSet.Resolve(d.Primary)
				dj.Line, dj.Col = start.Line, start.Col
			}
			doc.Diagnostics = append(doc.Diagnostics, dj)
		}
	}
	return doc
}

// DocumentsJSON prints documents as indented JSON.
func DocumentsJSON(w io.Writer, docs []Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(docs) == 1 {
		return enc.Encode(docs[0])
	}
	return enc.Encode(docs)
}
