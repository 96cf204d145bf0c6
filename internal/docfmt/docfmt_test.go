package docfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"tsig/internal/diag"
	"tsig/internal/driver"
	"tsig/internal/source"
)

func TestPrettyDiagnostic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bad.ts", []byte("function f(%%%) {}\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectPattern,
		Message:  "expected binding pattern",
		Primary:  source.Span{File: fileID, Start: 11, End: 12},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	for _, want := range []string{"bad.ts:1:12:", "ERROR", "SYN2007", "expected binding pattern", "function f(%%%) {}", "^"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyWithoutFileSet(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOReadFailed,
		Message:  "failed to load file",
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, nil, PrettyOpts{})
	if !strings.Contains(buf.String(), "IO4001") {
		t.Errorf("output missing code:\n%s", buf.String())
	}
}

func TestEntriesPretty(t *testing.T) {
	entries := []driver.DocEntry{
		{Name: "f", Kind: "function", Signature: "function f(x: number)", Line: 1, Col: 1},
		{Name: "c", Kind: "variable", Signature: "const c", Line: 2, Col: 1},
	}

	var buf bytes.Buffer
	if err := EntriesPretty(&buf, "a.ts", entries, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "a.ts\n") {
		t.Errorf("missing path header:\n%s", out)
	}
	for _, want := range []string{"function f(x: number)", "const c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBuildDocumentJSON(t *testing.T) {
	res, err := driver.ExtractSource("doc.ts", []byte("function f([, b]?: T) {}"), 10)
	if err != nil {
		t.Fatal(err)
	}
	doc := BuildDocument(res)

	var buf bytes.Buffer
	if err := DocumentsJSON(&buf, []Document{doc}); err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Path    string `json:"path"`
		Entries []struct {
			Signature string `json:"signature"`
			Params    []json.RawMessage `json:"params"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Path != "doc.ts" || len(decoded.Entries) != 1 {
		t.Fatalf("decoded: %+v", decoded)
	}
	if decoded.Entries[0].Signature != "function f([, b]?: T)" {
		t.Errorf("signature = %q", decoded.Entries[0].Signature)
	}

	// вариантный тег присутствует в сериализованных дескрипторах
	if !strings.Contains(string(decoded.Entries[0].Params[0]), `"kind": "array"`) {
		t.Errorf("param JSON missing kind tag: %s", decoded.Entries[0].Params[0])
	}
}
