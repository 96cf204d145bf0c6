package driver

import (
	"errors"
	"strings"

	"fortio.org/safecast"

	"tsig/internal/ast"
	"tsig/internal/diag"
	"tsig/internal/docmodel"
	"tsig/internal/lexer"
	"tsig/internal/parser"
	"tsig/internal/source"
)

// DocEntry — одна задокументированная декларация: дерево дескрипторов
// плюс отрендеренная сигнатура.
type DocEntry struct {
	Name      string                `json:"name"`
	Kind      string                `json:"kind"` // function | variable
	Keyword   string                `json:"keyword,omitempty"`
	Async     bool                  `json:"async,omitempty"`
	Ambient   bool                  `json:"ambient,omitempty"`
	Exported  bool                  `json:"exported,omitempty"`
	Params    []*docmodel.ParamDef  `json:"params,omitempty"`
	Binding   *docmodel.ParamDef    `json:"binding,omitempty"`
	ReturnType string               `json:"returnType,omitempty"`
	Signature string                `json:"signature"`
	Line      uint32                `json:"line"`
	Col       uint32                `json:"col"`
}

// RenderSignature восстанавливает сигнатуру из дерева дескрипторов.
// Детерминированна: запись после JSON-раундтрипа рендерится так же.
func (e *DocEntry) RenderSignature() string {
	if e.Kind == "variable" {
		if e.Binding == nil {
			return e.Keyword
		}
		return e.Keyword + " " + e.Binding.String()
	}

	var sig strings.Builder
	if e.Ambient {
		sig.WriteString("declare ")
	}
	if e.Async {
		sig.WriteString("async ")
	}
	sig.WriteString("function ")
	sig.WriteString(e.Name)
	sig.WriteByte('(')
	sig.WriteString(docmodel.RenderParams(e.Params))
	sig.WriteByte(')')
	if e.ReturnType != "" {
		sig.WriteString(": ")
		sig.WriteString(e.ReturnType)
	}
	return sig.String()
}

type ExtractResult struct {
	Path    string
	FileSet *source.FileSet
	Entries []DocEntry
	Bag     *diag.Bag
}

// Extract прогоняет один файл через полный конвейер:
// загрузка -> лексер -> парсер -> конвертер дескрипторов.
func Extract(path string, maxDiagnostics int) (*ExtractResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return extractLoaded(fs, fileID, path, maxDiagnostics)
}

// ExtractSource извлекает из содержимого в памяти (stdin, тесты).
func ExtractSource(name string, content []byte, maxDiagnostics int) (*ExtractResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return extractLoaded(fs, fileID, name, maxDiagnostics)
}

func extractLoaded(fs *source.FileSet, fileID source.FileID, path string, maxDiagnostics int) (*ExtractResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter: (&ReporterAdapter{Bag: bag}).Reporter(),
	})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}
	result := parser.ParseFile(fs, lx, builder, parser.Options{
		MaxErrors: maxErrors,
		Reporter:  &diag.BagReporter{Bag: bag},
	})

	entries := collectEntries(fs, builder, result.File, bag)
	bag.Sort()

	return &ExtractResult{
		Path:    path,
		FileSet: fs,
		Entries: entries,
		Bag:     bag,
	}, nil
}

// collectEntries конвертирует каждую декларацию файла. Сломанная декларация
// деградирует в диагностику, остальные продолжают обрабатываться.
func collectEntries(fs *source.FileSet, b *ast.Builder, fileID ast.FileID, bag *diag.Bag) []DocEntry {
	resolver := &docmodel.SpanTypeResolver{Types: b.Types, Src: fs}
	conv := docmodel.NewConverter(b, resolver, fs)

	file := b.Files.Get(fileID)
	if file == nil {
		return nil
	}

	entries := make([]DocEntry, 0, len(file.Decls))
	for _, declID := range file.Decls {
		decl := b.Decls.Get(declID)
		if decl == nil {
			continue
		}
		switch decl.Kind {
		case ast.DeclFn:
			if entry, ok := fnEntry(fs, b, conv, declID, bag); ok {
				entries = append(entries, entry)
			}
		case ast.DeclVar:
			if entry, ok := varEntry(fs, b, conv, declID, bag); ok {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}

func fnEntry(fs *source.FileSet, b *ast.Builder, conv *docmodel.Converter, declID ast.DeclID, bag *diag.Bag) (DocEntry, bool) {
	decl := b.Decls.Get(declID)
	fn, ok := b.Decls.Fn(declID)
	if !ok {
		return DocEntry{}, false
	}

	params := make([]*docmodel.ParamDef, 0, len(fn.Params))
	for _, patID := range fn.Params {
		var (
			def *docmodel.ParamDef
			err error
		)
		if fn.Ambient {
			// в ambient-сигнатуре дефолты нелегальны
			def, err = conv.ConvertFnTypeParam(patID)
		} else {
			def, err = conv.ConvertPattern(patID)
		}
		if err != nil {
			reportBadPattern(bag, err, fn.Ambient)
			return DocEntry{}, false
		}
		params = append(params, def)
	}

	name, _ := b.Strings.Lookup(fn.Name)
	retType := ""
	if fn.Return.IsValid() {
		if ref := conv.Types.ResolveType(fn.Return); ref != nil {
			retType = ref.Repr
		}
	}

	start, _ := fs.Resolve(decl.Span)
	entry := DocEntry{
		Name:       name,
		Kind:       "function",
		Async:      fn.Async,
		Ambient:    fn.Ambient,
		Exported:   fn.Exported,
		Params:     params,
		ReturnType: retType,
		Line:       start.Line,
		Col:        start.Col,
	}
	entry.Signature = entry.RenderSignature()
	return entry, true
}

func varEntry(fs *source.FileSet, b *ast.Builder, conv *docmodel.Converter, declID ast.DeclID, bag *diag.Bag) (DocEntry, bool) {
	decl := b.Decls.Get(declID)
	v, ok := b.Decls.Var(declID)
	if !ok {
		return DocEntry{}, false
	}

	binding, err := conv.ConvertPattern(v.Binding)
	if err != nil {
		reportBadPattern(bag, err, false)
		return DocEntry{}, false
	}

	name := ""
	if binding.Kind == docmodel.ParamIdentifier {
		name = binding.Name
	}

	start, _ := fs.Resolve(decl.Span)
	entry := DocEntry{
		Name:     name,
		Kind:     "variable",
		Keyword:  v.Keyword.String(),
		Exported: v.Exported,
		Binding:  binding,
		Line:     start.Line,
		Col:      start.Col,
	}
	entry.Signature = entry.RenderSignature()
	return entry, true
}

func reportBadPattern(bag *diag.Bag, err error, ambient bool) {
	var bad *docmodel.BadPatternError
	if !errors.As(err, &bad) {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.DocBadPatternKind,
			Message:  err.Error(),
		})
		return
	}
	code := diag.DocBadPatternKind
	if ambient && bad.Kind == ast.PatAssign {
		code = diag.DocDefaultInFnType
	}
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  err.Error(),
		Primary:  bad.Span,
	})
}
