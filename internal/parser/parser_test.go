package parser

import (
	"testing"

	"tsig/internal/ast"
	"tsig/internal/diag"
	"tsig/internal/lexer"
	"tsig/internal/source"
)

type parseFixture struct {
	fs      *source.FileSet
	builder *ast.Builder
	file    ast.FileID
	bag     *diag.Bag
}

func parseSrc(t *testing.T, src string) parseFixture {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(src))
	lx := lexer.New(fs.Get(fileID), lexer.Options{})
	builder := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(100)

	result := ParseFile(fs, lx, builder, Options{
		MaxErrors: 100,
		Reporter:  &diag.BagReporter{Bag: bag},
	})
	return parseFixture{fs: fs, builder: builder, file: result.File, bag: bag}
}

func (f parseFixture) decls(t *testing.T) []ast.DeclID {
	t.Helper()
	file := f.builder.Files.Get(f.file)
	if file == nil {
		t.Fatal("no file node")
	}
	return file.Decls
}

func (f parseFixture) onlyFn(t *testing.T) *ast.FnDecl {
	t.Helper()
	decls := f.decls(t)
	if len(decls) != 1 {
		t.Fatalf("want 1 decl, got %d", len(decls))
	}
	fn, ok := f.builder.Decls.Fn(decls[0])
	if !ok {
		t.Fatalf("decl is not a function")
	}
	return fn
}

func (f parseFixture) name(id source.StringID) string {
	s, _ := f.builder.Strings.Lookup(id)
	return s
}

func TestParseSimpleFunction(t *testing.T) {
	f := parseSrc(t, "function greet(name: string, count) { return; }")
	fn := f.onlyFn(t)

	if f.name(fn.Name) != "greet" {
		t.Errorf("name = %q, want greet", f.name(fn.Name))
	}
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fn.Params))
	}

	first, ok := f.builder.Pats.Ident(fn.Params[0])
	if !ok {
		t.Fatal("param 0 is not an identifier pattern")
	}
	if f.name(first.Name) != "name" || !first.Type.IsValid() {
		t.Errorf("param 0: name=%q typeValid=%v", f.name(first.Name), first.Type.IsValid())
	}
	typeSpan := f.builder.Types.Get(first.Type).Span
	if got := f.fs.SpanText(typeSpan); got != "string" {
		t.Errorf("type text = %q, want string", got)
	}

	second, ok := f.builder.Pats.Ident(fn.Params[1])
	if !ok || f.name(second.Name) != "count" || second.Type.IsValid() {
		t.Errorf("param 1: %+v", second)
	}
	if f.bag.HasErrors() {
		t.Errorf("unexpected errors: %v", f.bag.Items())
	}
}

func TestParseOptionalAndDefault(t *testing.T) {
	f := parseSrc(t, "function f(x?: number, y: string = fallback()) {}")
	fn := f.onlyFn(t)
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fn.Params))
	}

	x, ok := f.builder.Pats.Ident(fn.Params[0])
	if !ok || !x.Optional {
		t.Errorf("param 0 should be optional identifier, got %+v", x)
	}

	assign, ok := f.builder.Pats.Assign(fn.Params[1])
	if !ok {
		t.Fatal("param 1 should be an assign pattern")
	}
	if got := f.fs.SpanText(assign.Default); got != "fallback()" {
		t.Errorf("default text = %q, want fallback()", got)
	}
	y, ok := f.builder.Pats.Ident(assign.Left)
	if !ok || f.name(y.Name) != "y" || !y.Type.IsValid() {
		t.Errorf("assign target: %+v", y)
	}
}

func TestParseArrayPatternHoles(t *testing.T) {
	f := parseSrc(t, "function f([, b, , c]) {}")
	fn := f.onlyFn(t)

	arr, ok := f.builder.Pats.Array(fn.Params[0])
	if !ok {
		t.Fatal("param is not an array pattern")
	}
	if len(arr.Elems) != 4 {
		t.Fatalf("want 4 slots, got %d: %v", len(arr.Elems), arr.Elems)
	}
	if arr.Elems[0].IsValid() || arr.Elems[2].IsValid() {
		t.Errorf("slots 0 and 2 should be holes: %v", arr.Elems)
	}
	if !arr.Elems[1].IsValid() || !arr.Elems[3].IsValid() {
		t.Errorf("slots 1 and 3 should be patterns: %v", arr.Elems)
	}
}

func TestParseTrailingCommaNoHole(t *testing.T) {
	f := parseSrc(t, "function f([a, b,]) {}")
	fn := f.onlyFn(t)
	arr, ok := f.builder.Pats.Array(fn.Params[0])
	if !ok || len(arr.Elems) != 2 {
		t.Fatalf("trailing comma must not add a slot: %+v", arr)
	}
}

func TestParseObjectPattern(t *testing.T) {
	f := parseSrc(t, `function f({ a, b: c, "s-k": d, 3: e, [k()]: g, ...rest }) {}`)
	fn := f.onlyFn(t)

	obj, ok := f.builder.Pats.Object(fn.Params[0])
	if !ok {
		t.Fatal("param is not an object pattern")
	}
	if len(obj.Props) != 6 {
		t.Fatalf("want 6 props, got %d", len(obj.Props))
	}

	kinds := make([]ast.ObjPropKind, 0, 6)
	for _, propID := range obj.Props {
		kinds = append(kinds, f.builder.Props.Get(propID).Kind)
	}
	want := []ast.ObjPropKind{
		ast.ObjPropShorthand, ast.ObjPropKeyValue, ast.ObjPropKeyValue,
		ast.ObjPropKeyValue, ast.ObjPropKeyValue, ast.ObjPropRest,
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("prop %d: kind %v, want %v", i, kinds[i], want[i])
		}
	}

	stringProp := f.builder.Props.Get(obj.Props[2])
	if stringProp.Key.Kind != ast.PropNameString || f.name(stringProp.Key.Text) != "s-k" {
		t.Errorf("string key: %+v text %q", stringProp.Key, f.name(stringProp.Key.Text))
	}

	numProp := f.builder.Props.Get(obj.Props[3])
	if numProp.Key.Kind != ast.PropNameNumber || f.name(numProp.Key.Text) != "3" {
		t.Errorf("number key: %+v", numProp.Key)
	}

	computed := f.builder.Props.Get(obj.Props[4])
	if computed.Key.Kind != ast.PropNameComputed {
		t.Fatalf("computed key kind: %v", computed.Key.Kind)
	}
	if got := f.fs.SpanText(computed.Key.Span); got != "k()" {
		t.Errorf("computed key text = %q, want k()", got)
	}
}

func TestParseShorthandDefault(t *testing.T) {
	f := parseSrc(t, "function f({ a = compute() }) {}")
	fn := f.onlyFn(t)
	obj, _ := f.builder.Pats.Object(fn.Params[0])
	prop := f.builder.Props.Get(obj.Props[0])
	if prop.Kind != ast.ObjPropShorthand || !prop.HasDefault {
		t.Fatalf("want shorthand with default, got %+v", prop)
	}
	if got := f.fs.SpanText(prop.DefaultSpan); got != "compute()" {
		t.Errorf("default span text = %q, want compute()", got)
	}
}

func TestParseRestParam(t *testing.T) {
	f := parseSrc(t, "function f(a, ...rest: number[]) {}")
	fn := f.onlyFn(t)
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fn.Params))
	}
	rest, ok := f.builder.Pats.Rest(fn.Params[1])
	if !ok || !rest.Type.IsValid() {
		t.Fatalf("want typed rest pattern, got %+v", rest)
	}
	if got := f.fs.SpanText(f.builder.Types.Get(rest.Type).Span); got != "number[]" {
		t.Errorf("rest type = %q, want number[]", got)
	}
}

func TestParseRestMustBeLast(t *testing.T) {
	f := parseSrc(t, "function f(...rest, after) {}")
	found := false
	for _, d := range f.bag.Items() {
		if d.Code == diag.SynRestMustBeLast {
			found = true
		}
	}
	if !found {
		t.Errorf("expected SynRestMustBeLast, got %v", f.bag.Items())
	}
}

func TestParseGenericsAndReturnType(t *testing.T) {
	f := parseSrc(t, "function pick<T, K extends keyof T>(obj: T, key: K): T[K] { return obj[key]; }")
	fn := f.onlyFn(t)
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params, got %d", len(fn.Params))
	}
	if !fn.Return.IsValid() {
		t.Fatal("return type missing")
	}
	if got := f.fs.SpanText(f.builder.Types.Get(fn.Return).Span); got != "T[K]" {
		t.Errorf("return type = %q, want T[K]", got)
	}
}

func TestParseNestedGenericType(t *testing.T) {
	f := parseSrc(t, "function f(m: Map<string, Set<number>>) {}")
	fn := f.onlyFn(t)
	ident, _ := f.builder.Pats.Ident(fn.Params[0])
	if got := f.fs.SpanText(f.builder.Types.Get(ident.Type).Span); got != "Map<string, Set<number>>" {
		t.Errorf("type = %q", got)
	}
	if f.bag.HasErrors() {
		t.Errorf("unexpected errors: %v", f.bag.Items())
	}
}

func TestParseModifiers(t *testing.T) {
	f := parseSrc(t, "export async function go() {}\ndeclare function ambient(x: number): void;")
	decls := f.decls(t)
	if len(decls) != 2 {
		t.Fatalf("want 2 decls, got %d", len(decls))
	}
	first, _ := f.builder.Decls.Fn(decls[0])
	if !first.Exported || !first.Async || first.Ambient {
		t.Errorf("first: %+v", first)
	}
	second, _ := f.builder.Decls.Fn(decls[1])
	if !second.Ambient || second.Exported || len(second.Params) != 1 {
		t.Errorf("second: %+v", second)
	}
}

func TestParseVarDeclarators(t *testing.T) {
	f := parseSrc(t, "const { a, b } = load(), n: number = 1;")
	decls := f.decls(t)
	if len(decls) != 2 {
		t.Fatalf("want 2 declarator decls, got %d", len(decls))
	}

	first, ok := f.builder.Decls.Var(decls[0])
	if !ok || first.Keyword != ast.VarConst || !first.HasInit {
		t.Fatalf("first declarator: %+v", first)
	}
	if _, ok := f.builder.Pats.Object(first.Binding); !ok {
		t.Error("first binding should be an object pattern")
	}
	if got := f.fs.SpanText(first.Init); got != "load()" {
		t.Errorf("init text = %q, want load()", got)
	}

	second, _ := f.builder.Decls.Var(decls[1])
	ident, ok := f.builder.Pats.Ident(second.Binding)
	if !ok || f.name(ident.Name) != "n" || !ident.Type.IsValid() {
		t.Errorf("second declarator: %+v", ident)
	}
}

func TestParseSkipsUnknownTopLevel(t *testing.T) {
	f := parseSrc(t, "import x from 'y';\nclass C {}\nfunction keep() {}")
	decls := f.decls(t)
	if len(decls) != 1 {
		t.Fatalf("want 1 kept decl, got %d", len(decls))
	}
	fn, _ := f.builder.Decls.Fn(decls[0])
	if f.name(fn.Name) != "keep" {
		t.Errorf("kept decl = %q", f.name(fn.Name))
	}
	if f.bag.HasErrors() {
		t.Errorf("skipping should not be an error: %v", f.bag.Items())
	}
}

func TestParseRecoversAfterBadParam(t *testing.T) {
	f := parseSrc(t, "function bad(%%%) {}\nfunction good(a) {}")
	if !f.bag.HasErrors() {
		t.Fatal("expected errors for bad parameter")
	}
	var goodSeen bool
	for _, declID := range f.decls(t) {
		if fn, ok := f.builder.Decls.Fn(declID); ok && f.name(fn.Name) == "good" {
			goodSeen = true
		}
	}
	if !goodSeen {
		t.Error("parser failed to recover and parse the next declaration")
	}
}
