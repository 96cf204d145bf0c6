package docmodel

import (
	"encoding/json"
	"errors"
	"testing"

	"tsig/internal/ast"
	"tsig/internal/source"
)

func ident(name string) *ParamDef {
	return &ParamDef{Kind: ParamIdentifier, Name: name}
}

func TestRenderIdentifier(t *testing.T) {
	tests := []struct {
		name string
		def  *ParamDef
		want string
	}{
		{"plain", ident("x"), "x"},
		{"optional", &ParamDef{Kind: ParamIdentifier, Name: "x", Optional: true}, "x?"},
		{"typed", &ParamDef{Kind: ParamIdentifier, Name: "x", Type: &TypeRef{Repr: "number"}}, "x: number"},
		{"optional typed", &ParamDef{Kind: ParamIdentifier, Name: "x", Optional: true, Type: &TypeRef{Repr: "string"}}, "x?: string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.def.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderArrayPreservesHoles(t *testing.T) {
	// [ , b] — первый слот пропущен
	def := &ParamDef{Kind: ParamArray, Elems: []*ParamDef{nil, ident("b")}}
	if got := def.String(); got != "[, b]" {
		t.Errorf("String() = %q, want %q", got, "[, b]")
	}
}

func TestRenderObjectMixedProps(t *testing.T) {
	def := &ParamDef{Kind: ParamObject, Props: []ObjPatPropDef{
		{Kind: ObjPropDefKeyValue, Key: "a", Value: ident("renamed")},
		{Kind: ObjPropDefAssign, Key: "b", HasDefault: true},
		{Kind: ObjPropDefRest, Arg: ident("rest")},
	}}
	// ключи в порядке объявления; у KeyValue видно только внешнее имя
	if got := def.String(); got != "{a, b, ...rest}" {
		t.Errorf("String() = %q, want %q", got, "{a, b, ...rest}")
	}
}

func TestRenderRestAndAssign(t *testing.T) {
	rest := &ParamDef{Kind: ParamRest, Arg: ident("xs"), Type: &TypeRef{Repr: "number[]"}}
	if got := rest.String(); got != "...xs: number[]" {
		t.Errorf("rest String() = %q, want %q", got, "...xs: number[]")
	}

	// текст дефолта не рендерится никогда
	assign := &ParamDef{
		Kind:  ParamAssign,
		Left:  &ParamDef{Kind: ParamIdentifier, Name: "x", Type: &TypeRef{Repr: "number"}},
		Right: UnsupportedDefault,
	}
	if got := assign.String(); got != "x: number" {
		t.Errorf("assign String() = %q, want %q", got, "x: number")
	}
}

func TestConvertNestedDepth(t *testing.T) {
	// { a: [b, ...c] }
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}

	identB := b.Pats.NewIdent(sp, b.Strings.Intern("b"), false, ast.NoTypeID)
	identC := b.Pats.NewIdent(sp, b.Strings.Intern("c"), false, ast.NoTypeID)
	rest := b.Pats.NewRest(sp, identC, ast.NoTypeID)
	arr := b.Pats.NewArray(sp, []ast.PatID{identB, rest}, false, ast.NoTypeID)
	key := ast.PropName{Kind: ast.PropNameIdent, Text: b.Strings.Intern("a")}
	prop := b.Props.NewKeyValue(sp, key, arr)
	obj := b.Pats.NewObject(sp, []ast.ObjPropID{prop}, false, ast.NoTypeID)

	c := NewConverter(b, nil, nil)
	def, err := c.ConvertPattern(obj)
	if err != nil {
		t.Fatalf("ConvertPattern: %v", err)
	}
	if def.Kind != ParamObject || len(def.Props) != 1 {
		t.Fatalf("want object with 1 prop, got %+v", def)
	}
	p := def.Props[0]
	if p.Kind != ObjPropDefKeyValue || p.Key != "a" {
		t.Fatalf("want keyValue 'a', got %+v", p)
	}
	inner := p.Value
	if inner.Kind != ParamArray || len(inner.Elems) != 2 {
		t.Fatalf("want array of 2, got %+v", inner)
	}
	if inner.Elems[0].Kind != ParamIdentifier || inner.Elems[0].Name != "b" {
		t.Errorf("elem 0: want identifier 'b', got %+v", inner.Elems[0])
	}
	if inner.Elems[1].Kind != ParamRest || inner.Elems[1].Arg.Name != "c" {
		t.Errorf("elem 1: want rest of 'c', got %+v", inner.Elems[1])
	}
	if got := def.String(); got != "{a}" {
		t.Errorf("String() = %q, want %q", got, "{a}")
	}
}

func TestConvertElidedArraySlots(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}

	identB := b.Pats.NewIdent(sp, b.Strings.Intern("b"), false, ast.NoTypeID)
	arr := b.Pats.NewArray(sp, []ast.PatID{ast.NoPatID, identB}, false, ast.NoTypeID)

	c := NewConverter(b, nil, nil)
	def, err := c.ConvertPattern(arr)
	if err != nil {
		t.Fatalf("ConvertPattern: %v", err)
	}
	if len(def.Elems) != 2 || def.Elems[0] != nil {
		t.Fatalf("want leading hole preserved, got %+v", def.Elems)
	}
	if got := def.String(); got != "[, b]" {
		t.Errorf("String() = %q, want %q", got, "[, b]")
	}
}

func TestConvertAssignRecordsSentinel(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{}

	target := b.Pats.NewIdent(sp, b.Strings.Intern("x"), false, ast.NoTypeID)
	assign := b.Pats.NewAssign(sp, target, sp, ast.NoTypeID)

	c := NewConverter(b, nil, nil)
	def, err := c.ConvertPattern(assign)
	if err != nil {
		t.Fatalf("ConvertPattern: %v", err)
	}
	if def.Right != UnsupportedDefault {
		t.Errorf("Right = %q, want %q", def.Right, UnsupportedDefault)
	}
	if got := def.String(); got != "x" {
		t.Errorf("String() = %q, want %q", got, "x")
	}
}

func TestConvertFnTypeParamRejectsAssign(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	sp := source.Span{Start: 4, End: 9}

	target := b.Pats.NewIdent(sp, b.Strings.Intern("x"), false, ast.NoTypeID)
	assign := b.Pats.NewAssign(sp, target, sp, ast.NoTypeID)

	c := NewConverter(b, nil, nil)
	if _, err := c.ConvertFnTypeParam(target); err != nil {
		t.Fatalf("identifier should be legal: %v", err)
	}

	_, err := c.ConvertFnTypeParam(assign)
	var bad *BadPatternError
	if !errors.As(err, &bad) {
		t.Fatalf("want BadPatternError, got %v", err)
	}
	if bad.Kind != ast.PatAssign {
		t.Errorf("Kind = %v, want PatAssign", bad.Kind)
	}
	if bad.Span != sp {
		t.Errorf("Span = %+v, want %+v", bad.Span, sp)
	}
}

func TestPropNameCanonicalization(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	c := NewConverter(b, nil, nil)

	tests := []struct {
		name string
		kind ast.PropNameKind
		text string
		want string
	}{
		{"ident", ast.PropNameIdent, "foo", "foo"},
		{"string", ast.PropNameString, "hi there", "hi there"},
		{"decimal", ast.PropNameNumber, "3", "3"},
		{"trailing zero", ast.PropNameNumber, "3.50", "3.5"},
		{"leading dot", ast.PropNameNumber, ".5", "0.5"},
		{"separators", ast.PropNameNumber, "1_000", "1000"},
		{"hex", ast.PropNameNumber, "0x10", "16"},
		{"binary", ast.PropNameNumber, "0b101", "5"},
		{"exponent", ast.PropNameNumber, "1e2", "100"},
		{"bigint decimal", ast.PropNameBigInt, "42", "42"},
		{"bigint hex", ast.PropNameBigInt, "0xff", "255"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := ast.PropName{Kind: tt.kind, Text: b.Strings.Intern(tt.text)}
			if got := c.resolvePropName(key); got != tt.want {
				t.Errorf("resolvePropName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputedKeySourceText(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("const { [1+1]: two } = o;")
	fileID := fs.AddVirtual("test.ts", content)
	span := source.Span{File: fileID, Start: 9, End: 12} // "1+1"

	b := ast.NewBuilder(ast.Hints{})
	key := ast.PropName{Kind: ast.PropNameComputed, Span: span}

	withSrc := NewConverter(b, nil, fs)
	if got := withSrc.resolvePropName(key); got != "1+1" {
		t.Errorf("with source: %q, want %q", got, "1+1")
	}

	// без доступа к исходнику — сентинел, не ошибка
	noSrc := NewConverter(b, nil, nil)
	if got := noSrc.resolvePropName(key); got != UnavailableKey {
		t.Errorf("without source: %q, want %q", got, UnavailableKey)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := &ParamDef{Kind: ParamObject, Props: []ObjPatPropDef{
		{Kind: ObjPropDefKeyValue, Key: "a", Value: &ParamDef{
			Kind: ParamArray,
			Elems: []*ParamDef{
				nil,
				ident("b"),
				{Kind: ParamRest, Arg: ident("c"), Type: &TypeRef{Repr: "number[]"}},
			},
		}},
		{Kind: ObjPropDefAssign, Key: "d", HasDefault: true},
	}, Optional: true, Type: &TypeRef{Repr: "Opts"}}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back ParamDef
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got, want := back.String(), orig.String(); got != want {
		t.Errorf("round trip render = %q, want %q", got, want)
	}
	if len(back.Props) != 2 || back.Props[1].HasDefault != true {
		t.Errorf("round trip lost properties: %+v", back.Props)
	}
}

func TestSpanTypeResolver(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("function f(x: Map<string, number>) {}")
	fileID := fs.AddVirtual("test.ts", content)

	b := ast.NewBuilder(ast.Hints{})
	typeID := b.Types.New(source.Span{File: fileID, Start: 14, End: 33})

	r := &SpanTypeResolver{Types: b.Types, Src: fs}
	ref := r.ResolveType(typeID)
	if ref == nil || ref.Repr != "Map<string, number>" {
		t.Fatalf("ResolveType = %+v, want Map<string, number>", ref)
	}
	if r.ResolveType(ast.NoTypeID) != nil {
		t.Error("NoTypeID should resolve to nil")
	}
}
