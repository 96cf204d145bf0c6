package lexer

import (
	"testing"

	"tsig/internal/source"
	"tsig/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(src))
	lx := New(fs.Get(fileID), Options{})

	var toks []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexSimpleFunction(t *testing.T) {
	toks := lexAll(t, "function greet(name: string) {}")
	want := []token.Kind{
		token.KwFunction, token.Ident, token.LParen, token.Ident,
		token.Colon, token.Ident, token.RParen, token.LBrace, token.RBrace,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if toks[1].Text != "greet" {
		t.Errorf("name text = %q, want %q", toks[1].Text, "greet")
	}
}

func TestLexContextualKeywords(t *testing.T) {
	tests := []struct {
		src  string
		want token.Kind
	}{
		{"function", token.KwFunction},
		{"declare", token.KwDeclare},
		{"const", token.KwConst},
		{"let", token.KwLet},
		{"var", token.KwVar},
		{"export", token.KwExport},
		{"async", token.KwAsync},
		{"functional", token.Ident},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if len(toks) != 1 || toks[0].Kind != tt.want {
			t.Errorf("%q: got %v, want [%v]", tt.src, kinds(toks), tt.want)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		text string
	}{
		{"42", token.NumberLit, "42"},
		{"3.14", token.NumberLit, "3.14"},
		{".5", token.NumberLit, ".5"},
		{"1e10", token.NumberLit, "1e10"},
		{"1_000", token.NumberLit, "1_000"},
		{"0xFF", token.NumberLit, "0xFF"},
		{"0b101", token.NumberLit, "0b101"},
		{"0o777", token.NumberLit, "0o777"},
		{"42n", token.BigIntLit, "42n"},
	}
	for _, tt := range tests {
		toks := lexAll(t, tt.src)
		if len(toks) != 1 {
			t.Errorf("%q: got %v, want single token", tt.src, kinds(toks))
			continue
		}
		if toks[0].Kind != tt.kind || toks[0].Text != tt.text {
			t.Errorf("%q: got %v %q, want %v %q", tt.src, toks[0].Kind, toks[0].Text, tt.kind, tt.text)
		}
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "...=>?:=")
	want := []token.Kind{token.DotDotDot, token.Arrow, token.Question, token.Colon, token.Assign}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexAnglesNeverCombine(t *testing.T) {
	// >> должен дать два Gt, чтобы глубина generic-скобок считалась честно
	toks := lexAll(t, "Map<string, Set<number>>")
	got := kinds(toks)
	gts := 0
	for _, k := range got {
		if k == token.Gt {
			gts++
		}
	}
	if gts != 2 {
		t.Errorf("got %d Gt tokens in %v, want 2", gts, got)
	}
}

func TestLexTrivia(t *testing.T) {
	toks := lexAll(t, "// comment\n/* block */ x")
	if len(toks) != 1 || toks[0].Kind != token.Ident {
		t.Fatalf("got %v, want single Ident", kinds(toks))
	}
	var sawLine, sawBlock bool
	for _, tr := range toks[0].Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			sawLine = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if !sawLine || !sawBlock {
		t.Errorf("leading trivia missing comments: %+v", toks[0].Leading)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ts", []byte(`"oops`))
	var reports []string
	lx := New(fs.Get(fileID), Options{Reporter: reporterFunc(func(kind string, _ source.Span, _ string) {
		reports = append(reports, kind)
	})})
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if len(reports) != 1 || reports[0] != "LexUnterminatedString" {
		t.Errorf("reports = %v, want [LexUnterminatedString]", reports)
	}
}

type reporterFunc func(kind string, span source.Span, msg string)

func (f reporterFunc) Report(kind string, span source.Span, msg string) { f(kind, span, msg) }

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{`"plain"`, "plain", true},
		{`'single'`, "single", true},
		{`"a\nb"`, "a\nb", true},
		{`"\x41"`, "A", true},
		{`"A"`, "A", true},
		{`"\u{1F600}"`, "\U0001F600", true},
		{`"\q"`, "q", true},
		{`"unterminated`, "", false},
		{`x`, "", false},
	}
	for _, tt := range tests {
		got, ok := Unquote(tt.raw)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Unquote(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
