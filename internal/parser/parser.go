package parser

import (
	"slices"

	"tsig/internal/ast"
	"tsig/internal/diag"
	"tsig/internal/lexer"
	"tsig/internal/source"
	"tsig/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseDecls()
	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance съедает текущий токен и запоминает его span.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev >= diag.SevError {
		if p.opts.Enough() {
			return
		}
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.lx.Peek().Span, msg)
}

// expect съедает токен нужного вида или репортит диагностику.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, diag.SevError, p.lx.Peek().Span, msg)
	return token.Token{}, false
}

// resyncUntil прокручивает вход до одного из стоп-токенов (не съедая его) или EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.EOF || slices.Contains(kinds, tok.Kind) {
			return
		}
		p.advance()
	}
}

// parseIdentLike — ожидает имя (Ident или контекстное ключевое слово)
// и интернирует его.
func (p *Parser) parseIdentLike(code diag.Code, msg string) (source.StringID, bool) {
	tok := p.lx.Peek()
	if !tok.IsIdentLike() {
		p.report(code, diag.SevError, tok.Span, msg)
		return source.NoStringID, false
	}
	p.advance()
	return p.arenas.Strings.Intern(tok.Text), true
}
