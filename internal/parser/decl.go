package parser

import (
	"tsig/internal/ast"
	"tsig/internal/diag"
	"tsig/internal/token"
)

// parseDecls — основной цикл верхнего уровня: пока не EOF — parseDecl.
// Незнакомые конструкции (импорты, классы, выражения) не ошибка для
// экстрактора доков: инфо-диагностика и пропуск.
func (p *Parser) parseDecls() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		declID, ok := p.parseDecl()
		if ok && declID.IsValid() {
			p.arenas.PushDecl(p.file, declID)
		}
		if !ok {
			p.skipStatement()
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

type declMods struct {
	exported bool
	ambient  bool
	async    bool
}

// parseDecl выбирает по первому токену нужный распознаватель.
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	mods := declMods{}

	for {
		switch p.lx.Peek().Kind {
		case token.KwExport:
			p.advance()
			mods.exported = true
			continue
		case token.KwDeclare:
			p.advance()
			mods.ambient = true
			continue
		case token.KwAsync:
			p.advance()
			mods.async = true
			continue
		}
		break
	}

	switch p.lx.Peek().Kind {
	case token.KwFunction:
		return p.parseFnDecl(mods)
	case token.KwConst:
		return p.parseVarDecls(ast.VarConst, mods)
	case token.KwLet:
		return p.parseVarDecls(ast.VarLet, mods)
	case token.KwVar:
		return p.parseVarDecls(ast.VarVar, mods)
	default:
		if mods.exported || mods.ambient || mods.async {
			p.err(diag.SynUnexpectedToken, "expected declaration after modifiers")
			return ast.NoDeclID, false
		}
		p.report(diag.SynUnexpectedTopLevel, diag.SevInfo, p.lx.Peek().Span, "skipping undocumented top-level construct")
		return ast.NoDeclID, false
	}
}

// parseFnDecl: `function name<T>(params) [: R] { ... }` либо ambient-вариант
// с `;` вместо тела.
func (p *Parser) parseFnDecl(mods declMods) (ast.DeclID, bool) {
	fnTok := p.advance() // 'function'
	span := fnTok.Span

	name, ok := p.parseIdentLike(diag.SynExpectIdentifier, "expected function name")
	if !ok {
		return ast.NoDeclID, false
	}
	span = span.Cover(p.lastSpan)

	p.skipGenerics()

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return ast.NoDeclID, false
	}

	params, paramsOk := p.parseParams()
	if !paramsOk {
		return ast.NoDeclID, false
	}
	span = span.Cover(p.lastSpan)

	ret := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		retSpan, retOk := p.scanReturnTypeSpan()
		if !retOk {
			p.err(diag.SynUnexpectedToken, "expected return type after ':'")
		} else {
			ret = p.arenas.Types.New(retSpan)
			span = span.Cover(retSpan)
		}
	}

	// тело или ';' у ambient-сигнатуры
	if p.at(token.LBrace) {
		p.skipBalancedBraces()
		span = span.Cover(p.lastSpan)
	} else if p.at(token.Semicolon) {
		p.advance()
	}

	return p.arenas.Decls.NewFn(span, ast.FnDecl{
		Name:     name,
		Params:   params,
		Return:   ret,
		Ambient:  mods.ambient,
		Async:    mods.async,
		Exported: mods.exported,
	}), true
}

// parseParams — список параметров до ')'. Каждый параметр — полный паттерн;
// легальность дефолта на верхнем уровне решает конвертер, не грамматика.
func (p *Parser) parseParams() ([]ast.PatID, bool) {
	params := make([]ast.PatID, 0, 4)
	sawRest := false

	if p.at(token.RParen) {
		p.advance()
		return params, true
	}

	for {
		param, ok := p.parsePattern()
		if !ok {
			p.resyncUntil(token.RParen, token.Semicolon, token.LBrace)
			if p.at(token.RParen) {
				p.advance()
			}
			return nil, false
		}
		params = append(params, param)

		if p.arenas.Pats.Get(param).Kind == ast.PatRest {
			if sawRest {
				p.report(diag.SynRestMustBeLast, diag.SevError, p.arenas.Pats.Get(param).Span, "rest parameter must be last")
			}
			sawRest = true
		} else if sawRest {
			p.report(diag.SynRestMustBeLast, diag.SevError, p.arenas.Pats.Get(param).Span, "parameter after rest parameter")
		}

		if p.at(token.Comma) {
			p.advance()
			if p.at(token.RParen) {
				// trailing comma
				p.advance()
				return params, true
			}
			continue
		}

		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
			p.resyncUntil(token.RParen, token.Semicolon, token.LBrace)
			if p.at(token.RParen) {
				p.advance()
			}
			return nil, false
		}
		return params, true
	}
}

// parseVarDecls: `const p = init, q = init;` — по декларации на каждый
// декларатор. Все декларации кладутся в файл прямо здесь, в порядке
// исходника, поэтому наружу возвращается NoDeclID.
func (p *Parser) parseVarDecls(kw ast.VarKeyword, mods declMods) (ast.DeclID, bool) {
	kwTok := p.advance() // const/let/var

	for {
		binding, ok := p.parsePrimaryPattern(true)
		if !ok {
			p.resyncUntil(token.Semicolon)
			if p.at(token.Semicolon) {
				p.advance()
			}
			return ast.NoDeclID, false
		}
		span := kwTok.Span.Cover(p.arenas.Pats.Get(binding).Span)

		hasInit := false
		initSpan := p.lx.Peek().Span
		if p.at(token.Assign) {
			p.advance()
			var initOk bool
			initSpan, initOk = p.scanInitSpan()
			if !initOk {
				p.err(diag.SynUnexpectedToken, "expected initializer after '='")
			} else {
				hasInit = true
				span = span.Cover(initSpan)
			}
		}

		declID := p.arenas.Decls.NewVar(span, ast.VarDecl{
			Keyword:  kw,
			Binding:  binding,
			HasInit:  hasInit,
			Init:     initSpan,
			Exported: mods.exported,
		})
		p.arenas.PushDecl(p.file, declID)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		if p.at(token.Semicolon) {
			p.advance()
		}
		return ast.NoDeclID, true
	}
}

// skipStatement — восстановление: прокручиваем до ';' на нулевой глубине
// (съедая его) либо до следующего стартера декларации, либо EOF.
func (p *Parser) skipStatement() {
	depth := 0
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth > 0 {
				depth--
			}
		case token.KwFunction, token.KwConst, token.KwLet, token.KwVar, token.KwExport, token.KwDeclare:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}
