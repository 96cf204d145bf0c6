package parser

import (
	"tsig/internal/ast"
	"tsig/internal/diag"
	"tsig/internal/lexer"
	"tsig/internal/source"
	"tsig/internal/token"
)

// parsePattern — общий вход: все пять видов паттернов, включая дефолт.
// `x?: T = v` — опциональность и тип прилипают к цели, дефолт оборачивает
// её в Assign-узел.
func (p *Parser) parsePattern() (ast.PatID, bool) {
	if p.at(token.DotDotDot) {
		return p.parseRestPattern()
	}

	base, ok := p.parsePrimaryPattern(true)
	if !ok {
		return ast.NoPatID, false
	}

	if p.at(token.Assign) {
		eqTok := p.advance()
		defSpan, defOk := p.scanExprSpan()
		if !defOk {
			p.report(diag.SynUnexpectedToken, diag.SevError, eqTok.Span, "expected expression after '='")
			return ast.NoPatID, false
		}
		span := p.arenas.Pats.Get(base).Span.Cover(eqTok.Span).Cover(defSpan)
		return p.arenas.Pats.NewAssign(span, base, defSpan, ast.NoTypeID), true
	}
	return base, true
}

// parsePrimaryPattern — имя, массив или объект. suffix управляет разбором
// хвоста `?`/`: T` (после rest-аргумента тип принадлежит rest-узлу).
func (p *Parser) parsePrimaryPattern(suffix bool) (ast.PatID, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.IsIdentLike():
		p.advance()
		name := p.arenas.Strings.Intern(tok.Text)
		span := tok.Span
		optional, typ := p.parsePatternSuffix(suffix, &span)
		return p.arenas.Pats.NewIdent(span, name, optional, typ), true

	case tok.Kind == token.LBracket:
		return p.parseArrayPattern(suffix)

	case tok.Kind == token.LBrace:
		return p.parseObjectPattern(suffix)

	default:
		p.report(diag.SynExpectPattern, diag.SevError, tok.Span, "expected binding pattern")
		return ast.NoPatID, false
	}
}

// parsePatternSuffix разбирает `?` и `: T` и расширяет span.
func (p *Parser) parsePatternSuffix(suffix bool, span *source.Span) (optional bool, typ ast.TypeID) {
	if !suffix {
		return false, ast.NoTypeID
	}
	if p.at(token.Question) {
		qTok := p.advance()
		optional = true
		*span = span.Cover(qTok.Span)
	}
	if p.at(token.Colon) {
		p.advance()
		typeSpan, ok := p.scanTypeSpan()
		if !ok {
			p.err(diag.SynUnexpectedToken, "expected type after ':'")
			return optional, ast.NoTypeID
		}
		typ = p.arenas.Types.New(typeSpan)
		*span = span.Cover(typeSpan)
	}
	return optional, typ
}

// parseRestPattern: `...pattern [: T]`. Тип принадлежит rest-узлу, дефолт
// после rest запрещён грамматикой.
func (p *Parser) parseRestPattern() (ast.PatID, bool) {
	dotsTok := p.advance() // '...'
	inner, ok := p.parsePrimaryPattern(false)
	if !ok {
		return ast.NoPatID, false
	}
	span := dotsTok.Span.Cover(p.arenas.Pats.Get(inner).Span)

	typ := ast.NoTypeID
	if p.at(token.Colon) {
		p.advance()
		typeSpan, typeOk := p.scanTypeSpan()
		if !typeOk {
			p.err(diag.SynUnexpectedToken, "expected type after ':'")
		} else {
			typ = p.arenas.Types.New(typeSpan)
			span = span.Cover(typeSpan)
		}
	}
	return p.arenas.Pats.NewRest(span, inner, typ), true
}

// parseArrayPattern: `[a, , b, ...rest]` — пропуски сохраняются позиционно
// как NoPatID.
func (p *Parser) parseArrayPattern(suffix bool) (ast.PatID, bool) {
	openTok := p.advance() // '['
	span := openTok.Span
	elems := make([]ast.PatID, 0, 4)

	for {
		if p.at(token.RBracket) {
			closeTok := p.advance()
			span = span.Cover(closeTok.Span)
			break
		}
		if p.at(token.Comma) {
			// пропуск (elision): слот есть, паттерна нет
			commaTok := p.advance()
			span = span.Cover(commaTok.Span)
			elems = append(elems, ast.NoPatID)
			continue
		}
		elem, ok := p.parsePattern()
		if !ok {
			p.resyncUntil(token.Comma, token.RBracket, token.Semicolon)
			if p.at(token.RBracket) {
				p.advance()
			}
			return ast.NoPatID, false
		}
		elems = append(elems, elem)
		span = span.Cover(p.arenas.Pats.Get(elem).Span)

		if p.at(token.Comma) {
			commaTok := p.advance()
			span = span.Cover(commaTok.Span)
			continue
		}
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array pattern")
		if !ok {
			p.resyncUntil(token.RBracket, token.Semicolon)
			if p.at(token.RBracket) {
				p.advance()
			}
			return ast.NoPatID, false
		}
		span = span.Cover(closeTok.Span)
		break
	}

	optional, typ := p.parsePatternSuffix(suffix, &span)
	return p.arenas.Pats.NewArray(span, elems, optional, typ), true
}

// parseObjectPattern: `{ a, b: c, "s": d, 3: e, [expr]: f, ...rest }`.
// Порядок свойств сохраняется ровно как в исходнике, дубликаты не проверяются.
func (p *Parser) parseObjectPattern(suffix bool) (ast.PatID, bool) {
	openTok := p.advance() // '{'
	span := openTok.Span
	props := make([]ast.ObjPropID, 0, 4)

	for {
		if p.at(token.RBrace) {
			closeTok := p.advance()
			span = span.Cover(closeTok.Span)
			break
		}

		prop, ok := p.parseObjectProp()
		if !ok {
			p.resyncUntil(token.Comma, token.RBrace, token.Semicolon)
			if p.at(token.RBrace) {
				p.advance()
			}
			return ast.NoPatID, false
		}
		props = append(props, prop)
		span = span.Cover(p.arenas.Props.Get(prop).Span)

		if p.at(token.Comma) {
			commaTok := p.advance()
			span = span.Cover(commaTok.Span)
			continue
		}
		closeTok, closeOk := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' after object pattern")
		if !closeOk {
			p.resyncUntil(token.RBrace, token.Semicolon)
			if p.at(token.RBrace) {
				p.advance()
			}
			return ast.NoPatID, false
		}
		span = span.Cover(closeTok.Span)
		break
	}

	optional, typ := p.parsePatternSuffix(suffix, &span)
	return p.arenas.Pats.NewObject(span, props, optional, typ), true
}

func (p *Parser) parseObjectProp() (ast.ObjPropID, bool) {
	if p.at(token.DotDotDot) {
		dotsTok := p.advance()
		arg, ok := p.parsePrimaryPattern(false)
		if !ok {
			return ast.NoObjPropID, false
		}
		span := dotsTok.Span.Cover(p.arenas.Pats.Get(arg).Span)
		return p.arenas.Props.NewRest(span, arg), true
	}

	key, ok := p.parsePropName()
	if !ok {
		return ast.NoObjPropID, false
	}
	span := key.Span

	if p.at(token.Colon) {
		p.advance()
		value, valueOk := p.parsePattern()
		if !valueOk {
			return ast.NoObjPropID, false
		}
		span = span.Cover(p.arenas.Pats.Get(value).Span)
		return p.arenas.Props.NewKeyValue(span, key, value), true
	}

	// shorthand: `{ key }` или `{ key = default }` — только для имён
	if key.Kind != ast.PropNameIdent {
		p.report(diag.SynExpectColon, diag.SevError, key.Span, "expected ':' after non-identifier property key")
		return ast.NoObjPropID, false
	}

	hasDefault := false
	defSpan := source.Span{}
	if p.at(token.Assign) {
		eqTok := p.advance()
		var defOk bool
		defSpan, defOk = p.scanExprSpan()
		if !defOk {
			p.report(diag.SynUnexpectedToken, diag.SevError, eqTok.Span, "expected expression after '='")
			return ast.NoObjPropID, false
		}
		hasDefault = true
		span = span.Cover(defSpan)
	}
	return p.arenas.Props.NewShorthand(span, key.Text, hasDefault, defSpan), true
}

// parsePropName разбирает ключ свойства: имя, строка, число, bigint или
// вычисляемый ключ `[expr]` (сырой спан без скобок).
func (p *Parser) parsePropName() (ast.PropName, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.IsIdentLike():
		p.advance()
		return ast.PropName{
			Kind: ast.PropNameIdent,
			Span: tok.Span,
			Text: p.arenas.Strings.Intern(tok.Text),
		}, true

	case tok.Kind == token.StringLit:
		p.advance()
		value, ok := lexer.Unquote(tok.Text)
		if !ok {
			// неразобранный литерал: берём как есть
			value = tok.Text
		}
		return ast.PropName{
			Kind: ast.PropNameString,
			Span: tok.Span,
			Text: p.arenas.Strings.Intern(value),
		}, true

	case tok.Kind == token.NumberLit:
		p.advance()
		return ast.PropName{
			Kind: ast.PropNameNumber,
			Span: tok.Span,
			Text: p.arenas.Strings.Intern(tok.Text),
		}, true

	case tok.Kind == token.BigIntLit:
		p.advance()
		digits := tok.Text
		if len(digits) > 0 && digits[len(digits)-1] == 'n' {
			digits = digits[:len(digits)-1]
		}
		return ast.PropName{
			Kind: ast.PropNameBigInt,
			Span: tok.Span,
			Text: p.arenas.Strings.Intern(digits),
		}, true

	case tok.Kind == token.LBracket:
		p.advance() // '['
		exprSpan, ok := p.scanRaw(rawOpts{})
		if !ok {
			p.report(diag.SynEmptyComputedKey, diag.SevError, tok.Span, "empty computed property key")
			if p.at(token.RBracket) {
				p.advance()
			}
			return ast.PropName{}, false
		}
		if _, closeOk := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after computed key"); !closeOk {
			return ast.PropName{}, false
		}
		return ast.PropName{
			Kind: ast.PropNameComputed,
			Span: exprSpan,
			Text: source.NoStringID,
		}, true

	default:
		p.report(diag.SynExpectPropName, diag.SevError, tok.Span, "expected property name")
		return ast.PropName{}, false
	}
}
