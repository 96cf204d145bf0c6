package parser

import (
	"tsig/internal/source"
	"tsig/internal/token"
)

// Сырые спаны: типовые аннотации, выражения-дефолты и вычисляемые ключи
// мы не разбираем, а прокручиваем до границы, считая вложенность скобок.
// Текст восстанавливается позже через FileSet.SpanText.

type rawOpts struct {
	// stopComma: останавливаться на ',' на нулевой глубине
	stopComma bool
	// stopAssign: останавливаться на '=' на нулевой глубине (конец типа перед дефолтом)
	stopAssign bool
	// stopBraceAfterFirst: '{' на нулевой глубине после первого токена — конец
	// (тело функции после возвращаемого типа)
	stopBraceAfterFirst bool
	// trackAngles: считать '<' '>' как скобки (типы — да, выражения — нет,
	// там это операторы сравнения)
	trackAngles bool
}

// scanRaw съедает токены по opts и возвращает span от первого до последнего
// съеденного токена. Пустой результат (ничего не съедено) — span нулевой длины
// на текущей позиции, ok=false.
func (p *Parser) scanRaw(opts rawOpts) (source.Span, bool) {
	depth := 0
	angle := 0
	first := true
	var sp source.Span
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF, token.Semicolon:
			return sp, !first
		case token.Comma:
			if depth == 0 && angle == 0 && opts.stopComma {
				return sp, !first
			}
		case token.Assign:
			if depth == 0 && angle == 0 && opts.stopAssign {
				return sp, !first
			}
		case token.LParen, token.LBracket:
			depth++
		case token.LBrace:
			if depth == 0 && angle == 0 && !first && opts.stopBraceAfterFirst {
				return sp, true
			}
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			if depth == 0 {
				// закрывающая скобка объемлющей конструкции
				return sp, !first
			}
			depth--
		case token.Lt:
			if opts.trackAngles {
				angle++
			}
		case token.Gt:
			if opts.trackAngles {
				if angle == 0 {
					return sp, !first
				}
				angle--
			}
		}
		p.advance()
		if first {
			sp = tok.Span
			first = false
		} else {
			sp = sp.Cover(tok.Span)
		}
	}
}

// scanTypeSpan — тип в позиции параметра/элемента: до ',', ')', ']', '}', '='.
func (p *Parser) scanTypeSpan() (source.Span, bool) {
	return p.scanRaw(rawOpts{stopComma: true, stopAssign: true, trackAngles: true})
}

// scanReturnTypeSpan — возвращаемый тип: до ';', EOF или '{' тела.
func (p *Parser) scanReturnTypeSpan() (source.Span, bool) {
	return p.scanRaw(rawOpts{stopBraceAfterFirst: true, trackAngles: true})
}

// scanExprSpan — выражение (дефолт/инициализатор): до ',', закрывающей скобки,
// ';' или EOF. Угловые скобки не считаем — это операторы сравнения.
func (p *Parser) scanExprSpan() (source.Span, bool) {
	return p.scanRaw(rawOpts{stopComma: true})
}

// scanInitSpan — инициализатор var-декларации; ',' разделяет декларaторы.
func (p *Parser) scanInitSpan() (source.Span, bool) {
	return p.scanRaw(rawOpts{stopComma: true})
}

// skipGenerics прокручивает <...> после имени функции.
func (p *Parser) skipGenerics() {
	if !p.at(token.Lt) {
		return
	}
	p.advance() // '<'
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case token.Lt:
			depth++
		case token.Gt:
			depth--
		}
		p.advance()
	}
}

// skipBalancedBraces прокручивает { ... } целиком (тело функции).
func (p *Parser) skipBalancedBraces() {
	if !p.at(token.LBrace) {
		return
	}
	p.advance() // '{'
	depth := 1
	for depth > 0 {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		}
		p.advance()
	}
}
