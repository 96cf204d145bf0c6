package lexer

import (
	"tsig/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// Структурные токены получают собственные Kind; всё остальное — Punct с Text.
// '<' и '>' никогда не склеиваются, чтобы глубина generic-скобок считалась честно.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case lx.try3('*', '*', '='):
		return emit(token.Punct)
	case lx.try3('=', '=', '='):
		return emit(token.Punct)
	case lx.try3('!', '=', '='):
		return emit(token.Punct)
	case lx.try3('&', '&', '='):
		return emit(token.Punct)
	case lx.try3('|', '|', '='):
		return emit(token.Punct)
	case lx.try3('?', '?', '='):
		return emit(token.Punct)
	case lx.try2('=', '>'):
		return emit(token.Arrow)
	case lx.try2('=', '='):
		return emit(token.Punct)
	case lx.try2('!', '='):
		return emit(token.Punct)
	case lx.try2('&', '&'):
		return emit(token.Punct)
	case lx.try2('|', '|'):
		return emit(token.Punct)
	case lx.try2('?', '?'):
		return emit(token.Punct)
	case lx.try2('?', '.'):
		return emit(token.Punct)
	case lx.try2('*', '*'):
		return emit(token.Punct)
	case lx.try2('+', '+'):
		return emit(token.Punct)
	case lx.try2('-', '-'):
		return emit(token.Punct)
	case lx.try2('+', '='):
		return emit(token.Punct)
	case lx.try2('-', '='):
		return emit(token.Punct)
	case lx.try2('*', '='):
		return emit(token.Punct)
	case lx.try2('/', '='):
		return emit(token.Punct)
	case lx.try2('%', '='):
		return emit(token.Punct)
	case lx.try2('&', '='):
		return emit(token.Punct)
	case lx.try2('|', '='):
		return emit(token.Punct)
	case lx.try2('^', '='):
		return emit(token.Punct)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '=':
		return emit(token.Assign)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '+', '-', '*', '/', '%', '!', '&', '|', '^', '~', '@', '#':
		return emit(token.Punct)
	case 0:
		return emit(token.EOF)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report("LexUnknownChar", sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
}
