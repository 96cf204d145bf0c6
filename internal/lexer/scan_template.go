package lexer

import (
	"tsig/internal/token"
)

// scanTemplate сканирует `...` целиком, вместе с ${...}-вставками.
// Шаблон попадает в доки только как сырой текст выражения, поэтому
// один токен на весь литерал — ровно то, что нужно.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '`'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '`' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.TemplateLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			// вставка: считаем вложенные фигурные скобки
			depth := 1
			for !lx.cursor.EOF() && depth > 0 {
				switch lx.cursor.Peek() {
				case '{':
					depth++
				case '}':
					depth--
				}
				lx.cursor.Bump()
			}
			continue
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающего бэктика
	sp := lx.cursor.SpanFrom(start)
	lx.report("LexUnterminatedString", sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
