package lexer

import (
	"strconv"
	"strings"

	"tsig/internal/token"
)

// scanString сканирует '...' или "..." c escape-последовательностями.
// Token.Text — ровно исходный срез, включая кавычки; значение достаётся
// через Unquote там, где оно нужно (ключи свойств).
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			// съесть '\' и следующий байт, не валидируем глубоко здесь
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report("LexUnterminatedString", sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.report("LexUnterminatedString", sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// Unquote снимает кавычки и разворачивает escape-последовательности
// строкового литерала (\n \t \r \b \f \v \0 \\ \' \" \`  \xNN \uNNNN \u{...}).
// Неизвестный escape деградирует до символа после '\' (как в JS).
func Unquote(raw string) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}
	quote := raw[0]
	if (quote != '\'' && quote != '"') || raw[len(raw)-1] != quote {
		return "", false
	}
	body := raw[1 : len(raw)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, true
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return b.String(), false
		}
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case 'x':
			if i+2 < len(body) && isHex(body[i+1]) && isHex(body[i+2]) {
				n, _ := strconv.ParseUint(body[i+1:i+3], 16, 8)
				b.WriteRune(rune(n))
				i += 2
			} else {
				b.WriteByte('x')
			}
		case 'u':
			if i+1 < len(body) && body[i+1] == '{' {
				end := strings.IndexByte(body[i+1:], '}')
				if end > 1 {
					if n, err := strconv.ParseUint(body[i+2:i+1+end], 16, 32); err == nil {
						b.WriteRune(rune(n))
						i += 1 + end
						break
					}
				}
				b.WriteByte('u')
			} else if i+4 < len(body) {
				if n, err := strconv.ParseUint(body[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(n))
					i += 4
				} else {
					b.WriteByte('u')
				}
			} else {
				b.WriteByte('u')
			}
		default:
			// \X → X
			b.WriteByte(body[i])
		}
	}
	return b.String(), true
}
