package token

import (
	"tsig/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, bigint, string, or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, BigIntLit, StringLit, TemplateLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a declaration keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunction, KwDeclare, KwConst, KwLet, KwVar, KwExport, KwAsync:
		return true
	default:
		return false
	}
}

// IsIdentLike reports whether the token can serve as a property name or
// binding name. Keywords are contextual in this grammar: `{ const: x }`
// is a perfectly legal object pattern.
func (t Token) IsIdentLike() bool {
	return t.Kind == Ident || t.IsKeyword()
}

// IsCloser reports whether the token closes a bracketed region.
func (t Token) IsCloser() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}
