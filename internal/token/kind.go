package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwExport represents the 'export' keyword.
	KwExport // export
	// KwAsync represents the 'async' keyword.
	KwAsync // async

	// NumberLit represents a numeric literal token.
	NumberLit
	// BigIntLit represents a bigint literal token (digits with 'n' suffix).
	BigIntLit
	// StringLit represents a string literal token ('...' or "...").
	StringLit
	// TemplateLit represents a template literal token (`...`).
	TemplateLit

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Question represents '?'.
	Question // ?
	// Assign represents '='.
	Assign // =
	// Dot represents '.'.
	Dot // .
	// DotDotDot represents '...'.
	DotDotDot // ...
	// Arrow represents '=>'.
	Arrow // =>
	// Lt represents '<'. Angle brackets are never combined so that
	// nested generics ('>>') keep depth counting honest.
	Lt // <
	// Gt represents '>'.
	Gt // >
	// Punct represents any other operator/punctuation run; Text carries it.
	Punct
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case KwFunction:
		return "function"
	case KwDeclare:
		return "declare"
	case KwConst:
		return "const"
	case KwLet:
		return "let"
	case KwVar:
		return "var"
	case KwExport:
		return "export"
	case KwAsync:
		return "async"
	case NumberLit:
		return "NumberLit"
	case BigIntLit:
		return "BigIntLit"
	case StringLit:
		return "StringLit"
	case TemplateLit:
		return "TemplateLit"
	case LParen:
		return "("
	case RParen:
		return ")"
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Comma:
		return ","
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	case Question:
		return "?"
	case Assign:
		return "="
	case Dot:
		return "."
	case DotDotDot:
		return "..."
	case Arrow:
		return "=>"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Punct:
		return "Punct"
	}
	return "Unknown"
}
