package token

import (
	"tsig/internal/source"
)

// TriviaKind classifies non-semantic source fragments between tokens.
type TriviaKind uint8

const (
	// TriviaSpace covers runs of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline covers runs of newlines.
	TriviaNewline
	// TriviaLineComment covers a // comment up to the newline.
	TriviaLineComment
	// TriviaBlockComment covers a /* ... */ comment.
	TriviaBlockComment
)

// Trivia is one non-semantic fragment attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
