package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedParen     Code = 2002
	SynUnclosedBrace     Code = 2003
	SynUnclosedBracket   Code = 2004
	SynExpectIdentifier  Code = 2005
	SynExpectColon       Code = 2006
	SynExpectPattern     Code = 2007
	SynExpectPropName    Code = 2008
	SynRestMustBeLast    Code = 2009
	SynUnexpectedTopLevel Code = 2010
	SynEmptyComputedKey  Code = 2011

	// Конвертация в дескрипторы документации
	DocInfo              Code = 3000
	DocBadPatternKind    Code = 3001
	DocDefaultInFnType   Code = 3002

	// IO / драйвер
	IOInfo       Code = 4000
	IOReadFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexer information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	SynInfo:                     "Parser information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynUnclosedBracket:          "Unclosed bracket",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectColon:              "Expected ':'",
	SynExpectPattern:            "Expected binding pattern",
	SynExpectPropName:           "Expected property name",
	SynRestMustBeLast:           "Rest element must be last",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	SynEmptyComputedKey:         "Empty computed property key",
	DocInfo:                     "Doc extraction information",
	DocBadPatternKind:           "Pattern kind not legal at this position",
	DocDefaultInFnType:          "Default value not allowed in ambient signature",
	IOInfo:                      "IO information",
	IOReadFailed:                "Failed to read source file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// LookupLexCode переводит строковый kind лексера в Code.
// Лексер не зависит от diag, поэтому связка живёт здесь.
func LookupLexCode(kind string) Code {
	switch kind {
	case "LexUnknownChar":
		return LexUnknownChar
	case "LexUnterminatedString":
		return LexUnterminatedString
	case "LexUnterminatedBlockComment":
		return LexUnterminatedBlockComment
	case "LexBadNumber":
		return LexBadNumber
	}
	return UnknownCode
}
