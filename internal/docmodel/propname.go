package docmodel

import (
	"math/big"
	"strconv"
	"strings"

	"tsig/internal/ast"
)

// resolvePropName returns the canonical textual form of a property key.
// Никогда не фейлится: всё нерешаемое деградирует к сентинелу.
func (c *Converter) resolvePropName(key ast.PropName) string {
	switch key.Kind {
	case ast.PropNameIdent, ast.PropNameString:
		// строка уже развёрнута парсером
		return c.lookup(key.Text)

	case ast.PropNameNumber:
		return canonicalNumber(c.lookup(key.Text))

	case ast.PropNameBigInt:
		return canonicalBigInt(c.lookup(key.Text))

	case ast.PropNameComputed:
		if c.Src != nil {
			if text := c.Src.SpanText(key.Span); text != "" {
				return text
			}
		}
		return UnavailableKey

	default:
		return UnavailableKey
	}
}

// canonicalNumber переводит числовой литерал (десятичный, hex, octal,
// binary, с '_' и экспонентой) в канонический десятичный текст значения.
func canonicalNumber(raw string) string {
	text := strings.ReplaceAll(raw, "_", "")
	if text == "" {
		return raw
	}

	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				return raw
			}
			return strconv.FormatFloat(float64(v), 'g', -1, 64)
		}
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return raw
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// canonicalBigInt канонизирует цифры bigint-литерала (без суффикса 'n').
func canonicalBigInt(raw string) string {
	text := strings.ReplaceAll(raw, "_", "")
	if text == "" {
		return raw
	}
	// big.Int понимает префиксы 0x/0o/0b при base=0
	v, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return raw
	}
	return v.String()
}
