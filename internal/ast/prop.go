package ast

import (
	"tsig/internal/source"
)

// PropNameKind enumerates the supported object-pattern key forms.
type PropNameKind uint8

const (
	PropNameInvalid PropNameKind = iota
	// PropNameIdent: { key: ... }
	PropNameIdent
	// PropNameString: { "key": ... } — Text хранит уже развёрнутое значение.
	PropNameString
	// PropNameNumber: { 3: ... } — Text хранит сырые цифры из исходника.
	PropNameNumber
	// PropNameBigInt: { 3n: ... } — Text хранит цифры без суффикса 'n'.
	PropNameBigInt
	// PropNameComputed: { [expr]: ... } — только Span, текста нет.
	PropNameComputed
)

// PropName is an object-pattern property key. For computed keys Text is
// NoStringID and Span covers the bracketed expression (without brackets).
type PropName struct {
	Kind PropNameKind
	Span source.Span
	Text source.StringID
}

// ObjPropKind enumerates object-pattern property forms.
type ObjPropKind uint8

const (
	ObjPropInvalid ObjPropKind = iota
	// ObjPropKeyValue: { key: pattern }
	ObjPropKeyValue
	// ObjPropShorthand: { key } или { key = default }
	ObjPropShorthand
	// ObjPropRest: { ...pattern }
	ObjPropRest
)

// ObjProp is one property of an object pattern.
// Какие поля значимы — зависит от Kind:
//   - KeyValue:  Key, Value
//   - Shorthand: Name, HasDefault, DefaultSpan
//   - Rest:      Value (аргумент rest)
type ObjProp struct {
	Kind        ObjPropKind
	Span        source.Span
	Key         PropName
	Name        source.StringID
	Value       PatID
	HasDefault  bool
	DefaultSpan source.Span
}

// ObjProps is the arena of object-pattern properties.
type ObjProps struct {
	Arena *Arena[ObjProp]
}

func NewObjProps(capHint uint) *ObjProps {
	return &ObjProps{Arena: NewArena[ObjProp](capHint)}
}

func (p *ObjProps) Get(id ObjPropID) *ObjProp {
	return p.Arena.Get(uint32(id))
}

func (p *ObjProps) NewKeyValue(span source.Span, key PropName, value PatID) ObjPropID {
	return ObjPropID(p.Arena.Allocate(ObjProp{
		Kind:  ObjPropKeyValue,
		Span:  span,
		Key:   key,
		Value: value,
	}))
}

func (p *ObjProps) NewShorthand(span source.Span, name source.StringID, hasDefault bool, defaultSpan source.Span) ObjPropID {
	return ObjPropID(p.Arena.Allocate(ObjProp{
		Kind:        ObjPropShorthand,
		Span:        span,
		Name:        name,
		HasDefault:  hasDefault,
		DefaultSpan: defaultSpan,
	}))
}

func (p *ObjProps) NewRest(span source.Span, arg PatID) ObjPropID {
	return ObjPropID(p.Arena.Allocate(ObjProp{
		Kind:  ObjPropRest,
		Span:  span,
		Value: arg,
	}))
}
