package ast

import (
	"tsig/internal/source"
)

// PatKind enumerates the five binding-pattern variants.
// Набор закрыт грамматикой и в рантайме не расширяется.
type PatKind uint8

const (
	PatInvalid PatKind = iota
	// PatIdent is a simple bound name: x, x?, x: T.
	PatIdent
	// PatArray is array destructuring: [a, , b].
	PatArray
	// PatObject is object destructuring: { a, b: c, ...rest }.
	PatObject
	// PatRest is a rest capture: ...xs.
	PatRest
	// PatAssign is a pattern with a default: x = expr.
	PatAssign
)

func (k PatKind) String() string {
	switch k {
	case PatIdent:
		return "Ident"
	case PatArray:
		return "Array"
	case PatObject:
		return "Object"
	case PatRest:
		return "Rest"
	case PatAssign:
		return "Assign"
	}
	return "Invalid"
}

// Pat — заголовок узла; полезная нагрузка лежит в таблице своего Kind.
type Pat struct {
	Kind    PatKind
	Span    source.Span
	Payload PayloadID
}

// IdentPat is the payload for PatIdent.
type IdentPat struct {
	Name     source.StringID
	Optional bool
	Type     TypeID
}

// ArrayPat is the payload for PatArray.
// Elems preserves elided slots as NoPatID, positionally.
type ArrayPat struct {
	Elems    []PatID
	Optional bool
	Type     TypeID
}

// ObjectPat is the payload for PatObject. Props preserves declaration order.
type ObjectPat struct {
	Props    []ObjPropID
	Optional bool
	Type     TypeID
}

// RestPat is the payload for PatRest.
type RestPat struct {
	Arg  PatID
	Type TypeID
}

// AssignPat is the payload for PatAssign. Default хранит только span
// текста выражения: выражения мы не разбираем и не реконструируем.
type AssignPat struct {
	Left    PatID
	Default source.Span
	Type    TypeID
}

// Pats holds the pattern arena plus one payload arena per kind.
type Pats struct {
	Arena   *Arena[Pat]
	Idents  *Arena[IdentPat]
	Arrays  *Arena[ArrayPat]
	Objects *Arena[ObjectPat]
	Rests   *Arena[RestPat]
	Assigns *Arena[AssignPat]
}

func NewPats(capHint uint) *Pats {
	return &Pats{
		Arena:   NewArena[Pat](capHint),
		Idents:  NewArena[IdentPat](capHint),
		Arrays:  NewArena[ArrayPat](capHint / 4),
		Objects: NewArena[ObjectPat](capHint / 4),
		Rests:   NewArena[RestPat](capHint / 4),
		Assigns: NewArena[AssignPat](capHint / 4),
	}
}

func (p *Pats) Get(id PatID) *Pat {
	return p.Arena.Get(uint32(id))
}

func (p *Pats) new(kind PatKind, span source.Span, payload PayloadID) PatID {
	return PatID(p.Arena.Allocate(Pat{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (p *Pats) NewIdent(span source.Span, name source.StringID, optional bool, typ TypeID) PatID {
	payload := PayloadID(p.Idents.Allocate(IdentPat{Name: name, Optional: optional, Type: typ}))
	return p.new(PatIdent, span, payload)
}

func (p *Pats) NewArray(span source.Span, elems []PatID, optional bool, typ TypeID) PatID {
	payload := PayloadID(p.Arrays.Allocate(ArrayPat{Elems: elems, Optional: optional, Type: typ}))
	return p.new(PatArray, span, payload)
}

func (p *Pats) NewObject(span source.Span, props []ObjPropID, optional bool, typ TypeID) PatID {
	payload := PayloadID(p.Objects.Allocate(ObjectPat{Props: props, Optional: optional, Type: typ}))
	return p.new(PatObject, span, payload)
}

func (p *Pats) NewRest(span source.Span, arg PatID, typ TypeID) PatID {
	payload := PayloadID(p.Rests.Allocate(RestPat{Arg: arg, Type: typ}))
	return p.new(PatRest, span, payload)
}

func (p *Pats) NewAssign(span source.Span, left PatID, def source.Span, typ TypeID) PatID {
	payload := PayloadID(p.Assigns.Allocate(AssignPat{Left: left, Default: def, Type: typ}))
	return p.new(PatAssign, span, payload)
}

// Ident returns the payload if id is a PatIdent node.
func (p *Pats) Ident(id PatID) (*IdentPat, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatIdent {
		return nil, false
	}
	return p.Idents.Get(uint32(pat.Payload)), true
}

func (p *Pats) Array(id PatID) (*ArrayPat, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatArray {
		return nil, false
	}
	return p.Arrays.Get(uint32(pat.Payload)), true
}

func (p *Pats) Object(id PatID) (*ObjectPat, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatObject {
		return nil, false
	}
	return p.Objects.Get(uint32(pat.Payload)), true
}

func (p *Pats) Rest(id PatID) (*RestPat, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatRest {
		return nil, false
	}
	return p.Rests.Get(uint32(pat.Payload)), true
}

func (p *Pats) Assign(id PatID) (*AssignPat, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatAssign {
		return nil, false
	}
	return p.Assigns.Get(uint32(pat.Payload)), true
}
