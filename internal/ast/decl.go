package ast

import (
	"tsig/internal/source"
)

// DeclKind enumerates the documented declaration forms.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	// DeclFn is a function declaration: [export] [declare] [async] function name(params) [: T]
	DeclFn
	// DeclVar is a variable declaration: [export] const/let/var pattern [= init]
	DeclVar
)

// VarKeyword distinguishes const/let/var.
type VarKeyword uint8

const (
	VarConst VarKeyword = iota
	VarLet
	VarVar
)

func (k VarKeyword) String() string {
	switch k {
	case VarConst:
		return "const"
	case VarLet:
		return "let"
	case VarVar:
		return "var"
	}
	return "?"
}

// Decl — заголовок объявления; payload в таблице своего Kind.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// FnDecl is the payload for DeclFn.
// Ambient: объявлено через `declare` — сигнатура без тела, дефолты запрещены.
type FnDecl struct {
	Name     source.StringID
	Params   []PatID
	Return   TypeID
	Ambient  bool
	Async    bool
	Exported bool
}

// VarDecl is the payload for DeclVar. Init хранит только span инициализатора.
type VarDecl struct {
	Keyword  VarKeyword
	Binding  PatID
	HasInit  bool
	Init     source.Span
	Exported bool
}

// Decls holds the declaration arena plus payload tables.
type Decls struct {
	Arena *Arena[Decl]
	Fns   *Arena[FnDecl]
	Vars  *Arena[VarDecl]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{
		Arena: NewArena[Decl](capHint),
		Fns:   NewArena[FnDecl](capHint),
		Vars:  NewArena[VarDecl](capHint),
	}
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

func (d *Decls) NewFn(span source.Span, fn FnDecl) DeclID {
	payload := PayloadID(d.Fns.Allocate(fn))
	return DeclID(d.Arena.Allocate(Decl{Kind: DeclFn, Span: span, Payload: payload}))
}

func (d *Decls) NewVar(span source.Span, v VarDecl) DeclID {
	payload := PayloadID(d.Vars.Allocate(v))
	return DeclID(d.Arena.Allocate(Decl{Kind: DeclVar, Span: span, Payload: payload}))
}

// Fn returns the payload if id is a DeclFn node.
func (d *Decls) Fn(id DeclID) (*FnDecl, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}

func (d *Decls) Var(id DeclID) (*VarDecl, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclVar {
		return nil, false
	}
	return d.Vars.Get(uint32(decl.Payload)), true
}
