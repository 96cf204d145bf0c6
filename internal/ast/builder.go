package ast

import (
	"tsig/internal/source"
)

type Hints struct{ Files, Decls, Pats, Props, Types uint }

// Builder владеет всеми аренами одного разбора плюс интернером строк.
type Builder struct {
	Strings *source.Interner
	Files   *Files
	Decls   *Decls
	Pats    *Pats
	Props   *ObjProps
	Types   *TypeAnns
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 6
	}
	if hints.Pats == 0 {
		hints.Pats = 1 << 8
	}
	if hints.Props == 0 {
		hints.Props = 1 << 7
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	return &Builder{
		Strings: source.NewInterner(),
		Files:   NewFiles(hints.Files),
		Decls:   NewDecls(hints.Decls),
		Pats:    NewPats(hints.Pats),
		Props:   NewObjProps(hints.Props),
		Types:   NewTypeAnns(hints.Types),
	}
}

func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.Files.Get(file)
	f.Decls = append(f.Decls, decl)
}
