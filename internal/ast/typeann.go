package ast

import (
	"tsig/internal/source"
)

// TypeAnn — типовая аннотация как сырой спан исходника.
// Типы мы не разрешаем и не интерпретируем; их текст проходит насквозь
// в дескриптор и дальше к рендереру типов.
type TypeAnn struct {
	Span source.Span
}

// TypeAnns is the arena of type annotations.
type TypeAnns struct {
	Arena *Arena[TypeAnn]
}

func NewTypeAnns(capHint uint) *TypeAnns {
	return &TypeAnns{Arena: NewArena[TypeAnn](capHint)}
}

func (t *TypeAnns) New(span source.Span) TypeID {
	return TypeID(t.Arena.Allocate(TypeAnn{Span: span}))
}

func (t *TypeAnns) Get(id TypeID) *TypeAnn {
	return t.Arena.Get(uint32(id))
}
