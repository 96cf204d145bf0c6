package docmodel

import (
	"fmt"

	"tsig/internal/ast"
	"tsig/internal/source"
)

// TypeResolver converts a type-annotation node into a printable descriptor.
// Инжектится снаружи: ядро конвертера не знает формата типов.
type TypeResolver interface {
	ResolveType(id ast.TypeID) *TypeRef
}

// SourceText fetches the exact source substring for a span. Используется
// только для вычисляемых ключей; *source.FileSet реализует интерфейс.
type SourceText interface {
	SpanText(span source.Span) string
}

// SpanTypeResolver renders a type annotation as its raw source text.
type SpanTypeResolver struct {
	Types *ast.TypeAnns
	Src   SourceText
}

func (r *SpanTypeResolver) ResolveType(id ast.TypeID) *TypeRef {
	if !id.IsValid() || r.Types == nil || r.Src == nil {
		return nil
	}
	ann := r.Types.Get(id)
	if ann == nil {
		return nil
	}
	text := r.Src.SpanText(ann.Span)
	if text == "" {
		return nil
	}
	return &TypeRef{Repr: text}
}

// BadPatternError reports a pattern node of a kind that cannot legally occur
// at the position being converted. Одна сломанная декларация деградирует,
// весь прогон продолжается.
type BadPatternError struct {
	Kind ast.PatKind
	Span source.Span
}

func (e *BadPatternError) Error() string {
	return fmt.Sprintf("illegal %s pattern at byte %d..%d", e.Kind, e.Span.Start, e.Span.End)
}

// Converter builds descriptor trees from arena-resident patterns.
// Types и Src опциональны: без них тип/ключ деградируют, не падают.
type Converter struct {
	Pats    *ast.Pats
	Props   *ast.ObjProps
	Strings *source.Interner
	Types   TypeResolver
	Src     SourceText
}

// NewConverter wires a converter over one parse's arenas.
func NewConverter(b *ast.Builder, types TypeResolver, src SourceText) *Converter {
	return &Converter{
		Pats:    b.Pats,
		Props:   b.Props,
		Strings: b.Strings,
		Types:   types,
		Src:     src,
	}
}

// ConvertPattern converts any of the five binding-pattern kinds. Это общий
// вход: вложенные паттерны идут через него же.
func (c *Converter) ConvertPattern(id ast.PatID) (*ParamDef, error) {
	pat := c.Pats.Get(id)
	if pat == nil {
		return nil, &BadPatternError{Kind: ast.PatInvalid}
	}

	switch pat.Kind {
	case ast.PatIdent:
		ident, _ := c.Pats.Ident(id)
		return &ParamDef{
			Kind:     ParamIdentifier,
			Name:     c.lookup(ident.Name),
			Optional: ident.Optional,
			Type:     c.resolveType(ident.Type),
		}, nil

	case ast.PatArray:
		arr, _ := c.Pats.Array(id)
		elems := make([]*ParamDef, 0, len(arr.Elems))
		for _, elemID := range arr.Elems {
			if !elemID.IsValid() {
				// пропуск сохраняем позиционно
				elems = append(elems, nil)
				continue
			}
			elem, err := c.ConvertPattern(elemID)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return &ParamDef{
			Kind:     ParamArray,
			Elems:    elems,
			Optional: arr.Optional,
			Type:     c.resolveType(arr.Type),
		}, nil

	case ast.PatObject:
		obj, _ := c.Pats.Object(id)
		props := make([]ObjPatPropDef, 0, len(obj.Props))
		for _, propID := range obj.Props {
			prop, err := c.convertObjProp(propID)
			if err != nil {
				return nil, err
			}
			props = append(props, prop)
		}
		return &ParamDef{
			Kind:     ParamObject,
			Props:    props,
			Optional: obj.Optional,
			Type:     c.resolveType(obj.Type),
		}, nil

	case ast.PatRest:
		rest, _ := c.Pats.Rest(id)
		arg, err := c.ConvertPattern(rest.Arg)
		if err != nil {
			return nil, err
		}
		return &ParamDef{
			Kind: ParamRest,
			Arg:  arg,
			Type: c.resolveType(rest.Type),
		}, nil

	case ast.PatAssign:
		assign, _ := c.Pats.Assign(id)
		left, err := c.ConvertPattern(assign.Left)
		if err != nil {
			return nil, err
		}
		return &ParamDef{
			Kind:  ParamAssign,
			Left:  left,
			Right: UnsupportedDefault,
			Type:  c.resolveType(assign.Type),
		}, nil

	default:
		return nil, &BadPatternError{Kind: pat.Kind, Span: pat.Span}
	}
}

// ConvertFnTypeParam converts a parameter of an ambient function signature.
// Узкая грамматика: дефолты здесь нелегальны, Assign отдаёт ошибку.
func (c *Converter) ConvertFnTypeParam(id ast.PatID) (*ParamDef, error) {
	pat := c.Pats.Get(id)
	if pat == nil {
		return nil, &BadPatternError{Kind: ast.PatInvalid}
	}
	switch pat.Kind {
	case ast.PatIdent, ast.PatArray, ast.PatObject, ast.PatRest:
		return c.ConvertPattern(id)
	default:
		return nil, &BadPatternError{Kind: pat.Kind, Span: pat.Span}
	}
}

func (c *Converter) convertObjProp(id ast.ObjPropID) (ObjPatPropDef, error) {
	prop := c.Props.Get(id)
	if prop == nil {
		return ObjPatPropDef{}, &BadPatternError{Kind: ast.PatInvalid}
	}

	switch prop.Kind {
	case ast.ObjPropKeyValue:
		value, err := c.ConvertPattern(prop.Value)
		if err != nil {
			return ObjPatPropDef{}, err
		}
		return ObjPatPropDef{
			Kind:  ObjPropDefKeyValue,
			Key:   c.resolvePropName(prop.Key),
			Value: value,
		}, nil

	case ast.ObjPropShorthand:
		return ObjPatPropDef{
			Kind:       ObjPropDefAssign,
			Key:        c.lookup(prop.Name),
			HasDefault: prop.HasDefault,
		}, nil

	case ast.ObjPropRest:
		arg, err := c.ConvertPattern(prop.Value)
		if err != nil {
			return ObjPatPropDef{}, err
		}
		return ObjPatPropDef{
			Kind: ObjPropDefRest,
			Arg:  arg,
		}, nil

	default:
		return ObjPatPropDef{}, &BadPatternError{Kind: ast.PatInvalid, Span: prop.Span}
	}
}

func (c *Converter) resolveType(id ast.TypeID) *TypeRef {
	if !id.IsValid() || c.Types == nil {
		return nil
	}
	return c.Types.ResolveType(id)
}

func (c *Converter) lookup(id source.StringID) string {
	if c.Strings == nil {
		return ""
	}
	s, _ := c.Strings.Lookup(id)
	return s
}
