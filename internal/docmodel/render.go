package docmodel

import (
	"strings"
)

// String renders the descriptor to its deterministic signature form.
// Чистый обход дерева, без обращения к исходнику или AST.
func (p *ParamDef) String() string {
	var sb strings.Builder
	p.render(&sb)
	return sb.String()
}

func (p *ParamDef) render(sb *strings.Builder) {
	if p == nil {
		return
	}
	switch p.Kind {
	case ParamIdentifier:
		sb.WriteString(p.Name)
		p.renderSuffix(sb)

	case ParamArray:
		sb.WriteByte('[')
		for i, elem := range p.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			// пропуск (elision) рендерится пустотой между запятыми
			elem.render(sb)
		}
		sb.WriteByte(']')
		p.renderSuffix(sb)

	case ParamObject:
		sb.WriteByte('{')
		for i := range p.Props {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.Props[i].render(sb)
		}
		sb.WriteByte('}')
		p.renderSuffix(sb)

	case ParamRest:
		sb.WriteString("...")
		p.Arg.render(sb)
		p.renderType(sb)

	case ParamAssign:
		// текст дефолта опускается намеренно: в модели его нет
		p.Left.render(sb)
		p.renderType(sb)
	}
}

// renderSuffix пишет маркер опциональности и тип.
func (p *ParamDef) renderSuffix(sb *strings.Builder) {
	if p.Optional {
		sb.WriteByte('?')
	}
	p.renderType(sb)
}

func (p *ParamDef) renderType(sb *strings.Builder) {
	if p.Type != nil {
		sb.WriteString(": ")
		sb.WriteString(p.Type.Repr)
	}
}

// String renders a property to the form it takes inside an object signature.
func (d *ObjPatPropDef) String() string {
	var sb strings.Builder
	d.render(&sb)
	return sb.String()
}

func (d *ObjPatPropDef) render(sb *strings.Builder) {
	switch d.Kind {
	case ObjPropDefKeyValue, ObjPropDefAssign:
		// в сигнатуре видно только внешнее имя свойства
		sb.WriteString(d.Key)
	case ObjPropDefRest:
		sb.WriteString("...")
		d.Arg.render(sb)
	}
}

// RenderParams joins rendered parameters the way a signature line does.
func RenderParams(params []*ParamDef) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}
