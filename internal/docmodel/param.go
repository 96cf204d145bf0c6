package docmodel

// Дескриптор параметра — каноническое, сериализуемое представление
// binding-паттерна. Дерево строится конвертером один раз и после этого
// не мутируется: рендер и сериализация могут идти из нескольких горутин.

// Sentinel text used where real content is deliberately not reconstructed.
const (
	// UnsupportedDefault stands in for a default-value expression.
	// Выражения мы не реконструируем, фиксируем только их наличие.
	UnsupportedDefault = "[UNSUPPORTED]"
	// UnavailableKey stands in for a computed property key when no
	// source-text handle was supplied.
	UnavailableKey = "<UNAVAILABLE>"
)

// ParamKind is the variant tag of a ParamDef.
type ParamKind uint8

const (
	ParamInvalid ParamKind = iota
	ParamIdentifier
	ParamArray
	ParamObject
	ParamRest
	ParamAssign
)

func (k ParamKind) String() string {
	switch k {
	case ParamIdentifier:
		return "identifier"
	case ParamArray:
		return "array"
	case ParamObject:
		return "object"
	case ParamRest:
		return "rest"
	case ParamAssign:
		return "assign"
	}
	return "invalid"
}

// TypeRef is an opaque, independently renderable type descriptor.
// Сейчас это просто текст аннотации; формат скрыт за типом, чтобы
// потребители не завязывались на представление.
type TypeRef struct {
	Repr string
}

// ParamDef is one node of the descriptor tree. Which fields are meaningful
// depends on Kind:
//   - Identifier: Name, Optional, Type
//   - Array:      Elems (nil entry = elided slot), Optional, Type
//   - Object:     Props, Optional, Type
//   - Rest:       Arg, Type
//   - Assign:     Left, Right (always UnsupportedDefault), Type
type ParamDef struct {
	Kind     ParamKind
	Name     string
	Optional bool
	Elems    []*ParamDef
	Props    []ObjPatPropDef
	Arg      *ParamDef
	Left     *ParamDef
	Right    string
	Type     *TypeRef
}

// ObjPropDefKind is the variant tag of an ObjPatPropDef.
type ObjPropDefKind uint8

const (
	ObjPropDefInvalid ObjPropDefKind = iota
	ObjPropDefKeyValue
	ObjPropDefAssign
	ObjPropDefRest
)

func (k ObjPropDefKind) String() string {
	switch k {
	case ObjPropDefKeyValue:
		return "keyValue"
	case ObjPropDefAssign:
		return "assign"
	case ObjPropDefRest:
		return "rest"
	}
	return "invalid"
}

// ObjPatPropDef is one property of an Object descriptor:
//   - KeyValue: Key (externally visible name), Value (converted pattern;
//     внутреннее имя-перепривязка в Key не попадает)
//   - Assign:   Key, HasDefault (текст дефолта не сохраняется)
//   - Rest:     Arg
type ObjPatPropDef struct {
	Kind       ObjPropDefKind
	Key        string
	Value      *ParamDef
	HasDefault bool
	Arg        *ParamDef
}
