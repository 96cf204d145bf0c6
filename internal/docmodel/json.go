package docmodel

import (
	"encoding/json"
	"fmt"
)

// Сериализация дескрипторов: tagged union с полем "kind" — формат
// документационной схемы. Для каждого варианта пишутся только его поля,
// round-trip даёт дерево с идентичным рендером.

func (t *TypeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Repr)
}

func (t *TypeRef) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.Repr)
}

type identifierJSON struct {
	Kind     string   `json:"kind"`
	Name     string   `json:"name"`
	Optional bool     `json:"optional"`
	Type     *TypeRef `json:"type,omitempty"`
}

type arrayJSON struct {
	Kind     string      `json:"kind"`
	Elements []*ParamDef `json:"elements"`
	Optional bool        `json:"optional"`
	Type     *TypeRef    `json:"type,omitempty"`
}

type objectJSON struct {
	Kind     string          `json:"kind"`
	Props    []ObjPatPropDef `json:"properties"`
	Optional bool            `json:"optional"`
	Type     *TypeRef        `json:"type,omitempty"`
}

type restJSON struct {
	Kind string   `json:"kind"`
	Arg  *ParamDef `json:"arg"`
	Type *TypeRef `json:"type,omitempty"`
}

type assignJSON struct {
	Kind  string   `json:"kind"`
	Left  *ParamDef `json:"left"`
	Right string   `json:"right"`
	Type  *TypeRef `json:"type,omitempty"`
}

func (p *ParamDef) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case ParamIdentifier:
		return json.Marshal(identifierJSON{Kind: p.Kind.String(), Name: p.Name, Optional: p.Optional, Type: p.Type})
	case ParamArray:
		elems := p.Elems
		if elems == nil {
			elems = []*ParamDef{}
		}
		return json.Marshal(arrayJSON{Kind: p.Kind.String(), Elements: elems, Optional: p.Optional, Type: p.Type})
	case ParamObject:
		props := p.Props
		if props == nil {
			props = []ObjPatPropDef{}
		}
		return json.Marshal(objectJSON{Kind: p.Kind.String(), Props: props, Optional: p.Optional, Type: p.Type})
	case ParamRest:
		return json.Marshal(restJSON{Kind: p.Kind.String(), Arg: p.Arg, Type: p.Type})
	case ParamAssign:
		return json.Marshal(assignJSON{Kind: p.Kind.String(), Left: p.Left, Right: p.Right, Type: p.Type})
	default:
		return nil, fmt.Errorf("marshal: invalid param kind %d", p.Kind)
	}
}

func (p *ParamDef) UnmarshalJSON(data []byte) error {
	var tag struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Kind {
	case "identifier":
		var v identifierJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = ParamDef{Kind: ParamIdentifier, Name: v.Name, Optional: v.Optional, Type: v.Type}
	case "array":
		var v arrayJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = ParamDef{Kind: ParamArray, Elems: v.Elements, Optional: v.Optional, Type: v.Type}
	case "object":
		var v objectJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = ParamDef{Kind: ParamObject, Props: v.Props, Optional: v.Optional, Type: v.Type}
	case "rest":
		var v restJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = ParamDef{Kind: ParamRest, Arg: v.Arg, Type: v.Type}
	case "assign":
		var v assignJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*p = ParamDef{Kind: ParamAssign, Left: v.Left, Right: v.Right, Type: v.Type}
	default:
		return fmt.Errorf("unmarshal: unknown param kind %q", tag.Kind)
	}
	return nil
}

type keyValueJSON struct {
	Kind  string   `json:"kind"`
	Key   string   `json:"key"`
	Value *ParamDef `json:"value"`
}

type propAssignJSON struct {
	Kind       string `json:"kind"`
	Key        string `json:"key"`
	HasDefault bool   `json:"hasDefault"`
}

type propRestJSON struct {
	Kind string   `json:"kind"`
	Arg  *ParamDef `json:"arg"`
}

func (d ObjPatPropDef) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case ObjPropDefKeyValue:
		return json.Marshal(keyValueJSON{Kind: d.Kind.String(), Key: d.Key, Value: d.Value})
	case ObjPropDefAssign:
		return json.Marshal(propAssignJSON{Kind: d.Kind.String(), Key: d.Key, HasDefault: d.HasDefault})
	case ObjPropDefRest:
		return json.Marshal(propRestJSON{Kind: d.Kind.String(), Arg: d.Arg})
	default:
		return nil, fmt.Errorf("marshal: invalid property kind %d", d.Kind)
	}
}

func (d *ObjPatPropDef) UnmarshalJSON(data []byte) error {
	var tag struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Kind {
	case "keyValue":
		var v keyValueJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*d = ObjPatPropDef{Kind: ObjPropDefKeyValue, Key: v.Key, Value: v.Value}
	case "assign":
		var v propAssignJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*d = ObjPatPropDef{Kind: ObjPropDefAssign, Key: v.Key, HasDefault: v.HasDefault}
	case "rest":
		var v propRestJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*d = ObjPatPropDef{Kind: ObjPropDefRest, Arg: v.Arg}
	default:
		return fmt.Errorf("unmarshal: unknown property kind %q", tag.Kind)
	}
	return nil
}
