package ue4

import (
	"strconv"
	"strings"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
)

// Find resolves a dot-separated path against a property list and
// returns the matching property, or nil. Path segments name properties;
// a segment may carry an array index to select a struct array element:
//
//	Find(props, "MountName")
//	Find(props, "CharacterRecord.CurrentHealth")
//	Find(props, "SavedInventories[0].Slots")
//
// Struct fields and struct array elements are the only containers the
// path descends into.
func Find(props []*Property, path string) *Property {
	name, rest, _ := strings.Cut(path, ".")

	index := -1
	if open := strings.IndexByte(name, '['); open >= 0 && strings.HasSuffix(name, "]") {
		idx, err := strconv.Atoi(name[open+1 : len(name)-1])
		if err != nil {
			return nil
		}
		name, index = name[:open], idx
	}

	for _, p := range props {
		if p.Type == TypeNone || p.Name.Value != name {
			continue
		}
		target := p
		if index >= 0 {
			if p.Type != TypeArray || index >= len(p.Array.Elements) {
				return nil
			}
			target = p.Array.Elements[index]
		}
		if rest == "" {
			return target
		}
		return Find(children(target), rest)
	}
	return nil
}

// children returns the nested property list the path can descend into.
func children(p *Property) []*Property {
	switch p.Type {
	case TypeStruct:
		return p.Struct.Fields
	case TypeArray:
		return p.Array.Elements
	}
	return nil
}

// SetValue resolves path and assigns value to the property it names.
// The value must suit the property's type: bool for BoolProperty,
// any Go integer for the integer types, float32/float64 for the float
// types, string or String for the string-like types and enum values.
func SetValue(props []*Property, path string, value any) error {
	p := Find(props, path)
	if p == nil {
		return apperrors.NotFound(apperrors.PhaseLookup, "property", path)
	}
	return p.SetValue(value)
}

// SetValue assigns value to the property, converting from the natural
// Go representations of its type.
func (p *Property) SetValue(value any) error {
	switch p.Type {
	case TypeBool:
		v, ok := value.(bool)
		if !ok {
			return badValue(p, value)
		}
		p.Bool = v
	case TypeByte:
		n, ok := asInt64(value)
		if !ok || n < 0 || n > 255 {
			return badValue(p, value)
		}
		p.Byte = byte(n)
	case TypeInt32:
		n, ok := asInt64(value)
		if !ok || n < -1<<31 || n > 1<<31-1 {
			return badValue(p, value)
		}
		p.I32 = int32(n)
	case TypeUInt32:
		n, ok := asInt64(value)
		if !ok || n < 0 || n > 1<<32-1 {
			return badValue(p, value)
		}
		p.U32 = uint32(n)
	case TypeInt64:
		n, ok := asInt64(value)
		if !ok {
			return badValue(p, value)
		}
		p.I64 = n
	case TypeFloat32:
		f, ok := asFloat64(value)
		if !ok {
			return badValue(p, value)
		}
		p.F32 = float32(f)
	case TypeFloat64:
		f, ok := asFloat64(value)
		if !ok {
			return badValue(p, value)
		}
		p.F64 = f
	case TypeStr, TypeName:
		s, ok := asString(value)
		if !ok {
			return badValue(p, value)
		}
		p.Str = s
	case TypeEnum:
		s, ok := asString(value)
		if !ok {
			return badValue(p, value)
		}
		p.Enum.Value = s
	default:
		return apperrors.New(apperrors.PhaseLookup, apperrors.KindInvalidInput).
			Path(p.Name.Value).
			Detail("cannot assign to %s property", p.Type).
			Build()
	}
	return nil
}

func badValue(p *Property, value any) error {
	return apperrors.New(apperrors.PhaseLookup, apperrors.KindInvalidInput).
		Path(p.Name.Value).
		Value(value).
		Detail("value does not fit %s", p.Type).
		Build()
}

func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint32:
		return int64(v), true
	case byte:
		return int64(v), true
	case float64:
		if v == float64(int64(v)) {
			return int64(v), true
		}
	}
	return 0, false
}

func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func asString(value any) (String, bool) {
	switch v := value.(type) {
	case string:
		return Str(v), true
	case String:
		return v, true
	}
	return String{}, false
}

// CloneList deep-copies a list by round-tripping it through the codec.
func CloneList(l *List) (*List, error) {
	data, err := Serialize(l)
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}
