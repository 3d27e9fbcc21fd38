package ue4

import (
	apperrors "github.com/naurium/icarus-mount-editor/errors"
	"github.com/naurium/icarus-mount-editor/ue4/internal/binary"
)

// Serialize encodes a List back to its binary form. Declared sizes are
// recomputed from the actual value bytes; the stored Size field of each
// property is ignored.
func Serialize(l *List) ([]byte, error) {
	w := binary.NewWriter()
	if err := encodeList(w, l.Properties, nil); err != nil {
		return nil, err
	}
	if l.Trailing != nil {
		w.WriteBytes(l.Trailing)
	} else {
		w.WriteBytes([]byte{0, 0, 0, 0})
	}
	return w.Bytes(), nil
}

// encodeList writes properties up to the first terminator node, then
// the "None" terminator itself.
func encodeList(w *binary.Writer, props []*Property, path []string) error {
	for _, p := range props {
		if p.Type == TypeNone {
			break
		}
		if err := encodeProperty(w, p, append(path, p.Name.Value)); err != nil {
			return err
		}
	}
	writeString(w, Str("None"))
	return nil
}

func encodeProperty(w *binary.Writer, p *Property, path []string) error {
	writeString(w, p.Name)
	writeString(w, p.WireTag())

	// The value bytes go through a scratch writer first so the size
	// field can be written before them.
	scratch := binary.NewWriter()
	var header func(*binary.Writer)

	switch p.Type {
	case TypeBool:
		// Bool stores its value in the tag and declares size zero.
		w.WriteInt32(0)
		w.WriteInt32(p.Index)
		w.WriteBool(p.Bool)
		w.WriteUint8(0)
		return nil
	case TypeEnum:
		header = func(hw *binary.Writer) {
			writeString(hw, p.Enum.Type)
			hw.WriteUint8(0)
		}
		writeString(scratch, p.Enum.Value)
	case TypeStruct:
		header = func(hw *binary.Writer) {
			writeString(hw, p.Struct.TypeName)
			hw.WriteBytes(p.Struct.GUID[:])
			hw.WriteUint8(0)
		}
		if err := encodeStructValue(scratch, p.Struct, path); err != nil {
			return err
		}
	case TypeArray:
		header = func(hw *binary.Writer) {
			writeString(hw, p.Array.Inner)
			hw.WriteUint8(0)
		}
		if err := encodeArrayValue(scratch, p.Array, path); err != nil {
			return err
		}
	case TypeMap:
		// Map has no tag header: the type strings count toward size.
		writeString(scratch, p.Map.Key)
		writeString(scratch, p.Map.Val)
		scratch.WriteUint8(0)
		scratch.WriteBytes(p.Map.Raw)
	default:
		header = func(hw *binary.Writer) {
			hw.WriteUint8(0)
		}
		if err := encodeSimple(scratch, p, path); err != nil {
			return err
		}
	}

	w.WriteInt32(int32(scratch.Len()))
	w.WriteInt32(p.Index)
	if header != nil {
		header(w)
	}
	w.WriteBytes(scratch.Bytes())
	return nil
}

func encodeSimple(w *binary.Writer, p *Property, path []string) error {
	switch p.Type {
	case TypeInt32:
		w.WriteInt32(p.I32)
	case TypeUInt32:
		w.WriteUint32(p.U32)
	case TypeInt64:
		w.WriteInt64(p.I64)
	case TypeFloat32:
		w.WriteFloat32(p.F32)
	case TypeFloat64:
		w.WriteFloat64(p.F64)
	case TypeStr, TypeName:
		writeString(w, p.Str)
	case TypeRaw:
		w.WriteBytes(p.Raw)
	default:
		return apperrors.New(apperrors.PhaseEncode, apperrors.KindInvalidInput).
			Path(path...).
			Detail("no encoder for %s", p.Type).
			Build()
	}
	return nil
}

func encodeStructValue(w *binary.Writer, sv *StructValue, path []string) error {
	if layout := LayoutFor(sv.TypeName.Value); layout != nil && (sv.Fixed || !taggedFields(sv)) {
		return encodeFixedStruct(w, sv, layout, path)
	}
	if err := encodeList(w, sv.Fields, path); err != nil {
		return err
	}
	w.WriteBytes(sv.Slack)
	return nil
}

// taggedFields reports whether the struct's fields look like decoded
// tagged properties rather than registry layout components.
func taggedFields(sv *StructValue) bool {
	for _, f := range sv.Fields {
		if !f.Tag.Null && f.Tag.Value != "" {
			return true
		}
	}
	return false
}

func encodeFixedStruct(w *binary.Writer, sv *StructValue, layout []FixedField, path []string) error {
	for _, f := range layout {
		field := sv.Field(f.Name)
		if field == nil {
			return apperrors.New(apperrors.PhaseEncode, apperrors.KindInvalidInput).
				Path(path...).
				Detail("%s struct missing component %s", sv.TypeName.Value, f.Name).
				Build()
		}
		switch f.Kind {
		case FieldFloat32:
			w.WriteFloat32(field.F32)
		case FieldFloat64:
			w.WriteFloat64(field.F64)
		case FieldByte:
			w.WriteUint8(field.Byte)
		case FieldInt64:
			w.WriteInt64(field.I64)
		case FieldGUID:
			raw := field.Raw
			if len(raw) != 16 {
				return apperrors.SizeMismatch(append(path, f.Name), 16, len(raw))
			}
			w.WriteBytes(raw)
		}
	}
	return nil
}

func encodeArrayValue(w *binary.Writer, av *ArrayValue, path []string) error {
	if av.Raw != nil {
		// Verbatim span for element types without a decode path. The
		// count prefix is part of the raw bytes.
		w.WriteBytes(av.Raw)
		return nil
	}

	switch av.Inner.Value {
	case "StructProperty":
		return encodeStructArray(w, av, path)
	case "ByteProperty":
		w.WriteInt32(int32(len(av.Bytes)))
		w.WriteBytes(av.Bytes)
	case "IntProperty":
		w.WriteInt32(int32(len(av.Ints)))
		for _, v := range av.Ints {
			w.WriteInt32(v)
		}
	case "FloatProperty":
		w.WriteInt32(int32(len(av.Floats)))
		for _, v := range av.Floats {
			w.WriteFloat32(v)
		}
	case "StrProperty":
		w.WriteInt32(int32(len(av.Strs)))
		for _, s := range av.Strs {
			writeString(w, s)
		}
	default:
		return apperrors.New(apperrors.PhaseEncode, apperrors.KindInvalidInput).
			Path(path...).
			Detail("no encoder for array of %s", av.Inner.Value).
			Build()
	}
	return nil
}

// encodeStructArray writes the element count, the shared prototype tag
// with a recomputed combined-size field, then each element's fields.
func encodeStructArray(w *binary.Writer, av *ArrayValue, path []string) error {
	w.WriteInt32(int32(len(av.Elements)))

	elemName := av.ElemName
	structType := av.ElemStruct
	if len(av.Elements) > 0 {
		if structType.Value == "" && !structType.Null {
			structType = av.Elements[0].Struct.TypeName
		}
		if elemName.Value == "" && !elemName.Null {
			elemName = av.Elements[0].Name
		}
	}
	elemType := av.ElemType
	if elemType.Value == "" && !elemType.Null {
		elemType = Str("StructProperty")
	}

	scratch := binary.NewWriter()
	for _, elem := range av.Elements {
		if err := encodeStructValue(scratch, elem.Struct, path); err != nil {
			return err
		}
	}

	writeString(w, elemName)
	writeString(w, elemType)
	w.WriteInt32(int32(scratch.Len()))
	w.WriteInt32(av.ElemIndex)
	writeString(w, structType)
	w.WriteBytes(av.ElemGUID[:])
	w.WriteUint8(0)
	w.WriteBytes(scratch.Bytes())
	return nil
}
