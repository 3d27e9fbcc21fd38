package ue4

import (
	"errors"
	"fmt"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
	"github.com/naurium/icarus-mount-editor/ue4/internal/binary"
)

// Deserialize decodes a tagged property stream into a List. The
// terminator node and any bytes after it are retained so that an
// unmodified list serializes back to the identical byte sequence.
func Deserialize(data []byte) (*List, error) {
	r := binary.NewReader(data)
	list := &List{}
	for r.Remaining() >= 4 {
		p, err := decodeProperty(r, nil)
		if err != nil {
			return nil, decodeError(err)
		}
		list.Properties = append(list.Properties, p)
		if p.Type == TypeNone {
			trailing, err := r.ReadBytes(r.Remaining())
			if err != nil {
				return nil, decodeError(err)
			}
			list.Trailing = trailing
			break
		}
	}
	return list, nil
}

func decodeError(err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, binary.ErrTruncated) {
		return apperrors.Wrap(apperrors.PhaseDecode, apperrors.KindTruncatedStream,
			err, "property stream ended early")
	}
	return apperrors.Wrap(apperrors.PhaseDecode, apperrors.KindInvalidData, err, "")
}

// decodeProperty reads one tagged property. A "None" or null name
// yields a TypeNone node with no further fields.
func decodeProperty(r *binary.Reader, path []string) (*Property, error) {
	name, err := readString(r)
	if err != nil {
		return nil, err
	}
	if name.IsNone() {
		return &Property{Name: name, Type: TypeNone}, nil
	}
	path = append(path, name.Value)

	typeTag, err := readString(r)
	if err != nil {
		return nil, pathErr(path, err)
	}
	size, err := r.ReadInt32()
	if err != nil {
		return nil, pathErr(path, err)
	}
	index, err := r.ReadInt32()
	if err != nil {
		return nil, pathErr(path, err)
	}

	p := &Property{Name: name, Tag: typeTag, Size: size, Index: index}
	p.Type = typeForTag[typeTag.Value]
	if _, known := typeForTag[typeTag.Value]; !known {
		p.Type = TypeRaw
	}

	switch p.Type {
	case TypeBool:
		if p.Bool, err = r.ReadBool(); err != nil {
			return nil, pathErr(path, err)
		}
		if _, err = r.ReadByte(); err != nil {
			return nil, pathErr(path, err)
		}
	case TypeEnum:
		err = decodeEnum(r, p)
	case TypeStruct:
		err = decodeStruct(r, p, path)
	case TypeArray:
		err = decodeArray(r, p, path)
	case TypeMap:
		err = decodeMap(r, p)
	default:
		// Simple and unknown types share the single pad byte.
		if _, err = r.ReadByte(); err != nil {
			return nil, pathErr(path, err)
		}
		err = decodeSimple(r, p)
	}
	if err != nil {
		return nil, pathErr(path, err)
	}
	return p, nil
}

func decodeSimple(r *binary.Reader, p *Property) (err error) {
	switch p.Type {
	case TypeInt32:
		p.I32, err = r.ReadInt32()
	case TypeUInt32:
		p.U32, err = r.ReadUint32()
	case TypeInt64:
		p.I64, err = r.ReadInt64()
	case TypeFloat32:
		p.F32, err = r.ReadFloat32()
	case TypeFloat64:
		p.F64, err = r.ReadFloat64()
	case TypeStr, TypeName:
		p.Str, err = readString(r)
	case TypeRaw:
		if p.Size > 0 {
			p.Raw, err = r.ReadBytes(int(p.Size))
		}
	}
	return err
}

func decodeEnum(r *binary.Reader, p *Property) error {
	enumType, err := readString(r)
	if err != nil {
		return err
	}
	if _, err := r.ReadByte(); err != nil {
		return err
	}
	value, err := readString(r)
	if err != nil {
		return err
	}
	p.Enum = &EnumValue{Type: enumType, Value: value}
	return nil
}

func decodeStruct(r *binary.Reader, p *Property, path []string) error {
	structType, err := readString(r)
	if err != nil {
		return err
	}
	sv := &StructValue{TypeName: structType}
	guid, err := r.ReadBytes(16)
	if err != nil {
		return err
	}
	copy(sv.GUID[:], guid)
	if _, err := r.ReadByte(); err != nil {
		return err
	}
	p.Struct = sv

	if layout := LayoutFor(structType.Value); layout != nil {
		sv.Fixed = true
		return decodeFixedStruct(r, sv, layout)
	}

	// Tagged struct body, bounded by the declared size. Bytes between
	// an early terminator and the size boundary are kept as slack.
	start := r.Position()
	end := start + int(p.Size)
	for r.Position() < end && r.Remaining() >= 4 {
		field, err := decodeProperty(r, path)
		if err != nil {
			return err
		}
		if field.Type == TypeNone {
			break
		}
		sv.Fields = append(sv.Fields, field)
	}
	if read := r.Position() - start; read < int(p.Size) {
		slack, err := r.ReadBytes(int(p.Size) - read)
		if err != nil {
			return err
		}
		sv.Slack = slack
	}
	return nil
}

func decodeFixedStruct(r *binary.Reader, sv *StructValue, layout []FixedField) error {
	for _, f := range layout {
		field := &Property{Name: Str(f.Name)}
		var err error
		switch f.Kind {
		case FieldFloat32:
			field.Type = TypeFloat32
			field.F32, err = r.ReadFloat32()
		case FieldFloat64:
			field.Type = TypeFloat64
			field.F64, err = r.ReadFloat64()
		case FieldByte:
			field.Type = TypeByte
			field.Byte, err = r.ReadByte()
		case FieldInt64:
			field.Type = TypeInt64
			field.I64, err = r.ReadInt64()
		case FieldGUID:
			field.Type = TypeRaw
			field.Raw, err = r.ReadBytes(16)
		default:
			err = fmt.Errorf("unhandled layout field kind %d", f.Kind)
		}
		if err != nil {
			return err
		}
		sv.Fields = append(sv.Fields, field)
	}
	return nil
}

func decodeArray(r *binary.Reader, p *Property, path []string) error {
	inner, err := readString(r)
	if err != nil {
		return err
	}
	if _, err := r.ReadByte(); err != nil {
		return err
	}
	av := &ArrayValue{Inner: inner}
	p.Array = av

	switch inner.Value {
	case "StructProperty":
		return decodeStructArray(r, av, path)
	case "ByteProperty":
		count, err := r.ReadInt32()
		if err != nil {
			return err
		}
		av.Bytes, err = r.ReadBytes(int(count))
		return err
	case "IntProperty":
		count, err := r.ReadInt32()
		if err != nil {
			return err
		}
		av.Ints = make([]int32, 0, sliceCap(r, count, 4))
		for i := int32(0); i < count; i++ {
			v, err := r.ReadInt32()
			if err != nil {
				return err
			}
			av.Ints = append(av.Ints, v)
		}
		return nil
	case "FloatProperty":
		count, err := r.ReadInt32()
		if err != nil {
			return err
		}
		av.Floats = make([]float32, 0, sliceCap(r, count, 4))
		for i := int32(0); i < count; i++ {
			v, err := r.ReadFloat32()
			if err != nil {
				return err
			}
			av.Floats = append(av.Floats, v)
		}
		return nil
	case "StrProperty":
		count, err := r.ReadInt32()
		if err != nil {
			return err
		}
		av.Strs = make([]String, 0, sliceCap(r, count, 4))
		for i := int32(0); i < count; i++ {
			s, err := readString(r)
			if err != nil {
				return err
			}
			av.Strs = append(av.Strs, s)
		}
		return nil
	default:
		// No decode path for this element type: keep the whole value
		// span, count prefix included, for verbatim re-encode.
		av.Raw, err = r.ReadBytes(int(p.Size))
		return err
	}
}

// sliceCap bounds a wire-declared element count by what the remaining
// bytes could possibly hold at elemSize bytes apiece. A corrupt count
// then fails as a short read instead of driving a huge preallocation.
func sliceCap(r *binary.Reader, count int32, elemSize int) int {
	c := int(count)
	if limit := r.Remaining() / elemSize; c > limit {
		c = limit
	}
	if c < 0 {
		c = 0
	}
	return c
}

// decodeStructArray reads the element count, a prototype tag shared by
// all elements, then each element's field list: packed components for
// fixed-layout struct types, a tagged list otherwise.
func decodeStructArray(r *binary.Reader, av *ArrayValue, path []string) error {
	count, err := r.ReadInt32()
	if err != nil {
		return err
	}

	elemName, err := readString(r)
	if err != nil {
		return err
	}
	if elemName.IsNone() {
		return apperrors.New(apperrors.PhaseDecode, apperrors.KindInvalidData).
			Path(path...).
			Offset(r.Position()).
			Detail("struct array prototype tag missing").
			Build()
	}
	elemType, err := readString(r)
	if err != nil {
		return err
	}
	if _, err := r.ReadInt32(); err != nil { // combined element size, recomputed on encode
		return err
	}
	elemIndex, err := r.ReadInt32()
	if err != nil {
		return err
	}
	structType, err := readString(r)
	if err != nil {
		return err
	}
	guid, err := r.ReadBytes(16)
	if err != nil {
		return err
	}
	if _, err := r.ReadByte(); err != nil {
		return err
	}

	av.ElemName = elemName
	av.ElemType = elemType
	av.ElemStruct = structType
	av.ElemIndex = elemIndex
	copy(av.ElemGUID[:], guid)

	// Fixed-layout element types pack their components back to back
	// with no tags and no per-element terminator.
	if layout := LayoutFor(structType.Value); layout != nil {
		for i := int32(0); i < count; i++ {
			elem := &Property{
				Name: elemName,
				Type: TypeStruct,
				Struct: &StructValue{
					TypeName: structType,
					Fixed:    true,
				},
			}
			if err := decodeFixedStruct(r, elem.Struct, layout); err != nil {
				return err
			}
			av.Elements = append(av.Elements, elem)
		}
		return nil
	}

	for i := int32(0); i < count; i++ {
		// Every element carries at least its terminator, so a count
		// the remaining bytes cannot satisfy fails here instead of
		// looping on empty elements.
		if r.Remaining() < 4 {
			return apperrors.Truncated(r.Position(), 4, r.Remaining())
		}
		elem := &Property{
			Name: elemName,
			Type: TypeStruct,
			Struct: &StructValue{
				TypeName: structType,
			},
		}
		elemPath := append(path, fmt.Sprintf("%s[%d]", elemName.Value, i))
		for r.Remaining() >= 4 {
			field, err := decodeProperty(r, elemPath)
			if err != nil {
				return err
			}
			if field.Type == TypeNone {
				break
			}
			elem.Struct.Fields = append(elem.Struct.Fields, field)
		}
		av.Elements = append(av.Elements, elem)
	}
	return nil
}

// decodeMap keeps map entries as raw bytes. Unlike other containers,
// the key and value type tags sit inside the declared size span.
func decodeMap(r *binary.Reader, p *Property) error {
	start := r.Position()
	key, err := readString(r)
	if err != nil {
		return err
	}
	val, err := readString(r)
	if err != nil {
		return err
	}
	if _, err := r.ReadByte(); err != nil {
		return err
	}
	mv := &MapValue{Key: key, Val: val}
	if remaining := int(p.Size) - (r.Position() - start); remaining > 0 {
		if mv.Raw, err = r.ReadBytes(remaining); err != nil {
			return err
		}
	}
	p.Map = mv
	return nil
}

func pathErr(path []string, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && len(appErr.Path) > 0 {
		return err
	}
	if errors.As(err, &appErr) {
		appErr.Path = append([]string(nil), path...)
		return appErr
	}
	kind := apperrors.KindInvalidData
	if errors.Is(err, binary.ErrTruncated) {
		kind = apperrors.KindTruncatedStream
	}
	return apperrors.New(apperrors.PhaseDecode, kind).
		Path(path...).
		Cause(err).
		Build()
}
