package ue4

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the value kind of a decoded property.
type Type int

const (
	// TypeNone marks a list terminator node ("None" name on the wire).
	TypeNone Type = iota
	TypeBool
	TypeByte
	TypeInt32
	TypeUInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeStr
	TypeName
	TypeEnum
	TypeStruct
	TypeArray
	TypeMap
	// TypeRaw carries the undecoded payload of a property whose wire
	// type tag is not recognized. The bytes pass through encoding
	// untouched.
	TypeRaw
)

// tagForType maps a decoded Type back to its canonical wire tag.
var tagForType = map[Type]string{
	TypeBool:    "BoolProperty",
	TypeByte:    "ByteProperty",
	TypeInt32:   "IntProperty",
	TypeUInt32:  "UInt32Property",
	TypeInt64:   "Int64Property",
	TypeFloat32: "FloatProperty",
	TypeFloat64: "DoubleProperty",
	TypeStr:     "StrProperty",
	TypeName:    "NameProperty",
	TypeEnum:    "EnumProperty",
	TypeStruct:  "StructProperty",
	TypeArray:   "ArrayProperty",
	TypeMap:     "MapProperty",
}

// typeForTag maps a wire type tag to the decoded Type that handles it.
// Absent tags decode through the raw passthrough path.
var typeForTag = map[string]Type{
	"BoolProperty":   TypeBool,
	"IntProperty":    TypeInt32,
	"UInt32Property": TypeUInt32,
	"Int64Property":  TypeInt64,
	"FloatProperty":  TypeFloat32,
	"DoubleProperty": TypeFloat64,
	"StrProperty":    TypeStr,
	"NameProperty":   TypeName,
	"EnumProperty":   TypeEnum,
	"StructProperty": TypeStruct,
	"ArrayProperty":  TypeArray,
	"MapProperty":    TypeMap,
}

func (t Type) String() string {
	if t == TypeNone {
		return "None"
	}
	if t == TypeRaw {
		return "Raw"
	}
	if tag, ok := tagForType[t]; ok {
		return tag
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// String is a UE4 FString: a value plus the encoding it was read with,
// so that unmodified strings re-encode byte for byte. A Null string is
// distinct from an empty one on the wire (length prefix 0 versus 1).
type String struct {
	Value string
	// Wide records that the string was stored as UTF-16LE. The writer
	// honors it even for ASCII content, so decoded strings re-encode
	// in their original form. Strings built in memory leave it false
	// and encode narrow when the value allows.
	Wide bool
	// Null marks the zero-length-prefix form.
	Null bool
}

// Str builds a non-null narrow String.
func Str(v string) String {
	return String{Value: v}
}

// NullString is the zero-length-prefix string form.
var NullString = String{Null: true}

func (s String) String() string {
	return s.Value
}

// IsNone reports whether the string names the list terminator. A null
// string terminates a list the same way "None" does.
func (s String) IsNone() bool {
	return s.Null || s.Value == "None"
}

// EnumValue is the payload of an EnumProperty: the enum's type name
// from the tag header plus the selected constant.
type EnumValue struct {
	Type  String
	Value String
}

// StructValue is the payload of a StructProperty. Fixed-layout structs
// (Vector, Rotator, ...) decode their components into synthetic named
// fields so path lookup works uniformly; for those Fixed is true and
// the encoder writes the registry layout instead of tagged fields.
type StructValue struct {
	TypeName String
	// GUID is the 16-byte struct GUID from the tag header, replayed
	// verbatim on encode.
	GUID [16]byte
	// Fixed marks a registry-layout struct.
	Fixed  bool
	Fields []*Property
	// Slack holds bytes that followed an early terminator inside a
	// tagged struct body, within the declared size. They are replayed
	// on encode.
	Slack []byte
}

// Field returns the named field, or nil.
func (s *StructValue) Field(name string) *Property {
	for _, f := range s.Fields {
		if f.Name.Value == name {
			return f
		}
	}
	return nil
}

// ArrayValue is the payload of an ArrayProperty. Exactly one of the
// element slices is populated, selected by Inner.
type ArrayValue struct {
	// Inner is the element type tag from the array header.
	Inner String

	// Prototype tag fields for struct-element arrays, replayed on
	// encode with a recomputed size.
	ElemName   String
	ElemType   String
	ElemStruct String
	ElemGUID   [16]byte
	ElemIndex  int32

	// Elements holds struct array members, each a TypeStruct property
	// wrapping a tagged field list.
	Elements []*Property

	Ints   []int32
	Floats []float32
	Strs   []String
	Bytes  []byte

	// Raw is the whole undecoded value span for inner types without a
	// decode path.
	Raw []byte
}

// Len returns the element count for whichever representation is
// populated.
func (a *ArrayValue) Len() int {
	switch {
	case a.Elements != nil:
		return len(a.Elements)
	case a.Ints != nil:
		return len(a.Ints)
	case a.Floats != nil:
		return len(a.Floats)
	case a.Strs != nil:
		return len(a.Strs)
	case a.Bytes != nil:
		return len(a.Bytes)
	}
	return 0
}

// MapValue is the payload of a MapProperty. Entries are kept as raw
// bytes; only the key and value type tags are decoded.
type MapValue struct {
	Key String
	Val String
	Raw []byte
}

// Property is one decoded tagged property.
type Property struct {
	Name Name
	Type Type
	// Tag is the wire type string as read. Empty for properties built
	// in code; the encoder then derives the canonical tag from Type.
	Tag String
	// Size is the declared value size from decode. Descriptive only:
	// the encoder recomputes it.
	Size int32
	// Index is the tag's array index field, replayed on encode.
	Index int32

	Bool bool
	Byte byte
	I32  int32
	U32  uint32
	I64  int64
	F32  float32
	F64  float64
	Str  String

	Enum   *EnumValue
	Struct *StructValue
	Array  *ArrayValue
	Map    *MapValue
	Raw    []byte
}

// Name aliases String for the property name position, purely for
// readability at call sites.
type Name = String

// WireTag returns the type tag the encoder will write: the decoded tag
// when present, else the canonical tag for the Type.
func (p *Property) WireTag() String {
	if !p.Tag.Null && p.Tag.Value != "" {
		return p.Tag
	}
	return Str(tagForType[p.Type])
}

// ValueString renders the property's value for display.
func (p *Property) ValueString() string {
	switch p.Type {
	case TypeNone:
		return "None"
	case TypeBool:
		return strconv.FormatBool(p.Bool)
	case TypeByte:
		return strconv.Itoa(int(p.Byte))
	case TypeInt32:
		return strconv.FormatInt(int64(p.I32), 10)
	case TypeUInt32:
		return strconv.FormatUint(uint64(p.U32), 10)
	case TypeInt64:
		return strconv.FormatInt(p.I64, 10)
	case TypeFloat32:
		return strconv.FormatFloat(float64(p.F32), 'g', -1, 32)
	case TypeFloat64:
		return strconv.FormatFloat(p.F64, 'g', -1, 64)
	case TypeStr, TypeName:
		return p.Str.Value
	case TypeEnum:
		return p.Enum.Value.Value
	case TypeStruct:
		parts := make([]string, 0, len(p.Struct.Fields))
		for _, f := range p.Struct.Fields {
			if f.Type == TypeNone {
				continue
			}
			parts = append(parts, f.Name.Value+"="+f.ValueString())
		}
		return p.Struct.TypeName.Value + "{" + strings.Join(parts, ", ") + "}"
	case TypeArray:
		return fmt.Sprintf("[%d x %s]", p.Array.Len(), p.Array.Inner.Value)
	case TypeMap:
		return fmt.Sprintf("map<%s, %s> (%d bytes)", p.Map.Key.Value, p.Map.Val.Value, len(p.Map.Raw))
	case TypeRaw:
		return fmt.Sprintf("<%d raw bytes>", len(p.Raw))
	}
	return ""
}

// List is a decoded sequence of tagged properties, as produced by
// Deserialize. The terminator node, when present in the source, is
// retained so an unmodified list re-encodes byte for byte.
type List struct {
	Properties []*Property
	// Trailing holds bytes that followed the top-level terminator.
	Trailing []byte
}

// Find resolves a dotted property path against the list's properties.
// See the package-level Find for path syntax.
func (l *List) Find(path string) *Property {
	return Find(l.Properties, path)
}
