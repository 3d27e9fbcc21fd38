package ue4

// FieldKind selects the wire encoding of one component in a fixed
// struct layout.
type FieldKind int

const (
	FieldFloat32 FieldKind = iota
	FieldFloat64
	FieldByte
	FieldInt64
	FieldGUID
)

// FixedField is one named component of a fixed struct layout.
type FixedField struct {
	Name string
	Kind FieldKind
}

// fixedLayouts maps struct type names to their component layouts.
// Struct types not listed here serialize as tagged property lists.
var fixedLayouts = map[string][]FixedField{
	"Vector": {
		{"X", FieldFloat32}, {"Y", FieldFloat32}, {"Z", FieldFloat32},
	},
	"Vector2D": {
		{"X", FieldFloat32}, {"Y", FieldFloat32},
	},
	"Rotator": {
		{"Pitch", FieldFloat32}, {"Yaw", FieldFloat32}, {"Roll", FieldFloat32},
	},
	"Quat": {
		{"X", FieldFloat32}, {"Y", FieldFloat32}, {"Z", FieldFloat32}, {"W", FieldFloat32},
	},
	"LinearColor": {
		{"R", FieldFloat32}, {"G", FieldFloat32}, {"B", FieldFloat32}, {"A", FieldFloat32},
	},
	// Color is stored BGRA on the wire.
	"Color": {
		{"B", FieldByte}, {"G", FieldByte}, {"R", FieldByte}, {"A", FieldByte},
	},
	"Guid": {
		{"Value", FieldGUID},
	},
	"DateTime": {
		{"Ticks", FieldInt64},
	},
	"Timespan": {
		{"Ticks", FieldInt64},
	},
}

// LayoutFor returns the fixed layout for a struct type name, or nil
// when the type serializes as a tagged property list.
func LayoutFor(structType string) []FixedField {
	return fixedLayouts[structType]
}

// RegisterLayout adds or replaces the fixed layout for a struct type.
// It is not safe for concurrent use with decoding.
func RegisterLayout(structType string, fields []FixedField) {
	fixedLayouts[structType] = fields
}
