package ue4_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/naurium/icarus-mount-editor/ue4"
)

// Fixture helpers building raw wire bytes without going through the
// encoder under test.

func i32(v int32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return b[:]
}

func f32(v float32) []byte {
	return i32(int32(math.Float32bits(v)))
}

func fstr(s string) []byte {
	b := i32(int32(len(s) + 1))
	b = append(b, s...)
	return append(b, 0)
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func tag(name, typeName string, size int32) []byte {
	return cat(fstr(name), fstr(typeName), i32(size), i32(0))
}

// buildMountBlob assembles a blob exercising every property family the
// recorder data uses.
func buildMountBlob() []byte {
	name := fstr("Clover")
	strValue := cat(tag("MountName", "StrProperty", int32(len(name))), []byte{0}, name)

	intValue := cat(tag("MountLevel", "IntProperty", 4), []byte{0}, i32(30))
	boolValue := cat(tag("bIsTamed", "BoolProperty", 0), []byte{1, 0})

	rowName := fstr("Mount_Horse_Standard_A3")
	nameValue := cat(tag("AISetupRowName", "NameProperty", int32(len(rowName))), []byte{0}, rowName)

	enumVal := fstr("EMountGait::Walk")
	enumValue := cat(
		tag("Gait", "EnumProperty", int32(len(enumVal))),
		fstr("EMountGait"), []byte{0},
		enumVal,
	)

	vector := cat(
		tag("MountPosition", "StructProperty", 12),
		fstr("Vector"), make([]byte, 17),
		f32(10), f32(-20), f32(3.5),
	)

	// Tagged struct with slack between its terminator and the size
	// boundary.
	statsBody := cat(
		tag("Stamina", "IntProperty", 4), []byte{0}, i32(75),
		fstr("None"),
		[]byte{0xCA, 0xFE},
	)
	stats := cat(
		tag("Stats", "StructProperty", int32(len(statsBody))),
		fstr("MountStats"), make([]byte, 17),
		statsBody,
	)

	intArray := cat(
		tag("TalentRanks", "ArrayProperty", 4+2*4),
		fstr("IntProperty"), []byte{0},
		i32(2), i32(1), i32(3),
	)

	elem := func(rank int32) []byte {
		return cat(
			tag("Rank", "IntProperty", 4), []byte{0}, i32(rank),
			fstr("None"),
		)
	}
	elems := cat(elem(2), elem(4))
	structArrayValue := cat(
		i32(2),
		tag("Talents", "StructProperty", int32(len(elems))),
		fstr("MountTalent"), make([]byte, 17),
		elems,
	)
	structArray := cat(
		tag("Talents", "ArrayProperty", int32(len(structArrayValue))),
		fstr("StructProperty"), []byte{0},
		structArrayValue,
	)

	mapBody := cat(fstr("NameProperty"), fstr("IntProperty"), []byte{0}, []byte{1, 2, 3, 4})
	mapValue := cat(tag("Affinity", "MapProperty", int32(len(mapBody))), mapBody)

	unknown := cat(
		tag("Opaque", "SoftObjectProperty", 6),
		[]byte{0},
		[]byte{6, 5, 4, 3, 2, 1},
	)

	return cat(
		strValue, intValue, boolValue, nameValue, enumValue,
		vector, stats, intArray, structArray, mapValue, unknown,
		fstr("None"), []byte{0, 0, 0, 0},
	)
}

func TestRoundTripByteExact(t *testing.T) {
	blob := buildMountBlob()
	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, blob) {
		t.Fatalf("round trip changed the blob:\n got  %d bytes: % x\n want %d bytes: % x",
			len(out), out, len(blob), blob)
	}
}

func TestRoundTripAfterEdit(t *testing.T) {
	blob := buildMountBlob()
	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	if err := ue4.SetValue(list.Properties, "MountLevel", 50); err != nil {
		t.Fatal(err)
	}
	if err := ue4.SetValue(list.Properties, "MountName", "Thunder"); err != nil {
		t.Fatal(err)
	}

	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := ue4.Deserialize(out)
	if err != nil {
		t.Fatal(err)
	}
	if p := reparsed.Find("MountLevel"); p.I32 != 50 {
		t.Fatalf("MountLevel = %d", p.I32)
	}
	if p := reparsed.Find("MountName"); p.Str.Value != "Thunder" {
		t.Fatalf("MountName = %q", p.Str.Value)
	}
	// Untouched neighbors must survive the edit.
	if p := reparsed.Find("Stats.Stamina"); p == nil || p.I32 != 75 {
		t.Fatalf("Stamina = %+v", p)
	}
	if p := reparsed.Find("Opaque"); p == nil || !bytes.Equal(p.Raw, []byte{6, 5, 4, 3, 2, 1}) {
		t.Fatalf("Opaque = %+v", p)
	}
}

// Struct arrays over a fixed-layout element type pack components with
// no tags and no per-element terminator, and re-encode byte for byte.
func TestRoundTripFixedStructArray(t *testing.T) {
	elems := cat(
		f32(1), f32(2), f32(3),
		f32(-4), f32(5.5), f32(6),
	)
	value := cat(
		i32(2),
		tag("Positions", "StructProperty", int32(len(elems))),
		fstr("Vector"), make([]byte, 17),
		elems,
	)
	blob := cat(
		tag("Positions", "ArrayProperty", int32(len(value))),
		fstr("StructProperty"), []byte{0},
		value,
		fstr("None"), []byte{0, 0, 0, 0},
	)

	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	if y := list.Find("Positions[1].Y"); y == nil || y.F32 != 5.5 {
		t.Fatalf("Positions[1].Y = %+v", y)
	}
	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, blob) {
		t.Fatalf("round trip changed the blob:\n got % x\nwant % x", out, blob)
	}
}

// A tagged struct with no children still carries exactly one "None"
// terminator in its body.
func TestRoundTripEmptyTaggedStruct(t *testing.T) {
	body := fstr("None")
	blob := cat(
		tag("State", "StructProperty", int32(len(body))),
		fstr("MountState"), make([]byte, 17),
		body,
		fstr("None"), []byte{0, 0, 0, 0},
	)

	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	p := list.Find("State")
	if p == nil || len(p.Struct.Fields) != 0 {
		t.Fatalf("State = %+v", p)
	}
	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, blob) {
		t.Fatalf("round trip changed the blob:\n got % x\nwant % x", out, blob)
	}
}

// Empty arrays encode a zero count and no element bytes. The struct
// variant keeps its prototype tag so the element type survives.
func TestRoundTripEmptyArrays(t *testing.T) {
	intArray := cat(
		tag("TalentRanks", "ArrayProperty", 4),
		fstr("IntProperty"), []byte{0},
		i32(0),
	)
	structValue := cat(
		i32(0),
		tag("Talents", "StructProperty", 0),
		fstr("MountTalent"), make([]byte, 17),
	)
	structArray := cat(
		tag("Talents", "ArrayProperty", int32(len(structValue))),
		fstr("StructProperty"), []byte{0},
		structValue,
	)
	blob := cat(intArray, structArray, fstr("None"), []byte{0, 0, 0, 0})

	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	if p := list.Find("TalentRanks"); p == nil || p.Array.Len() != 0 {
		t.Fatalf("TalentRanks = %+v", p)
	}
	p := list.Find("Talents")
	if p == nil || p.Array.Len() != 0 || p.Array.ElemStruct.Value != "MountTalent" {
		t.Fatalf("Talents = %+v", p)
	}
	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, blob) {
		t.Fatalf("round trip changed the blob:\n got % x\nwant % x", out, blob)
	}
}

func TestRoundTripTwoNodeList(t *testing.T) {
	blob := cat(
		tag("MountLevel", "IntProperty", 4), []byte{0}, i32(12),
		fstr("None"), []byte{0, 0, 0, 0},
	)
	list, err := ue4.Deserialize(blob)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Properties) != 2 || list.Properties[1].Type != ue4.TypeNone {
		t.Fatalf("nodes = %+v", list.Properties)
	}
	out, err := ue4.Serialize(list)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, blob) {
		t.Fatalf("round trip changed the blob:\n got % x\nwant % x", out, blob)
	}
}
