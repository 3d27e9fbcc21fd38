package ue4

import (
	"bytes"
	"testing"

	"github.com/naurium/icarus-mount-editor/ue4/internal/binary"
)

func TestReadStringForms(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want String
	}{
		{
			name: "null",
			data: []byte{0, 0, 0, 0},
			want: NullString,
		},
		{
			name: "ascii",
			data: []byte{4, 0, 0, 0, 'M', 'o', 'a', 0},
			want: Str("Moa"),
		},
		{
			name: "empty ascii",
			data: []byte{1, 0, 0, 0, 0},
			want: Str(""),
		},
		{
			name: "wide",
			data: []byte{0xFD, 0xFF, 0xFF, 0xFF, 0x3C, 0x04, 0x30, 0x04, 0, 0}, // "Ќ0" style: U+043C U+0430
			want: String{Value: "ма", Wide: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readString(binary.NewReader(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("readString() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadStringMissingTerminator(t *testing.T) {
	if _, err := readString(binary.NewReader([]byte{3, 0, 0, 0, 'a', 'b', 'c'})); err == nil {
		t.Fatal("expected error for missing NUL terminator")
	}
}

func TestWriteStringForms(t *testing.T) {
	tests := []struct {
		name string
		in   String
		want []byte
	}{
		{"null", NullString, []byte{0, 0, 0, 0}},
		{"ascii", Str("Moa"), []byte{4, 0, 0, 0, 'M', 'o', 'a', 0}},
		{"empty", Str(""), []byte{1, 0, 0, 0, 0}},
		{"wide", Str("ма"), []byte{0xFD, 0xFF, 0xFF, 0xFF, 0x3C, 0x04, 0x30, 0x04, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := binary.NewWriter()
			writeString(w, tt.in)
			if !bytes.Equal(w.Bytes(), tt.want) {
				t.Fatalf("writeString() = % x, want % x", w.Bytes(), tt.want)
			}
			if got := stringWireSize(tt.in); got != len(tt.want) {
				t.Fatalf("stringWireSize() = %d, want %d", got, len(tt.want))
			}
		})
	}
}

// A string decoded from the wide form stays wide on encode even when
// its content is pure ASCII. Collapsing it to the narrow form would
// shrink the payload and break byte-exact re-encoding of untouched
// properties.
func TestWriteStringPreservesWideASCII(t *testing.T) {
	w := binary.NewWriter()
	writeString(w, String{Value: "abc", Wide: true})
	want := []byte{0xFC, 0xFF, 0xFF, 0xFF, 'a', 0, 'b', 0, 'c', 0, 0, 0}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("writeString() = % x, want % x", w.Bytes(), want)
	}
	if got := stringWireSize(String{Value: "abc", Wide: true}); got != len(want) {
		t.Fatalf("stringWireSize() = %d, want %d", got, len(want))
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range []String{
		NullString,
		Str(""),
		Str("Mount_Horse_Standard_A3"),
		{Value: "зебра", Wide: true},
		{Value: "Clover", Wide: true},
		{Value: "mixed é世"},
	} {
		w := binary.NewWriter()
		writeString(w, s)
		got, err := readString(binary.NewReader(w.Bytes()))
		if err != nil {
			t.Fatalf("%q: %v", s.Value, err)
		}
		if got.Value != s.Value || got.Null != s.Null || (s.Wide && !got.Wide) {
			t.Fatalf("round trip of %+v produced %+v", s, got)
		}
	}
}
