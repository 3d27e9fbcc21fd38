package ue4

import (
	"unicode/utf16"

	apperrors "github.com/naurium/icarus-mount-editor/errors"
	"github.com/naurium/icarus-mount-editor/ue4/internal/binary"
)

// readString decodes one FString. The int32 length prefix selects the
// form: 0 is the null string, positive is that many ASCII bytes
// including a NUL terminator, negative is that many UTF-16LE code
// units including a NUL terminator.
func readString(r *binary.Reader) (String, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return String{}, err
	}
	switch {
	case n == 0:
		return NullString, nil
	case n > 0:
		buf, err := r.ReadBytes(int(n))
		if err != nil {
			return String{}, err
		}
		if buf[n-1] != 0 {
			return String{}, apperrors.New(apperrors.PhaseDecode, apperrors.KindInvalidData).
				Offset(r.Position()).
				Detail("string missing NUL terminator").
				Build()
		}
		return String{Value: string(buf[:n-1])}, nil
	default:
		units := int(-n)
		buf, err := r.ReadBytes(units * 2)
		if err != nil {
			return String{}, err
		}
		u16 := make([]uint16, units)
		for i := range u16 {
			u16[i] = uint16(buf[2*i]) | uint16(buf[2*i+1])<<8
		}
		if u16[units-1] != 0 {
			return String{}, apperrors.New(apperrors.PhaseDecode, apperrors.KindInvalidData).
				Offset(r.Position()).
				Detail("wide string missing NUL terminator").
				Build()
		}
		return String{Value: string(utf16.Decode(u16[:units-1])), Wide: true}, nil
	}
}

// writeString encodes one FString. Values that were read in the wide
// form stay wide even when their content is ASCII, so an unmodified
// string re-encodes to its original bytes; everything non-ASCII uses
// UTF-16LE with a negative length prefix.
func writeString(w *binary.Writer, s String) {
	if s.Null {
		w.WriteInt32(0)
		return
	}
	if !s.Wide && isASCII(s.Value) {
		w.WriteInt32(int32(len(s.Value) + 1))
		w.WriteBytes([]byte(s.Value))
		w.WriteUint8(0)
		return
	}
	units := utf16.Encode([]rune(s.Value))
	w.WriteInt32(-int32(len(units) + 1))
	for _, u := range units {
		w.WriteUint8(byte(u))
		w.WriteUint8(byte(u >> 8))
	}
	w.WriteUint8(0)
	w.WriteUint8(0)
}

// stringWireSize returns the encoded byte length of s, prefix included.
func stringWireSize(s String) int {
	if s.Null {
		return 4
	}
	if !s.Wide && isASCII(s.Value) {
		return 4 + len(s.Value) + 1
	}
	return 4 + 2*(len(utf16.Encode([]rune(s.Value)))+1)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
