package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderSequence(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xAB)
	w.WriteInt32(-7)
	w.WriteUint32(0xDEADBEEF)
	w.WriteInt64(-1 << 40)
	w.WriteFloat32(1.5)
	w.WriteFloat64(-2.25)
	w.WriteBool(true)
	w.WriteBytes([]byte{1, 2, 3})

	r := NewReader(w.Bytes())

	if b, err := r.ReadByte(); err != nil || b != 0xAB {
		t.Fatalf("ReadByte() = %v, %v", b, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -7 {
		t.Fatalf("ReadInt32() = %v, %v", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadUint32() = %#x, %v", v, err)
	}
	if v, err := r.ReadInt64(); err != nil || v != -1<<40 {
		t.Fatalf("ReadInt64() = %v, %v", v, err)
	}
	if v, err := r.ReadFloat32(); err != nil || v != 1.5 {
		t.Fatalf("ReadFloat32() = %v, %v", v, err)
	}
	if v, err := r.ReadFloat64(); err != nil || v != -2.25 {
		t.Fatalf("ReadFloat64() = %v, %v", v, err)
	}
	if v, err := r.ReadBool(); err != nil || !v {
		t.Fatalf("ReadBool() = %v, %v", v, err)
	}
	got, err := r.ReadBytes(3)
	if err != nil || !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("ReadBytes(3) = %v, %v", got, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReaderPosition(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if r.Position() != 0 {
		t.Fatalf("Position() = %d, want 0", r.Position())
	}
	if _, err := r.ReadInt32(); err != nil {
		t.Fatal(err)
	}
	if r.Position() != 4 {
		t.Fatalf("Position() = %d, want 4", r.Position())
	}
	if r.Remaining() != 4 {
		t.Fatalf("Remaining() = %d, want 4", r.Remaining())
	}
}

func TestReaderTruncation(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(*Reader) error
	}{
		{"byte from empty", nil, func(r *Reader) error { _, err := r.ReadByte(); return err }},
		{"int32 short", []byte{1, 2, 3}, func(r *Reader) error { _, err := r.ReadInt32(); return err }},
		{"int64 short", []byte{1, 2, 3, 4, 5, 6, 7}, func(r *Reader) error { _, err := r.ReadInt64(); return err }},
		{"bytes past end", []byte{1, 2}, func(r *Reader) error { _, err := r.ReadBytes(3); return err }},
		{"float64 short", []byte{1}, func(r *Reader) error { _, err := r.ReadFloat64(); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			err := tt.read(r)
			if !errors.Is(err, ErrTruncated) {
				t.Fatalf("err = %v, want ErrTruncated", err)
			}
			if r.Position() != 0 {
				t.Fatalf("failed read moved cursor to %d", r.Position())
			}
		})
	}
}

func TestReadBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	r := NewReader(data)
	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	got[0] = 99
	if data[0] != 1 {
		t.Fatal("ReadBytes aliased the source buffer")
	}
}
