package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned when a read would exceed the remaining buffer.
var ErrTruncated = errors.New("unexpected end of stream")

// Reader is a sequential cursor over a byte buffer with UE4-flavored
// little-endian read methods. All reads advance the cursor; a read past
// the end of the buffer fails with ErrTruncated and leaves the cursor
// unchanged.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data. The buffer is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset.
func (r *Reader) Position() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.truncated(1)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes. The returned slice is a copy.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("at offset %d: negative read length %d", r.pos, n)
	}
	if r.pos+n > len(r.data) {
		return nil, r.truncated(n)
	}
	buf := make([]byte, n)
	copy(buf, r.data[r.pos:])
	r.pos += n
	return buf, nil
}

// ReadInt32 reads a little-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint32 reads a little-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, r.truncated(4)
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadInt64 reads a little-endian signed 64-bit integer.
func (r *Reader) ReadInt64() (int64, error) {
	if r.pos+8 > len(r.data) {
		return 0, r.truncated(8)
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return int64(v), nil
}

// ReadFloat32 reads a little-endian IEEE 754 single-precision float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a little-endian IEEE 754 double-precision float.
func (r *Reader) ReadFloat64() (float64, error) {
	if r.pos+8 > len(r.data) {
		return 0, r.truncated(8)
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return math.Float64frombits(v), nil
}

// ReadBool reads a single byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	return b != 0, err
}

func (r *Reader) truncated(want int) error {
	return fmt.Errorf("at offset %d: need %d bytes, %d remaining: %w",
		r.pos, want, r.Remaining(), ErrTruncated)
}
