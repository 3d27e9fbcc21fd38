package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTruncatedStream,
				Path:   []string{"CharacterRecord", "CurrentHealth"},
				Offset: 412,
				Detail: "need 4 bytes, 1 remaining",
			},
			contains: []string{"[decode]", "truncated_stream", "CharacterRecord.CurrentHealth", "offset 412", "need 4 bytes"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindSizeMismatch,
			},
			contains: []string{"[encode]", "size_mismatch"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindIO,
				Detail: "read save file",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "io", "read save file", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseSave,
		Kind:  KindIO,
		Cause: cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the wrapped cause")
	}
}

func TestError_Is(t *testing.T) {
	a := &Error{Phase: PhaseDecode, Kind: KindTruncatedStream, Detail: "one"}
	b := &Error{Phase: PhaseDecode, Kind: KindTruncatedStream, Detail: "two"}
	c := &Error{Phase: PhaseDecode, Kind: KindInvalidData}

	if !errors.Is(a, b) {
		t.Error("errors with matching phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseDecode, KindTruncatedStream).
		Path("Talents").
		Offset(96).
		Detail("array element %d", 3).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindTruncatedStream {
		t.Errorf("builder lost phase/kind: %v/%v", err.Phase, err.Kind)
	}
	if err.Offset != 96 {
		t.Errorf("offset: got %d, want 96", err.Offset)
	}
	if err.Detail != "array element 3" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	if err := Truncated(10, 4, 2); err.Kind != KindTruncatedStream || err.Offset != 10 {
		t.Errorf("Truncated: %+v", err)
	}
	if err := UnknownPropertyType([]string{"Foo"}, "MadeUpProperty"); err.Value != "MadeUpProperty" {
		t.Errorf("UnknownPropertyType: %+v", err)
	}
	if err := SizeMismatch(nil, 118, 120); !strings.Contains(err.Detail, "118") || !strings.Contains(err.Detail, "120") {
		t.Errorf("SizeMismatch: %+v", err)
	}
	if err := NotFound(PhaseLookup, "mount", "Shadow"); !strings.Contains(err.Error(), `mount "Shadow" not found`) {
		t.Errorf("NotFound: %v", err)
	}
	if err := OutOfRange(PhaseValidate, "level", 77, 1, 50); !strings.Contains(err.Detail, "77") {
		t.Errorf("OutOfRange: %+v", err)
	}
}
