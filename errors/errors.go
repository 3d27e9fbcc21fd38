package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // binary to property tree
	PhaseEncode   Phase = "encode"   // property tree to binary
	PhaseLookup   Phase = "lookup"   // property path resolution
	PhaseLoad     Phase = "load"     // save file loading
	PhaseSave     Phase = "save"     // save file writing
	PhaseValidate Phase = "validate" // mount data validation
)

// Kind categorizes the error
type Kind string

const (
	KindTruncatedStream     Kind = "truncated_stream"
	KindUnknownPropertyType Kind = "unknown_property_type"
	KindSizeMismatch        Kind = "size_mismatch"
	KindInvalidData         Kind = "invalid_data"
	KindInvalidInput        Kind = "invalid_input"
	KindNotFound            Kind = "not_found"
	KindOutOfRange          Kind = "out_of_range"
	KindIO                  Kind = "io"
)

// Error is the structured error type used throughout the toolkit
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Offset int // byte offset into the binary stream; 0 when not applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Offset > 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the property path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Offset sets the byte offset into the stream
func (b *Builder) Offset(pos int) *Builder {
	b.err.Offset = pos
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates a truncated-stream error: a read of want bytes at the
// given offset found only have bytes remaining.
func Truncated(offset, want, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncatedStream,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", want, have),
	}
}

// UnknownPropertyType creates an unknown property type error. These are
// recoverable: the decoder degrades the node to a raw passthrough.
func UnknownPropertyType(path []string, tag string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindUnknownPropertyType,
		Path:   path,
		Detail: fmt.Sprintf("unrecognized property tag %q", tag),
		Value:  tag,
	}
}

// SizeMismatch creates an encode-time size consistency error. This always
// indicates a codec bug, not bad input.
func SizeMismatch(path []string, declared, measured int) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindSizeMismatch,
		Path:   path,
		Detail: fmt.Sprintf("declared size %d, measured %d", declared, measured),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// OutOfRange creates an out-of-range error
func OutOfRange(phase Phase, what string, value, lo, hi int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Detail: fmt.Sprintf("%s %d out of range [%d, %d]", what, value, lo, hi),
		Value:  value,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
