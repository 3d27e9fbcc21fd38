// Package errors provides structured error types for the mount editor toolkit.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: property path, byte offset
// into the binary stream, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncatedStream).
//		Path("CharacterRecord", "CurrentHealth").
//		Offset(412).
//		Detail("need 4 bytes, 1 remaining").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(412, 4, 1)
//	err := errors.SizeMismatch(path, 118, 120)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
