// Package errs defines the sentinel errors raised by the dictfile packages.
//
// Every error kind is a package-level sentinel so callers can match on it with
// errors.Is, regardless of the dynamic context (offending index, file name, ...)
// that call sites attach via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrOutOfRangeIndex is returned when an index is negative or >= the element count.
	ErrOutOfRangeIndex = errors.New("dictfile: index out of range")

	// ErrUnknownVersion is returned when a container's version byte is not V1 or V2,
	// including the reserved 0x00 version.
	ErrUnknownVersion = errors.New("dictfile: unknown container version")

	// ErrMissingFileMapper is returned when a V2 container is detected but no
	// FileMapper was supplied to resolve its value/header files.
	ErrMissingFileMapper = errors.New("dictfile: V2 container requires a file mapper")

	// ErrFileMappingFailure is returned when the file mapper fails to resolve a
	// logical file name to a byte window.
	ErrFileMappingFailure = errors.New("dictfile: file mapping failed")

	// ErrReverseLookupUnsupported is returned when IndexOf is called on a
	// dictionary that was not built from strictly ascending input.
	ErrReverseLookupUnsupported = errors.New("dictfile: reverse lookup unsupported")

	// ErrUnsupportedSerialization is returned when WriteTo/SerializedSize is
	// called on a reader that cannot re-serialize itself (the V2 reader).
	ErrUnsupportedSerialization = errors.New("dictfile: unsupported serialization")

	// ErrCorruptData is returned when offset monotonicity is violated, bag-size
	// math is inconsistent with the element count, or a payload length exceeds
	// its backing buffer.
	ErrCorruptData = errors.New("dictfile: corrupt container data")
)
