package wasm

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of ways decoding can fail.
type ErrorKind byte

const (
	// ErrorKindNotWasm means the header magic did not match or the header could not be read.
	ErrorKindNotWasm ErrorKind = iota + 1
	// ErrorKindEOF means a declared or implicit length exceeds the remaining bytes.
	ErrorKindEOF
	// ErrorKindMalformedVarint means a LEB128 value did not terminate within its maximum width.
	ErrorKindMalformedVarint
	// ErrorKindUnknownVariant means an enumerated discriminant has no defined meaning. See Error.Domain
	ErrorKindUnknownVariant
	// ErrorKindInvalidUTF8 means a length-prefixed string is not valid UTF-8.
	ErrorKindInvalidUTF8
)

// Sentinels for errors.Is. Any *Error matches the sentinel of its Kind.
var (
	ErrNotWasm         = errors.New("not a wasm binary")
	ErrEOF             = errors.New("unexpected end of input")
	ErrMalformedVarint = errors.New("malformed varint")
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrInvalidUTF8     = errors.New("invalid UTF-8")
)

// Domains name the enumeration an ErrorKindUnknownVariant failed to match.
const (
	DomainSectionID    = "section id"
	DomainTypeForm     = "type form"
	DomainValueType    = "value type"
	DomainResultCount  = "result count"
	DomainExternalKind = "external kind"
	DomainElementType  = "element type"
	DomainBlockType    = "block type"
	DomainOpcode       = "opcode"
)

// Error is the error returned by every decode step.
type Error struct {
	Kind ErrorKind
	// Domain is the enumeration that failed for ErrorKindUnknownVariant, empty otherwise.
	Domain string
	// Value is the unrecognized discriminant for ErrorKindUnknownVariant.
	Value uint64
	// Offset is the absolute position in the module buffer where the failing read started.
	Offset int
	// Err is the underlying cause, if any.
	Err error
}

func (k ErrorKind) sentinel() error {
	switch k {
	case ErrorKindNotWasm:
		return ErrNotWasm
	case ErrorKindEOF:
		return ErrEOF
	case ErrorKindMalformedVarint:
		return ErrMalformedVarint
	case ErrorKindUnknownVariant:
		return ErrUnknownVariant
	case ErrorKindInvalidUTF8:
		return ErrInvalidUTF8
	}
	return nil
}

// String implements fmt.Stringer
func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", byte(k))
}

// Error implements error
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case ErrorKindUnknownVariant:
		msg = fmt.Sprintf("unknown variant %q %#x at offset %#x", e.Domain, e.Value, e.Offset)
	case ErrorKindNotWasm:
		msg = e.Kind.String()
	default:
		msg = fmt.Sprintf("%s at offset %#x", e.Kind, e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is allows errors.Is(err, ErrEOF) and similar to match regardless of the cause.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
