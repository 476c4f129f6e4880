package thumbnail

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindCapabilityUnavailable Kind = iota + 1
	KindFileNotFound
	KindUnsupportedMediaType
	KindUnsupportedImageType
	KindDecode
	KindEncode
	KindSaveFailed
	KindInvalidArgument
)

func (k Kind) String() string {
	switch k {
	case KindCapabilityUnavailable:
		return "capability unavailable"
	case KindFileNotFound:
		return "file not found"
	case KindUnsupportedMediaType:
		return "unsupported media type"
	case KindUnsupportedImageType:
		return "unsupported image type"
	case KindDecode:
		return "decode error"
	case KindEncode:
		return "encode error"
	case KindSaveFailed:
		return "save failed"
	case KindInvalidArgument:
		return "invalid argument"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for use with errors.Is.
var (
	ErrCapabilityUnavailable = &Error{Kind: KindCapabilityUnavailable}
	ErrFileNotFound          = &Error{Kind: KindFileNotFound}
	ErrUnsupportedMediaType  = &Error{Kind: KindUnsupportedMediaType}
	ErrUnsupportedImageType  = &Error{Kind: KindUnsupportedImageType}
	ErrDecode                = &Error{Kind: KindDecode}
	ErrEncode                = &Error{Kind: KindEncode}
	ErrSaveFailed            = &Error{Kind: KindSaveFailed}
	ErrInvalidArgument       = &Error{Kind: KindInvalidArgument}
)

// Error is returned by every failing Generator operation. Two errors match
// under errors.Is when their kinds are equal.
type Error struct {
	Kind Kind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Path != "" {
		s += " (" + e.Path + ")"
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, path, msg string, err error) *Error {
	return &Error{Kind: kind, Path: path, Msg: msg, Err: err}
}
