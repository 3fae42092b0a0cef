// Package assertion holds the outcome type shared by every assertion in
// restassert.
//
// A Result is either a success or a failure carrying exactly one message.
// Failures are split in three kinds so callers can tell a malformed fixture
// apart from a real difference in values:
//
//   - KindMismatch: the values differ.
//   - KindInvalidInput: an input could not be used (nil document, invalid JSON, bad path).
//   - KindUnsupported: a binding cannot provide the requested attribute.
package assertion

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by Result.Err through errors.Is.
var (
	// ErrMismatch indicates the actual value does not satisfy the assertion.
	ErrMismatch = errors.New("assertion failed")

	// ErrInvalidInput indicates an input was nil, unparsable or otherwise unusable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupported indicates a binding does not expose the requested attribute.
	// Bindings wrap it, assertions surface it as KindUnsupported.
	ErrUnsupported = errors.New("unsupported operation")
)

// Kind classifies a Result.
type Kind uint8

const (
	KindSuccess Kind = iota
	KindMismatch
	KindInvalidInput
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindMismatch:
		return "mismatch"
	case KindInvalidInput:
		return "invalid input"
	case KindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is the outcome of one assertion. The zero value is a success.
type Result struct {
	kind    Kind
	message string
}

// Success returns a passing result.
func Success() Result {
	return Result{kind: KindSuccess}
}

// Failure returns a mismatch result with the given message.
func Failure(message string) Result {
	return Result{kind: KindMismatch, message: message}
}

// Failuref is Failure with fmt.Sprintf formatting.
func Failuref(format string, args ...any) Result {
	return Failure(fmt.Sprintf(format, args...))
}

// InvalidInput returns an input error result with the given message.
func InvalidInput(message string) Result {
	return Result{kind: KindInvalidInput, message: message}
}

// InvalidInputf is InvalidInput with fmt.Sprintf formatting.
func InvalidInputf(format string, args ...any) Result {
	return InvalidInput(fmt.Sprintf(format, args...))
}

// Unsupported returns an unsupported-operation result carrying err's message.
func Unsupported(err error) Result {
	return Result{kind: KindUnsupported, message: err.Error()}
}

// FromError maps an accessor error onto a failed result: errors wrapping
// ErrUnsupported become KindUnsupported, anything else KindInvalidInput.
func FromError(err error) Result {
	if errors.Is(err, ErrUnsupported) {
		return Unsupported(err)
	}
	return InvalidInput(err.Error())
}

func (r Result) OK() bool {
	return r.kind == KindSuccess
}

func (r Result) Kind() Kind {
	return r.kind
}

// Message is empty for successful results.
func (r Result) Message() string {
	return r.message
}

// Err returns nil on success, otherwise an *Error carrying the message.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Kind: r.kind, Message: r.message}
}

func (r Result) String() string {
	if r.OK() {
		return "success"
	}
	return r.kind.String() + ": " + r.message
}

// Error is the error form of a failed Result.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is allows errors.Is(err, ErrMismatch) and friends to classify the failure.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindMismatch:
		return target == ErrMismatch
	case KindInvalidInput:
		return target == ErrInvalidInput
	case KindUnsupported:
		return target == ErrUnsupported
	default:
		return false
	}
}
