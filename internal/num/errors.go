//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind
package num

import "errors"

// Kind classifies why a value could not become a Num.
type Kind int

const (
	// KindNotANumber means the input was not a finite number of a numeric type.
	KindNotANumber Kind = iota
	// KindOutOfRange means the input was a finite number outside Bounds.
	KindOutOfRange
)

// Message returns the fixed, user-facing text for the kind.
func (k Kind) Message() string {
	switch k {
	case KindNotANumber:
		return "Not a Number"
	case KindOutOfRange:
		return "Out of range"
	default:
		return k.String()
	}
}

// Error is returned by every Num constructor. Its message is exactly Kind.Message(),
// so callers matching on "Not a Number" or "Out of range" keep working.
type Error struct {
	Kind  Kind
	Input any
}

var (
	ErrNotANumber = &Error{Kind: KindNotANumber}
	ErrOutOfRange = &Error{Kind: KindOutOfRange}
)

func (e *Error) Error() string {
	return e.Kind.Message()
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrOutOfRange) ignores the input.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the Kind from err if it wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
