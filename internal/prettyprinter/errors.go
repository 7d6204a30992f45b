package prettyprinter

import "fmt"

// InternalError reports a broken invariant of the type context, such as a
// trait object whose principal cannot be lifted. It indicates a bug in
// the caller rather than malformed input.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}

func internalErrorf(format string, args ...any) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedValueError is returned by Render for values it cannot print.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("cannot render value of type %T", e.Value)
}
