package update

import "strings"

// Error describes why a batch was rejected. Kind is one of the layout
// sentinel errors and is what errors.Is matches against.
type Error struct {
	Op      Op
	Kind    error
	Message string
	Hint    string // optional suggestion for fixing the batch
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op.String())
	sb.WriteString(": ")
	sb.WriteString(e.Kind.Error())
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns Kind.
func (e *Error) Unwrap() error { return e.Kind }

func newError(op Op, kind error, message, hint string) *Error {
	return &Error{Op: op, Kind: kind, Message: message, Hint: hint}
}
