package labels

import (
	"errors"
	"fmt"
)

var (
	// ErrBlankName indicates an empty or whitespace-only label name.
	ErrBlankName = errors.New("labels: name is blank")
	// ErrDuplicateName indicates the name is already used by another label.
	ErrDuplicateName = errors.New("labels: name already in use")
	// ErrInvalidCharacter indicates a name with characters outside [A-Za-z0-9].
	ErrInvalidCharacter = errors.New("labels: name may only contain letters and digits")
	// ErrInsufficientVertices indicates a polygon with fewer than MinVertices vertices.
	ErrInsufficientVertices = errors.New("labels: polygon needs at least 3 vertices")
)

// ParseError reports a structurally malformed label document
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "labels: " + e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// IOError reports a failed read or write of a label file
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("labels: failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
