package session

import "errors"

var (
	// ErrInvalidTransition indicates an operation that is not allowed in the current state.
	ErrInvalidTransition = errors.New("session: operation not allowed in current state")
	// ErrNoImage indicates an operation that needs an open image.
	ErrNoImage = errors.New("session: no image open")
	// ErrUnknownLabel indicates a label name that is not in the store.
	ErrUnknownLabel = errors.New("session: unknown label")
	// ErrBlankTag indicates an empty or whitespace-only tag.
	ErrBlankTag = errors.New("session: tag is blank")
	// ErrNoEdge indicates that no edge was close enough to subdivide.
	ErrNoEdge = errors.New("session: no edge near point")
)
