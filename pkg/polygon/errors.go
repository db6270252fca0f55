package polygon

import "errors"

// ErrIndexOutOfRange indicates an insertion index outside [0, Len()].
var ErrIndexOutOfRange = errors.New("polygon: vertex index out of range")
