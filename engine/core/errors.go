package core

import (
	"errors"
)

var (
	// Parameters that produce zero-area or self-intersecting geometry.
	ErrDegenerateInput = errors.New("degenerate input")

	// A face references a vertex past the end of the vertex buffer.
	ErrIndexOverflow = errors.New("face index out of range")

	ErrUnknownFormat   = errors.New("unknown mesh format")
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrUnknown         = errors.New("unknown")
)
