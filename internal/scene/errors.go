package scene

import "errors"

// Geometry errors.
var (
	ErrIndexOutOfRange = errors.New("index out of vertex range")
	ErrArityMismatch   = errors.New("geometry array arity mismatch")
	ErrNonFiniteVertex = errors.New("vertex position is NaN or infinite")
)

// Reference errors.
var (
	ErrMissingBaseShape = errors.New("instance has no base shape")
	ErrInstanceCycle    = errors.New("instance base chain refers back to itself")
)

// Texture errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported texture format")
	ErrTextureSize       = errors.New("texture data does not match its size")
)
