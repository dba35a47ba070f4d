package object

import "errors"

// Sentinel errors returned by object operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := object.Set(m, "user.name.first", "Ada")
//	if errors.Is(err, object.ErrNotAMap) {
//	    // "user.name" already holds a scalar
//	}
var (
	// ErrNotAMap is returned by the set-mode path helpers when an
	// intermediate path segment exists but does not hold a map[string]any.
	ErrNotAMap = errors.New("object: path segment is not a map")

	// ErrEmptyPath is returned when a value is written with a path that has
	// no segments.
	ErrEmptyPath = errors.New("object: path must have at least one segment")

	// ErrSerialize is returned by the serialized clone and equality modes when
	// the codec cannot encode or decode a value (cycles, NaN, functions, …).
	// The codec's own error is wrapped alongside it.
	ErrSerialize = errors.New("object: value cannot be serialized")

	// ErrInvalidOption is returned by [NewCloner] when the supplied options
	// are out of range.
	ErrInvalidOption = errors.New("object: invalid option value")

	// ErrQuery is returned by [Query] when a JSONPath expression is invalid
	// or does not resolve against the value.
	ErrQuery = errors.New("object: query failed")

	// ErrNilCodec is returned when a serialized operation is requested
	// without a [Codec].
	ErrNilCodec = errors.New("object: codec must not be nil")
)
