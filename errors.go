package purr

import "errors"

var (
	// ErrUnsupportedType is returned when a parameter's runtime type or a
	// protocol-declared column type has no conversion rule.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMalformedValue is returned when a value of a recognized kind fails
	// parsing, such as an invalid address or a tuple shape mismatch.
	ErrMalformedValue = errors.New("malformed value")

	// ErrTypeMismatch is returned when a protocol value's internal tag
	// disagrees with the declared column type.
	ErrTypeMismatch = errors.New("type mismatch")
)
