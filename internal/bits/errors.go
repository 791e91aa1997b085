package bits

import "errors"

// Domain errors for parsing user-supplied values.
var (
	// ErrInvalidValue indicates a literal that is not a 16-bit unsigned number.
	ErrInvalidValue = errors.New("bits: invalid 16-bit value")

	// ErrUnknownOperation indicates an operation name with no matching variant.
	ErrUnknownOperation = errors.New("bits: unknown operation")

	// ErrUnknownClampPolicy indicates a clamp policy name with no matching policy.
	ErrUnknownClampPolicy = errors.New("bits: unknown clamp policy")
)
