package samoa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates a numeric argument violates a precondition
	ErrInvalidParameter = errors.New("samoa: invalid parameter")

	// ErrNotInvertible indicates a modular inverse does not exist for the inputs
	ErrNotInvertible = errors.New("samoa: modular inverse does not exist")

	// ErrKeyGeneration indicates derived key material failed a consistency check
	ErrKeyGeneration = errors.New("samoa: key generation failed")

	// ErrMessageTooLarge indicates the message does not fit within the modulus bound
	ErrMessageTooLarge = errors.New("samoa: message too large for modulus")

	// ErrDecoding indicates decrypted bytes do not form valid text
	ErrDecoding = errors.New("samoa: decrypted bytes are not valid text")
)

// Error wraps an underlying error with the operation that failed
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("samoa.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error wrapping kind, so callers can errors.Is the kind
func errorf(op string, kind error, format string, args ...interface{}) error {
	args = append([]interface{}{kind}, args...)
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: "+format, args...),
	}
}
