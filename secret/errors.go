package secret

import "errors"

var (
	// ErrInvalidLength indicates a non-positive secret length.
	ErrInvalidLength = errors.New("secret: length must be positive")

	// ErrEntropyUnavailable indicates the randomness source could not be read.
	ErrEntropyUnavailable = errors.New("secret: secure randomness unavailable")

	// ErrInvalidName indicates a definition name that is not a valid env key.
	ErrInvalidName = errors.New("secret: invalid definition name")

	// ErrDuplicateName indicates a definition name is already registered.
	ErrDuplicateName = errors.New("secret: definition already registered")
)
