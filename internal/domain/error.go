package domain

import "errors"

var (
	// ErrMissingTokenRef means the caller did not supply both a chain and a token address.
	ErrMissingTokenRef = errors.New("missing chain or address")
)
