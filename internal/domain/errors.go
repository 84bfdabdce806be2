package domain

import "errors"

// ErrInvalidParameter marks inputs the engine refuses to simulate.
var ErrInvalidParameter = errors.New("invalid parameter")
