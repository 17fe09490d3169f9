package model

import "errors"

// ErrValidation marks input that violates an entity invariant. Storage
// failures are never wrapped with it.
var ErrValidation = errors.New("validation error")
