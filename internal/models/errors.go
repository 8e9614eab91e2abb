package models

import "errors"

// ErrInvalidInput marks validation failures on aggregate construction.
// Callers classify with errors.Is and surface the wrapped detail message.
var ErrInvalidInput = errors.New("invalid input")
