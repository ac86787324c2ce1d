package service

import "errors"

// ErrInvalidInput marks caller mistakes; handlers answer them with 400.
var ErrInvalidInput = errors.New("invalid input")
