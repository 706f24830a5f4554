package core

import (
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotFound      = errors.New("not found")
	ErrUnknown       = errors.New("unknown")
)
