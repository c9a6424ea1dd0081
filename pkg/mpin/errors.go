package mpin

import "errors"

var (
	ErrInvalidDate   = errors.New("invalid calendar date")
	ErrInvalidConfig = errors.New("invalid mpin configuration")
)
