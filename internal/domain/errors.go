package domain

import "errors"

// Domain errors.
var (
	ErrNoDefaultBranch  = errors.New("could not detect default branch")
	ErrUnknownConfigKey = errors.New("unknown config key")
	ErrEmptyCommand     = errors.New("empty command")
)
