package utils

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when a configuration cannot produce a board.
	// It is fatal to simulation startup.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrInternalInconsistency marks a broken construction invariant, such as a
	// snapshot that does not cover the grid it was taken from.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)
