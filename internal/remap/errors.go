package remap

import "errors"

var (
	// ErrNilRule is returned when a rule comparison is given a nil rule.
	ErrNilRule = errors.New("remap: nil rule")
	// ErrNilSettings is returned when writing a nil document.
	ErrNilSettings = errors.New("remap: nil settings")
)
