// Package sampling implements single-sampling acceptance plans for
// General Inspection Level II (normal inspection).
//
// The package is pure: it holds no mutable state, performs no I/O and
// never logs. Every operation is safe for concurrent use.
package sampling

import "errors"

var (
	// ErrInvalidInput is returned for a malformed quality level or packaging shape.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLotSizeTooSmall is returned when the lot has fewer than two units.
	ErrLotSizeTooSmall = errors.New("lot size must be at least 2")
	// ErrNoPlanForInputs is returned when the reference table has no entry for the inputs.
	ErrNoPlanForInputs = errors.New("no sampling plan for inputs")
	// ErrContainerTooSmall is returned when half a container holds zero units.
	ErrContainerTooSmall = errors.New("container too small to split")
)
