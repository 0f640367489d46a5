package plp

import "errors"

var (
	// ErrUnsupportedExecutionSite is returned when a parallel operation is
	// requested from the control core. Nothing is computed and the
	// destination is left untouched.
	ErrUnsupportedExecutionSite = errors.New("plp: parallel processing supported only for cluster side")

	// ErrInvalidArgument is returned by glue functions whose arguments would
	// make a kernel read or write out of bounds.
	ErrInvalidArgument = errors.New("plp: invalid argument")

	// ErrEmptyInput is returned by reductions that have no identity value,
	// such as Max, when given no elements.
	ErrEmptyInput = errors.New("plp: empty input")
)
