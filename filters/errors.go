package filters

import "errors"

var (
	// ErrUnknownFilter is returned when a stock filter name is not in the menu.
	ErrUnknownFilter = errors.New("filters: unknown filter")

	// ErrUnknownMethod is returned for an unsupported sharpening method.
	ErrUnknownMethod = errors.New("filters: unknown sharpening method")

	// ErrInvalidParameter indicates a bad sharpening parameter
	// (even or too small kernel size, negative amount or threshold).
	ErrInvalidParameter = errors.New("filters: invalid parameter")

	// ErrNilImage is returned when a nil image is passed.
	ErrNilImage = errors.New("filters: nil image")
)
