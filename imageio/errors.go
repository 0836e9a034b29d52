package imageio

import "errors"

var (
	// ErrUnsupportedFormat is returned by Save for an unknown extension.
	ErrUnsupportedFormat = errors.New("imageio: unsupported output format")

	// ErrNilImage is returned when a nil image or plane is given.
	ErrNilImage = errors.New("imageio: nil image")
)
