package colorkey

import "errors"

var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("image file not found")
	// ErrDecode reports that the input could not be read as a supported image.
	ErrDecode = errors.New("cannot decode image")
	// ErrEncode reports that the output could not be encoded or written.
	ErrEncode = errors.New("cannot encode image")
)
