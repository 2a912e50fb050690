package storage

import (
	"errors"
)

// ErrUnknownKind is returned for upload kinds other than image or video.
var ErrUnknownKind = errors.New("unknown upload kind")

// ErrSizeOutOfRange is returned when the declared size is missing or exceeds
// the cap for the upload kind.
var ErrSizeOutOfRange = errors.New("declared size out of range")
