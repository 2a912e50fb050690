package app

import (
	"errors"
)

var errUnknownDirection = errors.New("direction must be to-local or to-remote")
