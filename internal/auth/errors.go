package auth

import (
	"errors"
)

// ErrEmptySubject is returned when the identity provider answers without a
// subject identifier.
var ErrEmptySubject = errors.New("user info holds no subject")
