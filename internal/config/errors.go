package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownBackend error if config backend is neither "local" nor "rest".
	ErrUnknownBackend = errors.New("toml config backend must be \"local\" or \"rest\"")

	// ErrRESTBaseURLEmpty error if the REST backend is selected without a base URL.
	ErrRESTBaseURLEmpty = errors.New("toml config rest.baseURL can not be empty when backend is \"rest\"")
)
