package handler

const (
	// APIBase is the mount point of the JSON API.
	APIBase = "/api/v1"

	// ErrNilDepsFatalLogMsg is used if the app, cfg or store pointer is nil.
	ErrNilDepsFatalLogMsg = "app, cfg or store is nil"
)
