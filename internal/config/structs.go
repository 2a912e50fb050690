package config

import (
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/logger"
)

// Backend selection values for the primary data store.
const (
	// BackendLocal serves data access through the relational (gorm) store.
	BackendLocal = "local"
	// BackendREST serves data access through the REST-table store.
	BackendREST = "rest"
)

// Config overall data structure.
type Config struct {
	DevMode   bool   // enable dev mode for development
	Title     string // application title
	Backend   string // primary data store: "local" or "rest"
	DB        DB
	REST      REST
	Identity  Identity
	Storage   Storage
	Log       logger.Log
	Webserver Webserver
}

// DB holds the relational database configuration.
type DB struct {
	// URL is the connection string: postgres://... for a network database
	// or file:... for an embedded sqlite file. Overridden by DATABASE_URL.
	URL string `toml:"url"`
	// EnvFiles are scanned, in order, for a network DATABASE_URL definition
	// when URL itself is not a network URL. Defaults to .env.local, .env.
	EnvFiles []string `toml:"envFiles"`
	// ScratchDir is the writable directory used when an embedded database
	// file has to be relocated off a read-only deployment filesystem.
	// Defaults to the OS temp directory.
	ScratchDir string `toml:"scratchDir"`
	// ForceRelocate relocates the embedded file even when no read-only
	// deployment marker is present in the environment.
	ForceRelocate bool `toml:"forceRelocate"`
}

// REST holds the REST-table backend configuration (PostgREST dialect).
type REST struct {
	// BaseURL is the service root, e.g. https://example.supabase.co.
	BaseURL string `toml:"baseURL"`
	// ServiceKey is the privileged key sent as apikey and bearer headers.
	ServiceKey string `toml:"serviceKey"`
}

// Identity holds the identity service configuration for token introspection.
type Identity struct {
	// IssuerURL is the OIDC issuer of the identity service.
	IssuerURL string `toml:"issuerURL"`
	// CookieName is the fallback cookie holding the bearer credential when
	// no Authorization header is present.
	CookieName string `toml:"cookieName"`
}

// Storage holds the object storage configuration for signed upload grants.
type Storage struct {
	Endpoint  string `toml:"endpoint"` // S3-compatible endpoint, empty for AWS
	Region    string `toml:"region"`
	Bucket    string `toml:"bucket"`
	AccessKey string `toml:"accessKey"`
	SecretKey string `toml:"secretKey"`
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}
