// Package daemon wires the application together once at startup: logging,
// database, data store selection, token gateway, upload grants and the web
// service.
package daemon

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/auth"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/dsn"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/logger"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/storage"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/gormstore"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/reststore"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service.
func (d *Daemon) Start() error {
	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// WaitShutdown blocks until the web service has shut down gracefully.
func (d *Daemon) WaitShutdown() {
	d.webService.WaitShutdown()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		panic(err)
	}

	db := OpenDatabase(&cfg.DB)
	seed(db)

	ds := selectStore(cfg, db)

	gateway := auth.NewGateway(
		auth.NewUserInfoIntrospector(cfg.Identity.IssuerURL),
		cfg.Identity.CookieName,
	)

	uploads, err := storage.NewService(context.Background(), &cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize upload grant service")
		return nil
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, ds, gateway, uploads),
	}
}

// OpenDatabase resolves the connection URL, opens the matching gorm driver
// and migrates the schema. The relational database is always opened, even
// when the REST backend serves the API, so synchronization has both sides.
func OpenDatabase(cfg *config.DB) *gorm.DB {
	url := dsn.Resolve(cfg)

	var dialector gorm.Dialector

	if dsn.IsNetworkURL(url) {
		dialector = postgres.Open(url)
	} else {
		dialector = sqlite.Open(strings.TrimPrefix(url, "file:"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.MediaCategory{},
		&models.MediaItem{},
		&models.Slider{},
		&models.SliderItem{},
		&models.SiteConfig{},
	); err != nil {
		panic("failed to migrate database")
	}

	return db
}

// selectStore picks the primary data store from the configured backend.
func selectStore(cfg *config.Config, db *gorm.DB) store.DataStore {
	if cfg.Backend == config.BackendREST {
		log.Info().Str("baseURL", cfg.REST.BaseURL).Msg("serving from REST backend")

		return reststore.New(reststore.NewClient(cfg.REST.BaseURL, cfg.REST.ServiceKey))
	}

	log.Info().Msg("serving from relational backend")

	return gormstore.New(db)
}
