// Package web assembles the fiber application: access logging, the
// authentication middleware for write routes and the API handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	iauth "github.com/GoMediaAdmin/GoMediaAdmin/internal/auth"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	fiberlogger "github.com/GoMediaAdmin/GoMediaAdmin/internal/logger/adapter/fiber"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/storage"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler/category"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler/media"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler/siteconfig"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler/slider"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler/upload"
	authmw "github.com/GoMediaAdmin/GoMediaAdmin/internal/web/middleware/auth"
)

// CheckAliveURI is the liveness endpoint watched by load balancers.
const CheckAliveURI = "/checkalive"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and wired
// dependencies.
func New(cfg *config.Config, ds store.DataStore, gateway *iauth.Gateway, uploads *storage.Service) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if ds == nil {
		panic("store cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAliveURI,
	}))

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	app.Get(CheckAliveURI, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	// writes are guarded uniformly; reads stay public
	protect := authmw.New(gateway)

	category.Handler.Init(app, cfg, ds, protect)
	media.Handler.Init(app, cfg, ds, protect)
	slider.Handler.Init(app, cfg, ds, protect)
	siteconfig.Handler.Init(app, cfg, ds, protect)
	upload.Handler.Init(app, cfg, uploads, protect)

	return service
}
