package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

// Service is the interface for a web handler service. protect is the
// middleware guarding write routes.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, ds store.DataStore, protect fiber.Handler)
}
