package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

// Error writes a JSON error body with the given status.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// RespondError translates a store error into an HTTP response. Transport
// details are logged, never sent to clients.
func RespondError(c *fiber.Ctx, err error) error {
	var verr *store.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		return Error(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, store.ErrCategoryInUse):
		return Error(c, fiber.StatusConflict, "category is referenced by media items")
	case errors.As(err, &verr):
		return Error(c, fiber.StatusBadRequest, verr.Error())
	case store.IsTransport(err):
		log.Error().Err(err).Str("path", c.Path()).Msg("storage backend failure")

		return Error(c, fiber.StatusServiceUnavailable, "storage backend unavailable")
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("unhandled handler error")

	return Error(c, fiber.StatusInternalServerError, "internal error")
}
