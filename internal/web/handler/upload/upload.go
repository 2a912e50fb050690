// Package upload serves the upload grant endpoint. Issuing a grant always
// requires authentication.
package upload

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/storage"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler"
)

// Path is the base path for upload grant endpoints.
const Path = handler.APIBase + "/uploads"

// Service is the upload grant handler service.
type Service struct {
	cfg       *config.Config
	uploads   *storage.Service
	validator *validator.Validate
}

// Handler is the upload grant handler.
var Handler = Service{}

// payload is the grant request body.
type payload struct {
	Kind        string `json:"kind" validate:"required,oneof=image video"`
	Ext         string `json:"ext"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"required,gt=0"`
}

// Init initializes the upload grant handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, uploads *storage.Service, protect fiber.Handler) {
	if app == nil || cfg == nil || uploads == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.uploads = uploads
	s.validator = validator.New()

	app.Post(Path, protect, s.Create)
}

// Create handles issuing an upload grant for a declared file.
func (s *Service) Create(c *fiber.Ctx) error {
	var body payload

	if err := c.BodyParser(&body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := s.validator.Struct(&body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	grant, err := s.uploads.IssueUploadGrant(c.UserContext(), body.Kind, body.Ext, body.ContentType, body.Size)

	switch {
	case errors.Is(err, storage.ErrUnknownKind), errors.Is(err, storage.ErrSizeOutOfRange):
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(grant)
}
