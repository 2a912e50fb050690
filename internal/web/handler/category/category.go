// Package category serves the media category endpoints. Reads are public,
// writes require authentication.
package category

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler"
)

// Path is the base path for category endpoints.
const Path = handler.APIBase + "/categories"

// Service is the category handler service.
type Service struct {
	cfg       *config.Config
	ds        store.DataStore
	validator *validator.Validate
}

// Handler is the category handler.
var Handler = Service{}

// payload is the write body for categories.
type payload struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required"`
	Description *string `json:"description"`
}

// Init initializes the category handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ds store.DataStore, protect fiber.Handler) {
	if app == nil || cfg == nil || ds == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.ds = ds
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, protect, s.Create)
	app.Put(Path+"/:id", protect, s.Update)
	app.Delete(Path+"/:id", protect, s.Delete)
}

// List handles listing all categories.
func (s *Service) List(c *fiber.Ctx) error {
	categories, err := s.ds.Categories().List(c.UserContext())
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(categories)
}

// Get handles fetching one category by id.
func (s *Service) Get(c *fiber.Ctx) error {
	category, err := s.ds.Categories().Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.RespondError(c, err)
	}

	if category == nil {
		return handler.Error(c, fiber.StatusNotFound, "not found")
	}

	return c.JSON(category)
}

func (s *Service) parsePayload(c *fiber.Ctx) (*payload, error) {
	var body payload

	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(&body); err != nil {
		return nil, err
	}

	return &body, nil
}

// Create handles creating a category.
func (s *Service) Create(c *fiber.Ctx) error {
	body, err := s.parsePayload(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	category := models.MediaCategory{
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
	}

	if err := s.ds.Categories().Create(c.UserContext(), &category); err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// Update handles replacing a category.
func (s *Service) Update(c *fiber.Ctx) error {
	body, err := s.parsePayload(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	category := models.MediaCategory{
		ID:          c.Params("id"),
		Name:        body.Name,
		Slug:        body.Slug,
		Description: body.Description,
	}

	if err := s.ds.Categories().Update(c.UserContext(), &category); err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(category)
}

// Delete handles deleting a category. Categories still referenced by media
// items are not deletable.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.ds.Categories().Delete(c.UserContext(), c.Params("id")); err != nil {
		return handler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
