// Package slider serves the slider and slider item endpoints. Reads are
// public, writes require authentication.
package slider

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler"
)

const (
	// Path is the base path for slider endpoints.
	Path = handler.APIBase + "/sliders"

	// ItemPath is the base path for standalone slider item endpoints.
	ItemPath = handler.APIBase + "/slider-items"
)

// Service is the slider handler service.
type Service struct {
	cfg       *config.Config
	ds        store.DataStore
	validator *validator.Validate
}

// Handler is the slider handler.
var Handler = Service{}

// payload is the write body for sliders.
type payload struct {
	Name     string `json:"name" validate:"required"`
	IsActive bool   `json:"isActive"`
}

// itemPayload is the write body for slider items.
type itemPayload struct {
	MediaItemID string  `json:"mediaItemId" validate:"required"`
	SortOrder   int     `json:"sortOrder" validate:"gte=0"`
	Caption     *string `json:"caption"`
}

// Init initializes the slider handler and registers its routes.
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

	app.Post(Path+"/:id/items", protect, s.CreateItem)
	app.Put(ItemPath+"/:id", protect, s.UpdateItem)
	app.Delete(ItemPath+"/:id", protect, s.DeleteItem)
}

// List handles listing all sliders with their ordered items.
func (s *Service) List(c *fiber.Ctx) error {
	sliders, err := s.ds.Sliders().List(c.UserContext())
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(sliders)
}

// Get handles fetching one slider with its ordered items.
func (s *Service) Get(c *fiber.Ctx) error {
	slider, err := s.ds.Sliders().Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.RespondError(c, err)
	}

	if slider == nil {
		return handler.Error(c, fiber.StatusNotFound, "not found")
	}

	return c.JSON(slider)
}

// Create handles creating a slider.
func (s *Service) Create(c *fiber.Ctx) error {
	var body payload

	if err := parseInto(c, s.validator, &body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	slider := models.Slider{Name: body.Name, IsActive: body.IsActive}

	if err := s.ds.Sliders().Create(c.UserContext(), &slider); err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(slider)
}

// Update handles replacing a slider.
func (s *Service) Update(c *fiber.Ctx) error {
	var body payload

	if err := parseInto(c, s.validator, &body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	slider := models.Slider{
		ID:       c.Params("id"),
		Name:     body.Name,
		IsActive: body.IsActive,
	}

	if err := s.ds.Sliders().Update(c.UserContext(), &slider); err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(slider)
}

// Delete handles deleting a slider together with its items.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.ds.Sliders().Delete(c.UserContext(), c.Params("id")); err != nil {
		return handler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateItem handles adding an item to a slider.
func (s *Service) CreateItem(c *fiber.Ctx) error {
	var body itemPayload

	if err := parseInto(c, s.validator, &body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := models.SliderItem{
		SliderID:    c.Params("id"),
		MediaItemID: body.MediaItemID,
		SortOrder:   body.SortOrder,
		Caption:     body.Caption,
	}

	if err := s.ds.Sliders().CreateItem(c.UserContext(), &item); err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateItem handles replacing a slider item. Items never move between
// sliders.
func (s *Service) UpdateItem(c *fiber.Ctx) error {
	var body itemPayload

	if err := parseInto(c, s.validator, &body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := models.SliderItem{
		ID:          c.Params("id"),
		MediaItemID: body.MediaItemID,
		SortOrder:   body.SortOrder,
		Caption:     body.Caption,
	}

	if err := s.ds.Sliders().UpdateItem(c.UserContext(), &item); err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(item)
}

// DeleteItem handles removing a slider item.
func (s *Service) DeleteItem(c *fiber.Ctx) error {
	if err := s.ds.Sliders().DeleteItem(c.UserContext(), c.Params("id")); err != nil {
		return handler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseInto(c *fiber.Ctx, v *validator.Validate, out any) error {
	if err := c.BodyParser(out); err != nil {
		return err
	}

	return v.Struct(out)
}
