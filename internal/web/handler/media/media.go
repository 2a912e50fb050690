// Package media serves the media item endpoints. Reads are public, writes
// require authentication.
package media

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/middleware/auth"
)

const (
	// Path is the base path for media item endpoints.
	Path = handler.APIBase + "/media"

	// DefaultPerPage is the page size when pagination is requested without
	// an explicit size.
	DefaultPerPage = 25

	// MaxPerPage caps client-requested page sizes.
	MaxPerPage = 100
)

// Service is the media item handler service.
type Service struct {
	cfg       *config.Config
	ds        store.DataStore
	validator *validator.Validate
}

// Handler is the media item handler.
var Handler = Service{}

// payload is the write body for media items.
type payload struct {
	Title      string  `json:"title" validate:"required"`
	FileURL    string  `json:"fileUrl" validate:"required,url"`
	FileType   string  `json:"fileType" validate:"required,oneof=IMAGE VIDEO"`
	IsFeatured bool    `json:"isFeatured"`
	SortOrder  int     `json:"sortOrder"`
	CategoryID *string `json:"categoryId"`
}

// listResponse wraps a media page with its total for pagination controls.
type listResponse struct {
	Items []models.MediaItem `json:"items"`
	Total int64              `json:"total"`
}

// Init initializes the media item handler and registers its routes.
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

// filterFromQuery builds the listing filter from the request query.
func filterFromQuery(c *fiber.Ctx) store.MediaItemFilter {
	var f store.MediaItemFilter

	if raw := c.Query("fileType"); raw != "" {
		fileType := models.FileType(raw)
		f.FileType = &fileType
	}

	if raw := c.Query("categoryId"); raw != "" {
		categoryID := raw
		f.CategoryID = &categoryID
	}

	if raw := c.Query("isFeatured"); raw != "" {
		isFeatured := raw == "true"
		f.IsFeatured = &isFeatured
	}

	f.IncludeCategory = c.QueryBool("includeCategory")

	if page := c.QueryInt("page"); page > 0 {
		f.Page = page

		f.PerPage = c.QueryInt("perPage", DefaultPerPage)
		if f.PerPage < 1 || f.PerPage > MaxPerPage {
			f.PerPage = DefaultPerPage
		}
	}

	return f
}

// List handles listing media items with filtering and pagination.
func (s *Service) List(c *fiber.Ctx) error {
	f := filterFromQuery(c)

	items, err := s.ds.MediaItems().List(c.UserContext(), f)
	if err != nil {
		return handler.RespondError(c, err)
	}

	total, err := s.ds.MediaItems().Count(c.UserContext(), f)
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(listResponse{Items: items, Total: total})
}

// Get handles fetching one media item by id, with its category attached.
func (s *Service) Get(c *fiber.Ctx) error {
	item, err := s.ds.MediaItems().Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return handler.RespondError(c, err)
	}

	if item == nil {
		return handler.Error(c, fiber.StatusNotFound, "not found")
	}

	return c.JSON(item)
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

func (s *Service) modelFromPayload(c *fiber.Ctx, body *payload) models.MediaItem {
	item := models.MediaItem{
		Title:      body.Title,
		FileURL:    body.FileURL,
		FileType:   models.FileType(body.FileType),
		IsFeatured: body.IsFeatured,
		SortOrder:  body.SortOrder,
		CategoryID: body.CategoryID,
	}

	if principal := auth.Principal(c); principal != nil {
		item.CreatedBy = &principal.ID
	}

	return item
}

// Create handles creating a media item.
func (s *Service) Create(c *fiber.Ctx) error {
	body, err := s.parsePayload(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := s.modelFromPayload(c, body)

	if err := s.ds.MediaItems().Create(c.UserContext(), &item); err != nil {
		return handler.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// Update handles replacing a media item.
func (s *Service) Update(c *fiber.Ctx) error {
	body, err := s.parsePayload(c)
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := s.modelFromPayload(c, body)
	item.ID = c.Params("id")

	if err := s.ds.MediaItems().Update(c.UserContext(), &item); err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(item)
}

// Delete handles deleting a media item.
func (s *Service) Delete(c *fiber.Ctx) error {
	if err := s.ds.MediaItems().Delete(c.UserContext(), c.Params("id")); err != nil {
		return handler.RespondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
