// Package siteconfig serves the site configuration endpoints. Reads are
// public, writes require authentication.
package siteconfig

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/handler"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/web/middleware/auth"
)

// Path is the base path for site configuration endpoints.
const Path = handler.APIBase + "/site-config"

// Service is the site configuration handler service.
type Service struct {
	cfg *config.Config
	ds  store.DataStore
}

// Handler is the site configuration handler.
var Handler = Service{}

// payload is the write body for a site configuration entry.
type payload struct {
	Value string `json:"value"`
}

// bulkEntry is one element of the collection-level write body.
type bulkEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Init initializes the site configuration handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, ds store.DataStore, protect fiber.Handler) {
	if app == nil || cfg == nil || ds == nil {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.ds = ds

	app.Get(Path, s.List)
	app.Put(Path, protect, s.BulkUpsert)
	app.Get(Path+"/:key", s.Get)
	app.Put(Path+"/:key", protect, s.Upsert)
}

// List handles listing all configuration entries.
func (s *Service) List(c *fiber.Ctx) error {
	entries, err := s.ds.SiteConfig().List(c.UserContext())
	if err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(entries)
}

// Get handles fetching one configuration entry by key.
func (s *Service) Get(c *fiber.Ctx) error {
	entry, err := s.ds.SiteConfig().Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return handler.RespondError(c, err)
	}

	if entry == nil {
		return handler.Error(c, fiber.StatusNotFound, "not found")
	}

	return c.JSON(entry)
}

// Upsert handles creating or updating a configuration entry by key. The
// writing principal is recorded on the entry.
func (s *Service) Upsert(c *fiber.Ctx) error {
	var body payload

	if err := c.BodyParser(&body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	entry := models.SiteConfig{
		Key:   c.Params("key"),
		Value: body.Value,
	}

	if principal := auth.Principal(c); principal != nil {
		entry.UpdatedBy = &principal.ID
	}

	if err := s.ds.SiteConfig().Upsert(c.UserContext(), &entry); err != nil {
		return handler.RespondError(c, err)
	}

	return c.JSON(entry)
}

// BulkUpsert handles writing several configuration entries in one request.
// The body is a JSON array of {key, value} objects; entries are written in
// order and the writing principal is recorded on each.
func (s *Service) BulkUpsert(c *fiber.Ctx) error {
	var body []bulkEntry

	if err := c.BodyParser(&body); err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if len(body) == 0 {
		return handler.Error(c, fiber.StatusBadRequest, "at least one entry is required")
	}

	var updatedBy *string

	if principal := auth.Principal(c); principal != nil {
		updatedBy = &principal.ID
	}

	entries := make([]models.SiteConfig, 0, len(body))

	for _, e := range body {
		entry := models.SiteConfig{
			Key:       e.Key,
			Value:     e.Value,
			UpdatedBy: updatedBy,
		}

		if err := s.ds.SiteConfig().Upsert(c.UserContext(), &entry); err != nil {
			return handler.RespondError(c, err)
		}

		entries = append(entries, entry)
	}

	return c.JSON(entries)
}
