package reststore

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type categoryStore struct {
	c *Client
}

func (s *categoryStore) List(ctx context.Context) ([]models.MediaCategory, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "name.asc")

	var rows []categoryRow
	if err := s.c.do(ctx, http.MethodGet, tableCategories, q, "", nil, &rows); err != nil {
		return nil, err
	}

	categories := make([]models.MediaCategory, 0, len(rows))
	for i := range rows {
		categories = append(categories, rows[i].toModel())
	}

	return categories, nil
}

func (s *categoryStore) Get(ctx context.Context, id string) (*models.MediaCategory, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", eq(id))

	var rows []categoryRow
	if err := s.c.do(ctx, http.MethodGet, tableCategories, q, "", nil, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	category := rows[0].toModel()

	return &category, nil
}

func (s *categoryStore) Create(ctx context.Context, c *models.MediaCategory) error {
	if c.Name == "" {
		return store.NewValidationError("name", "can not be empty")
	}

	if c.Slug == "" {
		return store.NewValidationError("slug", "can not be empty")
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	row := categoryToRow(c)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []categoryRow
	if err := s.c.do(ctx, http.MethodPost, tableCategories, nil, preferUpsert, []categoryRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*c = rows[0].toModel()
	}

	return nil
}

func (s *categoryStore) Update(ctx context.Context, c *models.MediaCategory) error {
	q := url.Values{}
	q.Set("id", eq(c.ID))

	patch := map[string]any{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"updated_at":  time.Now().UTC(),
	}

	var rows []categoryRow
	if err := s.c.do(ctx, http.MethodPatch, tableCategories, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*c = rows[0].toModel()

	return nil
}

// Delete removes a category. It is rejected while media items still
// reference the category; the guard is an explicit count against the
// media table, matching the relational backend.
func (s *categoryStore) Delete(ctx context.Context, id string) error {
	refQuery := url.Values{}
	refQuery.Set("category_id", eq(id))

	refs, err := s.c.count(ctx, tableMediaItems, refQuery)
	if err != nil {
		return err
	}

	if refs > 0 {
		return store.ErrCategoryInUse
	}

	q := url.Values{}
	q.Set("id", eq(id))

	var rows []categoryRow
	if err := s.c.do(ctx, http.MethodDelete, tableCategories, q, preferRepresentation, nil, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *categoryStore) Count(ctx context.Context) (int64, error) {
	return s.c.count(ctx, tableCategories, nil)
}
