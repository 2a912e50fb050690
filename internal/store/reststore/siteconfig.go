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

type siteConfigStore struct {
	c *Client
}

func (s *siteConfigStore) List(ctx context.Context) ([]models.SiteConfig, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("order", "key.asc")

	var rows []siteConfigRow
	if err := s.c.do(ctx, http.MethodGet, tableSiteConfig, q, "", nil, &rows); err != nil {
		return nil, err
	}

	entries := make([]models.SiteConfig, 0, len(rows))
	for i := range rows {
		entries = append(entries, rows[i].toModel())
	}

	return entries, nil
}

func (s *siteConfigStore) Get(ctx context.Context, key string) (*models.SiteConfig, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("key", eq(key))

	var rows []siteConfigRow
	if err := s.c.do(ctx, http.MethodGet, tableSiteConfig, q, "", nil, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	entry := rows[0].toModel()

	return &entry, nil
}

// Upsert creates the entry when the key is absent and patches it when
// present, keeping the existing row id either way.
func (s *siteConfigStore) Upsert(ctx context.Context, c *models.SiteConfig) error {
	if c.Key == "" {
		return store.NewValidationError("key", "can not be empty")
	}

	existing, err := s.Get(ctx, c.Key)
	if err != nil {
		return err
	}

	if existing == nil {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}

		row := siteConfigToRow(c)
		stamp(&row.CreatedAt, &row.UpdatedAt)

		var rows []siteConfigRow
		if err := s.c.do(ctx, http.MethodPost, tableSiteConfig, nil, preferUpsert, []siteConfigRow{row}, &rows); err != nil {
			return err
		}

		if len(rows) > 0 {
			*c = rows[0].toModel()
		}

		return nil
	}

	q := url.Values{}
	q.Set("key", eq(c.Key))

	patch := map[string]any{
		"value":      c.Value,
		"updated_by": c.UpdatedBy,
		"updated_at": time.Now().UTC(),
	}

	var rows []siteConfigRow
	if err := s.c.do(ctx, http.MethodPatch, tableSiteConfig, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*c = rows[0].toModel()

	return nil
}
