package reststore

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type mediaItemStore struct {
	c *Client
}

// selectWithCategory embeds the related category row in one round trip.
const selectWithCategory = "*,category:media_categories(*)"

func mediaFilterQuery(f store.MediaItemFilter) url.Values {
	q := url.Values{}

	if f.FileType != nil {
		q.Set("file_type", eq(string(*f.FileType)))
	}

	if f.CategoryID != nil {
		q.Set("category_id", eq(*f.CategoryID))
	}

	if f.IsFeatured != nil {
		q.Set("is_featured", eq(strconv.FormatBool(*f.IsFeatured)))
	}

	return q
}

func validateMediaItem(m *models.MediaItem) error {
	if m.Title == "" {
		return store.NewValidationError("title", "can not be empty")
	}

	if m.FileURL == "" {
		return store.NewValidationError("fileUrl", "can not be empty")
	}

	if m.FileType != models.FileTypeImage && m.FileType != models.FileTypeVideo {
		return store.NewValidationError("fileType", "must be IMAGE or VIDEO")
	}

	return nil
}

func (s *mediaItemStore) List(ctx context.Context, f store.MediaItemFilter) ([]models.MediaItem, error) {
	q := mediaFilterQuery(f)
	q.Set("select", "*")
	q.Set("order", "sort_order.asc,created_at.asc")

	if f.IncludeCategory {
		q.Set("select", selectWithCategory)
	}

	if f.Page > 0 && f.PerPage > 0 {
		q.Set("limit", strconv.Itoa(f.PerPage))
		q.Set("offset", strconv.Itoa((f.Page-1)*f.PerPage))
	}

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodGet, tableMediaItems, q, "", nil, &rows); err != nil {
		return nil, err
	}

	items := make([]models.MediaItem, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toModel())
	}

	return items, nil
}

func (s *mediaItemStore) Get(ctx context.Context, id string) (*models.MediaItem, error) {
	q := url.Values{}
	q.Set("select", selectWithCategory)
	q.Set("id", eq(id))

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodGet, tableMediaItems, q, "", nil, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	item := rows[0].toModel()

	return &item, nil
}

func (s *mediaItemStore) Create(ctx context.Context, m *models.MediaItem) error {
	if err := validateMediaItem(m); err != nil {
		return err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	m.NormalizeFileURL()

	row := mediaItemToRow(m)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodPost, tableMediaItems, nil, preferUpsert, []mediaItemRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*m = rows[0].toModel()
	}

	return nil
}

func (s *mediaItemStore) Update(ctx context.Context, m *models.MediaItem) error {
	if err := validateMediaItem(m); err != nil {
		return err
	}

	m.NormalizeFileURL()

	q := url.Values{}
	q.Set("id", eq(m.ID))

	patch := map[string]any{
		"title":       m.Title,
		"file_url":    m.FileURL,
		"file_type":   string(m.FileType),
		"is_featured": m.IsFeatured,
		"sort_order":  m.SortOrder,
		"category_id": m.CategoryID,
		"updated_at":  time.Now().UTC(),
	}

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodPatch, tableMediaItems, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*m = rows[0].toModel()

	return nil
}

// Upsert creates or replaces the row keyed on its writer-assigned id.
// Used by the sync engine; safe to repeat.
func (s *mediaItemStore) Upsert(ctx context.Context, m *models.MediaItem) error {
	if err := validateMediaItem(m); err != nil {
		return err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	m.NormalizeFileURL()

	row := mediaItemToRow(m)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodPost, tableMediaItems, nil, preferUpsert, []mediaItemRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*m = rows[0].toModel()
	}

	return nil
}

func (s *mediaItemStore) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", eq(id))

	var rows []mediaItemRow
	if err := s.c.do(ctx, http.MethodDelete, tableMediaItems, q, preferRepresentation, nil, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *mediaItemStore) Count(ctx context.Context, f store.MediaItemFilter) (int64, error) {
	return s.c.count(ctx, tableMediaItems, mediaFilterQuery(f))
}
