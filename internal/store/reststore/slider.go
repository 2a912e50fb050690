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

type sliderStore struct {
	c *Client
}

// sliderSelect embeds the ordered items and their media rows in one
// round trip.
const sliderSelect = "*,items:slider_items(*,media_item:media_items(*))"

func sliderQuery() url.Values {
	q := url.Values{}
	q.Set("select", sliderSelect)
	q.Set("items.order", "sort_order.asc")

	return q
}

func (s *sliderStore) List(ctx context.Context) ([]models.Slider, error) {
	q := sliderQuery()
	q.Set("order", "created_at.asc")

	var rows []sliderRow
	if err := s.c.do(ctx, http.MethodGet, tableSliders, q, "", nil, &rows); err != nil {
		return nil, err
	}

	sliders := make([]models.Slider, 0, len(rows))
	for i := range rows {
		sliders = append(sliders, rows[i].toModel())
	}

	return sliders, nil
}

func (s *sliderStore) Get(ctx context.Context, id string) (*models.Slider, error) {
	q := sliderQuery()
	q.Set("id", eq(id))

	var rows []sliderRow
	if err := s.c.do(ctx, http.MethodGet, tableSliders, q, "", nil, &rows); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	slider := rows[0].toModel()

	return &slider, nil
}

func (s *sliderStore) Create(ctx context.Context, sl *models.Slider) error {
	if sl.Name == "" {
		return store.NewValidationError("name", "can not be empty")
	}

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}

	row := sliderToRow(sl)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []sliderRow
	if err := s.c.do(ctx, http.MethodPost, tableSliders, nil, preferUpsert, []sliderRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*sl = rows[0].toModel()
	}

	return nil
}

func (s *sliderStore) Update(ctx context.Context, sl *models.Slider) error {
	q := url.Values{}
	q.Set("id", eq(sl.ID))

	patch := map[string]any{
		"name":       sl.Name,
		"is_active":  sl.IsActive,
		"updated_at": time.Now().UTC(),
	}

	var rows []sliderRow
	if err := s.c.do(ctx, http.MethodPatch, tableSliders, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*sl = rows[0].toModel()

	return nil
}

// Delete removes a slider and cascades to its items (composition).
func (s *sliderStore) Delete(ctx context.Context, id string) error {
	itemQuery := url.Values{}
	itemQuery.Set("slider_id", eq(id))

	// explicit cascade, the endpoint may run without FK enforcement
	if err := s.c.do(ctx, http.MethodDelete, tableSliderItems, itemQuery, "", nil, nil); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("id", eq(id))

	var rows []sliderRow
	if err := s.c.do(ctx, http.MethodDelete, tableSliders, q, preferRepresentation, nil, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *sliderStore) Count(ctx context.Context) (int64, error) {
	return s.c.count(ctx, tableSliders, nil)
}

// validateItem checks the referenced slider and media item exist and the
// sort order is free within the slider. excludeID skips the item itself
// on updates.
func (s *sliderStore) validateItem(ctx context.Context, item *models.SliderItem, excludeID string) error {
	sliderQuery := url.Values{}
	sliderQuery.Set("id", eq(item.SliderID))

	sliders, err := s.c.count(ctx, tableSliders, sliderQuery)
	if err != nil {
		return err
	}

	if sliders == 0 {
		return store.NewValidationError("sliderId", "slider does not exist")
	}

	mediaQuery := url.Values{}
	mediaQuery.Set("id", eq(item.MediaItemID))

	media, err := s.c.count(ctx, tableMediaItems, mediaQuery)
	if err != nil {
		return err
	}

	if media == 0 {
		return store.NewValidationError("mediaItemId", "media item does not exist")
	}

	clashQuery := url.Values{}
	clashQuery.Set("slider_id", eq(item.SliderID))
	clashQuery.Set("sort_order", eq(strconv.Itoa(item.SortOrder)))

	if excludeID != "" {
		clashQuery.Set("id", "neq."+excludeID)
	}

	clashes, err := s.c.count(ctx, tableSliderItems, clashQuery)
	if err != nil {
		return err
	}

	if clashes > 0 {
		return store.NewValidationError("sortOrder", "already used within this slider")
	}

	return nil
}

func (s *sliderStore) CreateItem(ctx context.Context, item *models.SliderItem) error {
	if err := s.validateItem(ctx, item, ""); err != nil {
		return err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	row := sliderItemToRow(item)
	stamp(&row.CreatedAt, &row.UpdatedAt)

	var rows []sliderItemRow
	if err := s.c.do(ctx, http.MethodPost, tableSliderItems, nil, preferUpsert, []sliderItemRow{row}, &rows); err != nil {
		return err
	}

	if len(rows) > 0 {
		*item = rows[0].toModel()
	}

	return nil
}

func (s *sliderStore) UpdateItem(ctx context.Context, item *models.SliderItem) error {
	existingQuery := url.Values{}
	existingQuery.Set("select", "*")
	existingQuery.Set("id", eq(item.ID))

	var existing []sliderItemRow
	if err := s.c.do(ctx, http.MethodGet, tableSliderItems, existingQuery, "", nil, &existing); err != nil {
		return err
	}

	if len(existing) == 0 {
		return store.ErrNotFound
	}

	item.SliderID = existing[0].SliderID // items never move between sliders

	if err := s.validateItem(ctx, item, item.ID); err != nil {
		return err
	}

	q := url.Values{}
	q.Set("id", eq(item.ID))

	patch := map[string]any{
		"media_item_id": item.MediaItemID,
		"sort_order":    item.SortOrder,
		"caption":       item.Caption,
		"updated_at":    time.Now().UTC(),
	}

	var rows []sliderItemRow
	if err := s.c.do(ctx, http.MethodPatch, tableSliderItems, q, preferRepresentation, patch, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	*item = rows[0].toModel()

	return nil
}

func (s *sliderStore) DeleteItem(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("id", eq(id))

	var rows []sliderItemRow
	if err := s.c.do(ctx, http.MethodDelete, tableSliderItems, q, preferRepresentation, nil, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		return store.ErrNotFound
	}

	return nil
}
