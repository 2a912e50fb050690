package reststore

import (
	"time"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
)

// Row types mirror the snake_case wire format of the REST tables. They are
// converted to and from the camelCase entity models so both store
// implementations return identical shapes.

type userRow struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *userRow) toModel() models.User {
	return models.User{
		ID:        r.ID,
		Email:     r.Email,
		Name:      r.Name,
		Role:      models.Role(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func userToRow(u *models.User) userRow {
	return userRow{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type categoryRow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r *categoryRow) toModel() models.MediaCategory {
	return models.MediaCategory{
		ID:          r.ID,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func categoryToRow(c *models.MediaCategory) categoryRow {
	return categoryRow{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type mediaItemRow struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	FileURL    string       `json:"file_url"`
	FileType   string       `json:"file_type"`
	IsFeatured bool         `json:"is_featured"`
	SortOrder  int          `json:"sort_order"`
	CategoryID *string      `json:"category_id"`
	CreatedBy  *string      `json:"created_by"`
	Category   *categoryRow `json:"category,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (r *mediaItemRow) toModel() models.MediaItem {
	m := models.MediaItem{
		ID:         r.ID,
		Title:      r.Title,
		FileURL:    r.FileURL,
		FileType:   models.FileType(r.FileType),
		IsFeatured: r.IsFeatured,
		SortOrder:  r.SortOrder,
		CategoryID: r.CategoryID,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.Category != nil {
		cat := r.Category.toModel()
		m.Category = &cat
	}

	m.NormalizeFileURL()

	return m
}

func mediaItemToRow(m *models.MediaItem) mediaItemRow {
	return mediaItemRow{
		ID:         m.ID,
		Title:      m.Title,
		FileURL:    m.FileURL,
		FileType:   string(m.FileType),
		IsFeatured: m.IsFeatured,
		SortOrder:  m.SortOrder,
		CategoryID: m.CategoryID,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type sliderRow struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	IsActive  bool            `json:"is_active"`
	Items     []sliderItemRow `json:"items,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (r *sliderRow) toModel() models.Slider {
	s := models.Slider{
		ID:        r.ID,
		Name:      r.Name,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	for i := range r.Items {
		s.Items = append(s.Items, r.Items[i].toModel())
	}

	return s
}

func sliderToRow(s *models.Slider) sliderRow {
	return sliderRow{
		ID:        s.ID,
		Name:      s.Name,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type sliderItemRow struct {
	ID          string        `json:"id"`
	SliderID    string        `json:"slider_id"`
	MediaItemID string        `json:"media_item_id"`
	SortOrder   int           `json:"sort_order"`
	Caption     *string       `json:"caption"`
	MediaItem   *mediaItemRow `json:"media_item,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (r *sliderItemRow) toModel() models.SliderItem {
	item := models.SliderItem{
		ID:          r.ID,
		SliderID:    r.SliderID,
		MediaItemID: r.MediaItemID,
		SortOrder:   r.SortOrder,
		Caption:     r.Caption,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.MediaItem != nil {
		m := r.MediaItem.toModel()
		item.MediaItem = &m
	}

	return item
}

func sliderItemToRow(item *models.SliderItem) sliderItemRow {
	return sliderItemRow{
		ID:          item.ID,
		SliderID:    item.SliderID,
		MediaItemID: item.MediaItemID,
		SortOrder:   item.SortOrder,
		Caption:     item.Caption,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

type siteConfigRow struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy *string   `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *siteConfigRow) toModel() models.SiteConfig {
	return models.SiteConfig{
		ID:        r.ID,
		Key:       r.Key,
		Value:     r.Value,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func siteConfigToRow(c *models.SiteConfig) siteConfigRow {
	return siteConfigRow{
		ID:        c.ID,
		Key:       c.Key,
		Value:     c.Value,
		UpdatedBy: c.UpdatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// stamp fills writer-assigned timestamps on insert paths.
func stamp(created, updated *time.Time) {
	now := time.Now().UTC()

	if created.IsZero() {
		*created = now
	}

	*updated = now
}
