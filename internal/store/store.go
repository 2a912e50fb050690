// Package store defines the backend-agnostic data access contract.
//
// Two implementations satisfy it: gormstore executes operations against the
// resolved relational connection, reststore performs the same logical
// operations as table-scoped REST calls against a PostgREST-style endpoint.
// Call sites never care which backend answers; the implementation is picked
// once at startup from the resolved configuration.
//
// Contract conventions:
//   - Get on a missing id returns (nil, nil), never an error.
//   - Update and Delete on a missing id return ErrNotFound.
//   - Transport-level failures (backend unreachable, malformed response)
//     are wrapped in *TransportError so callers can tell "row doesn't
//     exist" from "backend unreachable".
//   - Ids are assigned by the writer (a fresh UUID when absent), so the
//     same logical row can be created from either backend during
//     synchronization without collisions.
//   - Every operation may block on network I/O; callers apply their own
//     request-level timeout through ctx.
package store

import (
	"context"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
)

// MediaItemFilter narrows media item listings.
type MediaItemFilter struct {
	FileType   *models.FileType
	CategoryID *string
	IsFeatured *bool

	// IncludeCategory eagerly attaches the related category row.
	IncludeCategory bool

	// Page is 1-based; 0 disables pagination.
	Page    int
	PerPage int
}

// UserStore provides CRUD over users.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CategoryStore provides CRUD over media categories. Delete is blocked with
// ErrCategoryInUse while media items reference the category; the check is an
// explicit count, not a storage-engine foreign key.
type CategoryStore interface {
	List(ctx context.Context) ([]models.MediaCategory, error)
	Get(ctx context.Context, id string) (*models.MediaCategory, error)
	Create(ctx context.Context, c *models.MediaCategory) error
	Update(ctx context.Context, c *models.MediaCategory) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// MediaItemStore provides CRUD over media items. Every read and write path
// applies the video URL normalization invariant. Upsert is keyed on id and
// backs the sync engine.
type MediaItemStore interface {
	List(ctx context.Context, f MediaItemFilter) ([]models.MediaItem, error)
	Get(ctx context.Context, id string) (*models.MediaItem, error)
	Create(ctx context.Context, m *models.MediaItem) error
	Update(ctx context.Context, m *models.MediaItem) error
	Upsert(ctx context.Context, m *models.MediaItem) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, f MediaItemFilter) (int64, error)
}

// SliderStore provides CRUD over sliders and their items. Reads eagerly
// load items ordered by sort order, each with its media row. Item writes
// validate that the referenced media item exists and that the sort order is
// unique within the slider; slider deletion cascades to its items.
type SliderStore interface {
	List(ctx context.Context) ([]models.Slider, error)
	Get(ctx context.Context, id string) (*models.Slider, error)
	Create(ctx context.Context, s *models.Slider) error
	Update(ctx context.Context, s *models.Slider) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	CreateItem(ctx context.Context, item *models.SliderItem) error
	UpdateItem(ctx context.Context, item *models.SliderItem) error
	DeleteItem(ctx context.Context, id string) error
}

// SiteConfigStore provides reads and upsert-by-key writes over site config.
type SiteConfigStore interface {
	List(ctx context.Context) ([]models.SiteConfig, error)
	Get(ctx context.Context, key string) (*models.SiteConfig, error)
	Upsert(ctx context.Context, c *models.SiteConfig) error
}

// DataStore aggregates the per-entity capability sets.
type DataStore interface {
	Users() UserStore
	Categories() CategoryStore
	MediaItems() MediaItemStore
	Sliders() SliderStore
	SiteConfig() SiteConfigStore
}
