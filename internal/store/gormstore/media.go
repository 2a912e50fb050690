package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type mediaItemStore struct {
	db *gorm.DB
}

func applyMediaFilter(q *gorm.DB, f store.MediaItemFilter) *gorm.DB {
	if f.FileType != nil {
		q = q.Where("file_type = ?", *f.FileType)
	}

	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	if f.IsFeatured != nil {
		q = q.Where("is_featured = ?", *f.IsFeatured)
	}

	return q
}

func (s *mediaItemStore) List(ctx context.Context, f store.MediaItemFilter) ([]models.MediaItem, error) {
	var items []models.MediaItem

	q := applyMediaFilter(s.db.WithContext(ctx), f).Order("sort_order, created_at")

	if f.IncludeCategory {
		q = q.Preload("Category")
	}

	if f.Page > 0 && f.PerPage > 0 {
		q = q.Offset((f.Page - 1) * f.PerPage).Limit(f.PerPage)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, wrapErr("media list", err)
	}

	for i := range items {
		items[i].NormalizeFileURL()
	}

	return items, nil
}

func (s *mediaItemStore) Get(ctx context.Context, id string) (*models.MediaItem, error) {
	var item models.MediaItem

	err := s.db.WithContext(ctx).Preload("Category").First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, wrapErr("media get", err)
	}

	item.NormalizeFileURL()

	return &item, nil
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

func (s *mediaItemStore) Create(ctx context.Context, m *models.MediaItem) error {
	if err := validateMediaItem(m); err != nil {
		return err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	m.NormalizeFileURL()

	if err := s.db.WithContext(ctx).Omit("Category").Create(m).Error; err != nil {
		return wrapErr("media create", err)
	}

	return nil
}

func (s *mediaItemStore) Update(ctx context.Context, m *models.MediaItem) error {
	if err := validateMediaItem(m); err != nil {
		return err
	}

	var existing models.MediaItem

	err := s.db.WithContext(ctx).First(&existing, "id = ?", m.ID).Error
	if err != nil {
		return wrapErr("media update", err)
	}

	existing.Title = m.Title
	existing.FileURL = m.FileURL
	existing.FileType = m.FileType
	existing.IsFeatured = m.IsFeatured
	existing.SortOrder = m.SortOrder
	existing.CategoryID = m.CategoryID
	existing.NormalizeFileURL()

	if err := s.db.WithContext(ctx).Omit("Category").Save(&existing).Error; err != nil {
		return wrapErr("media update", err)
	}

	*m = existing

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

	err := s.db.WithContext(ctx).
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return wrapErr("media upsert", err)
	}

	return nil
}

func (s *mediaItemStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.MediaItem{}, "id = ?", id)
	if result.Error != nil {
		return wrapErr("media delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *mediaItemStore) Count(ctx context.Context, f store.MediaItemFilter) (int64, error) {
	var count int64

	q := applyMediaFilter(s.db.WithContext(ctx).Model(&models.MediaItem{}), f)

	if err := q.Count(&count).Error; err != nil {
		return 0, wrapErr("media count", err)
	}

	return count, nil
}
