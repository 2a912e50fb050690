package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type categoryStore struct {
	db *gorm.DB
}

func (s *categoryStore) List(ctx context.Context) ([]models.MediaCategory, error) {
	var categories []models.MediaCategory

	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, wrapErr("category list", err)
	}

	return categories, nil
}

func (s *categoryStore) Get(ctx context.Context, id string) (*models.MediaCategory, error) {
	var category models.MediaCategory

	err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, wrapErr("category get", err)
	}

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

	if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
		return wrapErr("category create", err)
	}

	return nil
}

func (s *categoryStore) Update(ctx context.Context, c *models.MediaCategory) error {
	var existing models.MediaCategory

	err := s.db.WithContext(ctx).First(&existing, "id = ?", c.ID).Error
	if err != nil {
		return wrapErr("category update", err)
	}

	existing.Name = c.Name
	existing.Slug = c.Slug
	existing.Description = c.Description

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return wrapErr("category update", err)
	}

	*c = existing

	return nil
}

// Delete removes a category. It is rejected while media items still
// reference the category; the guard is an explicit count so it holds on
// storage engines without foreign key enforcement.
func (s *categoryStore) Delete(ctx context.Context, id string) error {
	var refs int64

	err := s.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("category_id = ?", id).
		Count(&refs).Error
	if err != nil {
		return wrapErr("category delete", err)
	}

	if refs > 0 {
		return store.ErrCategoryInUse
	}

	result := s.db.WithContext(ctx).Delete(&models.MediaCategory{}, "id = ?", id)
	if result.Error != nil {
		return wrapErr("category delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *categoryStore) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := s.db.WithContext(ctx).Model(&models.MediaCategory{}).Count(&count).Error; err != nil {
		return 0, wrapErr("category count", err)
	}

	return count, nil
}
