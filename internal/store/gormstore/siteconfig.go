package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type siteConfigStore struct {
	db *gorm.DB
}

func (s *siteConfigStore) List(ctx context.Context) ([]models.SiteConfig, error) {
	var entries []models.SiteConfig

	if err := s.db.WithContext(ctx).Order("key").Find(&entries).Error; err != nil {
		return nil, wrapErr("site config list", err)
	}

	return entries, nil
}

func (s *siteConfigStore) Get(ctx context.Context, key string) (*models.SiteConfig, error) {
	var entry models.SiteConfig

	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, wrapErr("site config get", err)
	}

	return &entry, nil
}

// Upsert creates the entry when the key is absent and updates it when
// present. The same write path serves both cases.
func (s *siteConfigStore) Upsert(ctx context.Context, c *models.SiteConfig) error {
	if c.Key == "" {
		return store.NewValidationError("key", "can not be empty")
	}

	var existing models.SiteConfig

	err := s.db.WithContext(ctx).First(&existing, "key = ?", c.Key).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}

		if err := s.db.WithContext(ctx).Create(c).Error; err != nil {
			return wrapErr("site config upsert", err)
		}

		return nil
	}

	if err != nil {
		return wrapErr("site config upsert", err)
	}

	existing.Value = c.Value
	existing.UpdatedBy = c.UpdatedBy

	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return wrapErr("site config upsert", err)
	}

	*c = existing

	return nil
}
