package gormstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

type sliderStore struct {
	db *gorm.DB
}

// preloadItems eager-loads slider items in display order with their media.
func preloadItems(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order")
		}).
		Preload("Items.MediaItem")
}

func normalizeSliderMedia(s *models.Slider) {
	for i := range s.Items {
		if s.Items[i].MediaItem != nil {
			s.Items[i].MediaItem.NormalizeFileURL()
		}
	}
}

func (s *sliderStore) List(ctx context.Context) ([]models.Slider, error) {
	var sliders []models.Slider

	if err := preloadItems(s.db.WithContext(ctx)).Order("created_at").Find(&sliders).Error; err != nil {
		return nil, wrapErr("slider list", err)
	}

	for i := range sliders {
		normalizeSliderMedia(&sliders[i])
	}

	return sliders, nil
}

func (s *sliderStore) Get(ctx context.Context, id string) (*models.Slider, error) {
	var slider models.Slider

	err := preloadItems(s.db.WithContext(ctx)).First(&slider, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, wrapErr("slider get", err)
	}

	normalizeSliderMedia(&slider)

	return &slider, nil
}

func (s *sliderStore) Create(ctx context.Context, sl *models.Slider) error {
	if sl.Name == "" {
		return store.NewValidationError("name", "can not be empty")
	}

	if sl.ID == "" {
		sl.ID = uuid.NewString()
	}

	if err := s.db.WithContext(ctx).Omit("Items").Create(sl).Error; err != nil {
		return wrapErr("slider create", err)
	}

	return nil
}

func (s *sliderStore) Update(ctx context.Context, sl *models.Slider) error {
	var existing models.Slider

	err := s.db.WithContext(ctx).First(&existing, "id = ?", sl.ID).Error
	if err != nil {
		return wrapErr("slider update", err)
	}

	existing.Name = sl.Name
	existing.IsActive = sl.IsActive

	if err := s.db.WithContext(ctx).Omit("Items").Save(&existing).Error; err != nil {
		return wrapErr("slider update", err)
	}

	existing.Items = nil
	*sl = existing

	return nil
}

// Delete removes a slider and cascades to its items (composition).
func (s *sliderStore) Delete(ctx context.Context, id string) error {
	// explicit cascade, the sqlite backend may run without FK enforcement
	err := s.db.WithContext(ctx).Delete(&models.SliderItem{}, "slider_id = ?", id).Error
	if err != nil {
		return wrapErr("slider delete", err)
	}

	result := s.db.WithContext(ctx).Delete(&models.Slider{}, "id = ?", id)
	if result.Error != nil {
		return wrapErr("slider delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}

func (s *sliderStore) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := s.db.WithContext(ctx).Model(&models.Slider{}).Count(&count).Error; err != nil {
		return 0, wrapErr("slider count", err)
	}

	return count, nil
}

// validateItem checks the referenced media item exists and the sort order
// is free within the slider. excludeID skips the item itself on updates.
func (s *sliderStore) validateItem(ctx context.Context, item *models.SliderItem, excludeID string) error {
	var sliders int64

	err := s.db.WithContext(ctx).
		Model(&models.Slider{}).
		Where("id = ?", item.SliderID).
		Count(&sliders).Error
	if err != nil {
		return wrapErr("slider item validate", err)
	}

	if sliders == 0 {
		return store.NewValidationError("sliderId", "slider does not exist")
	}

	var media int64

	err = s.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("id = ?", item.MediaItemID).
		Count(&media).Error
	if err != nil {
		return wrapErr("slider item validate", err)
	}

	if media == 0 {
		return store.NewValidationError("mediaItemId", "media item does not exist")
	}

	q := s.db.WithContext(ctx).
		Model(&models.SliderItem{}).
		Where("slider_id = ? AND sort_order = ?", item.SliderID, item.SortOrder)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var clashes int64
	if err := q.Count(&clashes).Error; err != nil {
		return wrapErr("slider item validate", err)
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

	if err := s.db.WithContext(ctx).Omit("MediaItem").Create(item).Error; err != nil {
		return wrapErr("slider item create", err)
	}

	return nil
}

func (s *sliderStore) UpdateItem(ctx context.Context, item *models.SliderItem) error {
	var existing models.SliderItem

	err := s.db.WithContext(ctx).First(&existing, "id = ?", item.ID).Error
	if err != nil {
		return wrapErr("slider item update", err)
	}

	item.SliderID = existing.SliderID // items never move between sliders

	if err := s.validateItem(ctx, item, item.ID); err != nil {
		return err
	}

	existing.MediaItemID = item.MediaItemID
	existing.SortOrder = item.SortOrder
	existing.Caption = item.Caption

	if err := s.db.WithContext(ctx).Omit("MediaItem").Save(&existing).Error; err != nil {
		return wrapErr("slider item update", err)
	}

	existing.MediaItem = nil
	*item = existing

	return nil
}

func (s *sliderStore) DeleteItem(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.SliderItem{}, "id = ?", id)
	if result.Error != nil {
		return wrapErr("slider item delete", result.Error)
	}

	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}

	return nil
}
