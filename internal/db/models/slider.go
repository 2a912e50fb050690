package models

import (
	"time"
)

// Slider owns an ordered sequence of slider items. Deleting a slider
// cascades to its items (composition).
type Slider struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Name is the display name of the slider.
	Name string `gorm:"size:255;not null" json:"name"`
	// IsActive controls whether the slider is shown on the public site.
	IsActive bool `gorm:"column:is_active;not null;default:true" json:"isActive"`

	// Items are the slides, ordered by SortOrder when eagerly loaded.
	Items []SliderItem `gorm:"foreignKey:SliderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SliderItem is a single slide. It references exactly one MediaItem, whose
// existence is validated before the item is created or updated, and carries
// a SortOrder unique within its slider.
type SliderItem struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// SliderID references the owning slider.
	SliderID string `gorm:"column:slider_id;size:36;not null;uniqueIndex:idx_slider_sort" json:"sliderId"`
	// MediaItemID references the media item shown on this slide.
	MediaItemID string `gorm:"column:media_item_id;size:36;not null" json:"mediaItemId"`
	// SortOrder defines the display position; unique within the slider.
	SortOrder int `gorm:"column:sort_order;not null;uniqueIndex:idx_slider_sort" json:"sortOrder"`
	// Caption is an optional overlay text.
	Caption *string `gorm:"size:512" json:"caption"`

	// MediaItem is the eagerly loaded media row, when requested.
	MediaItem *MediaItem `gorm:"foreignKey:MediaItemID" json:"mediaItem,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
