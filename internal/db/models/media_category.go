package models

import (
	"time"
)

// MediaCategory groups media items. A media item references at most one
// category; deleting a category with referencing items is rejected at the
// store layer rather than relying on a storage-engine foreign key.
type MediaCategory struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Name is the display name of the category.
	Name string `gorm:"size:255;not null" json:"name"`
	// Slug is the unique URL-safe identifier of the category.
	Slug string `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	// Description is an optional free-form description.
	Description *string   `gorm:"size:1024" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
