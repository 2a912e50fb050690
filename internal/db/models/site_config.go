package models

import (
	"time"
)

// SiteConfig is a key-value entry of site-wide configuration. Writes are
// upserts keyed on Key: the same write path creates the entry when absent
// and updates it when present.
type SiteConfig struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Key is the unique configuration key.
	Key string `gorm:"uniqueIndex;size:255;not null" json:"key"`
	// Value is the serialized scalar value.
	Value string `gorm:"size:4096" json:"value"`
	// UpdatedBy optionally references the User that performed the last write.
	UpdatedBy *string `gorm:"column:updated_by;size:36" json:"updatedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
