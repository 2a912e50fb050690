package models

import (
	"net/url"
	"strings"
	"time"
)

// FileType indicates whether a media item is an image or a video.
type FileType string

const (
	// FileTypeImage marks image media.
	FileTypeImage FileType = "IMAGE"
	// FileTypeVideo marks video media.
	FileTypeVideo FileType = "VIDEO"
)

// transformParams are image-transform query parameters that must never
// appear on a video file URL.
var transformParams = []string{"width", "height", "resize"}

// MediaItem is a single gallery entry. Items are created through the admin
// console or by the sync engine; ids are assigned by the writer so the same
// logical row can be created from either backend without collisions.
type MediaItem struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Title is the display title.
	Title string `gorm:"size:255;not null" json:"title"`
	// FileURL points at the object in storage. For VIDEO items it must not
	// carry image-transform query parameters; see NormalizeFileURL.
	FileURL string `gorm:"column:file_url;size:2048;not null" json:"fileUrl"`
	// FileType is IMAGE or VIDEO.
	FileType FileType `gorm:"column:file_type;type:varchar(16);not null" json:"fileType"`
	// IsFeatured marks items highlighted on the public site.
	IsFeatured bool `gorm:"column:is_featured;not null;default:false" json:"isFeatured"`
	// SortOrder defines the display position within listings.
	SortOrder int `gorm:"column:sort_order;not null;default:0" json:"sortOrder"`
	// CategoryID optionally references a MediaCategory.
	CategoryID *string `gorm:"column:category_id;size:36" json:"categoryId"`
	// CreatedBy optionally references the User that created the item.
	CreatedBy *string `gorm:"column:created_by;size:36" json:"createdBy"`

	// Category is the eagerly loaded category row, when requested.
	Category *MediaCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NormalizeFileURL strips image-transform query parameters from video URLs.
// It is applied on every read and write path in both store implementations,
// so a video URL stored with transform parameters never leaves the system
// with them.
func (m *MediaItem) NormalizeFileURL() {
	if m.FileType != FileTypeVideo || m.FileURL == "" {
		return
	}

	u, err := url.Parse(m.FileURL)
	if err != nil {
		return // leave unparseable URLs untouched
	}

	q := u.Query()
	changed := false

	for _, p := range transformParams {
		if q.Has(p) {
			q.Del(p)
			changed = true
		}
	}

	if !changed {
		return
	}

	u.RawQuery = q.Encode()
	m.FileURL = strings.TrimSuffix(u.String(), "?")
}
