// Package gormstore implements the data access contract against the
// relational database resolved at startup.
package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

// Store satisfies store.DataStore on top of a gorm connection.
type Store struct {
	db *gorm.DB
}

// New creates a relational data store.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Users returns the user capability set.
func (s *Store) Users() store.UserStore { return &userStore{db: s.db} }

// Categories returns the media category capability set.
func (s *Store) Categories() store.CategoryStore { return &categoryStore{db: s.db} }

// MediaItems returns the media item capability set.
func (s *Store) MediaItems() store.MediaItemStore { return &mediaItemStore{db: s.db} }

// Sliders returns the slider capability set.
func (s *Store) Sliders() store.SliderStore { return &sliderStore{db: s.db} }

// SiteConfig returns the site config capability set.
func (s *Store) SiteConfig() store.SiteConfigStore { return &siteConfigStore{db: s.db} }

// wrapErr maps gorm errors onto the store taxonomy. Everything that is not
// a missing record counts as a backend failure.
func wrapErr(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}

	return store.NewTransportError(op, err)
}
