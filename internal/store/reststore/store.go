package reststore

import (
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

// Table names on the REST endpoint.
const (
	tableUsers       = "users"
	tableCategories  = "media_categories"
	tableMediaItems  = "media_items"
	tableSliders     = "sliders"
	tableSliderItems = "slider_items"
	tableSiteConfig  = "site_config"
)

// Store satisfies store.DataStore on top of the REST-table client.
type Store struct {
	c *Client
}

// New creates a REST-table data store.
func New(c *Client) *Store {
	return &Store{c: c}
}

// Users returns the user capability set.
func (s *Store) Users() store.UserStore { return &userStore{c: s.c} }

// Categories returns the media category capability set.
func (s *Store) Categories() store.CategoryStore { return &categoryStore{c: s.c} }

// MediaItems returns the media item capability set.
func (s *Store) MediaItems() store.MediaItemStore { return &mediaItemStore{c: s.c} }

// Sliders returns the slider capability set.
func (s *Store) Sliders() store.SliderStore { return &sliderStore{c: s.c} }

// SiteConfig returns the site config capability set.
func (s *Store) SiteConfig() store.SiteConfigStore { return &siteConfigStore{c: s.c} }
