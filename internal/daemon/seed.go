package daemon

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/gormstore"
)

// defaultSiteConfig holds the keys every installation starts with. Existing
// values are never overwritten.
var defaultSiteConfig = map[string]string{
	"site_title":       "Media Admin",
	"site_description": "",
	"contact_email":    "",
	"maintenance_mode": "false",
}

func seed(db *gorm.DB) {
	ctx := context.Background()
	entries := gormstore.New(db).SiteConfig()

	for key, value := range defaultSiteConfig {
		existing, err := entries.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("skipping site config seed")
			continue
		}

		if existing != nil {
			continue
		}

		entry := models.SiteConfig{Key: key, Value: value}
		if err := entries.Upsert(ctx, &entry); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to seed site config")
		}
	}
}
