// Package syncer copies media item rows between the two storage backends.
//
// Synchronization is a bulk upsert keyed on the writer-assigned row ids, so
// running it twice is harmless: the second pass rewrites the same rows. Rows
// that fail individually are logged and skipped; the run only fails as a
// whole when the source cannot be read or no row makes it across.
package syncer

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
)

// Result summarizes one synchronization run.
type Result struct {
	// Attempted is the number of source rows read.
	Attempted int
	// Failed is the number of rows that could not be written.
	Failed int
}

// Engine copies media items from a source store into a destination store.
type Engine struct {
	source store.MediaItemStore
	dest   store.MediaItemStore
}

// New creates a sync engine for the given direction.
func New(source, dest store.MediaItemStore) *Engine {
	return &Engine{source: source, dest: dest}
}

// Run reads every media item from the source and upserts it into the
// destination. Per-row failures are logged and skipped.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	items, err := e.source.List(ctx, store.MediaItemFilter{})
	if err != nil {
		return Result{}, errors.Wrap(err, "reading source media items")
	}

	result := Result{Attempted: len(items)}

	for i := range items {
		item := items[i]

		if err := e.dest.Upsert(ctx, &item); err != nil {
			result.Failed++

			log.Warn().Err(err).
				Str("id", item.ID).
				Str("title", item.Title).
				Msg("skipping media item")

			continue
		}
	}

	if result.Attempted > 0 && result.Failed == result.Attempted {
		return result, errors.New("no media item could be written")
	}

	log.Info().
		Int("attempted", result.Attempted).
		Int("failed", result.Failed).
		Msg("media synchronization finished")

	return result, nil
}
