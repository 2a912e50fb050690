package syncer

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/gormstore"
)

// setupMediaStore creates an in-memory SQLite backed media item store.
func setupMediaStore(t *testing.T) store.MediaItemStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.MediaCategory{},
		&models.MediaItem{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return gormstore.New(db).MediaItems()
}

func seedMedia(t *testing.T, s store.MediaItemStore, title, fileURL string) *models.MediaItem {
	t.Helper()

	m := &models.MediaItem{
		Title:    title,
		FileURL:  fileURL,
		FileType: models.FileTypeImage,
	}
	require.NoError(t, s.Create(context.Background(), m))

	return m
}

func TestRunCopiesAllRows(t *testing.T) {
	source := setupMediaStore(t)
	dest := setupMediaStore(t)
	ctx := context.Background()

	first := seedMedia(t, source, "Forest", "https://cdn.example.com/forest.jpg")
	seedMedia(t, source, "Dunes", "https://cdn.example.com/dunes.jpg")

	result, err := New(source, dest).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Attempted: 2, Failed: 0}, result)

	got, err := dest.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Forest", got.Title)

	count, err := dest.Count(ctx, store.MediaItemFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRunIsIdempotent(t *testing.T) {
	source := setupMediaStore(t)
	dest := setupMediaStore(t)
	ctx := context.Background()

	seedMedia(t, source, "Forest", "https://cdn.example.com/forest.jpg")

	engine := New(source, dest)

	_, err := engine.Run(ctx)
	require.NoError(t, err)

	result, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, Result{Attempted: 1, Failed: 0}, result)

	count, err := dest.Count(ctx, store.MediaItemFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRunEmptySource(t *testing.T) {
	source := setupMediaStore(t)
	dest := setupMediaStore(t)

	result, err := New(source, dest).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)
}

func TestRunOverwritesChangedRows(t *testing.T) {
	source := setupMediaStore(t)
	dest := setupMediaStore(t)
	ctx := context.Background()

	m := seedMedia(t, source, "Forest", "https://cdn.example.com/forest.jpg")

	_, err := New(source, dest).Run(ctx)
	require.NoError(t, err)

	m.Title = "Forest v2"
	require.NoError(t, source.Update(ctx, m))

	_, err = New(source, dest).Run(ctx)
	require.NoError(t, err)

	got, err := dest.Get(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Forest v2", got.Title)
}

// failingStore rejects every write.
type failingStore struct {
	store.MediaItemStore
}

func (f *failingStore) Upsert(_ context.Context, _ *models.MediaItem) error {
	return store.NewTransportError("media upsert", assert.AnError)
}

func TestRunFailsWhenNothingWritten(t *testing.T) {
	source := setupMediaStore(t)
	ctx := context.Background()

	seedMedia(t, source, "Forest", "https://cdn.example.com/forest.jpg")

	result, err := New(source, &failingStore{}).Run(ctx)
	require.Error(t, err)
	assert.Equal(t, Result{Attempted: 1, Failed: 1}, result)
}
