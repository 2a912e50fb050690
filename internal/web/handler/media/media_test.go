package media

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	iauth "github.com/GoMediaAdmin/GoMediaAdmin/internal/auth"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/db/models"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/store/gormstore"
	authmw "github.com/GoMediaAdmin/GoMediaAdmin/internal/web/middleware/auth"
)

const testToken = "good-token"

type staticIntrospector struct{}

func (staticIntrospector) Introspect(_ context.Context, token string) (*iauth.Principal, error) {
	if token != testToken {
		return nil, iauth.ErrEmptySubject
	}

	return &iauth.Principal{ID: "sub-1", Email: "admin@example.com"}, nil
}

func setupApp(t *testing.T) (*fiber.App, store.DataStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.MediaCategory{},
		&models.MediaItem{},
	))

	ds := gormstore.New(db)
	app := fiber.New()

	protect := authmw.New(iauth.NewGateway(staticIntrospector{}, "session"))

	Handler.Init(app, &config.Config{Title: "test"}, ds, protect)

	return app, ds
}

func jsonRequest(t *testing.T, method, target string, body any, authed bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if authed {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testToken)
	}

	return req
}

func TestCreateRecordsPrincipal(t *testing.T) {
	app, ds := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, Path, fiber.Map{
		"title":    "Forest",
		"fileUrl":  "https://cdn.example.com/forest.jpg",
		"fileType": "IMAGE",
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.MediaItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))

	got, err := ds.MediaItems().Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CreatedBy)
	assert.Equal(t, "sub-1", *got.CreatedBy)
}

func TestCreateNormalizesVideoURL(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, Path, fiber.Map{
		"title":    "Surf",
		"fileUrl":  "https://cdn.example.com/surf.mp4?width=640&height=360",
		"fileType": "VIDEO",
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.MediaItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "https://cdn.example.com/surf.mp4", created.FileURL)
}

func TestCreateValidation(t *testing.T) {
	app, _ := setupApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{
			name: "missing title",
			body: fiber.Map{"fileUrl": "https://cdn.example.com/a.jpg", "fileType": "IMAGE"},
		},
		{
			name: "bad file type",
			body: fiber.Map{"title": "a", "fileUrl": "https://cdn.example.com/a.jpg", "fileType": "AUDIO"},
		},
		{
			name: "not a url",
			body: fiber.Map{"title": "a", "fileUrl": "not-a-url", "fileType": "IMAGE"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, Path, tt.body, true))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	app, ds := setupApp(t)
	ctx := context.Background()

	for i, title := range []string{"a", "b", "c"} {
		require.NoError(t, ds.MediaItems().Create(ctx, &models.MediaItem{
			Title:      title,
			FileURL:    "https://cdn.example.com/" + title + ".jpg",
			FileType:   models.FileTypeImage,
			IsFeatured: i == 0,
			SortOrder:  i,
		}))
	}

	resp, err := app.Test(jsonRequest(t, http.MethodGet, Path+"?isFeatured=true", nil, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var featured struct {
		Items []models.MediaItem `json:"items"`
		Total int64              `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&featured))
	assert.Len(t, featured.Items, 1)
	assert.Equal(t, int64(1), featured.Total)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, Path+"?page=2&perPage=2", nil, false))
	require.NoError(t, err)

	var page struct {
		Items []models.MediaItem `json:"items"`
		Total int64              `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(3), page.Total)
}

func TestWritesRequireAuthentication(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPost, Path, fiber.Map{
		"title":    "Forest",
		"fileUrl":  "https://cdn.example.com/forest.jpg",
		"fileType": "IMAGE",
	}, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestDeleteMissing(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodDelete, Path+"/missing", nil, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
