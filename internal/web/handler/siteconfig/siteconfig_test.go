package siteconfig

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

	require.NoError(t, db.AutoMigrate(&models.SiteConfig{}))

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

func TestUpsertAndGetEntry(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, Path+"/site_title", fiber.Map{
		"value": "Media Admin",
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var written models.SiteConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&written))
	require.NotNil(t, written.UpdatedBy)
	assert.Equal(t, "sub-1", *written.UpdatedBy)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, Path+"/site_title", nil, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.SiteConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Media Admin", got.Value)
}

func TestBulkUpsertWritesAllEntries(t *testing.T) {
	app, ds := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodPut, Path, []fiber.Map{
		{"key": "site_title", "value": "Media Admin"},
		{"key": "contact_email", "value": "admin@example.com"},
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var written []models.SiteConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&written))
	require.Len(t, written, 2)

	for _, entry := range written {
		require.NotNil(t, entry.UpdatedBy)
		assert.Equal(t, "sub-1", *entry.UpdatedBy)
	}

	title, err := ds.SiteConfig().Get(context.Background(), "site_title")
	require.NoError(t, err)
	require.NotNil(t, title)
	assert.Equal(t, "Media Admin", title.Value)

	email, err := ds.SiteConfig().Get(context.Background(), "contact_email")
	require.NoError(t, err)
	require.NotNil(t, email)
	assert.Equal(t, "admin@example.com", email.Value)
}

func TestBulkUpsertUpdatesExistingKeys(t *testing.T) {
	app, ds := setupApp(t)
	ctx := context.Background()

	existing := models.SiteConfig{Key: "site_title", Value: "Old Title"}
	require.NoError(t, ds.SiteConfig().Upsert(ctx, &existing))

	resp, err := app.Test(jsonRequest(t, http.MethodPut, Path, []fiber.Map{
		{"key": "site_title", "value": "New Title"},
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := ds.SiteConfig().Get(ctx, "site_title")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Title", got.Value)
	assert.Equal(t, existing.ID, got.ID)
}

func TestBulkUpsertValidation(t *testing.T) {
	app, _ := setupApp(t)

	tests := []struct {
		name string
		body any
	}{
		{"empty list", []fiber.Map{}},
		{"missing key", []fiber.Map{{"value": "orphan"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(t, http.MethodPut, Path, tt.body, true))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestWritesRequireAuthentication(t *testing.T) {
	app, _ := setupApp(t)

	tests := []struct {
		method string
		target string
		body   any
	}{
		{http.MethodPut, Path + "/site_title", fiber.Map{"value": "Media Admin"}},
		{http.MethodPut, Path, []fiber.Map{{"key": "site_title", "value": "Media Admin"}}},
	}

	for _, tt := range tests {
		resp, err := app.Test(jsonRequest(t, tt.method, tt.target, tt.body, false))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", tt.method, tt.target)
	}
}

func TestGetMissingEntry(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, Path+"/missing", nil, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListIsPublic(t *testing.T) {
	app, ds := setupApp(t)

	require.NoError(t, ds.SiteConfig().Upsert(context.Background(), &models.SiteConfig{
		Key: "site_title", Value: "Media Admin",
	}))

	resp, err := app.Test(jsonRequest(t, http.MethodGet, Path, nil, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entries []models.SiteConfig
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&entries))
	assert.Len(t, entries, 1)
}
