package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iauth "github.com/GoMediaAdmin/GoMediaAdmin/internal/auth"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
	"github.com/GoMediaAdmin/GoMediaAdmin/internal/storage"
	authmw "github.com/GoMediaAdmin/GoMediaAdmin/internal/web/middleware/auth"
)

const testToken = "good-token"

type staticIntrospector struct{}

func (staticIntrospector) Introspect(_ context.Context, token string) (*iauth.Principal, error) {
	if token != testToken {
		return nil, iauth.ErrEmptySubject
	}

	return &iauth.Principal{ID: "sub-1"}, nil
}

type fakePresigner struct{}

func (fakePresigner) PresignPutObject(_ context.Context, _ *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return &v4.PresignedHTTPRequest{
		URL:    "https://storage.example.com/upload?signature=abc",
		Method: "PUT",
	}, nil
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()

	protect := authmw.New(iauth.NewGateway(staticIntrospector{}, "session"))
	uploads := storage.NewServiceWithPresigner(fakePresigner{}, "media")

	Handler.Init(app, &config.Config{Title: "test"}, uploads, protect)

	return app
}

func grantRequest(t *testing.T, body any, authed bool) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, Path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if authed {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testToken)
	}

	return req
}

func TestIssueGrant(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(grantRequest(t, fiber.Map{
		"kind":        "image",
		"ext":         "png",
		"contentType": "image/png",
		"size":        1024,
	}, true))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var grant storage.Grant
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&grant))

	assert.True(t, strings.HasPrefix(grant.Path, "images/"))
	assert.True(t, strings.HasSuffix(grant.Path, ".png"))
	assert.NotEmpty(t, grant.Token)
	assert.Positive(t, grant.ExpiresIn)
}

func TestIssueGrantRequiresAuthentication(t *testing.T) {
	app := setupApp(t)

	resp, err := app.Test(grantRequest(t, fiber.Map{
		"kind":        "image",
		"contentType": "image/png",
		"size":        1024,
	}, false))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestIssueGrantValidation(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{
			name: "unknown kind",
			body: fiber.Map{"kind": "document", "contentType": "application/pdf", "size": 1024},
		},
		{
			name: "missing content type",
			body: fiber.Map{"kind": "image", "size": 1024},
		},
		{
			name: "zero size",
			body: fiber.Map{"kind": "image", "contentType": "image/png", "size": 0},
		},
		{
			name: "image over cap",
			body: fiber.Map{"kind": "image", "contentType": "image/png", "size": storage.MaxImageSize + 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(grantRequest(t, tt.body, true))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
