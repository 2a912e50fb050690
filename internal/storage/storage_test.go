package storage

import (
	"context"
	"strings"
	"testing"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresigner records the last request and answers with a fixed URL.
type fakePresigner struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakePresigner) PresignPutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastInput = params

	if f.err != nil {
		return nil, f.err
	}

	return &v4.PresignedHTTPRequest{
		URL:    "https://storage.example.com/upload?signature=abc",
		Method: "PUT",
	}, nil
}

func TestIssueUploadGrant(t *testing.T) {
	presigner := &fakePresigner{}
	svc := NewServiceWithPresigner(presigner, "media")

	grant, err := svc.IssueUploadGrant(context.Background(), KindImage, "JPG", "image/jpeg", 1024)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(grant.Path, "images/"))
	assert.True(t, strings.HasSuffix(grant.Path, ".jpg"))
	assert.Equal(t, "https://storage.example.com/upload?signature=abc", grant.Token)
	assert.Equal(t, int64(900), grant.ExpiresIn)

	require.NotNil(t, presigner.lastInput)
	assert.Equal(t, "media", *presigner.lastInput.Bucket)
	assert.Equal(t, grant.Path, *presigner.lastInput.Key)
	assert.Equal(t, "image/jpeg", *presigner.lastInput.ContentType)
	assert.Equal(t, int64(1024), *presigner.lastInput.ContentLength)
}

func TestIssueUploadGrantValidation(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		size    int64
		wantErr error
	}{
		{
			name:    "unknown kind",
			kind:    "document",
			size:    1024,
			wantErr: ErrUnknownKind,
		},
		{
			name:    "zero size",
			kind:    KindImage,
			size:    0,
			wantErr: ErrSizeOutOfRange,
		},
		{
			name:    "negative size",
			kind:    KindVideo,
			size:    -1,
			wantErr: ErrSizeOutOfRange,
		},
		{
			name:    "image over cap",
			kind:    KindImage,
			size:    MaxImageSize + 1,
			wantErr: ErrSizeOutOfRange,
		},
		{
			name:    "video over cap",
			kind:    KindVideo,
			size:    MaxVideoSize + 1,
			wantErr: ErrSizeOutOfRange,
		},
		{
			name: "image at cap",
			kind: KindImage,
			size: MaxImageSize,
		},
		{
			name: "video under cap is fine even over image cap",
			kind: KindVideo,
			size: MaxImageSize + 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presigner := &fakePresigner{}
			svc := NewServiceWithPresigner(presigner, "media")

			_, err := svc.IssueUploadGrant(context.Background(), tt.kind, "jpg", "application/octet-stream", tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, presigner.lastInput, "must not presign invalid requests")

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSanitizeExt(t *testing.T) {
	tests := []struct {
		kind string
		ext  string
		want string
	}{
		{KindImage, "jpg", "jpg"},
		{KindImage, "JPEG", "jpeg"},
		{KindImage, "../../etc/passwd", "etcpasswd"},
		{KindImage, "", "jpg"},
		{KindImage, "!!!", "jpg"},
		{KindVideo, "", "mp4"},
		{KindVideo, "WebM", "webm"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeExt(tt.kind, tt.ext), "kind=%s ext=%q", tt.kind, tt.ext)
	}
}

func TestIssueUploadGrantPresignFailure(t *testing.T) {
	presigner := &fakePresigner{err: assert.AnError}
	svc := NewServiceWithPresigner(presigner, "media")

	_, err := svc.IssueUploadGrant(context.Background(), KindVideo, "mp4", "video/mp4", 1024)
	assert.ErrorIs(t, err, assert.AnError)
}
