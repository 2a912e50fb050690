// Package storage issues short-lived upload grants for the object store.
//
// Clients never receive credentials: a grant carries a presigned PUT URL
// scoped to exactly one generated object path, so a caller can upload the
// declared file and nothing else.
package storage

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/GoMediaAdmin/GoMediaAdmin/internal/config"
)

// Upload kinds.
const (
	KindImage = "image"
	KindVideo = "video"
)

// Size caps checked before presigning.
const (
	MaxImageSize = 5 << 20   // 5 MiB
	MaxVideoSize = 100 << 20 // 100 MiB
)

// grantTTL bounds how long a presigned URL stays usable.
const grantTTL = 15 * time.Minute

var extPattern = regexp.MustCompile(`[^a-z0-9]`)

// Grant authorizes one upload to one object path.
type Grant struct {
	// Path is the object key the grant is scoped to.
	Path string `json:"path"`
	// Token is the presigned PUT URL.
	Token string `json:"token"`
	// ExpiresIn is the grant lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// PresignAPI is the subset of the S3 presign client the service uses.
type PresignAPI interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Service issues upload grants against a bucket.
type Service struct {
	presigner PresignAPI
	bucket    string
}

// NewService creates an upload grant service from the storage configuration.
func NewService(ctx context.Context, cfg *config.Storage) (*Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, errors.Wrap(err, "loading object storage credentials")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Service{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

// NewServiceWithPresigner creates a service over an existing presigner.
func NewServiceWithPresigner(presigner PresignAPI, bucket string) *Service {
	return &Service{presigner: presigner, bucket: bucket}
}

// IssueUploadGrant validates the declared upload and returns a grant for a
// freshly generated object path. Presign failures surface verbatim.
func (s *Service) IssueUploadGrant(ctx context.Context, kind, ext, contentType string, declaredSize int64) (*Grant, error) {
	maxSize, err := sizeCap(kind)
	if err != nil {
		return nil, err
	}

	if declaredSize <= 0 || declaredSize > maxSize {
		return nil, ErrSizeOutOfRange
	}

	path := fmt.Sprintf("%ss/%s.%s", kind, uuid.NewString(), sanitizeExt(kind, ext))

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(path),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(declaredSize),
	}, s3.WithPresignExpires(grantTTL))
	if err != nil {
		return nil, err
	}

	return &Grant{
		Path:      path,
		Token:     req.URL,
		ExpiresIn: int64(grantTTL.Seconds()),
	}, nil
}

func sizeCap(kind string) (int64, error) {
	switch kind {
	case KindImage:
		return MaxImageSize, nil
	case KindVideo:
		return MaxVideoSize, nil
	}

	return 0, ErrUnknownKind
}

// sanitizeExt reduces the requested extension to lowercase alphanumerics,
// falling back to the kind's default when nothing survives.
func sanitizeExt(kind, ext string) string {
	ext = extPattern.ReplaceAllString(strings.ToLower(ext), "")

	if ext == "" {
		if kind == KindVideo {
			return "mp4"
		}

		return "jpg"
	}

	return ext
}
