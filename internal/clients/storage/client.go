package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/zafesys/suite/pkg/config"
	"github.com/zafesys/suite/pkg/transport"
)

// R2 ignores the region but S3 signing needs one.
const region = "auto"

var ErrNotConfigured = errors.New("object storage is not configured")

// Client issues presigned upload URLs for an S3 compatible bucket.
type Client struct {
	mc        *minio.Client
	bucket    string
	publicURL string
}

func NewClient(cfg config.Storage) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint, secure, err := parseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    secure,
		Region:    region,
		Transport: transport.NewLoggingRoundTripper(nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		publicURL = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.Endpoint, "/"), cfg.Bucket)
	}

	return &Client{
		mc:        mc,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// PresignUpload returns a PUT URL for key valid for ttl and the URL the object will be served from.
func (c *Client) PresignUpload(ctx context.Context, key string, ttl time.Duration) (string, string, error) {
	u, err := c.mc.PresignedPutObject(ctx, c.bucket, key, ttl)
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return u.String(), c.PublicURL(key), nil
}

func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + key
}

func parseEndpoint(raw string) (string, bool, error) {
	if !strings.Contains(raw, "://") {
		return raw, true, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false, fmt.Errorf("invalid storage endpoint: %w", err)
	}

	return u.Host, u.Scheme == "https", nil
}
