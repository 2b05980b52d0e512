package storage_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/clients/storage"
	"github.com/zafesys/suite/pkg/config"
)

func TestClient_PresignUpload(t *testing.T) {
	t.Parallel()

	c, err := storage.NewClient(config.Storage{
		Endpoint:        "https://account.r2.cloudflarestorage.com",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Bucket:          "zafesys-installations",
		PublicURL:       "https://media.zafesys.co/",
	})
	require.NoError(t, err)

	key := "2024/03/05/installation-7-laura/foto_antes-a1b2c3d4.jpg"

	uploadURL, publicURL, err := c.PresignUpload(context.Background(), key, time.Hour)
	require.NoError(t, err)
	require.Equal(t, "https://media.zafesys.co/"+key, publicURL)

	u, err := url.Parse(uploadURL)
	require.NoError(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Contains(t, u.Path, key)
	require.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func TestNewClient_NotConfigured(t *testing.T) {
	t.Parallel()

	_, err := storage.NewClient(config.Storage{Bucket: "zafesys-installations"})
	require.ErrorIs(t, err, storage.ErrNotConfigured)
}
