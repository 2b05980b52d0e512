package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestMediaKey(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 5, 7, 22, 30, 0, 0, time.UTC)

	require.Equal(t,
		"2024/05/07/installation-42-josé-pérez/foto_antes-abc.jpg",
		entity.MediaKey(day, 42, "José Pérez!", entity.MediaPhotoBefore, "abc"),
	)
	require.Equal(t,
		"2024/05/07/installation-42-ana/firma-abc.png",
		entity.MediaKey(day, 42, "Ana", entity.MediaSignature, "abc"),
	)
}

func TestSafeName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "maría-gómez", entity.SafeName("María Gómez."))
	require.Equal(t, "", entity.SafeName("!!!"))
	require.Len(t, []rune(entity.SafeName("Constructora Inmobiliaria del Valle de Aburrá")), 30)
}

func TestMediaType_Extension(t *testing.T) {
	t.Parallel()

	ext, ct := entity.MediaVideo.Extension()
	require.Equal(t, "mp4", ext)
	require.Equal(t, "video/mp4", ct)

	require.True(t, entity.MediaPhotoAfter.IsValid())
	require.False(t, entity.MediaType("audio").IsValid())
}
