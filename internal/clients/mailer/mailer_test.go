package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/clients/mailer"
	"github.com/zafesys/suite/pkg/config"
)

func TestClient_Message(t *testing.T) {
	t.Parallel()

	c := mailer.New(config.Mailer{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "no-reply@zafesys.co",
		FromName: "ZAFESYS Suite",
		AlertsTo: []string{"ops@zafesys.co"},
	})
	require.True(t, c.Enabled())

	msg := c.Message("Stock bajo", "OS566F: 1 unidad", []string{"ops@zafesys.co", "gerencia@zafesys.co"})
	require.Equal(t, []string{"Stock bajo"}, msg.GetHeader("Subject"))
	require.Equal(t, []string{"ops@zafesys.co", "gerencia@zafesys.co"}, msg.GetHeader("To"))
	require.Len(t, msg.GetHeader("From"), 1)
	require.Contains(t, msg.GetHeader("From")[0], "no-reply@zafesys.co")
}

func TestClient_SendAlert_Disabled(t *testing.T) {
	t.Parallel()

	c := mailer.New(config.Mailer{Port: 587})
	require.False(t, c.Enabled())
	require.NoError(t, c.SendAlert("Stock bajo", "sin destinatarios"))
}
