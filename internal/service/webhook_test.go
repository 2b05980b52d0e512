package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/security"
)

const conversationPayload = `{
	"conversation_id": "conv_abcdef123",
	"transcript": [
		{"role": "agent", "message": "Hola, le habla Ana de ZAFESYS"},
		{"role": "user", "message": "me llamo Carlos Ruiz, me interesa la cerradura de huella, cuánto cuesta? quiero cotizar"},
		{"role": "user", "message": "mi celular es 3001234567"}
	]
}`

func TestService_HandleVoiceConversation(t *testing.T) {
	t.Parallel()

	body := []byte(conversationPayload)

	signed := testConfig()
	signed.VoiceAgent.WebhookSecret = "whsec"

	t.Run("invalid signature", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, signed)

		_, err := s.HandleVoiceConversation(context.Background(), body, "deadbeef")
		require.ErrorIs(t, err, entity.ErrInvalidSignature)
	})

	t.Run("creates a lead from a signed call", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, signed)

		d.repo.EXPECT().LeadByConversationID(gomock.Any(), "conv_abcdef123").Return(entity.Lead{}, entity.ErrNotFound)
		d.repo.EXPECT().LeadByPhone(gomock.Any(), "+573001234567").Return(entity.Lead{}, entity.ErrNotFound)
		d.repo.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.LeadCreate) (entity.Lead, error) {
				require.Equal(t, "Carlos Ruiz", c.Name)
				require.Equal(t, entity.LeadSourceAnaVoice, c.Source)
				require.Equal(t, entity.LeadStatusPotential, c.Status)
				require.Equal(t, "OS566F", *c.ProductInterest)
				require.Equal(t, "conv_abcdef123", *c.VoiceConversationID)
				require.Contains(t, *c.ConversationTranscript, "Cliente: mi celular es 3001234567")

				return entity.Lead{ID: 40, Name: c.Name, Phone: c.Phone, Status: c.Status, Source: c.Source}, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadCreated, "lead-40", gomock.Any())

		lead, err := s.HandleVoiceConversation(context.Background(), body, "sha256="+security.Sign(body, "whsec"))
		require.NoError(t, err)
		require.Equal(t, int64(40), lead.ID)
		require.Equal(t, "+573001234567", lead.Phone)
	})

	t.Run("replayed conversation", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().LeadByConversationID(gomock.Any(), "conv_abcdef123").Return(entity.Lead{ID: 40}, nil)

		lead, err := s.HandleVoiceConversation(context.Background(), body, "")
		require.NoError(t, err)
		require.Equal(t, int64(40), lead.ID)
	})

	t.Run("known phone updates the lead", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().LeadByConversationID(gomock.Any(), "conv_abcdef123").Return(entity.Lead{}, entity.ErrNotFound)
		d.repo.EXPECT().LeadByPhone(gomock.Any(), "+573001234567").
			Return(entity.Lead{ID: 12, Phone: "+573001234567", Status: entity.LeadStatusNew}, nil)
		d.repo.EXPECT().UpdateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l entity.Lead) (entity.Lead, error) {
				require.Equal(t, "conv_abcdef123", *l.VoiceConversationID)
				return l, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadStatusChanged, "lead-12", entity.LeadStatusChanged{
			LeadID: 12,
			From:   entity.LeadStatusNew,
			To:     entity.LeadStatusPotential,
		})

		lead, err := s.HandleVoiceConversation(context.Background(), body, "")
		require.NoError(t, err)
		require.Equal(t, entity.LeadStatusPotential, lead.Status)
	})

	t.Run("fetches a missing transcript", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().LeadByConversationID(gomock.Any(), "conv_empty").Return(entity.Lead{}, entity.ErrNotFound)
		d.voice.EXPECT().Conversation(gomock.Any(), "conv_empty").Return(entity.VoiceConversation{}, errors.New("timeout"))
		d.repo.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.LeadCreate) (entity.Lead, error) {
				require.Equal(t, entity.UnidentifiedCustomer, c.Name)
				require.Equal(t, "pendiente-conv_emp", c.Phone)
				require.Equal(t, entity.LeadStatusNew, c.Status)
				return entity.Lead{ID: 41}, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadCreated, "lead-41", gomock.Any())

		_, err := s.HandleVoiceConversation(context.Background(), []byte(`{"conversation_id":"conv_empty"}`), "")
		require.NoError(t, err)
	})

	t.Run("missing conversation id", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.HandleVoiceConversation(context.Background(), []byte(`{"transcript":"hola"}`), "")
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}
