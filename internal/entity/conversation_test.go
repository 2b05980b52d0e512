package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestExtractPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "mi número es 300 123 4567", want: "+573001234567"},
		{text: "llámame al +57 3109876543 por favor", want: "+573109876543"},
		{text: "es el 573151112233", want: "+573151112233"},
		{text: "fijo 601-555-1234", want: "6015551234"},
		{text: "no tengo teléfono", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.ExtractPhone(tt.text))
		})
	}
}

func TestExtractName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Juan Pérez", entity.ExtractName("Cliente: Sí, me interesa. Mi nombre es Juan Pérez."))
	require.Equal(t, "Laura", entity.ExtractName("Hola, me llamo laura"))
	require.Empty(t, entity.ExtractName("Hola, buenas tardes"))
}

func TestScoreInterest(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.InterestLow, entity.ScoreInterest("hola, solo estoy mirando"))
	require.Equal(t, entity.InterestMedium, entity.ScoreInterest("¿Cuál es el precio?"))
	require.Equal(t, entity.InterestHigh, entity.ScoreInterest("me interesa, quiero cotizar y agendar"))
}

func TestLeadStatusFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.LeadStatusPotential, entity.LeadStatusFor(entity.InterestHigh, true))
	require.Equal(t, entity.LeadStatusNew, entity.LeadStatusFor(entity.InterestHigh, false))
	require.Equal(t, entity.LeadStatusInConversation, entity.LeadStatusFor(entity.InterestMedium, false))
	require.Equal(t, entity.LeadStatusInConversation, entity.LeadStatusFor(entity.InterestLow, true))
	require.Equal(t, entity.LeadStatusNew, entity.LeadStatusFor(entity.InterestLow, false))
}

func TestVoiceConversation_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("transcript heuristics", func(t *testing.T) {
		t.Parallel()

		var c entity.VoiceConversation

		require.NoError(t, json.Unmarshal([]byte(`{
			"conversation_id": "conv_abcdef123",
			"transcript": [
				{"role": "agent", "message": "Hola, le habla Ana de ZAFESYS"},
				{"role": "user", "message": "Hola, me llamo Carlos Ruiz, me interesa la cerradura de huella, cuánto cuesta? quiero cotizar"},
				{"role": "user", "message": "mi celular es 3001234567"}
			]
		}`), &c))

		e := c.Analyze()
		require.Equal(t, "Carlos Ruiz", e.Name)
		require.Equal(t, "+573001234567", e.Phone)
		require.Equal(t, "OS566F", e.ProductInterest)
		require.Equal(t, entity.InterestHigh, e.InterestLevel)
		require.True(t, e.HasContact())
		require.Contains(t, c.Transcript.String(), "Ana: Hola, le habla Ana de ZAFESYS")
		require.Contains(t, c.Transcript.String(), "Cliente: mi celular es 3001234567")
	})

	t.Run("explicit analysis wins", func(t *testing.T) {
		t.Parallel()

		var c entity.VoiceConversation

		require.NoError(t, json.Unmarshal([]byte(`{
			"conversation_id": "conv_2",
			"transcript": "me llamo Pedro, mi número 3009998877",
			"analysis": {"customer_name": "María", "customer_phone": "+573112223344"},
			"collected_data": {"product": "OS600"}
		}`), &c))

		e := c.Analyze()
		require.Equal(t, "María", e.Name)
		require.Equal(t, "+573112223344", e.Phone)
		require.Equal(t, "OS600", e.ProductInterest)
		require.Equal(t, entity.InterestMedium, e.InterestLevel)
	})

	t.Run("nothing identifiable", func(t *testing.T) {
		t.Parallel()

		c := entity.VoiceConversation{ConversationID: "conv_0123456789"}

		e := c.Analyze()
		require.Equal(t, entity.UnidentifiedCustomer, e.Name)
		require.Equal(t, "pendiente-conv_012", e.Phone)
		require.False(t, e.HasContact())
		require.Equal(t, entity.InterestLow, e.InterestLevel)
	})
}

func TestTranscript_UnmarshalNested(t *testing.T) {
	t.Parallel()

	var tr entity.Transcript

	require.NoError(t, json.Unmarshal([]byte(`{"messages":[{"role":"agent","text":"Buenos días"}]}`), &tr))
	require.Equal(t, "Ana: Buenos días", tr.String())
}
