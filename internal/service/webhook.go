package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/pkg/security"
)

const (
	VoiceWebhookPath = "/api/v1/webhooks/voice-agent/conversation"
	voiceLeadName    = "Cliente de Ana"
	voiceNotesPrefix = "\n[Ana] "
)

// HandleVoiceConversation turns a finished voice agent call into a lead.
// A conversation is processed once: replays return the lead created the first time.
// A caller whose phone already belongs to a lead updates that lead instead of creating another.
func (s *Service) HandleVoiceConversation(ctx context.Context, body []byte, signature string) (entity.Lead, error) {
	if s.cfg.VoiceAgent.WebhookSecret != "" && !security.VerifySignature(body, signature, s.cfg.VoiceAgent.WebhookSecret) {
		slog.WarnContext(ctx, "invalid voice agent webhook signature")
		return entity.Lead{}, entity.ErrInvalidSignature
	}

	var conv entity.VoiceConversation

	err := json.Unmarshal(body, &conv)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("%w: invalid payload: %w", entity.ErrInvalidArgument, err)
	}

	err = conv.Validate()
	if err != nil {
		return entity.Lead{}, err
	}

	existing, err := s.repo.LeadByConversationID(ctx, conv.ConversationID)
	if err == nil {
		slog.InfoContext(ctx, "conversation already processed", "conversation_id", conv.ConversationID, "lead_id", existing.ID)
		return existing, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.Lead{}, fmt.Errorf("get lead by conversation: %w", err)
	}

	s.fillTranscript(ctx, &conv)

	contact := conv.Analyze()
	transcript := conv.Transcript.String()

	slog.InfoContext(ctx, "conversation analyzed",
		"conversation_id", conv.ConversationID,
		"has_contact", contact.HasContact(),
		"interest_level", contact.InterestLevel,
		"product_interest", contact.ProductInterest,
	)

	if contact.HasContact() {
		lead, err := s.repo.LeadByPhone(ctx, contact.Phone)

		switch {
		case err == nil:
			return s.mergeConversation(ctx, lead, conv.ConversationID, transcript, contact)
		case !errors.Is(err, entity.ErrNotFound):
			return entity.Lead{}, fmt.Errorf("get lead by phone: %w", err)
		}
	}

	c := entity.LeadCreate{
		Name:                   firstNonEmpty(contact.Name, voiceLeadName),
		Phone:                  contact.Phone,
		Email:                  optional(contact.Email),
		Address:                optional(contact.Address),
		Status:                 entity.LeadStatusFor(contact.InterestLevel, contact.HasContact()),
		Source:                 entity.LeadSourceAnaVoice,
		Notes:                  optional(contact.Notes),
		ProductInterest:        optional(contact.ProductInterest),
		VoiceConversationID:    &conv.ConversationID,
		ConversationTranscript: optional(transcript),
	}

	err = c.Validate()
	if err != nil {
		return entity.Lead{}, err
	}

	lead, err := s.repo.CreateLead(ctx, c)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("create lead from conversation %s: %w", conv.ConversationID, err)
	}

	slog.InfoContext(ctx, "lead created from conversation", "conversation_id", conv.ConversationID, "lead_id", lead.ID)
	s.events.Publish(ctx, entity.EventLeadCreated, leadKey(lead.ID), lead.Summary())

	return lead, nil
}

func (s *Service) mergeConversation(
	ctx context.Context,
	lead entity.Lead,
	conversationID, transcript string,
	contact entity.ExtractedContact,
) (entity.Lead, error) {
	from := lead.Status

	lead.VoiceConversationID = &conversationID
	lead.ConversationTranscript = optional(transcript)

	if contact.ProductInterest != "" {
		lead.ProductInterest = &contact.ProductInterest
	}

	if contact.Notes != "" {
		notes := ""
		if lead.Notes != nil {
			notes = *lead.Notes
		}

		notes += voiceNotesPrefix + contact.Notes
		lead.Notes = &notes
	}

	if contact.InterestLevel == entity.InterestHigh && lead.Status == entity.LeadStatusNew {
		lead.Status = entity.LeadStatusPotential
	}

	lead, err := s.repo.UpdateLead(ctx, lead)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("update lead %d with conversation: %w", lead.ID, err)
	}

	slog.InfoContext(ctx, "lead updated from conversation", "conversation_id", conversationID, "lead_id", lead.ID)

	if lead.Status != from {
		s.publishLeadStatus(ctx, lead.ID, from, lead.Status)
	}

	return lead, nil
}

// fillTranscript loads the transcript from the voice agent API when the webhook did not carry one.
func (s *Service) fillTranscript(ctx context.Context, conv *entity.VoiceConversation) {
	if s.voice == nil || !conv.Transcript.IsEmpty() {
		return
	}

	fetched, err := s.voice.Conversation(ctx, conv.ConversationID)
	if err != nil {
		slog.WarnContext(ctx, "fetch conversation transcript", "conversation_id", conv.ConversationID, "error", err)
		return
	}

	conv.Transcript = fetched.Transcript

	if len(conv.CollectedData) == 0 && len(conv.DataCollection) == 0 {
		conv.DataCollection = fetched.DataCollection
	}

	if conv.Notes == nil {
		conv.Notes = fetched.Notes
	}
}

func (s *Service) VoiceWebhookStatus() entity.WebhookStatus {
	return entity.WebhookStatus{
		WebhookURL:       VoiceWebhookPath,
		SecretConfigured: s.cfg.VoiceAgent.WebhookSecret != "",
		APIConfigured:    s.cfg.VoiceAgent.APIKey != "",
		Status:           "ready",
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}

	return &v
}

func firstNonEmpty(v ...string) string {
	for _, s := range v {
		if s != "" {
			return s
		}
	}

	return ""
}
