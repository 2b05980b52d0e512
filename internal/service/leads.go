package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/zafesys/suite/internal/entity"
)

func (s *Service) Leads(ctx context.Context, f entity.LeadFilter) ([]entity.Lead, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, entity.ErrInvalidStatus
	}

	f.Page = f.Page.Normalize()

	leads, err := s.repo.Leads(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("get leads: %w", err)
	}

	return leads, nil
}

// LeadKanban groups every lead by status, newest first inside a column.
func (s *Service) LeadKanban(ctx context.Context) (entity.KanbanBoard, error) {
	leads, err := s.repo.KanbanLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("get leads: %w", err)
	}

	return entity.NewKanbanBoard(leads), nil
}

func (s *Service) LeadStats(ctx context.Context) (entity.LeadStats, error) {
	stats, err := s.repo.LeadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("get lead stats: %w", err)
	}

	return stats, nil
}

func (s *Service) Lead(ctx context.Context, id int64) (entity.Lead, error) {
	lead, err := s.repo.Lead(ctx, id)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("get lead %d: %w", id, err)
	}

	return lead, nil
}

func (s *Service) CreateLead(ctx context.Context, c entity.LeadCreate) (entity.Lead, error) {
	err := c.Validate()
	if err != nil {
		return entity.Lead{}, err
	}

	err = s.ensurePhoneFree(ctx, c.Phone, 0)
	if err != nil {
		return entity.Lead{}, err
	}

	lead, err := s.repo.CreateLead(ctx, c)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("create lead: %w", err)
	}

	slog.InfoContext(ctx, "lead created", "lead_id", lead.ID, "source", lead.Source)
	s.events.Publish(ctx, entity.EventLeadCreated, leadKey(lead.ID), lead.Summary())

	return lead, nil
}

func (s *Service) UpdateLead(ctx context.Context, id int64, u entity.LeadUpdate) (entity.Lead, error) {
	err := u.Validate()
	if err != nil {
		return entity.Lead{}, err
	}

	lead, err := s.repo.Lead(ctx, id)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("get lead %d: %w", id, err)
	}

	if u.Phone != nil && *u.Phone != lead.Phone {
		err = s.ensurePhoneFree(ctx, *u.Phone, id)
		if err != nil {
			return entity.Lead{}, err
		}
	}

	from := lead.Status

	u.Apply(&lead)
	s.stampContacted(&lead)

	lead, err = s.repo.UpdateLead(ctx, lead)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("update lead %d: %w", id, err)
	}

	if lead.Status != from {
		s.publishLeadStatus(ctx, lead.ID, from, lead.Status)
	}

	return lead, nil
}

// UpdateLeadStatus moves the lead to status. contacted_at is set the first
// time the lead reaches en_conversacion.
func (s *Service) UpdateLeadStatus(ctx context.Context, id int64, status entity.LeadStatus) (entity.Lead, error) {
	if !status.IsValid() {
		return entity.Lead{}, entity.ErrInvalidStatus
	}

	lead, err := s.repo.Lead(ctx, id)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("get lead %d: %w", id, err)
	}

	return s.setLeadStatus(ctx, lead, status)
}

func (s *Service) setLeadStatus(ctx context.Context, lead entity.Lead, status entity.LeadStatus) (entity.Lead, error) {
	from := lead.Status
	lead.Status = status
	s.stampContacted(&lead)

	updated, err := s.repo.UpdateLeadStatus(ctx, lead.ID, status, lead.ContactedAt)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("update lead %d status: %w", lead.ID, err)
	}

	if from != status {
		s.publishLeadStatus(ctx, lead.ID, from, status)
	}

	return updated, nil
}

// MoveLead moves a kanban card with a single status update. On failure the
// authoritative board is fetched again and returned with the error, so the
// caller can drop any optimistic state.
func (s *Service) MoveLead(ctx context.Context, id int64, to entity.LeadStatus) (entity.KanbanBoard, error) {
	if !to.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidStatus, to)
	}

	lead, err := s.repo.Lead(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead %d: %w", id, err)
	}

	board, err := s.LeadKanban(ctx)
	if err != nil {
		return nil, err
	}

	if lead.Status == to {
		return board, nil
	}

	optimistic := board.Clone()

	_, err = optimistic.Move(id, to)
	if err != nil {
		// Deleted between the two reads; the update below reports it.
		optimistic = nil
	}

	_, err = s.setLeadStatus(ctx, lead, to)
	if err != nil {
		fresh, refetchErr := s.LeadKanban(ctx)
		if refetchErr != nil {
			slog.ErrorContext(ctx, "refetch kanban after failed move", "lead_id", id, "error", refetchErr)
			fresh = board
		}

		return fresh, err
	}

	if optimistic == nil {
		return s.LeadKanban(ctx)
	}

	return optimistic, nil
}

func (s *Service) DeleteLead(ctx context.Context, id int64) error {
	err := s.repo.DeleteLead(ctx, id)
	if err != nil {
		return fmt.Errorf("delete lead %d: %w", id, err)
	}

	slog.InfoContext(ctx, "lead deleted", "lead_id", id)

	return nil
}

func (s *Service) ensurePhoneFree(ctx context.Context, phone string, selfID int64) error {
	existing, err := s.repo.LeadByPhone(ctx, phone)

	switch {
	case errors.Is(err, entity.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get lead by phone: %w", err)
	case existing.ID != selfID:
		return fmt.Errorf("lead with phone %s: %w", phone, entity.ErrAlreadyExists)
	}

	return nil
}

func (s *Service) stampContacted(l *entity.Lead) {
	if l.Status == entity.LeadStatusInConversation && l.ContactedAt == nil {
		now := s.now().UTC()
		l.ContactedAt = &now
	}
}

func (s *Service) publishLeadStatus(ctx context.Context, id int64, from, to entity.LeadStatus) {
	slog.InfoContext(ctx, "lead status changed", "lead_id", id, "from", from, "to", to)
	s.events.Publish(ctx, entity.EventLeadStatusChanged, leadKey(id), entity.LeadStatusChanged{
		LeadID: id,
		From:   from,
		To:     to,
	})
}

func leadKey(id int64) string {
	return "lead-" + strconv.FormatInt(id, 10)
}
