package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_MoveLead(t *testing.T) {
	t.Parallel()

	leads := []entity.Lead{
		{ID: 1, Name: "Ana María", Phone: "+573001112233", Status: entity.LeadStatusNew},
		{ID: 2, Name: "Pedro", Phone: "+573004445566", Status: entity.LeadStatusNew},
	}

	t.Run("moves the card", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(leads[0], nil)
		d.repo.EXPECT().KanbanLeads(gomock.Any()).Return(leads, nil)
		d.repo.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1), entity.LeadStatusInConversation, gomock.Not(gomock.Nil())).
			Return(entity.Lead{ID: 1, Status: entity.LeadStatusInConversation}, nil)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadStatusChanged, "lead-1", entity.LeadStatusChanged{
			LeadID: 1,
			From:   entity.LeadStatusNew,
			To:     entity.LeadStatusInConversation,
		})

		board, err := s.MoveLead(context.Background(), 1, entity.LeadStatusInConversation)
		require.NoError(t, err)
		require.Len(t, board[entity.LeadStatusNew], 1)
		require.Len(t, board[entity.LeadStatusInConversation], 1)
		require.Equal(t, int64(1), board[entity.LeadStatusInConversation][0].ID)
		require.Equal(t, entity.LeadStatusInConversation, board[entity.LeadStatusInConversation][0].Status)
	})

	t.Run("large board keeps every card", func(t *testing.T) {
		t.Parallel()

		many := make([]entity.Lead, 1500)
		for i := range many {
			many[i] = entity.Lead{ID: int64(i + 1), Status: entity.LeadStatusNew}
		}

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Lead(gomock.Any(), int64(1200)).Return(many[1199], nil)
		d.repo.EXPECT().KanbanLeads(gomock.Any()).Return(many, nil)
		d.repo.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1200), entity.LeadStatusWon, gomock.Nil()).
			Return(entity.Lead{ID: 1200, Status: entity.LeadStatusWon}, nil)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadStatusChanged, "lead-1200", gomock.Any())

		board, err := s.MoveLead(context.Background(), 1200, entity.LeadStatusWon)
		require.NoError(t, err)
		require.Equal(t, 1500, board.Count())
		require.Len(t, board[entity.LeadStatusNew], 1499)
		require.Equal(t, int64(1200), board[entity.LeadStatusWon][0].ID)
	})

	t.Run("failed update returns the stored board", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(leads[0], nil)
		d.repo.EXPECT().KanbanLeads(gomock.Any()).Return(leads, nil).Times(2)
		d.repo.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1), entity.LeadStatusLost, gomock.Any()).
			Return(entity.Lead{}, errors.New("connection reset"))

		board, err := s.MoveLead(context.Background(), 1, entity.LeadStatusLost)
		require.Error(t, err)
		require.Len(t, board[entity.LeadStatusNew], 2)
		require.Empty(t, board[entity.LeadStatusLost])
	})

	t.Run("same column", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Lead(gomock.Any(), int64(2)).Return(leads[1], nil)
		d.repo.EXPECT().KanbanLeads(gomock.Any()).Return(leads, nil)

		board, err := s.MoveLead(context.Background(), 2, entity.LeadStatusNew)
		require.NoError(t, err)
		require.Len(t, board[entity.LeadStatusNew], 2)
	})

	t.Run("unknown column", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.MoveLead(context.Background(), 1, "archivado")
		require.ErrorIs(t, err, entity.ErrInvalidStatus)
	})

	t.Run("unknown lead", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Lead(gomock.Any(), int64(99)).Return(entity.Lead{}, entity.ErrNotFound)

		_, err := s.MoveLead(context.Background(), 99, entity.LeadStatusWon)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_CreateLead(t *testing.T) {
	t.Parallel()

	t.Run("duplicate phone", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().LeadByPhone(gomock.Any(), "+573001112233").Return(entity.Lead{ID: 8}, nil)

		_, err := s.CreateLead(context.Background(), entity.LeadCreate{Name: "Ana", Phone: "+573001112233"})
		require.ErrorIs(t, err, entity.ErrAlreadyExists)
	})

	t.Run("defaults source and status", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().LeadByPhone(gomock.Any(), "+573001112233").Return(entity.Lead{}, entity.ErrNotFound)
		d.repo.EXPECT().CreateLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.LeadCreate) (entity.Lead, error) {
				require.Equal(t, entity.LeadSourceWebsite, c.Source)
				require.Equal(t, entity.LeadStatusNew, c.Status)
				return entity.Lead{ID: 21, Name: c.Name, Phone: c.Phone, Status: c.Status, Source: c.Source}, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadCreated, "lead-21", gomock.Any())

		lead, err := s.CreateLead(context.Background(), entity.LeadCreate{Name: "Ana", Phone: "+573001112233"})
		require.NoError(t, err)
		require.Equal(t, int64(21), lead.ID)
	})
}

func TestService_UpdateLeadStatus(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	d.repo.EXPECT().Lead(gomock.Any(), int64(4)).Return(entity.Lead{ID: 4, Status: entity.LeadStatusPotential}, nil)
	d.repo.EXPECT().UpdateLeadStatus(gomock.Any(), int64(4), entity.LeadStatusWon, gomock.Nil()).
		Return(entity.Lead{ID: 4, Status: entity.LeadStatusWon}, nil)
	d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadStatusChanged, "lead-4", gomock.Any())

	lead, err := s.UpdateLeadStatus(context.Background(), 4, entity.LeadStatusWon)
	require.NoError(t, err)
	require.Equal(t, entity.LeadStatusWon, lead.Status)
}
