package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_ConvertLead(t *testing.T) {
	t.Parallel()

	lead := entity.Lead{ID: 6, Name: "Laura Gómez", Phone: "+573015556677", Status: entity.LeadStatusPotential}

	t.Run("creates the customer and closes the lead", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Lead(gomock.Any(), int64(6)).Return(lead, nil)
		d.repo.EXPECT().CustomerByLead(gomock.Any(), int64(6)).Return(entity.Customer{}, entity.ErrNotFound)
		d.repo.EXPECT().ConvertLead(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c entity.CustomerCreate) (entity.Customer, error) {
				require.Equal(t, "Laura Gómez", c.Name)
				require.Equal(t, "+573015556677", c.Phone)
				return entity.Customer{ID: 14, Name: c.Name, Phone: c.Phone}, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventLeadStatusChanged, "lead-6", entity.LeadStatusChanged{
			LeadID: 6,
			From:   entity.LeadStatusPotential,
			To:     entity.LeadStatusWon,
		})

		customer, err := s.ConvertLead(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, int64(14), customer.ID)
	})

	t.Run("already converted returns the same customer", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		won := lead
		won.Status = entity.LeadStatusWon

		d.repo.EXPECT().Lead(gomock.Any(), int64(6)).Return(won, nil)
		d.repo.EXPECT().CustomerByLead(gomock.Any(), int64(6)).Return(entity.Customer{ID: 14}, nil)

		customer, err := s.ConvertLead(context.Background(), 6)
		require.NoError(t, err)
		require.Equal(t, int64(14), customer.ID)
	})
}
