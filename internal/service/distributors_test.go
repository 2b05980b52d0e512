package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_CreateSale(t *testing.T) {
	t.Parallel()

	sale := entity.DistributorSaleCreate{
		DistributorID: 2,
		ProductID:     3,
		Quantity:      4,
		UnitPrice:     decimal.NewFromInt(350000),
		SaleDate:      entity.NewDate(time.Date(2024, 6, 3, 15, 0, 0, 0, time.UTC)),
	}

	t.Run("records the sale and publishes it", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Distributor(gomock.Any(), int64(2)).Return(entity.Distributor{ID: 2}, nil)
		d.repo.EXPECT().CreateSale(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, s entity.DistributorSale, _ *string) (entity.DistributorSale, error) {
				s.ID = 31
				return s, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventDistributorSale, "sale-31", gomock.Any())

		got, err := s.CreateSale(context.Background(), sale)
		require.NoError(t, err)
		require.Equal(t, int64(31), got.ID)
		require.True(t, decimal.NewFromInt(1400000).Equal(got.TotalPrice))
		require.Equal(t, entity.PaymentPending, got.PaymentStatus)
	})

	t.Run("unknown distributor", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Distributor(gomock.Any(), int64(2)).Return(entity.Distributor{}, entity.ErrNotFound)

		_, err := s.CreateSale(context.Background(), sale)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("zero quantity", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		bad := sale
		bad.Quantity = 0

		_, err := s.CreateSale(context.Background(), bad)
		require.ErrorIs(t, err, entity.ErrInvalidQuantity)
	})
}

func TestService_MonthlySales(t *testing.T) {
	t.Parallel()

	t.Run("too many months", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.MonthlySales(context.Background(), nil, 25)
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("defaults to six months", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Sales(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entity.SaleFilter) ([]entity.DistributorSale, error) {
				require.Equal(t, 1, f.From.Day())
				require.NotNil(t, f.To)
				return nil, nil
			})

		chart, err := s.MonthlySales(context.Background(), nil, 0)
		require.NoError(t, err)
		require.Len(t, chart, 6)
	})
}
