package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_CheckLowStock(t *testing.T) {
	t.Parallel()

	low := []entity.Product{
		{ID: 1, SKU: "OS505", Name: "Cerradura OS505", Stock: 0, MinStockAlert: 3},
		{ID: 2, SKU: "OS600", Name: "Cerradura OS600", Stock: 2, MinStockAlert: 5},
	}

	t.Run("nothing low", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().LowStockProducts(gomock.Any()).Return(nil, nil)

		require.NoError(t, s.CheckLowStock(context.Background()))
	})

	t.Run("alerts once per run", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().LowStockProducts(gomock.Any()).Return(low, nil)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInventoryLowStock, "product-1", entity.LowStockAlert{
			ProductID:     1,
			SKU:           "OS505",
			Name:          "Cerradura OS505",
			Stock:         0,
			MinStockAlert: 3,
			Status:        low[0].StockStatus(),
		})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInventoryLowStock, "product-2", gomock.Any())
		d.mailer.EXPECT().SendAlert("Inventario: 2 productos con stock bajo", gomock.Any()).
			DoAndReturn(func(_ string, body string) error {
				require.Contains(t, body, "Cerradura OS505 (OS505): 0 unidades")
				require.Contains(t, body, "Cerradura OS600 (OS600): 2 unidades")
				return nil
			})

		require.NoError(t, s.CheckLowStock(context.Background()))
	})

	t.Run("mail failure", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().LowStockProducts(gomock.Any()).Return(low[:1], nil)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInventoryLowStock, "product-1", gomock.Any())
		d.mailer.EXPECT().SendAlert(gomock.Any(), gomock.Any()).Return(errors.New("smtp: 421"))

		require.Error(t, s.CheckLowStock(context.Background()))
	})
}

func TestService_PurgeOldLocations(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	before := time.Now().Add(-30 * 24 * time.Hour)

	d.repo.EXPECT().DeleteLocationsBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
			require.WithinDuration(t, before, cutoff, time.Minute)
			return 3, nil
		})

	require.NoError(t, s.PurgeOldLocations(context.Background()))
}
