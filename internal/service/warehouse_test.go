package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_PrepareOrder(t *testing.T) {
	t.Parallel()

	keeper := entity.WithUser(context.Background(), entity.UserClaims{UserID: 12, Role: entity.RoleWarehouse})

	t.Run("records the preparer and publishes", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		pending := entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePending}
		prepared := pending
		prepared.WarehouseStatus = entity.WarehousePrepared

		gomock.InOrder(
			d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(pending, nil),
			d.repo.EXPECT().SetWarehouseStatus(gomock.Any(), int64(40), entity.WarehousePrepared, int64(12), gomock.Any()).Return(nil),
			d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(prepared, nil),
		)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventWarehouseStatus, "installation-40", gomock.Any()).
			Do(func(_ context.Context, _, _ string, payload any) {
				change, ok := payload.(entity.WarehouseStatusChange)
				require.True(t, ok)
				require.Equal(t, entity.WarehousePending, change.From)
				require.Equal(t, entity.WarehousePrepared, change.To)
				require.Equal(t, int64(12), change.UserID)
			})

		order, err := s.PrepareOrder(keeper, 40)
		require.NoError(t, err)
		require.Equal(t, entity.WarehousePrepared, order.WarehouseStatus)
	})

	t.Run("already prepared is a no-op", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).
			Return(entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePrepared}, nil)

		order, err := s.PrepareOrder(keeper, 40)
		require.NoError(t, err)
		require.Equal(t, entity.WarehousePrepared, order.WarehouseStatus)
	})

	t.Run("delivered order cannot go back", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).
			Return(entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehouseDelivered}, nil)

		_, err := s.PrepareOrder(keeper, 40)
		require.ErrorIs(t, err, entity.ErrStatusNotAllowed)
	})

	t.Run("needs a staff user", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.PrepareOrder(context.Background(), 40)
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})
}

func TestService_DeliverOrder(t *testing.T) {
	t.Parallel()

	keeper := entity.WithUser(context.Background(), entity.UserClaims{UserID: 12, Role: entity.RoleWarehouse})

	t.Run("pending order must be prepared first", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).
			Return(entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePending}, nil)

		_, err := s.DeliverOrder(keeper, 40)
		require.ErrorIs(t, err, entity.ErrStatusNotAllowed)
	})

	t.Run("prepared order is delivered", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		prepared := entity.WarehouseOrder{InstallationID: 40, WarehouseStatus: entity.WarehousePrepared}
		delivered := prepared
		delivered.WarehouseStatus = entity.WarehouseDelivered

		gomock.InOrder(
			d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(prepared, nil),
			d.repo.EXPECT().SetWarehouseStatus(gomock.Any(), int64(40), entity.WarehouseDelivered, int64(12), gomock.Any()).Return(nil),
			d.repo.EXPECT().WarehouseOrder(gomock.Any(), int64(40)).Return(delivered, nil),
		)
		d.events.EXPECT().Publish(gomock.Any(), entity.EventWarehouseStatus, "installation-40", gomock.Any())

		order, err := s.DeliverOrder(keeper, 40)
		require.NoError(t, err)
		require.Equal(t, entity.WarehouseDelivered, order.WarehouseStatus)
	})
}

func TestService_WarehouseOrders(t *testing.T) {
	t.Parallel()

	t.Run("range defaults to today", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		today := entity.NewDate(time.Now())

		d.repo.EXPECT().WarehouseOrders(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entity.WarehouseOrderFilter) ([]entity.WarehouseOrder, error) {
				require.Equal(t, today.String(), f.From.String())
				require.Equal(t, f.From.String(), f.To.String())
				return []entity.WarehouseOrder{}, nil
			})

		orders, err := s.WarehouseOrders(context.Background(), entity.WarehouseOrderFilter{})
		require.NoError(t, err)
		require.Empty(t, orders)
	})

	t.Run("long range is rejected", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		from, err := entity.ParseDate("2024-01-01")
		require.NoError(t, err)

		_, err = s.WarehouseOrders(context.Background(), entity.WarehouseOrderFilter{From: from, To: from.AddDays(90)})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_WarehouseStaff(t *testing.T) {
	t.Parallel()

	t.Run("admins and warehouse users", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Users(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entity.UserFilter) ([]entity.User, error) {
				require.NotNil(t, f.Role)
				require.True(t, *f.IsActive)
				return []entity.User{{ID: int64(len(*f.Role)), Role: *f.Role}}, nil
			}).Times(2)

		users, err := s.WarehouseStaff(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, entity.RoleAdmin, users[0].Role)
		require.Equal(t, entity.RoleWarehouse, users[1].Role)
	})

	t.Run("falls back to every active user", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Users(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f entity.UserFilter) ([]entity.User, error) {
				if f.Role != nil {
					return []entity.User{}, nil
				}

				return []entity.User{{ID: 5, Role: entity.RoleSales}}, nil
			}).Times(3)

		users, err := s.WarehouseStaff(context.Background())
		require.NoError(t, err)
		require.Len(t, users, 1)
	})
}
