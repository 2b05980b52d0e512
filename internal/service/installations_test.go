package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
	"github.com/zafesys/suite/internal/mocks"
	"github.com/zafesys/suite/internal/service"
)

func testProduct() entity.Product {
	return entity.Product{
		ID:                2,
		SKU:               "OS566F",
		Name:              "Cerradura digital OS566F",
		Model:             "OS566F",
		Price:             decimal.NewFromInt(450000),
		InstallationPrice: decimal.NewFromInt(80000),
		Stock:             5,
		MinStockAlert:     2,
		IsActive:          true,
	}
}

func TestService_CreateInstallation(t *testing.T) {
	t.Parallel()

	t.Run("quotes the total and takes the customer from the lead", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(entity.Lead{ID: 1, Name: "Carlos Ruiz"}, nil)
		d.repo.EXPECT().Product(gomock.Any(), int64(2)).Return(testProduct(), nil)
		d.repo.EXPECT().CustomerByLead(gomock.Any(), int64(1)).Return(entity.Customer{ID: 9}, nil)
		d.repo.EXPECT().CreateInstallation(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				i.ID = 11
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationCreated, "installation-11", gomock.Any())

		inst, err := s.CreateInstallation(context.Background(), entity.InstallationCreate{
			LeadID:    1,
			ProductID: 2,
			Quantity:  2,
			Address:   "Calle 10 # 43-20",
			Adjustment: &entity.Adjustment{
				Kind:  entity.AdjustmentDiscount,
				Mode:  entity.AdjustmentPercent,
				Value: decimal.NewFromInt(10),
			},
		})
		require.NoError(t, err)
		require.Equal(t, int64(11), inst.ID)
		require.Equal(t, entity.InstallationPending, inst.Status)
		require.Equal(t, entity.PaymentPending, inst.PaymentStatus)
		require.Equal(t, 60, inst.EstimatedDuration)
		require.Equal(t, int64(9), *inst.CustomerID)
		require.True(t, decimal.NewFromInt(882000).Equal(inst.TotalPrice), inst.TotalPrice.String())
		require.True(t, inst.AmountPaid.IsZero())
		require.Empty(t, inst.PhotosBefore)
	})

	t.Run("explicit total and date", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		total := decimal.NewFromInt(500000)
		date := entity.NewDate(time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC))
		customerID := int64(4)

		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(entity.Lead{ID: 1}, nil)
		d.repo.EXPECT().Product(gomock.Any(), int64(2)).Return(testProduct(), nil)
		d.repo.EXPECT().CreateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				i.ID = 12
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationCreated, "installation-12", gomock.Any())

		inst, err := s.CreateInstallation(context.Background(), entity.InstallationCreate{
			LeadID:        1,
			CustomerID:    &customerID,
			ProductID:     2,
			Address:       "Cra 7 # 12-30",
			ScheduledDate: &date,
			TotalPrice:    &total,
		})
		require.NoError(t, err)
		require.Equal(t, 1, inst.Quantity)
		require.Equal(t, entity.InstallationScheduled, inst.Status)
		require.True(t, total.Equal(inst.TotalPrice))
		require.Equal(t, customerID, *inst.CustomerID)
	})

	t.Run("insufficient stock", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		p := testProduct()
		p.Stock = 1

		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(entity.Lead{ID: 1}, nil)
		d.repo.EXPECT().Product(gomock.Any(), int64(2)).Return(p, nil)

		_, err := s.CreateInstallation(context.Background(), entity.InstallationCreate{
			LeadID:    1,
			ProductID: 2,
			Quantity:  3,
			Address:   "Calle 1",
		})
		require.ErrorIs(t, err, entity.ErrInsufficientStock)
	})

	t.Run("unknown lead is a bad request", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Lead(gomock.Any(), int64(1)).Return(entity.Lead{}, entity.ErrNotFound)

		_, err := s.CreateInstallation(context.Background(), entity.InstallationCreate{
			LeadID:    1,
			ProductID: 2,
			Address:   "Calle 1",
		})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
		require.NotErrorIs(t, err, entity.ErrNotFound)
	})

	t.Run("missing address", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.CreateInstallation(context.Background(), entity.InstallationCreate{LeadID: 1, ProductID: 2})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestService_QuoteInstallation(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())
	d.repo.EXPECT().Product(gomock.Any(), int64(2)).Return(testProduct(), nil)

	q, err := s.QuoteInstallation(context.Background(), 2, 1, entity.Adjustment{
		Kind:  entity.AdjustmentSurcharge,
		Mode:  entity.AdjustmentFixed,
		Value: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(530000).Equal(q.Subtotal))
	require.True(t, decimal.NewFromInt(550000).Equal(q.Total))
}

func TestService_UpdateInstallationStatus(t *testing.T) {
	t.Parallel()

	techID := int64(3)

	t.Run("completing publishes status and completion", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
			ID:           5,
			TechnicianID: &techID,
			Status:       entity.InstallationInProgress,
		}, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationStatus, "installation-5", entity.InstallationStatusChanged{
			InstallationID: 5,
			TechnicianID:   &techID,
			From:           entity.InstallationInProgress,
			To:             entity.InstallationCompleted,
		})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationCompleted, "installation-5", gomock.Any())

		inst, err := s.UpdateInstallationStatus(context.Background(), 5, entity.InstallationCompleted)
		require.NoError(t, err)
		require.Equal(t, entity.InstallationCompleted, inst.Status)
		require.NotNil(t, inst.CompletedAt)
	})

	t.Run("same status publishes nothing", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
			ID:     5,
			Status: entity.InstallationScheduled,
		}, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})

		_, err := s.UpdateInstallationStatus(context.Background(), 5, entity.InstallationScheduled)
		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.UpdateInstallationStatus(context.Background(), 5, "terminada")
		require.ErrorIs(t, err, entity.ErrInvalidStatus)
	})
}

func TestService_UpdateInstallationPayment(t *testing.T) {
	t.Parallel()

	s, d := newService(t, testConfig())

	method := entity.PaymentMethod("transferencia")

	d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
		ID:            5,
		Status:        entity.InstallationCompleted,
		TotalPrice:    decimal.NewFromInt(530000),
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
	}, nil)
	d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
			return i, nil
		})
	d.events.EXPECT().Publish(gomock.Any(), entity.EventPaymentReceived, "installation-5", gomock.Any())

	inst, err := s.UpdateInstallationPayment(context.Background(), 5, entity.InstallationPaymentUpdate{
		PaymentStatus: entity.PaymentPartial,
		PaymentMethod: &method,
		AmountPaid:    decimal.NewFromInt(200000),
	})
	require.NoError(t, err)
	require.Equal(t, entity.PaymentPartial, inst.PaymentStatus)
	require.Equal(t, method, *inst.PaymentMethod)
}

func TestService_Timer(t *testing.T) {
	t.Parallel()

	t.Run("start sets the timer", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{ID: 5}, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				require.NotNil(t, i.TimerStartedAt)
				require.Nil(t, i.TimerEndedAt)
				return i, nil
			})

		status, err := s.StartTimer(context.Background(), 5, entity.TimerByAdmin)
		require.NoError(t, err)
		require.True(t, status.IsRunning)
		require.Equal(t, entity.TimerByAdmin, *status.StartedBy)
	})

	t.Run("start on a running timer is a no-op", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		started := time.Now().Add(-10 * time.Minute).UTC()
		by := entity.TimerByTechnician

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
			ID:             5,
			TimerStartedAt: &started,
			TimerStartedBy: &by,
		}, nil)

		status, err := s.StartTimer(context.Background(), 5, entity.TimerByAdmin)
		require.NoError(t, err)
		require.True(t, status.IsRunning)
		require.Equal(t, entity.TimerByTechnician, *status.StartedBy)
		require.GreaterOrEqual(t, status.ElapsedMinutes, int64(10))
	})

	t.Run("stop stores the rounded duration", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		started := time.Now().Add(-90 * time.Minute).UTC()

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
			ID:             5,
			TimerStartedAt: &started,
		}, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})

		status, err := s.StopTimer(context.Background(), 5)
		require.NoError(t, err)
		require.False(t, status.IsRunning)
		require.Equal(t, 90, *status.DurationMinutes)
	})

	t.Run("stop without start", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{ID: 5}, nil)

		_, err := s.StopTimer(context.Background(), 5)
		require.ErrorIs(t, err, entity.ErrTimerNotStarted)
	})
}

func TestService_MediaUploadURL(t *testing.T) {
	t.Parallel()

	t.Run("presigns a key for the installation", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		name := "Carlos Ruiz"

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(entity.Installation{
			ID:                  5,
			InstallationDetails: entity.InstallationDetails{LeadName: &name},
		}, nil)
		d.media.EXPECT().PresignUpload(gomock.Any(), gomock.Any(), time.Hour).
			DoAndReturn(func(_ context.Context, key string, _ time.Duration) (string, string, error) {
				return "https://upload.example/" + key, "https://cdn.example/" + key, nil
			})

		before := time.Now()

		upload, err := s.MediaUploadURL(context.Background(), 5, entity.MediaPhotoBefore)
		require.NoError(t, err)
		require.Contains(t, upload.Key, "/installation-5-carlos-ruiz/foto_antes-")
		require.True(t, strings.HasSuffix(upload.Key, ".jpg"), upload.Key)
		require.Equal(t, "https://cdn.example/"+upload.Key, upload.PublicURL)
		require.Equal(t, "image/jpeg", upload.ContentType)
		require.WithinDuration(t, before.Add(time.Hour), upload.ExpiresAt, time.Minute)
	})

	t.Run("invalid media type", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.MediaUploadURL(context.Background(), 5, "audio")
		require.ErrorIs(t, err, entity.ErrInvalidMediaType)
	})

	t.Run("storage not configured", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		s := service.New(testConfig(), mocks.NewMockRepository(ctrl), mocks.NewMockPublisher(ctrl), nil,
			mocks.NewMockMailer(ctrl), nil)

		_, err := s.MediaUploadURL(context.Background(), 5, entity.MediaVideo)
		require.ErrorIs(t, err, entity.ErrUnavailable)
	})
}
