package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zafesys/suite/internal/entity"
)

func TestService_TechnicianApp(t *testing.T) {
	t.Parallel()

	techID := int64(3)
	otherID := int64(4)

	assigned := entity.Installation{
		ID:            5,
		TechnicianID:  &techID,
		Status:        entity.InstallationInProgress,
		TotalPrice:    decimal.NewFromInt(530000),
		PaymentStatus: entity.PaymentPending,
		AmountPaid:    decimal.Zero,
	}

	t.Run("installation of another technician", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		notMine := assigned
		notMine.TechnicianID = &otherID
		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(notMine, nil)

		_, err := s.MyInstallation(context.Background(), techID, 5)
		require.ErrorIs(t, err, entity.ErrInstallationNotOwned)
	})

	t.Run("unassigned installation", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		unassigned := assigned
		unassigned.TechnicianID = nil
		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(unassigned, nil)

		_, err := s.StartMyTimer(context.Background(), techID, 5)
		require.ErrorIs(t, err, entity.ErrInstallationNotOwned)
	})

	t.Run("technician cannot cancel", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, testConfig())

		_, err := s.SetMyInstallationStatus(context.Background(), techID, 5, entity.InstallationCancelled)
		require.ErrorIs(t, err, entity.ErrStatusNotAllowed)
	})

	t.Run("on the way", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		scheduled := assigned
		scheduled.Status = entity.InstallationScheduled

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(scheduled, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationStatus, "installation-5", entity.InstallationStatusChanged{
			InstallationID: 5,
			TechnicianID:   &techID,
			From:           entity.InstallationScheduled,
			To:             entity.InstallationOnTheWay,
		})

		inst, err := s.SetMyInstallationStatus(context.Background(), techID, 5, entity.InstallationOnTheWay)
		require.NoError(t, err)
		require.Equal(t, entity.InstallationOnTheWay, inst.Status)
		require.Nil(t, inst.CompletedAt)
	})

	t.Run("full payment on site", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(assigned, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventPaymentReceived, "installation-5", gomock.Any())

		inst, err := s.ConfirmPayment(context.Background(), techID, 5, entity.PaymentConfirmation{
			Amount: decimal.NewFromInt(530000),
			Method: entity.PaymentNequi,
		})
		require.NoError(t, err)
		require.Equal(t, entity.PaymentPaid, inst.PaymentStatus)
		require.Equal(t, entity.PaymentNequi, *inst.PaymentMethod)
		require.True(t, decimal.NewFromInt(530000).Equal(inst.AmountPaid))
	})

	t.Run("non positive payment", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())
		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(assigned, nil)

		_, err := s.ConfirmPayment(context.Background(), techID, 5, entity.PaymentConfirmation{
			Amount: decimal.Zero,
			Method: entity.PaymentCash,
		})
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})

	t.Run("complete keeps notes", func(t *testing.T) {
		t.Parallel()

		s, d := newService(t, testConfig())

		notes := "Instalada en puerta principal"

		d.repo.EXPECT().Installation(gomock.Any(), int64(5)).Return(assigned, nil)
		d.repo.EXPECT().UpdateInstallation(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i entity.Installation, _ *string) (entity.Installation, error) {
				return i, nil
			})
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationStatus, "installation-5", gomock.Any())
		d.events.EXPECT().Publish(gomock.Any(), entity.EventInstallationCompleted, "installation-5", gomock.Any())

		inst, err := s.CompleteMyInstallation(context.Background(), techID, 5, entity.InstallationComplete{
			TechnicianNotes: &notes,
		})
		require.NoError(t, err)
		require.Equal(t, entity.InstallationCompleted, inst.Status)
		require.Equal(t, notes, *inst.TechnicianNotes)
		require.NotNil(t, inst.CompletedAt)
	})
}
