package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestInstallation_ApplyPayment(t *testing.T) {
	t.Parallel()

	inst := entity.Installation{
		TotalPrice:    decimal.NewFromInt(500000),
		AmountPaid:    decimal.Zero,
		PaymentStatus: entity.PaymentPending,
	}

	require.ErrorIs(t, inst.ApplyPayment(decimal.Zero, entity.PaymentCash), entity.ErrInvalidArgument)

	require.NoError(t, inst.ApplyPayment(decimal.NewFromInt(200000), entity.PaymentNequi))
	require.Equal(t, entity.PaymentPartial, inst.PaymentStatus)
	require.Equal(t, entity.PaymentNequi, *inst.PaymentMethod)

	require.NoError(t, inst.ApplyPayment(decimal.NewFromInt(300000), entity.PaymentMethod("bitcoin")))
	require.Equal(t, entity.PaymentPaid, inst.PaymentStatus)
	require.Equal(t, entity.PaymentNequi, *inst.PaymentMethod)
	require.Equal(t, "500000", inst.AmountPaid.String())
}

func TestInstallation_SetStatus(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 7, 15, 0, 0, 0, time.UTC)

	var inst entity.Installation

	inst.SetStatus(entity.InstallationInProgress, now)
	require.Nil(t, inst.CompletedAt)

	inst.SetStatus(entity.InstallationCompleted, now)
	require.NotNil(t, inst.CompletedAt)
	require.Equal(t, now, *inst.CompletedAt)

	inst.SetStatus(entity.InstallationCompleted, now.Add(time.Hour))
	require.Equal(t, now, *inst.CompletedAt)
}

func TestInstallation_Complete(t *testing.T) {
	t.Parallel()

	notes := "todo bien"
	empty := ""
	inst := entity.Installation{TechnicianNotes: &notes}

	inst.Complete(entity.InstallationComplete{TechnicianNotes: &empty}, time.Now())

	require.Equal(t, entity.InstallationCompleted, inst.Status)
	require.Equal(t, "todo bien", *inst.TechnicianNotes)
}

func TestInstallationStatus_TechnicianSettable(t *testing.T) {
	t.Parallel()

	require.True(t, entity.InstallationOnTheWay.TechnicianSettable())
	require.True(t, entity.InstallationInProgress.TechnicianSettable())
	require.False(t, entity.InstallationCancelled.TechnicianSettable())
	require.True(t, entity.InstallationCancelled.IsClosed())
}

func TestValidatePIN(t *testing.T) {
	t.Parallel()

	for pin, ok := range map[string]bool{
		"1234":    true,
		"123456":  true,
		"123":     false,
		"1234567": false,
		"12a4":    false,
		"١٢٣٤":    false,
	} {
		if ok {
			require.NoError(t, entity.ValidatePIN(pin), pin)
			continue
		}

		require.ErrorIs(t, entity.ValidatePIN(pin), entity.ErrInvalidPIN, pin)
	}
}
