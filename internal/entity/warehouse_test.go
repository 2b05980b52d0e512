package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestWarehouseStatus_CanMoveTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to entity.WarehouseStatus
		want     bool
	}{
		{entity.WarehousePending, entity.WarehousePrepared, true},
		{entity.WarehousePrepared, entity.WarehouseDelivered, true},
		{entity.WarehousePending, entity.WarehouseDelivered, false},
		{entity.WarehouseDelivered, entity.WarehousePrepared, false},
		{entity.WarehousePrepared, entity.WarehousePending, false},
		{entity.WarehouseDelivered, entity.WarehousePending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, tt.from.CanMoveTo(tt.to))
		})
	}
}

func TestWarehouseOrderFilter_Normalize(t *testing.T) {
	t.Parallel()

	today := mustDate(t, "2024-06-10")
	bogus := entity.WarehouseStatus("perdido")
	prepared := entity.WarehousePrepared

	tests := []struct {
		name     string
		filter   entity.WarehouseOrderFilter
		wantFrom string
		wantTo   string
		wantErr  error
	}{
		{name: "defaults to today", wantFrom: "2024-06-10", wantTo: "2024-06-10"},
		{
			name:     "end defaults to start",
			filter:   entity.WarehouseOrderFilter{From: mustDate(t, "2024-06-12")},
			wantFrom: "2024-06-12",
			wantTo:   "2024-06-12",
		},
		{
			name:     "full range with status",
			filter:   entity.WarehouseOrderFilter{From: mustDate(t, "2024-06-01"), To: mustDate(t, "2024-08-02"), Status: &prepared},
			wantFrom: "2024-06-01",
			wantTo:   "2024-08-02",
		},
		{
			name:    "end before start",
			filter:  entity.WarehouseOrderFilter{From: mustDate(t, "2024-06-12"), To: mustDate(t, "2024-06-11")},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "range too long",
			filter:  entity.WarehouseOrderFilter{From: mustDate(t, "2024-06-01"), To: mustDate(t, "2024-08-03")},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "unknown status",
			filter:  entity.WarehouseOrderFilter{Status: &bogus},
			wantErr: entity.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.filter

			err := f.Normalize(today)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantFrom, f.From.String())
			require.Equal(t, tt.wantTo, f.To.String())
		})
	}
}

func TestUserUpdate_Validate(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }
	role := func(r entity.UserRole) *entity.UserRole { return &r }

	t.Run("email is normalized", func(t *testing.T) {
		t.Parallel()

		u := entity.UserUpdate{Email: str("  Bodega@ZAFESYS.co ")}
		require.NoError(t, u.Validate())
		require.Equal(t, "bodega@zafesys.co", *u.Email)
	})

	tests := []struct {
		name   string
		update entity.UserUpdate
	}{
		{name: "email without at", update: entity.UserUpdate{Email: str("bodega")}},
		{name: "short password", update: entity.UserUpdate{Password: str("12345")}},
		{name: "blank name", update: entity.UserUpdate{FullName: str("  ")}},
		{name: "unknown role", update: entity.UserUpdate{Role: role("gerente")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, tt.update.Validate(), entity.ErrInvalidArgument)
		})
	}
}
