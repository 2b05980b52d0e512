package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestBuildMonthlySales(t *testing.T) {
	t.Parallel()

	sales := []entity.DistributorSale{
		{Quantity: 2, TotalPrice: decimal.NewFromInt(500000), SaleDate: mustDate(t, "2024-01-10")},
		{Quantity: 1, TotalPrice: decimal.NewFromInt(250000), SaleDate: mustDate(t, "2024-03-02")},
		{Quantity: 3, TotalPrice: decimal.NewFromInt(750000), SaleDate: mustDate(t, "2024-03-31")},
		{Quantity: 9, TotalPrice: decimal.NewFromInt(999999), SaleDate: mustDate(t, "2023-12-31")},
	}

	got := entity.BuildMonthlySales(sales, mustDate(t, "2024-03-15"), 3)

	require.Len(t, got, 3)
	require.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, []string{got[0].Month, got[1].Month, got[2].Month})
	require.Equal(t, "500000", got[0].Amount.String())
	require.Equal(t, 2, got[0].Units)
	require.True(t, got[1].Amount.IsZero())
	require.Zero(t, got[1].Units)
	require.Equal(t, "1000000", got[2].Amount.String())
	require.Equal(t, 4, got[2].Units)

	require.Empty(t, entity.BuildMonthlySales(sales, mustDate(t, "2024-03-15"), 0))
}

func TestDistributorSaleUpdate_Apply(t *testing.T) {
	t.Parallel()

	sale := entity.DistributorSale{
		Quantity:   5,
		UnitPrice:  decimal.NewFromInt(200000),
		TotalPrice: decimal.NewFromInt(1000000),
	}

	qty := 3
	delta := entity.DistributorSaleUpdate{Quantity: &qty}.Apply(&sale)

	require.Equal(t, -2, delta)
	require.Equal(t, "600000", sale.TotalPrice.String())

	price := decimal.NewFromInt(180000)
	delta = entity.DistributorSaleUpdate{UnitPrice: &price}.Apply(&sale)

	require.Zero(t, delta)
	require.Equal(t, "540000", sale.TotalPrice.String())
}

func TestDistributorSaleUpdate_Validate(t *testing.T) {
	t.Parallel()

	zero := 0
	require.ErrorIs(t, entity.DistributorSaleUpdate{Quantity: &zero}.Validate(), entity.ErrInvalidQuantity)

	status := entity.PaymentStatus("fiado")
	require.ErrorIs(t, entity.DistributorSaleUpdate{PaymentStatus: &status}.Validate(), entity.ErrInvalidStatus)

	require.NoError(t, entity.DistributorSaleUpdate{}.Validate())
}

func TestTotalsOf(t *testing.T) {
	t.Parallel()

	totals := entity.TotalsOf([]entity.DistributorSale{
		{Quantity: 2, TotalPrice: decimal.NewFromInt(100)},
		{Quantity: 1, TotalPrice: decimal.NewFromInt(50)},
	})

	require.Equal(t, "150", totals.TotalSales.String())
	require.Equal(t, 3, totals.TotalUnits)
}
