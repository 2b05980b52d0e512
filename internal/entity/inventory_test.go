package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestClassifyStock(t *testing.T) {
	t.Parallel()

	require.Equal(t, entity.StockCritical, entity.ClassifyStock(0, 5))
	require.Equal(t, entity.StockCritical, entity.ClassifyStock(-2, 5))
	require.Equal(t, entity.StockLow, entity.ClassifyStock(5, 5))
	require.Equal(t, entity.StockOK, entity.ClassifyStock(6, 5))
}

func TestStockChange_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		change    entity.StockChange
		stock     int
		wantStock int
		wantQty   int
		wantErr   error
	}{
		{name: "entrada", change: entity.StockChange{Type: entity.MovementIn, Quantity: 4}, stock: 10, wantStock: 14, wantQty: 4},
		{name: "salida", change: entity.StockChange{Type: entity.MovementOut, Quantity: 3}, stock: 10, wantStock: 7, wantQty: -3},
		{name: "salida sign is ignored", change: entity.StockChange{Type: entity.MovementOut, Quantity: -3}, stock: 10, wantStock: 7, wantQty: -3},
		{name: "salida below zero", change: entity.StockChange{Type: entity.MovementOut, Quantity: 11}, stock: 10, wantErr: entity.ErrInsufficientStock},
		{name: "ajuste sets stock", change: entity.StockChange{Type: entity.MovementAdjustment, Quantity: 2}, stock: 10, wantStock: 2, wantQty: -8},
		{name: "ajuste negative", change: entity.StockChange{Type: entity.MovementAdjustment, Quantity: -1}, stock: 10, wantErr: entity.ErrInvalidArgument},
		{name: "unknown", change: entity.StockChange{Type: "robo", Quantity: 1}, stock: 10, wantErr: entity.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stock, qty, err := tt.change.Apply(tt.stock)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantStock, stock)
			require.Equal(t, tt.wantQty, qty)
		})
	}
}

func TestInstallationStockChanges(t *testing.T) {
	t.Parallel()

	type move struct {
		product int64
		typ     entity.MovementType
		qty     int
	}

	tests := []struct {
		name       string
		oldProduct int64
		oldQty     int
		newProduct int64
		newQty     int
		want       []move
	}{
		{name: "nothing changed", oldProduct: 1, oldQty: 2, newProduct: 1, newQty: 2},
		{
			name: "more units", oldProduct: 1, oldQty: 1, newProduct: 1, newQty: 3,
			want: []move{{1, entity.MovementOut, 2}},
		},
		{
			name: "fewer units", oldProduct: 1, oldQty: 3, newProduct: 1, newQty: 1,
			want: []move{{1, entity.MovementIn, 2}},
		},
		{
			name: "other product", oldProduct: 1, oldQty: 1, newProduct: 2, newQty: 2,
			want: []move{{1, entity.MovementIn, 1}, {2, entity.MovementOut, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			changes := entity.InstallationStockChanges(9, tt.oldProduct, tt.oldQty, tt.newProduct, tt.newQty)
			require.Len(t, changes, len(tt.want))

			for i, c := range changes {
				require.Equal(t, tt.want[i], move{c.ProductID, c.Type, c.Quantity})
				require.Equal(t, entity.RefInstallation, c.ReferenceType)
				require.Equal(t, int64(9), *c.ReferenceID)
			}
		})
	}
}

func TestNewProductInventory(t *testing.T) {
	t.Parallel()

	p := entity.Product{ID: 1, Name: "OS566F", Stock: 3, MinStockAlert: 5, Price: decimal.NewFromInt(300000)}

	pi := entity.NewProductInventory(p, entity.ProductSales{ProductID: 1, Sold30d: 15, Sold7d: 4})

	require.Equal(t, entity.StockLow, pi.StockStatus)
	require.InDelta(t, 0.5, pi.AvgDailySales, 0.0001)
	require.NotNil(t, pi.DaysOfStock)
	require.Equal(t, 6, *pi.DaysOfStock)
	require.Equal(t, []entity.AlertCode{entity.AlertLowStock, entity.AlertRestock}, alertCodes(pi.Alerts))

	idle := entity.NewProductInventory(entity.Product{ID: 2, Stock: 20, MinStockAlert: 5}, entity.ProductSales{Sold30d: 1})
	require.Equal(t, []entity.AlertCode{entity.AlertSlowMoving}, alertCodes(idle.Alerts))

	none := entity.NewProductInventory(entity.Product{ID: 3, Stock: 8, MinStockAlert: 5}, entity.ProductSales{})
	require.Nil(t, none.DaysOfStock)
	require.Equal(t, []entity.AlertCode{entity.AlertNoSales}, alertCodes(none.Alerts))

	items := []entity.ProductInventory{
		entity.NewProductInventory(entity.Product{ID: 4, Stock: 9, MinStockAlert: 5}, entity.ProductSales{Sold30d: 3}),
		pi,
		idle,
	}
	entity.SortInventory(items)
	require.Equal(t, []int64{1, 2, 4}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestBuildInventorySummary(t *testing.T) {
	t.Parallel()

	products := []entity.Product{
		{ID: 1, Stock: 0, MinStockAlert: 5, Price: decimal.NewFromInt(100)},
		{ID: 2, Stock: 4, MinStockAlert: 5, Price: decimal.NewFromInt(100)},
		{ID: 3, Stock: 10, MinStockAlert: 5, Price: decimal.NewFromInt(50)},
	}

	s := entity.BuildInventorySummary(products, map[int64]int{3: 10}, 2, 9)

	require.Equal(t, 3, s.TotalProducts)
	require.Equal(t, "900", s.TotalStockValue.String())
	require.Equal(t, 1, s.ProductsOutOfStock)
	require.Equal(t, 1, s.ProductsLowStock)
	require.Equal(t, 1, s.ProductsSlowMoving)
	require.Equal(t, 2, s.TotalMovementsToday)
	require.Equal(t, 9, s.TotalMovementsWeek)
}

func alertCodes(alerts []entity.InventoryAlert) []entity.AlertCode {
	out := make([]entity.AlertCode, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Code)
	}

	return out
}
