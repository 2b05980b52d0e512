package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zafesys/suite/internal/entity"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	d := decimal.NewFromInt

	tests := []struct {
		name    string
		in      entity.QuoteInput
		want    decimal.Decimal
		wantErr error
	}{
		{
			name: "ten percent discount",
			in: entity.QuoteInput{
				UnitPrice:         d(300000),
				Quantity:          2,
				InstallationPrice: d(189000),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(10),
				},
			},
			want: d(710100),
		},
		{
			name: "no adjustment",
			in: entity.QuoteInput{
				UnitPrice:         d(300000),
				Quantity:          2,
				InstallationPrice: d(189000),
			},
			want: d(789000),
		},
		{
			name: "fixed surcharge",
			in: entity.QuoteInput{
				UnitPrice:         d(450000),
				Quantity:          1,
				InstallationPrice: d(0),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentSurcharge, Mode: entity.AdjustmentFixed, Value: d(25000),
				},
			},
			want: d(475000),
		},
		{
			name: "percent surcharge",
			in: entity.QuoteInput{
				UnitPrice:         d(100000),
				Quantity:          1,
				InstallationPrice: d(50000),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentSurcharge, Mode: entity.AdjustmentPercent, Value: d(19),
				},
			},
			want: d(178500),
		},
		{
			name: "fixed discount is clamped at zero",
			in: entity.QuoteInput{
				UnitPrice:         d(100000),
				Quantity:          1,
				InstallationPrice: d(20000),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentFixed, Value: d(500000),
				},
			},
			want: d(0),
		},
		{
			name: "full percent discount",
			in: entity.QuoteInput{
				UnitPrice: d(100000),
				Quantity:  3,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(100),
				},
			},
			want: d(0),
		},
		{
			name: "fractional result rounds to whole pesos",
			in: entity.QuoteInput{
				UnitPrice: d(99999),
				Quantity:  1,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(15),
				},
			},
			want: d(84999),
		},
		{
			name:    "zero quantity",
			in:      entity.QuoteInput{UnitPrice: d(1000)},
			wantErr: entity.ErrInvalidQuantity,
		},
		{
			name: "percent discount above hundred",
			in: entity.QuoteInput{
				UnitPrice: d(1000),
				Quantity:  1,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(101),
				},
			},
			wantErr: entity.ErrInvalidAdjustment,
		},
		{
			name: "negative value",
			in: entity.QuoteInput{
				UnitPrice: d(1000),
				Quantity:  1,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentSurcharge, Mode: entity.AdjustmentFixed, Value: d(-1),
				},
			},
			wantErr: entity.ErrInvalidAdjustment,
		},
		{
			name: "unknown mode",
			in: entity.QuoteInput{
				UnitPrice: d(1000),
				Quantity:  1,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: "ratio", Value: d(1),
				},
			},
			wantErr: entity.ErrInvalidAdjustment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.Quote(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.True(t, tt.want.Equal(got.Total), "want %s, got %s", tt.want, got.Total)
			require.False(t, got.Total.IsNegative())
		})
	}
}

func TestQuote_Breakdown(t *testing.T) {
	t.Parallel()

	d := decimal.NewFromInt

	tests := []struct {
		name       string
		in         entity.QuoteInput
		subtotal   string
		adjustment string
		total      string
	}{
		{
			name: "round subtotal",
			in: entity.QuoteInput{
				UnitPrice:         d(300000),
				Quantity:          2,
				InstallationPrice: d(189000),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(10),
				},
			},
			subtotal:   "789000",
			adjustment: "78900",
			total:      "710100",
		},
		{
			name: "percent lands on half a peso",
			in: entity.QuoteInput{
				UnitPrice:         d(300000),
				Quantity:          2,
				InstallationPrice: d(189005),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentPercent, Value: d(10),
				},
			},
			subtotal:   "789005",
			adjustment: "78901",
			total:      "710104",
		},
		{
			name: "surcharge on half a peso",
			in: entity.QuoteInput{
				UnitPrice: d(12345),
				Quantity:  3,
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentSurcharge, Mode: entity.AdjustmentPercent, Value: d(10),
				},
			},
			subtotal:   "37035",
			adjustment: "3704",
			total:      "40739",
		},
		{
			name: "discount larger than subtotal",
			in: entity.QuoteInput{
				UnitPrice:         d(100000),
				Quantity:          1,
				InstallationPrice: d(20000),
				Adjustment: entity.Adjustment{
					Kind: entity.AdjustmentDiscount, Mode: entity.AdjustmentFixed, Value: d(500000),
				},
			},
			subtotal:   "120000",
			adjustment: "120000",
			total:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := entity.Quote(tt.in)
			require.NoError(t, err)

			require.Equal(t, tt.subtotal, got.Subtotal.String())
			require.Equal(t, tt.adjustment, got.AdjustmentAmount.String())
			require.Equal(t, tt.total, got.Total.String())

			if tt.in.Adjustment.Kind == entity.AdjustmentSurcharge {
				require.True(t, got.Subtotal.Add(got.AdjustmentAmount).Equal(got.Total))
				return
			}

			require.True(t, got.Subtotal.Sub(got.AdjustmentAmount).Equal(got.Total))
		})
	}
}
