package entity

import (
	"github.com/shopspring/decimal"
)

type AdjustmentKind string

const (
	AdjustmentNone      AdjustmentKind = "none"
	AdjustmentDiscount  AdjustmentKind = "discount"
	AdjustmentSurcharge AdjustmentKind = "surcharge"
)

type AdjustmentMode string

const (
	AdjustmentPercent AdjustmentMode = "percent"
	AdjustmentFixed   AdjustmentMode = "fixed"
)

var hundred = decimal.NewFromInt(100)

// Adjustment is a discount or surcharge applied to the whole subtotal.
type Adjustment struct {
	Kind  AdjustmentKind  `json:"kind"`
	Mode  AdjustmentMode  `json:"mode"`
	Value decimal.Decimal `json:"value"`
}

func (a Adjustment) Validate() error {
	switch a.Kind {
	case AdjustmentNone, "":
		return nil
	case AdjustmentDiscount, AdjustmentSurcharge:
	default:
		return ErrInvalidAdjustment
	}

	if a.Value.IsNegative() {
		return ErrInvalidAdjustment
	}

	switch a.Mode {
	case AdjustmentPercent:
		if a.Kind == AdjustmentDiscount && a.Value.GreaterThan(hundred) {
			return ErrInvalidAdjustment
		}
	case AdjustmentFixed:
	default:
		return ErrInvalidAdjustment
	}

	return nil
}

type QuoteInput struct {
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	Adjustment        Adjustment      `json:"adjustment"`
}

// PriceBreakdown is the itemized price of an installation. Amounts are whole pesos.
type PriceBreakdown struct {
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Quantity          int             `json:"quantity"`
	ProductsSubtotal  decimal.Decimal `json:"products_subtotal"`
	InstallationPrice decimal.Decimal `json:"installation_price"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Adjustment        Adjustment      `json:"adjustment"`
	AdjustmentAmount  decimal.Decimal `json:"adjustment_amount"`
	Total             decimal.Decimal `json:"total"`
}

// Quote computes the price breakdown. Discounts never take the total below zero.
func Quote(in QuoteInput) (PriceBreakdown, error) {
	if in.Quantity <= 0 {
		return PriceBreakdown{}, ErrInvalidQuantity
	}

	if in.UnitPrice.IsNegative() || in.InstallationPrice.IsNegative() {
		return PriceBreakdown{}, ErrInvalidArgument
	}

	err := in.Adjustment.Validate()
	if err != nil {
		return PriceBreakdown{}, err
	}

	if in.Adjustment.Kind == "" {
		in.Adjustment.Kind = AdjustmentNone
	}

	products := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(0)
	subtotal := products.Add(in.InstallationPrice).Round(0)

	amount := decimal.Zero

	if in.Adjustment.Kind != AdjustmentNone {
		amount = in.Adjustment.Value
		if in.Adjustment.Mode == AdjustmentPercent {
			amount = subtotal.Mul(in.Adjustment.Value).Div(hundred)
		}

		amount = amount.Round(0)
	}

	total := subtotal

	switch in.Adjustment.Kind {
	case AdjustmentDiscount:
		// Subtotal - AdjustmentAmount must stay equal to Total.
		amount = decimal.Min(amount, subtotal)
		total = subtotal.Sub(amount)
	case AdjustmentSurcharge:
		total = subtotal.Add(amount)
	}

	return PriceBreakdown{
		UnitPrice:         in.UnitPrice,
		Quantity:          in.Quantity,
		ProductsSubtotal:  products,
		InstallationPrice: in.InstallationPrice,
		Subtotal:          subtotal,
		Adjustment:        in.Adjustment,
		AdjustmentAmount:  amount,
		Total:             total,
	}, nil
}
