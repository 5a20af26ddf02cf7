package pricing

import (
	"errors"
	"strings"

	"linguaquote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrModifierReasonRequired = errors.New("enabled modifier requires a reason")
	ErrModifierValueInvalid   = errors.New("enabled modifier requires a positive value and a valid type")
	ErrDiscountExceedsTotal   = errors.New("discount exceeds the adjusted subtotal")
	ErrNegativeDeliveryFee    = errors.New("delivery fee must not be negative")
	ErrNegativeTaxRate        = errors.New("tax rate must not be negative")
	ErrNegativeLineTotal      = errors.New("line total must not be negative")
)

// TotalsInput combines all document line totals with the order-level
// modifiers.
type TotalsInput struct {
	LineTotals  []decimal.Decimal
	Turnaround  string
	DeliveryFee decimal.Decimal
	Discount    entities.QuoteModifier
	Surcharge   entities.QuoteModifier
	TaxRate     decimal.Decimal
}

// TotalsResult is the full order-level breakdown. Subtotal, TaxAmount and
// Total satisfy total == subtotal + tax_amount exactly.
type TotalsResult struct {
	BaseSubtotal    decimal.Decimal `json:"base_subtotal"`
	RushFee         decimal.Decimal `json:"rush_fee"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	SurchargeAmount decimal.Decimal `json:"surcharge_amount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	Total           decimal.Decimal `json:"total"`
}

var percentBase = decimal.NewFromInt(100)

// AggregateTotals applies the order-level modifiers in their fixed,
// non-commutative order:
//
//  1. base_subtotal = sum(line totals)
//  2. rush fee (percentage of base_subtotal, or fixed)
//  3. adjusted = base_subtotal + rush_fee + delivery_fee
//  4. discount against adjusted (never against a post-surcharge figure)
//  5. surcharge against the same adjusted base
//  6. subtotal = adjusted - discount + surcharge
//  7. tax = subtotal * tax_rate
//  8. total = subtotal + tax
//
// An enabled discount or surcharge missing its reason or value is rejected,
// never silently zeroed. Pure function: identical input always yields an
// identical result.
func AggregateTotals(cfg RateConfig, in TotalsInput) (TotalsResult, error) {
	if in.DeliveryFee.IsNegative() {
		return TotalsResult{}, ErrNegativeDeliveryFee
	}
	if in.TaxRate.IsNegative() {
		return TotalsResult{}, ErrNegativeTaxRate
	}

	base := decimal.Zero
	for _, lt := range in.LineTotals {
		if lt.IsNegative() {
			return TotalsResult{}, ErrNegativeLineTotal
		}
		base = base.Add(lt)
	}

	turnaround, err := cfg.Turnaround(in.Turnaround)
	if err != nil {
		return TotalsResult{}, err
	}
	rushFee := decimal.Zero
	if turnaround.FeeValue.IsPositive() {
		switch turnaround.FeeType {
		case entities.FeeTypePercentage:
			rushFee = base.Mul(turnaround.FeeValue).Div(percentBase)
		case entities.FeeTypeFixed:
			rushFee = turnaround.FeeValue
		}
	}

	adjusted := base.Add(rushFee).Add(in.DeliveryFee)

	discount, err := modifierAmount(in.Discount, adjusted)
	if err != nil {
		return TotalsResult{}, err
	}
	surcharge, err := modifierAmount(in.Surcharge, adjusted)
	if err != nil {
		return TotalsResult{}, err
	}

	subtotal := adjusted.Sub(discount).Add(surcharge)
	if subtotal.IsNegative() {
		return TotalsResult{}, ErrDiscountExceedsTotal
	}

	taxAmount := subtotal.Mul(in.TaxRate)

	return TotalsResult{
		BaseSubtotal:    base,
		RushFee:         rushFee,
		DeliveryFee:     in.DeliveryFee,
		DiscountAmount:  discount,
		SurchargeAmount: surcharge,
		Subtotal:        subtotal,
		TaxAmount:       taxAmount,
		Total:           subtotal.Add(taxAmount),
	}, nil
}

// modifierAmount resolves an order-level discount/surcharge against the
// pre-adjustment base. Disabled modifiers contribute zero.
func modifierAmount(m entities.QuoteModifier, adjusted decimal.Decimal) (decimal.Decimal, error) {
	if !m.Enabled {
		return decimal.Zero, nil
	}
	if strings.TrimSpace(m.Reason) == "" {
		return decimal.Zero, ErrModifierReasonRequired
	}
	if !m.Value.IsPositive() || !m.Type.Valid() {
		return decimal.Zero, ErrModifierValueInvalid
	}
	if m.Type == entities.FeeTypePercentage {
		return adjusted.Mul(m.Value).Div(percentBase), nil
	}
	return m.Value, nil
}
