package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CartLine is one priced line of a cart.
type CartLine struct {
	ItemID    uint
	UnitPrice decimal.Decimal
	Quantity  int
}

// Rates are the tax and earn percentages as fractions (0.05 == 5%).
type Rates struct {
	Tax  decimal.Decimal
	Earn decimal.Decimal
}

// DefaultRates is 5% tax and 5% of subtotal earned back as points.
var DefaultRates = Rates{
	Tax:  decimal.RequireFromString("0.05"),
	Earn: decimal.RequireFromString("0.05"),
}

// PricingResult keeps full precision; use Rounded for display.
type PricingResult struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"tax"`
	PointsRedeemed int64           `json:"usedPoints"`
	PointsEarned   int64           `json:"earnedPoints"`
	Total          decimal.Decimal `json:"total"`
}

// Rounded returns a copy with money fields rounded to two decimals.
func (p PricingResult) Rounded() PricingResult {
	p.Subtotal = p.Subtotal.Round(2)
	p.TaxAmount = p.TaxAmount.Round(2)
	p.Total = p.Total.Round(2)
	return p
}

// ComputePricing prices a cart. It is the single routine behind both the
// checkout preview and the authoritative server computation.
//
// Points redeem 1:1 against currency. The requested redemption is clamped to
// the member's balance and to the whole-unit part of subtotal+tax, so Total
// never drops below zero. Non-members redeem and earn nothing. Earned points
// are computed on the subtotal and are not reduced by a redemption.
func ComputePricing(lines []CartLine, requestedPoints int64, isMember bool, availablePoints int64, rates Rates) (PricingResult, error) {
	if requestedPoints < 0 || availablePoints < 0 {
		return PricingResult{}, fmt.Errorf("%w: points must not be negative", ErrInvalidInput)
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return PricingResult{}, fmt.Errorf("%w: quantity for item %d must be positive", ErrInvalidInput, line.ItemID)
		}
		if line.UnitPrice.IsNegative() {
			return PricingResult{}, fmt.Errorf("%w: price for item %d must not be negative", ErrInvalidInput, line.ItemID)
		}
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := subtotal.Mul(rates.Tax)
	gross := subtotal.Add(tax)

	var redeemed, earned int64
	if isMember {
		maxRedeemable := availablePoints
		if payable := gross.Floor().IntPart(); payable < maxRedeemable {
			maxRedeemable = payable
		}
		redeemed = min(requestedPoints, maxRedeemable)
		earned = subtotal.Mul(rates.Earn).Floor().IntPart()
	}

	return PricingResult{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		PointsRedeemed: redeemed,
		PointsEarned:   earned,
		Total:          gross.Sub(decimal.NewFromInt(redeemed)),
	}, nil
}
