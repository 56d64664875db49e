package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

var (
	half          = decimal.NewFromFloat(0.5)
	eightyFivePct = decimal.NewFromFloat(0.85)
)

// CalculateProvisionalIncome computes the income level the Social
// Security phase-in thresholds are tested against:
// non-SS income + 1/2 of the benefit.
func CalculateProvisionalIncome(otherIncome, ssBenefit decimal.Decimal) decimal.Decimal {
	return otherIncome.Add(ssBenefit.Mul(half))
}

// CalculateTaxableSocialSecurity determines the federally taxable
// portion of a Social Security benefit under the two-threshold
// phase-in:
//   - provisional income <= base threshold: nothing is taxable
//   - between the thresholds: lesser of 50% of the excess over the base
//     and 50% of the benefit
//   - above the upper threshold: lesser of 85% of the excess over the
//     upper threshold plus the capped 50%-tier amount, and 85% of the
//     benefit
//
// Because the taxable portion grows with provisional income inside the
// phase-in band, each extra dollar of other income drags additional
// benefit dollars into taxation. That is the hidden marginal bump the
// rate curve exists to show.
func CalculateTaxableSocialSecurity(ssBenefit, provisional decimal.Decimal, thresholds domain.SSThresholds) decimal.Decimal {
	if ssBenefit.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	if provisional.LessThanOrEqual(thresholds.Base) {
		return decimal.Zero
	}
	if provisional.LessThanOrEqual(thresholds.Upper) {
		fromExcess := provisional.Sub(thresholds.Base).Mul(half)
		fromBenefit := ssBenefit.Mul(half)
		return decimal.Min(fromExcess, fromBenefit)
	}
	// 50%-tier carry: half the inter-threshold span, capped at half the
	// benefit.
	carry := decimal.Min(thresholds.Upper.Sub(thresholds.Base).Mul(half), ssBenefit.Mul(half))
	fromExcess := provisional.Sub(thresholds.Upper).Mul(eightyFivePct).Add(carry)
	fromBenefit := ssBenefit.Mul(eightyFivePct)
	return decimal.Min(fromExcess, fromBenefit)
}
