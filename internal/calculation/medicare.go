package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// CurrentIRMAASurcharge returns the monthly Part B surcharge owed at an
// income level: the surcharge of the highest tier whose threshold the
// income exceeds, or zero below every tier.
func CurrentIRMAASurcharge(tiers []domain.IRMAATier, income decimal.Decimal) decimal.Decimal {
	surcharge := decimal.Zero
	for _, tier := range tiers {
		if income.GreaterThan(tier.Threshold) {
			surcharge = tier.MonthlySurcharge
		} else {
			break // tiers are ordered; stop at first threshold not exceeded
		}
	}
	return surcharge
}

// NextIRMAATier locates the smallest tier threshold strictly greater
// than the income level. Returns nil when the income already sits at or
// above every tier.
func NextIRMAATier(tiers []domain.IRMAATier, income decimal.Decimal) *domain.IRMAATier {
	for i := range tiers {
		if tiers[i].Threshold.GreaterThan(income) {
			return &tiers[i]
		}
	}
	return nil
}

// irmaaAnnotation builds the vertical-marker annotation for the next
// IRMAA threshold above the current income, if it falls inside the
// sweep range (closed containment). The surcharge delta is the premium
// step relative to the tier already in effect.
func irmaaAnnotation(tiers []domain.IRMAATier, currentIncome decimal.Decimal, sweep domain.IncomeRange) *domain.IrmaaAnnotation {
	next := NextIRMAATier(tiers, currentIncome)
	if next == nil || !sweep.Contains(next.Threshold) {
		return nil
	}
	return &domain.IrmaaAnnotation{
		ThresholdIncome:       next.Threshold,
		MonthlySurchargeDelta: next.MonthlySurcharge.Sub(CurrentIRMAASurcharge(tiers, currentIncome)),
	}
}
