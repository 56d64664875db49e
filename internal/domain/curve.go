package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeRange describes the swept income axis of one render: Points
// evenly spaced samples from Min to Max inclusive.
type IncomeRange struct {
	Min    decimal.Decimal `yaml:"min" json:"min"`
	Max    decimal.Decimal `yaml:"max" json:"max"`
	Points int             `yaml:"points" json:"points"`
}

// Validate checks the sweep constraints.
func (r IncomeRange) Validate() error {
	if r.Min.IsNegative() {
		return NewInvalidInputError("sweep.min", "must be non-negative")
	}
	if r.Max.LessThan(r.Min) {
		return NewInvalidInputError("sweep.max", "must not be below sweep.min")
	}
	if r.Points < 2 {
		return NewInvalidInputError("sweep.points", "at least two sample points are required")
	}
	return nil
}

// Contains reports closed-range containment of an income level.
func (r IncomeRange) Contains(x decimal.Decimal) bool {
	return x.GreaterThanOrEqual(r.Min) && x.LessThanOrEqual(r.Max)
}

// RateComponents breaks a marginal rate down by source. All values are
// fractions; they sum to the sample's total rate.
type RateComponents struct {
	Ordinary       decimal.Decimal `json:"ordinary"`
	CapitalGains   decimal.Decimal `json:"capital_gains"`
	SocialSecurity decimal.Decimal `json:"social_security"`
	SeniorPhaseOut decimal.Decimal `json:"senior_phase_out"`
	NIIT           decimal.Decimal `json:"niit"`
}

// Total sums the component rates.
func (rc RateComponents) Total() decimal.Decimal {
	return rc.Ordinary.
		Add(rc.CapitalGains).
		Add(rc.SocialSecurity).
		Add(rc.SeniorPhaseOut).
		Add(rc.NIIT)
}

// RateSample is one point on the marginal rate curve: the tax owed on
// the next dollar at a given income level, with its composition.
type RateSample struct {
	Income     decimal.Decimal `json:"income"`
	Rate       decimal.Decimal `json:"rate"`
	Components RateComponents  `json:"components"`
}

// IrmaaAnnotation marks the next IRMAA threshold above the profile's
// current income. IRMAA is a step premium, not a rate, so it is drawn
// as a vertical marker rather than folded into the curve.
type IrmaaAnnotation struct {
	ThresholdIncome decimal.Decimal `json:"threshold_income"`
	// MonthlySurchargeDelta is the additional monthly Part B premium
	// owed once the threshold is crossed.
	MonthlySurchargeDelta decimal.Decimal `json:"monthly_surcharge_delta"`
}

// CurveSummary carries the current-income scalars shown alongside the
// curve.
type CurveSummary struct {
	TotalTax                  decimal.Decimal `json:"total_tax"`
	EffectiveRate             decimal.Decimal `json:"effective_rate"`
	TaxableSocialSecurity     decimal.Decimal `json:"taxable_social_security"`
	StandardDeduction         decimal.Decimal `json:"standard_deduction"`
	SeniorDeductionUsed       decimal.Decimal `json:"senior_deduction_used"`
	OrdinaryMarginalRate      decimal.Decimal `json:"ordinary_marginal_rate"`
	CapitalGainsMarginalRate  decimal.Decimal `json:"capital_gains_marginal_rate"`
	CapitalGainsEffectiveRate decimal.Decimal `json:"capital_gains_effective_rate"`
}

// RateCurve is the complete output of one render: the sampled curve,
// the optional IRMAA marker, and the current-income summary.
type RateCurve struct {
	Profile IncomeProfile    `json:"profile"`
	Sweep   IncomeRange      `json:"sweep"`
	Samples []RateSample     `json:"samples"`
	Irmaa   *IrmaaAnnotation `json:"irmaa,omitempty"`
	Summary CurveSummary     `json:"summary"`
}
