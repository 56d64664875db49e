package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxBracket is one rung of a bracket table. Bounds are dollar amounts
// of taxable income, Rate is a fraction (0.22, not 22).
type TaxBracket struct {
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// SSThresholds holds the two provisional-income levels that control the
// 0% / 50% / 85% Social Security taxability phase-in.
type SSThresholds struct {
	Base  decimal.Decimal `yaml:"base" json:"base"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
}

// IRMAATier pairs a Medicare IRMAA income threshold with the monthly
// Part B premium surcharge owed above it. Real law keys the lookup to
// MAGI from two years prior; the analyzer models it against current
// projected income.
type IRMAATier struct {
	Threshold        decimal.Decimal `yaml:"threshold" json:"threshold"`
	MonthlySurcharge decimal.Decimal `yaml:"monthly_surcharge" json:"monthly_surcharge"`
}

// StatusPolicy holds the parameters that differ by filing status.
type StatusPolicy struct {
	StandardDeduction   decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	SeniorDeduction     decimal.Decimal `yaml:"senior_deduction" json:"senior_deduction"` // per filer 65+
	SeniorPhaseOutStart decimal.Decimal `yaml:"senior_phase_out_start" json:"senior_phase_out_start"`
	OrdinaryBrackets    []TaxBracket    `yaml:"ordinary_brackets" json:"ordinary_brackets"`
	LTCGBrackets        []TaxBracket    `yaml:"ltcg_brackets" json:"ltcg_brackets"`
	SSThresholds        SSThresholds    `yaml:"ss_thresholds" json:"ss_thresholds"`
	NIITThreshold       decimal.Decimal `yaml:"niit_threshold" json:"niit_threshold"`
	IRMAATiers          []IRMAATier     `yaml:"irmaa_tiers" json:"irmaa_tiers"`
}

// PolicyTable is the full, immutable parameter set for one modeled tax
// year. It is loaded once at startup and never mutated; every compute
// call reads from the same table.
type PolicyTable struct {
	Year               int             `yaml:"year" json:"year"`
	Revision           string          `yaml:"revision" json:"revision"`
	NIITRate           decimal.Decimal `yaml:"niit_rate" json:"niit_rate"`
	SeniorPhaseOutRate decimal.Decimal `yaml:"senior_phase_out_rate" json:"senior_phase_out_rate"`
	Single             StatusPolicy    `yaml:"single" json:"single"`
	MarriedJoint       StatusPolicy    `yaml:"married_filing_jointly" json:"married_filing_jointly"`
}

// ForStatus returns the per-status parameters for a filing status.
func (pt *PolicyTable) ForStatus(fs FilingStatus) (*StatusPolicy, error) {
	switch fs {
	case FilingSingle:
		return &pt.Single, nil
	case FilingMarriedFilingJointly:
		return &pt.MarriedJoint, nil
	default:
		return nil, NewInvalidInputError("filing_status",
			fmt.Sprintf("unrecognized status %q", string(fs)))
	}
}

// Validate checks the table's structural invariants. A failure here is
// a programming or configuration defect and should abort startup, not
// be handled per request.
func (pt *PolicyTable) Validate() error {
	if pt.NIITRate.IsNegative() || pt.NIITRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("niit_rate must be a fraction in [0, 1), got %s", pt.NIITRate)
	}
	if pt.SeniorPhaseOutRate.IsNegative() || pt.SeniorPhaseOutRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("senior_phase_out_rate must be a fraction in [0, 1), got %s", pt.SeniorPhaseOutRate)
	}
	if err := pt.Single.validate(); err != nil {
		return fmt.Errorf("single: %w", err)
	}
	if err := pt.MarriedJoint.validate(); err != nil {
		return fmt.Errorf("married_filing_jointly: %w", err)
	}
	return nil
}

func (sp *StatusPolicy) validate() error {
	if sp.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard_deduction must be non-negative")
	}
	if sp.SeniorDeduction.IsNegative() {
		return fmt.Errorf("senior_deduction must be non-negative")
	}
	if err := validateBrackets("ordinary_brackets", sp.OrdinaryBrackets); err != nil {
		return err
	}
	if err := validateBrackets("ltcg_brackets", sp.LTCGBrackets); err != nil {
		return err
	}
	if !sp.SSThresholds.Base.LessThan(sp.SSThresholds.Upper) {
		return fmt.Errorf("ss_thresholds: base (%s) must be below upper (%s)",
			sp.SSThresholds.Base, sp.SSThresholds.Upper)
	}
	if sp.NIITThreshold.IsNegative() {
		return fmt.Errorf("niit_threshold must be non-negative")
	}
	return validateIRMAATiers(sp.IRMAATiers)
}

// validateBrackets checks that a bracket table covers [0, inf) with no
// gaps or overlaps and that bounds and rates both rise.
func validateBrackets(name string, brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s: at least one bracket is required", name)
	}
	if !brackets[0].Lower.IsZero() {
		return fmt.Errorf("%s: first bracket must start at 0, got %s", name, brackets[0].Lower)
	}
	for i, b := range brackets {
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%s[%d]: upper bound %s must exceed lower bound %s", name, i, b.Upper, b.Lower)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s[%d]: rate must be a fraction in [0, 1), got %s", name, i, b.Rate)
		}
		if i > 0 {
			if !b.Lower.Equal(brackets[i-1].Upper) {
				return fmt.Errorf("%s[%d]: lower bound %s leaves a gap after %s", name, i, b.Lower, brackets[i-1].Upper)
			}
			if b.Rate.LessThan(brackets[i-1].Rate) {
				return fmt.Errorf("%s[%d]: rate %s falls below previous rate %s", name, i, b.Rate, brackets[i-1].Rate)
			}
		}
	}
	return nil
}

func validateIRMAATiers(tiers []IRMAATier) error {
	for i, tier := range tiers {
		if tier.Threshold.IsNegative() {
			return fmt.Errorf("irmaa_tiers[%d]: threshold must be non-negative", i)
		}
		if tier.MonthlySurcharge.IsNegative() {
			return fmt.Errorf("irmaa_tiers[%d]: monthly surcharge must be non-negative", i)
		}
		if i > 0 {
			if !tier.Threshold.GreaterThan(tiers[i-1].Threshold) {
				return fmt.Errorf("irmaa_tiers[%d]: threshold %s must exceed previous threshold %s",
					i, tier.Threshold, tiers[i-1].Threshold)
			}
			if !tier.MonthlySurcharge.GreaterThan(tiers[i-1].MonthlySurcharge) {
				return fmt.Errorf("irmaa_tiers[%d]: surcharge %s must exceed previous surcharge %s",
					i, tier.MonthlySurcharge, tiers[i-1].MonthlySurcharge)
			}
		}
	}
	return nil
}
