package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies the federal filing status for a tax year.
// Only the two statuses the analyzer models are recognized.
type FilingStatus string

const (
	FilingSingle               FilingStatus = "single"
	FilingMarriedFilingJointly FilingStatus = "married_filing_jointly"
)

// Valid reports whether the status is one of the recognized values.
func (fs FilingStatus) Valid() bool {
	return fs == FilingSingle || fs == FilingMarriedFilingJointly
}

// Label returns a human-readable form for reports and the TUI.
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingSingle:
		return "Single"
	case FilingMarriedFilingJointly:
		return "Married Filing Jointly"
	default:
		return string(fs)
	}
}

// IncomeProfile is one form submission: the income and demographic
// inputs a single render of the rate curve is computed from. It is
// constructed fresh per submission and never persisted.
type IncomeProfile struct {
	FilingStatus   FilingStatus    `yaml:"filing_status" json:"filing_status"`
	OrdinaryWages  decimal.Decimal `yaml:"ordinary_wages" json:"ordinary_wages"`
	LTCG           decimal.Decimal `yaml:"ltcg" json:"ltcg"`
	SocialSecurity decimal.Decimal `yaml:"social_security_benefit" json:"social_security_benefit"`
	IsUserSenior   bool            `yaml:"is_user_senior" json:"is_user_senior"`
	IsSpouseSenior bool            `yaml:"is_spouse_senior" json:"is_spouse_senior"`
	ShowIRMAA      bool            `yaml:"show_irmaa" json:"show_irmaa"`
}

// Validate checks the profile against the input constraints. All
// monetary amounts must be non-negative; the filing status must be one
// of the recognized values.
func (p *IncomeProfile) Validate() error {
	if !p.FilingStatus.Valid() {
		return NewInvalidInputError("filing_status",
			fmt.Sprintf("unrecognized status %q", string(p.FilingStatus)))
	}
	for _, amt := range []struct {
		field string
		value decimal.Decimal
	}{
		{"ordinary_wages", p.OrdinaryWages},
		{"ltcg", p.LTCG},
		{"social_security_benefit", p.SocialSecurity},
	} {
		if amt.value.IsNegative() {
			return NewInvalidInputError(amt.field, "must be non-negative")
		}
	}
	return nil
}

// TotalIncome returns wages + LTCG + Social Security benefit.
func (p *IncomeProfile) TotalIncome() decimal.Decimal {
	return p.OrdinaryWages.Add(p.LTCG).Add(p.SocialSecurity)
}

// SeniorCount returns how many 65+ filers the profile claims. The
// spouse flag only counts for joint filers.
func (p *IncomeProfile) SeniorCount() int {
	count := 0
	if p.IsUserSenior {
		count++
	}
	if p.IsSpouseSenior && p.FilingStatus == FilingMarriedFilingJointly {
		count++
	}
	return count
}
