package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
	"github.com/mtax/tax-analyzer/internal/policy"
)

func newTestCalculator(t *testing.T) *TaxYearCalculator {
	t.Helper()
	calc, err := NewTaxYearCalculator(policy.Default2026())
	if err != nil {
		t.Fatalf("failed to build calculator: %v", err)
	}
	return calc
}

func TestNewTaxYearCalculatorRejectsBadTable(t *testing.T) {
	if _, err := NewTaxYearCalculator(nil); err == nil {
		t.Error("expected error for nil policy table")
	}

	broken := policy.Default2026()
	broken.Single.OrdinaryBrackets[0].Lower = decimal.NewFromInt(5)
	if _, err := NewTaxYearCalculator(broken); err == nil {
		t.Error("expected error for malformed bracket table")
	}
}

func TestTaxDetailsOrdinaryOnly(t *testing.T) {
	calc := newTestCalculator(t)

	// Single, $50,000 wages: taxable = 50,000 - 16,100 = 33,900.
	// Tax = 12,400 * 10% + 21,500 * 12% = 1,240 + 2,580 = 3,820.
	details, err := calc.TaxDetails(
		decimal.NewFromInt(50000), decimal.Zero, decimal.Zero,
		domain.FilingSingle, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !details.OrdinaryTax.Equal(decimal.NewFromInt(3820)) {
		t.Errorf("OrdinaryTax = %s, want 3820", details.OrdinaryTax)
	}
	if !details.TopOrdinaryRate.Equal(decimal.NewFromFloat(0.12)) {
		t.Errorf("TopOrdinaryRate = %s, want 0.12", details.TopOrdinaryRate)
	}
	for name, v := range map[string]decimal.Decimal{
		"CapitalGainsTax":       details.CapitalGainsTax,
		"NIIT":                  details.NIIT,
		"TaxableSocialSecurity": details.TaxableSocialSecurity,
		"SeniorDeductionUsed":   details.SeniorDeductionUsed,
	} {
		if !v.IsZero() {
			t.Errorf("%s = %s, want 0", name, v)
		}
	}
}

func TestTaxDetailsBelowDeduction(t *testing.T) {
	calc := newTestCalculator(t)

	details, err := calc.TaxDetails(
		decimal.NewFromInt(10000), decimal.Zero, decimal.Zero,
		domain.FilingSingle, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !details.TotalTax().IsZero() {
		t.Errorf("TotalTax = %s, want 0 below the standard deduction", details.TotalTax())
	}
	if !details.TopOrdinaryRate.IsZero() {
		t.Errorf("TopOrdinaryRate = %s, want 0 when no bracket is reached", details.TopOrdinaryRate)
	}
}

func TestTaxDetailsLTCGStacking(t *testing.T) {
	calc := newTestCalculator(t)

	// Single, $50,000 wages + $20,000 gains. Ordinary taxable income is
	// 33,900, so gains occupy [33,900, 53,900): 15,550 in the 0% gains
	// bracket and 4,450 at 15% = 667.50.
	details, err := calc.TaxDetails(
		decimal.NewFromInt(50000), decimal.NewFromInt(20000), decimal.Zero,
		domain.FilingSingle, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !details.CapitalGainsTax.Equal(decimal.NewFromFloat(667.50)) {
		t.Errorf("CapitalGainsTax = %s, want 667.50", details.CapitalGainsTax)
	}
	if !details.TopCapitalGainsRate.Equal(decimal.NewFromFloat(0.15)) {
		t.Errorf("TopCapitalGainsRate = %s, want 0.15", details.TopCapitalGainsRate)
	}
}

func TestTaxDetailsNIIT(t *testing.T) {
	calc := newTestCalculator(t)

	// Single, $250,000 of wages + gains: 50,000 above the threshold at
	// 3.8% = 1,900.
	details, err := calc.TaxDetails(
		decimal.NewFromInt(230000), decimal.NewFromInt(20000), decimal.Zero,
		domain.FilingSingle, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !details.NIIT.Equal(decimal.NewFromInt(1900)) {
		t.Errorf("NIIT = %s, want 1900", details.NIIT)
	}

	// Below the threshold the surtax is zero.
	details, err = calc.TaxDetails(
		decimal.NewFromInt(150000), decimal.NewFromInt(20000), decimal.Zero,
		domain.FilingSingle, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !details.NIIT.IsZero() {
		t.Errorf("NIIT = %s, want 0 below the threshold", details.NIIT)
	}
}

func TestSeniorDeduction(t *testing.T) {
	calc := newTestCalculator(t)

	tests := []struct {
		name     string
		wages    int64
		status   domain.FilingStatus
		seniors  int
		expected decimal.Decimal
	}{
		{"no seniors", 40000, domain.FilingMarriedFilingJointly, 0, decimal.Zero},
		// Applied once for one senior spouse, not doubled.
		{"joint one senior", 40000, domain.FilingMarriedFilingJointly, 1, decimal.NewFromInt(6500)},
		{"joint both seniors", 40000, domain.FilingMarriedFilingJointly, 2, decimal.NewFromInt(13000)},
		{"single senior", 40000, domain.FilingSingle, 1, decimal.NewFromInt(6500)},
		// Joint phase-out starts at 150,000: 160,000 loses 600.
		{"joint phase-out", 160000, domain.FilingMarriedFilingJointly, 2, decimal.NewFromInt(12400)},
		// Far enough above the start the deduction is fully gone.
		{"joint fully phased out", 400000, domain.FilingMarriedFilingJointly, 2, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := calc.TaxDetails(
				decimal.NewFromInt(tt.wages), decimal.Zero, decimal.Zero,
				tt.status, tt.seniors)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !details.SeniorDeductionUsed.Equal(tt.expected) {
				t.Errorf("SeniorDeductionUsed = %s, want %s", details.SeniorDeductionUsed, tt.expected)
			}
		})
	}
}
