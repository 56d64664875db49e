package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets: 2026 "OBBB" tables for both filing statuses, no
//    inflation indexing.
//
// 2. Senior deduction: claimed per filer 65+, phased out at 6 cents per
//    dollar of wages + LTCG above the status phase-out start.
//
// 3. Social Security: two-threshold provisional-income phase-in; the
//    taxable portion caps at 85% of the benefit.
//
// 4. LTCG: stacked on top of ordinary taxable income and taxed under
//    the separate gains bracket table.
//
// 5. NIIT: flat rate on wages + LTCG above the status threshold,
//    matching how the curve attributes the surtax to the swept dollar.

// TaxYearCalculator computes single-year federal liabilities from an
// injected, immutable policy table.
type TaxYearCalculator struct {
	Policy *domain.PolicyTable
}

// NewTaxYearCalculator validates the policy table once, up front. A
// malformed table is a startup defect, not a per-request condition.
func NewTaxYearCalculator(policy *domain.PolicyTable) (*TaxYearCalculator, error) {
	if policy == nil {
		return nil, fmt.Errorf("policy table is required")
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("policy table validation failed: %w", err)
	}
	return &TaxYearCalculator{Policy: policy}, nil
}

// TaxBreakdown is the liability detail for one income scenario.
type TaxBreakdown struct {
	OrdinaryTax           decimal.Decimal
	CapitalGainsTax       decimal.Decimal
	NIIT                  decimal.Decimal
	TaxableSocialSecurity decimal.Decimal
	SeniorDeductionUsed   decimal.Decimal
	TopOrdinaryRate       decimal.Decimal
	TopCapitalGainsRate   decimal.Decimal
}

// TotalTax sums the three liability pieces.
func (tb TaxBreakdown) TotalTax() decimal.Decimal {
	return tb.OrdinaryTax.Add(tb.CapitalGainsTax).Add(tb.NIIT)
}

// TaxDetails computes the full liability breakdown for one scenario.
// Pure function of its arguments and the policy table.
func (tc *TaxYearCalculator) TaxDetails(wages, ltcg, ss decimal.Decimal, status domain.FilingStatus, seniors int) (TaxBreakdown, error) {
	sp, err := tc.Policy.ForStatus(status)
	if err != nil {
		return TaxBreakdown{}, err
	}

	seniorDed := tc.seniorDeductionUsed(wages, ltcg, sp, seniors)
	deduction := sp.StandardDeduction.Add(seniorDed)

	provisional := CalculateProvisionalIncome(wages.Add(ltcg), ss)
	taxableSS := CalculateTaxableSocialSecurity(ss, provisional, sp.SSThresholds)

	// Ordinary income fills the bracket table first.
	taxableOrdinary := wages.Add(taxableSS).Sub(deduction)
	if taxableOrdinary.IsNegative() {
		taxableOrdinary = decimal.Zero
	}
	ordinaryTax, topOrdinaryRate := taxAcrossBrackets(taxableOrdinary, sp.OrdinaryBrackets)

	// LTCG stacks on top of ordinary taxable income: the gains portion
	// occupies [taxableOrdinary, taxableOrdinary+gains) of the gains
	// bracket table.
	taxableTotal := wages.Add(taxableSS).Add(ltcg).Sub(deduction)
	if taxableTotal.IsNegative() {
		taxableTotal = decimal.Zero
	}
	gainsPortion := taxableTotal.Sub(taxableOrdinary)
	if gainsPortion.IsNegative() {
		gainsPortion = decimal.Zero
	}
	gainsTax, topGainsRate := stackedGainsTax(taxableOrdinary, gainsPortion, sp.LTCGBrackets)

	niit := decimal.Zero
	investmentBase := wages.Add(ltcg).Sub(sp.NIITThreshold)
	if investmentBase.IsPositive() {
		niit = investmentBase.Mul(tc.Policy.NIITRate)
	}

	return TaxBreakdown{
		OrdinaryTax:           ordinaryTax,
		CapitalGainsTax:       gainsTax,
		NIIT:                  niit,
		TaxableSocialSecurity: taxableSS,
		SeniorDeductionUsed:   seniorDed,
		TopOrdinaryRate:       topOrdinaryRate,
		TopCapitalGainsRate:   topGainsRate,
	}, nil
}

// seniorDeductionUsed returns the senior deduction after the phase-out.
// Joint filers with one senior spouse claim it once, not doubled.
func (tc *TaxYearCalculator) seniorDeductionUsed(wages, ltcg decimal.Decimal, sp *domain.StatusPolicy, seniors int) decimal.Decimal {
	if seniors <= 0 {
		return decimal.Zero
	}
	full := sp.SeniorDeduction.Mul(decimal.NewFromInt(int64(seniors)))
	phaseOut := wages.Add(ltcg).Sub(sp.SeniorPhaseOutStart).Mul(tc.Policy.SeniorPhaseOutRate)
	if phaseOut.IsNegative() {
		phaseOut = decimal.Zero
	}
	used := full.Sub(phaseOut)
	if used.IsNegative() {
		used = decimal.Zero
	}
	return used
}

// taxAcrossBrackets walks a bracket table and returns the tax owed on
// the taxable amount plus the marginal rate of the topmost bracket
// reached. Zero taxable income reaches no bracket.
func taxAcrossBrackets(taxable decimal.Decimal, brackets []domain.TaxBracket) (decimal.Decimal, decimal.Decimal) {
	tax := decimal.Zero
	topRate := decimal.Zero
	for _, b := range brackets {
		if !taxable.GreaterThan(b.Lower) {
			break
		}
		inBracket := decimal.Min(taxable, b.Upper).Sub(b.Lower)
		tax = tax.Add(inBracket.Mul(b.Rate))
		topRate = b.Rate
	}
	return tax, topRate
}

// stackedGainsTax taxes a gains portion sitting on top of ordinary
// taxable income, using each gains bracket's overlap with
// [ordinary, ordinary+portion).
func stackedGainsTax(ordinary, portion decimal.Decimal, brackets []domain.TaxBracket) (decimal.Decimal, decimal.Decimal) {
	tax := decimal.Zero
	topRate := decimal.Zero
	top := ordinary.Add(portion)
	for _, b := range brackets {
		overlap := decimal.Min(top, b.Upper).Sub(decimal.Max(ordinary, b.Lower))
		if overlap.IsPositive() {
			tax = tax.Add(overlap.Mul(b.Rate))
		}
		if top.GreaterThan(b.Lower) {
			topRate = b.Rate
		}
	}
	return tax, topRate
}
