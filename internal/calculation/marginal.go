package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// The curve sweeps ordinary wages only: LTCG, the Social Security
// benefit, and senior status stay fixed at the profile's values while
// the wage axis varies. "Current income" is the profile's position on
// that axis.

const defaultSweepPoints = 800

var (
	marginalStep     = decimal.NewFromInt(1) // one more dollar
	sweepFloorIncome = decimal.NewFromInt(150000)
	two              = decimal.NewFromInt(2)
)

// DefaultSweep returns the display range the chart uses when the caller
// does not supply one: zero through twice the profile's total income,
// with a floor so low-income profiles still show the full bracket
// ladder.
func DefaultSweep(profile *domain.IncomeProfile) domain.IncomeRange {
	max := profile.TotalIncome().Mul(two)
	if max.LessThan(sweepFloorIncome) {
		max = sweepFloorIncome
	}
	return domain.IncomeRange{Min: decimal.Zero, Max: max, Points: defaultSweepPoints}
}

// Compute produces the marginal rate curve for a profile over a sweep
// range. Pure: no I/O, no mutation of the policy table, identical
// inputs produce identical output.
func (tc *TaxYearCalculator) Compute(profile *domain.IncomeProfile, sweep domain.IncomeRange) (*domain.RateCurve, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := sweep.Validate(); err != nil {
		return nil, err
	}
	if !sweep.Contains(profile.OrdinaryWages) {
		return nil, domain.NewInvalidInputError("sweep",
			"range must contain the profile's current income")
	}
	sp, err := tc.Policy.ForStatus(profile.FilingStatus)
	if err != nil {
		return nil, err
	}

	seniors := profile.SeniorCount()
	step := sweep.Max.Sub(sweep.Min).Div(decimal.NewFromInt(int64(sweep.Points - 1)))

	samples := make([]domain.RateSample, 0, sweep.Points)
	for i := 0; i < sweep.Points; i++ {
		x := sweep.Min.Add(step.Mul(decimal.NewFromInt(int64(i))))
		sample, err := tc.marginalAt(x, profile, seniors)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	summary, err := tc.summarize(profile, seniors, sp)
	if err != nil {
		return nil, err
	}

	var annotation *domain.IrmaaAnnotation
	if profile.ShowIRMAA {
		annotation = irmaaAnnotation(sp.IRMAATiers, profile.OrdinaryWages, sweep)
	}

	return &domain.RateCurve{
		Profile: *profile,
		Sweep:   sweep,
		Samples: samples,
		Irmaa:   annotation,
		Summary: summary,
	}, nil
}

// marginalAt evaluates the liability at x and x + $1 and splits the
// difference into its sources. The NIIT, gains, Social Security, and
// senior phase-out pieces come from their own deltas; the ordinary
// bracket rate is the floored remainder so components always sum to
// the sample's total.
func (tc *TaxYearCalculator) marginalAt(x decimal.Decimal, profile *domain.IncomeProfile, seniors int) (domain.RateSample, error) {
	at, err := tc.TaxDetails(x, profile.LTCG, profile.SocialSecurity, profile.FilingStatus, seniors)
	if err != nil {
		return domain.RateSample{}, err
	}
	next, err := tc.TaxDetails(x.Add(marginalStep), profile.LTCG, profile.SocialSecurity, profile.FilingStatus, seniors)
	if err != nil {
		return domain.RateSample{}, err
	}

	total := next.TotalTax().Sub(at.TotalTax())
	niit := next.NIIT.Sub(at.NIIT)
	gains := next.CapitalGainsTax.Sub(at.CapitalGainsTax)
	// Each extra taxable benefit dollar is taxed at the ordinary
	// bracket rate; each phased-out deduction dollar costs the same.
	ssPhaseIn := next.TaxableSocialSecurity.Sub(at.TaxableSocialSecurity).Mul(at.TopOrdinaryRate)
	seniorPhaseOut := at.SeniorDeductionUsed.Sub(next.SeniorDeductionUsed).Mul(at.TopOrdinaryRate)

	ordinary := total.Sub(niit).Sub(gains).Sub(ssPhaseIn).Sub(seniorPhaseOut)
	if ordinary.IsNegative() {
		ordinary = decimal.Zero
	}

	components := domain.RateComponents{
		Ordinary:       ordinary,
		CapitalGains:   gains,
		SocialSecurity: ssPhaseIn,
		SeniorPhaseOut: seniorPhaseOut,
		NIIT:           niit,
	}
	return domain.RateSample{
		Income:     x,
		Rate:       components.Total(),
		Components: components,
	}, nil
}

// summarize computes the current-income scalars for the sidebar.
func (tc *TaxYearCalculator) summarize(profile *domain.IncomeProfile, seniors int, sp *domain.StatusPolicy) (domain.CurveSummary, error) {
	details, err := tc.TaxDetails(profile.OrdinaryWages, profile.LTCG, profile.SocialSecurity, profile.FilingStatus, seniors)
	if err != nil {
		return domain.CurveSummary{}, err
	}

	totalTax := details.TotalTax()
	effective := decimal.Zero
	if totalIncome := profile.TotalIncome(); totalIncome.IsPositive() {
		effective = totalTax.Div(totalIncome)
	}
	gainsEffective := decimal.Zero
	if profile.LTCG.IsPositive() {
		gainsEffective = details.CapitalGainsTax.Add(details.NIIT).Div(profile.LTCG)
	}

	return domain.CurveSummary{
		TotalTax:                  totalTax,
		EffectiveRate:             effective,
		TaxableSocialSecurity:     details.TaxableSocialSecurity,
		StandardDeduction:         sp.StandardDeduction,
		SeniorDeductionUsed:       details.SeniorDeductionUsed,
		OrdinaryMarginalRate:      details.TopOrdinaryRate,
		CapitalGainsMarginalRate:  details.TopCapitalGainsRate,
		CapitalGainsEffectiveRate: gainsEffective,
	}, nil
}
