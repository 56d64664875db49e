package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// Formatter renders a computed rate curve in one output format.
type Formatter interface {
	Name() string
	Format(curve *domain.RateCurve) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil
// for an unsupported format.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{}
	case "html":
		return HTMLFormatter{}
	case "chart":
		return ChartFormatter{}
	default:
		return nil
	}
}

// FormatNames lists the supported formats for CLI help text.
func FormatNames() []string {
	return []string{"console", "csv", "json", "html", "chart"}
}

// ConsoleFormatter writes the summary metrics and the bracket-step
// table: one row per income band over which the total marginal rate is
// constant.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(curve *domain.RateCurve) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintf(buf, "2026 MARGINAL TAX ANALYSIS - %s\n", curve.Profile.FilingStatus.Label())
	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "CURRENT INCOME SUMMARY")
	fmt.Fprintln(buf, "----------------------")
	fmt.Fprintf(buf, "Ordinary Wages:         %s\n", FormatCurrency(curve.Profile.OrdinaryWages))
	fmt.Fprintf(buf, "Long-Term Cap Gains:    %s\n", FormatCurrency(curve.Profile.LTCG))
	fmt.Fprintf(buf, "Social Security:        %s\n", FormatCurrency(curve.Profile.SocialSecurity))
	fmt.Fprintf(buf, "Total Tax Liability:    %s\n", FormatCurrency(curve.Summary.TotalTax))
	fmt.Fprintf(buf, "Effective Tax Rate:     %s\n", FormatPercentage(asPercent(curve.Summary.EffectiveRate)))
	fmt.Fprintf(buf, "Taxable Social Security: %s\n", FormatCurrency(curve.Summary.TaxableSocialSecurity))
	fmt.Fprintf(buf, "Standard Deduction:     %s\n", FormatCurrency(curve.Summary.StandardDeduction))
	fmt.Fprintf(buf, "Senior Deduction Used:  %s\n", FormatCurrency(curve.Summary.SeniorDeductionUsed))
	fmt.Fprintf(buf, "Ordinary Marginal Rate: %s\n", FormatPercentage(asPercent(curve.Summary.OrdinaryMarginalRate)))
	fmt.Fprintf(buf, "LTCG Marginal Rate:     %s\n", FormatPercentage(asPercent(curve.Summary.CapitalGainsMarginalRate)))
	fmt.Fprintf(buf, "LTCG Effective Rate:    %s\n", FormatPercentage(asPercent(curve.Summary.CapitalGainsEffectiveRate)))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "MARGINAL RATE BANDS (next dollar of wages)")
	fmt.Fprintln(buf, "------------------------------------------")
	fmt.Fprintf(buf, "%-28s %8s %8s %8s %8s %8s %8s\n",
		"Income Band", "Total", "Ord", "LTCG", "SS", "Senior", "NIIT")
	for _, band := range RateBands(curve.Samples) {
		fmt.Fprintf(buf, "%-28s %8s %8s %8s %8s %8s %8s\n",
			fmt.Sprintf("%s – %s", FormatCurrencyWhole(band.From), FormatCurrencyWhole(band.To)),
			FormatPercentage(asPercent(band.Components.Total())),
			FormatPercentage(asPercent(band.Components.Ordinary)),
			FormatPercentage(asPercent(band.Components.CapitalGains)),
			FormatPercentage(asPercent(band.Components.SocialSecurity)),
			FormatPercentage(asPercent(band.Components.SeniorPhaseOut)),
			FormatPercentage(asPercent(band.Components.NIIT)))
	}
	fmt.Fprintln(buf)

	if curve.Irmaa != nil {
		fmt.Fprintf(buf, "NEXT IRMAA THRESHOLD: %s (+%s/month Part B premium)\n",
			FormatCurrencyWhole(curve.Irmaa.ThresholdIncome),
			FormatCurrency(curve.Irmaa.MonthlySurchargeDelta))
	} else if curve.Profile.ShowIRMAA {
		fmt.Fprintln(buf, "NEXT IRMAA THRESHOLD: none within the displayed range")
	}

	return buf.Bytes(), nil
}

// RateBand is a run of consecutive samples sharing one marginal rate.
type RateBand struct {
	From       decimal.Decimal
	To         decimal.Decimal
	Components domain.RateComponents
}

// rateStepTolerance separates real bracket steps from sub-cent noise
// in the finite-difference samples.
var rateStepTolerance = decimal.NewFromFloat(0.001)

// RateBands collapses the sample sequence into bands of constant total
// rate, the console analogue of the chart's step labels.
func RateBands(samples []domain.RateSample) []RateBand {
	if len(samples) == 0 {
		return nil
	}
	bands := []RateBand{{
		From:       samples[0].Income,
		To:         samples[0].Income,
		Components: samples[0].Components,
	}}
	for _, s := range samples[1:] {
		last := &bands[len(bands)-1]
		if s.Rate.Sub(last.Components.Total()).Abs().GreaterThan(rateStepTolerance) {
			bands = append(bands, RateBand{From: s.Income, To: s.Income, Components: s.Components})
		} else {
			last.To = s.Income
		}
	}
	return bands
}

// asPercent converts a fraction to a percentage value.
func asPercent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(decimal.NewFromInt(100))
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatCurrencyWhole formats a decimal as whole-dollar currency with
// thousands separators.
func FormatCurrencyWhole(amount decimal.Decimal) string {
	s := amount.Round(0).StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := "$" + strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(1) + "%"
}
