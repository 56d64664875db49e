package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	title := TitleStyle.Render("2026 Marginal Tax Analyzer")
	subtitle := SubtitleStyle.Render("what is my next dollar taxed at?")

	form := PanelStyle.Render(m.renderForm())
	metrics := PanelStyle.Render(m.renderMetrics())
	top := lipgloss.JoinHorizontal(lipgloss.Top, form, " ", metrics)

	var chart string
	if m.curve != nil {
		chartWidth := m.width - 8
		if chartWidth > 100 {
			chartWidth = 100
		}
		chart = output.RenderChart(m.curve, chartWidth, 14)
	}

	var errLine string
	if m.err != nil {
		errLine = ErrorStyle.Render(m.err.Error())
	}

	status := StatusBarStyle.Render("tab/↑↓ move · space toggle · esc quit")

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		top,
		"",
		chart,
		errLine,
		status,
	))
}

func (m Model) renderForm() string {
	var b strings.Builder

	label := func(field int, text string) string {
		if m.focus == field {
			return FocusedLabelStyle.Render("> " + text)
		}
		return FieldLabelStyle.Render("  " + text)
	}
	toggle := func(on bool) string {
		if on {
			return ToggleOnStyle.Render("[x]")
		}
		return ToggleOffStyle.Render("[ ]")
	}

	b.WriteString(label(fieldWages, "Ordinary Wages ($)"))
	b.WriteString(m.inputs[fieldWages].View())
	b.WriteString("\n")
	b.WriteString(label(fieldLTCG, "Long-Term Cap Gains ($)"))
	b.WriteString(m.inputs[fieldLTCG].View())
	b.WriteString("\n")
	b.WriteString(label(fieldSocialSecurity, "Annual Social Security ($)"))
	b.WriteString(m.inputs[fieldSocialSecurity].View())
	b.WriteString("\n")
	b.WriteString(label(fieldFilingStatus, "Filing Status"))
	b.WriteString(m.profile.FilingStatus.Label())
	b.WriteString("\n")
	b.WriteString(label(fieldUserSenior, "Is 65 or Older?"))
	b.WriteString(toggle(m.profile.IsUserSenior))
	b.WriteString("\n")
	b.WriteString(label(fieldSpouseSenior, "Spouse 65 or Older?"))
	b.WriteString(toggle(m.profile.IsSpouseSenior))
	b.WriteString("\n")
	b.WriteString(label(fieldShowIRMAA, "Show IRMAA Threshold"))
	b.WriteString(toggle(m.profile.ShowIRMAA))

	return b.String()
}

func (m Model) renderMetrics() string {
	if m.curve == nil {
		return SubtitleStyle.Render("enter a profile to compute")
	}
	s := m.curve.Summary

	var b strings.Builder
	row := func(name string, value string) {
		b.WriteString(MetricLabelStyle.Render(name))
		b.WriteString(MetricValueStyle.Render(value))
		b.WriteString("\n")
	}
	pct := func(fraction decimal.Decimal) string {
		return output.FormatPercentage(fraction.Mul(decimal.NewFromInt(100)))
	}

	row("Total Tax Liability", output.FormatCurrencyWhole(s.TotalTax))
	row("Effective Tax Rate", pct(s.EffectiveRate))
	row("Taxable Social Security", output.FormatCurrencyWhole(s.TaxableSocialSecurity))
	row("Standard Deduction", output.FormatCurrencyWhole(s.StandardDeduction))
	row("Senior Deduction Used", output.FormatCurrencyWhole(s.SeniorDeductionUsed))
	row("Ordinary Marginal Rate", pct(s.OrdinaryMarginalRate))
	row("LTCG Marginal Rate", pct(s.CapitalGainsMarginalRate))
	row("LTCG Effective Rate", pct(s.CapitalGainsEffectiveRate))
	if m.curve.Irmaa != nil {
		row("Next IRMAA Threshold", fmt.Sprintf("%s (+%s/mo)",
			output.FormatCurrencyWhole(m.curve.Irmaa.ThresholdIncome),
			output.FormatCurrency(m.curve.Irmaa.MonthlySurchargeDelta)))
	}
	return strings.TrimRight(b.String(), "\n")
}
