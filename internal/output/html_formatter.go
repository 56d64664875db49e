package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG
// rendering of the curve.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"whole": FormatCurrencyWhole,
	"pct":   func(d decimal.Decimal) string { return FormatPercentage(asPercent(d)) },
}).Parse(htmlTemplateSource))

const (
	svgWidth  = 800.0
	svgHeight = 400.0
	// The y axis tops out at 60%, matching the terminal chart.
	svgMaxRate = 0.60
)

type htmlChart struct {
	Width     float64
	Height    float64
	CurvePath string
	CurrentX  float64
	IrmaaX    float64
	HasIrmaa  bool
	GridLines []htmlGridLine
}

type htmlGridLine struct {
	Y     float64
	Label string
}

func (h HTMLFormatter) Format(curve *domain.RateCurve) ([]byte, error) {
	data := struct {
		*domain.RateCurve
		Chart htmlChart
		Bands []RateBand
	}{curve, buildHTMLChart(curve), RateBands(curve.Samples)}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildHTMLChart(curve *domain.RateCurve) htmlChart {
	chart := htmlChart{Width: svgWidth, Height: svgHeight}

	span := curve.Sweep.Max.Sub(curve.Sweep.Min)
	toX := func(income decimal.Decimal) float64 {
		if !span.IsPositive() {
			return 0
		}
		frac, _ := income.Sub(curve.Sweep.Min).Div(span).Float64()
		return frac * svgWidth
	}
	toY := func(rate decimal.Decimal) float64 {
		frac, _ := rate.Float64()
		if frac > svgMaxRate {
			frac = svgMaxRate
		}
		if frac < 0 {
			frac = 0
		}
		return svgHeight - frac/svgMaxRate*svgHeight
	}

	var path strings.Builder
	for i, s := range curve.Samples {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&path, "%s%.1f %.1f ", cmd, toX(s.Income), toY(s.Rate))
	}
	chart.CurvePath = path.String()
	chart.CurrentX = toX(curve.Profile.OrdinaryWages)
	if curve.Irmaa != nil {
		chart.HasIrmaa = true
		chart.IrmaaX = toX(curve.Irmaa.ThresholdIncome)
	}

	for _, rate := range []float64{0.10, 0.20, 0.30, 0.40, 0.50} {
		chart.GridLines = append(chart.GridLines, htmlGridLine{
			Y:     svgHeight - rate/svgMaxRate*svgHeight,
			Label: fmt.Sprintf("%.0f%%", rate*100),
		})
	}
	return chart
}
