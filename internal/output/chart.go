package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// ChartFormatter renders the curve as a terminal chart.
type ChartFormatter struct{}

func (ChartFormatter) Name() string { return "chart" }

func (ChartFormatter) Format(curve *domain.RateCurve) ([]byte, error) {
	return []byte(RenderChart(curve, defaultChartWidth, defaultChartHeight)), nil
}

const (
	defaultChartWidth  = 78
	defaultChartHeight = 16
	yAxisWidth         = 7 // space for "60.0% "
)

// chartMaxRate caps the y axis at 60%, wide enough for every stacked
// combination the 2026 tables can produce.
const chartMaxRate = 0.60

var (
	chartTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	chartAxisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	chartLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	chartMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	chartIrmaaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	chartLegendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// RenderChart draws the marginal rate curve with vertical markers for
// the current income and, when present, the next IRMAA threshold. Both
// the chart formatter and the TUI render through this.
func RenderChart(curve *domain.RateCurve, width, height int) string {
	if len(curve.Samples) == 0 {
		return chartAxisStyle.Render("No data to display")
	}
	if width <= yAxisWidth+10 {
		width = defaultChartWidth
	}
	if height < 6 {
		height = defaultChartHeight
	}
	gridWidth := width - yAxisWidth - 3

	// Rune grid plus a parallel style grid so markers and the curve can
	// carry different colors.
	grid := make([][]rune, height)
	styles := make([][]*lipgloss.Style, height)
	for i := range grid {
		grid[i] = make([]rune, gridWidth)
		styles[i] = make([]*lipgloss.Style, gridWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	span := curve.Sweep.Max.Sub(curve.Sweep.Min)
	toCol := func(income decimal.Decimal) int {
		if !span.IsPositive() {
			return 0
		}
		frac, _ := income.Sub(curve.Sweep.Min).Div(span).Float64()
		col := int(frac * float64(gridWidth-1))
		if col < 0 {
			col = 0
		}
		if col >= gridWidth {
			col = gridWidth - 1
		}
		return col
	}
	toRow := func(rate decimal.Decimal) int {
		frac, _ := rate.Float64()
		if frac < 0 {
			frac = 0
		}
		if frac > chartMaxRate {
			frac = chartMaxRate
		}
		row := height - 1 - int(frac/chartMaxRate*float64(height-1))
		if row < 0 {
			row = 0
		}
		if row >= height {
			row = height - 1
		}
		return row
	}

	// Vertical markers go in first so the curve draws over them.
	markCol := func(col int, ch rune, style *lipgloss.Style) {
		for row := 0; row < height; row++ {
			grid[row][col] = ch
			styles[row][col] = style
		}
	}
	markCol(toCol(curve.Profile.OrdinaryWages), '┊', &chartMarkerStyle)
	if curve.Irmaa != nil {
		markCol(toCol(curve.Irmaa.ThresholdIncome), '╎', &chartIrmaaStyle)
	}

	prevCol, prevRow := -1, -1
	for _, s := range curve.Samples {
		col := toCol(s.Income)
		row := toRow(s.Rate)
		grid[row][col] = '●'
		styles[row][col] = &chartLineStyle
		if prevCol >= 0 {
			drawSegment(grid, styles, prevCol, prevRow, col, row)
		}
		prevCol, prevRow = col, row
	}

	var out strings.Builder
	out.WriteString(chartTitleStyle.Render("Marginal Rate vs. Ordinary Wages"))
	out.WriteString("\n\n")
	for row := 0; row < height; row++ {
		rate := chartMaxRate * float64(height-1-row) / float64(height-1)
		out.WriteString(chartAxisStyle.Render(fmt.Sprintf("%5.1f%%", rate*100)))
		out.WriteString(" │ ")
		for col := 0; col < gridWidth; col++ {
			ch := string(grid[row][col])
			if st := styles[row][col]; st != nil {
				ch = st.Render(ch)
			}
			out.WriteString(ch)
		}
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", gridWidth))
	out.WriteString("\n")
	out.WriteString(strings.Repeat(" ", yAxisWidth+3))
	out.WriteString(chartAxisStyle.Render(xAxisLabels(curve.Sweep, gridWidth)))
	out.WriteString("\n\n")

	legend := fmt.Sprintf("┊ current income (%s)", FormatCurrencyWhole(curve.Profile.OrdinaryWages))
	if curve.Irmaa != nil {
		legend += fmt.Sprintf("   ╎ IRMAA %s (+%s/mo)",
			FormatCurrencyWhole(curve.Irmaa.ThresholdIncome),
			FormatCurrency(curve.Irmaa.MonthlySurchargeDelta))
	}
	out.WriteString(chartLegendStyle.Render(legend))
	out.WriteString("\n")
	return out.String()
}

// drawSegment connects two plotted points with Bresenham's algorithm,
// never overwriting markers already carrying the curve color.
func drawSegment(grid [][]rune, styles [][]*lipgloss.Style, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[0]) && grid[y][x] != '●' {
			grid[y][x] = '·'
			styles[y][x] = &chartLineStyle
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// xAxisLabels places min, mid, and max income labels under the axis.
func xAxisLabels(sweep domain.IncomeRange, gridWidth int) string {
	min := FormatCurrencyWhole(sweep.Min)
	mid := FormatCurrencyWhole(sweep.Min.Add(sweep.Max.Sub(sweep.Min).Div(decimal.NewFromInt(2))))
	max := FormatCurrencyWhole(sweep.Max)
	gap := gridWidth - len(min) - len(mid) - len(max)
	if gap < 2 {
		return min + "  " + max
	}
	left := gap / 2
	right := gap - left
	return min + strings.Repeat(" ", left) + mid + strings.Repeat(" ", right) + max
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
