package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/calculation"
	"github.com/mtax/tax-analyzer/internal/config"
	"github.com/mtax/tax-analyzer/internal/domain"
)

// Form field indexes, in focus order.
const (
	fieldWages = iota
	fieldLTCG
	fieldSocialSecurity
	fieldFilingStatus
	fieldUserSenior
	fieldSpouseSenior
	fieldShowIRMAA
	fieldCount
)

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Form state
	inputs  [3]textinput.Model // wages, ltcg, social security
	profile domain.IncomeProfile
	focus   int

	// Calculation
	calc  *calculation.TaxYearCalculator
	curve *domain.RateCurve

	// Optional profile file read at startup
	profilePath string

	// Error state
	err error
}

// NewModel creates a new application model
func NewModel(calc *calculation.TaxYearCalculator, profilePath string) Model {
	m := Model{
		calc:        calc,
		profilePath: profilePath,
		width:       100,
		height:      30,
		profile: domain.IncomeProfile{
			FilingStatus: domain.FilingMarriedFilingJointly,
			ShowIRMAA:    true,
		},
	}

	labels := []string{"32200", "20000", "40000"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 12
		ti.Width = 14
		ti.SetValue(labels[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldWages].Focus()
	m.syncProfileFromForm()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.profilePath != "" {
		cmds = append(cmds, loadProfileCmd(m.profilePath))
	}
	return tea.Batch(cmds...)
}

// loadProfileCmd returns a command that loads the initial profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		profile, err := parser.LoadProfile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// syncProfileFromForm parses the text fields into the profile. A parse
// or validation failure leaves the previous curve on screen with the
// error shown inline.
func (m *Model) syncProfileFromForm() {
	fields := []struct {
		name  string
		index int
		dst   *decimal.Decimal
	}{
		{"ordinary_wages", fieldWages, &m.profile.OrdinaryWages},
		{"ltcg", fieldLTCG, &m.profile.LTCG},
		{"social_security_benefit", fieldSocialSecurity, &m.profile.SocialSecurity},
	}
	for _, f := range fields {
		raw := m.inputs[f.index].Value()
		if raw == "" {
			*f.dst = decimal.Zero
			continue
		}
		val, err := decimal.NewFromString(raw)
		if err != nil {
			m.err = domain.NewInvalidInputError(f.name, "must be a decimal dollar amount")
			return
		}
		*f.dst = val
	}
	m.recompute()
}

// recompute runs the calculator against the current form state. The
// computation is bounded and fast, so it runs inside Update rather
// than as an asynchronous command.
func (m *Model) recompute() {
	curve, err := m.calc.Compute(&m.profile, calculation.DefaultSweep(&m.profile))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.curve = curve
}
