package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ProfileLoadedMsg:
		m.profile = *msg.Profile
		m.inputs[fieldWages].SetValue(msg.Profile.OrdinaryWages.StringFixed(0))
		m.inputs[fieldLTCG].SetValue(msg.Profile.LTCG.StringFixed(0))
		m.inputs[fieldSocialSecurity].SetValue(msg.Profile.SocialSecurity.StringFixed(0))
		m.recompute()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case " ", "enter":
		if m.toggleFocused() {
			return m, nil
		}
	}

	// Remaining keys edit the focused text field.
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.syncProfileFromForm()
		return m, cmd
	}
	return m, nil
}

// setFocus moves keyboard focus, blurring and focusing text inputs as
// needed.
func (m *Model) setFocus(target int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = target
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

// toggleFocused flips the focused toggle field and recomputes. Returns
// false when a text field has focus.
func (m *Model) toggleFocused() bool {
	switch m.focus {
	case fieldFilingStatus:
		if m.profile.FilingStatus == domain.FilingSingle {
			m.profile.FilingStatus = domain.FilingMarriedFilingJointly
		} else {
			m.profile.FilingStatus = domain.FilingSingle
			m.profile.IsSpouseSenior = false // spouse flag only applies to joint filers
		}
	case fieldUserSenior:
		m.profile.IsUserSenior = !m.profile.IsUserSenior
	case fieldSpouseSenior:
		if m.profile.FilingStatus != domain.FilingMarriedFilingJointly {
			return true
		}
		m.profile.IsSpouseSenior = !m.profile.IsSpouseSenior
	case fieldShowIRMAA:
		m.profile.ShowIRMAA = !m.profile.ShowIRMAA
	default:
		return false
	}
	m.recompute()
	return true
}
