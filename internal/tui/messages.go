package tui

import "github.com/mtax/tax-analyzer/internal/domain"

// Message types for the Bubble Tea update cycle

// ProfileLoadedMsg signals the initial profile has been read from disk.
type ProfileLoadedMsg struct {
	Profile *domain.IncomeProfile
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
