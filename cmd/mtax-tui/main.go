package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtax/tax-analyzer/internal/calculation"
	"github.com/mtax/tax-analyzer/internal/config"
	"github.com/mtax/tax-analyzer/internal/tui"
)

func main() {
	policyPath := flag.String("policy", "", "policy table override YAML file")
	flag.Parse()

	// Optional profile file as the first positional argument
	profilePath := flag.Arg(0)
	if profilePath != "" {
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			fmt.Printf("Error: profile file not found: %s\n", profilePath)
			os.Exit(1)
		}
	}

	parser := config.NewInputParser()
	table, err := parser.LoadPolicyOrDefault(*policyPath)
	if err != nil {
		fmt.Printf("Error loading policy table: %v\n", err)
		os.Exit(1)
	}
	calc, err := calculation.NewTaxYearCalculator(table)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	model := tui.NewModel(calc, profilePath)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
