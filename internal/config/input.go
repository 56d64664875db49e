package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mtax/tax-analyzer/internal/domain"
	"github.com/mtax/tax-analyzer/internal/policy"
)

// InputParser handles parsing of profile and policy override files.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadProfile loads an income profile from a YAML file and validates
// it. Validation failures surface as InvalidInputError; there is no
// retry, the caller re-collects input.
func (ip *InputParser) LoadProfile(filename string) (*domain.IncomeProfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.IncomeProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	return &profile, nil
}

// LoadPolicy loads a policy table override from a YAML file. The file
// replaces the embedded table wholesale; a table that fails its
// structural invariants is rejected here, before any request runs.
func (ip *InputParser) LoadPolicy(filename string) (*domain.PolicyTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var table domain.PolicyTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("policy table validation failed: %w", err)
	}
	return &table, nil
}

// LoadPolicyOrDefault returns the embedded 2026 table when no override
// file is named.
func (ip *InputParser) LoadPolicyOrDefault(filename string) (*domain.PolicyTable, error) {
	if filename == "" {
		return policy.MustDefault2026(), nil
	}
	return ip.LoadPolicy(filename)
}
