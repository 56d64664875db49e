package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIncomeProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile IncomeProfile
		wantErr bool
	}{
		{
			name: "valid single",
			profile: IncomeProfile{
				FilingStatus:  FilingSingle,
				OrdinaryWages: decimal.NewFromInt(50000),
			},
			wantErr: false,
		},
		{
			name: "valid joint with benefits",
			profile: IncomeProfile{
				FilingStatus:   FilingMarriedFilingJointly,
				OrdinaryWages:  decimal.NewFromInt(40000),
				LTCG:           decimal.NewFromInt(20000),
				SocialSecurity: decimal.NewFromInt(30000),
			},
			wantErr: false,
		},
		{
			name: "zero everything is valid",
			profile: IncomeProfile{
				FilingStatus: FilingSingle,
			},
			wantErr: false,
		},
		{
			name: "negative wages",
			profile: IncomeProfile{
				FilingStatus:  FilingSingle,
				OrdinaryWages: decimal.NewFromInt(-1),
			},
			wantErr: true,
		},
		{
			name: "negative ltcg",
			profile: IncomeProfile{
				FilingStatus: FilingSingle,
				LTCG:         decimal.NewFromInt(-500),
			},
			wantErr: true,
		},
		{
			name: "negative social security",
			profile: IncomeProfile{
				FilingStatus:   FilingMarriedFilingJointly,
				SocialSecurity: decimal.NewFromInt(-1),
			},
			wantErr: true,
		},
		{
			name: "unrecognized filing status",
			profile: IncomeProfile{
				FilingStatus: "head_of_household",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected error to wrap ErrInvalidInput, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSeniorCount(t *testing.T) {
	tests := []struct {
		name     string
		profile  IncomeProfile
		expected int
	}{
		{"no seniors", IncomeProfile{FilingStatus: FilingMarriedFilingJointly}, 0},
		{"user only", IncomeProfile{FilingStatus: FilingSingle, IsUserSenior: true}, 1},
		{"joint both seniors", IncomeProfile{FilingStatus: FilingMarriedFilingJointly, IsUserSenior: true, IsSpouseSenior: true}, 2},
		{"joint spouse only", IncomeProfile{FilingStatus: FilingMarriedFilingJointly, IsSpouseSenior: true}, 1},
		// The spouse flag is ignored for single filers rather than rejected.
		{"single with spouse flag set", IncomeProfile{FilingStatus: FilingSingle, IsUserSenior: true, IsSpouseSenior: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.SeniorCount(); got != tt.expected {
				t.Errorf("SeniorCount() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTotalIncome(t *testing.T) {
	p := IncomeProfile{
		FilingStatus:   FilingMarriedFilingJointly,
		OrdinaryWages:  decimal.NewFromInt(32200),
		LTCG:           decimal.NewFromInt(20000),
		SocialSecurity: decimal.NewFromInt(40000),
	}
	if !p.TotalIncome().Equal(decimal.NewFromInt(92200)) {
		t.Errorf("TotalIncome() = %s, want 92200", p.TotalIncome())
	}
}
