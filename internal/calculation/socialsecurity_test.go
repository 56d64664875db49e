package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

func TestCalculateProvisionalIncome(t *testing.T) {
	got := CalculateProvisionalIncome(decimal.NewFromInt(30000), decimal.NewFromInt(10000))
	if !got.Equal(decimal.NewFromInt(35000)) {
		t.Errorf("provisional income = %s, want 35000", got)
	}
}

func TestCalculateTaxableSocialSecurity(t *testing.T) {
	// Joint thresholds: base 32,000 / upper 44,000.
	thresholds := domain.SSThresholds{
		Base:  decimal.NewFromInt(32000),
		Upper: decimal.NewFromInt(44000),
	}

	tests := []struct {
		name        string
		ssBenefit   decimal.Decimal
		otherIncome decimal.Decimal
		expected    decimal.Decimal
	}{
		{
			name:        "zero benefit",
			ssBenefit:   decimal.Zero,
			otherIncome: decimal.NewFromInt(100000),
			expected:    decimal.Zero,
		},
		{
			name:        "below base threshold",
			ssBenefit:   decimal.NewFromInt(20000),
			otherIncome: decimal.NewFromInt(20000),
			expected:    decimal.Zero,
		},
		{
			// Provisional = 30,000 + 5,000 = 35,000. Excess over base is
			// 3,000, half of which is 1,500 and under half the benefit.
			name:        "inside 50 percent band",
			ssBenefit:   decimal.NewFromInt(10000),
			otherIncome: decimal.NewFromInt(30000),
			expected:    decimal.NewFromInt(1500),
		},
		{
			// Provisional = 38,000 + 2,000 = 40,000. Half the 8,000
			// excess exceeds half the 6,000 benefit, so the benefit cap
			// binds.
			name:        "50 percent band capped by benefit",
			ssBenefit:   decimal.NewFromInt(6000),
			otherIncome: decimal.NewFromInt(38000),
			expected:    decimal.NewFromInt(3000),
		},
		{
			// Provisional = 60,000 + 10,000 = 70,000. Carry is
			// min(6,000, 10,000) = 6,000; 85% of the 26,000 excess plus
			// the carry is 28,100, above the 85% benefit cap of 17,000.
			name:        "above upper threshold capped at 85 percent",
			ssBenefit:   decimal.NewFromInt(20000),
			otherIncome: decimal.NewFromInt(60000),
			expected:    decimal.NewFromInt(17000),
		},
		{
			// Provisional = 34,000 + 20,000 = 54,000. Carry is
			// min(6,000, 20,000) = 6,000; 85% of the 10,000 excess plus
			// the carry is 14,500, under the 34,000 cap.
			name:        "above upper threshold uncapped",
			ssBenefit:   decimal.NewFromInt(40000),
			otherIncome: decimal.NewFromInt(34000),
			expected:    decimal.NewFromInt(14500),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provisional := CalculateProvisionalIncome(tt.otherIncome, tt.ssBenefit)
			got := CalculateTaxableSocialSecurity(tt.ssBenefit, provisional, thresholds)
			if !got.Equal(tt.expected) {
				t.Errorf("taxable portion = %s, want %s", got, tt.expected)
			}
		})
	}
}
