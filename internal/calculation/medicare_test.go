package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

func testTiers() []domain.IRMAATier {
	return []domain.IRMAATier{
		{Threshold: decimal.NewFromInt(109000), MonthlySurcharge: decimal.NewFromFloat(74.00)},
		{Threshold: decimal.NewFromInt(136000), MonthlySurcharge: decimal.NewFromFloat(185.00)},
		{Threshold: decimal.NewFromInt(170000), MonthlySurcharge: decimal.NewFromFloat(295.90)},
	}
}

func TestCurrentIRMAASurcharge(t *testing.T) {
	tiers := testTiers()

	tests := []struct {
		name     string
		income   decimal.Decimal
		expected decimal.Decimal
	}{
		{"below all tiers", decimal.NewFromInt(80000), decimal.Zero},
		{"exactly at first threshold", decimal.NewFromInt(109000), decimal.Zero},
		{"inside first tier", decimal.NewFromInt(120000), decimal.NewFromFloat(74.00)},
		{"above top tier", decimal.NewFromInt(500000), decimal.NewFromFloat(295.90)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentIRMAASurcharge(tiers, tt.income)
			if !got.Equal(tt.expected) {
				t.Errorf("surcharge = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestNextIRMAATier(t *testing.T) {
	tiers := testTiers()

	next := NextIRMAATier(tiers, decimal.NewFromInt(100000))
	if next == nil || !next.Threshold.Equal(decimal.NewFromInt(109000)) {
		t.Fatalf("next tier = %v, want threshold 109000", next)
	}

	// Sitting exactly on a threshold points at the following tier.
	next = NextIRMAATier(tiers, decimal.NewFromInt(109000))
	if next == nil || !next.Threshold.Equal(decimal.NewFromInt(136000)) {
		t.Fatalf("next tier = %v, want threshold 136000", next)
	}

	if next = NextIRMAATier(tiers, decimal.NewFromInt(200000)); next != nil {
		t.Errorf("next tier above the top threshold = %v, want nil", next)
	}
}

func TestIrmaaAnnotation(t *testing.T) {
	tiers := testTiers()
	sweep := domain.IncomeRange{
		Min:    decimal.Zero,
		Max:    decimal.NewFromInt(200000),
		Points: 5,
	}

	ann := irmaaAnnotation(tiers, decimal.NewFromInt(100000), sweep)
	if ann == nil {
		t.Fatal("expected an annotation for income below the first tier")
	}
	if !ann.ThresholdIncome.Equal(decimal.NewFromInt(109000)) {
		t.Errorf("ThresholdIncome = %s, want 109000", ann.ThresholdIncome)
	}
	if !ann.MonthlySurchargeDelta.Equal(decimal.NewFromFloat(74.00)) {
		t.Errorf("MonthlySurchargeDelta = %s, want 74.00", ann.MonthlySurchargeDelta)
	}

	// Delta is the step from the tier already in effect.
	ann = irmaaAnnotation(tiers, decimal.NewFromInt(120000), sweep)
	if ann == nil {
		t.Fatal("expected an annotation inside the first tier")
	}
	if !ann.MonthlySurchargeDelta.Equal(decimal.NewFromFloat(111.00)) {
		t.Errorf("MonthlySurchargeDelta = %s, want 111.00", ann.MonthlySurchargeDelta)
	}

	// No annotation above every tier.
	if ann = irmaaAnnotation(tiers, decimal.NewFromInt(300000), sweep); ann != nil {
		t.Errorf("annotation above the top tier = %v, want nil", ann)
	}

	// No annotation when the next threshold falls outside the sweep.
	narrow := domain.IncomeRange{
		Min:    decimal.Zero,
		Max:    decimal.NewFromInt(105000),
		Points: 5,
	}
	if ann = irmaaAnnotation(tiers, decimal.NewFromInt(100000), narrow); ann != nil {
		t.Errorf("annotation outside the sweep = %v, want nil", ann)
	}
}
