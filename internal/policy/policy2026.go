// Package policy carries the embedded tax-parameter tables the analyzer
// ships with. Tables are process-wide constants; callers that need
// different numbers load an override file instead of mutating these.
package policy

import (
	"github.com/shopspring/decimal"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// noUpperLimit stands in for the open top bracket bound.
var noUpperLimit = decimal.NewFromInt(9_000_000_000)

// Default2026 returns the 2026 "OBBB" parameter table.
func Default2026() *domain.PolicyTable {
	return &domain.PolicyTable{
		Year:               2026,
		Revision:           "2026 OBBB",
		NIITRate:           decimal.NewFromFloat(0.038),
		SeniorPhaseOutRate: decimal.NewFromFloat(0.06),
		Single: domain.StatusPolicy{
			StandardDeduction:   decimal.NewFromInt(16100),
			SeniorDeduction:     decimal.NewFromInt(6500), // per filer 65+
			SeniorPhaseOutStart: decimal.NewFromInt(75000),
			OrdinaryBrackets: []domain.TaxBracket{
				{Lower: decimal.Zero, Upper: decimal.NewFromInt(12400), Rate: decimal.NewFromFloat(0.10)},
				{Lower: decimal.NewFromInt(12400), Upper: decimal.NewFromInt(50400), Rate: decimal.NewFromFloat(0.12)},
				{Lower: decimal.NewFromInt(50400), Upper: decimal.NewFromInt(105700), Rate: decimal.NewFromFloat(0.22)},
				{Lower: decimal.NewFromInt(105700), Upper: decimal.NewFromInt(201775), Rate: decimal.NewFromFloat(0.24)},
				{Lower: decimal.NewFromInt(201775), Upper: decimal.NewFromInt(256225), Rate: decimal.NewFromFloat(0.32)},
				{Lower: decimal.NewFromInt(256225), Upper: decimal.NewFromInt(640600), Rate: decimal.NewFromFloat(0.35)},
				{Lower: decimal.NewFromInt(640600), Upper: noUpperLimit, Rate: decimal.NewFromFloat(0.37)},
			},
			LTCGBrackets: []domain.TaxBracket{
				{Lower: decimal.Zero, Upper: decimal.NewFromInt(49450), Rate: decimal.Zero},
				{Lower: decimal.NewFromInt(49450), Upper: decimal.NewFromInt(545500), Rate: decimal.NewFromFloat(0.15)},
				{Lower: decimal.NewFromInt(545500), Upper: noUpperLimit, Rate: decimal.NewFromFloat(0.20)},
			},
			SSThresholds: domain.SSThresholds{
				Base:  decimal.NewFromInt(25000),
				Upper: decimal.NewFromInt(34000),
			},
			NIITThreshold: decimal.NewFromInt(200000),
			IRMAATiers: []domain.IRMAATier{
				{Threshold: decimal.NewFromInt(109000), MonthlySurcharge: decimal.NewFromFloat(74.00)},
				{Threshold: decimal.NewFromInt(136000), MonthlySurcharge: decimal.NewFromFloat(185.00)},
				{Threshold: decimal.NewFromInt(170000), MonthlySurcharge: decimal.NewFromFloat(295.90)},
				{Threshold: decimal.NewFromInt(204000), MonthlySurcharge: decimal.NewFromFloat(406.90)},
				{Threshold: decimal.NewFromInt(500000), MonthlySurcharge: decimal.NewFromFloat(443.90)},
			},
		},
		MarriedJoint: domain.StatusPolicy{
			StandardDeduction:   decimal.NewFromInt(32200),
			SeniorDeduction:     decimal.NewFromInt(6500), // per filer 65+
			SeniorPhaseOutStart: decimal.NewFromInt(150000),
			OrdinaryBrackets: []domain.TaxBracket{
				{Lower: decimal.Zero, Upper: decimal.NewFromInt(24800), Rate: decimal.NewFromFloat(0.10)},
				{Lower: decimal.NewFromInt(24800), Upper: decimal.NewFromInt(100800), Rate: decimal.NewFromFloat(0.12)},
				{Lower: decimal.NewFromInt(100800), Upper: decimal.NewFromInt(211400), Rate: decimal.NewFromFloat(0.22)},
				{Lower: decimal.NewFromInt(211400), Upper: decimal.NewFromInt(403550), Rate: decimal.NewFromFloat(0.24)},
				{Lower: decimal.NewFromInt(403550), Upper: decimal.NewFromInt(512450), Rate: decimal.NewFromFloat(0.32)},
				{Lower: decimal.NewFromInt(512450), Upper: decimal.NewFromInt(768700), Rate: decimal.NewFromFloat(0.35)},
				{Lower: decimal.NewFromInt(768700), Upper: noUpperLimit, Rate: decimal.NewFromFloat(0.37)},
			},
			LTCGBrackets: []domain.TaxBracket{
				{Lower: decimal.Zero, Upper: decimal.NewFromInt(98900), Rate: decimal.Zero},
				{Lower: decimal.NewFromInt(98900), Upper: decimal.NewFromInt(613700), Rate: decimal.NewFromFloat(0.15)},
				{Lower: decimal.NewFromInt(613700), Upper: noUpperLimit, Rate: decimal.NewFromFloat(0.20)},
			},
			SSThresholds: domain.SSThresholds{
				Base:  decimal.NewFromInt(32000),
				Upper: decimal.NewFromInt(44000),
			},
			NIITThreshold: decimal.NewFromInt(250000),
			IRMAATiers: []domain.IRMAATier{
				{Threshold: decimal.NewFromInt(218000), MonthlySurcharge: decimal.NewFromFloat(74.00)},
				{Threshold: decimal.NewFromInt(272000), MonthlySurcharge: decimal.NewFromFloat(185.00)},
				{Threshold: decimal.NewFromInt(340000), MonthlySurcharge: decimal.NewFromFloat(295.90)},
				{Threshold: decimal.NewFromInt(408000), MonthlySurcharge: decimal.NewFromFloat(406.90)},
				{Threshold: decimal.NewFromInt(750000), MonthlySurcharge: decimal.NewFromFloat(443.90)},
			},
		},
	}
}

// MustDefault2026 returns the validated 2026 table, panicking on a
// defect in the embedded data.
func MustDefault2026() *domain.PolicyTable {
	table := Default2026()
	if err := table.Validate(); err != nil {
		panic("embedded 2026 policy table is invalid: " + err.Error())
	}
	return table
}
