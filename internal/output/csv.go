package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// CSVFormatter writes one row per sample with the component columns
// needed for a stacked-area rendering elsewhere.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(curve *domain.RateCurve) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Income", "MarginalRate", "Ordinary", "LTCG", "SocialSecurity", "SeniorPhaseOut", "NIIT"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range curve.Samples {
		row := []string{
			s.Income.StringFixed(2),
			s.Rate.StringFixed(4),
			s.Components.Ordinary.StringFixed(4),
			s.Components.CapitalGains.StringFixed(4),
			s.Components.SocialSecurity.StringFixed(4),
			s.Components.SeniorPhaseOut.StringFixed(4),
			s.Components.NIIT.StringFixed(4),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
