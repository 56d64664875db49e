package output

import (
	"encoding/json"

	"github.com/mtax/tax-analyzer/internal/domain"
)

// JSONFormatter emits the full curve, annotation, and summary for
// downstream chart renderers.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(curve *domain.RateCurve) ([]byte, error) {
	return json.MarshalIndent(curve, "", "  ")
}
