package report

import (
	"fmt"
	"strings"

	"RiskSentinel/internal/model"
)

const banner = "========================================"

// Format renders the risk summary as a fixed-format text block. Both VaR
// methods must be present in results; a missing method is an error, never
// a defaulted value.
func Format(confidence, volatility float64, results model.RiskResults) (string, error) {
	hist, err := results.Get(model.MethodHistorical)
	if err != nil {
		return "", err
	}
	param, err := results.Get(model.MethodParametric)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("   MARKET RISK ANALYSIS REPORT\n")
	b.WriteString(banner + "\n")
	b.WriteString(fmt.Sprintf("Confidence Level: %.1f%%\n", confidence*100))
	b.WriteString(fmt.Sprintf("Volatility (Daily): %.4f\n", volatility))
	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("1. Historical VaR:   %.4f%%\n", hist*100))
	b.WriteString(fmt.Sprintf("2. Parametric VaR:   %.4f%%\n", param*100))
	b.WriteString(banner + "\n")
	b.WriteString("\nInterpretation:\n")
	b.WriteString(fmt.Sprintf("With %.1f%% confidence, the maximum expected daily loss\n", confidence*100))
	b.WriteString(fmt.Sprintf("will not exceed %.2f%% (Parametric model).\n", -param*100))
	return b.String(), nil
}
