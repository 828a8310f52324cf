package risk

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"RiskSentinel/internal/model"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNoReturns indicates an empty return series.
var ErrNoReturns = errors.New("empty return series")

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

func validate(returns []float64, confidence float64) error {
	if len(returns) == 0 {
		return ErrNoReturns
	}
	if confidence <= 0 || confidence >= 1 {
		return fmt.Errorf("confidence level must be in (0, 1) exclusive, got %v", confidence)
	}
	return nil
}

// HistoricalVaR estimates VaR by historical simulation: the empirical
// quantile of the return series at fraction 1-confidence, with linear
// interpolation between order statistics. No distributional assumption.
func HistoricalVaR(returns []float64, confidence float64) (float64, error) {
	if err := validate(returns, confidence); err != nil {
		return 0, err
	}
	sorted := append([]float64(nil), returns...)
	sort.Float64s(sorted)
	return quantile(sorted, 1-confidence), nil
}

// quantile interpolates linearly between order statistics of an ascending
// sorted series, position h = p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := p * float64(n-1)
	i := int(math.Floor(h))
	if i < 0 {
		return sorted[0]
	}
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

// ParametricVaR estimates VaR assuming normally distributed returns:
// mu + z*sigma, where z is the standard normal quantile at 1-confidence.
// Sigma here is the population standard deviation (divisor N); the
// volatility quoted in reports uses the sample convention instead, see
// Volatility.
func ParametricVaR(returns []float64, confidence float64) (float64, error) {
	if err := validate(returns, confidence); err != nil {
		return 0, err
	}
	mu := stat.Mean(returns, nil)
	sigma := stat.PopStdDev(returns, nil)
	z := stdNormal.Quantile(1 - confidence)
	return mu + z*sigma, nil
}

// Volatility is the sample standard deviation (divisor N-1) of the returns.
// A single-element series has no defined sample deviation and reports zero.
func Volatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil)
}

// Summary bundles everything one analysis pass computes from a return series.
type Summary struct {
	Confidence float64
	Mean       float64
	Volatility float64
	Results    model.RiskResults
}

// Compute runs both VaR methods over the return series. Recomputing with
// unchanged inputs yields identical output.
func Compute(returns []float64, confidence float64) (*Summary, error) {
	hist, err := HistoricalVaR(returns, confidence)
	if err != nil {
		return nil, fmt.Errorf("historical VaR: %w", err)
	}
	param, err := ParametricVaR(returns, confidence)
	if err != nil {
		return nil, fmt.Errorf("parametric VaR: %w", err)
	}
	return &Summary{
		Confidence: confidence,
		Mean:       stat.Mean(returns, nil),
		Volatility: Volatility(returns),
		Results: model.RiskResults{
			model.MethodHistorical: hist,
			model.MethodParametric: param,
		},
	}, nil
}
