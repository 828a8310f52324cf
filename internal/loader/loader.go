package loader

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"

	"RiskSentinel/internal/source"
)

// ErrInsufficientData indicates too few price rows to derive any return.
var ErrInsufficientData = errors.New("insufficient data")

// LoadError wraps a failure to produce a usable return series from a source.
// Callers receive no partial state alongside it.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Source, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// Loader derives a daily log-return series from a price source.
type Loader struct {
	Source source.Source
}

// New creates a Loader over the given price source.
func New(src source.Source) *Loader {
	return &Loader{Source: src}
}

// Load fetches prices, sorts them ascending by date and derives log returns
// ln(close[t]/close[t-1]). The first row has no defined return and is
// dropped, so N+1 prices yield exactly N returns.
func (l *Loader) Load() ([]float64, error) {
	log.Printf("[INFO] loading price data from %s", l.Source.Name())

	prices, err := l.Source.Prices()
	if err != nil {
		return nil, &LoadError{Source: l.Source.Name(), Err: err}
	}
	if len(prices) < 2 {
		return nil, fmt.Errorf("%w: %d price row(s), need at least 2 to compute a return",
			ErrInsufficientData, len(prices))
	}

	for _, p := range prices {
		if p.Close <= 0 {
			return nil, &LoadError{
				Source: l.Source.Name(),
				Err: fmt.Errorf("non-positive close %v on %s: log return undefined",
					p.Close, p.Date.Format("2006-01-02")),
			}
		}
	}

	// Ascending by date; equal dates keep their input order.
	sort.SliceStable(prices, func(i, j int) bool { return prices[i].Date.Before(prices[j].Date) })

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, math.Log(prices[i].Close/prices[i-1].Close))
	}

	log.Printf("[INFO] data loaded: %d trading days, %d daily returns", len(prices), len(returns))
	return returns, nil
}
