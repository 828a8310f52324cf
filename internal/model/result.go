package model

import (
	"errors"
	"fmt"
)

// Method identifies a VaR estimation methodology.
type Method string

const (
	MethodHistorical Method = "Historical"
	MethodParametric Method = "Parametric"
)

// ErrMissingResult is returned when a VaR value is requested before the
// corresponding method has been computed.
var ErrMissingResult = errors.New("risk result missing")

// RiskResults maps a methodology to its VaR estimate, a negative or
// near-zero fraction expressing the expected loss at the configured
// confidence level. Recomputing a method overwrites its previous value.
type RiskResults map[Method]float64

// Get returns the VaR estimate for the given method, failing with
// ErrMissingResult when the method has not been computed.
func (r RiskResults) Get(m Method) (float64, error) {
	v, ok := r[m]
	if !ok {
		return 0, fmt.Errorf("%w: %s VaR not computed", ErrMissingResult, m)
	}
	return v, nil
}
