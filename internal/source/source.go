package source

import "RiskSentinel/internal/model"

// Source provides a dated closing-price series for analysis.
type Source interface {
	Prices() ([]model.PricePoint, error)
	Name() string
}
