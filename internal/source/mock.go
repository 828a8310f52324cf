package source

import "RiskSentinel/internal/model"

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	Points []model.PricePoint
	Err    error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) Prices() ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Points, nil
}
