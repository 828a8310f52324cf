package model

import "time"

// PricePoint is a single dated closing price. A price series is a slice of
// PricePoints sorted ascending by date after loading.
type PricePoint struct {
	Date  time.Time
	Close float64
}
