package loader

import (
	"errors"
	"math"
	"testing"
	"time"

	"RiskSentinel/internal/model"
	"RiskSentinel/internal/source"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func pricesOf(closes ...float64) []model.PricePoint {
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Date: day(i), Close: c}
	}
	return points
}

func TestLoad_ReturnCount(t *testing.T) {
	l := New(&source.MockSource{Points: pricesOf(100, 101, 99, 102, 98)})
	returns, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(returns) != 4 {
		t.Fatalf("expected 4 returns from 5 prices, got %d", len(returns))
	}
	want := []float64{
		math.Log(101.0 / 100.0),
		math.Log(99.0 / 101.0),
		math.Log(102.0 / 99.0),
		math.Log(98.0 / 102.0),
	}
	for i, w := range want {
		if math.Abs(returns[i]-w) > 1e-15 {
			t.Errorf("returns[%d] = %v, want %v", i, returns[i], w)
		}
	}
}

func TestLoad_SortsByDate(t *testing.T) {
	// Same prices as above but supplied out of order.
	points := []model.PricePoint{
		{Date: day(2), Close: 99},
		{Date: day(0), Close: 100},
		{Date: day(4), Close: 98},
		{Date: day(1), Close: 101},
		{Date: day(3), Close: 102},
	}
	l := New(&source.MockSource{Points: points})
	returns, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(returns[0]-math.Log(101.0/100.0)) > 1e-15 {
		t.Errorf("returns[0] = %v, series was not sorted by date", returns[0])
	}
}

func TestLoad_StableOnEqualDates(t *testing.T) {
	points := []model.PricePoint{
		{Date: day(0), Close: 100},
		{Date: day(1), Close: 101},
		{Date: day(1), Close: 102}, // same date, must stay after the 101 row
		{Date: day(2), Close: 103},
	}
	l := New(&source.MockSource{Points: points})
	returns, err := l.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{
		math.Log(101.0 / 100.0),
		math.Log(102.0 / 101.0),
		math.Log(103.0 / 102.0),
	}
	for i, w := range want {
		if math.Abs(returns[i]-w) > 1e-15 {
			t.Errorf("returns[%d] = %v, want %v", i, returns[i], w)
		}
	}
}

func TestLoad_InsufficientData(t *testing.T) {
	for _, closes := range [][]float64{{}, {100}} {
		l := New(&source.MockSource{Points: pricesOf(closes...)})
		_, err := l.Load()
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%d price(s): expected ErrInsufficientData, got %v", len(closes), err)
		}
	}
}

func TestLoad_SourceFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	l := New(&source.MockSource{Err: cause})
	_, err := l.Load()
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("LoadError does not wrap the underlying cause")
	}
}

func TestLoad_NonPositiveClose(t *testing.T) {
	for _, bad := range []float64{0, -5} {
		l := New(&source.MockSource{Points: pricesOf(100, bad, 101)})
		_, err := l.Load()
		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("close %v: expected *LoadError, got %v", bad, err)
		}
	}
}
