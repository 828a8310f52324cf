package analyzer

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"RiskSentinel/internal/loader"
	"RiskSentinel/internal/model"
	"RiskSentinel/internal/recorder"
	"RiskSentinel/internal/source"
)

func referencePoints() []model.PricePoint {
	closes := []float64{100, 101, 99, 102, 98}
	points := make([]model.PricePoint, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		points[i] = model.PricePoint{Date: base.AddDate(0, 0, i), Close: c}
	}
	return points
}

type failingRecorder struct{}

func (failingRecorder) RecordAnalysis(_ *recorder.AnalysisRecord) error {
	return errors.New("db gone")
}
func (failingRecorder) Close() error { return nil }

type capturingRecorder struct {
	last *recorder.AnalysisRecord
}

func (c *capturingRecorder) RecordAnalysis(rec *recorder.AnalysisRecord) error {
	c.last = rec
	return nil
}
func (c *capturingRecorder) Close() error { return nil }

func TestRun_EndToEnd(t *testing.T) {
	captured := &capturingRecorder{}
	a := New(loader.New(&source.MockSource{Points: referencePoints()}), 0.95, captured, "")

	outcome, err := a.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcome.Returns) != 4 {
		t.Errorf("expected 4 returns, got %d", len(outcome.Returns))
	}
	if got := outcome.Results[model.MethodHistorical]; math.Abs(got-(-0.0370046344)) > 1e-9 {
		t.Errorf("historical VaR = %.10f, want -0.0370046344", got)
	}
	if got := outcome.Results[model.MethodParametric]; math.Abs(got-(-0.0492527679)) > 1e-9 {
		t.Errorf("parametric VaR = %.10f, want -0.0492527679", got)
	}
	if !strings.Contains(outcome.Report, "Confidence Level: 95.0%") {
		t.Errorf("report does not echo confidence:\n%s", outcome.Report)
	}
	if captured.last == nil {
		t.Fatal("analysis was not recorded")
	}
	if captured.last.Observations != 4 || captured.last.Source != "mock" {
		t.Errorf("recorded %+v", captured.last)
	}
}

func TestRun_WritesChartWhenConfigured(t *testing.T) {
	out := filepath.Join(t.TempDir(), "var.png")
	a := New(loader.New(&source.MockSource{Points: referencePoints()}), 0.95, recorder.NewNoopRecorder(), out)
	if _, err := a.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("chart file not written: %v", err)
	}
}

func TestRun_LoadFailurePropagates(t *testing.T) {
	a := New(loader.New(&source.MockSource{Err: errors.New("boom")}), 0.95, recorder.NewNoopRecorder(), "")
	_, err := a.Run()
	var le *loader.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *loader.LoadError, got %v", err)
	}
}

func TestRun_InsufficientDataPropagates(t *testing.T) {
	points := referencePoints()[:1]
	a := New(loader.New(&source.MockSource{Points: points}), 0.95, recorder.NewNoopRecorder(), "")
	if _, err := a.Run(); !errors.Is(err, loader.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestRun_RecorderFailureIsNotFatal(t *testing.T) {
	a := New(loader.New(&source.MockSource{Points: referencePoints()}), 0.95, failingRecorder{}, "")
	if _, err := a.Run(); err != nil {
		t.Fatalf("recorder failure should not fail the run: %v", err)
	}
}
