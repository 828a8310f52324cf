package analyzer

import (
	"fmt"
	"log"
	"time"

	"RiskSentinel/internal/chart"
	"RiskSentinel/internal/loader"
	"RiskSentinel/internal/model"
	"RiskSentinel/internal/recorder"
	"RiskSentinel/internal/report"
	"RiskSentinel/internal/risk"
)

// Analyzer runs the full pipeline: load returns, compute both VaR
// estimates, format the report, record the run and render the chart.
// Data flows explicitly between stages; there is no hidden state carried
// across method calls.
type Analyzer struct {
	Loader     *loader.Loader
	Confidence float64
	Recorder   recorder.Recorder
	ChartPath  string // empty disables chart output
}

// Outcome is the result of one analysis run.
type Outcome struct {
	Returns    []float64
	Results    model.RiskResults
	Mean       float64
	Volatility float64
	Report     string
}

// New creates an Analyzer.
func New(l *loader.Loader, confidence float64, rec recorder.Recorder, chartPath string) *Analyzer {
	return &Analyzer{Loader: l, Confidence: confidence, Recorder: rec, ChartPath: chartPath}
}

// Run executes one analysis pass. Any failure of load, computation, report
// or chart is terminal for the run; recording failures are logged only.
func (a *Analyzer) Run() (*Outcome, error) {
	returns, err := a.Loader.Load()
	if err != nil {
		return nil, err
	}

	summary, err := risk.Compute(returns, a.Confidence)
	if err != nil {
		return nil, err
	}

	text, err := report.Format(a.Confidence, summary.Volatility, summary.Results)
	if err != nil {
		return nil, err
	}

	if err := a.Recorder.RecordAnalysis(&recorder.AnalysisRecord{
		RunAt:         time.Now(),
		Source:        a.Loader.Source.Name(),
		Confidence:    a.Confidence,
		Observations:  len(returns),
		MeanReturn:    summary.Mean,
		Volatility:    summary.Volatility,
		HistoricalVaR: summary.Results[model.MethodHistorical],
		ParametricVaR: summary.Results[model.MethodParametric],
	}); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}

	if a.ChartPath != "" {
		if err := chart.Render(returns, summary.Results, a.ChartPath); err != nil {
			return nil, fmt.Errorf("render chart: %w", err)
		}
		log.Printf("[INFO] chart written to %s", a.ChartPath)
	}

	return &Outcome{
		Returns:    returns,
		Results:    summary.Results,
		Mean:       summary.Mean,
		Volatility: summary.Volatility,
		Report:     text,
	}, nil
}
