package recorder

import "time"

// AnalysisRecord holds the outcome of one VaR analysis run.
type AnalysisRecord struct {
	RunAt         time.Time
	Source        string
	Confidence    float64
	Observations  int
	MeanReturn    float64
	Volatility    float64
	HistoricalVaR float64
	ParametricVaR float64
}

// Recorder persists analysis history for later inspection.
type Recorder interface {
	RecordAnalysis(rec *AnalysisRecord) error
	Close() error
}
