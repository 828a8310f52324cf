package scheduler

import (
	"context"
	"fmt"
	"log"

	"RiskSentinel/internal/analyzer"
	"RiskSentinel/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs the VaR analysis on a cron schedule.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Notifier *notifier.TelegramNotifier // nil when Telegram is not configured
	Ctx      context.Context
}

// New creates a Scheduler.
func New(ctx context.Context, a *analyzer.Analyzer, tn *notifier.TelegramNotifier) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Notifier: tn,
		Ctx:      ctx,
	}
}

// Register schedules the periodic analysis task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runAnalysis); err != nil {
		return fmt.Errorf("register analysis task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the analysis immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.runAnalysis()
}

func (s *Scheduler) runAnalysis() {
	log.Println("[INFO] running scheduled VaR analysis")
	outcome, err := s.Analyzer.Run()
	if err != nil {
		log.Printf("[ERROR] scheduled analysis: %v", err)
		s.trySend(fmt.Sprintf("❌ VaR analysis failed: %v", err))
		return
	}
	s.trySend("<pre>" + outcome.Report + "</pre>")
}

func (s *Scheduler) trySend(msg string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, msg, 3); err != nil {
		log.Printf("[ERROR] telegram send: %v", err)
	}
}
