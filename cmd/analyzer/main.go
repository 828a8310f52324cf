package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"RiskSentinel/internal/analyzer"
	"RiskSentinel/internal/config"
	"RiskSentinel/internal/loader"
	"RiskSentinel/internal/notifier"
	"RiskSentinel/internal/recorder"
	"RiskSentinel/internal/scheduler"
	"RiskSentinel/internal/source"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] RiskSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Price source: Yahoo Finance when a symbol is configured, CSV otherwise
	var src source.Source
	if cfg.DataSource.Symbol != "" {
		src = source.NewYahooSource(cfg.DataSource.Symbol, cfg.DataSource.Range, cfg.Proxy)
	} else {
		src = source.NewCSVSource(cfg.DataSource.CSVPath)
	}
	log.Printf("[INFO] price source: %s", src.Name())

	// Recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := analyzer.New(loader.New(src), cfg.Analysis.ConfidenceLevel, rec, cfg.Analysis.ChartPath)

	// One-shot mode: run the analysis, print the report, exit
	if cfg.Schedule.Cron == "" {
		outcome, err := a.Run()
		if err != nil {
			log.Fatalf("[FATAL] analysis: %v", err)
		}
		fmt.Print(outcome.Report)
		return
	}

	// Scheduled mode
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	sched := scheduler.New(ctx, a, tn)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register analysis task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing analysis now")
		go sched.RunNow()
	}

	log.Println("[INFO] RiskSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] RiskSentinel stopped")
}
