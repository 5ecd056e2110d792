package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/francescomonticone/dexscraper/internal/config"
	"github.com/francescomonticone/dexscraper/internal/poll"
	"github.com/francescomonticone/dexscraper/internal/runlock"
	"github.com/francescomonticone/dexscraper/internal/scrape/twitter"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

const configPath = "dexscraper.yml"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", configPath, err)
	}
	cfg.FromEnv()

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("config warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("config invalid: %s", strings.Join(res.Errors, "; "))
	}

	logFile, err := os.OpenFile(cfg.Output.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("open log file: %v", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	release, ok, err := runlock.Acquire(cfg.Output.Path + ".lock")
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !ok {
		logger.Warn("another run holds the lock, exiting", "lock", cfg.Output.Path+".lock")
		return
	}
	defer release()

	limiter := rate.NewLimiter(rate.Limit(cfg.Scrape.RequestsPerSec), 1)
	client := twitter.New(twitter.Config{
		BaseURL:      cfg.API.BaseURL,
		BearerToken:  cfg.API.BearerToken,
		ListID:       cfg.API.ListID,
		LookbackDays: cfg.Scrape.LookbackDays,
		PageSize:     cfg.Scrape.PageSize,
	}, limiter)

	sum, err := poll.RunOnce(context.Background(), client, cfg.Output.Path, logger)
	if err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
	logger.Info("run complete",
		"members", sum.Members,
		"records", sum.Records,
		"fetch_errors", sum.FetchErrors,
	)
}
