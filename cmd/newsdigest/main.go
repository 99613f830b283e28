package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newsdigest/pkg/config"
	"github.com/umputun/newsdigest/pkg/content"
	"github.com/umputun/newsdigest/pkg/dedup"
	"github.com/umputun/newsdigest/pkg/feed"
	"github.com/umputun/newsdigest/pkg/hackernews"
	"github.com/umputun/newsdigest/pkg/llm"
	"github.com/umputun/newsdigest/pkg/notion"
	"github.com/umputun/newsdigest/pkg/proc"
	"github.com/umputun/newsdigest/pkg/store"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"config file path"`
	DryRun bool   `long:"dry-run" description:"collect and report, don't write anywhere"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	_ = godotenv.Load() // optional .env, env vars feed config expansion

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Printf("[ERROR] failed to load config: %v", err)
		os.Exit(1)
	}

	logFile, err := setupLog(opts.Debug, cfg.Run.LogDir, cfg.Notion.Token, cfg.LLM.APIKey)
	if err != nil {
		log.Printf("[ERROR] failed to set up logging: %v", err)
		os.Exit(1)
	}
	defer logFile.Close() //nolint:errcheck // best effort on shutdown

	log.Printf("[INFO] starting newsdigest version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	processor, cleanup, err := makeProcessor(cfg, opts.DryRun)
	if err != nil {
		log.Printf("[ERROR] failed to initialize: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := processor.Run(ctx); err != nil {
		log.Printf("[ERROR] run aborted: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] run finished")
}

// makeProcessor wires collectors, caches, notion and llm clients into the
// pipeline processor. The returned cleanup closes everything that was opened.
func makeProcessor(cfg *config.Config, dryRun bool) (*proc.Processor, func(), error) {
	noop := func() {}

	var collectors []proc.Collector
	if len(cfg.Feeds.URLs) > 0 {
		collectors = append(collectors, feed.NewCollector(cfg.Feeds.URLs, cfg.Feeds.MaxItems,
			cfg.Extraction.Timeout, cfg.Extraction.UserAgent))
	}

	autoProcess := map[string]bool{}
	if cfg.HackerNews.Enabled {
		hn := hackernews.NewClient(cfg.HackerNews.BaseURL, cfg.HackerNews.MaxItems, cfg.Extraction.Timeout)
		collectors = append(collectors, hn)
		autoProcess[hn.Name()] = cfg.HackerNews.AutoProcess
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Cache.SeenFile), 0o750); err != nil {
		return nil, noop, fmt.Errorf("create cache dir: %w", err)
	}
	seen, err := dedup.Open(cfg.Cache.SeenFile)
	if err != nil {
		return nil, noop, fmt.Errorf("open seen cache: %w", err)
	}
	log.Printf("[INFO] seen cache loaded, %d urls", seen.Len())

	var contentCache proc.ContentCache
	cleanup := noop
	if cfg.Cache.ContentDB != "" {
		cache, err := store.NewContentCache(cfg.Cache.ContentDB)
		if err != nil {
			return nil, noop, fmt.Errorf("open content cache: %w", err)
		}
		contentCache = cache
		cleanup = func() {
			if err := cache.Close(); err != nil {
				log.Printf("[WARN] failed to close content cache: %v", err)
			}
		}
	}

	analyst, err := llm.NewAnalyst(cfg.LLM)
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("create llm analyst: %w", err)
	}

	processor := proc.New(proc.Params{
		Collectors: collectors,
		Seen:       seen,
		DB:         notion.NewClient(cfg.Notion.Token, cfg.Notion.DatabaseID, nil),
		Extractor: content.NewHTTPExtractor(content.Params{
			Timeout:       cfg.Extraction.Timeout,
			UserAgent:     cfg.Extraction.UserAgent,
			MinTextLength: cfg.Extraction.MinTextLength,
			MaxChars:      cfg.Extraction.MaxChars,
		}),
		Analyst:      analyst,
		ContentCache: contentCache,
		AutoProcess:  autoProcess,
		RecordDelay:  cfg.Run.RecordDelay,
		DryRun:       dryRun,
	})
	return processor, cleanup, nil
}

// setupLog configures lgr to write to stdout and a timestamped per-run file
// under logDir. Secrets passed in secs are masked in the output.
func setupLog(dbg bool, logDir string, secs ...string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(logDir, "newsdigest-"+time.Now().Format("20060102-150405")+".log")
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640) //nolint:gosec // path built from config
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logOpts := []lgr.Option{lgr.Out(io.MultiWriter(os.Stdout, logFile)), lgr.Err(io.MultiWriter(os.Stderr, logFile))}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var masked []string
	for _, s := range secs {
		if s != "" {
			masked = append(masked, s)
		}
	}
	if len(masked) > 0 {
		logOpts = append(logOpts, lgr.Secret(masked...))
	}

	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
	return logFile, nil
}
