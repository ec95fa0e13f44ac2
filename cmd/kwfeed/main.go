package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/kwfeed/pkg/cache"
	"github.com/umputun/kwfeed/pkg/config"
	"github.com/umputun/kwfeed/pkg/domain"
	"github.com/umputun/kwfeed/pkg/remote"
	"github.com/umputun/kwfeed/pkg/scrape"
	"github.com/umputun/kwfeed/pkg/service"
	"github.com/umputun/kwfeed/pkg/source"
	"github.com/umputun/kwfeed/pkg/study"
	"github.com/umputun/kwfeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, built-in defaults if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	lgr.Printf("[INFO] starting kwfeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

// run wires all components and blocks until ctx is canceled or the server fails
func run(ctx context.Context, opts Opts) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fetcher := scrape.NewHTTPFetcher(scrape.FetcherParams{
		Timeout:   cfg.Fetch.Timeout,
		UserAgent: cfg.Fetch.UserAgent,
		Attempts:  cfg.Fetch.TransportAttempts,
		Delay:     cfg.Fetch.TransportDelay,
	})

	comments, err := source.NewComments(fetcher, source.CommentsParams{
		SearchURL: cfg.Comments.SearchURL,
		SiteURL:   cfg.Comments.SiteURL,
		Retry:     scrape.Retrier{Attempts: cfg.Fetch.Attempts, Delay: cfg.Fetch.Delay},
		Location:  loc,
	})
	if err != nil {
		return fmt.Errorf("failed to make comments source: %w", err)
	}

	videos := source.NewVideos(fetcher, source.VideosParams{
		SearchURL: cfg.Videos.SearchURL,
		WatchURL:  cfg.Videos.WatchURL,
		Marker:    cfg.Videos.Marker,
	})

	// process-wide state, shared by all requests
	itemsCache := cache.New[[]domain.Item]()
	selector := study.NewSelector(cache.New[[]string](), study.Params{
		UsedTTL:  cfg.Study.UsedTTL,
		ResetTTL: cfg.Study.ResetTTL,
	})

	svc := service.New(comments, videos, remote.NewLoader(fetcher), selector, itemsCache, service.Params{
		CommentsFilterURL: cfg.Comments.FilterURL,
		BlockedAuthors:    cfg.Comments.BlockedAuthors,
		VideosFilterURL:   cfg.Videos.FilterURL,
		VideosHomeURL:     cfg.Videos.HomeURL,
		MinDuration:       cfg.Videos.MinDuration,
		FreshWindow:       cfg.Videos.FreshWindow,
		LiveMarker:        cfg.Videos.LiveMarker,
		StudyConfigURL:    cfg.Study.ConfigURL,
	})

	srv := server.New(cfg, svc, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
