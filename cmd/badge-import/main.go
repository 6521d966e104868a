// badge-import copies attendee GitHub avatars into pretix order positions
// so they end up on printed badges: for every paid or pending order it reads
// the "GitHub user" answer, fetches the avatar, uploads it to pretix and
// writes the upload reference into the "avatar file" answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nixcon/pretix-github-badge-import/internal/cache"
	"github.com/nixcon/pretix-github-badge-import/internal/config"
	"github.com/nixcon/pretix-github-badge-import/internal/github"
	"github.com/nixcon/pretix-github-badge-import/internal/httpx"
	"github.com/nixcon/pretix-github-badge-import/internal/observability"
	"github.com/nixcon/pretix-github-badge-import/internal/pipeline"
	"github.com/nixcon/pretix-github-badge-import/internal/pretix"
)

func main() {
	githubTokenFile := flag.String("github-token-file", ".github.token", "file containing the GitHub API token (optional)")
	pretixTokenFile := flag.String("pretix-token-file", ".pretix.token", "file containing the pretix API token")
	org := flag.String("org", "nixcon", "pretix organizer id")
	event := flag.String("event", "2023", "pretix event id")
	strict := flag.Bool("strict", false, "abort the run when an avatar lookup fails instead of skipping the answer")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] <github-user-question-id> <avatar-file-question-id>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	userQuestion, err := strconv.ParseInt(flag.Arg(0), 10, 64)
	if err != nil {
		log.Fatalf("invalid github-user-question-id %q: %v", flag.Arg(0), err)
	}
	avatarQuestion, err := strconv.ParseInt(flag.Arg(1), 10, 64)
	if err != nil {
		log.Fatalf("invalid avatar-file-question-id %q: %v", flag.Arg(1), err)
	}

	cfg := config.Load()

	logger := newLogger(cfg.DevLog)
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	pretixToken, err := config.ReadToken(*pretixTokenFile)
	if err != nil {
		logger.Fatal("pretix token", zap.Error(err))
	}
	githubToken, err := config.ReadOptionalToken(*githubTokenFile)
	if err != nil {
		logger.Fatal("github token", zap.Error(err))
	}
	if githubToken == "" {
		logger.Warn("no github token, using anonymous (rate-limited) API access")
	}

	store, err := cache.OpenDiskStore(cfg.CacheDir)
	if err != nil {
		logger.Fatal("open cache", zap.Error(err))
	}
	avatarURLs, err := cache.New("github", store, cache.Strings(), cfg.LRUCap)
	if err != nil {
		logger.Fatal("avatar url cache", zap.Error(err))
	}
	avatarBytes, err := cache.New("avatar", store, cache.Bytes(), cfg.LRUCap)
	if err != nil {
		logger.Fatal("avatar bytes cache", zap.Error(err))
	}
	uploadIDs, err := cache.New("upload", store, cache.Strings(), cfg.LRUCap)
	if err != nil {
		logger.Fatal("upload id cache", zap.Error(err))
	}

	ghClient := github.New(httpx.NewClient(githubToken, cfg.HTTPTimeout), cfg.GitHubBaseURL)
	pretixClient := pretix.New(httpx.NewClient(pretixToken, cfg.HTTPTimeout), cfg.PretixBaseURL, *org, *event)

	metrics := observability.NewInmem()
	pipe := pipeline.New(ghClient, pretixClient, avatarURLs, avatarBytes, uploadIDs, logger, metrics, pipeline.Config{
		UserQuestion:      userQuestion,
		AvatarQuestion:    avatarQuestion,
		SkipOnLookupError: !*strict,
	})

	stats, runErr := pipe.Run(context.Background(), pretixClient.Orders())

	totals := metrics.Totals()
	fields := []zap.Field{
		zap.Int("orders", stats.Orders),
		zap.Int("positions", stats.Positions),
		zap.Int("answers_processed", stats.Processed),
		zap.Int("patched", stats.Patched),
		zap.Int("skipped", stats.Skipped),
		zap.Int("uploads", totals.Uploads),
		zap.Int("lookup_failures", totals.LookupFailures),
		zap.Any("cache_hits", totals.CacheHits),
		zap.Any("cache_misses", totals.CacheMisses),
	}
	if runErr != nil {
		logger.Fatal("run aborted", append(fields, zap.Error(runErr))...)
	}
	logger.Info("run complete", fields...)
}

func newLogger(dev bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	return logger
}
