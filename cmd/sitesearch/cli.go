package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/crawl"
	"github.com/fwojciec/sitesearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *Config
	Logger    *slog.Logger
	Pages     sitesearch.PageService
	Snapshots sitesearch.SnapshotService
	Index     *search.Index
	Crawler   *crawl.Crawler
	Persister *crawl.Persister
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" help:"Database path (env: SITESEARCH_DB)"`
	Snapshot string `help:"Snapshot file path (env: SITESEARCH_SNAPSHOT)"`
	Config   string `help:"Config file path" type:"path"`
	Verbose  bool   `short:"v" help:"Log every fetch and storage call"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a site and store its pages"`
	Search SearchCmd `cmd:"" help:"Search stored pages for a keyword"`
	Pages  PagesCmd  `cmd:"" help:"List stored pages"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Seed URL"`
	MaxPages    *int          `short:"n" help:"Maximum number of pages to crawl (default from config)"`
	Concurrency int           `short:"c" help:"Concurrent fetch limit"`
	Timeout     time.Duration `help:"Per-request timeout"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Keyword string `arg:"" help:"Keyword to search for"`
	Source  string `enum:"db,snapshot" default:"db" help:"Pages to search: all stored pages (db) or the last crawl (snapshot)"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct{}
