package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitesearch/crawl"
	"github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
	lochttp "github.com/fwojciec/sitesearch/http"
	"github.com/fwojciec/sitesearch/search"
	sitesearchslog "github.com/fwojciec/sitesearch/slog"
	"github.com/fwojciec/sitesearch/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv: os.Getenv,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitesearch"),
		kong.Description("Crawl a single site and search its pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitesearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := m.loadConfig(cli)
	if err != nil {
		return err
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cfg.DB != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.DB), 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(cfg.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set %s to use a different database path\n", EnvDB)
		return fmt.Errorf("failed to open database at %q: %w", cfg.DB, err)
	}
	defer m.Close()

	deps.Pages = sitesearchslog.NewLoggingPageService(sqlite.NewPageService(m.DB), logger)
	deps.Snapshots = sitesearchslog.NewLoggingSnapshotService(fs.NewSnapshotStore(cfg.Snapshot), logger)
	deps.Index = search.NewIndex(nil)

	fetcher := lochttp.NewFetcher(
		lochttp.WithTimeout(cfg.Timeout),
		lochttp.WithUserAgent(cfg.UserAgent),
	)
	deps.Crawler = &crawl.Crawler{
		Fetcher:     sitesearchslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   goquery.NewExtractor(),
		Concurrency: cfg.Concurrency,
	}
	deps.Persister = &crawl.Persister{
		Pages:     deps.Pages,
		Snapshots: deps.Snapshots,
		Cache:     deps.Index,
		Logger:    logger,
	}

	return kongCtx.Run(deps)
}

// loadConfig resolves the configuration from defaults, the config file,
// the environment, and global flags, in that order.
func (m *Main) loadConfig(cli *CLI) (*Config, error) {
	path, required := DefaultConfigPath(), false
	if cli.Config != "" {
		path, required = cli.Config, true
	}

	cfg, err := LoadConfig(path, required)
	if err != nil {
		return nil, err
	}

	getenv := m.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg.ApplyEnv(getenv)

	if cli.DB != "" {
		cfg.DB = cli.DB
	}
	if cli.Snapshot != "" {
		cfg.Snapshot = cli.Snapshot
	}
	if cli.Crawl.Timeout > 0 {
		cfg.Timeout = cli.Crawl.Timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
