// Command unfurl resolves link-preview metadata from web pages or local
// HTML files and prints the result as text or JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/goquery"
	unfurlhttp "github.com/fwojciec/unfurl/http"
	"github.com/fwojciec/unfurl/profile"
	"github.com/fwojciec/unfurl/resolve"
	unfurlslog "github.com/fwojciec/unfurl/slog"
	"github.com/fwojciec/unfurl/sqlite"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	JSON        bool          `short:"j" help:"Emit previews as JSON, one object per line."`
	Verbose     bool          `short:"v" help:"Log fetch and resolution operations to stderr."`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page (default 10s)."`
	Concurrency int           `short:"c" help:"Concurrent fetch limit (default 3)."`
	RPS         float64       `help:"Max requests per second per domain (default 1)."`
	UserAgent   string        `help:"User-Agent header for fetches."`
	Cache       string        `help:"Path to a SQLite preview cache."`
	Refresh     bool          `help:"Bypass the cache and re-fetch."`
	Config      string        `help:"Path to a YAML config file."`
	HTML        string        `help:"Resolve a local HTML file instead of fetching."`
	Base        string        `help:"Base URL for relative links when using --html."`
	URLs        []string      `arg:"" optional:"" help:"Page URLs to resolve."`
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unfurl"),
		kong.Description("Resolve link-preview metadata from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if cli.Config != "" {
		if cfg, err = LoadConfig(cli.Config); err != nil {
			return err
		}
	}
	cfg.applyFlags(cli)

	if cli.HTML == "" && len(cli.URLs) == 0 {
		return fmt.Errorf("either page URLs or --html is required")
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var resolver unfurl.Resolver = resolve.NewEngine(
		goquery.NewLoader(),
		resolve.WithProfiles(profile.NewYouTube()),
	)
	resolver = unfurlslog.NewLoggingResolver(resolver, logger)

	if cli.HTML != "" {
		return m.runFile(cli, resolver, stdout)
	}

	return m.runFetch(ctx, cli, cfg, resolver, logger, stdout, stderr)
}

// runFile resolves a local HTML file without touching the network.
func (m *Main) runFile(cli *CLI, resolver unfurl.Resolver, stdout io.Writer) error {
	data, err := os.ReadFile(cli.HTML)
	if err != nil {
		return fmt.Errorf("failed to read HTML file: %w", err)
	}

	var base *url.URL
	if cli.Base != "" {
		if base, err = url.Parse(cli.Base); err != nil {
			return unfurl.Errorf(unfurl.EINVALID, "invalid base URL %q: %v", cli.Base, err)
		}
	}

	p, err := resolver.Resolve(string(data), base)
	if err != nil {
		return err
	}

	return writePreview(stdout, cli.JSON, cli.HTML, p)
}

// runFetch resolves one or more remote pages with bounded concurrency and
// per-domain rate limiting. Per-URL failures are reported and do not stop
// the batch.
func (m *Main) runFetch(ctx context.Context, cli *CLI, cfg Config, resolver unfurl.Resolver, logger *slog.Logger, stdout, stderr io.Writer) error {
	fetchOpts := []unfurlhttp.Option{unfurlhttp.WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		fetchOpts = append(fetchOpts, unfurlhttp.WithUserAgent(cfg.UserAgent))
	}
	var fetcher unfurl.Fetcher = unfurlhttp.NewFetcher(fetchOpts...)
	fetcher = unfurlslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	var cache unfurl.PreviewCache
	if cfg.Cache != "" {
		db := sqlite.NewDB(cfg.Cache)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		cache = sqlite.NewPreviewService(db)
	}

	limiter := unfurlhttp.NewDomainLimiter(cfg.RPS)

	type result struct {
		preview *unfurl.Preview
		err     error
	}
	results := make([]result, len(cli.URLs))

	var g errgroup.Group
	g.SetLimit(cfg.Concurrency)
	for i, rawurl := range cli.URLs {
		g.Go(func() error {
			p, err := m.resolveURL(ctx, rawurl, cli.Refresh, fetcher, resolver, cache, limiter)
			results[i] = result{preview: p, err: err}
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for i, rawurl := range cli.URLs {
		if results[i].err != nil {
			failures++
			fmt.Fprintf(stderr, "%s: %v\n", rawurl, results[i].err)
			continue
		}
		if err := writePreview(stdout, cli.JSON, rawurl, results[i].preview); err != nil {
			return err
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d pages failed", failures, len(cli.URLs))
	}
	return nil
}

// resolveURL fetches and resolves a single page, consulting the cache when
// configured.
func (m *Main) resolveURL(ctx context.Context, rawurl string, refresh bool, fetcher unfurl.Fetcher, resolver unfurl.Resolver, cache unfurl.PreviewCache, limiter unfurl.DomainLimiter) (*unfurl.Preview, error) {
	if cache != nil && !refresh {
		if cached, err := cache.GetPreview(ctx, rawurl); err == nil {
			return cached.Preview, nil
		}
	}

	u, err := url.Parse(rawurl)
	if err != nil {
		return nil, unfurl.Errorf(unfurl.EINVALID, "invalid URL %q: %v", rawurl, err)
	}
	if err := limiter.Wait(ctx, u.Hostname()); err != nil {
		return nil, err
	}

	page, err := fetcher.Fetch(ctx, rawurl)
	if err != nil {
		return nil, err
	}

	p, err := resolver.Resolve(page.HTML, page.URL)
	if err != nil {
		return nil, err
	}

	if cache != nil {
		err := cache.PutPreview(ctx, &unfurl.CachedPreview{
			URL:      rawurl,
			HTMLHash: sqlite.HashHTML(page.HTML),
			Preview:  p,
		})
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// previewOutput is the JSON shape emitted per resolved page.
type previewOutput struct {
	Source  string          `json:"source"`
	Domain  string          `json:"domain,omitempty"`
	Preview *unfurl.Preview `json:"preview"`
}

// writePreview renders one resolved page as text or JSON.
func writePreview(w io.Writer, asJSON bool, source string, p *unfurl.Preview) error {
	if asJSON {
		return json.NewEncoder(w).Encode(previewOutput{
			Source:  source,
			Domain:  p.Domain(),
			Preview: p,
		})
	}

	if _, err := fmt.Fprintf(w, "## %s\n", source); err != nil {
		return err
	}
	_, err := io.WriteString(w, unfurl.FormatPreview(p)+"\n")
	return err
}
