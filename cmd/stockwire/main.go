// Command stockwire collects equities news from the configured sources
// and writes a deduplicated pipe-separated corpus.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/stockwire/stockwire"
	"github.com/stockwire/stockwire/fs"
	"github.com/stockwire/stockwire/goquery"
	swhttp "github.com/stockwire/stockwire/http"
	"github.com/stockwire/stockwire/pipeline"
	swslog "github.com/stockwire/stockwire/slog"
	"github.com/stockwire/stockwire/text"
	"github.com/stockwire/stockwire/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("stockwire"),
		kong.Description("Collect and deduplicate equities news into a plain-text corpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Config, err = LoadConfig(cli.SourcesFile)
	if err != nil {
		return err
	}

	cmd := kongCtx.Command()
	switch {
	case cmd == "sources":
		// No network wiring needed.
	case cmd == "probe <url>":
		fetcher := swhttp.NewFetcher()
		defer fetcher.Close()
		deps.Fetcher = swslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = chooseExtractor(cli.Probe.Trafilatura)
		return kongCtx.Run(deps)
	default:
		fetcher := swhttp.NewFetcher(swhttp.WithTimeout(cli.Fetch.Timeout))
		defer fetcher.Close()
		deps.Fetcher = swslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = chooseExtractor(cli.Fetch.Trafilatura)

		var sources []stockwire.Source
		sources, deps.Skipped = BuildSources(deps.Config, deps.Fetcher)
		logged := make([]stockwire.Source, 0, len(sources))
		for _, src := range sources {
			logged = append(logged, swslog.NewLoggingSource(src, deps.Logger))
		}

		deps.Runner = &pipeline.Runner{
			Sources:    logged,
			Fetcher:    deps.Fetcher,
			Extractor:  deps.Extractor,
			Normalizer: text.NewNormalizer(),
			Validator:  text.NewValidator(text.WithMinContentLen(cli.Fetch.MinContent)),
			Limiter: pipeline.Chain{
				pipeline.NewJitterLimiter(cli.Fetch.MinDelay, cli.Fetch.MaxDelay),
				pipeline.NewDomainLimiter(1.0),
			},
			Logger:            deps.Logger,
			Concurrency:       cli.Fetch.Concurrency,
			SourceConcurrency: cli.Fetch.SourceConcurrency,
		}
		deps.Writer = fs.NewWriter(cli.Fetch.Output)
	}

	return kongCtx.Run(deps)
}

func chooseExtractor(useTrafilatura bool) stockwire.Extractor {
	if useTrafilatura {
		return trafilatura.NewExtractor()
	}
	return goquery.NewExtractor()
}
