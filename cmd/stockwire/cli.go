package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stockwire/stockwire"
	"github.com/stockwire/stockwire/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config  *Config
	Skipped []string

	Fetcher   stockwire.Fetcher
	Extractor stockwire.Extractor
	Runner    *pipeline.Runner
	Writer    stockwire.CorpusWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Fetch   FetchCmd   `cmd:"" default:"1" help:"Collect, clean and deduplicate articles from all sources"`
	Sources SourcesCmd `cmd:"" help:"List the configured sources"`
	Probe   ProbeCmd   `cmd:"" help:"Extract a single article URL and print the cleaned text"`

	SourcesFile string `short:"s" name:"sources" help:"Path to a sources YAML file (default: built-in roster)"`
	Verbose     bool   `short:"v" help:"Debug logging"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Output            string        `short:"o" default:"FULL_INDIAN_STOCK_NEWS.txt" help:"Output corpus file"`
	Concurrency       int           `short:"c" default:"4" help:"Concurrent article fetches per source"`
	SourceConcurrency int           `default:"4" help:"Sources processed at once"`
	Timeout           time.Duration `short:"t" default:"15s" help:"Fetch timeout per page"`
	MinDelay          time.Duration `default:"500ms" help:"Minimum politeness delay between article fetches"`
	MaxDelay          time.Duration `default:"2s" help:"Maximum politeness delay between article fetches"`
	MinContent        int           `default:"150" help:"Minimum content length for a valid article"`
	Trafilatura       bool          `help:"Use the trafilatura extractor instead of selector rules"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URL         string `arg:"" help:"Article URL to extract"`
	Trafilatura bool   `help:"Use the trafilatura extractor instead of selector rules"`
}
