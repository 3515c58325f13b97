package main

import (
	_ "embed"
	"os"

	"github.com/stockwire/stockwire"
	"github.com/stockwire/stockwire/finnhub"
	"github.com/stockwire/stockwire/goquery"
	swhttp "github.com/stockwire/stockwire/http"
	"github.com/stockwire/stockwire/newsapi"
	"gopkg.in/yaml.v3"
)

//go:embed sources.yaml
var defaultSourcesYAML []byte

// Source types accepted in the config file.
const (
	typeListing = "listing"
	typeSitemap = "sitemap"
	typeNewsAPI = "newsapi"
	typeFinnhub = "finnhub"
)

// Config is the on-disk source roster.
type Config struct {
	Sources []SourceConfig `yaml:"sources"`
}

// SourceConfig describes one candidate source. Selectors apply to
// listing sources; Limit applies to sitemap sources.
type SourceConfig struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	URL       string   `yaml:"url"`
	Selectors []string `yaml:"selectors"`
	Limit     int      `yaml:"limit"`
}

// LoadConfig reads a source roster from path, or the embedded default
// roster when path is empty.
func LoadConfig(path string) (*Config, error) {
	data := defaultSourcesYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, stockwire.Errorf(stockwire.ENOTFOUND, "read sources file: %v", err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, stockwire.Errorf(stockwire.EINVALID, "parse sources file: %v", err)
	}
	if len(cfg.Sources) == 0 {
		return nil, stockwire.Errorf(stockwire.EINVALID, "sources file lists no sources")
	}

	for _, s := range cfg.Sources {
		if err := validateSource(s); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func validateSource(s SourceConfig) error {
	if s.Name == "" {
		return stockwire.Errorf(stockwire.EINVALID, "source with no name")
	}
	switch s.Type {
	case typeListing:
		if s.URL == "" {
			return stockwire.Errorf(stockwire.EINVALID, "listing source %q requires a url", s.Name)
		}
		if len(s.Selectors) == 0 {
			return stockwire.Errorf(stockwire.EINVALID, "listing source %q requires selectors", s.Name)
		}
	case typeSitemap:
		if s.URL == "" {
			return stockwire.Errorf(stockwire.EINVALID, "sitemap source %q requires a url", s.Name)
		}
	case typeNewsAPI, typeFinnhub:
	default:
		return stockwire.Errorf(stockwire.EINVALID, "source %q has unknown type %q", s.Name, s.Type)
	}
	return nil
}

// BuildSources instantiates the configured sources. API sources whose
// key is absent from the environment are returned in skipped rather
// than failing the run.
func BuildSources(cfg *Config, fetcher stockwire.Fetcher) (sources []stockwire.Source, skipped []string) {
	for _, s := range cfg.Sources {
		switch s.Type {
		case typeListing:
			sources = append(sources, goquery.NewListingSource(s.Name, s.URL, s.Selectors, fetcher))
		case typeSitemap:
			sources = append(sources, swhttp.NewSitemapSource(s.Name, s.URL, s.Limit, fetcher))
		case typeNewsAPI:
			key := os.Getenv("NEWSAPI_KEY")
			if key == "" {
				skipped = append(skipped, s.Name)
				continue
			}
			sources = append(sources, newsapi.NewSource(s.Name, key))
		case typeFinnhub:
			key := os.Getenv("FINNHUB_KEY")
			if key == "" {
				skipped = append(skipped, s.Name)
				continue
			}
			sources = append(sources, finnhub.NewSource(s.Name, key))
		}
	}
	return sources, skipped
}
