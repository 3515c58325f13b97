package main

import (
	"fmt"

	"github.com/stockwire/stockwire"
	"github.com/stockwire/stockwire/text"
)

// Run executes the probe command. It resolves a single URL through the
// same fetch, extract and normalize chain the pipeline uses, which
// makes it the quickest way to check selector rules against a live
// outlet.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	rawHTML, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stockwire.ErrorMessage(err))
		return err
	}

	content, ok := deps.Extractor.Extract(c.URL, rawHTML)
	if !ok {
		return stockwire.Errorf(stockwire.ENOTFOUND, "no article content found at %s", c.URL)
	}

	clean := text.NewNormalizer().Normalize(content)
	fmt.Fprintln(deps.Stdout, clean)
	fmt.Fprintf(deps.Stderr, "%d characters extracted\n", len(clean))

	return nil
}
