package main

import (
	"fmt"

	"github.com/stockwire/stockwire"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	for _, name := range deps.Skipped {
		fmt.Fprintf(deps.Stderr, "skipping %s: API key not set\n", name)
	}

	corpus, reports, err := deps.Runner.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stockwire.ErrorMessage(err))
		return err
	}

	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "%s failed: %s\n", r.Name, stockwire.ErrorMessage(r.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %d candidates, %d articles\n", r.Name, r.Candidates, r.Accepted)
	}

	if err := deps.Writer.Write(corpus); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing corpus: %s\n", stockwire.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Collected %d articles total, saved %d unique articles to %s\n",
		corpus.Collected, len(corpus.Records), c.Output)
	fmt.Fprintf(deps.Stdout, "Duplicate removal: %d duplicate articles filtered out\n",
		corpus.Collected-len(corpus.Records))

	return nil
}
