package main

import "fmt"

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range deps.Config.Sources {
		switch s.Type {
		case typeListing:
			fmt.Fprintf(deps.Stdout, "%-22s listing  %s (%d selectors)\n", s.Name, s.URL, len(s.Selectors))
		case typeSitemap:
			fmt.Fprintf(deps.Stdout, "%-22s sitemap  %s\n", s.Name, s.URL)
		default:
			fmt.Fprintf(deps.Stdout, "%-22s %s\n", s.Name, s.Type)
		}
	}
	return nil
}
