package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/stockwire/stockwire/cmd/stockwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArticleBody = `Benchmark indices extended gains for a third straight session on Friday
as foreign investors returned to Indian equities. Banking and IT stocks led the advance
while midcaps outperformed the frontline indices. Analysts said the rally was supported
by easing crude prices and a stable rupee.`

func newOutletServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/markets", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
<div class="story-list">
<h2><a href="/article/1">Sensex extends winning run as FII buying returns</a></h2>
<h2><a href="/article/2">Sensex extends winning run as FII buying continues strongly</a></h2>
</div>
</body></html>`)
	})
	article := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><article><p>%s</p></article></body></html>`, testArticleBody)
	}
	mux.HandleFunc("/article/1", article)
	mux.HandleFunc("/article/2", article)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_EndToEnd(t *testing.T) {
	srv := newOutletServer(t)

	sourcesPath := writeSourcesFile(t, fmt.Sprintf(`
sources:
  - name: Test Outlet
    type: listing
    url: %s/markets
    selectors:
      - ".story-list h2 a"
`, srv.URL))

	outPath := filepath.Join(t.TempDir(), "corpus.txt")

	m := main.NewMain()
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{
		"fetch",
		"--sources", sourcesPath,
		"--output", outPath,
		"--min-delay", "1ms",
		"--max-delay", "2ms",
	}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	content := string(data)

	// Header block, blank line, then exactly one record: the two
	// discovered candidates share identical body text, so one survives.
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "# Format: Title|FullContent (one article per line, pipe-separated)", lines[0])
	assert.Equal(t, "", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "Sensex extends winning run as FII buying returns|"))
	assert.Contains(t, lines[4], "foreign investors returned to Indian equities")

	assert.Contains(t, stdout.String(), "Test Outlet: 2 candidates")
	assert.Contains(t, stdout.String(), "saved 1 unique articles")
}
