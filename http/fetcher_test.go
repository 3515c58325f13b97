package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockwire/stockwire"
	stockhttp "github.com/stockwire/stockwire/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>article body</body></html>"))
	}))
	defer srv.Close()

	f := stockhttp.NewFetcher()
	defer f.Close()

	html, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "article body")
}

func TestFetcher_SendsBrowserHeaders(t *testing.T) {
	t.Parallel()

	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	f := stockhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, stockhttp.DefaultUserAgent, gotUA)
	assert.Contains(t, gotAccept, "text/html")
}

func TestFetcher_StatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{"unauthorized", http.StatusUnauthorized, stockwire.EFORBIDDEN},
		{"forbidden", http.StatusForbidden, stockwire.EFORBIDDEN},
		{"not found", http.StatusNotFound, stockwire.ENOTFOUND},
		{"server error", http.StatusInternalServerError, stockwire.EUNAVAILABLE},
		{"bad gateway", http.StatusBadGateway, stockwire.EUNAVAILABLE},
		{"teapot", http.StatusTeapot, stockwire.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := stockhttp.NewFetcher()
			defer f.Close()

			_, err := f.Fetch(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, stockwire.ErrorCode(err))
		})
	}
}

func TestFetcher_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	f := stockhttp.NewFetcher(stockhttp.WithTimeout(20 * time.Millisecond))
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, stockwire.EUNAVAILABLE, stockwire.ErrorCode(err),
		"a timeout is a transient fetch failure")
}

func TestFetcher_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	f := stockhttp.NewFetcher()
	defer f.Close()

	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
}
