//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements clipnote.Fetcher.
var _ clipnote.Fetcher = (*rod.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="content">rendered content</div></body></html>`))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, html, "rendered content")
}

func TestFetcher_Fetch_ContextCancellation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Don't respond - let context timeout
		select {}
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err = fetcher.Fetch(ctx, srv.URL)
	require.Error(t, err)
}
