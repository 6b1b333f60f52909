package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Donghyun-349/clipnote"
	"github.com/Donghyun-349/clipnote/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Metadata(t *testing.T) {
	t.Parallel()

	t.Run("combines oembed and watch page data", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"title":"A Talk","author_name":"Some Channel"}`))
		})
		mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"shortDescription":"line one\nline two","uploadDate":"2024-03-01"}`))
		})
		mux.HandleFunc("/vi/abc123def45/maxresdefault.jpg", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		mux.HandleFunc("/vi/abc123def45/hqdefault.jpg", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		client := youtube.NewClient(
			clipnote.CaptionConfig{},
			youtube.WithBaseURL(server.URL),
			youtube.WithThumbnailBaseURL(server.URL),
		)

		meta, err := client.Metadata(context.Background(), "abc123def45")

		require.NoError(t, err)
		assert.Equal(t, "A Talk", meta.Title)
		assert.Equal(t, "Some Channel", meta.Channel)
		assert.Equal(t, "line one\nline two", meta.Description)
		assert.Equal(t, "2024-03-01", meta.UploadDate)
		assert.Equal(t, server.URL+"/vi/abc123def45/hqdefault.jpg", meta.ThumbnailURL)
	})

	t.Run("prefers the full-size thumbnail when it exists", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"title":"A Talk","author_name":"Some Channel"}`))
		})
		mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html></html>`))
		})
		mux.HandleFunc("/vi/abc123def45/maxresdefault.jpg", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		client := youtube.NewClient(
			clipnote.CaptionConfig{},
			youtube.WithBaseURL(server.URL),
			youtube.WithThumbnailBaseURL(server.URL),
		)

		meta, err := client.Metadata(context.Background(), "abc123def45")

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/vi/abc123def45/maxresdefault.jpg", meta.ThumbnailURL)
	})

	t.Run("tolerates a failing oembed endpoint", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		server := httptest.NewServer(mux)
		defer server.Close()

		mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"shortDescription":"only the page answered","uploadDate":"2024-03-01"}`))
		})

		client := youtube.NewClient(
			clipnote.CaptionConfig{},
			youtube.WithBaseURL(server.URL),
			youtube.WithThumbnailBaseURL(server.URL),
		)

		meta, err := client.Metadata(context.Background(), "abc123def45")

		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Equal(t, "only the page answered", meta.Description)
	})

	t.Run("returns EUNAVAILABLE when nothing answers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := youtube.NewClient(
			clipnote.CaptionConfig{},
			youtube.WithBaseURL(server.URL),
			youtube.WithThumbnailBaseURL(server.URL),
		)

		_, err := client.Metadata(context.Background(), "abc123def45")

		require.Error(t, err)
		assert.Equal(t, clipnote.EUNAVAILABLE, clipnote.ErrorCode(err))
	})
}
