package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daniilsolovey/sanctuary-blog/config"
	"github.com/daniilsolovey/sanctuary-blog/internal/blog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	author := blog.Author{ID: "sarah", Name: "Sarah Mitchell"}
	category := blog.Category{ID: "c1", Name: "Animal Updates", Slug: "animal-updates"}
	store, err := blog.NewStore(blog.Content{
		Authors:    []blog.Author{author},
		Categories: []blog.Category{category},
		Posts: []blog.Post{{
			ID:          "p1",
			Slug:        "wilbur-arrives",
			Title:       "Wilbur Arrives",
			Author:      author,
			Category:    category,
			PublishedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:      blog.StatusPublished,
		}},
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), blog.NewManager(store), logger)
}

func TestApp_Routes(t *testing.T) {
	a := newTestApp(t)

	t.Run("REST", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "wilbur-arrives")
	})

	t.Run("RPC", func(t *testing.T) {
		body := `{"jsonrpc":"2.0","id":1,"method":"blog.search","params":{}}`
		req := httptest.NewRequest(http.MethodPost, rpcPath, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalCount":1`)
	})

	t.Run("SMD", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, rpcPath+"?smd", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, strings.ToLower(rec.Body.String()), "blog.search")
	})
}
