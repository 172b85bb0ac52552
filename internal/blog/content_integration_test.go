//go:build integration

package blog

import (
	"context"
	"testing"

	"github.com/daniilsolovey/sanctuary-blog/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContent_Integration(t *testing.T) {
	database, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	content, err := LoadContent(context.Background(), db.New(database))
	require.NoError(t, err)

	store, err := NewStore(content)
	require.NoError(t, err)
	m := NewManager(store)

	result := m.Search(SearchParams{})
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, []string{"p1", "p2"}, ids(result.Posts))

	wilbur := m.PostBySlug("wilbur-arrives")
	require.NotNil(t, wilbur)
	assert.Equal(t, "Sarah Mitchell", wilbur.Author.Name)
	require.Len(t, wilbur.Tags, 2)
	assert.Equal(t, 1, wilbur.Tags[0].Count)

	assert.Equal(t, 1, m.CategoryBySlug("animal-updates").PostCount)
	assert.Zero(t, m.CategoryBySlug("sanctuary-news").PostCount)
}
