package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daniilsolovey/sanctuary-blog/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	authors    []db.Author
	categories []db.Category
	tags       []db.Tag
	posts      []db.Post
	postsErr   error
}

func (s stubSource) Authors(context.Context) ([]db.Author, error)       { return s.authors, nil }
func (s stubSource) Categories(context.Context) ([]db.Category, error) { return s.categories, nil }
func (s stubSource) Tags(context.Context) ([]db.Tag, error)             { return s.tags, nil }
func (s stubSource) Posts(context.Context) ([]db.Post, error)           { return s.posts, s.postsErr }

func TestLoadContent(t *testing.T) {
	published := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	author := db.Author{ID: "sarah", Name: "Sarah Mitchell", Social: db.Social{Email: "sarah@example.org"}}
	category := db.Category{ID: "c1", Name: "Animal Updates", Slug: "animal-updates"}

	src := stubSource{
		authors:    []db.Author{author},
		categories: []db.Category{category},
		tags: []db.Tag{
			{ID: "t1", Name: "Rescue", Slug: "rescue"},
			{ID: "t3", Name: "Pigs", Slug: "pigs"},
		},
		posts: []db.Post{
			{
				ID:          "p1",
				Slug:        "wilbur-arrives",
				Title:       "Wilbur Arrives",
				Content:     "<p>Wilbur is settling in.</p>",
				AuthorID:    "sarah",
				CategoryID:  "c1",
				TagIDs:      []string{"t3", "gone", "t1"},
				Gallery:     []db.Media{{ID: "m1", Type: "image", URL: "/img/wilbur.jpg"}},
				PublishedAt: published,
				StatusID:    db.StatusPublished,
				Views:       120,
				SEO:         db.SEO{MetaTitle: "Wilbur"},
				Author:      &author,
				Category:    &category,
			},
		},
	}

	t.Run("ConvertsRows", func(t *testing.T) {
		content, err := LoadContent(context.Background(), src)
		require.NoError(t, err)

		require.Len(t, content.Posts, 1)
		p := content.Posts[0]
		assert.Equal(t, StatusPublished, p.Status)
		assert.Equal(t, "sarah@example.org", p.Author.Social.Email)
		assert.Equal(t, "animal-updates", p.Category.Slug)
		assert.Equal(t, []string{"pigs", "rescue"}, []string{p.Tags[0].Slug, p.Tags[1].Slug})
		assert.Equal(t, "/img/wilbur.jpg", p.Gallery[0].URL)
		assert.Equal(t, "Wilbur", p.SEO.MetaTitle)
		assert.Equal(t, 1, p.ReadTime)
		assert.Equal(t, published, p.PublishedAt)

		store, err := NewStore(content)
		require.NoError(t, err)
		assert.Equal(t, 1, NewManager(store).TagBySlug("pigs").Count)
	})

	t.Run("PropagatesErrors", func(t *testing.T) {
		failing := src
		failing.postsErr = errors.New("connection reset")

		_, err := LoadContent(context.Background(), failing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db get posts")
		assert.ErrorIs(t, err, failing.postsErr)
	})
}
