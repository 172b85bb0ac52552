package blog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CategoryStats(t *testing.T) {
	m := newTestManager(t, sanctuaryPosts()...)

	stats := m.CategoryStats()
	require.Len(t, stats, 4)

	want := []struct {
		slug       string
		postCount  int
		totalViews int
	}{
		{"animal-updates", 2, 320},
		{"sanctuary-news", 2, 125},
		{"education", 1, 80},
		{"events", 0, 0},
	}
	for i, w := range want {
		assert.Equal(t, w.slug, stats[i].Category.Slug)
		assert.Equal(t, w.postCount, stats[i].PostCount, w.slug)
		assert.Equal(t, w.totalViews, stats[i].TotalViews, w.slug)
	}
}

func TestManager_TagStats(t *testing.T) {
	m := newTestManager(t, sanctuaryPosts()...)

	stats := m.TagStats()
	require.Len(t, stats, 4)

	got := map[string][2]int{}
	for _, s := range stats {
		got[s.Tag.Slug] = [2]int{s.PostCount, s.TotalViews}
	}
	assert.Equal(t, map[string][2]int{
		"rescue":       {1, 120},
		"medical-care": {2, 280},
		"pigs":         {2, 320},
		"goats":        {2, 125},
	}, got)
}

func TestManager_AuthorStats(t *testing.T) {
	m := newTestManager(t, sanctuaryPosts()...)

	stats := m.AuthorStats()
	require.Len(t, stats, 2)

	assert.Equal(t, "sarah", stats[0].Author.ID)
	assert.Equal(t, 3, stats[0].PostCount)
	assert.Equal(t, 245, stats[0].TotalViews)
	assert.Equal(t, "marcus", stats[1].Author.ID)
	assert.Equal(t, 2, stats[1].PostCount)
	assert.Equal(t, 280, stats[1].TotalViews)
}

func TestManager_Analytics(t *testing.T) {
	t.Run("AggregatesPublishedPosts", func(t *testing.T) {
		m := newTestManager(t, sanctuaryPosts()...)

		a := m.Analytics()
		assert.Equal(t, 5, a.TotalPosts)
		assert.Equal(t, 525, a.TotalViews)
		assert.Equal(t, 90, a.TotalLikes)
		assert.Equal(t, 27, a.TotalShares)
		assert.InDelta(t, 3.6, a.AverageReadTime, 1e-9)

		require.Len(t, a.TopCategories, 4)
		assert.Equal(t, "animal-updates", a.TopCategories[0].Category.Slug)
		assert.Equal(t, "sanctuary-news", a.TopCategories[1].Category.Slug)

		assert.Equal(t, []string{"rosie-recovers", "wilbur-arrives", "hoof-care", "volunteer-thanks", "goat-yoga"}, ids(a.TopPosts))
	})

	t.Run("TopListsAreCapped", func(t *testing.T) {
		posts := make([]Post, 0, 15)
		for i := range 15 {
			posts = append(posts, newPost(string(rune('a'+i)), func(p *Post) { p.Views = i }))
		}
		content := newTestContent(posts...)
		for i := range 6 {
			content.Categories = append(content.Categories, Category{ID: "extra" + string(rune('a'+i)), Slug: "extra-" + string(rune('a'+i))})
		}
		store, err := NewStore(content)
		require.NoError(t, err)

		a := NewManager(store).Analytics()
		assert.Len(t, a.TopCategories, 5)
		require.Len(t, a.TopPosts, 10)
		assert.Equal(t, "o", a.TopPosts[0].ID)
	})

	t.Run("NoPublishedPostsGivesZeroAverage", func(t *testing.T) {
		m := newTestManager(t, newPost("draft", func(p *Post) { p.Status = StatusDraft }))

		a := m.Analytics()
		assert.Equal(t, 0, a.TotalPosts)
		assert.False(t, math.IsNaN(a.AverageReadTime))
		assert.Zero(t, a.AverageReadTime)
		assert.Empty(t, a.TopPosts)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		store, err := NewStore(Content{})
		require.NoError(t, err)

		a := NewManager(store).Analytics()
		assert.Zero(t, a.AverageReadTime)
		assert.Empty(t, a.TopCategories)
	})
}
