package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

	sarah  = Author{ID: "sarah", Name: "Sarah Mitchell", Role: "Sanctuary Director"}
	marcus = Author{ID: "marcus", Name: "Marcus Chen", Role: "Veterinarian"}

	animalUpdates  = Category{ID: "c1", Name: "Animal Updates", Slug: "animal-updates"}
	sanctuaryNews  = Category{ID: "c2", Name: "Sanctuary News", Slug: "sanctuary-news"}
	education      = Category{ID: "c3", Name: "Education", Slug: "education"}
	emptyCategory  = Category{ID: "c4", Name: "Events", Slug: "events"}
	rescueTag      = Tag{ID: "t1", Name: "Rescue", Slug: "rescue"}
	medicalCareTag = Tag{ID: "t2", Name: "Medical Care", Slug: "medical-care"}
	pigsTag        = Tag{ID: "t3", Name: "Pigs", Slug: "pigs"}
	goatsTag       = Tag{ID: "t4", Name: "Goats", Slug: "goats"}
)

// newPost builds a published post with defaults; mods adjust it.
func newPost(id string, mods ...func(p *Post)) Post {
	p := Post{
		ID:          id,
		Slug:        id,
		Title:       "Post " + id,
		Excerpt:     "Excerpt " + id,
		Content:     "<p>Content " + id + "</p>",
		Author:      sarah,
		Category:    animalUpdates,
		Tags:        []Tag{},
		PublishedAt: baseTime,
		Status:      StatusPublished,
		ReadTime:    3,
	}
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

func newTestContent(posts ...Post) Content {
	return Content{
		Authors:    []Author{sarah, marcus},
		Categories: []Category{animalUpdates, sanctuaryNews, education, emptyCategory},
		Tags:       []Tag{rescueTag, medicalCareTag, pigsTag, goatsTag},
		Posts:      posts,
	}
}

func newTestManager(t *testing.T, posts ...Post) *Manager {
	t.Helper()
	store, err := NewStore(newTestContent(posts...))
	require.NoError(t, err)
	return NewManager(store)
}

// sanctuaryPosts is a mixed data set used by the property tests.
func sanctuaryPosts() []Post {
	return []Post{
		newPost("wilbur-arrives", func(p *Post) {
			p.Title = "Wilbur Arrives at the Sanctuary"
			p.Content = "<p>Wilbur the pig was rescued from a closing farm. Pig care starts with a warm barn.</p>"
			p.Tags = []Tag{rescueTag, pigsTag}
			p.PublishedAt = baseTime.Add(-1 * 24 * time.Hour)
			p.Views, p.Likes, p.Shares = 120, 30, 5
			p.Featured = true
		}),
		newPost("hoof-care", func(p *Post) {
			p.Title = "Hoof Care for Goats"
			p.Author = marcus
			p.Category = education
			p.Tags = []Tag{medicalCareTag, goatsTag}
			p.PublishedAt = baseTime.Add(-2 * 24 * time.Hour)
			p.Views, p.Likes, p.Shares = 80, 10, 2
			p.ReadTime = 6
		}),
		newPost("spring-open-day", func(p *Post) {
			p.Title = "Spring Open Day"
			p.Category = sanctuaryNews
			p.PublishedAt = baseTime.Add(2 * 24 * time.Hour)
			p.Status = StatusDraft
			p.Views = 999
		}),
		newPost("rosie-recovers", func(p *Post) {
			p.Title = "Rosie Recovers After Surgery"
			p.Author = marcus
			p.Tags = []Tag{medicalCareTag, pigsTag}
			p.PublishedAt = baseTime.Add(-3 * 24 * time.Hour)
			p.Views, p.Likes, p.Shares = 200, 50, 20
			p.Featured = true
			p.ReadTime = 4
		}),
		newPost("volunteer-thanks", func(p *Post) {
			p.Title = "Thank You, Volunteers"
			p.Category = sanctuaryNews
			p.PublishedAt = baseTime.Add(-4 * 24 * time.Hour)
			p.Views = 80
			p.ReadTime = 2
		}),
		newPost("old-barn", func(p *Post) {
			p.Title = "The Old Barn"
			p.Category = sanctuaryNews
			p.PublishedAt = baseTime.Add(-400 * 24 * time.Hour)
			p.Status = StatusArchived
		}),
		newPost("goat-yoga", func(p *Post) {
			p.Title = "goat yoga returns"
			p.Category = sanctuaryNews
			p.Tags = []Tag{goatsTag}
			p.PublishedAt = baseTime
			p.Views = 45
		}),
	}
}

func ids(posts []Post) []string {
	result := make([]string, len(posts))
	for i, p := range posts {
		result[i] = p.ID
	}
	return result
}

func boolPtr(b bool) *bool { return &b }
