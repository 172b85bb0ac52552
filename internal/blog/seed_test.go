package blog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedData = `
[[authors]]
id = "sarah"
name = "Sarah Mitchell"
role = "Sanctuary Director"
yearsAtSanctuary = 8
specialties = ["rescue", "pigs"]
  [authors.social]
  email = "sarah@example.org"

[[categories]]
id = "c1"
name = "Animal Updates"
slug = "animal-updates"

[[tags]]
id = "t1"
name = "Rescue"
slug = "rescue"

[[tags]]
id = "t3"
name = "Pigs"
slug = "pigs"

[[posts]]
id = "p1"
slug = "wilbur-arrives"
title = "Wilbur Arrives"
excerpt = "A new face in the barn."
content = "<p>Wilbur is settling in.</p>"
authorId = "sarah"
categoryId = "c1"
tagIds = ["t1", "t3"]
publishedAt = "2024-01-10T09:30:00Z"
featured = true
views = 120
  [posts.seo]
  metaTitle = "Wilbur Arrives"
  keywords = ["pig", "rescue"]

[[posts]]
id = "p2"
slug = "draft-notes"
title = "Draft Notes"
excerpt = "Not yet."
content = "<p>Soon.</p>"
authorId = "sarah"
categoryId = "c1"
publishedAt = "2024-01-12"
updatedAt = "2024-01-13T10:00:00"
status = "draft"
readTime = 7
`

func TestDecodeSeed(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		content, err := DecodeSeed(seedData)
		require.NoError(t, err)

		require.Len(t, content.Authors, 1)
		assert.Equal(t, "sarah@example.org", content.Authors[0].Social.Email)
		assert.Equal(t, []string{"rescue", "pigs"}, content.Authors[0].Specialties)
		require.Len(t, content.Tags, 2)
		require.Len(t, content.Posts, 2)

		p1 := content.Posts[0]
		assert.Equal(t, StatusPublished, p1.Status)
		assert.Equal(t, "Sarah Mitchell", p1.Author.Name)
		assert.Equal(t, "animal-updates", p1.Category.Slug)
		assert.Equal(t, []string{"rescue", "pigs"}, []string{p1.Tags[0].Slug, p1.Tags[1].Slug})
		assert.Equal(t, time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC), p1.PublishedAt.UTC())
		assert.Equal(t, 1, p1.ReadTime)
		assert.Equal(t, []string{"pig", "rescue"}, p1.SEO.Keywords)
		assert.Nil(t, p1.UpdatedAt)

		p2 := content.Posts[1]
		assert.Equal(t, StatusDraft, p2.Status)
		assert.Equal(t, 7, p2.ReadTime)
		assert.Empty(t, p2.Tags)
		require.NotNil(t, p2.UpdatedAt)
		assert.Equal(t, time.Date(2024, 1, 13, 10, 0, 0, 0, time.UTC), *p2.UpdatedAt)

		store, err := NewStore(content)
		require.NoError(t, err)
		assert.Equal(t, 1, NewManager(store).Search(SearchParams{}).TotalCount)
	})

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "UnknownAuthor",
			data: `
[[categories]]
id = "c1"
[[posts]]
id = "p1"
authorId = "ghost"
categoryId = "c1"
publishedAt = "2024-01-10"
`,
			wantErr: `unknown author "ghost"`,
		},
		{
			name: "UnknownTag",
			data: `
[[authors]]
id = "a"
[[categories]]
id = "c1"
[[posts]]
id = "p1"
authorId = "a"
categoryId = "c1"
tagIds = ["nope"]
publishedAt = "2024-01-10"
`,
			wantErr: `unknown tag "nope"`,
		},
		{
			name: "InvalidDate",
			data: `
[[authors]]
id = "a"
[[categories]]
id = "c1"
[[posts]]
id = "p1"
authorId = "a"
categoryId = "c1"
publishedAt = "yesterday"
`,
			wantErr: `invalid publishedAt "yesterday"`,
		},
		{
			name:    "MalformedTOML",
			data:    `[[posts]`,
			wantErr: "decode seed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSeed(tc.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(seedData), 0o600))

	content, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, content.Posts, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadSeed_Shipped(t *testing.T) {
	content, err := LoadSeed("../../data/seed.toml")
	require.NoError(t, err)

	store, err := NewStore(content)
	require.NoError(t, err)
	m := NewManager(store)

	result := m.Search(SearchParams{})
	assert.Equal(t, 6, result.TotalCount)
	assert.Equal(t, "goat-yoga-returns", result.Posts[0].Slug)

	wilbur := m.PostBySlug("wilbur-arrives")
	require.NotNil(t, wilbur)
	require.Len(t, wilbur.Gallery, 1)
	assert.Equal(t, "Wilbur on greeting duty", wilbur.Gallery[0].Caption)
	require.NotNil(t, wilbur.NewsletterDate)

	assert.Equal(t, []string{"p-005", "p-003", "p-002"}, ids(m.RelatedPosts(*wilbur, 3)))
}
