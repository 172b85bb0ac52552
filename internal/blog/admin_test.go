package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() PostInput {
	return PostInput{
		Title:      "Baby Goats Born",
		Excerpt:    "Three kids arrived overnight.",
		Content:    "<p>Three healthy kids were born in the east barn.</p>",
		AuthorID:   sarah.ID,
		CategoryID: animalUpdates.ID,
		TagIDs:     []string{goatsTag.ID},
		Status:     StatusPublished,
	}
}

func TestManager_CreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("DerivesSlugAndResolvesReferences", func(t *testing.T) {
		m := newTestManager(t, sanctuaryPosts()...)

		p, err := m.CreatePost(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, "baby-goats-born", p.Slug)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, sarah.Name, p.Author.Name)
		assert.Equal(t, animalUpdates.Slug, p.Category.Slug)
		require.Len(t, p.Tags, 1)
		assert.Equal(t, "goats", p.Tags[0].Slug)
		assert.Equal(t, 1, p.ReadTime)
		assert.False(t, p.PublishedAt.IsZero())

		found := m.PostBySlug("baby-goats-born")
		require.NotNil(t, found)
		assert.Equal(t, p.ID, found.ID)
	})

	t.Run("RecountsCategoriesAndTags", func(t *testing.T) {
		m := newTestManager(t, sanctuaryPosts()...)

		_, err := m.CreatePost(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, 3, m.CategoryBySlug("animal-updates").PostCount)
		assert.Equal(t, 3, m.TagBySlug("goats").Count)
	})

	t.Run("SanitizesContent", func(t *testing.T) {
		m := newTestManager(t)
		in := validInput()
		in.Content = `<p onclick="steal()">Hello</p><script>alert(1)</script>`

		p, err := m.CreatePost(ctx, in)
		require.NoError(t, err)

		assert.NotContains(t, p.Content, "script")
		assert.NotContains(t, p.Content, "onclick")
		assert.Contains(t, p.Content, "Hello")
	})

	t.Run("DefaultStatusIsDraft", func(t *testing.T) {
		m := newTestManager(t)
		in := validInput()
		in.Status = ""

		p, err := m.CreatePost(ctx, in)
		require.NoError(t, err)

		assert.Equal(t, StatusDraft, p.Status)
		assert.Zero(t, m.Search(SearchParams{}).TotalCount)
		assert.NotNil(t, m.PostByID(p.ID))
	})

	t.Run("KeepsExplicitPublishedAt", func(t *testing.T) {
		m := newTestManager(t)
		in := validInput()
		in.PublishedAt = &baseTime

		p, err := m.CreatePost(ctx, in)
		require.NoError(t, err)
		assert.True(t, baseTime.Equal(p.PublishedAt))
	})

	t.Run("SlugClash", func(t *testing.T) {
		m := newTestManager(t, sanctuaryPosts()...)
		in := validInput()
		in.Slug = "wilbur-arrives"

		_, err := m.CreatePost(ctx, in)
		assert.ErrorIs(t, err, ErrSlugExists)
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		m := newTestManager(t)
		in := validInput()
		in.Title = "Hi"
		in.AuthorID = "nobody"
		in.Slug = "Not A Slug"
		in.TagIDs = []string{"t1", "t99"}

		_, err := m.CreatePost(ctx, in)
		require.Error(t, err)

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "title")
		assert.Contains(t, verrs, "authorId")
		assert.Contains(t, verrs, "slug")
		assert.Contains(t, verrs, "tagIds")
		assert.NotContains(t, verrs, "categoryId")
	})

	t.Run("UnderivableSlug", func(t *testing.T) {
		m := newTestManager(t)
		in := validInput()
		in.Title = "!!!"

		_, err := m.CreatePost(ctx, in)

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "slug")
	})

	t.Run("CancelledContext", func(t *testing.T) {
		m := newTestManager(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := m.CreatePost(cctx, validInput())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestManager_UpdatePost(t *testing.T) {
	ctx := context.Background()
	updatedAt := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	newManager := func(t *testing.T) *Manager {
		m := newTestManager(t, sanctuaryPosts()...)
		m.store.now = func() time.Time { return updatedAt }
		return m
	}

	t.Run("ReplacesFieldsAndKeepsCounters", func(t *testing.T) {
		m := newManager(t)
		in := validInput()
		in.Slug = "rosie-recovers"
		in.Title = "Rosie Is Home"
		in.CategoryID = education.ID

		p, err := m.UpdatePost(ctx, "rosie-recovers", in)
		require.NoError(t, err)

		assert.Equal(t, "rosie-recovers", p.ID)
		assert.Equal(t, "Rosie Is Home", p.Title)
		assert.Equal(t, education.Slug, p.Category.Slug)
		assert.Equal(t, 200, p.Views)
		assert.Equal(t, 50, p.Likes)
		assert.Equal(t, 20, p.Shares)
		assert.True(t, baseTime.Add(-3*24*time.Hour).Equal(p.PublishedAt))
		require.NotNil(t, p.UpdatedAt)
		assert.Equal(t, updatedAt, *p.UpdatedAt)

		assert.Equal(t, 1, m.CategoryBySlug("animal-updates").PostCount)
		assert.Equal(t, 2, m.CategoryBySlug("education").PostCount)
	})

	t.Run("Unpublish", func(t *testing.T) {
		m := newManager(t)
		in := validInput()
		in.Slug = "goat-yoga"
		in.Status = StatusDraft

		_, err := m.UpdatePost(ctx, "goat-yoga", in)
		require.NoError(t, err)

		assert.Nil(t, m.PostBySlug("goat-yoga"))
		assert.Equal(t, 4, m.Search(SearchParams{}).TotalCount)
	})

	t.Run("UnknownID", func(t *testing.T) {
		m := newManager(t)

		_, err := m.UpdatePost(ctx, "missing", validInput())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SlugTakenByAnotherPost", func(t *testing.T) {
		m := newManager(t)
		in := validInput()
		in.Slug = "hoof-care"

		_, err := m.UpdatePost(ctx, "rosie-recovers", in)
		assert.ErrorIs(t, err, ErrSlugExists)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		m := newManager(t)
		in := validInput()
		in.Excerpt = ""

		_, err := m.UpdatePost(ctx, "rosie-recovers", in)

		var verrs validation.Errors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs, "excerpt")
		assert.Equal(t, "Rosie Recovers After Surgery", m.PostByID("rosie-recovers").Title)
	})
}
