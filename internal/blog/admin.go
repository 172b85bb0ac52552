package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// PostInput is the editable part of a post as submitted by the admin form.
type PostInput struct {
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Excerpt          string     `json:"excerpt"`
	Content          string     `json:"content"`
	AuthorID         string     `json:"authorId"`
	CategoryID       string     `json:"categoryId"`
	TagIDs           []string   `json:"tagIds"`
	FeaturedImage    string     `json:"featuredImage"`
	FeaturedImageAlt string     `json:"featuredImageAlt"`
	Gallery          []Media    `json:"gallery"`
	PublishedAt      *time.Time `json:"publishedAt"`
	Status           Status     `json:"status"`
	Featured         bool       `json:"featured"`
	SEO              SEO        `json:"seo"`
	RelatedAnimals   []string   `json:"relatedAnimals"`
	AllowComments    bool       `json:"allowComments"`
}

func knownIDs(what string, ids []string) validation.Rule {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return validation.By(func(value interface{}) error {
		id, _ := value.(string)
		if id == "" {
			return nil
		}
		if _, ok := set[id]; !ok {
			return fmt.Errorf("unknown %s %q", what, id)
		}
		return nil
	})
}

var slugRule = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s != "" && !slug.IsSlug(s) {
		return errors.New("must be a lowercase URL-safe slug")
	}
	return nil
})

func (in PostInput) validate(s snapshot) error {
	authorIDs := make([]string, len(s.authors))
	for i, a := range s.authors {
		authorIDs[i] = a.ID
	}
	categoryIDs := make([]string, len(s.categories))
	for i, c := range s.categories {
		categoryIDs[i] = c.ID
	}
	tagIDs := make([]string, len(s.tags))
	for i, t := range s.tags {
		tagIDs[i] = t.ID
	}

	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(3, 200)),
		validation.Field(&in.Slug, slugRule),
		validation.Field(&in.Excerpt, validation.Required),
		validation.Field(&in.Content, validation.Required),
		validation.Field(&in.AuthorID, validation.Required, knownIDs("author", authorIDs)),
		validation.Field(&in.CategoryID, validation.Required, knownIDs("category", categoryIDs)),
		validation.Field(&in.TagIDs, validation.Each(knownIDs("tag", tagIDs))),
		validation.Field(&in.Status, validation.Required, validation.In(StatusDraft, StatusPublished, StatusArchived)),
	)
}

// toPost resolves references against s. The input must be valid.
func (in PostInput) toPost(s snapshot) Post {
	p := Post{
		Slug:             in.Slug,
		Title:            in.Title,
		Excerpt:          in.Excerpt,
		Content:          SanitizeContent(in.Content),
		FeaturedImage:    in.FeaturedImage,
		FeaturedImageAlt: in.FeaturedImageAlt,
		Gallery:          in.Gallery,
		Status:           in.Status,
		Featured:         in.Featured,
		SEO:              in.SEO,
		RelatedAnimals:   in.RelatedAnimals,
		AllowComments:    in.AllowComments,
		Tags:             []Tag{},
	}

	if p.Slug == "" {
		p.Slug = slug.Make(in.Title)
	}
	if in.PublishedAt != nil {
		p.PublishedAt = *in.PublishedAt
	}
	p.ReadTime = ReadTime(p.Content)

	for _, a := range s.authors {
		if a.ID == in.AuthorID {
			p.Author = a
		}
	}
	for _, c := range s.categories {
		if c.ID == in.CategoryID {
			p.Category = c
		}
	}
	for _, id := range in.TagIDs {
		for _, t := range s.tags {
			if t.ID == id {
				p.Tags = append(p.Tags, t)
			}
		}
	}

	return p
}

func (in PostInput) withDefaults() PostInput {
	if in.Status == "" {
		in.Status = StatusDraft
	}
	return in
}

// CreatePost validates in and adds it to the store as a new post.
func (m *Manager) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in = in.withDefaults()
	s := m.store.snapshot()
	if err := in.validate(s); err != nil {
		return nil, err
	}

	p := in.toPost(s)
	if p.Slug == "" {
		return nil, validation.Errors{"slug": errors.New("cannot be derived from title")}
	}
	p.ID = uuid.NewString()
	if p.PublishedAt.IsZero() {
		p.PublishedAt = m.store.now()
	}

	saved, err := m.store.insert(p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return &saved, nil
}

// UpdatePost replaces the editable fields of post id. Counters are kept.
func (m *Manager) UpdatePost(ctx context.Context, id string, in PostInput) (*Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in = in.withDefaults()
	s := m.store.snapshot()
	if err := in.validate(s); err != nil {
		return nil, err
	}

	p := in.toPost(s)
	if p.Slug == "" {
		return nil, validation.Errors{"slug": errors.New("cannot be derived from title")}
	}

	saved, err := m.store.replace(id, p)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return &saved, nil
}
