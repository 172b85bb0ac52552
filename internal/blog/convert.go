package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/sanctuary-blog/internal/db"
)

// ContentSource is the database view LoadContent reads from.
type ContentSource interface {
	Authors(ctx context.Context) ([]db.Author, error)
	Categories(ctx context.Context) ([]db.Category, error)
	Tags(ctx context.Context) ([]db.Tag, error)
	Posts(ctx context.Context) ([]db.Post, error)
}

func NewAuthor(a *db.Author) Author {
	return Author{
		ID:               a.ID,
		Name:             a.Name,
		Role:             a.Role,
		Bio:              a.Bio,
		Image:            a.Image,
		YearsAtSanctuary: a.YearsAtSanctuary,
		Specialties:      a.Specialties,
		Social: Social{
			Email:     a.Social.Email,
			Twitter:   a.Social.Twitter,
			Facebook:  a.Social.Facebook,
			Instagram: a.Social.Instagram,
			LinkedIn:  a.Social.LinkedIn,
		},
	}
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		Color:       c.Color,
		Icon:        c.Icon,
	}
}

func NewTag(t *db.Tag) Tag {
	return Tag{
		ID:   t.ID,
		Name: t.Name,
		Slug: t.Slug,
	}
}

func NewMedia(m db.Media) Media {
	return Media{
		ID:        m.ID,
		Type:      m.Type,
		URL:       m.URL,
		Alt:       m.Alt,
		Caption:   m.Caption,
		Thumbnail: m.Thumbnail,
	}
}

// NewPost converts a row with loaded relations. Tags are resolved by the caller.
func NewPost(p *db.Post) Post {
	post := Post{
		ID:               p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		FeaturedImage:    p.FeaturedImage,
		FeaturedImageAlt: p.FeaturedImageAlt,
		PublishedAt:      p.PublishedAt,
		UpdatedAt:        p.UpdatedAt,
		Status:           Status(p.StatusID),
		Featured:         p.Featured,
		ReadTime:         p.ReadTime,
		Views:            p.Views,
		Likes:            p.Likes,
		Shares:           p.Shares,
		RelatedAnimals:   p.RelatedAnimals,
		AllowComments:    p.AllowComments,
		CommentCount:     p.CommentCount,
		SentInNewsletter: p.SentInNewsletter,
		NewsletterDate:   p.NewsletterDate,
		SEO: SEO{
			MetaTitle:       p.SEO.MetaTitle,
			MetaDescription: p.SEO.MetaDescription,
			Keywords:        p.SEO.Keywords,
		},
	}

	if p.Author != nil {
		post.Author = NewAuthor(p.Author)
	}
	if p.Category != nil {
		post.Category = NewCategory(p.Category)
	}
	if len(p.Gallery) > 0 {
		post.Gallery = make([]Media, len(p.Gallery))
		for i := range p.Gallery {
			post.Gallery[i] = NewMedia(p.Gallery[i])
		}
	}
	if post.ReadTime == 0 {
		post.ReadTime = ReadTime(post.Content)
	}

	return post
}

// LoadContent reads the whole blog from src.
func LoadContent(ctx context.Context, src ContentSource) (Content, error) {
	dbAuthors, err := src.Authors(ctx)
	if err != nil {
		return Content{}, fmt.Errorf("db get authors: %w", err)
	}
	dbCategories, err := src.Categories(ctx)
	if err != nil {
		return Content{}, fmt.Errorf("db get categories: %w", err)
	}
	dbTags, err := src.Tags(ctx)
	if err != nil {
		return Content{}, fmt.Errorf("db get tags: %w", err)
	}
	dbPosts, err := src.Posts(ctx)
	if err != nil {
		return Content{}, fmt.Errorf("db get posts: %w", err)
	}

	content := Content{
		Authors:    make([]Author, len(dbAuthors)),
		Categories: make([]Category, len(dbCategories)),
		Tags:       make([]Tag, len(dbTags)),
		Posts:      make([]Post, len(dbPosts)),
	}
	for i := range dbAuthors {
		content.Authors[i] = NewAuthor(&dbAuthors[i])
	}
	for i := range dbCategories {
		content.Categories[i] = NewCategory(&dbCategories[i])
	}

	tagIndex := make(map[string]Tag, len(dbTags))
	for i := range dbTags {
		content.Tags[i] = NewTag(&dbTags[i])
		tagIndex[content.Tags[i].ID] = content.Tags[i]
	}

	for i := range dbPosts {
		post := NewPost(&dbPosts[i])
		post.Tags = make([]Tag, 0, len(dbPosts[i].TagIDs))
		for _, id := range dbPosts[i].TagIDs {
			if t, ok := tagIndex[id]; ok {
				post.Tags = append(post.Tags, t)
			}
		}
		content.Posts[i] = post
	}

	return content, nil
}
