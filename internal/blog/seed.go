package blog

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type seedPost struct {
	ID               string   `toml:"id"`
	Slug             string   `toml:"slug"`
	Title            string   `toml:"title"`
	Excerpt          string   `toml:"excerpt"`
	Content          string   `toml:"content"`
	AuthorID         string   `toml:"authorId"`
	CategoryID       string   `toml:"categoryId"`
	TagIDs           []string `toml:"tagIds"`
	FeaturedImage    string   `toml:"featuredImage"`
	FeaturedImageAlt string   `toml:"featuredImageAlt"`
	Gallery          []Media  `toml:"gallery"`
	PublishedAt      string   `toml:"publishedAt"`
	UpdatedAt        string   `toml:"updatedAt"`
	Status           Status   `toml:"status"`
	Featured         bool     `toml:"featured"`
	ReadTime         int      `toml:"readTime"`
	Views            int      `toml:"views"`
	Likes            int      `toml:"likes"`
	Shares           int      `toml:"shares"`
	SEO              SEO      `toml:"seo"`
	RelatedAnimals   []string `toml:"relatedAnimals"`
	AllowComments    bool     `toml:"allowComments"`
	CommentCount     int      `toml:"commentCount"`
	SentInNewsletter bool     `toml:"sentInNewsletter"`
	NewsletterDate   string   `toml:"newsletterDate"`
}

type seedFile struct {
	Authors    []Author   `toml:"authors"`
	Categories []Category `toml:"categories"`
	Tags       []Tag      `toml:"tags"`
	Posts      []seedPost `toml:"posts"`
}

// LoadSeed reads content from a TOML file.
func LoadSeed(path string) (Content, error) {
	var f seedFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Content{}, fmt.Errorf("decode seed %s: %w", path, err)
	}

	content, err := f.content()
	if err != nil {
		return Content{}, fmt.Errorf("seed %s: %w", path, err)
	}

	return content, nil
}

// DecodeSeed is LoadSeed for in-memory TOML.
func DecodeSeed(data string) (Content, error) {
	var f seedFile
	if _, err := toml.Decode(data, &f); err != nil {
		return Content{}, fmt.Errorf("decode seed: %w", err)
	}

	return f.content()
}

func (f seedFile) content() (Content, error) {
	authors := make(map[string]Author, len(f.Authors))
	for _, a := range f.Authors {
		authors[a.ID] = a
	}
	categories := make(map[string]Category, len(f.Categories))
	for _, c := range f.Categories {
		categories[c.ID] = c
	}
	tags := make(map[string]Tag, len(f.Tags))
	for _, t := range f.Tags {
		tags[t.ID] = t
	}

	posts := make([]Post, 0, len(f.Posts))
	for _, sp := range f.Posts {
		p, err := sp.post(authors, categories, tags)
		if err != nil {
			return Content{}, fmt.Errorf("post %q: %w", sp.ID, err)
		}
		posts = append(posts, p)
	}

	return Content{
		Authors:    f.Authors,
		Categories: f.Categories,
		Tags:       f.Tags,
		Posts:      posts,
	}, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, ok := parseDate(s)
	if !ok {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	return &t, nil
}

func (sp seedPost) post(authors map[string]Author, categories map[string]Category, tags map[string]Tag) (Post, error) {
	author, ok := authors[sp.AuthorID]
	if !ok {
		return Post{}, fmt.Errorf("unknown author %q", sp.AuthorID)
	}
	category, ok := categories[sp.CategoryID]
	if !ok {
		return Post{}, fmt.Errorf("unknown category %q", sp.CategoryID)
	}

	postTags := make([]Tag, 0, len(sp.TagIDs))
	for _, id := range sp.TagIDs {
		t, ok := tags[id]
		if !ok {
			return Post{}, fmt.Errorf("unknown tag %q", id)
		}
		postTags = append(postTags, t)
	}

	publishedAt, ok := parseDate(sp.PublishedAt)
	if !ok {
		return Post{}, fmt.Errorf("invalid publishedAt %q", sp.PublishedAt)
	}
	updatedAt, err := parseOptionalDate(sp.UpdatedAt)
	if err != nil {
		return Post{}, fmt.Errorf("updatedAt: %w", err)
	}
	newsletterDate, err := parseOptionalDate(sp.NewsletterDate)
	if err != nil {
		return Post{}, fmt.Errorf("newsletterDate: %w", err)
	}

	status := sp.Status
	if status == "" {
		status = StatusPublished
	}

	readTime := sp.ReadTime
	if readTime == 0 {
		readTime = ReadTime(sp.Content)
	}

	return Post{
		ID:               sp.ID,
		Slug:             sp.Slug,
		Title:            sp.Title,
		Excerpt:          sp.Excerpt,
		Content:          sp.Content,
		Author:           author,
		Category:         category,
		Tags:             postTags,
		FeaturedImage:    sp.FeaturedImage,
		FeaturedImageAlt: sp.FeaturedImageAlt,
		Gallery:          sp.Gallery,
		PublishedAt:      publishedAt,
		UpdatedAt:        updatedAt,
		Status:           status,
		Featured:         sp.Featured,
		ReadTime:         readTime,
		Views:            sp.Views,
		Likes:            sp.Likes,
		Shares:           sp.Shares,
		SEO:              sp.SEO,
		RelatedAnimals:   sp.RelatedAnimals,
		AllowComments:    sp.AllowComments,
		CommentCount:     sp.CommentCount,
		SentInNewsletter: sp.SentInNewsletter,
		NewsletterDate:   newsletterDate,
	}, nil
}
