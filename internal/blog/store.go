package blog

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Store owns the blog content for the lifetime of the process. Readers get
// copies through snapshot; counters and admin writes go through the write lock.
type Store struct {
	mu         sync.RWMutex
	authors    []Author
	categories []Category
	tags       []Tag
	posts      []Post

	now func() time.Time
}

type snapshot struct {
	authors    []Author
	categories []Category
	tags       []Tag
	posts      []Post
}

// NewStore validates content and builds a store from it.
func NewStore(content Content) (*Store, error) {
	s := &Store{
		authors:    slices.Clone(content.Authors),
		categories: slices.Clone(content.Categories),
		tags:       slices.Clone(content.Tags),
		posts:      slices.Clone(content.Posts),
		now:        time.Now,
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	s.recount()

	return s, nil
}

func (s *Store) validate() error {
	if err := uniqueBy(s.authors, func(a Author) string { return a.ID }, "author id"); err != nil {
		return err
	}
	if err := uniqueBy(s.categories, func(c Category) string { return c.ID }, "category id"); err != nil {
		return err
	}
	if err := uniqueBy(s.categories, func(c Category) string { return c.Slug }, "category slug"); err != nil {
		return err
	}
	if err := uniqueBy(s.tags, func(t Tag) string { return t.ID }, "tag id"); err != nil {
		return err
	}
	if err := uniqueBy(s.tags, func(t Tag) string { return t.Slug }, "tag slug"); err != nil {
		return err
	}
	if err := uniqueBy(s.posts, func(p Post) string { return p.ID }, "post id"); err != nil {
		return err
	}
	if err := uniqueBy(s.posts, func(p Post) string { return p.Slug }, "post slug"); err != nil {
		return err
	}

	for _, p := range s.posts {
		if p.Author.ID == "" {
			return fmt.Errorf("post %q has no author", p.ID)
		}
		if p.Category.ID == "" {
			return fmt.Errorf("post %q has no category", p.ID)
		}
	}

	return nil
}

func uniqueBy[T any](list []T, key func(T) string, what string) error {
	seen := make(map[string]struct{}, len(list))
	for _, item := range list {
		k := key(item)
		if k == "" {
			return fmt.Errorf("empty %s", what)
		}
		if _, ok := seen[k]; ok {
			return fmt.Errorf("duplicate %s %q", what, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}

// recount refreshes the denormalized category and tag counters from the
// published posts. Callers hold the write lock.
func (s *Store) recount() {
	categoryCounts := make(map[string]int, len(s.categories))
	tagCounts := make(map[string]int, len(s.tags))
	for _, p := range s.posts {
		if !p.IsPublished() {
			continue
		}
		categoryCounts[p.Category.ID]++
		for _, t := range p.Tags {
			tagCounts[t.ID]++
		}
	}

	for i := range s.categories {
		s.categories[i].PostCount = categoryCounts[s.categories[i].ID]
	}
	for i := range s.tags {
		s.tags[i].Count = tagCounts[s.tags[i].ID]
	}

	// embedded copies follow the reference lists; tag slices are replaced,
	// not written in place, because snapshots share them
	for i := range s.posts {
		s.posts[i].Category.PostCount = categoryCounts[s.posts[i].Category.ID]
		tags := make([]Tag, len(s.posts[i].Tags))
		for j, t := range s.posts[i].Tags {
			t.Count = tagCounts[t.ID]
			tags[j] = t
		}
		s.posts[i].Tags = tags
	}
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return snapshot{
		authors:    slices.Clone(s.authors),
		categories: slices.Clone(s.categories),
		tags:       slices.Clone(s.tags),
		posts:      slices.Clone(s.posts),
	}
}

func (s *Store) indexByID(id string) int {
	return slices.IndexFunc(s.posts, func(p Post) bool { return p.ID == id })
}

func (s *Store) indexBySlug(slug string) int {
	return slices.IndexFunc(s.posts, func(p Post) bool { return p.Slug == slug })
}

// bump applies fn to the post with the given id. Unknown ids are ignored.
func (s *Store) bump(id string, fn func(p *Post)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexByID(id); i >= 0 {
		fn(&s.posts[i])
	}
}

func (s *Store) IncrementViews(id string) {
	s.bump(id, func(p *Post) { p.Views++ })
}

func (s *Store) IncrementLikes(id string) {
	s.bump(id, func(p *Post) { p.Likes++ })
}

func (s *Store) IncrementShares(id string) {
	s.bump(id, func(p *Post) { p.Shares++ })
}

// insert adds a new post. The slug must be unused.
func (s *Store) insert(p Post) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexBySlug(p.Slug) >= 0 {
		return Post{}, fmt.Errorf("insert %q: %w", p.Slug, ErrSlugExists)
	}

	s.posts = append(s.posts, p)
	s.recount()

	return s.posts[len(s.posts)-1], nil
}

// replace overwrites the editable fields of an existing post, keeping counters.
func (s *Store) replace(id string, p Post) (Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return Post{}, fmt.Errorf("update %q: %w", id, ErrNotFound)
	}
	if j := s.indexBySlug(p.Slug); j >= 0 && j != i {
		return Post{}, fmt.Errorf("update %q: %w", id, ErrSlugExists)
	}

	old := s.posts[i]
	p.ID = old.ID
	p.Views, p.Likes, p.Shares = old.Views, old.Likes, old.Shares
	p.CommentCount = old.CommentCount
	p.SentInNewsletter, p.NewsletterDate = old.SentInNewsletter, old.NewsletterDate
	if p.PublishedAt.IsZero() {
		p.PublishedAt = old.PublishedAt
	}
	updated := s.now()
	p.UpdatedAt = &updated

	s.posts[i] = p
	s.recount()

	return s.posts[i], nil
}
