package blog

import (
	"slices"
)

// Manager answers blog queries over a Store.
type Manager struct {
	store    *Store
	pageSize int
}

func NewManager(store *Store) *Manager {
	return &Manager{
		store:    store,
		pageSize: DefaultPageSize,
	}
}

// WithPageSize overrides the page size used when SearchParams.Limit is unset.
func (m *Manager) WithPageSize(size int) *Manager {
	if size > 0 {
		m.pageSize = size
	}
	return m
}

// Search filters, sorts and paginates published posts. It never fails:
// unmatched filters and pages past the end give an empty page.
func (m *Manager) Search(params SearchParams) SearchResult {
	return search(m.store.snapshot(), params, m.pageSize)
}

// RelatedPosts returns up to limit other published posts ranked by relevance
// to post. A non-positive limit means DefaultRelatedLimit.
func (m *Manager) RelatedPosts(post Post, limit int) []Post {
	return relatedPosts(m.store.snapshot().posts, post, limit)
}

// RelatedBySlug is RelatedPosts for the published post with slug.
// Returns nil when there is no such post.
func (m *Manager) RelatedBySlug(slug string, limit int) []Post {
	s := m.store.snapshot()
	i := slices.IndexFunc(s.posts, func(p Post) bool { return p.Slug == slug && p.IsPublished() })
	if i < 0 {
		return nil
	}

	return relatedPosts(s.posts, s.posts[i], limit)
}

func (m *Manager) CategoryStats() []CategoryStat {
	return categoryStats(m.store.snapshot())
}

func (m *Manager) TagStats() []TagStat {
	return tagStats(m.store.snapshot())
}

func (m *Manager) AuthorStats() []AuthorStat {
	return authorStats(m.store.snapshot())
}

func (m *Manager) Analytics() Analytics {
	return analytics(m.store.snapshot())
}

func (m *Manager) IncrementPostViews(id string) {
	m.store.IncrementViews(id)
}

func (m *Manager) IncrementPostLikes(id string) {
	m.store.IncrementLikes(id)
}

func (m *Manager) IncrementPostShares(id string) {
	m.store.IncrementShares(id)
}

// PostBySlug returns the published post with slug, or nil.
func (m *Manager) PostBySlug(slug string) *Post {
	for _, p := range m.store.snapshot().posts {
		if p.Slug == slug && p.IsPublished() {
			return &p
		}
	}
	return nil
}

// PostByID returns the post with id regardless of status, or nil.
func (m *Manager) PostByID(id string) *Post {
	for _, p := range m.store.snapshot().posts {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// FeaturedPosts returns the newest featured posts.
func (m *Manager) FeaturedPosts(limit int) []Post {
	featured := true
	return m.Search(SearchParams{Featured: &featured, Limit: limit}).Posts
}

// RecentPosts returns the newest published posts.
func (m *Manager) RecentPosts(limit int) []Post {
	return m.Search(SearchParams{Limit: limit}).Posts
}

func (m *Manager) Categories() []Category {
	return m.store.snapshot().categories
}

func (m *Manager) Tags() []Tag {
	return m.store.snapshot().tags
}

func (m *Manager) Authors() []Author {
	return m.store.snapshot().authors
}

func (m *Manager) CategoryBySlug(slug string) *Category {
	for _, c := range m.store.snapshot().categories {
		if c.Slug == slug {
			return &c
		}
	}
	return nil
}

func (m *Manager) TagBySlug(slug string) *Tag {
	for _, t := range m.store.snapshot().tags {
		if t.Slug == slug {
			return &t
		}
	}
	return nil
}

func (m *Manager) AuthorByID(id string) *Author {
	for _, a := range m.store.snapshot().authors {
		if a.ID == id {
			return &a
		}
	}
	return nil
}
