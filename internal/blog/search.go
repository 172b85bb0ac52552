package blog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate accepts the ISO-8601 shapes the site produces. A date-only value
// is UTC midnight.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type predicate func(p Post) bool

// filters returns the active predicates for params in evaluation order.
// The status filter is always first.
func filters(params SearchParams) []predicate {
	list := []predicate{Post.IsPublished}

	if params.Query != "" {
		q := strings.ToLower(params.Query)
		list = append(list, func(p Post) bool { return matchesText(p, q) })
	}

	if params.Category != "" {
		list = append(list, func(p Post) bool { return p.Category.Slug == params.Category })
	}

	if params.Tag != "" {
		list = append(list, func(p Post) bool { return p.HasTag(params.Tag) })
	}

	if params.Author != "" {
		list = append(list, func(p Post) bool { return p.Author.ID == params.Author })
	}

	if params.DateFrom != "" {
		from, ok := parseDate(params.DateFrom)
		list = append(list, func(p Post) bool { return ok && !p.PublishedAt.Before(from) })
	}

	if params.DateTo != "" {
		to, ok := parseDate(params.DateTo)
		list = append(list, func(p Post) bool { return ok && !p.PublishedAt.After(to) })
	}

	if params.Featured != nil {
		featured := *params.Featured
		list = append(list, func(p Post) bool { return p.Featured == featured })
	}

	return list
}

// matchesText reports whether the lowercased query is a substring of any
// searchable field. The query is not tokenized.
func matchesText(p Post, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Excerpt), q) ||
		strings.Contains(strings.ToLower(p.Content), q) ||
		strings.Contains(strings.ToLower(p.Author.Name), q) {
		return true
	}

	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}

	return false
}

func filterPosts(posts []Post, params SearchParams) []Post {
	result := posts
	for _, keep := range filters(params) {
		next := make([]Post, 0, len(result))
		for _, p := range result {
			if keep(p) {
				next = append(next, p)
			}
		}
		result = next
	}
	return result
}

// comparator builds the sort function for key and order. popularity and
// views both order by the view counter.
func comparator(key SortKey, order SortOrder) func(a, b Post) int {
	var compare func(a, b Post) int
	switch key {
	case SortByPopularity, SortByViews:
		compare = func(a, b Post) int { return cmp.Compare(a.Views, b.Views) }
	case SortByAlphabetical:
		coll := collate.New(language.English)
		compare = func(a, b Post) int { return coll.CompareString(a.Title, b.Title) }
	default:
		compare = func(a, b Post) int { return a.PublishedAt.Compare(b.PublishedAt) }
	}

	if order == SortAsc {
		return compare
	}

	return func(a, b Post) int { return -compare(a, b) }
}

func sortPosts(posts []Post, key SortKey, order SortOrder) {
	slices.SortStableFunc(posts, comparator(key, order))
}

// paginate returns the 1-based page of posts and the total page count.
func paginate(posts []Post, page, limit int) ([]Post, int) {
	totalPages := len(posts) / limit
	if len(posts)%limit != 0 {
		totalPages++
	}

	if page > totalPages {
		return []Post{}, totalPages
	}

	start := (page - 1) * limit
	end := start + min(limit, len(posts)-start)

	return posts[start:end], totalPages
}

func search(s snapshot, params SearchParams, defaultLimit int) SearchResult {
	page := params.Page
	if page < 1 {
		page = 1
	}

	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	filtered := filterPosts(s.posts, params)
	sortPosts(filtered, params.SortBy, params.SortOrder)
	posts, totalPages := paginate(filtered, page, limit)

	return SearchResult{
		Posts:       posts,
		TotalCount:  len(filtered),
		TotalPages:  totalPages,
		CurrentPage: page,
		Categories:  s.categories,
		Tags:        s.tags,
		Authors:     s.authors,
	}
}
