package blog

import (
	"cmp"
	"slices"
)

func published(posts []Post) []Post {
	result := make([]Post, 0, len(posts))
	for _, p := range posts {
		if p.IsPublished() {
			result = append(result, p)
		}
	}
	return result
}

// countAndViews sums membership and views over posts matching fn.
func countAndViews(posts []Post, fn func(p Post) bool) (count, views int) {
	for _, p := range posts {
		if fn(p) {
			count++
			views += p.Views
		}
	}
	return count, views
}

func categoryStats(s snapshot) []CategoryStat {
	posts := published(s.posts)
	stats := make([]CategoryStat, len(s.categories))
	for i, c := range s.categories {
		count, views := countAndViews(posts, func(p Post) bool { return p.Category.ID == c.ID })
		stats[i] = CategoryStat{Category: c, PostCount: count, TotalViews: views}
	}
	return stats
}

func tagStats(s snapshot) []TagStat {
	posts := published(s.posts)
	stats := make([]TagStat, len(s.tags))
	for i, t := range s.tags {
		count, views := countAndViews(posts, func(p Post) bool { return p.HasTag(t.Slug) })
		stats[i] = TagStat{Tag: t, PostCount: count, TotalViews: views}
	}
	return stats
}

func authorStats(s snapshot) []AuthorStat {
	posts := published(s.posts)
	stats := make([]AuthorStat, len(s.authors))
	for i, a := range s.authors {
		count, views := countAndViews(posts, func(p Post) bool { return p.Author.ID == a.ID })
		stats[i] = AuthorStat{Author: a, PostCount: count, TotalViews: views}
	}
	return stats
}

func analytics(s snapshot) Analytics {
	posts := published(s.posts)

	var a Analytics
	readTime := 0
	for _, p := range posts {
		a.TotalViews += p.Views
		a.TotalLikes += p.Likes
		a.TotalShares += p.Shares
		readTime += p.ReadTime
	}
	a.TotalPosts = len(posts)
	if len(posts) > 0 {
		a.AverageReadTime = float64(readTime) / float64(len(posts))
	}

	categories := categoryStats(s)
	slices.SortStableFunc(categories, func(x, y CategoryStat) int {
		return cmp.Compare(y.TotalViews, x.TotalViews)
	})
	a.TopCategories = categories[:min(topCategoriesLimit, len(categories))]

	slices.SortStableFunc(posts, func(x, y Post) int {
		return cmp.Compare(y.Engagement(), x.Engagement())
	})
	a.TopPosts = posts[:min(topPostsLimit, len(posts))]

	return a
}
