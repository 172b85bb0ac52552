package blog

import (
	"cmp"
	"slices"
)

const (
	categoryWeight = 3
	tagWeight      = 2
	authorWeight   = 1
)

// relevance scores candidate against current by shared category, tags and author.
func relevance(current, candidate Post) int {
	score := 0

	if candidate.Category.ID == current.Category.ID {
		score += categoryWeight
	}

	for _, t := range candidate.Tags {
		if slices.ContainsFunc(current.Tags, func(c Tag) bool { return c.ID == t.ID }) {
			score += tagWeight
		}
	}

	if candidate.Author.ID == current.Author.ID {
		score += authorWeight
	}

	return score
}

type scoredPost struct {
	post  Post
	score int
}

func relatedPosts(posts []Post, current Post, limit int) []Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	scored := make([]scoredPost, 0, len(posts))
	for _, p := range posts {
		if !p.IsPublished() || p.ID == current.ID {
			continue
		}
		scored = append(scored, scoredPost{post: p, score: relevance(current, p)})
	}

	slices.SortStableFunc(scored, func(a, b scoredPost) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(b.post.Views, a.post.Views)
	})

	result := make([]Post, 0, min(limit, len(scored)))
	for _, s := range scored[:min(limit, len(scored))] {
		result = append(result, s.post)
	}

	return result
}
