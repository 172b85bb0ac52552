package rpc

import "github.com/daniilsolovey/sanctuary-blog/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewAuthor(a blog.Author) Author {
	return Author{
		AuthorID: a.ID,
		Name:     a.Name,
		Role:     a.Role,
		Image:    a.Image,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Color:      c.Color,
		Icon:       c.Icon,
		PostCount:  c.PostCount,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		Count: t.Count,
	}
}

func NewPost(p blog.Post) Post {
	return Post{
		PostID:        p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		Author:        NewAuthor(p.Author),
		Category:      NewCategory(p.Category),
		Tags:          Map(p.Tags, NewTag),
		FeaturedImage: p.FeaturedImage,
		PublishedAt:   p.PublishedAt,
		Featured:      p.Featured,
		ReadTime:      p.ReadTime,
		Views:         p.Views,
		Likes:         p.Likes,
		Shares:        p.Shares,
	}
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		PostID:        p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		Excerpt:       p.Excerpt,
		Author:        NewAuthor(p.Author),
		Category:      NewCategory(p.Category),
		Tags:          Map(p.Tags, NewTag),
		FeaturedImage: p.FeaturedImage,
		PublishedAt:   p.PublishedAt,
		Featured:      p.Featured,
		ReadTime:      p.ReadTime,
		Views:         p.Views,
	}
}

func NewSearchResult(r blog.SearchResult) SearchResult {
	return SearchResult{
		Posts:       Map(r.Posts, NewPostSummary),
		TotalCount:  r.TotalCount,
		TotalPages:  r.TotalPages,
		CurrentPage: r.CurrentPage,
	}
}

func NewCategoryStat(s blog.CategoryStat) CategoryStat {
	return CategoryStat{Category: NewCategory(s.Category), PostCount: s.PostCount, TotalViews: s.TotalViews}
}

func NewTagStat(s blog.TagStat) TagStat {
	return TagStat{Tag: NewTag(s.Tag), PostCount: s.PostCount, TotalViews: s.TotalViews}
}

func NewAuthorStat(s blog.AuthorStat) AuthorStat {
	return AuthorStat{Author: NewAuthor(s.Author), PostCount: s.PostCount, TotalViews: s.TotalViews}
}

func NewAnalytics(a blog.Analytics) Analytics {
	return Analytics{
		TotalPosts:      a.TotalPosts,
		TotalViews:      a.TotalViews,
		TotalLikes:      a.TotalLikes,
		TotalShares:     a.TotalShares,
		AverageReadTime: a.AverageReadTime,
		TopCategories:   Map(a.TopCategories, NewCategoryStat),
		TopPosts:        Map(a.TopPosts, NewPostSummary),
	}
}
