package rest

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
		AuthorID:         a.ID,
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

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
		Slug:        c.Slug,
		Color:       c.Color,
		Icon:        c.Icon,
		PostCount:   c.PostCount,
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

func NewMedia(m blog.Media) Media {
	return Media{
		MediaID:   m.ID,
		Type:      m.Type,
		URL:       m.URL,
		Alt:       m.Alt,
		Caption:   m.Caption,
		Thumbnail: m.Thumbnail,
	}
}

func NewPost(p blog.Post) Post {
	post := Post{
		PostID:           p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Excerpt:          p.Excerpt,
		Content:          p.Content,
		Author:           NewAuthor(p.Author),
		Category:         NewCategory(p.Category),
		Tags:             Map(p.Tags, NewTag),
		FeaturedImage:    p.FeaturedImage,
		FeaturedImageAlt: p.FeaturedImageAlt,
		PublishedAt:      p.PublishedAt,
		UpdatedAt:        p.UpdatedAt,
		Status:           string(p.Status),
		Featured:         p.Featured,
		ReadTime:         p.ReadTime,
		Views:            p.Views,
		Likes:            p.Likes,
		Shares:           p.Shares,
		RelatedAnimals:   p.RelatedAnimals,
		AllowComments:    p.AllowComments,
		CommentCount:     p.CommentCount,
		SEO: SEO{
			MetaTitle:       p.SEO.MetaTitle,
			MetaDescription: p.SEO.MetaDescription,
			Keywords:        p.SEO.Keywords,
		},
	}

	if len(p.Gallery) > 0 {
		post.Gallery = Map(p.Gallery, NewMedia)
	}

	return post
}

func NewPostSummary(p blog.Post) PostSummary {
	return PostSummary{
		PostID:           p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Excerpt:          p.Excerpt,
		Author:           NewAuthor(p.Author),
		Category:         NewCategory(p.Category),
		Tags:             Map(p.Tags, NewTag),
		FeaturedImage:    p.FeaturedImage,
		FeaturedImageAlt: p.FeaturedImageAlt,
		PublishedAt:      p.PublishedAt,
		Featured:         p.Featured,
		ReadTime:         p.ReadTime,
		Views:            p.Views,
		Likes:            p.Likes,
		Shares:           p.Shares,
	}
}

func NewSearchResult(r blog.SearchResult) SearchResult {
	return SearchResult{
		Posts:       Map(r.Posts, NewPostSummary),
		TotalCount:  r.TotalCount,
		TotalPages:  r.TotalPages,
		CurrentPage: r.CurrentPage,
		Categories:  Map(r.Categories, NewCategory),
		Tags:        Map(r.Tags, NewTag),
		Authors:     Map(r.Authors, NewAuthor),
	}
}

func NewCategoryStat(s blog.CategoryStat) CategoryStat {
	return CategoryStat{
		Category:   NewCategory(s.Category),
		PostCount:  s.PostCount,
		TotalViews: s.TotalViews,
	}
}

func NewTagStat(s blog.TagStat) TagStat {
	return TagStat{
		Tag:        NewTag(s.Tag),
		PostCount:  s.PostCount,
		TotalViews: s.TotalViews,
	}
}

func NewAuthorStat(s blog.AuthorStat) AuthorStat {
	return AuthorStat{
		Author:     NewAuthor(s.Author),
		PostCount:  s.PostCount,
		TotalViews: s.TotalViews,
	}
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

func NewCounters(p blog.Post) Counters {
	return Counters{
		Views:  p.Views,
		Likes:  p.Likes,
		Shares: p.Shares,
	}
}
