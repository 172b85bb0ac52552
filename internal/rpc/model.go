package rpc

import (
	"time"

	"github.com/daniilsolovey/sanctuary-blog/internal/blog"
)

const maxLimit = 100

type SearchParams struct {
	//q case-insensitive text in title, excerpt, content, tag names or author name
	Query string `json:"q,omitempty"`
	//category category slug
	Category string `json:"category,omitempty"`
	//tag tag slug
	Tag string `json:"tag,omitempty"`
	//author author id
	Author string `json:"author,omitempty"`
	//dateFrom inclusive lower bound, ISO-8601
	DateFrom string `json:"dateFrom,omitempty"`
	//dateTo inclusive upper bound, ISO-8601
	DateTo string `json:"dateTo,omitempty"`
	//featured featured flag
	Featured *bool `json:"featured,omitempty"`
	//sortBy=date date, popularity, alphabetical or views
	SortBy string `json:"sortBy,omitempty"`
	//sortOrder=desc asc or desc
	SortOrder string `json:"sortOrder,omitempty"`
	//page=1 page number (1-based)
	Page int `json:"page,omitempty"`
	//limit=10 items per page
	Limit int `json:"limit,omitempty"`
}

func (p SearchParams) ToModel() blog.SearchParams {
	return blog.SearchParams{
		Query:     p.Query,
		Category:  p.Category,
		Tag:       p.Tag,
		Author:    p.Author,
		DateFrom:  p.DateFrom,
		DateTo:    p.DateTo,
		Featured:  p.Featured,
		SortBy:    blog.SortKey(p.SortBy),
		SortOrder: blog.SortOrder(p.SortOrder),
		Page:      p.Page,
		Limit:     min(p.Limit, maxLimit),
	}
}

type Author struct {
	AuthorID string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Image    string `json:"image"`
}

type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	PostCount  int    `json:"postCount"`
}

type Tag struct {
	TagID string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type Post struct {
	PostID        string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Author        Author    `json:"author"`
	Category      Category  `json:"category"`
	Tags          []Tag     `json:"tags"`
	FeaturedImage string    `json:"featuredImage"`
	PublishedAt   time.Time `json:"publishedAt"`
	Featured      bool      `json:"featured"`
	ReadTime      int       `json:"readTime"`
	Views         int       `json:"views"`
	Likes         int       `json:"likes"`
	Shares        int       `json:"shares"`
}

type PostSummary struct {
	PostID        string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Author        Author    `json:"author"`
	Category      Category  `json:"category"`
	Tags          []Tag     `json:"tags"`
	FeaturedImage string    `json:"featuredImage"`
	PublishedAt   time.Time `json:"publishedAt"`
	Featured      bool      `json:"featured"`
	ReadTime      int       `json:"readTime"`
	Views         int       `json:"views"`
}

type SearchResult struct {
	Posts       []PostSummary `json:"posts"`
	TotalCount  int           `json:"totalCount"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

type CategoryStat struct {
	Category   Category `json:"category"`
	PostCount  int      `json:"postCount"`
	TotalViews int      `json:"totalViews"`
}

type TagStat struct {
	Tag        Tag `json:"tag"`
	PostCount  int `json:"postCount"`
	TotalViews int `json:"totalViews"`
}

type AuthorStat struct {
	Author     Author `json:"author"`
	PostCount  int    `json:"postCount"`
	TotalViews int    `json:"totalViews"`
}

type Analytics struct {
	TotalPosts      int            `json:"totalPosts"`
	TotalViews      int            `json:"totalViews"`
	TotalLikes      int            `json:"totalLikes"`
	TotalShares     int            `json:"totalShares"`
	AverageReadTime float64        `json:"averageReadTime"`
	TopCategories   []CategoryStat `json:"topCategories"`
	TopPosts        []PostSummary  `json:"topPosts"`
}
