package rest

import "time"

type Social struct {
	Email     string `json:"email,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Author struct {
	AuthorID         string   `json:"id"`
	Name             string   `json:"name"`
	Role             string   `json:"role"`
	Bio              string   `json:"bio"`
	Image            string   `json:"image"`
	Social           Social   `json:"social"`
	YearsAtSanctuary int      `json:"yearsAtSanctuary"`
	Specialties      []string `json:"specialties"`
}

type Category struct {
	CategoryID  string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	PostCount   int    `json:"postCount"`
}

type Tag struct {
	TagID string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type Media struct {
	MediaID   string `json:"id"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

type Post struct {
	PostID           string     `json:"id"`
	Slug             string     `json:"slug"`
	Title            string     `json:"title"`
	Excerpt          string     `json:"excerpt"`
	Content          string     `json:"content"`
	Author           Author     `json:"author"`
	Category         Category   `json:"category"`
	Tags             []Tag      `json:"tags"`
	FeaturedImage    string     `json:"featuredImage"`
	FeaturedImageAlt string     `json:"featuredImageAlt"`
	Gallery          []Media    `json:"gallery,omitempty"`
	PublishedAt      time.Time  `json:"publishedAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
	Status           string     `json:"status"`
	Featured         bool       `json:"featured"`
	ReadTime         int        `json:"readTime"`
	Views            int        `json:"views"`
	Likes            int        `json:"likes"`
	Shares           int        `json:"shares"`
	SEO              SEO        `json:"seo"`
	RelatedAnimals   []string   `json:"relatedAnimals,omitempty"`
	AllowComments    bool       `json:"allowComments"`
	CommentCount     int        `json:"commentCount"`
}

// PostSummary is a post without its body, used in lists.
type PostSummary struct {
	PostID           string    `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	Excerpt          string    `json:"excerpt"`
	Author           Author    `json:"author"`
	Category         Category  `json:"category"`
	Tags             []Tag     `json:"tags"`
	FeaturedImage    string    `json:"featuredImage"`
	FeaturedImageAlt string    `json:"featuredImageAlt"`
	PublishedAt      time.Time `json:"publishedAt"`
	Featured         bool      `json:"featured"`
	ReadTime         int       `json:"readTime"`
	Views            int       `json:"views"`
	Likes            int       `json:"likes"`
	Shares           int       `json:"shares"`
}

type SearchResult struct {
	Posts       []PostSummary `json:"posts"`
	TotalCount  int           `json:"totalCount"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Categories  []Category    `json:"categories"`
	Tags        []Tag         `json:"tags"`
	Authors     []Author      `json:"authors"`
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

// Counters is the engagement state returned after a like or share.
type Counters struct {
	Views  int `json:"views"`
	Likes  int `json:"likes"`
	Shares int `json:"shares"`
}
