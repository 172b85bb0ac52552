package blog

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

type SortKey string

const (
	SortByDate         SortKey = "date"
	SortByPopularity   SortKey = "popularity"
	SortByAlphabetical SortKey = "alphabetical"
	SortByViews        SortKey = "views"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageSize     = 10
	DefaultRelatedLimit = 3

	topCategoriesLimit = 5
	topPostsLimit      = 10
)

type Social struct {
	Email     string `json:"email,omitempty" toml:"email"`
	Twitter   string `json:"twitter,omitempty" toml:"twitter"`
	Facebook  string `json:"facebook,omitempty" toml:"facebook"`
	Instagram string `json:"instagram,omitempty" toml:"instagram"`
	LinkedIn  string `json:"linkedin,omitempty" toml:"linkedin"`
}

type Author struct {
	ID               string   `json:"id" toml:"id"`
	Name             string   `json:"name" toml:"name"`
	Role             string   `json:"role" toml:"role"`
	Bio              string   `json:"bio" toml:"bio"`
	Image            string   `json:"image" toml:"image"`
	Social           Social   `json:"social" toml:"social"`
	YearsAtSanctuary int      `json:"yearsAtSanctuary" toml:"yearsAtSanctuary"`
	Specialties      []string `json:"specialties" toml:"specialties"`
}

type Category struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	Slug        string `json:"slug" toml:"slug"`
	Color       string `json:"color" toml:"color"`
	Icon        string `json:"icon" toml:"icon"`
	// PostCount is recomputed by the Store on every mutation.
	PostCount int `json:"postCount" toml:"-"`
}

type Tag struct {
	ID    string `json:"id" toml:"id"`
	Name  string `json:"name" toml:"name"`
	Slug  string `json:"slug" toml:"slug"`
	Count int    `json:"count" toml:"-"`
}

type Media struct {
	ID        string `json:"id" toml:"id"`
	Type      string `json:"type" toml:"type"`
	URL       string `json:"url" toml:"url"`
	Alt       string `json:"alt" toml:"alt"`
	Caption   string `json:"caption,omitempty" toml:"caption"`
	Thumbnail string `json:"thumbnail,omitempty" toml:"thumbnail"`
}

type SEO struct {
	MetaTitle       string   `json:"metaTitle" toml:"metaTitle"`
	MetaDescription string   `json:"metaDescription" toml:"metaDescription"`
	Keywords        []string `json:"keywords" toml:"keywords"`
}

type Post struct {
	ID               string     `json:"id"`
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
	Status           Status     `json:"status"`
	Featured         bool       `json:"featured"`
	ReadTime         int        `json:"readTime"`
	Views            int        `json:"views"`
	Likes            int        `json:"likes"`
	Shares           int        `json:"shares"`
	SEO              SEO        `json:"seo"`
	RelatedAnimals   []string   `json:"relatedAnimals,omitempty"`
	AllowComments    bool       `json:"allowComments"`
	CommentCount     int        `json:"commentCount"`
	SentInNewsletter bool       `json:"sentInNewsletter"`
	NewsletterDate   *time.Time `json:"newsletterDate,omitempty"`
}

func (p Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// Engagement is the composite used to rank top posts.
func (p Post) Engagement() int {
	return p.Views + p.Likes + p.Shares
}

func (p Post) HasTag(slug string) bool {
	for _, t := range p.Tags {
		if t.Slug == slug {
			return true
		}
	}
	return false
}

// SearchParams is the query parameter bag. Zero values mean no constraint.
type SearchParams struct {
	Query     string
	Category  string
	Tag       string
	Author    string
	DateFrom  string
	DateTo    string
	Featured  *bool
	SortBy    SortKey
	SortOrder SortOrder
	Page      int
	Limit     int
}

type SearchResult struct {
	Posts       []Post     `json:"posts"`
	TotalCount  int        `json:"totalCount"`
	TotalPages  int        `json:"totalPages"`
	CurrentPage int        `json:"currentPage"`
	Categories  []Category `json:"categories"`
	Tags        []Tag      `json:"tags"`
	Authors     []Author   `json:"authors"`
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
	TopPosts        []Post         `json:"topPosts"`
}

// Content is the full reference data set a Store is built from.
type Content struct {
	Authors    []Author
	Categories []Category
	Tags       []Tag
	Posts      []Post
}
