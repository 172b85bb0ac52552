// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Author struct {
		ID, Name, Role, Bio, Image, Social, YearsAtSanctuary, Specialties string
	}
	Category struct {
		ID, Name, Description, Slug, Color, Icon, OrderNumber string
	}
	Tag struct {
		ID, Name, Slug string
	}
	Post struct {
		ID, Slug, Title, Excerpt, Content, AuthorID, CategoryID, TagIDs, FeaturedImage, FeaturedImageAlt, Gallery, PublishedAt, UpdatedAt, StatusID, Featured, ReadTime, Views, Likes, Shares, SEO, RelatedAnimals, AllowComments, CommentCount, SentInNewsletter, NewsletterDate string

		Author, Category string
	}
}{
	Author: struct {
		ID, Name, Role, Bio, Image, Social, YearsAtSanctuary, Specialties string
	}{
		ID:               "authorId",
		Name:             "name",
		Role:             "role",
		Bio:              "bio",
		Image:            "image",
		Social:           "social",
		YearsAtSanctuary: "yearsAtSanctuary",
		Specialties:      "specialties",
	},
	Category: struct {
		ID, Name, Description, Slug, Color, Icon, OrderNumber string
	}{
		ID:          "categoryId",
		Name:        "name",
		Description: "description",
		Slug:        "slug",
		Color:       "color",
		Icon:        "icon",
		OrderNumber: "orderNumber",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "tagId",
		Name: "name",
		Slug: "slug",
	},
	Post: struct {
		ID, Slug, Title, Excerpt, Content, AuthorID, CategoryID, TagIDs, FeaturedImage, FeaturedImageAlt, Gallery, PublishedAt, UpdatedAt, StatusID, Featured, ReadTime, Views, Likes, Shares, SEO, RelatedAnimals, AllowComments, CommentCount, SentInNewsletter, NewsletterDate string

		Author, Category string
	}{
		ID:               "postId",
		Slug:             "slug",
		Title:            "title",
		Excerpt:          "excerpt",
		Content:          "content",
		AuthorID:         "authorId",
		CategoryID:       "categoryId",
		TagIDs:           "tagIds",
		FeaturedImage:    "featuredImage",
		FeaturedImageAlt: "featuredImageAlt",
		Gallery:          "gallery",
		PublishedAt:      "publishedAt",
		UpdatedAt:        "updatedAt",
		StatusID:         "statusId",
		Featured:         "featured",
		ReadTime:         "readTime",
		Views:            "views",
		Likes:            "likes",
		Shares:           "shares",
		SEO:              "seo",
		RelatedAnimals:   "relatedAnimals",
		AllowComments:    "allowComments",
		CommentCount:     "commentCount",
		SentInNewsletter: "sentInNewsletter",
		NewsletterDate:   "newsletterDate",

		Author:   "Author",
		Category: "Category",
	},
}

var Tables = struct {
	Author struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
}{
	Author: struct {
		Name, Alias string
	}{
		Name:  "authors",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
}

type Social struct {
	Email     string `json:"email,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

type Media struct {
	ID        string `json:"id"`
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

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID               string   `pg:"authorId,pk"`
	Name             string   `pg:"name,use_zero"`
	Role             string   `pg:"role,use_zero"`
	Bio              string   `pg:"bio,use_zero"`
	Image            string   `pg:"image,use_zero"`
	Social           Social   `pg:"social,type:jsonb"`
	YearsAtSanctuary int      `pg:"yearsAtSanctuary,use_zero"`
	Specialties      []string `pg:"specialties,array"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          string `pg:"categoryId,pk"`
	Name        string `pg:"name,use_zero"`
	Description string `pg:"description,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	Color       string `pg:"color,use_zero"`
	Icon        string `pg:"icon,use_zero"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   string `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID               string     `pg:"postId,pk"`
	Slug             string     `pg:"slug,use_zero"`
	Title            string     `pg:"title,use_zero"`
	Excerpt          string     `pg:"excerpt,use_zero"`
	Content          string     `pg:"content,use_zero"`
	AuthorID         string     `pg:"authorId,use_zero"`
	CategoryID       string     `pg:"categoryId,use_zero"`
	TagIDs           []string   `pg:"tagIds,array,use_zero"`
	FeaturedImage    string     `pg:"featuredImage,use_zero"`
	FeaturedImageAlt string     `pg:"featuredImageAlt,use_zero"`
	Gallery          []Media    `pg:"gallery,type:jsonb"`
	PublishedAt      time.Time  `pg:"publishedAt,use_zero"`
	UpdatedAt        *time.Time `pg:"updatedAt"`
	StatusID         string     `pg:"statusId,use_zero"`
	Featured         bool       `pg:"featured,use_zero"`
	ReadTime         int        `pg:"readTime,use_zero"`
	Views            int        `pg:"views,use_zero"`
	Likes            int        `pg:"likes,use_zero"`
	Shares           int        `pg:"shares,use_zero"`
	SEO              SEO        `pg:"seo,type:jsonb"`
	RelatedAnimals   []string   `pg:"relatedAnimals,array"`
	AllowComments    bool       `pg:"allowComments,use_zero"`
	CommentCount     int        `pg:"commentCount,use_zero"`
	SentInNewsletter bool       `pg:"sentInNewsletter,use_zero"`
	NewsletterDate   *time.Time `pg:"newsletterDate"`

	Author   *Author   `pg:"fk:authorId,rel:has-one"`
	Category *Category `pg:"fk:categoryId,rel:has-one"`
}
