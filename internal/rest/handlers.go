package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/daniilsolovey/sanctuary-blog/internal/blog"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
)

const (
	defaultFeaturedLimit = 3
	maxLimit             = 100
)

type SearchRequest struct {
	Query     string `query:"q"`
	Category  string `query:"category"`
	Tag       string `query:"tag"`
	Author    string `query:"author"`
	DateFrom  string `query:"dateFrom"`
	DateTo    string `query:"dateTo"`
	Featured  *bool  `query:"featured"`
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
}

func (r SearchRequest) ToModel() blog.SearchParams {
	return blog.SearchParams{
		Query:     r.Query,
		Category:  r.Category,
		Tag:       r.Tag,
		Author:    r.Author,
		DateFrom:  r.DateFrom,
		DateTo:    r.DateTo,
		Featured:  r.Featured,
		SortBy:    blog.SortKey(r.SortBy),
		SortOrder: blog.SortOrder(r.SortOrder),
		Page:      r.Page,
		Limit:     min(r.Limit, maxLimit),
	}
}

type LimitRequest struct {
	Limit int `query:"limit"`
}

type BlogHandler struct {
	manager *blog.Manager
	log     *slog.Logger
}

func NewBlogHandler(manager *blog.Manager, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		manager: manager,
		log:     log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

func (h *BlogHandler) notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": blog.ErrNotFound.Error()})
}

// writeError maps admin write errors to status codes.
func (h *BlogHandler) writeError(c echo.Context, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return h.handleError(c, err, http.StatusBadRequest, verrs.Error())
	case errors.Is(err, blog.ErrSlugExists):
		return h.handleError(c, err, http.StatusConflict, blog.ErrSlugExists.Error())
	case errors.Is(err, blog.ErrNotFound):
		return h.handleError(c, err, http.StatusNotFound, blog.ErrNotFound.Error())
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
}

// Posts handles GET /api/v1/posts
// @Summary Search posts
// @Description Filters, sorts and paginates published posts. Returns PostSummary items plus the reference lists for filter widgets
// @Tags posts
// @Produce json
// @Param q query string false "Case-insensitive text in title, excerpt, content, tag names or author name"
// @Param category query string false "Category slug"
// @Param tag query string false "Tag slug"
// @Param author query string false "Author ID"
// @Param dateFrom query string false "Inclusive lower bound, ISO-8601"
// @Param dateTo query string false "Inclusive upper bound, ISO-8601"
// @Param featured query bool false "Featured flag"
// @Param sortBy query string false "date, popularity, alphabetical or views (default: date)"
// @Param sortOrder query string false "asc or desc (default: desc)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.SearchResult
// @Failure 400 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *BlogHandler) Posts(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	result := h.manager.Search(req.ToModel())

	return c.JSON(http.StatusOK, NewSearchResult(result))
}

// PostBySlug handles GET /api/v1/posts/:slug
// @Summary Get post by slug
// @Description Returns a published post with full content and counts the view
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Post
// @Failure 404 {object} map[string]string
// @Router /api/v1/posts/{slug} [get]
func (h *BlogHandler) PostBySlug(c echo.Context) error {
	post := h.manager.PostBySlug(c.Param("slug"))
	if post == nil {
		return h.notFound(c)
	}

	h.manager.IncrementPostViews(post.ID)
	post.Views++

	return c.JSON(http.StatusOK, NewPost(*post))
}

// RelatedPosts handles GET /api/v1/posts/:slug/related
// @Summary Get related posts
// @Description Ranks other published posts by shared category, tags and author
// @Tags posts
// @Produce json
// @Param slug path string true "Post slug"
// @Param limit query int false "Number of posts (default: 3)"
// @Success 200 {array} rest.PostSummary
// @Failure 400,404 {object} map[string]string
// @Router /api/v1/posts/{slug}/related [get]
func (h *BlogHandler) RelatedPosts(c echo.Context) error {
	var req LimitRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	related := h.manager.RelatedBySlug(c.Param("slug"), min(req.Limit, maxLimit))
	if related == nil {
		return h.notFound(c)
	}

	return c.JSON(http.StatusOK, Map(related, NewPostSummary))
}

// FeaturedPosts handles GET /api/v1/posts/featured
// @Summary Get featured posts
// @Description Returns the newest featured posts
// @Tags posts
// @Produce json
// @Param limit query int false "Number of posts (default: 3)"
// @Success 200 {array} rest.PostSummary
// @Failure 400 {object} map[string]string
// @Router /api/v1/posts/featured [get]
func (h *BlogHandler) FeaturedPosts(c echo.Context) error {
	var req LimitRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	limit := req.Limit
	if limit < 1 {
		limit = defaultFeaturedLimit
	}

	return c.JSON(http.StatusOK, Map(h.manager.FeaturedPosts(min(limit, maxLimit)), NewPostSummary))
}

// LikePost handles POST /api/v1/posts/:slug/like
// @Summary Like a post
// @Tags engagement
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Counters
// @Failure 404 {object} map[string]string
// @Router /api/v1/posts/{slug}/like [post]
func (h *BlogHandler) LikePost(c echo.Context) error {
	return h.engage(c, h.manager.IncrementPostLikes)
}

// SharePost handles POST /api/v1/posts/:slug/share
// @Summary Share a post
// @Tags engagement
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} rest.Counters
// @Failure 404 {object} map[string]string
// @Router /api/v1/posts/{slug}/share [post]
func (h *BlogHandler) SharePost(c echo.Context) error {
	return h.engage(c, h.manager.IncrementPostShares)
}

func (h *BlogHandler) engage(c echo.Context, increment func(id string)) error {
	post := h.manager.PostBySlug(c.Param("slug"))
	if post == nil {
		return h.notFound(c)
	}

	increment(post.ID)

	updated := h.manager.PostByID(post.ID)
	if updated == nil {
		return h.notFound(c)
	}

	return c.JSON(http.StatusOK, NewCounters(*updated))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories with published post counts
// @Tags reference
// @Produce json
// @Success 200 {array} rest.Category
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Categories(), NewCategory))
}

// Tags handles GET /api/v1/tags
// @Summary Get all tags
// @Description Retrieves all tags with published post counts
// @Tags reference
// @Produce json
// @Success 200 {array} rest.Tag
// @Router /api/v1/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Tags(), NewTag))
}

// Authors handles GET /api/v1/authors
// @Summary Get all authors
// @Tags reference
// @Produce json
// @Success 200 {array} rest.Author
// @Router /api/v1/authors [get]
func (h *BlogHandler) Authors(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.Authors(), NewAuthor))
}

// CategoryStats handles GET /api/v1/stats/categories
// @Summary Category statistics
// @Description Published post count and total views per category
// @Tags stats
// @Produce json
// @Success 200 {array} rest.CategoryStat
// @Router /api/v1/stats/categories [get]
func (h *BlogHandler) CategoryStats(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.CategoryStats(), NewCategoryStat))
}

// TagStats handles GET /api/v1/stats/tags
// @Summary Tag statistics
// @Description Published post count and total views per tag
// @Tags stats
// @Produce json
// @Success 200 {array} rest.TagStat
// @Router /api/v1/stats/tags [get]
func (h *BlogHandler) TagStats(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.TagStats(), NewTagStat))
}

// AuthorStats handles GET /api/v1/stats/authors
// @Summary Author statistics
// @Description Published post count and total views per author
// @Tags stats
// @Produce json
// @Success 200 {array} rest.AuthorStat
// @Router /api/v1/stats/authors [get]
func (h *BlogHandler) AuthorStats(c echo.Context) error {
	return c.JSON(http.StatusOK, Map(h.manager.AuthorStats(), NewAuthorStat))
}

// Analytics handles GET /api/v1/analytics
// @Summary Blog analytics
// @Description Totals over published posts, top categories by views and top posts by engagement
// @Tags stats
// @Produce json
// @Success 200 {object} rest.Analytics
// @Router /api/v1/analytics [get]
func (h *BlogHandler) Analytics(c echo.Context) error {
	return c.JSON(http.StatusOK, NewAnalytics(h.manager.Analytics()))
}

// CreatePost handles POST /api/v1/admin/posts
// @Summary Create a post
// @Description Validates the input, derives the slug from the title when empty and sanitizes the content. Status defaults to draft
// @Tags admin
// @Accept json
// @Produce json
// @Param post body blog.PostInput true "Post"
// @Success 201 {object} rest.Post
// @Failure 400,409,500 {object} map[string]string
// @Router /api/v1/admin/posts [post]
func (h *BlogHandler) CreatePost(c echo.Context) error {
	var in blog.PostInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.manager.CreatePost(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewPost(*post))
}

// UpdatePost handles PUT /api/v1/admin/posts/:id
// @Summary Update a post
// @Description Replaces the editable fields of a post. Views, likes and shares are kept
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param post body blog.PostInput true "Post"
// @Success 200 {object} rest.Post
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id} [put]
func (h *BlogHandler) UpdatePost(c echo.Context) error {
	var in blog.PostInput
	if err := c.Bind(&in); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.manager.UpdatePost(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*post))
}
