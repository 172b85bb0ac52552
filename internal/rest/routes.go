package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	postsPath        = "/posts"
	featuredPath     = "/posts/featured"
	postBySlugPath   = "/posts/:slug"
	relatedPath      = "/posts/:slug/related"
	likePath         = "/posts/:slug/like"
	sharePath        = "/posts/:slug/share"
	categoriesPath   = "/categories"
	tagsPath         = "/tags"
	authorsPath      = "/authors"
	categoryStatPath = "/stats/categories"
	tagStatPath      = "/stats/tags"
	authorStatPath   = "/stats/authors"
	analyticsPath    = "/analytics"
	adminPostsPath   = "/admin/posts"
	adminPostPath    = "/admin/posts/:id"

	healthPath  = "/health"
	swaggerPath = "/swagger/doc.json"
)

// RegisterRoutes builds the echo engine with all blog routes.
func (h *BlogHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.loggingMiddleware)

	h.registerAPIRoutes(e.Group(apiV1Prefix))

	e.GET(healthPath, h.handleHealth)
	e.GET(swaggerPath, h.handleSwagger)

	return e
}

func (h *BlogHandler) registerAPIRoutes(g *echo.Group) {
	g.GET(postsPath, h.Posts)
	g.GET(featuredPath, h.FeaturedPosts)
	g.GET(postBySlugPath, h.PostBySlug)
	g.GET(relatedPath, h.RelatedPosts)
	g.POST(likePath, h.LikePost)
	g.POST(sharePath, h.SharePost)

	g.GET(categoriesPath, h.Categories)
	g.GET(tagsPath, h.Tags)
	g.GET(authorsPath, h.Authors)

	g.GET(categoryStatPath, h.CategoryStats)
	g.GET(tagStatPath, h.TagStats)
	g.GET(authorStatPath, h.AuthorStats)
	g.GET(analyticsPath, h.Analytics)

	g.POST(adminPostsPath, h.CreatePost)
	g.PUT(adminPostPath, h.UpdatePost)
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "swagger document unavailable")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.Info("HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
