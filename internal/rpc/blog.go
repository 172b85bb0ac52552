package rpc

import (
	"context"

	"github.com/daniilsolovey/sanctuary-blog/internal/blog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

var errPostNotFound = zenrpc.NewStringError(404, "post not found")

// BlogService provides RPC methods for blog queries.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// Search filters, sorts and paginates published posts.
//
//zenrpc:params search parameters
//zenrpc:return page of post summaries with counts
func (s BlogService) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	return NewSearchResult(s.manager.Search(params.ToModel())), nil
}

// BySlug returns a published post with full content and counts the view.
//
//zenrpc:slug post slug
//zenrpc:return post with full content
//zenrpc:404 post not found
func (s BlogService) BySlug(ctx context.Context, slug string) (*Post, error) {
	post := s.manager.PostBySlug(slug)
	if post == nil {
		return nil, errPostNotFound
	}

	s.manager.IncrementPostViews(post.ID)
	post.Views++

	result := NewPost(*post)
	return &result, nil
}

// Related ranks other published posts by shared category, tags and author.
//
//zenrpc:slug post slug
//zenrpc:limit=3 number of posts
//zenrpc:return related post summaries
//zenrpc:404 post not found
func (s BlogService) Related(ctx context.Context, slug string, limit *int) ([]PostSummary, error) {
	n := blog.DefaultRelatedLimit
	if limit != nil {
		n = *limit
	}

	related := s.manager.RelatedBySlug(slug, n)
	if related == nil {
		return nil, errPostNotFound
	}

	return Map(related, NewPostSummary), nil
}

// CategoryStats returns published post count and total views per category.
//
//zenrpc:return category statistics
func (s BlogService) CategoryStats(ctx context.Context) ([]CategoryStat, error) {
	return Map(s.manager.CategoryStats(), NewCategoryStat), nil
}

// TagStats returns published post count and total views per tag.
//
//zenrpc:return tag statistics
func (s BlogService) TagStats(ctx context.Context) ([]TagStat, error) {
	return Map(s.manager.TagStats(), NewTagStat), nil
}

// AuthorStats returns published post count and total views per author.
//
//zenrpc:return author statistics
func (s BlogService) AuthorStats(ctx context.Context) ([]AuthorStat, error) {
	return Map(s.manager.AuthorStats(), NewAuthorStat), nil
}

// Analytics returns blog totals, top categories and top posts.
//
//zenrpc:return analytics
func (s BlogService) Analytics(ctx context.Context) (Analytics, error) {
	return NewAnalytics(s.manager.Analytics()), nil
}
