package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Posts returns every post with author and category loaded, newest first.
// Status is not filtered: the blog store keeps drafts for the admin path.
func (r *Repository) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Author).
		Relation(Columns.Post.Category).
		OrderExpr(`"t"."publishedAt" DESC, "t"."postId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}
