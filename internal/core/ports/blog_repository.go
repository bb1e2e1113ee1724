package ports

import (
	"context"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

// BlogRepository defines persistence operations for blog posts.
// Lookups return domain.ErrBlogNotFound when no document matches.
type BlogRepository interface {
	// Create inserts a new blog and returns it with its generated ID.
	Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error)
	// Update overwrites the document identified by b.ID.
	Update(ctx context.Context, b *domain.Blog) error
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// FindByTitle matches on the exact title; used as the natural-key
	// fallback when no identifier is supplied or resolvable.
	FindByTitle(ctx context.Context, title string) (*domain.Blog, error)
	// ListPublished returns published blogs ordered by publishedAt descending.
	ListPublished(ctx context.Context) ([]*domain.Blog, error)
	// ListAll returns every blog ordered by updatedAt descending, ties
	// broken by publishedAt descending.
	ListAll(ctx context.Context) ([]*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
