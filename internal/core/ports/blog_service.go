package ports

import (
	"context"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

// SaveBlogInput carries everything needed to reconcile a save-draft or
// publish request against the store.
type SaveBlogInput struct {
	// ID is optional. A stale or malformed ID falls back to the
	// title-keyed upsert rather than failing.
	ID      string
	Title   string
	Content string
	Tags    []string
	// TagsRaw is the legacy comma-delimited form. Used only when Tags is
	// nil; split, trimmed, and filtered of empty entries.
	TagsRaw      string
	TargetStatus domain.BlogStatus
}

// BlogService defines the blog use cases: the draft/publish reconciler plus
// the read, list, and delete operations.
type BlogService interface {
	// Save resolves the input to an existing document (by ID, then by
	// title) or creates a new one. The created flag is true only when a
	// new document was inserted.
	Save(ctx context.Context, input SaveBlogInput) (blog *domain.Blog, created bool, err error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	ListPublished(ctx context.Context) ([]*domain.Blog, error)
	ListAll(ctx context.Context) ([]*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}
