package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
	"github.com/bit-milind42/Blog-Editor/internal/core/ports"
)

// BlogService implements the draft/publish reconciler plus the read, list,
// and delete operations. Save-draft and publish share one resolution path,
// differing only in the target status and publishedAt stamping.
type BlogService struct {
	repo   ports.BlogRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewBlogService(repo ports.BlogRepository, logger zerolog.Logger) *BlogService {
	return &BlogService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Save reconciles the input against the store:
//
//  1. A usable ID (syntactically valid and resolving to a document) updates
//     that document in place.
//  2. Otherwise the exact title is used as a natural key: an existing blog
//     with that title is overwritten, else a new one is created.
//
// The created flag is true only for path 2's insert. A stale or malformed
// ID is tolerated, not rejected: first saves happen before the client knows
// any identifier.
func (s *BlogService) Save(ctx context.Context, input ports.SaveBlogInput) (*domain.Blog, bool, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return nil, false, domain.ErrMissingFields
	}

	tags := input.Tags
	if tags == nil {
		tags = domain.NormalizeTags(input.TagsRaw)
	}

	if domain.IsValidBlogID(input.ID) {
		existing, err := s.repo.FindByID(ctx, input.ID)
		switch {
		case err == nil:
			updated, uerr := s.overwrite(ctx, existing, title, content, tags, input.TargetStatus)
			return updated, false, uerr
		case errors.Is(err, domain.ErrBlogNotFound):
			// Stale ID: fall through to the title-keyed upsert.
		default:
			return nil, false, err
		}
	}

	existing, err := s.repo.FindByTitle(ctx, title)
	switch {
	case err == nil:
		updated, uerr := s.overwrite(ctx, existing, title, content, tags, input.TargetStatus)
		return updated, false, uerr
	case errors.Is(err, domain.ErrBlogNotFound):
		return s.create(ctx, title, content, tags, input.TargetStatus)
	default:
		return nil, false, err
	}
}

// overwrite applies the incoming fields to an existing blog and persists it.
// Publishing always refreshes publishedAt, so republishing bumps the
// timestamp; saving a draft clears it.
func (s *BlogService) overwrite(ctx context.Context, b *domain.Blog, title, content string, tags []string, target domain.BlogStatus) (*domain.Blog, error) {
	now := s.now()
	b.Title = title
	b.Content = content
	b.Tags = tags
	b.Status = target
	b.UpdatedAt = now
	if target == domain.StatusPublished {
		publishedAt := now
		b.PublishedAt = &publishedAt
	} else {
		b.PublishedAt = nil
	}

	if err := s.repo.Update(ctx, b); err != nil {
		s.logger.Error().Err(err).Str("blog_id", b.ID).Msg("failed to update blog")
		return nil, err
	}

	s.logger.Info().Str("blog_id", b.ID).Str("status", string(b.Status)).Msg("blog updated")
	return b, nil
}

func (s *BlogService) create(ctx context.Context, title, content string, tags []string, target domain.BlogStatus) (*domain.Blog, bool, error) {
	now := s.now()
	blog := &domain.Blog{
		Title:     title,
		Content:   content,
		Tags:      tags,
		Status:    target,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if target == domain.StatusPublished {
		publishedAt := now
		blog.PublishedAt = &publishedAt
	}

	created, err := s.repo.Create(ctx, blog)
	if err != nil {
		s.logger.Error().Err(err).Str("title", title).Msg("failed to create blog")
		return nil, false, err
	}

	s.logger.Info().Str("blog_id", created.ID).Str("status", string(created.Status)).Msg("blog created")
	return created, true, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	if !domain.IsValidBlogID(id) {
		return nil, domain.ErrInvalidBlogID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *BlogService) ListPublished(ctx context.Context) ([]*domain.Blog, error) {
	return s.repo.ListPublished(ctx)
}

func (s *BlogService) ListAll(ctx context.Context) ([]*domain.Blog, error) {
	return s.repo.ListAll(ctx)
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	if !domain.IsValidBlogID(id) {
		return domain.ErrInvalidBlogID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("blog_id", id).Msg("blog deleted")
	return nil
}
