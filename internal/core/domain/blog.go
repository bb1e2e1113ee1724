package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// BlogStatus represents the lifecycle state of a blog post.
type BlogStatus string

const (
	StatusDraft     BlogStatus = "draft"
	StatusPublished BlogStatus = "published"
)

var ErrBlogNotFound = errors.New("blog not found")
var ErrInvalidBlogID = errors.New("invalid blog ID format")
var ErrMissingFields = errors.New("title and content are required")

// objectIDPattern matches the 24-character hexadecimal identifiers handed
// out by the store.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidBlogID reports whether id is syntactically a valid blog identifier.
func IsValidBlogID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// Blog is the core aggregate root.
//
// Invariant: Status is StatusPublished if and only if PublishedAt is set.
type Blog struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Title       string     `json:"title" bson:"title"`
	Content     string     `json:"content" bson:"content"`
	Tags        []string   `json:"tags" bson:"tags"`
	Status      BlogStatus `json:"status" bson:"status"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

// NormalizeTags splits a comma-delimited tag string into an ordered slice,
// trimming whitespace and dropping empty entries. "a, b ,,c" → ["a" "b" "c"].
func NormalizeTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
