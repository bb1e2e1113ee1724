package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bit-milind42/Blog-Editor/internal/core/domain"
)

const blogsCollection = "blogs"

type BlogRepository struct {
	coll *mongo.Collection
}

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{coll: db.Collection(blogsCollection)}
}

type blogDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Tags        []string           `bson:"tags"`
	Status      string             `bson:"status"`
	PublishedAt *time.Time         `bson:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toDoc(b *domain.Blog) (blogDoc, error) {
	doc := blogDoc{
		Title:       b.Title,
		Content:     b.Content,
		Tags:        b.Tags,
		Status:      string(b.Status),
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.ID != "" {
		oid, err := primitive.ObjectIDFromHex(b.ID)
		if err != nil {
			return blogDoc{}, domain.ErrInvalidBlogID
		}
		doc.ID = oid
	}
	return doc, nil
}

func (d blogDoc) toDomain() *domain.Blog {
	return &domain.Blog{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Content:     d.Content,
		Tags:        d.Tags,
		Status:      domain.BlogStatus(d.Status),
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// Create inserts a new blog document and returns it with its generated ID.
func (r *BlogRepository) Create(ctx context.Context, b *domain.Blog) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toDoc(b)
	if err != nil {
		return nil, err
	}
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert blog: %w", err)
	}

	return doc.toDomain(), nil
}

// Update overwrites the document identified by b.ID.
func (r *BlogRepository) Update(ctx context.Context, b *domain.Blog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toDoc(b)
	if err != nil {
		return err
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc)
	if err != nil {
		return fmt.Errorf("update blog: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id string) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidBlogID
	}

	var doc blogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlogRepository) FindByTitle(ctx context.Context, title string) (*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blogDoc
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlogNotFound
		}
		return nil, fmt.Errorf("find blog by title: %w", err)
	}
	return doc.toDomain(), nil
}

// ListPublished returns published blogs, newest publication first.
func (r *BlogRepository) ListPublished(ctx context.Context) ([]*domain.Blog, error) {
	filter := bson.M{"status": string(domain.StatusPublished)}
	sort := bson.D{{Key: "published_at", Value: -1}}
	return r.list(ctx, filter, sort)
}

// ListAll returns every blog ordered by updated_at descending, ties broken
// by published_at descending.
func (r *BlogRepository) ListAll(ctx context.Context) ([]*domain.Blog, error) {
	sort := bson.D{{Key: "updated_at", Value: -1}, {Key: "published_at", Value: -1}}
	return r.list(ctx, bson.M{}, sort)
}

func (r *BlogRepository) list(ctx context.Context, filter bson.M, sort bson.D) ([]*domain.Blog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer cur.Close(ctx)

	blogs := make([]*domain.Blog, 0)
	for cur.Next(ctx) {
		var doc blogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode blog: %w", err)
		}
		blogs = append(blogs, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidBlogID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBlogNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the title upsert and the
// published listing.
func (r *BlogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "updated_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
