package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/microservices/internal/core/domain"
	"github.com/bloghub/microservices/internal/core/ports"
)

const postsCollection = "posts"

type PostRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{db: db, coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID              int64  `bson:"_id"`
	Title           string `bson:"title"`
	Description     string `bson:"description"`
	ImageURL        string `bson:"image_url,omitempty"`
	CreatedByUserID int64  `bson:"created_by_user_id"`
	Status          string `bson:"status"`
	CreatedAt       int64  `bson:"created_at"`
	UpdatedAt       int64  `bson:"updated_at"`
}

// EnsureIndexes creates the unique title index and the owner lookup index.
// Idempotent; called once at startup.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_by_user_id", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("posts indexes: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	id, err := nextID(ctx, r.db, postsCollection)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := postDoc{
		ID:              id,
		Title:           post.Title,
		Description:     post.Description,
		ImageURL:        post.ImageURL,
		CreatedByUserID: post.CreatedByUserID,
		Status:          string(domain.StatusActive),
		CreatedAt:       now.Unix(),
		UpdatedAt:       now.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrPostExists
		}
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"_id": id, "status": string(domain.StatusActive)})
}

func (r *PostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	return r.findOne(ctx, bson.M{"title": title})
}

func (r *PostRepository) ListActive(ctx context.Context) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{"status": string(domain.StatusActive)})
}

func (r *PostRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	return r.find(ctx, bson.M{
		"created_by_user_id": userID,
		"status":             string(domain.StatusActive),
	})
}

// Update applies the non-nil fields of a partial update to an active post.
func (r *PostRepository) Update(ctx context.Context, id int64, in ports.UpdatePostInput) error {
	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(domain.StatusActive)},
		bson.M{"$set": set},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPostExists
		}
		return fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// SoftDelete flips an active post to StatusDeleted; the document remains.
func (r *PostRepository) SoftDelete(ctx context.Context, id int64) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(domain.StatusActive)},
		bson.M{"$set": bson.M{
			"status":     string(domain.StatusDeleted),
			"updated_at": time.Now().UTC().Unix(),
		}},
	)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*domain.Post
	for cursor.Next(ctx) {
		var doc postDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) findOne(ctx context.Context, filter bson.M) (*domain.Post, error) {
	var doc postDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (d postDoc) toDomain() *domain.Post {
	return &domain.Post{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		ImageURL:        d.ImageURL,
		CreatedByUserID: d.CreatedByUserID,
		Status:          domain.RecordStatus(d.Status),
		CreatedAt:       unixToTime(d.CreatedAt),
		UpdatedAt:       unixToTime(d.UpdatedAt),
	}
}
