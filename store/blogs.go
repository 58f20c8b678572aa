package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloodaid/models"
)

// BlogStore persists blog posts in the "blogs" collection.
type BlogStore struct {
	collection *mongo.Collection
}

// NewBlogStore creates a BlogStore backed by the given client.
func NewBlogStore(client *mongo.Client, dbName string) *BlogStore {
	return &BlogStore{collection: client.Database(dbName).Collection("blogs")}
}

// Insert writes a new blog post and returns the generated id.
func (s *BlogStore) Insert(ctx context.Context, blog models.Blog) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, blog)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// List returns blog posts sorted newest-first. A non-empty status narrows the
// result to that status.
func (s *BlogStore) List(ctx context.Context, status string) ([]models.Blog, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// FindByID returns the blog post with the given id, or ErrNotFound.
func (s *BlogStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var blog models.Blog
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if err == mongo.ErrNoDocuments {
		return models.Blog{}, ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

// UpdateStatus sets the status of the blog post with the given id.
func (s *BlogStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (UpdateResult, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Delete removes the blog post with the given id, returning how many
// documents were deleted.
func (s *BlogStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
