package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloodaid/models"
)

// FundingStore persists funding records in the "fundings" collection.
// Records are insert-only; nothing updates or deletes them.
type FundingStore struct {
	collection *mongo.Collection
}

// NewFundingStore creates a FundingStore backed by the given client.
func NewFundingStore(client *mongo.Client, dbName string) *FundingStore {
	return &FundingStore{collection: client.Database(dbName).Collection("fundings")}
}

// Insert writes a new funding record and returns the generated id.
func (s *FundingStore) Insert(ctx context.Context, funding models.Funding) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, funding)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// List returns a page of funding records sorted newest-first.
func (s *FundingStore) List(ctx context.Context, skip, limit int64) ([]models.Funding, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var funds []models.Funding
	if err := cursor.All(ctx, &funds); err != nil {
		return nil, err
	}
	return funds, nil
}

// Count returns the number of funding records.
func (s *FundingStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

// TotalAmount sums the amount field across all funding records. Returns 0
// when the collection is empty.
func (s *FundingStore) TotalAmount(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
