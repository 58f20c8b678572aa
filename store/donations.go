package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloodaid/models"
)

// DonationStore persists donation requests in the "donation_requests"
// collection.
type DonationStore struct {
	collection *mongo.Collection
}

// NewDonationStore creates a DonationStore backed by the given client.
func NewDonationStore(client *mongo.Client, dbName string) *DonationStore {
	return &DonationStore{collection: client.Database(dbName).Collection("donation_requests")}
}

// Insert writes a new donation request and returns the generated id.
func (s *DonationStore) Insert(ctx context.Context, request models.DonationRequest) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, request)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// List returns donation requests sorted newest-first, optionally narrowed to
// a requester email.
func (s *DonationStore) List(ctx context.Context, requesterEmail string) ([]models.DonationRequest, error) {
	filter := bson.M{}
	if requesterEmail != "" {
		filter["requester_email"] = requesterEmail
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.DonationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// FindByID returns the donation request with the given id, or ErrNotFound.
func (s *DonationStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.DonationRequest, error) {
	var request models.DonationRequest
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err == mongo.ErrNoDocuments {
		return models.DonationRequest{}, ErrNotFound
	}
	if err != nil {
		return models.DonationRequest{}, err
	}
	return request, nil
}

// UpdateByID applies a $set of the given fields to the request with the
// given id.
func (s *DonationStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (UpdateResult, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Replace substitutes the whole document body for the given id.
func (s *DonationStore) Replace(ctx context.Context, id primitive.ObjectID, request models.DonationRequest) (UpdateResult, error) {
	request.ID = id
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": id}, request)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Delete removes the request with the given id, returning how many documents
// were deleted.
func (s *DonationStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// Count returns the number of donation requests.
func (s *DonationStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}
