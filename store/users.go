package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloodaid/models"
)

// UserStore persists users in the "users" collection.
type UserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a UserStore backed by the given client.
func NewUserStore(client *mongo.Client, dbName string) *UserStore {
	return &UserStore{collection: client.Database(dbName).Collection("users")}
}

// Insert writes a new user and returns the generated id.
func (s *UserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// EmailExists reports whether a user with the given email is registered.
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll returns every user, unfiltered.
func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByEmail returns the user with the given email, or ErrNotFound.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindRoleByEmail returns the stored role for the given email, matched
// case-insensitively, or ErrNotFound.
func (s *UserStore) FindRoleByEmail(ctx context.Context, email string) (string, error) {
	filter := bson.M{"email": primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(email) + "$",
		Options: "i",
	}}

	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// UpdateByEmail applies a $set of the given fields to the user with the
// given email.
func (s *UserStore) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (UpdateResult, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// UpdateByID applies a $set of the given fields to the user with the given id.
func (s *UserStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (UpdateResult, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: result.MatchedCount, ModifiedCount: result.ModifiedCount}, nil
}

// Count returns the number of registered users.
func (s *UserStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}
