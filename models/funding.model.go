package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Funding is a completed donation of money to the platform. The email is
// always the verified token identity, never a client-supplied value, and the
// record is immutable once written.
type Funding struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Amount    float64            `bson:"amount" json:"amount"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
