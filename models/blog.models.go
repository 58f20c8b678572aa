package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog statuses
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is a content post. Posts are created by admins and always start as
// drafts until toggled to published.
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Thumbnail string             `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Status    string             `bson:"status" json:"status"` // "draft" or "published"
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// ValidBlogStatus reports whether status is "draft" or "published".
func ValidBlogStatus(status string) bool {
	return status == BlogDraft || status == BlogPublished
}
