package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// User account statuses
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// DefaultAvatar is applied when a user signs up without one.
const DefaultAvatar = "https://i.ibb.co/4pDNDk1/avatar.png"

// User represents a registered donor, volunteer or admin. Accounts are
// created on first sign-in against the identity provider and are never
// deleted through the API.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID        string             `bson:"uid" json:"uid"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Avatar     string             `bson:"avatar" json:"avatar"`
	BloodGroup string             `bson:"blood_group" json:"bloodGroup"`
	District   string             `bson:"district" json:"district"`
	Upazila    string             `bson:"upazila" json:"upazila"`
	Role       string             `bson:"role" json:"role"`     // "donor", "volunteer" or "admin"
	Status     string             `bson:"status" json:"status"` // "active" or "blocked"
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleDonor || role == RoleVolunteer || role == RoleAdmin
}

// ValidUserStatus reports whether status is one of the known account statuses.
func ValidUserStatus(status string) bool {
	return status == StatusActive || status == StatusBlocked
}
