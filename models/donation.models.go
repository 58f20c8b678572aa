package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request statuses
const (
	RequestPending    = "pending"
	RequestInProgress = "inprogress"
	RequestDone       = "done"
	RequestCanceled   = "canceled"
)

// DonationRequest represents a call for a blood donor. New requests always
// start "pending" with a server-side creation time.
type DonationRequest struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RequesterName     string             `bson:"requester_name" json:"requesterName"`
	RequesterEmail    string             `bson:"requester_email" json:"requesterEmail"`
	RecipientName     string             `bson:"recipient_name" json:"recipientName"`
	RecipientDistrict string             `bson:"recipient_district" json:"recipientDistrict"`
	RecipientUpazila  string             `bson:"recipient_upazila" json:"recipientUpazila"`
	HospitalName      string             `bson:"hospital_name" json:"hospitalName"`
	FullAddress       string             `bson:"full_address" json:"fullAddress"`
	BloodGroup        string             `bson:"blood_group" json:"bloodGroup"`
	DonationDate      string             `bson:"donation_date" json:"donationDate"`
	DonationTime      string             `bson:"donation_time" json:"donationTime"`
	RequestMessage    string             `bson:"request_message" json:"requestMessage"`
	Status            string             `bson:"status" json:"status"` // "pending", "inprogress", "done" or "canceled"
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
