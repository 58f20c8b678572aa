package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodaid/models"
	"bloodaid/store"
	"bloodaid/utils"
)

// DonationStore is the persistence surface the donation-request handlers need.
type DonationStore interface {
	Insert(ctx context.Context, request models.DonationRequest) (primitive.ObjectID, error)
	List(ctx context.Context, requesterEmail string) ([]models.DonationRequest, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.DonationRequest, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (store.UpdateResult, error)
	Replace(ctx context.Context, id primitive.ObjectID, request models.DonationRequest) (store.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// RequestNotifier notifies a requester about status changes. Delivery is
// best-effort and never affects the response.
type RequestNotifier interface {
	RequestStatusChanged(toEmail, recipientName, status string)
}

// DonationController handles donation-request requests
type DonationController struct {
	Store DonationStore
	Email RequestNotifier
}

// NewDonationController creates a new DonationController
func NewDonationController(s DonationStore, email RequestNotifier) *DonationController {
	return &DonationController{Store: s, Email: email}
}

type donationRequestBody struct {
	RequesterName     string `json:"requesterName"`
	RequesterEmail    string `json:"requesterEmail"`
	RecipientName     string `json:"recipientName"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	HospitalName      string `json:"hospitalName"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup"`
	DonationDate      string `json:"donationDate"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
	// Accepted from clients but overwritten on create.
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (body *donationRequestBody) toModel() models.DonationRequest {
	return models.DonationRequest{
		RequesterName:     body.RequesterName,
		RequesterEmail:    body.RequesterEmail,
		RecipientName:     body.RecipientName,
		RecipientDistrict: body.RecipientDistrict,
		RecipientUpazila:  body.RecipientUpazila,
		HospitalName:      body.HospitalName,
		FullAddress:       body.FullAddress,
		BloodGroup:        body.BloodGroup,
		DonationDate:      body.DonationDate,
		DonationTime:      body.DonationTime,
		RequestMessage:    body.RequestMessage,
		Status:            body.Status,
		CreatedAt:         body.CreatedAt,
	}
}

// Create stores a new donation request. Whatever the client sends, the
// request starts "pending" with a server-side creation time.
func (dc *DonationController) Create(w http.ResponseWriter, r *http.Request) {
	var body donationRequestBody
	if err := decodeJSON(r, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	request := body.toModel()
	request.Status = models.RequestPending
	request.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := dc.Store.Insert(ctx, request)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error creating donation request")
		return
	}
	request.ID = id

	utils.RespondJSON(w, http.StatusCreated, request)
}

// List returns donation requests newest-first, optionally narrowed to a
// requester email via the query string.
func (dc *DonationController) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	requests, err := dc.Store.List(ctx, email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching donation requests")
		return
	}

	utils.RespondJSON(w, http.StatusOK, requests)
}

// ListByUser returns the requests created by the given email, newest-first.
func (dc *DonationController) ListByUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	requests, err := dc.Store.List(ctx, email)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching donation requests")
		return
	}

	utils.RespondJSON(w, http.StatusOK, requests)
}

// GetByID returns a single donation request.
func (dc *DonationController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	request, err := dc.Store.FindByID(ctx, id)
	if err == store.ErrNotFound {
		utils.RespondError(w, http.StatusNotFound, "Donation request not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondJSON(w, http.StatusOK, request)
}

type donationRequestPatch struct {
	RequesterName     *string `json:"requesterName"`
	RequesterEmail    *string `json:"requesterEmail"`
	RecipientName     *string `json:"recipientName"`
	RecipientDistrict *string `json:"recipientDistrict"`
	RecipientUpazila  *string `json:"recipientUpazila"`
	HospitalName      *string `json:"hospitalName"`
	FullAddress       *string `json:"fullAddress"`
	BloodGroup        *string `json:"bloodGroup"`
	DonationDate      *string `json:"donationDate"`
	DonationTime      *string `json:"donationTime"`
	RequestMessage    *string `json:"requestMessage"`
	Status            *string `json:"status"`
}

func (patch *donationRequestPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(key string, value *string) {
		if value != nil {
			fields[key] = *value
		}
	}
	set("requester_name", patch.RequesterName)
	set("requester_email", patch.RequesterEmail)
	set("recipient_name", patch.RecipientName)
	set("recipient_district", patch.RecipientDistrict)
	set("recipient_upazila", patch.RecipientUpazila)
	set("hospital_name", patch.HospitalName)
	set("full_address", patch.FullAddress)
	set("blood_group", patch.BloodGroup)
	set("donation_date", patch.DonationDate)
	set("donation_time", patch.DonationTime)
	set("request_message", patch.RequestMessage)
	set("status", patch.Status)
	return fields
}

// UpdatePartial applies the provided fields to a donation request. Status
// transitions are unconstrained on this route.
func (dc *DonationController) UpdatePartial(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var patch donationRequestPatch
	if err := decodeJSON(r, &patch); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := dc.Store.UpdateByID(ctx, id, patch.fields())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating donation request")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Donation request not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// Replace substitutes the whole document body for a donation request.
func (dc *DonationController) Replace(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var body donationRequestBody
	if err := decodeJSON(r, &body); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := dc.Store.Replace(ctx, id, body.toModel())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error replacing donation request")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Donation request not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}

// UpdateStatus sets the status of a donation request. Zero modified
// documents answers 404; an absent request and a status already equal to the
// requested value are not distinguished.
func (dc *DonationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		utils.RespondError(w, http.StatusBadRequest, "Status is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := dc.Store.UpdateByID(ctx, id, map[string]interface{}{"status": req.Status})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error updating status")
		return
	}
	if result.ModifiedCount == 0 {
		utils.RespondError(w, http.StatusNotFound, "Donation request not found or status unchanged")
		return
	}

	if dc.Email != nil {
		if request, err := dc.Store.FindByID(ctx, id); err == nil {
			dc.Email.RequestStatusChanged(request.RequesterEmail, request.RecipientName, req.Status)
		}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Delete removes a donation request by id.
func (dc *DonationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := dc.Store.Delete(ctx, id)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error deleting donation request")
		return
	}
	if deleted == 0 {
		utils.RespondError(w, http.StatusNotFound, "Donation request not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Donation request deleted"})
}
