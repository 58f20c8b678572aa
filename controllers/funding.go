package controllers

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloodaid/middleware"
	"bloodaid/models"
	"bloodaid/utils"
)

// FundingStore is the persistence surface the funding handlers need.
type FundingStore interface {
	Insert(ctx context.Context, funding models.Funding) (primitive.ObjectID, error)
	List(ctx context.Context, skip, limit int64) ([]models.Funding, error)
	Count(ctx context.Context) (int64, error)
	TotalAmount(ctx context.Context) (float64, error)
}

// PaymentGateway creates payment intents with the external payment provider.
// Amounts are in the smallest currency unit.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

// FundingNotifier sends funding receipts. Delivery is best-effort and never
// affects the response.
type FundingNotifier interface {
	FundingReceipt(toEmail, name string, amount float64)
}

// FundingController handles funding and payment requests
type FundingController struct {
	Store   FundingStore
	Gateway PaymentGateway
	Email   FundingNotifier
}

// NewFundingController creates a new FundingController
func NewFundingController(s FundingStore, gateway PaymentGateway, email FundingNotifier) *FundingController {
	return &FundingController{Store: s, Gateway: gateway, Email: email}
}

type paymentIntentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// CreatePaymentIntent asks the payment provider for a new intent and returns
// its client secret. The amount arrives in dollars and is charged in cents,
// always as USD.
func (fc *FundingController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req paymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "amount must be greater than zero")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cents := int64(math.Round(req.Amount * 100))
	clientSecret, err := fc.Gateway.CreateIntent(ctx, cents)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create payment intent")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

type createFundingRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
	// Ignored: the stored email is always the verified token identity.
	Email string `json:"email"`
}

// Create records a completed funding. The stored email always comes from the
// verified token, never from the request body.
func (fc *FundingController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, "Could not parse user from context")
		return
	}

	var req createFundingRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "amount must be greater than zero")
		return
	}

	funding := models.Funding{
		Name:      req.Name,
		Email:     claims.Email,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := fc.Store.Insert(ctx, funding)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error recording funding")
		return
	}
	funding.ID = id

	if fc.Email != nil {
		fc.Email.FundingReceipt(claims.Email, funding.Name, funding.Amount)
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"result":  funding,
	})
}

// List returns a page of funding records, newest-first.
func (fc *FundingController) List(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	total, err := fc.Store.Count(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error counting fundings")
		return
	}

	funds, err := fc.Store.List(ctx, skip, limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching fundings")
		return
	}
	if funds == nil {
		funds = []models.Funding{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"total": total,
		"page":  page,
		"limit": limit,
		"funds": funds,
	})
}

// Total returns the sum of all funding amounts, 0 when there are none.
func (fc *FundingController) Total(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := fc.Store.TotalAmount(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error totalling fundings")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]float64{"total": total})
}
