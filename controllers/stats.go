package controllers

import (
	"context"
	"net/http"
	"time"

	"bloodaid/utils"
)

// Counter counts the documents in a collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// AmountSummer totals the amount field of a collection.
type AmountSummer interface {
	TotalAmount(ctx context.Context) (float64, error)
}

// StatsController serves the admin dashboard numbers.
type StatsController struct {
	Users    Counter
	Requests Counter
	Fundings AmountSummer
}

// NewStatsController creates a new StatsController
func NewStatsController(users, requests Counter, fundings AmountSummer) *StatsController {
	return &StatsController{Users: users, Requests: requests, Fundings: fundings}
}

// Get returns total users, total donation requests and the summed funding
// amount (Admin only).
func (sc *StatsController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	totalUsers, err := sc.Users.Count(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	totalRequests, err := sc.Requests.Count(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	totalFunding, err := sc.Fundings.TotalAmount(ctx)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Error fetching stats")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"totalUsers":    totalUsers,
		"totalRequests": totalRequests,
		"totalFunding":  totalFunding,
	})
}
