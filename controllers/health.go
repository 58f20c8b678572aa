package controllers

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bloodaid/utils"
)

// HealthController serves the liveness and health routes.
type HealthController struct {
	Client *mongo.Client
}

// NewHealthController creates a new HealthController
func NewHealthController(client *mongo.Client) *HealthController {
	return &HealthController{Client: client}
}

// Root answers a plain liveness message.
func (hc *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "BloodAid API is running"})
}

// Check pings the database and reports its reachability.
func (hc *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	database := "connected"
	if err := hc.Client.Ping(ctx, readpref.Primary()); err != nil {
		database = "disconnected"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": database,
	})
}
