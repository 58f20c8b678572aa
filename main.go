// main.go
package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"bloodaid/controllers"
	"bloodaid/middleware"
	"bloodaid/routes"
	"bloodaid/store"
	"bloodaid/utils"
)

func main() {
	// Load environment variables from .env file; proceed with the process
	// environment when there is none.
	_ = godotenv.Load()

	cfg, err := utils.LoadConfig()
	if err != nil {
		bootLogger := utils.NewLogger("development")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := utils.NewLogger(cfg.AppEnv)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.TODO()); err != nil {
			logger.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()

	// Stores, one per collection
	userStore := store.NewUserStore(client, cfg.DBName)
	donationStore := store.NewDonationStore(client, cfg.DBName)
	blogStore := store.NewBlogStore(client, cfg.DBName)
	fundingStore := store.NewFundingStore(client, cfg.DBName)

	// External providers
	gateway := utils.NewStripeGateway(cfg.StripeSecretKey)
	emailService := utils.NewEmailService(cfg.PostmarkAPIToken, cfg.EmailSender, logger)

	// Controllers
	c := routes.Controllers{
		Health:    controllers.NewHealthController(client),
		Users:     controllers.NewUserController(userStore),
		Donations: controllers.NewDonationController(donationStore, emailService),
		Blogs:     controllers.NewBlogController(blogStore),
		Fundings:  controllers.NewFundingController(fundingStore, gateway, emailService),
		Stats:     controllers.NewStatsController(userStore, donationStore, fundingStore),
	}

	guard := &middleware.Guard{
		Verifier: utils.NewJWTVerifier(cfg.JWTSecret),
		Roles:    userStore,
	}

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.Logger(logger))
	routes.RegisterRoutes(router, guard, c)

	// Start the server
	logger.Info().Str("port", cfg.Port).Msg("server is running")
	logger.Fatal().Err(http.ListenAndServe(":"+cfg.Port, router)).Msg("server stopped")
}
