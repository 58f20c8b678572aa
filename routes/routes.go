package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"bloodaid/controllers"
	"bloodaid/middleware"
)

// Controllers bundles every resource controller for route registration.
type Controllers struct {
	Health    *controllers.HealthController
	Users     *controllers.UserController
	Donations *controllers.DonationController
	Blogs     *controllers.BlogController
	Fundings  *controllers.FundingController
	Stats     *controllers.StatsController
}

type route struct {
	method  string
	path    string
	access  middleware.Access
	handler http.HandlerFunc
}

// RegisterRoutes sets up all the routes for the application. Each route
// declares the access level it requires; the guard enforces it. Routes with
// literal segments must come before their parameterized siblings because mux
// matches in registration order.
func RegisterRoutes(router *mux.Router, guard *middleware.Guard, c Controllers) {
	table := []route{
		{http.MethodGet, "/", middleware.Public, c.Health.Root},
		{http.MethodGet, "/health", middleware.Public, c.Health.Check},

		{http.MethodPost, "/users", middleware.Public, c.Users.Create},
		{http.MethodGet, "/users", middleware.Authenticated, c.Users.ListAll},
		{http.MethodGet, "/users/role/{email}", middleware.Public, c.Users.GetRole},
		{http.MethodGet, "/users/email/{email}", middleware.Public, c.Users.GetByEmail},
		{http.MethodGet, "/users/profile/{email}", middleware.Public, c.Users.GetByEmail},
		{http.MethodGet, "/users/{email}", middleware.Public, c.Users.GetByEmail},
		{http.MethodPatch, "/users/profile/{email}", middleware.Authenticated, c.Users.UpdateProfile},
		{http.MethodPatch, "/users/status/{id}", middleware.Public, c.Users.UpdateStatus},
		{http.MethodPatch, "/users/role/{id}", middleware.Public, c.Users.UpdateRole},
		{http.MethodPatch, "/users/{id}", middleware.Public, c.Users.UpdateByID},

		{http.MethodPost, "/donation-requests", middleware.Public, c.Donations.Create},
		{http.MethodGet, "/donation-requests", middleware.Authenticated, c.Donations.List},
		{http.MethodGet, "/donation-requests/user/{email}", middleware.Public, c.Donations.ListByUser},
		{http.MethodGet, "/donation-requests/{id}", middleware.Public, c.Donations.GetByID},
		{http.MethodPatch, "/donation-requests/status/{id}", middleware.Authenticated, c.Donations.UpdateStatus},
		{http.MethodPatch, "/donation-requests/{id}", middleware.Public, c.Donations.UpdatePartial},
		{http.MethodPut, "/donation-requests/{id}", middleware.Public, c.Donations.Replace},
		{http.MethodDelete, "/donation-requests/{id}", middleware.Public, c.Donations.Delete},

		{http.MethodPost, "/blogs", middleware.Admin, c.Blogs.Create},
		{http.MethodGet, "/blogs", middleware.Public, c.Blogs.List},
		{http.MethodGet, "/blogs/{id}", middleware.Public, c.Blogs.GetByID},
		{http.MethodPatch, "/blogs/status/{id}", middleware.Admin, c.Blogs.UpdateStatus},
		{http.MethodDelete, "/blogs/{id}", middleware.Admin, c.Blogs.Delete},

		{http.MethodGet, "/admin-stats", middleware.Admin, c.Stats.Get},

		{http.MethodPost, "/create-payment-intent", middleware.Authenticated, c.Fundings.CreatePaymentIntent},
		{http.MethodPost, "/fundings", middleware.Authenticated, c.Fundings.Create},
		{http.MethodGet, "/fundings/total", middleware.Authenticated, c.Fundings.Total},
		{http.MethodGet, "/fundings", middleware.Authenticated, c.Fundings.List},
	}

	for _, rt := range table {
		router.Handle(rt.path, guard.Protect(rt.access, rt.handler)).Methods(rt.method)
	}
}
