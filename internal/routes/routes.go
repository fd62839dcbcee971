package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/handlers"
	"github.com/sharingyatra/yatra-backend/internal/middleware"
	"github.com/sharingyatra/yatra-backend/internal/services"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// Deps carries everything the route handlers need. Built in main and
// passed in explicitly; no package-level state.
type Deps struct {
	Store         storage.Store
	Resolver      *auth.Resolver
	Sessions      *auth.SessionManager
	OTPService    *services.OTPService
	Hasher        *auth.PasswordHasher
	SecureCookies bool
	Version       string
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, deps Deps) {
	authHandler := handlers.NewAuthHandler(
		deps.Store, deps.Resolver, deps.Sessions, deps.OTPService, deps.Hasher, deps.SecureCookies)
	agencyHandler := handlers.NewAgencyHandler(deps.Store, deps.Hasher)
	driverHandler := handlers.NewDriverHandler(deps.Store, deps.Hasher)
	vehicleHandler := handlers.NewVehicleHandler(deps.Store)
	bookingHandler := handlers.NewBookingHandler(deps.Store)
	healthHandler := handlers.NewHealthHandler(deps.Version)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api")

	// Registration and login
	api.Post("/generate-otp", authHandler.GenerateOTP)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Get("/logout", authHandler.Logout)

	// Agency, driver and vehicle routes
	api.Post("/agencies/register", agencyHandler.Register)
	api.Post("/drivers/register", driverHandler.Register)
	api.Post("/vehicles/add", vehicleHandler.Add)
	api.Get("/vehicles/agency/:agencyId", vehicleHandler.ListByAgency)

	// Protected routes behind the authorization gate
	gate := middleware.RequireSession(deps.Sessions)
	api.Get("/profile", gate, authHandler.Profile)

	bookings := api.Group("/bookings", gate)
	bookings.Post("/", bookingHandler.Create)
	bookings.Get("/", bookingHandler.List)
	bookings.Put("/:id", bookingHandler.Update)
	bookings.Delete("/:id", bookingHandler.Delete)
}
