package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/middleware"
	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/services"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// AuthHandler handles OTP issuance, customer registration, login,
// logout and the profile echo.
type AuthHandler struct {
	store         storage.Store
	resolver      *auth.Resolver
	sessions      *auth.SessionManager
	otpService    *services.OTPService
	hasher        *auth.PasswordHasher
	secureCookies bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	store storage.Store,
	resolver *auth.Resolver,
	sessions *auth.SessionManager,
	otpService *services.OTPService,
	hasher *auth.PasswordHasher,
	secureCookies bool,
) *AuthHandler {
	return &AuthHandler{
		store:         store,
		resolver:      resolver,
		sessions:      sessions,
		otpService:    otpService,
		hasher:        hasher,
		secureCookies: secureCookies,
	}
}

// GenerateOTP issues a registration code to the given email
func (h *AuthHandler) GenerateOTP(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email is required",
		})
	}

	if err := h.otpService.Issue(req.Email); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error sending OTP",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent to your email",
	})
}

// Register consumes a valid OTP and creates a customer account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Username string `json:"username"`
		Password string `json:"password"`
		OTP      string `json:"otp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.Email == "" || req.Username == "" || req.Password == "" || req.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email, username, password and OTP are required",
		})
	}

	otp, err := h.otpService.Validate(req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOTP):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid OTP",
			})
		case errors.Is(err, services.ErrOTPExpired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "OTP expired",
			})
		}
		return serverError(c)
	}

	if _, err := h.store.GetCustomerByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email already registered",
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return serverError(c)
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return serverError(c)
	}

	customer := &models.Customer{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	}
	if _, err := h.store.CreateCustomer(customer); err != nil {
		return serverError(c)
	}

	// Clean up the consumed OTP
	_ = h.otpService.Consume(otp)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
	})
}

// Login resolves the principal across all collections and mints a session
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email and password are required",
		})
	}

	principal, redirectTo, err := h.resolver.Resolve(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrAccountNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Account not found",
			})
		case errors.Is(err, auth.ErrInvalidPassword):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid password",
			})
		}
		return serverError(c)
	}

	token, err := h.sessions.Create(*principal)
	if err != nil {
		return serverError(c)
	}
	h.setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Login successful",
		"redirectTo": redirectTo,
	})
}

// Logout destroys the server-side session and clears the cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if err := h.sessions.Destroy(token); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Could not log out",
			})
		}
	}
	c.ClearCookie(middleware.SessionCookie)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out",
	})
}

// Profile echoes the session principal
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"user":    middleware.PrincipalFrom(c),
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	sameSite := fiber.CookieSameSiteLaxMode
	if h.secureCookies {
		sameSite = fiber.CookieSameSiteNoneMode
	}
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessions.Lifetime().Seconds()),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: sameSite,
	})
}

// serverError is the catch-all 500 response
func serverError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Server error",
	})
}
