package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// DriverHandler handles driver registration
type DriverHandler struct {
	store  storage.Store
	hasher *auth.PasswordHasher
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(store storage.Store, hasher *auth.PasswordHasher) *DriverHandler {
	return &DriverHandler{store: store, hasher: hasher}
}

// Register creates a new driver principal
func (h *DriverHandler) Register(c *fiber.Ctx) error {
	var req struct {
		FullName      string `json:"full_name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		LicenseNumber string `json:"license_number"`
		AgencyID      string `json:"agency_id"`
		Password      string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Full name, email and password are required",
		})
	}

	if _, err := h.store.GetDriverByEmail(req.Email); err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Email already registered",
		})
	} else if !errors.Is(err, storage.ErrNotFound) {
		return serverError(c)
	}

	if req.AgencyID != "" {
		if _, err := h.store.GetAgencyByID(req.AgencyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"message": "Agency not found",
				})
			}
			return serverError(c)
		}
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		return serverError(c)
	}

	driver := &models.Driver{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		AgencyID:      req.AgencyID,
		PasswordHash:  passwordHash,
	}
	created, err := h.store.CreateDriver(driver)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error registering driver",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "Driver registered successfully",
		"driver_id": created.DriverID,
	})
}
