package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/auth"
	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// AgencyHandler handles agency registration
type AgencyHandler struct {
	store  storage.Store
	hasher *auth.PasswordHasher
}

// NewAgencyHandler creates a new agency handler
func NewAgencyHandler(store storage.Store, hasher *auth.PasswordHasher) *AgencyHandler {
	return &AgencyHandler{store: store, hasher: hasher}
}

// Register creates a new agency principal
func (h *AgencyHandler) Register(c *fiber.Ctx) error {
	var req struct {
		AgencyName     string `json:"agency_name"`
		OwnerName      string `json:"owner_name"`
		OperateStation string `json:"operate_station"`
		AgencyEmail    string `json:"agency_email"`
		AgencyMobile   string `json:"agency_mobile"`
		Address        string `json:"address"`
		Password       string `json:"password"`
		AgencyLicense  string `json:"agency_license"`
		GSTNumber      string `json:"gst_number"`
		PANNumber      string `json:"pan_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.AgencyName == "" || req.AgencyEmail == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Agency name, email and password are required",
		})
	}

	if _, err := h.store.GetAgencyByEmail(req.AgencyEmail); err == nil {
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

	agency := &models.Agency{
		AgencyName:     req.AgencyName,
		OwnerName:      req.OwnerName,
		OperateStation: req.OperateStation,
		AgencyEmail:    req.AgencyEmail,
		AgencyMobile:   req.AgencyMobile,
		Address:        req.Address,
		PasswordHash:   passwordHash,
		AgencyLicense:  req.AgencyLicense,
		GSTNumber:      req.GSTNumber,
		PANNumber:      req.PANNumber,
	}
	created, err := h.store.CreateAgency(agency)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error registering agency",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"message":   "Agency registered successfully",
		"agency_id": created.AgencyID,
	})
}
