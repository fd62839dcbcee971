package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// VehicleHandler handles vehicle records
type VehicleHandler struct {
	store storage.Store
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(store storage.Store) *VehicleHandler {
	return &VehicleHandler{store: store}
}

// Add creates a vehicle record for an agency
func (h *VehicleHandler) Add(c *fiber.Ctx) error {
	var req struct {
		VehicleName      string  `json:"vehicle_name"`
		Model            string  `json:"model"`
		NumberPlate      string  `json:"number_plate"`
		RCNumber         string  `json:"rc_number"`
		InsuranceNumber  string  `json:"insurance_number"`
		OwnerName        string  `json:"owner_name"`
		ACType           string  `json:"ac_type"`
		VehicleType      string  `json:"vehicle_type"`
		MaxCapacity      int     `json:"max_capacity"`
		RatePerKM        float64 `json:"rate_per_km"`
		AgencyID         string  `json:"agency_id"`
		AssignedDriverID string  `json:"assigned_driver_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.VehicleName == "" || req.NumberPlate == "" || req.AgencyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Vehicle name, number plate and agency ID are required",
		})
	}

	if _, err := h.store.GetAgencyByID(req.AgencyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Agency not found",
			})
		}
		return serverError(c)
	}

	vehicle := &models.Vehicle{
		VehicleName:      req.VehicleName,
		VehicleModel:     req.Model,
		NumberPlate:      req.NumberPlate,
		RCNumber:         req.RCNumber,
		InsuranceNumber:  req.InsuranceNumber,
		OwnerName:        req.OwnerName,
		ACType:           req.ACType,
		VehicleType:      req.VehicleType,
		MaxCapacity:      req.MaxCapacity,
		RatePerKM:        req.RatePerKM,
		AgencyID:         req.AgencyID,
		AssignedDriverID: req.AssignedDriverID,
	}
	created, err := h.store.CreateVehicle(vehicle)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Error adding vehicle",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Vehicle added successfully",
		"vehicle": created,
	})
}

// ListByAgency returns all vehicles registered to an agency
func (h *VehicleHandler) ListByAgency(c *fiber.Ctx) error {
	agencyID := c.Params("agencyId")
	if agencyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Agency ID is required",
		})
	}

	vehicles, err := h.store.GetVehiclesByAgency(agencyID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"vehicles": vehicles,
	})
}
