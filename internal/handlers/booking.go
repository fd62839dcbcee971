package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/sharingyatra/yatra-backend/internal/middleware"
	"github.com/sharingyatra/yatra-backend/internal/models"
	"github.com/sharingyatra/yatra-backend/internal/storage"
)

// BookingHandler handles booking CRUD, always scoped to the session's
// customer.
type BookingHandler struct {
	store storage.Store
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(store storage.Store) *BookingHandler {
	return &BookingHandler{store: store}
}

// Create records a new booking owned by the authenticated customer
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)

	var req struct {
		AgencyID    string  `json:"agency_id"`
		AgencyName  string  `json:"agency_name"`
		DriverName  string  `json:"driver_name"`
		Vehicle     string  `json:"vehicle"`
		Name        string  `json:"name"`
		Phone       string  `json:"phone"`
		Pickup      string  `json:"pickup"`
		Drop        string  `json:"drop"`
		Date        string  `json:"date"`
		Time        string  `json:"time"`
		BookingType string  `json:"booking_type"`
		Sharing     bool    `json:"sharing"`
		TotalPrice  float64 `json:"total_price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if req.Pickup == "" || req.Drop == "" || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Pickup, drop and date are required",
		})
	}

	booking := &models.Booking{
		CustomerID:  principal.ID,
		AgencyID:    req.AgencyID,
		AgencyName:  req.AgencyName,
		DriverName:  req.DriverName,
		Vehicle:     req.Vehicle,
		Name:        req.Name,
		Phone:       req.Phone,
		Pickup:      req.Pickup,
		Drop:        req.Drop,
		Date:        req.Date,
		Time:        req.Time,
		BookingType: req.BookingType,
		Sharing:     req.Sharing,
		TotalPrice:  req.TotalPrice,
	}
	created, err := h.store.CreateBooking(booking)
	if err != nil {
		return serverError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Booking created successfully",
		"booking": created,
	})
}

// List returns the caller's bookings, newest travel date first
func (h *BookingHandler) List(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)

	bookings, err := h.store.GetBookingsByCustomer(principal.ID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"bookings": bookings,
	})
}

// Update modifies a booking after confirming the caller owns it
func (h *BookingHandler) Update(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	id := c.Params("id")

	booking, err := h.store.GetBooking(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Booking not found",
			})
		}
		return serverError(c)
	}
	if booking.CustomerID != principal.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "User not authorized to update this booking",
		})
	}

	var update models.BookingUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	booking.Apply(&update)
	if err := h.store.UpdateBooking(booking); err != nil {
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking updated",
		"booking": booking,
	})
}

// Delete removes a booking after confirming the caller owns it
func (h *BookingHandler) Delete(c *fiber.Ctx) error {
	principal := middleware.PrincipalFrom(c)
	id := c.Params("id")

	booking, err := h.store.GetBooking(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Booking not found",
			})
		}
		return serverError(c)
	}
	if booking.CustomerID != principal.ID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "User not authorized to delete this booking",
		})
	}

	if err := h.store.DeleteBooking(id); err != nil {
		return serverError(c)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking deleted",
	})
}
