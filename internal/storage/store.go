package storage

import (
	"errors"
	"time"

	"github.com/sharingyatra/yatra-backend/internal/models"
)

// ErrNotFound is returned when a record does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for storage operations
type Store interface {
	// Customer operations
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	GetCustomerByID(customerID string) (*models.Customer, error)

	// Agency operations
	CreateAgency(agency *models.Agency) (*models.Agency, error)
	GetAgencyByEmail(email string) (*models.Agency, error)
	GetAgencyByID(agencyID string) (*models.Agency, error)

	// Driver operations
	CreateDriver(driver *models.Driver) (*models.Driver, error)
	GetDriverByEmail(email string) (*models.Driver, error)

	// Vehicle operations
	CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error)
	GetVehiclesByAgency(agencyID string) ([]*models.Vehicle, error)

	// OTP operations. UpsertOTP replaces any previous code for the email.
	UpsertOTP(email, code string, expiresAt time.Time) (*models.OTP, error)
	GetOTP(email, code string) (*models.OTP, error)
	DeleteOTP(id uint) error
	DeleteExpiredOTPs(now time.Time) error

	// Session operations, keyed by token hash
	CreateSession(session *models.Session) error
	GetSession(tokenHash string) (*models.Session, error)
	DeleteSession(tokenHash string) error
	DeleteExpiredSessions(now time.Time) error

	// Booking operations
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetBookingsByCustomer(customerID string) ([]*models.Booking, error)
	UpdateBooking(booking *models.Booking) error
	DeleteBooking(id string) error

	// NextSequence returns the next value of a named counter
	NextSequence(name string) (int64, error)
}
