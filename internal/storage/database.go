package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/sharingyatra/yatra-backend/internal/models"
)

// DatabaseStore persists everything in PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given database handle
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Customer operations

func (s *DatabaseStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if err := s.db.Create(customer).Error; err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return customer, nil
}

func (s *DatabaseStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

func (s *DatabaseStore) GetCustomerByID(customerID string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

// Agency operations

func (s *DatabaseStore) CreateAgency(agency *models.Agency) (*models.Agency, error) {
	if err := s.db.Create(agency).Error; err != nil {
		return nil, fmt.Errorf("create agency: %w", err)
	}
	return agency, nil
}

func (s *DatabaseStore) GetAgencyByEmail(email string) (*models.Agency, error) {
	var agency models.Agency
	if err := s.db.Where("agency_email = ?", email).First(&agency).Error; err != nil {
		return nil, notFound(err)
	}
	return &agency, nil
}

func (s *DatabaseStore) GetAgencyByID(agencyID string) (*models.Agency, error) {
	var agency models.Agency
	if err := s.db.Where("agency_id = ?", agencyID).First(&agency).Error; err != nil {
		return nil, notFound(err)
	}
	return &agency, nil
}

// Driver operations

func (s *DatabaseStore) CreateDriver(driver *models.Driver) (*models.Driver, error) {
	if err := s.db.Create(driver).Error; err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return driver, nil
}

func (s *DatabaseStore) GetDriverByEmail(email string) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.Where("email = ?", email).First(&driver).Error; err != nil {
		return nil, notFound(err)
	}
	return &driver, nil
}

// Vehicle operations

func (s *DatabaseStore) CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := s.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *DatabaseStore) GetVehiclesByAgency(agencyID string) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	if err := s.db.Where("agency_id = ?", agencyID).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// OTP operations

func (s *DatabaseStore) UpsertOTP(email, code string, expiresAt time.Time) (*models.OTP, error) {
	var otp models.OTP
	err := s.db.Where("email = ?", email).First(&otp).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		otp = models.OTP{Email: email, Code: code, ExpiresAt: expiresAt}
		if err := s.db.Create(&otp).Error; err != nil {
			return nil, fmt.Errorf("create otp: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("find otp: %w", err)
	default:
		otp.Code = code
		otp.ExpiresAt = expiresAt
		if err := s.db.Save(&otp).Error; err != nil {
			return nil, fmt.Errorf("replace otp: %w", err)
		}
	}
	return &otp, nil
}

func (s *DatabaseStore) GetOTP(email, code string) (*models.OTP, error) {
	var otp models.OTP
	if err := s.db.Where("email = ? AND code = ?", email, code).First(&otp).Error; err != nil {
		return nil, notFound(err)
	}
	return &otp, nil
}

func (s *DatabaseStore) DeleteOTP(id uint) error {
	return s.db.Unscoped().Delete(&models.OTP{}, id).Error
}

func (s *DatabaseStore) DeleteExpiredOTPs(now time.Time) error {
	return s.db.Unscoped().Where("expires_at < ?", now).Delete(&models.OTP{}).Error
}

// Session operations

func (s *DatabaseStore) CreateSession(session *models.Session) error {
	if err := s.db.Create(session).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *DatabaseStore) GetSession(tokenHash string) (*models.Session, error) {
	var session models.Session
	if err := s.db.Where("token_hash = ?", tokenHash).First(&session).Error; err != nil {
		return nil, notFound(err)
	}
	return &session, nil
}

func (s *DatabaseStore) DeleteSession(tokenHash string) error {
	return s.db.Where("token_hash = ?", tokenHash).Delete(&models.Session{}).Error
}

func (s *DatabaseStore) DeleteExpiredSessions(now time.Time) error {
	return s.db.Where("expires_at < ?", now).Delete(&models.Session{}).Error
}

// Booking operations

func (s *DatabaseStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		seq, err := s.NextSequence(models.CounterBooking)
		if err != nil {
			return nil, fmt.Errorf("booking id: %w", err)
		}
		booking.ID = fmt.Sprintf("BK%05d", seq)
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if err := s.db.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

func (s *DatabaseStore) GetBooking(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, notFound(err)
	}
	return &booking, nil
}

func (s *DatabaseStore) GetBookingsByCustomer(customerID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.db.Where("customer_id = ?", customerID).Order("date DESC").Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *DatabaseStore) UpdateBooking(booking *models.Booking) error {
	booking.UpdatedAt = time.Now()
	// Save writes every column, including cleared ones (Sharing=false).
	if err := s.db.Save(booking).Error; err != nil {
		return fmt.Errorf("update booking: %w", err)
	}
	return nil
}

func (s *DatabaseStore) DeleteBooking(id string) error {
	res := s.db.Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		return fmt.Errorf("delete booking: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// NextSequence increments and returns the named counter inside a
// transaction. The booking counter is seeded at BookingSeqStart.
func (s *DatabaseStore) NextSequence(name string) (int64, error) {
	var seq int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var counter models.Counter
		err := tx.Where("name = ?", name).First(&counter).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			counter = models.Counter{Name: name, Seq: models.BookingSeqStart}
		case err != nil:
			return err
		}
		counter.Seq++
		seq = counter.Seq
		return tx.Save(&counter).Error
	})
	if err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return seq, nil
}
