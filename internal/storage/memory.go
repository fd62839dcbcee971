package storage

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sharingyatra/yatra-backend/internal/models"
)

// MemoryStore holds all data in memory, for tests and local development
type MemoryStore struct {
	customers map[string]*models.Customer // by CustomerID
	agencies  map[string]*models.Agency   // by AgencyID
	drivers   map[string]*models.Driver   // by DriverID
	vehicles  map[uint]*models.Vehicle
	otps      map[string]*models.OTP // by email, at most one each
	sessions  map[string]*models.Session
	bookings  map[string]*models.Booking

	// Mutexes for thread safety
	principalMu sync.RWMutex
	vehicleMu   sync.RWMutex
	otpMu       sync.RWMutex
	sessionMu   sync.RWMutex
	bookingMu   sync.RWMutex
	counterMu   sync.Mutex

	// Counters for ID generation
	customerCounter int
	agencyCounter   int
	driverCounter   int
	vehicleCounter  uint
	otpCounter      uint
	counters        map[string]int64
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[string]*models.Customer),
		agencies:  make(map[string]*models.Agency),
		drivers:   make(map[string]*models.Driver),
		vehicles:  make(map[uint]*models.Vehicle),
		otps:      make(map[string]*models.OTP),
		sessions:  make(map[string]*models.Session),
		bookings:  make(map[string]*models.Booking),
		counters:  make(map[string]int64),
	}
}

// Customer operations

func (m *MemoryStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	m.principalMu.Lock()
	defer m.principalMu.Unlock()

	for _, existing := range m.customers {
		if existing.Email == customer.Email {
			return nil, fmt.Errorf("email already registered")
		}
	}

	m.customerCounter++
	customer.ID = uint(m.customerCounter)
	if customer.CustomerID == "" {
		customer.CustomerID = fmt.Sprintf("CU%05d", m.customerCounter)
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	m.customers[customer.CustomerID] = customer
	return customer, nil
}

func (m *MemoryStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	m.principalMu.RLock()
	defer m.principalMu.RUnlock()

	for _, customer := range m.customers {
		if customer.Email == email {
			return customer, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetCustomerByID(customerID string) (*models.Customer, error) {
	m.principalMu.RLock()
	defer m.principalMu.RUnlock()

	customer, exists := m.customers[customerID]
	if !exists {
		return nil, ErrNotFound
	}
	return customer, nil
}

// Agency operations

func (m *MemoryStore) CreateAgency(agency *models.Agency) (*models.Agency, error) {
	m.principalMu.Lock()
	defer m.principalMu.Unlock()

	for _, existing := range m.agencies {
		if existing.AgencyEmail == agency.AgencyEmail {
			return nil, fmt.Errorf("email already registered")
		}
	}

	m.agencyCounter++
	agency.ID = uint(m.agencyCounter)
	if agency.AgencyID == "" {
		agency.AgencyID = fmt.Sprintf("AG%05d", m.agencyCounter)
	}
	agency.CreatedAt = time.Now()
	agency.UpdatedAt = agency.CreatedAt

	m.agencies[agency.AgencyID] = agency
	return agency, nil
}

func (m *MemoryStore) GetAgencyByEmail(email string) (*models.Agency, error) {
	m.principalMu.RLock()
	defer m.principalMu.RUnlock()

	for _, agency := range m.agencies {
		if agency.AgencyEmail == email {
			return agency, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetAgencyByID(agencyID string) (*models.Agency, error) {
	m.principalMu.RLock()
	defer m.principalMu.RUnlock()

	agency, exists := m.agencies[agencyID]
	if !exists {
		return nil, ErrNotFound
	}
	return agency, nil
}

// Driver operations

func (m *MemoryStore) CreateDriver(driver *models.Driver) (*models.Driver, error) {
	m.principalMu.Lock()
	defer m.principalMu.Unlock()

	for _, existing := range m.drivers {
		if existing.Email == driver.Email {
			return nil, fmt.Errorf("email already registered")
		}
	}

	m.driverCounter++
	driver.ID = uint(m.driverCounter)
	if driver.DriverID == "" {
		driver.DriverID = fmt.Sprintf("DR%05d", m.driverCounter)
	}
	driver.CreatedAt = time.Now()
	driver.UpdatedAt = driver.CreatedAt

	m.drivers[driver.DriverID] = driver
	return driver, nil
}

func (m *MemoryStore) GetDriverByEmail(email string) (*models.Driver, error) {
	m.principalMu.RLock()
	defer m.principalMu.RUnlock()

	for _, driver := range m.drivers {
		if driver.Email == email {
			return driver, nil
		}
	}
	return nil, ErrNotFound
}

// Vehicle operations

func (m *MemoryStore) CreateVehicle(vehicle *models.Vehicle) (*models.Vehicle, error) {
	m.vehicleMu.Lock()
	defer m.vehicleMu.Unlock()

	m.vehicleCounter++
	vehicle.ID = m.vehicleCounter
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = vehicle.CreatedAt

	m.vehicles[vehicle.ID] = vehicle
	return vehicle, nil
}

func (m *MemoryStore) GetVehiclesByAgency(agencyID string) ([]*models.Vehicle, error) {
	m.vehicleMu.RLock()
	defer m.vehicleMu.RUnlock()

	var vehicles []*models.Vehicle
	for _, vehicle := range m.vehicles {
		if vehicle.AgencyID == agencyID {
			vehicles = append(vehicles, vehicle)
		}
	}
	return vehicles, nil
}

// OTP operations

func (m *MemoryStore) UpsertOTP(email, code string, expiresAt time.Time) (*models.OTP, error) {
	m.otpMu.Lock()
	defer m.otpMu.Unlock()

	otp, exists := m.otps[email]
	if !exists {
		m.otpCounter++
		otp = &models.OTP{Email: email}
		otp.ID = m.otpCounter
		otp.CreatedAt = time.Now()
		m.otps[email] = otp
	}
	otp.Code = code
	otp.ExpiresAt = expiresAt
	otp.UpdatedAt = time.Now()
	return otp, nil
}

func (m *MemoryStore) GetOTP(email, code string) (*models.OTP, error) {
	m.otpMu.RLock()
	defer m.otpMu.RUnlock()

	otp, exists := m.otps[email]
	if !exists || otp.Code != code {
		return nil, ErrNotFound
	}
	return otp, nil
}

func (m *MemoryStore) DeleteOTP(id uint) error {
	m.otpMu.Lock()
	defer m.otpMu.Unlock()

	for email, otp := range m.otps {
		if otp.ID == id {
			delete(m.otps, email)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) DeleteExpiredOTPs(now time.Time) error {
	m.otpMu.Lock()
	defer m.otpMu.Unlock()

	for email, otp := range m.otps {
		if otp.Expired(now) {
			delete(m.otps, email)
		}
	}
	return nil
}

// Session operations

func (m *MemoryStore) CreateSession(session *models.Session) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	m.sessions[session.TokenHash] = session
	return nil
}

func (m *MemoryStore) GetSession(tokenHash string) (*models.Session, error) {
	m.sessionMu.RLock()
	defer m.sessionMu.RUnlock()

	session, exists := m.sessions[tokenHash]
	if !exists {
		return nil, ErrNotFound
	}
	return session, nil
}

func (m *MemoryStore) DeleteSession(tokenHash string) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	delete(m.sessions, tokenHash)
	return nil
}

func (m *MemoryStore) DeleteExpiredSessions(now time.Time) error {
	m.sessionMu.Lock()
	defer m.sessionMu.Unlock()

	for hash, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, hash)
		}
	}
	return nil
}

// Booking operations

func (m *MemoryStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		seq, err := m.NextSequence(models.CounterBooking)
		if err != nil {
			return nil, err
		}
		booking.ID = fmt.Sprintf("BK%05d", seq)
	}

	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	m.bookings[booking.ID] = booking
	return booking, nil
}

func (m *MemoryStore) GetBooking(id string) (*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	booking, exists := m.bookings[id]
	if !exists {
		return nil, ErrNotFound
	}
	return booking, nil
}

func (m *MemoryStore) GetBookingsByCustomer(customerID string) ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	var bookings []*models.Booking
	for _, booking := range m.bookings {
		if booking.CustomerID == customerID {
			bookings = append(bookings, booking)
		}
	}
	// Newest travel date first, matching the database store
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].Date > bookings[j].Date
	})
	return bookings, nil
}

func (m *MemoryStore) UpdateBooking(booking *models.Booking) error {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	if _, exists := m.bookings[booking.ID]; !exists {
		return ErrNotFound
	}
	booking.UpdatedAt = time.Now()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MemoryStore) DeleteBooking(id string) error {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	if _, exists := m.bookings[id]; !exists {
		return ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

// NextSequence increments and returns the named counter
func (m *MemoryStore) NextSequence(name string) (int64, error) {
	m.counterMu.Lock()
	defer m.counterMu.Unlock()

	seq, exists := m.counters[name]
	if !exists {
		seq = models.BookingSeqStart
	}
	seq++
	m.counters[name] = seq
	return seq, nil
}
