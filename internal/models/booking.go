package models

import "time"

// Booking is a ride reservation owned by the customer who created it.
type Booking struct {
	ID         string `json:"id" gorm:"primaryKey"`
	CustomerID string `json:"customer_id" gorm:"index;not null"`

	// Ride details as captured at booking time
	AgencyID   string `json:"agency_id"`
	AgencyName string `json:"agency_name"`
	DriverName string `json:"driver_name"`
	Vehicle    string `json:"vehicle"`

	// Passenger details
	Name  string `json:"name"`
	Phone string `json:"phone"`

	// Trip details
	Pickup      string  `json:"pickup"`
	Drop        string  `json:"drop" gorm:"column:drop_point"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	BookingType string  `json:"booking_type"`
	Sharing     bool    `json:"sharing"`
	TotalPrice  float64 `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingUpdate carries the caller-mutable fields of a booking.
type BookingUpdate struct {
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

// Apply copies the update onto the booking. Ownership and identity
// fields are never touched.
func (b *Booking) Apply(u *BookingUpdate) {
	b.DriverName = u.DriverName
	b.Vehicle = u.Vehicle
	b.Name = u.Name
	b.Phone = u.Phone
	b.Pickup = u.Pickup
	b.Drop = u.Drop
	b.Date = u.Date
	b.Time = u.Time
	b.BookingType = u.BookingType
	b.Sharing = u.Sharing
	b.TotalPrice = u.TotalPrice
}
