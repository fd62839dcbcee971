package models

// Counter mints sequential business IDs (bookings). Seq starts at
// BookingSeqStart for the booking counter.
type Counter struct {
	Name string `gorm:"primaryKey"`
	Seq  int64  `gorm:"not null"`
}

const (
	CounterBooking  = "booking"
	BookingSeqStart = 3221
)
