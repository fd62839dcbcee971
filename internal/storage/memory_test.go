package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharingyatra/yatra-backend/internal/models"
)

func TestMemoryStore_BookingIDsAreSequential(t *testing.T) {
	store := NewMemoryStore()

	first, err := store.CreateBooking(&models.Booking{CustomerID: "CU00001", Date: "2026-09-01"})
	require.NoError(t, err)
	second, err := store.CreateBooking(&models.Booking{CustomerID: "CU00001", Date: "2026-09-02"})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("BK%05d", models.BookingSeqStart+1), first.ID)
	assert.Equal(t, fmt.Sprintf("BK%05d", models.BookingSeqStart+2), second.ID)
}

func TestMemoryStore_BookingsOrderedByDateDescending(t *testing.T) {
	store := NewMemoryStore()

	for _, date := range []string{"2026-08-20", "2026-09-05", "2026-08-30"} {
		_, err := store.CreateBooking(&models.Booking{CustomerID: "CU00001", Date: date})
		require.NoError(t, err)
	}
	_, err := store.CreateBooking(&models.Booking{CustomerID: "CU00002", Date: "2026-12-31"})
	require.NoError(t, err)

	bookings, err := store.GetBookingsByCustomer("CU00001")
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "2026-09-05", bookings[0].Date)
	assert.Equal(t, "2026-08-30", bookings[1].Date)
	assert.Equal(t, "2026-08-20", bookings[2].Date)
}

func TestMemoryStore_UpsertOTPReplaces(t *testing.T) {
	store := NewMemoryStore()

	expiry := time.Now().Add(5 * time.Minute)
	_, err := store.UpsertOTP("b@y.com", "111111", expiry)
	require.NoError(t, err)
	_, err = store.UpsertOTP("b@y.com", "222222", expiry)
	require.NoError(t, err)

	_, err = store.GetOTP("b@y.com", "111111")
	assert.ErrorIs(t, err, ErrNotFound)

	otp, err := store.GetOTP("b@y.com", "222222")
	require.NoError(t, err)
	assert.Equal(t, "222222", otp.Code)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	_, err := store.UpsertOTP("old@y.com", "111111", now.Add(-time.Minute))
	require.NoError(t, err)
	_, err = store.UpsertOTP("new@y.com", "222222", now.Add(time.Minute))
	require.NoError(t, err)

	require.NoError(t, store.CreateSession(&models.Session{TokenHash: "stale", ExpiresAt: now.Add(-time.Hour)}))
	require.NoError(t, store.CreateSession(&models.Session{TokenHash: "live", ExpiresAt: now.Add(time.Hour)}))

	require.NoError(t, store.DeleteExpiredOTPs(now))
	require.NoError(t, store.DeleteExpiredSessions(now))

	_, err = store.GetOTP("old@y.com", "111111")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetOTP("new@y.com", "222222")
	assert.NoError(t, err)

	_, err = store.GetSession("stale")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.GetSession("live")
	assert.NoError(t, err)
}

func TestMemoryStore_DuplicateCustomerEmailRejected(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.CreateCustomer(&models.Customer{Username: "a", Email: "c@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = store.CreateCustomer(&models.Customer{Username: "b", Email: "c@x.com", PasswordHash: "h"})
	assert.Error(t, err)
}
